// Copyright 2026 The MLFuncs Authors. SPDX-License-Identifier: Apache-2.0

// Lossdemo evaluates the full mlfuncs activation and loss catalog on a pair of
// sample vectors and prints the results. It doubles as an end-to-end smoke
// check of the library.
//
// Example:
//
//	go run ./cmd/lossdemo --ground 0.1,1.0,0.3,0.5,0.7 --predicted 0.1,0.3,0.4,0.1,0.2
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/x448/float16"
	"k8s.io/klog/v2"

	"github.com/rykovv/mlfuncs/pkg/ml/activations"
	"github.com/rykovv/mlfuncs/pkg/ml/losses"
	"github.com/rykovv/mlfuncs/pkg/support/xslices"
)

var (
	flagGround    = "0.1,1.0,0.3,0.5,0.7"
	flagPredicted = "0.1,0.3,0.4,0.1,0.2"
	flagThreshold = 0.2
	flagMargin    = 2.0
	flagZ         = 2.0
	flagAlpha     = 0.1
	flagBeta      = 0.1
)

func parseVector(name, value string) ([]float64, error) {
	parts := strings.Split(value, ",")
	vector := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "flag --%s: invalid element %q", name, part)
		}
		vector = append(vector, v)
	}
	return vector, nil
}

// report evaluates every activation at z and every loss on (ground, predicted)
// and returns the formatted result, one value per line.
func report(ground, predicted []float64, threshold, margin, z, alpha, beta float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "sigmoid(%v) = %v\n", z, activations.Sigmoid(z))
	fmt.Fprintf(&b, "tanh(%v) = %v\n", z, activations.Tanh(z))
	fmt.Fprintf(&b, "relu(%v) = %v\n", z, activations.Relu(z))
	fmt.Fprintf(&b, "prelu(%v, alpha=%v) = %v\n", z, alpha, activations.Prelu(z, alpha))
	fmt.Fprintf(&b, "elu(%v, alpha=%v) = %v\n", z, alpha, activations.Elu(z, alpha))
	fmt.Fprintf(&b, "glu(%v) = %v\n", z, activations.Glu(z))
	fmt.Fprintf(&b, "swish(%v) = %v\n", z, activations.Swish(z))
	fmt.Fprintf(&b, "softplus(%v, beta=%v) = %v\n", z, beta, activations.Softplus(z, beta))
	fmt.Fprintf(&b, "mish(%v) = %v\n", z, activations.Mish(z))
	fmt.Fprintf(&b, "sigmoid(%v) in float16 = %v\n", z,
		activations.ApplyFloat16(activations.TypeSigmoid, float16.Fromfloat32(float32(z))).Float32())
	fmt.Fprintf(&b, "sigmoid over predicted = %v\n", xslices.Map(predicted, activations.Sigmoid[float64]))

	fmt.Fprintf(&b, "L1 = %v\n", losses.L1(ground, predicted))
	fmt.Fprintf(&b, "L2 = %v\n", losses.L2(ground, predicted))
	fmt.Fprintf(&b, "Huber(threshold=%v) = %v\n", threshold, losses.Huber(ground, predicted, threshold))
	fmt.Fprintf(&b, "BCE = %v\n", losses.BinaryCrossEntropy(ground, predicted))
	fmt.Fprintf(&b, "CE = %v\n", losses.CrossEntropy(ground, predicted))
	fmt.Fprintf(&b, "softmax(predicted) = %v\n", losses.Softmax(predicted))
	fmt.Fprintf(&b, "KL = %v\n", losses.KLDivergence(ground, predicted))
	fmt.Fprintf(&b, "contrastive(same=true, margin=%v) = %v\n", margin,
		losses.Contrastive(true, ground, predicted, margin))
	fmt.Fprintf(&b, "hinge = %v\n", losses.Hinge(ground, predicted))
	fmt.Fprintf(&b, "triplet ranking(margin=%v) = %v\n", margin,
		losses.TripletRanking(predicted, ground, predicted, margin))

	return b.String()
}

func run(cmd *cobra.Command, _ []string) error {
	ground, err := parseVector("ground", flagGround)
	if err != nil {
		return err
	}
	predicted, err := parseVector("predicted", flagPredicted)
	if err != nil {
		return err
	}
	if len(ground) != len(predicted) {
		return errors.Errorf("--ground and --predicted must have the same length, got %d and %d",
			len(ground), len(predicted))
	}
	klog.V(1).Infof("evaluating catalog over %d elements", len(ground))
	fmt.Fprint(cmd.OutOrStdout(), report(ground, predicted, flagThreshold, flagMargin, flagZ, flagAlpha, flagBeta))
	return nil
}

func main() {
	klog.InitFlags(nil)
	rootCmd := &cobra.Command{
		Use:          "lossdemo",
		Short:        "Evaluate the mlfuncs activation and loss catalog on sample vectors",
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&flagGround, "ground", flagGround, "comma-separated ground-truth vector")
	rootCmd.Flags().StringVar(&flagPredicted, "predicted", flagPredicted, "comma-separated prediction vector")
	rootCmd.Flags().Float64Var(&flagThreshold, "threshold", flagThreshold, "Huber loss threshold")
	rootCmd.Flags().Float64Var(&flagMargin, "margin", flagMargin, "margin for the metric-learning losses")
	rootCmd.Flags().Float64Var(&flagZ, "z", flagZ, "sample input for the activation functions")
	rootCmd.Flags().Float64Var(&flagAlpha, "alpha", flagAlpha, "alpha parameter for prelu and elu")
	rootCmd.Flags().Float64Var(&flagBeta, "beta", flagBeta, "beta parameter for softplus")
	rootCmd.Flags().AddGoFlagSet(flag.CommandLine)
	if err := rootCmd.Execute(); err != nil {
		klog.Exitf("lossdemo: %v", err)
	}
}

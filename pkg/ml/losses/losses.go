// Copyright 2026 The MLFuncs Authors. SPDX-License-Identifier: Apache-2.0

// Package losses implements the standard regression, classification and
// metric-learning losses over equal-length slices of float32 or float64
// values, plus Softmax to normalize a slice into a probability distribution.
//
// Every loss is assembled from a per-element formula (see PairFunc and the
// *Term functions) folded by xslices.ReducePairs, and an optional closing
// transform on the accumulated sum. All functions are pure and stateless:
// inputs are read-only, nothing is retained between calls, and they are safe
// to call concurrently.
//
// Contract violations -- slices of different lengths -- panic with an
// exception (github.com/gomlx/exceptions), which callers may trap with
// exceptions.TryCatch. Values outside a formula's mathematical domain (for
// example predictions outside (0, 1) fed to a cross-entropy) are not checked
// or clamped: the resulting NaN or ±Inf propagates to the returned scalar.
package losses

import (
	"golang.org/x/exp/constraints"

	"github.com/rykovv/mlfuncs/internal/floats"
	"github.com/rykovv/mlfuncs/pkg/support/xslices"
)

// L1 returns the sum of absolute differences (Manhattan distance) between
// ground and predicted. No normalization by length is applied.
func L1[T constraints.Float](ground, predicted []T) T {
	return xslices.ReducePairs(AbsDiff[T], ground, predicted)
}

// L2 returns the Euclidean distance between ground and predicted: the square
// root of the sum of squared differences. Non-negative by construction.
func L2[T constraints.Float](ground, predicted []T) T {
	return floats.Sqrt(xslices.ReducePairs(SquareDiff[T], ground, predicted))
}

// Huber returns the sum of the per-element Huber terms between ground and
// predicted: quadratic for small differences, linear beyond threshold.
// It is less sensitive to outliers than L2.
//
// threshold is expected to be finite and non-negative; this is a documented
// precondition, not a runtime check. Note the branch selection compares the
// signed difference against threshold -- see HuberTerm.
//
// See https://en.wikipedia.org/wiki/Huber_loss
func Huber[T constraints.Float](ground, predicted []T, threshold T) T {
	return xslices.ReducePairs(HuberTerm(threshold), ground, predicted)
}

// BinaryCrossEntropy returns the mean negated log-loss between ground labels
// (conventionally 0 or 1) and predicted probabilities, for binary
// classification tasks.
//
// Every predicted value must be strictly inside (0, 1), otherwise the result
// is NaN or ±Inf (values are never clamped).
func BinaryCrossEntropy[T constraints.Float](ground, predicted []T) T {
	sum := xslices.ReducePairs(BCETerm[T], ground, predicted)
	return -sum / T(len(ground))
}

// CrossEntropy returns the mean negated cross-entropy between the ground
// distribution and predicted probabilities. Same domain requirement on
// predicted as BinaryCrossEntropy.
func CrossEntropy[T constraints.Float](ground, predicted []T) T {
	sum := xslices.ReducePairs(CETerm[T], ground, predicted)
	return -sum / T(len(ground))
}

// KLDivergence returns the Kullback-Leibler divergence sum(ground*log(ground/predicted)).
// No normalization by length is applied.
//
// Both slices must be strictly positive elementwise; conventionally each sums
// to 1 (true probability distributions), but that is not checked.
func KLDivergence[T constraints.Float](ground, predicted []T) T {
	return xslices.ReducePairs(KLTerm[T], ground, predicted)
}

// Hinge returns the sum of max(0, 1 - ground*predicted) over all pairs, the
// maximum-margin loss used by classifiers such as SVMs. Ground labels are
// conventionally in {-1, +1}.
func Hinge[T constraints.Float](ground, predicted []T) T {
	return xslices.ReducePairs(HingeTerm[T], ground, predicted)
}

// Contrastive returns the contrastive loss between two feature vectors:
// the squared Euclidean distance when isSamePair is true, and
// max(margin - distance, 0)^2 when false. The asymmetry between the branches
// (squared distance on one, distance on the other) is the standard
// contrastive-loss definition.
//
// The squared distance is accumulated directly, with no sqrt/square
// round-trip.
func Contrastive[T constraints.Float](isSamePair bool, featuresA, featuresB []T, margin T) T {
	sqDist := xslices.ReducePairs(SquareDiff[T], featuresA, featuresB)
	if isSamePair {
		return sqDist
	}
	clipped := max(margin-floats.Sqrt(sqDist), 0)
	return clipped * clipped
}

// TripletRanking returns max(0, L2(anchor, positive) - L2(anchor, negative) + margin),
// the triplet ranking loss: it pushes the anchor closer to the positive
// example than to the negative one, by at least margin.
func TripletRanking[T constraints.Float](anchor, positive, negative []T, margin T) T {
	return max(L2(anchor, positive)-L2(anchor, negative)+margin, 0)
}

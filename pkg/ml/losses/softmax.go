// Copyright 2026 The MLFuncs Authors. SPDX-License-Identifier: Apache-2.0

package losses

import (
	"golang.org/x/exp/constraints"

	"github.com/rykovv/mlfuncs/internal/floats"
	"github.com/rykovv/mlfuncs/pkg/support/xslices"
)

// Softmax returns a new slice of the same length as values, with each element
// exponentiated and divided by the sum of all exponentials. The output
// elements are in (0, 1) and sum to 1 up to floating-point rounding; the input
// is not modified.
//
// No max-subtraction stabilization is applied: for inputs large enough that
// exp overflows, the result degrades to ±Inf/NaN like every other
// out-of-domain case of this package.
func Softmax[T constraints.Float](values []T) []T {
	exps := xslices.Map(values, floats.Exp[T])
	var sum T
	for _, e := range exps {
		sum += e
	}
	for ii := range exps {
		exps[ii] /= sum
	}
	return exps
}

// Copyright 2026 The MLFuncs Authors. SPDX-License-Identifier: Apache-2.0

package losses

import (
	"golang.org/x/exp/constraints"

	"github.com/rykovv/mlfuncs/internal/floats"
)

// PairFunc is a pure elementwise formula over one aligned pair of values: the
// ground truth (or first feature vector) element a, and the prediction (or
// second feature vector) element b. Every loss in this package is one PairFunc
// folded over the input slices by xslices.ReducePairs, plus a closing
// transform on the accumulated sum.
type PairFunc[T constraints.Float] func(a, b T) T

// AbsDiff returns |a-b|, the per-element term of the L1 loss.
func AbsDiff[T constraints.Float](a, b T) T {
	return floats.Abs(a - b)
}

// SquareDiff returns (a-b)^2, the per-element term of the L2 loss and of the
// squared Euclidean distance used by the metric-learning losses.
func SquareDiff[T constraints.Float](a, b T) T {
	diff := a - b
	return diff * diff
}

// HuberTerm returns the per-element Huber formula for the given threshold:
// (a-b)^2/2 on the quadratic branch, threshold*|a-b| - threshold/2 on the
// linear branch.
//
// The branch is selected by comparing the *signed* difference a-b against
// threshold, not its absolute value: a large negative difference always lands
// on the quadratic branch. This asymmetry is part of the catalog definition
// and is covered by tests; see also Huber.
func HuberTerm[T constraints.Float](threshold T) PairFunc[T] {
	return func(a, b T) T {
		diff := a - b
		if diff <= threshold {
			return diff * diff / 2
		}
		return threshold*floats.Abs(diff) - threshold/2
	}
}

// BCETerm returns a*log(b) + (a-1)*log(1-b), the (un-negated) per-element term
// of the binary cross-entropy loss.
//
// The formula is only defined for b strictly inside (0, 1); outside that open
// interval it evaluates to ±Inf or NaN, which is propagated as is -- values
// are never clamped.
func BCETerm[T constraints.Float](a, b T) T {
	return a*floats.Log(b) + (a-1)*floats.Log(1-b)
}

// CETerm returns a*log(b), the (un-negated) per-element term of the
// cross-entropy loss. Same domain requirement on b as BCETerm.
func CETerm[T constraints.Float](a, b T) T {
	return a * floats.Log(b)
}

// KLTerm returns a*log(a/b), the per-element term of the Kullback-Leibler
// divergence. Undefined (NaN or ±Inf) when a <= 0 or b <= 0.
func KLTerm[T constraints.Float](a, b T) T {
	return a * floats.Log(a/b)
}

// HingeTerm returns max(0, 1 - a*b), the per-element term of the hinge loss,
// where a is conventionally a label in {-1, +1}.
func HingeTerm[T constraints.Float](a, b T) T {
	return max(0, 1-a*b)
}

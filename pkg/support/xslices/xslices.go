// Copyright 2026 The MLFuncs Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provides the generic slice functionality missing from the
// standard slices package that the rest of the library is built on, most
// importantly ReducePairs, the pairwise reduction used by every loss.
package xslices

import (
	"github.com/gomlx/exceptions"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// ReducePairs combines two aligned slices into one scalar: fn is applied to
// each pair `(a[ii], b[ii])` and the results are accumulated with `+`, starting
// from the zero value of T.
//
// The slices must have the same length; otherwise it panics with an exception
// (see github.com/gomlx/exceptions) -- a pairwise reduction never silently
// truncates or pads. The accumulation follows slice order, so for
// floating-point types the rounding of the result depends on the element order.
func ReducePairs[T constraints.Float](fn func(a, b T) T, a, b []T) T {
	if len(a) != len(b) {
		exceptions.Panicf("xslices.ReducePairs: slices must have the same length, got len(a)=%d and len(b)=%d",
			len(a), len(b))
	}
	var total T
	for ii, element := range a {
		total += fn(element, b[ii])
	}
	return total
}

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// Copy creates a new (shallow) copy of T. A short cut to a call to `make` and then `copy`.
func Copy[T any](slice []T) []T {
	s := make([]T, len(slice))
	copy(s, slice)
	return s
}

// ToFloat16 converts a slice of float32 values to their IEEE 754 half-precision form.
func ToFloat16(values []float32) []float16.Float16 {
	return Map(values, float16.Fromfloat32)
}

// FromFloat16 converts a slice of IEEE 754 half-precision values back to float32.
func FromFloat16(values []float16.Float16) []float32 {
	return Map(values, float16.Float16.Float32)
}

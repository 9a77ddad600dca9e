// Copyright 2026 The MLFuncs Authors. SPDX-License-Identifier: Apache-2.0

// Package floats provides scalar math functions generic over the floating-point
// type: float32 values are computed with github.com/chewxy/math32, without a
// round-trip through float64, and float64 values with the standard math package.
//
// It exists so that each formula in the public packages is written exactly once,
// independent of precision.
package floats

import (
	stdmath "math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Exp returns e**x.
func Exp[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Exp(v))
	default:
		return T(stdmath.Exp(float64(x)))
	}
}

// Log returns the natural logarithm of x.
// Log of a non-positive x yields -Inf or NaN, same as the underlying math packages.
func Log[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log(v))
	default:
		return T(stdmath.Log(float64(x)))
	}
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Tanh(v))
	default:
		return T(stdmath.Tanh(float64(x)))
	}
}

// Sqrt returns the square root of x.
func Sqrt[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	default:
		return T(stdmath.Sqrt(float64(x)))
	}
}

// Abs returns the absolute value of x.
func Abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN[T constraints.Float](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T constraints.Float](x T) bool {
	return stdmath.IsInf(float64(x), 0)
}

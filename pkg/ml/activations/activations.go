// Copyright 2026 The MLFuncs Authors. SPDX-License-Identifier: Apache-2.0

// Package activations implements the common scalar activation and gating
// functions, generic over float32 and float64.
//
// Every function here is scalar-to-scalar and stateless; mapping one over a
// sequence is left to the caller (e.g. with xslices.Map). There is also a
// generic Apply method to compute an activation by its type, and FromName to
// convert an activation name (string) to its type.
package activations

import (
	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"

	"github.com/rykovv/mlfuncs/internal/floats"
)

// Type is an enum for the supported activation functions.
//
// It is converted to snake-format strings (e.g.: TypeSoftplus -> "softplus"),
// and can be converted back from a string with TypeString or FromName.
type Type int

const (
	TypeNone Type = iota
	TypeSigmoid
	TypeTanh
	TypeRelu
	TypePrelu
	TypeElu
	TypeGlu

	// TypeSwish is an alias to TypeGlu: same formula, the name used by the
	// sparsity/no-saturation literature.
	TypeSwish

	TypeSoftplus
	TypeMish
)

//go:generate go tool enumer -type=Type -trimprefix=Type -transform=snake -values -text -output=gen_type_enumer.go activations.go

const (
	// DefaultAlpha is the negative-side slope (Prelu) or scale (Elu) used by Apply.
	DefaultAlpha = 0.1

	// DefaultBeta is the Softplus sharpness used by Apply. It is also the value
	// Mish fixes its inner Softplus to.
	DefaultBeta = 1.0
)

// Apply computes the activation of the given type on z. The TypeNone
// activation is a no-op.
//
// The parametric activations use DefaultAlpha and DefaultBeta; call Prelu, Elu
// or Softplus directly to choose the parameter.
//
// See TypeValues for valid values.
func Apply[T constraints.Float](activation Type, z T) T {
	switch activation {
	case TypeNone:
		return z
	case TypeSigmoid:
		return Sigmoid(z)
	case TypeTanh:
		return Tanh(z)
	case TypeRelu:
		return Relu(z)
	case TypePrelu:
		return Prelu(z, DefaultAlpha)
	case TypeElu:
		return Elu(z, DefaultAlpha)
	case TypeGlu, TypeSwish:
		return Glu(z)
	case TypeSoftplus:
		return Softplus(z, DefaultBeta)
	case TypeMish:
		return Mish(z)
	default:
		exceptions.Panicf("Apply got invalid activation value %q: options are %v", activation, TypeValues())
	}
	return 0
}

// FromName converts the name of an activation to its type.
// It panics with a helpful message if name is invalid.
//
// An empty string is converted to TypeNone.
func FromName(name string) Type {
	if name == "" {
		return TypeNone
	}
	activation, err := TypeString(name)
	if err != nil {
		exceptions.Panicf("invalid activation name %q: options are %v", name, TypeValues())
	}
	return activation
}

// Sigmoid returns 1/(1+e^-z). Its saturation makes it a poor hidden-layer
// activation (vanishing gradients) but a good gating function -- see Glu.
func Sigmoid[T constraints.Float](z T) T {
	return 1 / (1 + floats.Exp(-z))
}

// Tanh returns the hyperbolic tangent of z. Zero-centered, unlike Sigmoid;
// commonly used in recurrent networks and LSTMs.
func Tanh[T constraints.Float](z T) T {
	return floats.Tanh(z)
}

// Relu returns max(0, z), the most common activation function.
func Relu[T constraints.Float](z T) T {
	return max(0, z)
}

// Prelu is the parametric Relu: z for positive z, alpha*z otherwise.
// It allows a small gradient when the unit is not active.
func Prelu[T constraints.Float](z, alpha T) T {
	if z > 0 {
		return z
	}
	return alpha * z
}

// Elu is the exponential linear unit: z for positive z, alpha*(e^z-1) otherwise.
func Elu[T constraints.Float](z, alpha T) T {
	if z > 0 {
		return z
	}
	return alpha * (floats.Exp(z) - 1)
}

// Glu is the gated linear unit z*Sigmoid(z), with the gate taken on z itself.
//
// The same formula was independently discovered as "swish" in "Searching for
// Activation Functions" [Ramachandran et al. 2017](https://arxiv.org/abs/1710.05941);
// Swish is provided as an alias.
func Glu[T constraints.Float](z T) T {
	return z * Sigmoid(z)
}

// Swish is an alias for Glu: no saturation, and small negative values are not
// zeroed out.
func Swish[T constraints.Float](z T) T {
	return Glu(z)
}

// Softplus returns log(1+e^(z*beta))/beta, a smooth approximation of Relu.
// The sharpness beta is expected to be non-zero.
func Softplus[T constraints.Float](z, beta T) T {
	return floats.Log(1+floats.Exp(z*beta)) / beta
}

// Mish returns z*tanh(Softplus(z, 1)).
//
// See "Mish: A Self Regularized Non-Monotonic Activation Function"
// [Misra 2019](https://arxiv.org/abs/1908.08681).
func Mish[T constraints.Float](z T) T {
	return z * floats.Tanh(Softplus(z, 1))
}

// Copyright 2026 The MLFuncs Authors. SPDX-License-Identifier: Apache-2.0

package activations

import (
	"github.com/x448/float16"
)

// ApplyFloat16 computes the activation of the given type on an IEEE 754
// half-precision value. The computation is done in float32 and rounded back,
// the usual treatment for a storage-only dtype.
func ApplyFloat16(activation Type, z float16.Float16) float16.Float16 {
	return float16.Fromfloat32(Apply(activation, z.Float32()))
}

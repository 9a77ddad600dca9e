// Copyright 2026 The MLFuncs Authors. SPDX-License-Identifier: Apache-2.0

package losses

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

var (
	testGround    = []float64{0.1, 1.0, 0.3, 0.5, 0.7}
	testPredicted = []float64{0.1, 0.3, 0.4, 0.1, 0.2}
)

// Direct-accumulation renditions of the catalog, written the "explicit loop"
// way. The shipped losses take the formula+reducer path; these serve as
// regression oracles that both styles agree.

func directL1(ground, predicted []float64) float64 {
	var sum float64
	for i := range ground {
		sum += math.Abs(ground[i] - predicted[i])
	}
	return sum
}

func directL2(ground, predicted []float64) float64 {
	var sum float64
	for i := range ground {
		diff := ground[i] - predicted[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

func directHuber(ground, predicted []float64, threshold float64) float64 {
	var sum float64
	for i := range ground {
		diff := ground[i] - predicted[i]
		if diff <= threshold {
			sum += diff * diff / 2
		} else {
			sum += threshold*math.Abs(diff) - threshold/2
		}
	}
	return sum
}

func directBCE(ground, predicted []float64) float64 {
	var sum float64
	for i := range ground {
		sum += ground[i]*math.Log(predicted[i]) + (ground[i]-1)*math.Log(1-predicted[i])
	}
	return -sum / float64(len(ground))
}

func directCE(ground, predicted []float64) float64 {
	var sum float64
	for i := range ground {
		sum += ground[i] * math.Log(predicted[i])
	}
	return -sum / float64(len(ground))
}

func directKL(ground, predicted []float64) float64 {
	var sum float64
	for i := range ground {
		sum += ground[i] * math.Log(ground[i]/predicted[i])
	}
	return sum
}

func directHinge(ground, predicted []float64) float64 {
	var sum float64
	for i := range ground {
		sum += math.Max(0, 1-ground[i]*predicted[i])
	}
	return sum
}

func TestEndToEndScenario(t *testing.T) {
	// Absolute differences are {0, 0.7, 0.1, 0.4, 0.5}.
	assert.InDelta(t, 1.7, L1(testGround, testPredicted), 1e-12)
	assert.InDelta(t, math.Sqrt(0.91), L2(testGround, testPredicted), 1e-12)

	// Signed differences are {0, 0.7, -0.1, 0.4, 0.5}; with threshold 0.2 the
	// terms are {0, 0.04, 0.005, -0.02, 0}.
	assert.InDelta(t, 0.025, Huber(testGround, testPredicted, 0.2), 1e-12)
}

func TestBothStylesAgree(t *testing.T) {
	assert.InDelta(t, directL1(testGround, testPredicted), L1(testGround, testPredicted), 1e-12)
	assert.InDelta(t, directL2(testGround, testPredicted), L2(testGround, testPredicted), 1e-12)
	assert.InDelta(t, directHuber(testGround, testPredicted, 0.2), Huber(testGround, testPredicted, 0.2), 1e-12)
	assert.InDelta(t, directBCE(testGround, testPredicted), BinaryCrossEntropy(testGround, testPredicted), 1e-12)
	assert.InDelta(t, directCE(testGround, testPredicted), CrossEntropy(testGround, testPredicted), 1e-12)
	assert.InDelta(t, directKL(testGround, testPredicted), KLDivergence(testGround, testPredicted), 1e-12)
	assert.InDelta(t, directHinge(testGround, testPredicted), Hinge(testGround, testPredicted), 1e-12)
}

func TestSymmetryAndNonNegativity(t *testing.T) {
	a := []float64{1.5, -2, 0.25, 7}
	b := []float64{-3, 0, 0.5, 6.5}
	assert.Equal(t, L1(a, b), L1(b, a))
	assert.Equal(t, L2(a, b), L2(b, a))
	assert.GreaterOrEqual(t, L2(a, b), 0.0)
	assert.Equal(t, 0.0, L2(a, a))
	assert.Equal(t, 0.0, L1(a, a))
}

func TestL2AgainstVek(t *testing.T) {
	assert.InDelta(t, vek.Distance(testGround, testPredicted), L2(testGround, testPredicted), 1e-12)

	ground32 := []float32{0.1, 1.0, 0.3, 0.5, 0.7}
	predicted32 := []float32{0.1, 0.3, 0.4, 0.1, 0.2}
	assert.InDelta(t, float64(vek32.Distance(ground32, predicted32)), float64(L2(ground32, predicted32)), 1e-6)
}

func TestHuberQuadraticRegion(t *testing.T) {
	// When every |difference| <= threshold, Huber is half the sum of squared
	// differences.
	ground := []float64{1.0, 2.0, 3.0}
	predicted := []float64{1.1, 1.95, 3.05}
	var half float64
	for i := range ground {
		diff := ground[i] - predicted[i]
		half += diff * diff / 2
	}
	assert.InDelta(t, half, Huber(ground, predicted, 0.2), 1e-12)
}

func TestHuberSignedComparison(t *testing.T) {
	// The branch comparison is on the signed difference: a difference of -10
	// stays on the quadratic branch, while +10 goes linear.
	quadratic := Huber([]float64{0}, []float64{10}, 0.2)
	linear := Huber([]float64{10}, []float64{0}, 0.2)
	assert.InDelta(t, 50.0, quadratic, 1e-12)
	assert.InDelta(t, 0.2*10-0.1, linear, 1e-12)
}

func TestBinaryCrossEntropy(t *testing.T) {
	ground := []float64{1, 0}
	predicted := []float64{0.9, 0.2}
	want := -(1*math.Log(0.9) + (0-1)*math.Log(1-0.2)) / 2
	assert.InDelta(t, want, BinaryCrossEntropy(ground, predicted), 1e-12)
}

func TestCrossEntropy(t *testing.T) {
	// One-hot ground: only the labeled term contributes.
	ground := []float64{0, 1, 0}
	predicted := []float64{0.2, 0.5, 0.3}
	assert.InDelta(t, -math.Log(0.5)/3, CrossEntropy(ground, predicted), 1e-12)
}

func TestKLDivergence(t *testing.T) {
	uniform := []float64{0.5, 0.5}
	assert.InDelta(t, 0.0, KLDivergence(uniform, uniform), 1e-12)

	skewed := []float64{0.25, 0.75}
	want := 0.5*math.Log(0.5/0.25) + 0.5*math.Log(0.5/0.75)
	assert.InDelta(t, want, KLDivergence(uniform, skewed), 1e-12)
	assert.Greater(t, KLDivergence(uniform, skewed), 0.0)
}

func TestHinge(t *testing.T) {
	assert.Equal(t, 0.0, Hinge([]float64{-1, 1}, []float64{-1, 1}))
	assert.Equal(t, 2.0, Hinge([]float64{1}, []float64{-1}))
	assert.InDelta(t, 0.5, Hinge([]float64{1}, []float64{0.5}), 1e-12)
}

func TestContrastive(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4} // Euclidean distance 5, squared 25.

	// Identical same-pair features collapse both branches to zero.
	assert.Equal(t, 0.0, Contrastive(true, a, a, 2.0))
	assert.Equal(t, 0.0, Contrastive(false, a, a, 0.0))

	// Same pair: squared distance, no sqrt round-trip.
	assert.InDelta(t, 25.0, Contrastive(true, a, b, 2.0), 1e-12)

	// Different pair: max(margin - distance, 0)^2 uses the distance itself.
	assert.InDelta(t, 25.0, Contrastive(false, a, b, 10.0), 1e-12)
	assert.Equal(t, 0.0, Contrastive(false, a, b, 3.0))
}

func TestTripletRanking(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4}

	// anchor == positive: max(0, margin - L2(anchor, negative)).
	assert.InDelta(t, 2.0, TripletRanking(a, a, b, 7.0), 1e-12)
	assert.Equal(t, 0.0, TripletRanking(a, a, b, 1.0))

	// Negative further than positive by more than margin: loss is zero.
	assert.Equal(t, 0.0, TripletRanking(a, []float64{0.1, 0}, b, 1.0))
}

func TestLengthMismatchPanics(t *testing.T) {
	short := []float64{1}
	long := []float64{1, 2}
	for name, fn := range map[string]func(){
		"L1":                 func() { L1(short, long) },
		"L2":                 func() { L2(short, long) },
		"Huber":              func() { Huber(short, long, 0.2) },
		"BinaryCrossEntropy": func() { BinaryCrossEntropy(short, long) },
		"CrossEntropy":       func() { CrossEntropy(short, long) },
		"KLDivergence":       func() { KLDivergence(short, long) },
		"Hinge":              func() { Hinge(short, long) },
		"Contrastive":        func() { Contrastive(false, short, long, 1.0) },
		"TripletRanking":     func() { TripletRanking(short, long, long, 1.0) },
	} {
		require.Panics(t, fn, "%s must reject mismatched lengths", name)
	}
}

func TestDomainViolationPropagates(t *testing.T) {
	// Out-of-domain inputs are not clamped: the non-finite value reaches the
	// caller.
	assert.True(t, math.IsInf(BinaryCrossEntropy([]float64{1}, []float64{0}), 1))
	assert.True(t, math.IsInf(CrossEntropy([]float64{1, 0}, []float64{0, 1}), 1))
	assert.True(t, math.IsInf(KLDivergence([]float64{0.5, 0.5}, []float64{0, 1}), 1))
}

func TestFloat32Catalog(t *testing.T) {
	ground := []float32{0.1, 1.0, 0.3, 0.5, 0.7}
	predicted := []float32{0.1, 0.3, 0.4, 0.1, 0.2}
	assert.InDelta(t, 1.7, float64(L1(ground, predicted)), 1e-6)
	assert.InDelta(t, math.Sqrt(0.91), float64(L2(ground, predicted)), 1e-6)
	assert.InDelta(t, 0.025, float64(Huber(ground, predicted, 0.2)), 1e-6)
	assert.InDelta(t,
		float64(BinaryCrossEntropy(ground, predicted)),
		BinaryCrossEntropy(testGround, testPredicted), 1e-5)
}

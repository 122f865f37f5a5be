package munsell

import (
	"sync"

	"gonum.org/v1/gonum/interp"
)

// The quintic relating Munsell value to luminous reflectance in percent
// (ASTM-style fit). It is strictly increasing on [0,10] and maps 0 to 0 and
// 10 to 100 exactly.
func luminancePercent(v float64) float64 {
	return v * (1.1914 + v*(-0.22533+v*(0.23352+v*(-0.020484+v*0.00081939))))
}

// LuminanceFromValue converts a Munsell value in [0,10] to luminance Y in
// [0,1]. Out-of-range values are clamped rather than rejected.
func LuminanceFromValue(value float64) float64 {
	return luminancePercent(clamp(value, 0, 10)) / 100
}

// The inverse is a dense piecewise-linear fit of the same quintic, built
// once. 8192 knots keep the round-trip error well below the solver's
// convergence threshold without any per-call iteration.
var valueFromLuminance = sync.OnceValue(func() *interp.PiecewiseLinear {
	const knots = 8192
	xs := make([]float64, knots)
	ys := make([]float64, knots)
	for i := range xs {
		v := 10 * float64(i) / (knots - 1)
		xs[i] = luminancePercent(v) / 100
		ys[i] = v
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		// The knots are strictly increasing by construction.
		panic(err)
	}
	return &pl
})

// ValueFromLuminance converts luminance Y in [0,1] to a Munsell value in
// [0,10], the exact inverse of LuminanceFromValue up to the fit resolution.
// Out-of-range luminances are clamped rather than rejected.
func ValueFromLuminance(y float64) float64 {
	if y <= 0 {
		return 0
	}
	if y >= 1 {
		return 10
	}
	return valueFromLuminance().Predict(y)
}

package munsell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChrisGVE/MunsellSpace-sub002/renotation"
)

func TestPredictXYGridPoints(t *testing.T) {
	conv := newTestConverter(t)
	for _, f := range []Family{FamilyR, FamilyGY, FamilyB} {
		for _, hue := range []float64{2.5, 5, 7.5, 10} {
			for _, chroma := range []float64{2, 4, 6} {
				s := Spec{Hue: hue, Value: 5, Chroma: chroma, Family: f}
				x, y := conv.predictXY(s)
				wantX, wantY, ok := testTable().XY(f.String(), hue, 5, int(chroma))
				require.True(t, ok)
				require.InDelta(t, wantX, x, 1e-12, "%v", s)
				require.InDelta(t, wantY, y, 1e-12, "%v", s)
			}
		}
	}
}

func TestPredictXYNeutral(t *testing.T) {
	conv := newTestConverter(t)
	for _, value := range []float64{0, 1, 5.5, 10} {
		x, y := conv.predictXY(Spec{Value: value})
		require.Equal(t, renotation.IlluminantC.X, x)
		require.Equal(t, renotation.IlluminantC.Y, y)
	}
}

func TestPredictXYOddChroma(t *testing.T) {
	conv := newTestConverter(t)
	// An odd chroma sits halfway between the even rows; with collinear rows
	// that midpoint is exact.
	x2, y2 := conv.predictXY(Spec{Hue: 5, Value: 5, Chroma: 2, Family: FamilyG})
	x4, y4 := conv.predictXY(Spec{Hue: 5, Value: 5, Chroma: 4, Family: FamilyG})
	x3, y3 := conv.predictXY(Spec{Hue: 5, Value: 5, Chroma: 3, Family: FamilyG})
	require.InDelta(t, (x2+x4)/2, x3, 1e-12)
	require.InDelta(t, (y2+y4)/2, y3, 1e-12)

	// Below the innermost row the blend starts at the achromatic center.
	x1, y1 := conv.predictXY(Spec{Hue: 5, Value: 5, Chroma: 1, Family: FamilyG})
	gx, gy := greyXY()
	require.InDelta(t, (gx+x2)/2, x1, 1e-12)
	require.InDelta(t, (gy+y2)/2, y1, 1e-12)
}

func TestPredictXYChromaExtrapolation(t *testing.T) {
	conv := newTestConverter(t)
	// Value 5 columns stop at chroma 14; beyond that the two outermost rows
	// extrapolate, which for radial columns lands exactly on the same ray.
	angle := hueAngle(5, FamilyR)
	x, y := conv.predictXY(Spec{Hue: 5, Value: 5, Chroma: 18, Family: FamilyR})
	wantX, wantY := synthXY(5, 18, angle)
	require.InDelta(t, wantX, x, 1e-9)
	require.InDelta(t, wantY, y, 1e-9)
}

func TestPredictXYHueBlend(t *testing.T) {
	conv := newTestConverter(t)
	gx, gy := greyXY()
	// Off-grid hues stay inside the wedge spanned by the bounding grid hues.
	for _, f := range []Family{FamilyR, FamilyY, FamilyPB} {
		for _, hue := range []float64{3.1, 6.4, 8.9} {
			lo, hi, _ := renotation.BoundingHues(hue)
			xLo, yLo := conv.predictXY(Spec{Hue: lo, Value: 5, Chroma: 6, Family: f})
			xHi, yHi := conv.predictXY(Spec{Hue: hi, Value: 5, Chroma: 6, Family: f})
			x, y := conv.predictXY(Spec{Hue: hue, Value: 5, Chroma: 6, Family: f})

			rhoLo, _ := toPolar(xLo-gx, yLo-gy)
			rhoHi, _ := toPolar(xHi-gx, yHi-gy)
			rho, phi := toPolar(x-gx, y-gy)
			// Straight-chord blends may dip slightly inside the endpoint radii.
			require.GreaterOrEqual(t, rho, 0.99*math.Min(rhoLo, rhoHi), "%g%s", hue, f)
			require.LessOrEqual(t, rho, math.Max(rhoLo, rhoHi)+1e-9, "%g%s", hue, f)

			aLo := hueAngle(lo, f)
			aHi := hueAngle(hi, f)
			require.LessOrEqual(t, math.Abs(signedDeg(phi-aLo)), math.Abs(signedDeg(aHi-aLo))+1e-9, "%g%s", hue, f)
			require.LessOrEqual(t, math.Abs(signedDeg(phi-aHi)), math.Abs(signedDeg(aHi-aLo))+1e-9, "%g%s", hue, f)
		}
	}
}

func TestPredictXYHueZeroUsesPreviousFamily(t *testing.T) {
	conv := newTestConverter(t)
	x0, y0 := conv.predictXY(Spec{Hue: 0, Value: 5, Chroma: 4, Family: FamilyYR})
	x10, y10 := conv.predictXY(Spec{Hue: 10, Value: 5, Chroma: 4, Family: FamilyR})
	require.Equal(t, x10, x0)
	require.Equal(t, y10, y0)
}

func TestPredictXYFractionalValue(t *testing.T) {
	conv := newTestConverter(t)
	s := Spec{Hue: 5, Value: 5.5, Chroma: 4, Family: FamilyBG}
	x5, y5 := conv.predictXY(Spec{Hue: 5, Value: 5, Chroma: 4, Family: FamilyBG})
	x6, y6 := conv.predictXY(Spec{Hue: 5, Value: 6, Chroma: 4, Family: FamilyBG})

	lum5, lum6 := LuminanceFromValue(5), LuminanceFromValue(6)
	tt := (LuminanceFromValue(5.5) - lum5) / (lum6 - lum5)
	x, y := conv.predictXY(s)
	require.InDelta(t, lerp(x5, x6, tt), x, 1e-12)
	require.InDelta(t, lerp(y5, y6, tt), y, 1e-12)
	// The luminance blend is not the value midpoint.
	require.Greater(t, math.Abs(tt-0.5), 0.01)
}

func TestPredictXYExtremeValues(t *testing.T) {
	conv := newTestConverter(t)
	// At value 10 every chromaticity degenerates to the reference white.
	x, y := conv.predictXY(Spec{Hue: 5, Value: 10, Chroma: 6, Family: FamilyR})
	require.Equal(t, renotation.IlluminantC.X, x)
	require.Equal(t, renotation.IlluminantC.Y, y)

	// Below value 1 the value-1 chromaticity is held.
	xLow, yLow := conv.predictXY(Spec{Hue: 5, Value: 0.4, Chroma: 4, Family: FamilyR})
	x1, y1 := conv.predictXY(Spec{Hue: 5, Value: 1, Chroma: 4, Family: FamilyR})
	require.InDelta(t, x1, xLow, 1e-12)
	require.InDelta(t, y1, yLow, 1e-12)
}

func TestMaxChroma(t *testing.T) {
	conv := newTestConverter(t)
	require.Equal(t, 14.0, conv.maxChroma(5, FamilyR, 5))
	require.Equal(t, 14.0, conv.maxChroma(6.3, FamilyG, 5))
	// Fractional value takes the tighter neighbouring plane.
	require.Equal(t, 12.0, conv.maxChroma(5, FamilyR, 4.2))
	require.Equal(t, 10.0, conv.maxChroma(5, FamilyR, 6.9))
	// Hue 0 resolves against the previous family's 10 column.
	require.Equal(t, 14.0, conv.maxChroma(0, FamilyYR, 5))

	// Near-integer values snap onto their own plane instead of taking the
	// neighbouring minimum.
	require.Equal(t, 10.0, conv.maxChroma(7.5, FamilyPB, 3-1e-9))
	require.Equal(t, 10.0, conv.maxChroma(7.5, FamilyPB, 3+1e-9))
	require.Equal(t, 8.0, conv.maxChroma(7.5, FamilyPB, 2.9))

	// Above value 9 the ceiling shrinks toward zero at white.
	high := conv.maxChroma(5, FamilyR, 9.5)
	require.Greater(t, high, 0.0)
	require.Less(t, high, conv.maxChroma(5, FamilyR, 9))
	require.InDelta(t, 0, conv.maxChroma(5, FamilyR, 10), 1e-9)
}

func TestToPolar(t *testing.T) {
	rho, phi := toPolar(1, 0)
	require.Equal(t, 1.0, rho)
	require.Equal(t, 0.0, phi)
	rho, phi = toPolar(0, -2)
	require.Equal(t, 2.0, rho)
	require.Equal(t, 270.0, phi)
}

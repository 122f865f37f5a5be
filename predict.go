package munsell

import (
	"math"

	"github.com/ChrisGVE/MunsellSpace-sub002/renotation"
)

// greyXY is the achromatic center: the chromaticity every neutral shares,
// regardless of value.
func greyXY() (float64, float64) {
	return renotation.IlluminantC.X, renotation.IlluminantC.Y
}

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

func toPolar(dx, dy float64) (rho, phi float64) {
	return math.Hypot(dx, dy), normDeg(math.Atan2(dy, dx) * 180 / math.Pi)
}

// predictXY returns the chromaticity the renotation dataset predicts for an
// arbitrary specification. Fractional hue, value and chroma are interpolated
// onto the table's discrete grid; positions beyond the measured gamut are
// extrapolated, never rejected, so the refinement loops can evaluate any
// trial specification.
func (c *Converter) predictXY(s Spec) (float64, float64) {
	if s.Chroma <= 0 {
		return greyXY()
	}
	value := clamp(s.Value, 0, 10)
	vLo := math.Floor(value)
	if value == vLo {
		return c.xyAtValue(s, int(vLo))
	}
	// Fractional value blends linearly in luminance, not in value.
	lumLo := LuminanceFromValue(vLo)
	lumHi := LuminanceFromValue(vLo + 1)
	t := (LuminanceFromValue(value) - lumLo) / (lumHi - lumLo)
	xLo, yLo := c.xyAtValue(s, int(vLo))
	xHi, yHi := c.xyAtValue(s, int(vLo)+1)
	return lerp(xLo, xHi, t), lerp(yLo, yHi, t)
}

// xyAtValue resolves a specification at one integer value plane,
// interpolating across the even-chroma grid. Above value 9 the dataset has
// no rows; the plane at 10 degenerates to the reference white. Below value 1
// the chromaticity of the value-1 row is held while luminance falls to
// black.
func (c *Converter) xyAtValue(s Spec, value int) (float64, float64) {
	if value >= 10 {
		return greyXY()
	}
	if value < 1 {
		value = 1
	}
	cLo := 2 * math.Floor(s.Chroma/2)
	if s.Chroma == cLo {
		return c.ovoidXY(s.Hue, s.Family, value, int(cLo))
	}
	var xLo, yLo float64
	if cLo == 0 {
		xLo, yLo = greyXY()
	} else {
		xLo, yLo = c.ovoidXY(s.Hue, s.Family, value, int(cLo))
	}
	xHi, yHi := c.ovoidXY(s.Hue, s.Family, value, int(cLo)+2)
	t := (s.Chroma - cLo) / 2
	return lerp(xLo, xHi, t), lerp(yLo, yHi, t)
}

// ovoidXY resolves one even-chroma sample at an integer value, blending
// between the two bounding grid hues when the hue is off-grid. The blend runs
// over hue angle, in straight (x, y) coordinates or in polar coordinates
// about the achromatic center as the region table dictates.
func (c *Converter) ovoidXY(hue float64, family Family, value, chroma int) (float64, float64) {
	if chroma <= 0 {
		return greyXY()
	}
	if hue == 0 {
		return c.gridXY(family.Prev(), 10, value, chroma)
	}
	loHue, hiHue, prevFamily := renotation.BoundingHues(hue)
	if loHue == hiHue {
		return c.gridXY(family, hue, value, chroma)
	}
	loFamily := family
	if prevFamily {
		loFamily = family.Prev()
	}
	xLo, yLo := c.gridXY(loFamily, loHue, value, chroma)
	xHi, yHi := c.gridXY(family, hiHue, value, chroma)

	aLo := hueAngle(loHue, loFamily)
	aHi := hueAngle(hiHue, family)
	a := hueAngle(hue, family)
	if aHi <= aLo {
		aHi += 360
	}
	if a < aLo {
		a += 360
	}
	t := (a - aLo) / (aHi - aLo)

	if renotation.InterpolationMethod(value, chroma, normDeg(a)) == renotation.Linear {
		return lerp(xLo, xHi, t), lerp(yLo, yHi, t)
	}
	gx, gy := greyXY()
	rhoLo, phiLo := toPolar(xLo-gx, yLo-gy)
	rhoHi, phiHi := toPolar(xHi-gx, yHi-gy)
	// Keep the two polar angles on the same branch before blending.
	if phiHi-phiLo > 180 {
		phiHi -= 360
	} else if phiLo-phiHi > 180 {
		phiHi += 360
	}
	rho := lerp(rhoLo, rhoHi, t)
	phi := lerp(phiLo, phiHi, t) * math.Pi / 180
	return gx + rho*math.Cos(phi), gy + rho*math.Sin(phi)
}

// gridXY reads one grid hue column, interpolating between measured chroma
// rows and extrapolating linearly from the two outermost rows when chroma
// exceeds the measured maximum.
func (c *Converter) gridXY(family Family, hue float64, value, chroma int) (float64, float64) {
	col := c.table.Column(family.String(), hue, value)
	switch len(col) {
	case 0:
		return greyXY()
	case 1:
		// A single measured row: scale its offset from the center.
		gx, gy := greyXY()
		t := float64(chroma) / float64(col[0].Chroma)
		return lerp(gx, col[0].X, t), lerp(gy, col[0].Y, t)
	}
	if chroma <= col[0].Chroma {
		// Below the innermost row: blend from the achromatic center.
		gx, gy := greyXY()
		t := float64(chroma) / float64(col[0].Chroma)
		return lerp(gx, col[0].X, t), lerp(gy, col[0].Y, t)
	}
	for i := 1; i < len(col); i++ {
		if chroma <= col[i].Chroma {
			t := float64(chroma-col[i-1].Chroma) / float64(col[i].Chroma-col[i-1].Chroma)
			return lerp(col[i-1].X, col[i].X, t), lerp(col[i-1].Y, col[i].Y, t)
		}
	}
	lo, hi := col[len(col)-2], col[len(col)-1]
	t := float64(chroma-lo.Chroma) / float64(hi.Chroma-lo.Chroma)
	return lerp(lo.X, hi.X, t), lerp(lo.Y, hi.Y, t)
}

// maxChroma returns the maximum chroma the dataset documents around the
// given hue and value: the smallest of the maxima measured at the bounding
// grid hues and values: a trial specification clamped to it always resolves
// against measured rows. Above value 9 the ceiling shrinks toward zero at
// white, interpolated in luminance.
func (c *Converter) maxChroma(hue float64, family Family, value float64) float64 {
	// The luminance inverse lands within ~1e-7 of an integer value; snap so
	// the ceiling does not jump to the neighbouring plane's minimum.
	if iv := math.Round(value); math.Abs(value-iv) < 1e-6 {
		value = iv
	}
	type gridHue struct {
		family Family
		hue    float64
	}
	var hues [2]gridHue
	if hue == 0 {
		hues[0] = gridHue{family.Prev(), 10}
		hues[1] = hues[0]
	} else {
		loHue, hiHue, prevFamily := renotation.BoundingHues(hue)
		loFamily := family
		if prevFamily {
			loFamily = family.Prev()
		}
		hues[0] = gridHue{loFamily, loHue}
		hues[1] = gridHue{family, hiHue}
	}

	vLo := int(clamp(math.Floor(value), 1, 9))
	vHi := vLo
	if value > float64(vLo) && vLo < 9 {
		vHi = vLo + 1
	}
	limit := math.Inf(1)
	for _, h := range hues {
		for _, v := range [2]int{vLo, vHi} {
			if m, ok := c.table.MaxChroma(h.family.String(), h.hue, v); ok {
				limit = math.Min(limit, float64(m))
			}
		}
	}
	if math.IsInf(limit, 1) {
		return 0
	}
	if value > 9 {
		y9 := LuminanceFromValue(9)
		t := (LuminanceFromValue(value) - y9) / (LuminanceFromValue(10) - y9)
		limit *= 1 - t
	}
	return limit
}

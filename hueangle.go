package munsell

import "math"

// The hue circle is parameterized by a "single hue" in [0,10): the family
// index (R=0 ... RP=9) plus (hue-5)/10, so each family is centered on its 5
// hue. Single hue maps to degrees through a fixed piecewise-linear table of
// eight segments; the families deliberately occupy unequal angular spans.
var (
	singleHueBreaks = [9]float64{0, 2, 3, 4, 5, 6, 8, 9, 10}
	hueAngleBreaks  = [9]float64{0, 45, 70, 135, 160, 225, 255, 315, 360}
)

// piecewise evaluates the piecewise-linear map defined by the strictly
// increasing breakpoints xs onto ys at x, clamping outside the table.
func piecewise(xs, ys []float64, x float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			t := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + t*(ys[i]-ys[i-1])
		}
	}
	return ys[len(ys)-1]
}

func normDeg(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// signedDeg folds an angular difference into (-180, 180].
func signedDeg(angle float64) float64 {
	angle = normDeg(angle)
	if angle > 180 {
		angle -= 360
	}
	return angle
}

// hueAngle maps a hue within its family onto the continuous [0,360) hue
// circle. hue may be 10, denoting the upper family boundary.
func hueAngle(hue float64, family Family) float64 {
	single := math.Mod(float64(family-FamilyR)+(hue-5)/10, 10)
	if single < 0 {
		single += 10
	}
	return normDeg(piecewise(singleHueBreaks[:], hueAngleBreaks[:], single))
}

// hueFromAngle inverts hueAngle, picking the family whose center is nearest
// and a hue in [0,10), the same canonical form Normalize emits. Exactly at a
// family boundary the higher family with hue 0 is chosen.
func hueFromAngle(angle float64) (float64, Family) {
	single := piecewise(hueAngleBreaks[:], singleHueBreaks[:], normDeg(angle))
	nearest := math.Floor(single + 0.5) // may be 10, wrapping back onto R
	hue := 10*(single-nearest) + 5
	idx := int(nearest) % 10
	if hue >= 10 {
		hue -= 10
		idx = (idx + 1) % 10
	}
	if hue < 0 {
		hue = 0
	}
	return hue, FamilyR + Family(idx)
}

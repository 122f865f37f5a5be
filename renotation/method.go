package renotation

import "math"

// Method selects how the chromaticity predictor blends between two bounding
// grid hues: straight (x, y) interpolation, or interpolation of the polar
// (rho, phi) coordinates about the achromatic center.
type Method uint8

const (
	Linear Method = iota
	Radial
)

func (m Method) String() string {
	if m == Radial {
		return "Radial"
	}
	return "Linear"
}

// radialRegion marks an angular window in which the ovoids are close enough
// to circular that polar interpolation is preferred, from minChroma outward.
type radialRegion struct {
	minChroma int
	lo, hi    float64 // hue angle degrees; lo > hi means the window wraps 360
}

// The ovoids flatten toward the warm (yellow-red) sector at low chroma and
// round out toward the gamut edge, more so at mid values where the measured
// gamut is widest. Regions are keyed by integer value.
var radialRegions = map[int][]radialRegion{
	1: {{8, 0, 360}, {4, 85, 280}, {2, 135, 255}},
	2: {{10, 0, 360}, {4, 85, 300}, {2, 135, 260}},
	3: {{12, 0, 360}, {6, 70, 300}, {2, 160, 260}},
	4: {{12, 0, 360}, {6, 70, 315}, {4, 135, 280}},
	5: {{14, 0, 360}, {6, 70, 315}, {4, 135, 300}},
	6: {{14, 0, 360}, {8, 70, 315}, {4, 160, 300}},
	7: {{12, 0, 360}, {8, 85, 315}, {4, 160, 280}},
	8: {{12, 0, 360}, {6, 85, 300}, {2, 160, 260}},
	9: {{10, 0, 360}, {4, 85, 280}, {2, 135, 255}},
}

// InterpolationMethod returns the blend method for the region containing the
// given integer value, even chroma and hue angle. It is a pure function of
// its arguments.
func InterpolationMethod(value, chroma int, hueAngle float64) Method {
	hueAngle = math.Mod(hueAngle, 360)
	if hueAngle < 0 {
		hueAngle += 360
	}
	if value < 1 {
		value = 1
	}
	if value > 9 {
		value = 9
	}
	for _, r := range radialRegions[value] {
		if chroma < r.minChroma {
			continue
		}
		if r.lo <= r.hi {
			if hueAngle >= r.lo && hueAngle < r.hi {
				return Radial
			}
		} else if hueAngle >= r.lo || hueAngle < r.hi {
			return Radial
		}
	}
	return Linear
}

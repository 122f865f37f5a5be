package munsell

import "github.com/lucasb-eyer/go-colorful"

// SRGBToXyY converts gamma-encoded sRGB components in [0,1] to the CIE xyY
// triple a Converter with the default input white consumes. Components are
// clipped into [0,1] first.
func SRGBToXyY(r, g, b float64) (x, y, Y float64) {
	col := colorful.Color{R: clamp(r, 0, 1), G: clamp(g, 0, 1), B: clamp(b, 0, 1)}
	return col.Xyy()
}

package munsell

import (
	"math"
	"sync"
	"testing"

	"github.com/ChrisGVE/MunsellSpace-sub002/renotation"
)

// The tests run against a synthetic dataset with the same grid shape as the
// measured one: per (family, grid hue, value) column the even-chroma samples
// fan out from the achromatic center along the column's hue angle, with a
// radius linear in chroma, growing with value, and modulated by a mild
// angular eccentricity so hue refinement has real work to do. The gamut is
// widest at value 5 and narrows toward black and white, like the real
// dataset.
func synthMaxChroma(value int) int {
	return 2 * (2 + min(value, 10-value))
}

func synthRadius(value, chroma int, angleDeg float64) float64 {
	rad := angleDeg * math.Pi / 180
	ecc := 1 + 0.08*math.Sin(3*rad) + 0.05*math.Cos(rad)
	return (0.004 + 0.0022*float64(value)) * float64(chroma) * ecc
}

func synthXY(value, chroma int, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	r := synthRadius(value, chroma, angleDeg)
	return renotation.IlluminantC.X + r*math.Cos(rad), renotation.IlluminantC.Y + r*math.Sin(rad)
}

var testTable = sync.OnceValue(func() *renotation.Table {
	var entries []renotation.Entry
	for fi, fam := range renotation.Families {
		for _, hue := range []float64{2.5, 5, 7.5, 10} {
			angle := hueAngle(hue, FamilyR+Family(fi))
			for value := 1; value <= 9; value++ {
				for chroma := 2; chroma <= synthMaxChroma(value); chroma += 2 {
					x, y := synthXY(value, chroma, angle)
					entries = append(entries, renotation.Entry{
						Family: fam, Hue: hue, Value: value, Chroma: chroma,
						X: x, Y: y,
					})
				}
			}
		}
	}
	table, err := renotation.New(entries)
	if err != nil {
		panic(err)
	}
	return table
})

func newTestConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()
	return New(testTable(), opts...)
}

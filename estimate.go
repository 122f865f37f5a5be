package munsell

import (
	"math"

	"github.com/jkl1337/go-chromath"
)

type vec3 [3]float64
type mat3 [3][3]float64

// Bradford transform matrices (forward and inverse), used for the
// von-Kries-style chromatic adaptation between the input reference white and
// the renotation dataset's illuminant C.
var (
	bradford = mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	invBradford = mat3{
		{0.9869929055, -0.1470542564, 0.1599626517},
		{0.4323052697, 0.5183602715, 0.0492912282},
		{-0.0085286646, 0.0400428217, 0.9684866958},
	}
)

func mulMat3(a, b mat3) mat3 {
	var out mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func mulMat3Vec(m mat3, v vec3) vec3 {
	return vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// whitePointXYZ builds the XYZ (Y=1) of a reference white from its
// chromaticity.
func whitePointXYZ(x, y float64) vec3 {
	return vec3{x / y, 1, (1 - x - y) / y}
}

// adaptationMatrix constructs the 3x3 matrix adapting XYZ values from
// sourceWhite to targetWhite: a diagonal von Kries scaling in the Bradford
// cone space. It maps sourceWhite to targetWhite exactly.
func adaptationMatrix(sourceWhite, targetWhite vec3) mat3 {
	src := mulMat3Vec(bradford, sourceWhite)
	tgt := mulMat3Vec(bradford, targetWhite)
	diag := mat3{
		{tgt[0] / src[0], 0, 0},
		{0, tgt[1] / src[1], 0},
		{0, 0, tgt[2] / src[2]},
	}
	return mulMat3(invBradford, mulMat3(diag, bradford))
}

// The chroma of the Lab-like intermediate space overshoots the Munsell
// chroma range by roughly this factor.
const labChromaScale = 5.5

// initialGuess seeds the refinement loops from a chromaticity already
// expressed in the table's illuminant C frame. The guess need not be
// accurate; the solver only needs a starting family, hue and chroma of the
// right order of magnitude.
func (c *Converter) initialGuess(x, y, luminance float64, value float64) Spec {
	X := x * luminance / y
	Z := (1 - x - y) * luminance / y
	lab := c.lab.Invert(chromath.XYZ{X, luminance, Z})
	a, b := lab.A(), lab.B()
	chroma := math.Hypot(a, b) / labChromaScale
	hue, family := hueFromAngle(normDeg(math.Atan2(b, a) * 180 / math.Pi))
	return Spec{Hue: hue, Value: value, Chroma: chroma, Family: family}
}

/*
Package munsell converts CIE xyY chromaticity/luminance triples into Munsell
color specifications (hue, value, chroma within one of ten hue families) by
iteratively searching the empirical Munsell renotation dataset until the
predicted chromaticity matches the input.

The renotation table is supplied at construction time (see the renotation
subpackage); a Converter is safe for concurrent use once built.
*/
package munsell

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ChrisGVE/MunsellSpace-sub002/renotation"
)

// Family identifies one of the ten Munsell hue families, in ascending
// hue-angle order. The zero value marks an achromatic specification, where
// hue is undefined.
type Family int

const (
	FamilyNone Family = iota
	FamilyR
	FamilyYR
	FamilyY
	FamilyGY
	FamilyG
	FamilyBG
	FamilyB
	FamilyPB
	FamilyP
	FamilyRP
)

func (f Family) String() string {
	if f < FamilyR || f > FamilyRP {
		return "N"
	}
	return renotation.Families[int(f-FamilyR)]
}

// Next returns the family whose hue range follows f on the hue circle.
func (f Family) Next() Family {
	if f == FamilyNone {
		return FamilyNone
	}
	return FamilyR + (f-FamilyR+1)%10
}

// Prev returns the family whose hue range precedes f on the hue circle.
func (f Family) Prev() Family {
	if f == FamilyNone {
		return FamilyNone
	}
	return FamilyR + (f-FamilyR+9)%10
}

// FamilyFromString maps a family letter code ("R", "GY", ...) to its Family.
func FamilyFromString(s string) (Family, bool) {
	for i, name := range renotation.Families {
		if name == s {
			return FamilyR + Family(i), true
		}
	}
	return FamilyNone, false
}

// Spec is a Munsell color specification. Canonical form has Hue in [0,10)
// (hue 10.0 in family F is written as 0.0 in the next family), Value in
// [0,10], and Chroma >= 0, with Hue and Family cleared when Chroma is zero.
type Spec struct {
	Hue    float64
	Value  float64
	Chroma float64
	Family Family
}

// Achromatic reports whether the specification denotes a neutral color.
func (s Spec) Achromatic() bool { return s.Chroma == 0 }

// String renders the canonical textual form: "7.5GY 8.0/12.0" for chromatic
// specifications and "N 8.0" for neutrals.
func (s Spec) String() string {
	if s.Achromatic() {
		return fmt.Sprintf("N %.1f", s.Value)
	}
	return fmt.Sprintf("%.1f%s %.1f/%.1f", s.Hue, s.Family, s.Value, s.Chroma)
}

// ParseSpec parses the textual forms produced by Spec.String, e.g.
// "7.5GY 8.0/12.0" or "N 9.2". The result is normalized.
func ParseSpec(text string) (Spec, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Spec{}, fmt.Errorf("munsell: cannot parse specification %q", text)
	}
	if fields[0] == "N" {
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Spec{}, fmt.Errorf("munsell: bad neutral value in %q", text)
		}
		return Normalize(Spec{Value: value}), nil
	}
	i := strings.IndexFunc(fields[0], func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if i <= 0 || i == len(fields[0]) {
		return Spec{}, fmt.Errorf("munsell: bad hue token in %q", text)
	}
	hue, err := strconv.ParseFloat(fields[0][:i], 64)
	if err != nil || hue < 0 || hue > 10 {
		return Spec{}, fmt.Errorf("munsell: bad hue in %q", text)
	}
	family, ok := FamilyFromString(fields[0][i:])
	if !ok {
		return Spec{}, fmt.Errorf("munsell: unknown hue family in %q", text)
	}
	slash := strings.IndexByte(fields[1], '/')
	if slash < 0 {
		return Spec{}, fmt.Errorf("munsell: missing value/chroma separator in %q", text)
	}
	value, err := strconv.ParseFloat(fields[1][:slash], 64)
	if err != nil {
		return Spec{}, fmt.Errorf("munsell: bad value in %q", text)
	}
	chroma, err := strconv.ParseFloat(fields[1][slash+1:], 64)
	if err != nil || chroma < 0 {
		return Spec{}, fmt.Errorf("munsell: bad chroma in %q", text)
	}
	return Normalize(Spec{Hue: hue, Value: value, Chroma: chroma, Family: family}), nil
}

// XyY is an immutable CIE xyY input point for batch conversion. Luminance is
// the Y component, in [0,1].
type XyY struct {
	X, Y      float64
	Luminance float64
}

// Result is the outcome of one conversion. Converged distinguishes a solution
// within the convergence threshold from the best-effort specification
// returned when the iteration caps were exhausted. GamutLimited marks a color
// whose chroma was pinned at the maximum the dataset documents for its
// hue and value.
type Result struct {
	Spec         Spec
	Converged    bool
	GamutLimited bool
	Iterations   int
	Distance     float64
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}

// Package renotation holds the empirical Munsell renotation reference
// dataset: measured chromaticity coordinates sampled on a discrete grid of
// hue (2.5 steps within each of the ten families), integer value and even
// chroma. The table is built once and is read-only afterwards; lookups are
// safe for any number of concurrent readers.
package renotation

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Families lists the ten hue family letters in ascending hue-angle order,
// starting at R. The cycle wraps: 10RP borders 0R.
var Families = [10]string{"R", "YR", "Y", "GY", "G", "BG", "B", "PB", "P", "RP"}

// IlluminantC is the chromaticity of the dataset's reference illuminant,
// the achromatic center of every value plane.
var IlluminantC = struct{ X, Y float64 }{0.31006, 0.31616}

// Entry is a single measured sample. Hue is one of 2.5, 5, 7.5 or 10 within
// the family, Value an integer in [1,9], Chroma a positive even integer.
type Entry struct {
	Family string
	Hue    float64
	Value  int
	Chroma int
	X, Y   float64
}

// ChromaXY is one chroma row of a (family, hue, value) column.
type ChromaXY struct {
	Chroma int
	X, Y   float64
}

type columnKey struct {
	family string
	hue10  int // hue scaled by 10 so the key stays integral
	value  int
}

// Table is the immutable lookup structure over the loaded entries.
type Table struct {
	columns map[columnKey][]ChromaXY
	len     int
}

func familyIndex(family string) int {
	for i, f := range Families {
		if f == family {
			return i
		}
	}
	return -1
}

func hueOnGrid(hue float64) bool {
	switch hue {
	case 2.5, 5, 7.5, 10:
		return true
	}
	return false
}

// New builds a table from entries. Entries must sit on the renotation grid;
// duplicate grid positions are rejected.
func New(entries []Entry) (*Table, error) {
	t := &Table{columns: make(map[columnKey][]ChromaXY)}
	seen := make(map[columnKey]map[int]bool)
	for i, e := range entries {
		if familyIndex(e.Family) < 0 {
			return nil, fmt.Errorf("renotation: entry %d: unknown hue family %q", i, e.Family)
		}
		if !hueOnGrid(e.Hue) {
			return nil, fmt.Errorf("renotation: entry %d: hue %g is not on the 2.5 grid", i, e.Hue)
		}
		if e.Value < 1 || e.Value > 9 {
			return nil, fmt.Errorf("renotation: entry %d: value %d outside [1,9]", i, e.Value)
		}
		if e.Chroma < 2 || e.Chroma%2 != 0 {
			return nil, fmt.Errorf("renotation: entry %d: chroma %d is not a positive even integer", i, e.Chroma)
		}
		k := columnKey{e.Family, int(math.Round(e.Hue * 10)), e.Value}
		if seen[k] == nil {
			seen[k] = make(map[int]bool)
		}
		if seen[k][e.Chroma] {
			return nil, fmt.Errorf("renotation: entry %d: duplicate sample %g%s %d/%d", i, e.Hue, e.Family, e.Value, e.Chroma)
		}
		seen[k][e.Chroma] = true
		t.columns[k] = append(t.columns[k], ChromaXY{e.Chroma, e.X, e.Y})
		t.len++
	}
	for k := range t.columns {
		slices.SortFunc(t.columns[k], func(a, b ChromaXY) int { return a.Chroma - b.Chroma })
	}
	return t, nil
}

// Len returns the number of loaded samples.
func (t *Table) Len() int { return t.len }

// XY returns the measured chromaticity of an exact grid position.
func (t *Table) XY(family string, hue float64, value, chroma int) (x, y float64, ok bool) {
	col := t.columns[columnKey{family, int(math.Round(hue * 10)), value}]
	for _, c := range col {
		if c.Chroma == chroma {
			return c.X, c.Y, true
		}
	}
	return 0, 0, false
}

// Column returns the chroma rows measured at (family, hue, value), sorted by
// ascending chroma. The returned slice is shared and must not be modified.
func (t *Table) Column(family string, hue float64, value int) []ChromaXY {
	return t.columns[columnKey{family, int(math.Round(hue * 10)), value}]
}

// MaxChroma returns the highest chroma measured at (family, hue, value).
func (t *Table) MaxChroma(family string, hue float64, value int) (int, bool) {
	col := t.columns[columnKey{family, int(math.Round(hue * 10)), value}]
	if len(col) == 0 {
		return 0, false
	}
	return col[len(col)-1].Chroma, true
}

// BoundingHues returns the grid hues bracketing hue within its family.
// When hue lies below the first grid step the clockwise neighbour is the 10
// hue of the previous family, reported via prevFamily. For a hue already on
// the grid both bounds coincide.
func BoundingHues(hue float64) (lo, hi float64, prevFamily bool) {
	if hueOnGrid(hue) {
		return hue, hue, false
	}
	lo = 2.5 * math.Floor(hue/2.5)
	hi = lo + 2.5
	if lo == 0 {
		return 10, hi, true
	}
	return lo, hi, false
}

// NextFamily and PrevFamily step through the cyclic family order.
func NextFamily(family string) string {
	return Families[(familyIndex(family)+1)%10]
}

func PrevFamily(family string) string {
	return Families[(familyIndex(family)+9)%10]
}

func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "renotation.Table{%d samples, %d columns}", t.len, len(t.columns))
	return b.String()
}

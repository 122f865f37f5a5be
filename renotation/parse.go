package renotation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads a dataset in the standard columnar renotation format: one sample
// per line as "hue value chroma x y Y", e.g.
//
//	2.5R  5  14  0.5623  0.2916  19.77
//
// Blank lines, comment lines starting with '#' and the conventional
// "h V C x y Y" header are skipped. The trailing Y column is ignored: the
// value column alone determines luminance. Rows whose value is not an integer
// in [1,9] (the extrapolated dark sub-unity rows of some dataset variants)
// are skipped rather than rejected, since the solver's grid cannot index
// them.
func Load(r io.Reader) (*Table, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if fields[0] == "h" || fields[0] == "H" {
			continue // column header
		}
		if len(fields) < 5 {
			return nil, fmt.Errorf("renotation: line %d: expected at least 5 columns, got %d", line, len(fields))
		}
		hue, family, err := splitHueToken(fields[0])
		if err != nil {
			return nil, fmt.Errorf("renotation: line %d: %w", line, err)
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("renotation: line %d: bad value %q", line, fields[1])
		}
		chroma, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("renotation: line %d: bad chroma %q", line, fields[2])
		}
		x, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("renotation: line %d: bad x %q", line, fields[3])
		}
		y, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, fmt.Errorf("renotation: line %d: bad y %q", line, fields[4])
		}
		iv := math.Round(value)
		if math.Abs(value-iv) > 1e-9 || iv < 1 || iv > 9 {
			continue // off-grid value row
		}
		entries = append(entries, Entry{Family: family, Hue: hue, Value: int(iv), Chroma: chroma, X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("renotation: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("renotation: no usable samples")
	}
	return New(entries)
}

// LoadFile reads a dataset file with Load.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("renotation: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// splitHueToken parses a combined hue token such as "2.5R", "10RP" or "7.5GY".
func splitHueToken(token string) (hue float64, family string, err error) {
	i := strings.IndexFunc(token, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if i <= 0 || i == len(token) {
		return 0, "", fmt.Errorf("bad hue token %q", token)
	}
	hue, err = strconv.ParseFloat(token[:i], 64)
	if err != nil {
		return 0, "", fmt.Errorf("bad hue token %q", token)
	}
	family = token[i:]
	if familyIndex(family) < 0 {
		return 0, "", fmt.Errorf("unknown hue family in token %q", token)
	}
	return hue, family, nil
}

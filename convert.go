package munsell

import (
	"errors"
	"fmt"
	"math"

	"github.com/ChrisGVE/MunsellSpace-sub002/renotation"
	"github.com/jkl1337/go-chromath"
	"github.com/kovidgoyal/go-parallel"
)

// ErrInvalidInput marks a chromaticity input outside the documented domain.
var ErrInvalidInput = errors.New("invalid chromaticity input")

// The sRGB reference white, the default illuminant of the input chromaticity.
var whiteD65XY = struct{ X, Y float64 }{0.3127, 0.3290}

// Converter converts xyY inputs into Munsell specifications against one
// renotation table. It is immutable after New and safe for concurrent use;
// each conversion call owns its own solver state.
type Converter struct {
	table      *renotation.Table
	whiteX     float64
	whiteY     float64
	adaptation mat3
	lab        *chromath.LabTransformer
}

// Option configures a Converter.
type Option func(*Converter)

// WithInputWhite sets the chromaticity of the reference white the inputs are
// expressed under. The default is the sRGB (D65) white. The pair must be a
// real chromaticity with y > 0 and x+y <= 1; anything else cannot anchor a
// chromatic adaptation and panics immediately.
func WithInputWhite(x, y float64) Option {
	if math.IsNaN(x) || !(y > 0) || x < 0 || x+y > 1 {
		panic(fmt.Sprintf("munsell: invalid input white (%g, %g)", x, y))
	}
	return func(c *Converter) {
		c.whiteX, c.whiteY = x, y
	}
}

// New builds a Converter over the given table.
func New(table *renotation.Table, opts ...Option) *Converter {
	c := &Converter{
		table:  table,
		whiteX: whiteD65XY.X,
		whiteY: whiteD65XY.Y,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.adaptation = adaptationMatrix(
		whitePointXYZ(c.whiteX, c.whiteY),
		whitePointXYZ(renotation.IlluminantC.X, renotation.IlluminantC.Y),
	)
	c.lab = chromath.NewLabTransformer(&chromath.IlluminantRefC)
	return c
}

// XyYToMunsell converts a CIE xyY triple into a Munsell specification. Y is
// the luminance in [0,1]. Malformed inputs are reported immediately;
// non-convergence and gamut saturation are reported through the Result
// flags, not as errors.
func (c *Converter) XyYToMunsell(x, y, Y float64) (Result, error) {
	return c.XyYToMunsellTraced(x, y, Y, nil)
}

// XyYToMunsellTraced is XyYToMunsell with an optional solver observer.
func (c *Converter) XyYToMunsellTraced(x, y, Y float64, tr Tracer) (Result, error) {
	if err := validateXyY(x, y, Y); err != nil {
		return Result{}, err
	}
	if Y == 0 {
		// Black carries no chromatic information.
		return Result{Spec: Spec{}, Converged: true}, nil
	}
	// Adapt the input into the table's illuminant C frame; the whole search
	// runs there.
	xyz := mulMat3Vec(c.adaptation, vec3{x * Y / y, Y, (1 - x - y) * Y / y})
	sum := xyz[0] + xyz[1] + xyz[2]
	xa, ya := xyz[0]/sum, xyz[1]/sum
	return c.solve(xa, ya, clamp(xyz[1], 0, 1), tr), nil
}

func validateXyY(x, y, Y float64) error {
	for _, v := range [3]float64{x, y, Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("munsell: non-finite component (%g, %g, %g): %w", x, y, Y, ErrInvalidInput)
		}
	}
	if Y < 0 || Y > 1 {
		return fmt.Errorf("munsell: luminance %g outside [0,1]: %w", Y, ErrInvalidInput)
	}
	if y <= 0 || x < 0 || x+y > 1 {
		return fmt.Errorf("munsell: chromaticity (%g, %g) has no achromatic center: %w", x, y, ErrInvalidInput)
	}
	return nil
}

// XyY converts a specification back to CIE xyY by evaluating the
// chromaticity predictor and the value codec, in the table's illuminant C
// frame.
func (c *Converter) XyY(s Spec) (x, y, Y float64) {
	s = Normalize(s)
	x, y = c.predictXY(s)
	return x, y, LuminanceFromValue(s.Value)
}

// ConvertAll converts a batch of points, sharded across cores. The returned
// slice always has one Result per input; inputs that fail validation leave a
// zero Result and contribute to the joined error.
func (c *Converter) ConvertAll(points []XyY) ([]Result, error) {
	results := make([]Result, len(points))
	errs := make([]error, len(points))
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			p := points[i]
			results[i], errs[i] = c.XyYToMunsell(p.X, p.Y, p.Luminance)
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, len(points)); err != nil {
		return nil, err
	}
	return results, errors.Join(errs...)
}

package munsell

import (
	"math"
	"sort"
)

const (
	maxOuterIterations   = 64
	maxChromaProbes      = 16
	maxHueSamples        = 64
	convergenceThreshold = 1e-7 // Euclidean xy distance
	achromaticRho        = 1e-7
	achromaticChroma     = 1e-4
)

// convergenceState is owned by exactly one conversion call.
type convergenceState struct {
	spec     Spec
	x, y     float64 // predicted chromaticity of spec
	distance float64
	outer    int
	phase    Phase

	pinned bool // last chroma refinement ended saturation-pinned

	best         Spec
	bestDistance float64
	bestPinned   bool

	tx, ty       float64 // target chromaticity, in the table's frame
	rhoIn, phiIn float64 // target in polar form about the achromatic center
	gx, gy       float64 // achromatic center

	tracer Tracer
}

func (st *convergenceState) trace(kind TraceKind, spec Spec, x, y, distance float64) {
	if st.tracer == nil {
		return
	}
	st.tracer.Trace(TraceEvent{
		Kind: kind, Phase: st.phase, Outer: st.outer,
		Spec: spec, X: x, Y: y, Distance: distance,
	})
}

// solve runs the dual refinement loops against a target chromaticity already
// adapted to the table's illuminant C frame.
func (c *Converter) solve(x, y, luminance float64, tr Tracer) Result {
	value := ValueFromLuminance(luminance)
	st := &convergenceState{tracer: tr, tx: x, ty: y, bestDistance: math.Inf(1)}
	st.gx, st.gy = c.predictXY(Spec{Value: value})
	st.rhoIn, st.phiIn = toPolar(x-st.gx, y-st.gy)
	if st.rhoIn < achromaticRho {
		spec := Normalize(Spec{Value: value})
		st.phase = PhaseConverged
		st.trace(TraceFinish, spec, st.gx, st.gy, st.rhoIn)
		return Result{Spec: spec, Converged: true, Distance: st.rhoIn}
	}

	st.spec = c.initialGuess(x, y, luminance, value)
	for st.outer = 1; st.outer <= maxOuterIterations; st.outer++ {
		st.phase = PhaseSearching
		limit := c.maxChroma(st.spec.Hue, st.spec.Family, value)
		if st.spec.Chroma > limit {
			st.spec.Chroma = limit
		}
		c.refineChroma(st, limit)
		st.x, st.y = c.predictXY(st.spec)
		st.distance = math.Hypot(x-st.x, y-st.y)
		if st.distance < st.bestDistance {
			st.best, st.bestDistance, st.bestPinned = st.spec, st.distance, st.pinned
		}
		if st.distance < convergenceThreshold {
			st.phase = PhaseConverged
			st.trace(TraceOuterStep, st.spec, st.x, st.y, st.distance)
			break
		}
		st.trace(TraceOuterStep, st.spec, st.x, st.y, st.distance)
		angle := c.refineHueAngle(st)
		st.spec.Hue, st.spec.Family = hueFromAngle(angle)
	}

	converged := st.phase == PhaseConverged
	spec, distance, gamutLimited := st.spec, st.distance, st.pinned
	if !converged {
		st.phase = PhaseExhausted
		spec, distance, gamutLimited = st.best, st.bestDistance, st.bestPinned
	}
	spec = Normalize(spec)
	if spec.Achromatic() {
		gamutLimited = false
	}
	st.trace(TraceFinish, spec, st.x, st.y, distance)
	return Result{
		Spec:         spec,
		Converged:    converged,
		GamutLimited: gamutLimited,
		Iterations:   min(st.outer, maxOuterIterations),
		Distance:     distance,
	}
}

type rhoChroma struct{ rho, chroma float64 }

// refineChroma adjusts st.spec.Chroma at the current hue until its predicted
// polar radius matches the target radius: probe chromas stepping
// exponentially until the target radius is bracketed (or the cap is hit),
// then interpolate chroma linearly against radius across the collected
// bounds. Reaching the gamut ceiling without bracketing pins chroma there.
func (c *Converter) refineChroma(st *convergenceState, limit float64) {
	st.pinned = false
	x0, y0 := c.predictXY(st.spec)
	rho, _ := toPolar(x0-st.gx, y0-st.gy)
	bounds := []rhoChroma{{rho, st.spec.Chroma}}
	for k := 1; k <= maxChromaProbes; k++ {
		if bracketsRho(bounds, st.rhoIn) {
			break
		}
		var trial float64
		if rho < 1e-12 || st.spec.Chroma <= 0 {
			// Degenerate seed: step outward on the even grid instead.
			trial = 2 * float64(k)
		} else {
			trial = st.spec.Chroma * math.Pow(st.rhoIn/rho, float64(k))
		}
		if trial > limit {
			trial = limit
		}
		probe := st.spec
		probe.Chroma = trial
		px, py := c.predictXY(probe)
		probeRho, _ := toPolar(px-st.gx, py-st.gy)
		bounds = append(bounds, rhoChroma{probeRho, trial})
		st.trace(TraceChromaProbe, probe, px, py, math.Hypot(st.tx-px, st.ty-py))
		if trial == limit {
			if probeRho < st.rhoIn && !bracketsRho(bounds, st.rhoIn) {
				// Saturation-limited: the target lies outside the gamut.
				st.pinned = true
				st.spec.Chroma = limit
				return
			}
			break
		}
	}
	chroma := interpolateChroma(bounds, st.rhoIn)
	if chroma > limit {
		// Extrapolated past the ceiling without bracketing the target.
		chroma = limit
		st.pinned = true
	}
	st.spec.Chroma = math.Max(chroma, 0)
}

func bracketsRho(bounds []rhoChroma, rho float64) bool {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, b := range bounds {
		lo = math.Min(lo, b.rho)
		hi = math.Max(hi, b.rho)
	}
	return lo <= rho && rho <= hi
}

// interpolateChroma estimates the chroma whose radius equals rho from the
// collected (radius, chroma) bounds, sorted by radius, extrapolating from
// the end segments when rho falls outside them.
func interpolateChroma(bounds []rhoChroma, rho float64) float64 {
	sort.Slice(bounds, func(i, j int) bool { return bounds[i].rho < bounds[j].rho })
	distinct := bounds[:1]
	for _, b := range bounds[1:] {
		if b.rho > distinct[len(distinct)-1].rho {
			distinct = append(distinct, b)
		}
	}
	if len(distinct) < 2 {
		return distinct[0].chroma
	}
	i := sort.Search(len(distinct), func(i int) bool { return distinct[i].rho >= rho })
	switch {
	case i == 0:
		i = 1
	case i == len(distinct):
		i = len(distinct) - 1
	}
	lo, hi := distinct[i-1], distinct[i]
	t := (rho - lo.rho) / (hi.rho - lo.rho)
	return lerp(lo.chroma, hi.chroma, t)
}

type hueSample struct{ phiDiff, angleStep float64 }

// refineHueAngle collects (angular difference, hue-angle step) samples at
// increasing multiples of the initial step until the differences bracket
// zero or the cap is reached, then resolves the zero crossing linearly and
// returns the next trial hue angle.
func (c *Converter) refineHueAngle(st *convergenceState) float64 {
	angle := hueAngle(st.spec.Hue, st.spec.Family)
	_, phi := toPolar(st.x-st.gx, st.y-st.gy)
	diff := signedDeg(st.phiIn - phi)
	if diff == 0 {
		return angle
	}
	step := st.phiIn - phi
	samples := []hueSample{{diff, 0}}
	for k := 1; k <= maxHueSamples; k++ {
		if bracketsZero(samples) {
			st.phase = PhaseBracketed
			break
		}
		trialAngle := normDeg(angle + float64(k)*step)
		hue, family := hueFromAngle(trialAngle)
		probe := Spec{Hue: hue, Value: st.spec.Value, Chroma: st.spec.Chroma, Family: family}
		px, py := c.predictXY(probe)
		_, probePhi := toPolar(px-st.gx, py-st.gy)
		samples = append(samples, hueSample{signedDeg(st.phiIn - probePhi), signedDeg(float64(k) * step)})
		st.trace(TraceHueProbe, probe, px, py, math.Hypot(st.tx-px, st.ty-py))
	}
	return normDeg(angle + interpolateAngleStep(samples))
}

func bracketsZero(samples []hueSample) bool {
	neg, pos := false, false
	for _, s := range samples {
		if s.phiDiff <= 0 {
			neg = true
		}
		if s.phiDiff >= 0 {
			pos = true
		}
	}
	return neg && pos
}

// interpolateAngleStep resolves the hue-angle step at which the angular
// difference crosses zero, linearly across the collected samples.
func interpolateAngleStep(samples []hueSample) float64 {
	sort.Slice(samples, func(i, j int) bool { return samples[i].phiDiff < samples[j].phiDiff })
	distinct := samples[:1]
	for _, s := range samples[1:] {
		if s.phiDiff > distinct[len(distinct)-1].phiDiff {
			distinct = append(distinct, s)
		}
	}
	if len(distinct) < 2 {
		return distinct[0].angleStep
	}
	i := sort.Search(len(distinct), func(i int) bool { return distinct[i].phiDiff >= 0 })
	switch {
	case i == 0:
		i = 1
	case i == len(distinct):
		i = len(distinct) - 1
	}
	lo, hi := distinct[i-1], distinct[i]
	t := (0 - lo.phiDiff) / (hi.phiDiff - lo.phiDiff)
	return lerp(lo.angleStep, hi.angleStep, t)
}

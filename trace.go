package munsell

// Phase describes where the outer hue refinement loop stands.
type Phase uint8

const (
	PhaseSearching Phase = iota
	PhaseBracketed
	PhaseConverged
	PhaseExhausted
)

func (p Phase) String() string {
	switch p {
	case PhaseSearching:
		return "searching"
	case PhaseBracketed:
		return "bracketed"
	case PhaseConverged:
		return "converged"
	case PhaseExhausted:
		return "exhausted"
	}
	return "unknown"
}

// TraceKind tags a solver trace event.
type TraceKind uint8

const (
	// TraceChromaProbe is one inner-loop chroma evaluation.
	TraceChromaProbe TraceKind = iota
	// TraceHueProbe is one trial hue angle evaluation of the outer loop.
	TraceHueProbe
	// TraceOuterStep closes one outer iteration.
	TraceOuterStep
	// TraceFinish carries the final state.
	TraceFinish
)

func (k TraceKind) String() string {
	switch k {
	case TraceChromaProbe:
		return "chroma-probe"
	case TraceHueProbe:
		return "hue-probe"
	case TraceOuterStep:
		return "outer-step"
	case TraceFinish:
		return "finish"
	}
	return "unknown"
}

// TraceEvent is one structured observation of the solver's progress.
type TraceEvent struct {
	Kind     TraceKind
	Phase    Phase
	Outer    int // outer iteration, starting at 1
	Spec     Spec
	X, Y     float64 // predicted chromaticity of Spec
	Distance float64 // Euclidean xy distance to the target, where computed
}

// Tracer observes solver progress. A nil Tracer disables tracing; the solver
// never retains the Tracer beyond the call it was passed to.
type Tracer interface {
	Trace(TraceEvent)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(TraceEvent)

func (f TracerFunc) Trace(ev TraceEvent) { f(ev) }

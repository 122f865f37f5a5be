package munsell

// Normalize folds a specification into canonical form: hue in [0,10) with
// hue 10.0 in family F rewritten as 0.0 in the next family, and chroma below
// a small epsilon rewritten as the achromatic form with hue and family
// cleared. It is deterministic, side-effect-free and idempotent.
func Normalize(s Spec) Spec {
	s.Value = clamp(s.Value, 0, 10)
	if s.Chroma < achromaticChroma || s.Family == FamilyNone {
		return Spec{Value: s.Value}
	}
	for s.Hue >= 10 {
		s.Hue -= 10
		s.Family = s.Family.Next()
	}
	for s.Hue < 0 {
		s.Hue += 10
		s.Family = s.Family.Prev()
	}
	return s
}

package munsell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHueAngleAnchors(t *testing.T) {
	testCases := []struct {
		hue    float64
		family Family
		angle  float64
	}{
		{5, FamilyR, 0},
		{5, FamilyYR, 22.5},
		{5, FamilyY, 45},
		{5, FamilyGY, 70},
		{5, FamilyG, 135},
		{5, FamilyBG, 160},
		{5, FamilyB, 225},
		{5, FamilyPB, 240},
		{5, FamilyP, 255},
		{5, FamilyRP, 315},
		{10, FamilyRP, 360 - 22.5},
		{0, FamilyR, 360 - 22.5},
		{2.5, FamilyR, 360 - 11.25},
		{7.5, FamilyR, 5.625},
	}
	for _, tc := range testCases {
		require.InDelta(t, tc.angle, hueAngle(tc.hue, tc.family), 1e-9, "%g%s", tc.hue, tc.family)
	}
}

func TestHueFromAngle(t *testing.T) {
	hue, family := hueFromAngle(0)
	require.Equal(t, FamilyR, family)
	require.InDelta(t, 5, hue, 1e-9)

	// Family boundary resolves to hue 0 of the higher family.
	hue, family = hueFromAngle(337.5)
	require.Equal(t, FamilyR, family)
	require.InDelta(t, 0, hue, 1e-9)

	hue, family = hueFromAngle(45)
	require.Equal(t, FamilyY, family)
	require.InDelta(t, 5, hue, 1e-9)
}

func TestHueAngleRoundTrip(t *testing.T) {
	for f := FamilyR; f <= FamilyRP; f++ {
		for _, hue := range []float64{0, 0.05, 1.3, 2.5, 5, 7.3, 9.9} {
			angle := hueAngle(hue, f)
			gotHue, gotFamily := hueFromAngle(angle)
			want := Normalize(Spec{Hue: hue, Value: 5, Chroma: 2, Family: f})
			got := Normalize(Spec{Hue: gotHue, Value: 5, Chroma: 2, Family: gotFamily})
			require.Equal(t, want.Family, got.Family, "%g%s", hue, f)
			require.InDelta(t, want.Hue, got.Hue, 1e-9, "%g%s", hue, f)
		}
	}
}

func TestSignedDeg(t *testing.T) {
	require.Equal(t, 0.0, signedDeg(0))
	require.Equal(t, 180.0, signedDeg(180))
	require.Equal(t, -170.0, signedDeg(190))
	require.Equal(t, -90.0, signedDeg(-90))
	require.Equal(t, 180.0, signedDeg(540))
	require.Equal(t, 10.0, signedDeg(370))
}

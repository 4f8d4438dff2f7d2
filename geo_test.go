package corridors

import (
	"math"
	"testing"
)

// One degree of arc on the R=6371000m sphere.
const metersPerDegree = kEarthRadiusMeters * math.Pi / 180

func TestDistTo(t *testing.T) {
	a := Coordinate{Long: 0, Lat: 0}
	b := Coordinate{Long: 0.01, Lat: 0}

	got := a.DistTo(b)
	want := 0.01 * metersPerDegree // along the equator, haversine is exact arc
	if math.Abs(got-want) > 0.01 {
		t.Errorf("DistTo: got %.4fm, want %.4fm", got, want)
	}
	if d := b.DistTo(a); math.Abs(d-got) > 1e-9 {
		t.Errorf("DistTo not symmetric: %.9f vs %.9f", got, d)
	}
	if d := a.DistTo(a); d != 0 {
		t.Errorf("DistTo self: got %f, want 0", d)
	}
}

func TestBearingTowards(t *testing.T) {
	origin := Coordinate{Long: 0, Lat: 0}
	tests := []struct {
		to   Coordinate
		want float64
	}{
		{Coordinate{Long: 0.01, Lat: 0}, 90},  // east
		{Coordinate{Long: 0, Lat: 0.01}, 0},   // north
		{Coordinate{Long: -0.01, Lat: 0}, 270}, // west
		{Coordinate{Long: 0, Lat: -0.01}, 180}, // south
	}
	for _, test := range tests {
		if got := origin.BearingTowards(test.to); math.Abs(got-test.want) > 1e-6 {
			t.Errorf("BearingTowards(%v): got %.6f, want %.1f", test.to, got, test.want)
		}
	}
}

func TestProjectRoundtrip(t *testing.T) {
	start := Coordinate{Long: 12.345, Lat: 45.678, Alt: 500}
	dest := start.Project(37, 2345)

	if d := start.DistTo(dest); math.Abs(d-2345) > 0.01 {
		t.Errorf("projected distance: got %.4fm, want 2345m", d)
	}
	if b := start.BearingTowards(dest); math.Abs(b-37) > 0.01 {
		t.Errorf("projected bearing: got %.4f, want 37", b)
	}
	if dest.Alt != 500 {
		t.Errorf("altitude not carried through: got %f", dest.Alt)
	}
}

func TestBearingDelta(t *testing.T) {
	tests := []struct {
		b1, b2, want float64
	}{
		{350, 10, 20},
		{10, 350, -20},
		{90, 100, 10},
		{100, 90, -10},
		{90, 270, 180},
		{0, 0, 0},
	}
	for _, test := range tests {
		if got := bearingDelta(test.b1, test.b2); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("bearingDelta(%.0f,%.0f): got %.4f, want %.1f",
				test.b1, test.b2, got, test.want)
		}
	}
}

func TestNorm360(t *testing.T) {
	if got := norm360(-90); got != 270 {
		t.Errorf("norm360(-90): got %f, want 270", got)
	}
	if got := norm360(450); got != 90 {
		t.Errorf("norm360(450): got %f, want 90", got)
	}
}

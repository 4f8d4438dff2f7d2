package corridors

import (
	"math"
	"testing"
)

// crossMarker builds a 3-point gate annotation crossing the equator track
// vertically at the given longitude.
func crossMarker(idx int, long float64) Segment {
	return Segment{Index: idx, Coords: []Coordinate{
		{Long: long, Lat: 0.001},
		{Long: long, Lat: 0}, // center, on the track
		{Long: long, Lat: -0.001},
	}}
}

func TestResolveExactWaypointsFromMarker(t *testing.T) {
	track, _ := BuildTrack([]Segment{{Index: 0, Coords: equatorCoords(0, 11)}})
	ws := WaypointSet{
		TPs: []Waypoint{{Name: "TP 1", Coordinate: Coordinate{Long: 0.05, Lat: 0.0005}}},
	}
	// The marker crosses at 0.048, slightly off the label's longitude. The
	// exact position must come from the crossing, not from snapping the label.
	markers := []Segment{crossMarker(5, 0.048)}

	out := ResolveExactWaypoints(ws, markers, track)
	if len(out) != 1 {
		t.Fatalf("got %d exact waypoints, want 1", len(out))
	}
	got := out[0]
	if got.Name != "TP 1" || got.Long != 0.05 {
		t.Errorf("label coordinate not preserved: %+v", got.Waypoint)
	}
	if math.Abs(got.Exact.Long-0.048) > 1e-9 || math.Abs(got.Exact.Lat) > 1e-9 {
		t.Errorf("exact = (%.9f,%.9f), want (0.048,0)", got.Exact.Long, got.Exact.Lat)
	}
}

func TestResolveExactWaypointsSnapFallback(t *testing.T) {
	track, _ := BuildTrack([]Segment{{Index: 0, Coords: equatorCoords(0, 11)}})
	ws := WaypointSet{
		TPs: []Waypoint{{Name: "TP 1", Coordinate: Coordinate{Long: 0.05, Lat: 0.0005}}},
	}
	// The nearest marker sits well north of the track and never crosses it, so
	// resolution falls back to snapping the label position.
	displaced := Segment{Index: 3, Coords: []Coordinate{
		{Long: 0.05, Lat: 0.003},
		{Long: 0.05, Lat: 0.002},
		{Long: 0.05, Lat: 0.001},
	}}

	out := ResolveExactWaypoints(ws, []Segment{displaced}, track)
	if len(out) != 1 {
		t.Fatalf("got %d exact waypoints, want 1", len(out))
	}
	got := out[0].Exact
	if math.Abs(got.Long-0.05) > 1e-9 || math.Abs(got.Lat) > 1e-9 {
		t.Errorf("snap fallback = (%.9f,%.9f), want (0.05,0)", got.Long, got.Lat)
	}
}

func TestResolveExactWaypointsNoMarkersNoTrack(t *testing.T) {
	label := Coordinate{Long: 0.05, Lat: 0.0005}
	ws := WaypointSet{SP: &Waypoint{Name: "SP", Coordinate: label}}

	out := ResolveExactWaypoints(ws, nil, nil)
	if len(out) != 1 {
		t.Fatalf("got %d exact waypoints, want 1", len(out))
	}
	if out[0].Exact != label {
		t.Errorf("with nothing to refine against, exact should equal the label: %+v", out[0].Exact)
	}
}

func TestResolveExactWaypointsPicksNearestMarker(t *testing.T) {
	track, _ := BuildTrack([]Segment{{Index: 0, Coords: equatorCoords(0, 11)}})
	ws := WaypointSet{
		SP: &Waypoint{Name: "SP", Coordinate: Coordinate{Long: 0.002, Lat: 0.0005}},
		FP: &Waypoint{Name: "FP", Coordinate: Coordinate{Long: 0.098, Lat: 0.0005}},
	}
	markers := []Segment{crossMarker(1, 0.001), crossMarker(7, 0.099)}

	out := ResolveExactWaypoints(ws, markers, track)
	if len(out) != 2 {
		t.Fatalf("got %d exact waypoints, want 2", len(out))
	}
	if math.Abs(out[0].Exact.Long-0.001) > 1e-9 {
		t.Errorf("SP resolved to %.9f, want marker at 0.001", out[0].Exact.Long)
	}
	if math.Abs(out[1].Exact.Long-0.099) > 1e-9 {
		t.Errorf("FP resolved to %.9f, want marker at 0.099", out[1].Exact.Long)
	}
}

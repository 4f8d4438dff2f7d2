package corridors

import (
	"math"
)

// An ExactWaypoint pairs a waypoint's drawn label coordinate with the refined
// on-track coordinate derived from its gate-marker annotation. Both are kept:
// renderers draw the label where it was placed and the gate where it really
// crosses the track.
type ExactWaypoint struct {
	Waypoint

	Exact Coordinate
}

// ResolveExactWaypoints refines every waypoint's approximate label position
// into a precise track coordinate. For each waypoint we take the nearest
// 3-point gate-marker annotation (by its center point) and intersect it with
// the track; if no intersection exists, we fall back to snapping the label
// straight onto the track, and failing that keep the label position as-is.
func ResolveExactWaypoints(ws WaypointSet, gateMarkers []Segment, t Track) []ExactWaypoint {
	out := []ExactWaypoint{}
	for _, wp := range ws.All() {
		out = append(out, ExactWaypoint{Waypoint: wp, Exact: exactCoordinate(wp, gateMarkers, t)})
	}
	return out
}

func exactCoordinate(wp Waypoint, gateMarkers []Segment, t Track) Coordinate {
	if m, ok := nearestGateMarker(wp.Coordinate, gateMarkers); ok {
		if pt, ok := intersectMarkerWithTrack(m, t); ok {
			return pt
		}
	}
	if snapped, _, _, ok := t.SnapPoint(wp.Coordinate); ok {
		return snapped
	}
	return wp.Coordinate
}

// nearestGateMarker picks the 3-point marker whose center point is closest to
// c.
func nearestGateMarker(c Coordinate, gateMarkers []Segment) (Segment, bool) {
	best, bestDist, found := Segment{}, math.MaxFloat64, false
	for _, m := range gateMarkers {
		if len(m.Coords) != 3 {
			continue
		}
		if d := c.DistTo(m.Coords[1]); d < bestDist {
			best, bestDist, found = m, d, true
		}
	}
	return best, found
}

// intersectMarkerWithTrack intersects the marker's two sub-segments with the
// track's sub-segments, returning the first crossing in track order.
func intersectMarkerWithTrack(m Segment, t Track) (Coordinate, bool) {
	for i := 0; i < len(t)-1; i++ {
		for j := 0; j < len(m.Coords)-1; j++ {
			if pt, ok := segmentIntersection(t[i].Coordinate, t[i+1].Coordinate,
				m.Coords[j], m.Coords[j+1]); ok {
				return pt, true
			}
		}
	}
	return Coordinate{}, false
}

// segmentIntersection is the standard parametric 2D segment crossing, solved
// over raw degrees. That's sound here: axis scaling is affine, and affine
// maps don't move a straight-line intersection.
func segmentIntersection(a1, a2, b1, b2 Coordinate) (Coordinate, bool) {
	rx, ry := a2.Long-a1.Long, a2.Lat-a1.Lat
	sx, sy := b2.Long-b1.Long, b2.Lat-b1.Lat

	den := rx*sy - ry*sx
	if den == 0 {
		return Coordinate{}, false // parallel or degenerate
	}

	qpx, qpy := b1.Long-a1.Long, b1.Lat-a1.Lat
	tt := (qpx*sy - qpy*sx) / den
	uu := (qpx*ry - qpy*rx) / den
	if tt < 0 || tt > 1 || uu < 0 || uu > 1 {
		return Coordinate{}, false
	}

	return Coordinate{Long: a1.Long + tt*rx, Lat: a1.Lat + tt*ry, Alt: a1.Alt}, true
}

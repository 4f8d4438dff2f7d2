package corridors

import (
	"math"
)

// NearestIndex returns the track vertex closest to target, by squared planar
// coordinate distance. Targets are already near the track at this scale, so
// no geodesic correction is needed. Returns -1 for an empty track.
func (t Track) NearestIndex(target Coordinate) int {
	best, bestD2 := -1, math.MaxFloat64
	for i, tp := range t {
		dx := tp.Long - target.Long
		dy := tp.Lat - target.Lat
		if d2 := dx*dx + dy*dy; d2 < bestD2 {
			best, bestD2 = i, d2
		}
	}
	return best
}

// PointAtDistance walks forward from startIdx accumulating great-circle
// sub-segment lengths; once the remaining distance fits within the current
// sub-segment, it projects linearly from that sub-segment's start at its
// bearing. If the track ends first, it returns the final point with the final
// sub-segment's bearing. Returns the coordinate, the local bearing, and the
// index of the sub-segment the point lies on; ok is false only when the track
// has no sub-segments at all or startIdx is out of range.
func (t Track) PointAtDistance(startIdx int, distMeters float64) (Coordinate, float64, int, bool) {
	if len(t) < 2 || startIdx < 0 || startIdx >= len(t) {
		return Coordinate{}, 0, 0, false
	}

	remaining := distMeters
	for i := startIdx; i < len(t)-1; i++ {
		segLen := t[i].DistTo(t[i+1].Coordinate)
		if remaining <= segLen {
			bearing := t[i].BearingTowards(t[i+1].Coordinate)
			return t[i].Project(bearing, remaining), bearing, i, true
		}
		remaining -= segLen
	}

	// Ran out of track.
	last := len(t) - 1
	bearing := t[last-1].BearingTowards(t[last].Coordinate)
	return t[last].Coordinate, bearing, last - 1, true
}

// SnapPoint projects an arbitrary point perpendicularly onto the nearest
// track sub-segment, returning the snapped coordinate, the sub-segment index
// it lies on, and that sub-segment's bearing. A point falling exactly on a
// vertex resolves to the incoming (earlier) sub-segment. The projection is
// planar with a cos(lat) aspect correction, which is plenty at track scale.
func (t Track) SnapPoint(target Coordinate) (Coordinate, int, float64, bool) {
	if len(t) < 2 {
		return Coordinate{}, 0, 0, false
	}

	scale := math.Cos(rad(target.Lat))
	px, py := target.Long*scale, target.Lat

	bestD2 := math.MaxFloat64
	bestIdx := 0
	var bestPt Coordinate

	for i := 0; i < len(t)-1; i++ {
		a, b := t[i].Coordinate, t[i+1].Coordinate
		ax, ay := a.Long*scale, a.Lat
		vx, vy := b.Long*scale-ax, b.Lat-ay

		frac := 0.0
		if l2 := vx*vx + vy*vy; l2 > 0 {
			frac = ((px-ax)*vx + (py-ay)*vy) / l2
			frac = math.Max(0, math.Min(1, frac))
		}
		cx, cy := ax+frac*vx, ay+frac*vy

		dx, dy := px-cx, py-cy
		if d2 := dx*dx + dy*dy; d2 < bestD2 {
			bestD2 = d2
			bestIdx = i
			bestPt = Coordinate{Long: cx / scale, Lat: cy, Alt: a.Alt}
		}
	}

	bearing := t[bestIdx].BearingTowards(t[bestIdx+1].Coordinate)
	return bestPt, bestIdx, bearing, true
}

package corridors

import (
	"math"
)

const (
	// Terminal-leg correction thresholds: a final sub-segment shorter than
	// this, or turned more sharply than this off the previous one, would
	// swing the corridor's end cap around, so its offset bearing is frozen to
	// the previous sub-segment's bearing instead.
	kMinTerminalLegMeters      = 40.0
	kMaxTerminalBearingDegrees = 50.0
)

// CorridorOutput holds the left and right offset polylines for one track
// slice.
type CorridorOutput struct {
	Left  []Coordinate
	Right []Coordinate
}

// OffsetCorridor produces parallel left/right offset polylines from a track
// slice at a fixed lateral distance. Offsets are computed per sub-segment,
// not per vertex: each consecutive pair gets one bearing and both its
// endpoints are displaced by it, so corridor edges stay straight along each
// physical leg. Adjacent sub-segments are free to disagree at the shared
// vertex; the small discontinuities at turns are intended.
func OffsetCorridor(coords []Coordinate, distMeters float64) CorridorOutput {
	out := CorridorOutput{}
	if len(coords) < 2 {
		return out
	}

	prevBearing := 0.0
	for i := 0; i < len(coords)-1; i++ {
		a, b := coords[i], coords[i+1]
		bearing := a.BearingTowards(b)

		if i > 0 && i == len(coords)-2 {
			if a.DistTo(b) < kMinTerminalLegMeters ||
				math.Abs(bearingDelta(prevBearing, bearing)) > kMaxTerminalBearingDegrees {
				bearing = prevBearing
			}
		}

		left := norm360(bearing - 90)
		right := norm360(bearing + 90)
		out.Left = append(out.Left, a.Project(left, distMeters), b.Project(left, distMeters))
		out.Right = append(out.Right, a.Project(right, distMeters), b.Project(right, distMeters))

		prevBearing = bearing
	}
	return out
}

package corridors

import (
	"fmt"
	"sort"
)

const (
	// These constants control how drawn segments are glued into one flown
	// track. This is a fairly constrained problem: drawing order is
	// authoritative, so we never do nearest-neighbor path reconstruction.

	// A 2-point line shorter than this is a dashed connector between turning
	// points, i.e. not flown, and is excluded from the track.
	kDashedConnectorMaxMeters = 500.0

	// If the next segment starts within this distance of the last accumulated
	// point, the two points are the same junction and one copy is dropped.
	// Beyond it, both points are kept and a gap is flagged between them.
	kSegmentJoinMeters = 50.0
)

// A TrackPoint locates one vertex of the reconstructed track, and remembers
// which drawn segment it came from. GapAfter marks a discontinuity between
// this point and the next one.
type TrackPoint struct {
	Coordinate // embedded, so the geo methods apply directly

	SourceSegment int
	GapAfter      bool
}

// A Track is the ordered vertices of the reconstructed flown path.
type Track []TrackPoint

// MainSegmentSet holds the indices of segments classified as real track.
type MainSegmentSet map[int]bool

// IsDashedConnector reports whether the segment is a short 2-point connector
// line rather than flown track.
func (s Segment) IsDashedConnector() bool {
	if len(s.Coords) != 2 {
		return false
	}
	return s.Coords[0].DistTo(s.Coords[1]) < kDashedConnectorMaxMeters
}

// BuildTrack folds the main (non-dashed) segments, in drawing order, into one
// ordered track, deduplicating shared junction points and flagging gaps where
// consecutive segments don't meet. Zero main segments yields an empty track,
// which downstream stages treat as "no corridors producible".
func BuildTrack(segs []Segment) (Track, MainSegmentSet) {
	main := MainSegmentSet{}
	mainSegs := []Segment{}
	for _, s := range segs {
		if s.IsDashedConnector() {
			continue
		}
		main[s.Index] = true
		mainSegs = append(mainSegs, s)
	}
	sort.Slice(mainSegs, func(i, j int) bool { return mainSegs[i].Index < mainSegs[j].Index })

	t := Track{}
	for _, s := range mainSegs {
		coords := s.Coords
		if len(coords) == 0 {
			continue
		}
		if len(t) > 0 {
			if t[len(t)-1].DistTo(coords[0]) < kSegmentJoinMeters {
				coords = coords[1:] // same junction point; drop the duplicate
			} else {
				t[len(t)-1].GapAfter = true
			}
		}
		for _, c := range coords {
			t = append(t, TrackPoint{Coordinate: c, SourceSegment: s.Index})
		}
	}
	return t, main
}

// ContinuousBetween reports whether the track is provably continuous between
// two vertex indices (order-insensitive): no gap flagged inside the span, and
// every point in it sourced from a main segment.
func (t Track) ContinuousBetween(i, j int, main MainSegmentSet) bool {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= len(t) {
		return false
	}
	for k := i; k <= j; k++ {
		if !main[t[k].SourceSegment] {
			return false
		}
		if k < j && t[k].GapAfter {
			return false
		}
	}
	return true
}

// LengthMeters is the summed great-circle length of the track, gaps included.
func (t Track) LengthMeters() float64 {
	total := 0.0
	for i := 0; i < len(t)-1; i++ {
		total += t[i].DistTo(t[i+1].Coordinate)
	}
	return total
}

func (t Track) String() string {
	gaps := 0
	for _, tp := range t {
		if tp.GapAfter {
			gaps++
		}
	}
	return fmt.Sprintf("Track: %d points, %.1fm (%.2fNM), %d gaps",
		len(t), t.LengthMeters(), t.LengthMeters()/kMetersPerNM, gaps)
}

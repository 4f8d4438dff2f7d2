package corridors

import (
	"testing"
)

func TestExtractSegmentsDepthFirst(t *testing.T) {
	container := Collection{Children: []Geometry{
		Feature{Name: "track part 1", Geom: Line{Coords: equatorCoords(0, 5)}},
		Collection{Children: []Geometry{
			Feature{Name: "gate marker", Geom: Line{Coords: equatorCoords(0.1, 3)}},
			Feature{Name: "track part 2", Geom: Line{Coords: equatorCoords(0.2, 4)}},
		}},
		Feature{Name: "SP", Geom: Point{Coord: Coordinate{Long: 0.001}}},
	}}

	segs, markers := ExtractSegments(container)

	if len(segs) != 2 {
		t.Fatalf("segments: got %d, want 2", len(segs))
	}
	if segs[0].Index != 0 || segs[1].Index != 2 {
		t.Errorf("segment indices: got [%d %d], want [0 2]", segs[0].Index, segs[1].Index)
	}
	if len(segs[0].Coords) != 5 || len(segs[1].Coords) != 4 {
		t.Errorf("segment sizes: got [%d %d], want [5 4]",
			len(segs[0].Coords), len(segs[1].Coords))
	}

	if len(markers) != 1 {
		t.Fatalf("gate markers: got %d, want 1", len(markers))
	}
	if markers[0].Index != 1 || len(markers[0].Coords) != 3 {
		t.Errorf("marker: got index %d with %d coords, want index 1 with 3",
			markers[0].Index, len(markers[0].Coords))
	}
}

func TestExtractSegmentsMultiGeometry(t *testing.T) {
	container := Feature{Name: "combined", Geom: GeometryCollection{Geoms: []Geometry{
		Line{Coords: equatorCoords(0, 2)},
		Point{Coord: Coordinate{}},
		Line{Coords: equatorCoords(0.1, 6)},
	}}}

	segs, markers := ExtractSegments(container)
	if len(segs) != 2 || len(markers) != 0 {
		t.Errorf("got %d segments and %d markers, want 2 and 0", len(segs), len(markers))
	}
}

func TestExtractSegmentsIgnoresOddNodes(t *testing.T) {
	container := Collection{Children: []Geometry{
		Feature{Name: "empty placemark"}, // nil geometry
		Feature{Name: "just a point", Geom: Point{}},
		nil,
	}}

	segs, markers := ExtractSegments(container)
	if len(segs) != 0 || len(markers) != 0 {
		t.Errorf("got %d segments and %d markers, want none", len(segs), len(markers))
	}
}

// Package corridors turns a drawn competition flight track (line and point
// features) into corridor boundary lines and reference gates for rally
// flying. No file-format or rendering imports; converters live in geomio.
package corridors

// A Coordinate is a WGS84 position in decimal degrees, altitude in meters.
// Altitude is carried through unchanged; zero when the source had none.
type Coordinate struct {
	Long float64
	Lat  float64
	Alt  float64
}

// Geometry is the closed set of node types a converted KML/GPX document can
// contain. Traversals are exhaustive type switches over these five variants;
// anything a converter can't express just doesn't get built.
type Geometry interface {
	isGeometry()
}

// Collection is a document or folder of child nodes, in drawing order.
type Collection struct {
	Children []Geometry
}

// Feature is a named placemark wrapping a raw geometry (possibly nil).
type Feature struct {
	Name string
	Geom Geometry
}

// Line is one drawn line feature.
type Line struct {
	Coords []Coordinate
}

// Point is one drawn point feature.
type Point struct {
	Coord Coordinate
}

// GeometryCollection is a multi-geometry of raw geometries.
type GeometryCollection struct {
	Geoms []Geometry
}

func (Collection) isGeometry()         {}
func (Feature) isGeometry()            {}
func (Line) isGeometry()               {}
func (Point) isGeometry()              {}
func (GeometryCollection) isGeometry() {}

// A Segment is one drawn line feature, indexed by depth-first visitation
// order. Drawing order is authoritative downstream, so the index must never
// be reassigned. A Segment never has exactly 3 coordinates; those lines are
// gate-marker annotations, not track.
type Segment struct {
	Index  int
	Coords []Coordinate
}

// ExtractSegments pulls every line geometry out of a nested container, in
// depth-first order. Each visited line consumes an index; the 3-coordinate
// ones are diverted into the gate-marker list for exact waypoint resolution
// and never treated as track. Unrecognized or nil nodes are ignored.
func ExtractSegments(g Geometry) (segs []Segment, gateMarkers []Segment) {
	idx := 0

	var visit func(g Geometry)
	visit = func(g Geometry) {
		switch node := g.(type) {
		case Collection:
			for _, child := range node.Children {
				visit(child)
			}
		case Feature:
			visit(node.Geom)
		case GeometryCollection:
			for _, child := range node.Geoms {
				visit(child)
			}
		case Line:
			s := Segment{Index: idx, Coords: node.Coords}
			idx++
			if len(node.Coords) == 3 {
				gateMarkers = append(gateMarkers, s)
			} else {
				segs = append(segs, s)
			}
		case Point:
			// points are waypoint labels, found by LocateWaypoints
		}
	}
	visit(g)

	return segs, gateMarkers
}

package corridors

import (
	"sort"
	"strconv"
	"strings"
)

// A Waypoint is a named point feature: the start point ("SP"), the finish
// point ("FP"), or a numbered turning point ("TP n"). The coordinate is the
// drawn label position, which is only approximately on the track; see
// ResolveExactWaypoints for the refined positions.
type Waypoint struct {
	Coordinate

	Name string
}

// WaypointSet is the ordered waypoints of one track: optional SP and FP, and
// turning points sorted by numeric suffix.
type WaypointSet struct {
	SP  *Waypoint
	TPs []Waypoint
	FP  *Waypoint
}

// All returns the waypoints in track order: SP, TPs, FP.
func (ws WaypointSet) All() []Waypoint {
	out := []Waypoint{}
	if ws.SP != nil {
		out = append(out, *ws.SP)
	}
	out = append(out, ws.TPs...)
	if ws.FP != nil {
		out = append(out, *ws.FP)
	}
	return out
}

// LocateWaypoints scans the container's named point features. Exact "SP" and
// "FP" matches pick the start and finish (last match wins if duplicated);
// names prefixed "TP " become turning points, ordered by numeric suffix
// ascending (a non-numeric suffix sorts as 0; the sort is stable, so
// duplicates keep their scan order).
func LocateWaypoints(g Geometry) WaypointSet {
	ws := WaypointSet{}

	var visit func(g Geometry)
	visit = func(g Geometry) {
		switch node := g.(type) {
		case Collection:
			for _, child := range node.Children {
				visit(child)
			}
		case GeometryCollection:
			for _, child := range node.Geoms {
				visit(child)
			}
		case Feature:
			if p, ok := node.Geom.(Point); ok {
				wp := Waypoint{Name: node.Name, Coordinate: p.Coord}
				switch {
				case node.Name == "SP":
					ws.SP = &wp
				case node.Name == "FP":
					ws.FP = &wp
				case strings.HasPrefix(node.Name, "TP "):
					ws.TPs = append(ws.TPs, wp)
				}
			} else {
				visit(node.Geom)
			}
		case Line, Point:
			// unnamed raw geometry carries no waypoint
		}
	}
	visit(g)

	sort.SliceStable(ws.TPs, func(i, j int) bool {
		return tpNumber(ws.TPs[i].Name) < tpNumber(ws.TPs[j].Name)
	})
	return ws
}

// tpNumber extracts the numeric suffix of a "TP n" name. "TP 2" sorts before
// "TP 10"; a non-numeric suffix sorts as 0.
func tpNumber(name string) int {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0
	}
	return n
}

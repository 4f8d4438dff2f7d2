package corridors

import "testing"

func namedPoint(name string, long, lat float64) Feature {
	return Feature{Name: name, Geom: Point{Coord: Coordinate{Long: long, Lat: lat}}}
}

func TestLocateWaypoints(t *testing.T) {
	g := Collection{Children: []Geometry{
		namedPoint("TP 2", 0.2, 0),
		namedPoint("SP", 0, 0),
		namedPoint("FP", 0.5, 0),
		namedPoint("TP 1", 0.1, 0),
	}}

	ws := LocateWaypoints(g)
	if ws.SP == nil || ws.SP.Long != 0 {
		t.Fatalf("SP not found: %+v", ws.SP)
	}
	if ws.FP == nil || ws.FP.Long != 0.5 {
		t.Fatalf("FP not found: %+v", ws.FP)
	}
	if len(ws.TPs) != 2 || ws.TPs[0].Name != "TP 1" || ws.TPs[1].Name != "TP 2" {
		t.Errorf("TPs out of order: %+v", ws.TPs)
	}
}

func TestLocateWaypointsNumericSort(t *testing.T) {
	// "TP 10" must come after "TP 2"; a lexical sort would invert them.
	g := Collection{Children: []Geometry{
		namedPoint("TP 10", 1.0, 0),
		namedPoint("TP 2", 0.2, 0),
	}}

	ws := LocateWaypoints(g)
	if len(ws.TPs) != 2 {
		t.Fatalf("got %d TPs, want 2", len(ws.TPs))
	}
	if ws.TPs[0].Name != "TP 2" || ws.TPs[1].Name != "TP 10" {
		t.Errorf("numeric sort failed: [%s %s]", ws.TPs[0].Name, ws.TPs[1].Name)
	}
}

func TestLocateWaypointsIgnoresOtherNames(t *testing.T) {
	g := Collection{Children: []Geometry{
		namedPoint("SP extra", 0, 0),   // not an exact "SP" match
		namedPoint("TPX", 0.1, 0),      // no "TP " prefix
		namedPoint("Camera 3", 0.2, 0), // unrelated label
	}}

	ws := LocateWaypoints(g)
	if ws.SP != nil || ws.FP != nil || len(ws.TPs) != 0 {
		t.Errorf("unrelated markers picked up: %+v", ws)
	}
}

func TestLocateWaypointsLastDuplicateWins(t *testing.T) {
	g := Collection{Children: []Geometry{
		namedPoint("SP", 0, 0),
		namedPoint("SP", 0.3, 0),
	}}

	ws := LocateWaypoints(g)
	if ws.SP == nil || ws.SP.Long != 0.3 {
		t.Errorf("want last SP to win, got %+v", ws.SP)
	}
}

func TestLocateWaypointsNestedFolders(t *testing.T) {
	g := Collection{Children: []Geometry{
		Collection{Children: []Geometry{
			namedPoint("SP", 0, 0),
			Collection{Children: []Geometry{
				namedPoint("TP 1", 0.1, 0),
			}},
		}},
		namedPoint("FP", 0.5, 0),
	}}

	ws := LocateWaypoints(g)
	if ws.SP == nil || len(ws.TPs) != 1 || ws.FP == nil {
		t.Errorf("nested folders not searched: %+v", ws)
	}
	all := ws.All()
	if len(all) != 3 || all[0].Name != "SP" || all[2].Name != "FP" {
		t.Errorf("All() wrong order: %+v", all)
	}
}

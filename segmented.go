package corridors

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	kDefaultCorridorMeters = 300.0

	// A snapped leg end this close to its edge's start vertex counts as lying
	// on the vertex, not inside the edge.
	kVertexToleranceMeters = 0.01
)

// A NamedLine is one offset polyline, tagged with the name of the corridor
// leg it belongs to.
type NamedLine struct {
	Name   string
	Coords []Coordinate
}

// A LegPoint anchors one end of a corridor leg: the exact coordinate plus the
// index of the track sub-segment it lies on.
type LegPoint struct {
	Coordinate

	Edge int
}

// A CorridorLeg is one inter-waypoint span of the track, from a gate to the
// next turning point (or the finish point), together with its left/right
// corridor. Legs are only ever emitted for provably continuous spans.
type CorridorLeg struct {
	Name       string
	Start, End LegPoint
	Slice      []Coordinate
	Corridor   CorridorOutput
}

// A Bundle is everything a map renderer or KML/GeoJSON exporter needs for one
// computed track: reference gates, the approximate waypoint labels, the
// refined exact waypoints, and the per-leg corridor boundary lines.
type Bundle struct {
	Gates         []Gate
	Points        []Waypoint
	ExactPoints   []ExactWaypoint
	LeftSegments  []NamedLine
	RightSegments []NamedLine
}

func NewBundle() *Bundle {
	return &Bundle{
		Gates:         []Gate{},
		Points:        []Waypoint{},
		ExactPoints:   []ExactWaypoint{},
		LeftSegments:  []NamedLine{},
		RightSegments: []NamedLine{},
	}
}

func (b *Bundle) AddGate(g Gate) { b.Gates = append(b.Gates, g) }

func (b *Bundle) AddPoint(w Waypoint) { b.Points = append(b.Points, w) }

// AddLeg files the leg's offset polylines under its name.
func (b *Bundle) AddLeg(leg CorridorLeg) {
	b.LeftSegments = append(b.LeftSegments, NamedLine{Name: leg.Name, Coords: leg.Corridor.Left})
	b.RightSegments = append(b.RightSegments, NamedLine{Name: leg.Name, Coords: leg.Corridor.Right})
}

// A Generator computes corridor bundles. Zero value works; CorridorMeters
// defaults to 300 and Log to a no-op logger. Generators are stateless: every
// call recomputes everything and allocates fresh outputs.
type Generator struct {
	CorridorMeters float64
	Log            *slog.Logger
}

func (g *Generator) corridorMeters() float64 {
	if g.CorridorMeters <= 0 {
		return kDefaultCorridorMeters
	}
	return g.CorridorMeters
}

func (g *Generator) logger() *slog.Logger {
	if g.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g.Log
}

// Generate runs the whole pipeline over one geometry container. It always
// returns a bundle: malformed or incomplete input degrades by omission
// (missing waypoints, broken spans, too-short tracks all just produce fewer
// outputs), never by error.
func (g *Generator) Generate(geom Geometry) *Bundle {
	log := g.logger()
	dist := g.corridorMeters()

	segs, gateMarkers := ExtractSegments(geom)
	track, main := BuildTrack(segs)
	ws := LocateWaypoints(geom)

	log.Debug("extracted geometry",
		"segments", len(segs), "mainSegments", len(main), "gateMarkers", len(gateMarkers),
		"trackPoints", len(track), "trackMeters", track.LengthMeters(),
		"trackNM", track.LengthMeters()/kMetersPerNM,
		"waypoints", len(ws.All()))

	b := NewBundle()
	for _, wp := range ws.All() {
		b.AddPoint(wp)
	}
	b.ExactPoints = ResolveExactWaypoints(ws, gateMarkers, track)

	if len(track) < 2 {
		log.Debug("track has fewer than 2 points; no gates or corridors")
		return b
	}

	gates := g.placeGates(track, ws, log)
	for _, gp := range gates {
		b.AddGate(MakeGate(gp.name, gp.Coordinate, gp.bearing, dist))
	}

	for _, leg := range g.corridorLegs(track, main, ws, gates, dist, log) {
		b.AddLeg(leg)
	}

	log.Debug("generated bundle",
		"gates", len(b.Gates), "legs", len(b.LeftSegments),
		"points", len(b.Points), "exactPoints", len(b.ExactPoints))
	return b
}

// A gatePoint is a resolved gate position on the track: the coordinate 5 NM
// after SP or 1 NM after a TP, with the local bearing and sub-segment there.
type gatePoint struct {
	Coordinate

	name    string // display name, e.g. "1NM after TP 2"
	prefix  string // leg-name prefix, e.g. "1NM-after-TP2"
	bearing float64
	edge    int
}

// placeGates builds the ordered gate list: 5 NM after SP, then 1 NM after
// each TP. Gate positions are resolved by walking along the track from the
// waypoint's nearest vertex; they are never re-snapped afterwards, to avoid
// drifting off the originally computed position.
func (g *Generator) placeGates(t Track, ws WaypointSet, log *slog.Logger) []gatePoint {
	gates := []gatePoint{}

	place := func(wp Waypoint, distMeters float64, label string) {
		idx := t.NearestIndex(wp.Coordinate)
		pt, bearing, edge, ok := t.PointAtDistance(idx, distMeters)
		if !ok {
			log.Debug("cannot place gate; track too short", "waypoint", wp.Name)
			return
		}
		gates = append(gates, gatePoint{
			Coordinate: pt,
			name:       label + " after " + wp.Name,
			prefix:     label + "-after-" + compactName(wp.Name),
			bearing:    bearing,
			edge:       edge,
		})
	}

	if ws.SP != nil {
		place(*ws.SP, 5*kMetersPerNM, "5NM")
	}
	for _, tp := range ws.TPs {
		place(tp, kMetersPerNM, "1NM")
	}
	return gates
}

// corridorLegs emits one corridor leg per consecutive (gate, target) pair,
// where the targets are TP1..TPn and then FP. A leg is rejected outright --
// logged and skipped, never approximated -- when its span isn't provably
// continuous. Missing SP or zero TPs yields zero legs; a missing FP just
// omits the final leg.
func (g *Generator) corridorLegs(t Track, main MainSegmentSet, ws WaypointSet,
	gates []gatePoint, distMeters float64, log *slog.Logger) []CorridorLeg {

	legs := []CorridorLeg{}
	if ws.SP == nil || len(ws.TPs) == 0 {
		log.Debug("missing SP or no TPs; no corridor legs")
		return legs
	}

	targets := append([]Waypoint{}, ws.TPs...)
	if ws.FP != nil {
		targets = append(targets, *ws.FP)
	} else {
		log.Debug("no FP; final leg omitted")
	}

	for i, gp := range gates {
		if i >= len(targets) {
			break
		}
		target := targets[i]
		name := gp.prefix + "→" + compactName(target.Name)

		end, endEdge, _, ok := t.SnapPoint(target.Coordinate)
		if !ok {
			log.Debug("cannot snap leg target to track", "leg", name)
			continue
		}

		leg, ok := buildLeg(t, main, gp, end, endEdge, name, log)
		if !ok {
			continue
		}
		leg.Corridor = OffsetCorridor(leg.Slice, distMeters)
		legs = append(legs, leg)
	}
	return legs
}

// buildLeg assembles the exact coordinate slice for one leg: the gate point,
// the track vertices strictly between the two sub-segment indices, and the
// snapped target point. The leg is rejected if the target precedes its gate,
// if the span crosses a gap or a non-main segment, if the end falls inside a
// gap edge, or if the slice somehow ends up shorter than 2 points.
func buildLeg(t Track, main MainSegmentSet, gp gatePoint, end Coordinate, endEdge int,
	name string, log *slog.Logger) (CorridorLeg, bool) {

	if endEdge < gp.edge {
		log.Debug("leg target precedes its gate; dropping leg", "leg", name)
		return CorridorLeg{}, false
	}
	if !t.ContinuousBetween(gp.edge, endEdge, main) {
		log.Debug("leg span crosses a gap or non-main segment; dropping leg", "leg", name)
		return CorridorLeg{}, false
	}
	// The continuity scan only covers edges strictly before endEdge. If the
	// end snapped into the interior of a flagged gap edge, the final
	// sub-segment would ride unflown track; an end exactly at the edge's
	// start vertex never enters the gap and stays legal.
	if t[endEdge].GapAfter && end.DistTo(t[endEdge].Coordinate) > kVertexToleranceMeters {
		log.Debug("leg end lies inside a gap edge; dropping leg", "leg", name)
		return CorridorLeg{}, false
	}

	slice := []Coordinate{gp.Coordinate}
	for k := gp.edge + 1; k <= endEdge; k++ {
		slice = append(slice, t[k].Coordinate)
	}
	slice = append(slice, end)
	if len(slice) < 2 {
		log.Debug("leg slice has fewer than 2 points; dropping leg", "leg", name)
		return CorridorLeg{}, false
	}

	return CorridorLeg{
		Name:  name,
		Start: LegPoint{Coordinate: gp.Coordinate, Edge: gp.edge},
		End:   LegPoint{Coordinate: end, Edge: endEdge},
		Slice: slice,
	}, true
}

// compactName collapses "TP 1" to "TP1" for leg names.
func compactName(s string) string { return strings.ReplaceAll(s, " ", "") }

func (leg CorridorLeg) String() string {
	return fmt.Sprintf("%s: %d slice points, edges [%d,%d]",
		leg.Name, len(leg.Slice), leg.Start.Edge, leg.End.Edge)
}

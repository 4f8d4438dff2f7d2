package geomio

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/airq/corridors"
)

// ParseGPX reads a GPX document into the engine's geometry container. Named
// waypoints become point features (so "SP"/"TP n"/"FP" labels work the same
// as in KML); track segments and routes become line features in file order.
func ParseGPX(data []byte) (corridors.Geometry, error) {
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing gpx: %w", err)
	}

	root := corridors.Collection{}
	for _, wp := range doc.Waypoints {
		root.Children = append(root.Children, corridors.Feature{
			Name: wp.Name,
			Geom: corridors.Point{Coord: gpxCoordinate(wp)},
		})
	}
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			root.Children = append(root.Children, corridors.Feature{
				Name: trk.Name,
				Geom: corridors.Line{Coords: gpxCoordinates(seg.Points)},
			})
		}
	}
	for _, rte := range doc.Routes {
		root.Children = append(root.Children, corridors.Feature{
			Name: rte.Name,
			Geom: corridors.Line{Coords: gpxCoordinates(rte.Points)},
		})
	}
	return root, nil
}

func gpxCoordinates(points []gpx.GPXPoint) []corridors.Coordinate {
	coords := make([]corridors.Coordinate, 0, len(points))
	for _, p := range points {
		coords = append(coords, gpxCoordinate(p))
	}
	return coords
}

func gpxCoordinate(p gpx.GPXPoint) corridors.Coordinate {
	c := corridors.Coordinate{Long: p.Longitude, Lat: p.Latitude}
	if p.Elevation.NotNull() {
		c.Alt = p.Elevation.Value()
	}
	return c
}

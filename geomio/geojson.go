package geomio

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/airq/corridors"
)

// ToGeoJSON converts a computed bundle into a GeoJSON feature collection for
// web-map consumers. Every feature carries "name" and "kind" properties;
// kinds are gate, point, exactPoint, leftCorridor, and rightCorridor.
// GeoJSON is 2D here: altitudes are dropped.
func ToGeoJSON(b *corridors.Bundle) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	add := func(geom orb.Geometry, name, kind string) {
		f := geojson.NewFeature(geom)
		f.Properties["name"] = name
		f.Properties["kind"] = kind
		fc.Append(f)
	}

	for _, g := range b.Gates {
		add(orb.LineString{orbPoint(g.Left), orbPoint(g.Right)}, g.Name, "gate")
	}
	for _, wp := range b.Points {
		add(orbPoint(wp.Coordinate), wp.Name, "point")
	}
	for _, wp := range b.ExactPoints {
		add(orbPoint(wp.Exact), wp.Name, "exactPoint")
	}
	for _, line := range b.LeftSegments {
		add(orbLine(line.Coords), line.Name, "leftCorridor")
	}
	for _, line := range b.RightSegments {
		add(orbLine(line.Coords), line.Name, "rightCorridor")
	}
	return fc
}

func orbPoint(c corridors.Coordinate) orb.Point {
	return orb.Point{c.Long, c.Lat}
}

func orbLine(coords []corridors.Coordinate) orb.LineString {
	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		ls = append(ls, orbPoint(c))
	}
	return ls
}

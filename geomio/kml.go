// Package geomio converts between on-disk track formats (KML, GPX) and the
// generic geometry container the corridor engine consumes, and exports
// computed bundles back out as KML or GeoJSON.
package geomio

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/airq/corridors"
)

// The subset of KML we read: nested Documents/Folders of Placemarks holding
// Points, LineStrings, or MultiGeometries. Everything else in the file is
// ignored, not flagged.

type kmlFile struct {
	XMLName  xml.Name    `xml:"kml"`
	Document *kmlFolder  `xml:"Document"`
	Folders  []kmlFolder `xml:"Folder"`
}

type kmlFolder struct {
	Name       string         `xml:"name"`
	Folders    []kmlFolder    `xml:"Folder"`
	Documents  []kmlFolder    `xml:"Document"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name          string        `xml:"name"`
	Point         *kmlGeometry  `xml:"Point"`
	LineString    *kmlGeometry  `xml:"LineString"`
	MultiGeometry *kmlMultiGeom `xml:"MultiGeometry"`
}

type kmlGeometry struct {
	Coordinates string `xml:"coordinates"`
}

type kmlMultiGeom struct {
	Points      []kmlGeometry `xml:"Point"`
	LineStrings []kmlGeometry `xml:"LineString"`
}

// ParseKML reads a KML document into the engine's geometry container.
// Placemark order within a folder is preserved (it is the drawing order the
// track builder depends on); sub-folders are visited after the folder's own
// placemarks.
func ParseKML(r io.Reader) (corridors.Geometry, error) {
	var file kmlFile
	if err := xml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing kml: %w", err)
	}

	root := corridors.Collection{}
	if file.Document != nil {
		root.Children = append(root.Children, folderToCollection(*file.Document))
	}
	for _, f := range file.Folders {
		root.Children = append(root.Children, folderToCollection(f))
	}
	return root, nil
}

func folderToCollection(f kmlFolder) corridors.Collection {
	c := corridors.Collection{}
	for _, pm := range f.Placemarks {
		c.Children = append(c.Children, placemarkToFeature(pm))
	}
	for _, sub := range f.Documents {
		c.Children = append(c.Children, folderToCollection(sub))
	}
	for _, sub := range f.Folders {
		c.Children = append(c.Children, folderToCollection(sub))
	}
	return c
}

func placemarkToFeature(pm kmlPlacemark) corridors.Feature {
	feat := corridors.Feature{Name: pm.Name}
	switch {
	case pm.LineString != nil:
		feat.Geom = corridors.Line{Coords: parseCoordinates(pm.LineString.Coordinates)}
	case pm.Point != nil:
		if coords := parseCoordinates(pm.Point.Coordinates); len(coords) > 0 {
			feat.Geom = corridors.Point{Coord: coords[0]}
		}
	case pm.MultiGeometry != nil:
		gc := corridors.GeometryCollection{}
		for _, p := range pm.MultiGeometry.Points {
			if coords := parseCoordinates(p.Coordinates); len(coords) > 0 {
				gc.Geoms = append(gc.Geoms, corridors.Point{Coord: coords[0]})
			}
		}
		for _, l := range pm.MultiGeometry.LineStrings {
			gc.Geoms = append(gc.Geoms, corridors.Line{Coords: parseCoordinates(l.Coordinates)})
		}
		feat.Geom = gc
	}
	return feat
}

// parseCoordinates parses a KML coordinate string: whitespace-separated
// "lon,lat[,alt]" tuples. Malformed tuples are skipped.
func parseCoordinates(s string) []corridors.Coordinate {
	coords := []corridors.Coordinate{}
	for _, tuple := range strings.Fields(s) {
		parts := strings.Split(tuple, ",")
		if len(parts) < 2 {
			continue
		}
		long, err1 := strconv.ParseFloat(parts[0], 64)
		lat, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		c := corridors.Coordinate{Long: long, Lat: lat}
		if len(parts) >= 3 {
			c.Alt, _ = strconv.ParseFloat(parts[2], 64)
		}
		coords = append(coords, c)
	}
	return coords
}

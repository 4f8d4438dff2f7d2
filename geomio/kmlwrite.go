package geomio

import (
	"fmt"
	"image/color"
	"io"

	kml "github.com/twpayne/go-kml"

	"github.com/airq/corridors"
)

// KML style ids and colors, matching what competitors are used to seeing:
// green corridor boundaries, red distance gates, yellow waypoint labels.
const (
	kLeftCorridorStyle  = "leftCorridorStyle"
	kRightCorridorStyle = "rightCorridorStyle"
	kGateStyle          = "distanceMarkerStyle"
	kWaypointStyle      = "waypointStyle"
)

var (
	kCorridorGreen = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	kGateRed       = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	kLabelYellow   = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
)

// WriteKML serializes a computed bundle as a KML document: one placemark per
// gate, corridor boundary line, and waypoint (approximate and exact). Each
// corridor placemark is named after its leg, so re-parsing the file recovers
// the per-leg segmentation.
func WriteKML(w io.Writer, b *corridors.Bundle) error {
	doc := kml.Document(
		kml.Name("Corridors"),
		kml.SharedStyle(kLeftCorridorStyle,
			kml.LineStyle(kml.Color(kCorridorGreen), kml.Width(2)),
		),
		kml.SharedStyle(kRightCorridorStyle,
			kml.LineStyle(kml.Color(kCorridorGreen), kml.Width(2)),
		),
		kml.SharedStyle(kGateStyle,
			kml.LineStyle(kml.Color(kGateRed), kml.Width(4)),
		),
		kml.SharedStyle(kWaypointStyle,
			kml.IconStyle(kml.Color(kLabelYellow)),
		),
	)

	for _, g := range b.Gates {
		doc.Add(kml.Placemark(
			kml.Name(g.Name),
			kml.StyleURL("#"+kGateStyle),
			kml.LineString(kml.Coordinates(kc(g.Left), kc(g.Right))),
		))
	}
	for _, line := range b.LeftSegments {
		doc.Add(linePlacemark("Left "+line.Name, kLeftCorridorStyle, line.Coords))
	}
	for _, line := range b.RightSegments {
		doc.Add(linePlacemark("Right "+line.Name, kRightCorridorStyle, line.Coords))
	}
	for _, wp := range b.Points {
		doc.Add(kml.Placemark(
			kml.Name(wp.Name),
			kml.StyleURL("#"+kWaypointStyle),
			kml.Point(kml.Coordinates(kc(wp.Coordinate))),
		))
	}
	for _, wp := range b.ExactPoints {
		doc.Add(kml.Placemark(
			kml.Name(wp.Name+" (exact)"),
			kml.StyleURL("#"+kWaypointStyle),
			kml.Point(kml.Coordinates(kc(wp.Exact))),
		))
	}

	if err := kml.KML(doc).WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("writing kml: %w", err)
	}
	return nil
}

func linePlacemark(name, styleID string, coords []corridors.Coordinate) kml.Element {
	kcs := make([]kml.Coordinate, 0, len(coords))
	for _, c := range coords {
		kcs = append(kcs, kc(c))
	}
	return kml.Placemark(
		kml.Name(name),
		kml.StyleURL("#"+styleID),
		kml.LineString(kml.Coordinates(kcs...)),
	)
}

func kc(c corridors.Coordinate) kml.Coordinate {
	return kml.Coordinate{Lon: c.Long, Lat: c.Lat, Alt: c.Alt}
}

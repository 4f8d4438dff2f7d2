// Command corridors reads a competition track (KML or GPX), computes the
// corridor boundary lines and reference gates, and writes them out as KML
// and, optionally, GeoJSON.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/airq/corridors"
	"github.com/airq/corridors/geomio"
)

func main() {
	var (
		input       = flag.String("i", "input.kml", "input track file (.kml or .gpx)")
		output      = flag.String("o", "corridors.kml", "output corridors KML file")
		distMeters  = flag.Float64("d", 300, "corridor distance in meters")
		geojsonPath = flag.String("geojson", "", "also write a GeoJSON feature collection here")
		verbose     = flag.Bool("v", false, "debug tracing")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*input, *output, *geojsonPath, *distMeters, log); err != nil {
		log.Error("failed", "err", err)
		os.Exit(1)
	}
}

func run(input, output, geojsonPath string, distMeters float64, log *slog.Logger) error {
	geom, err := load(input)
	if err != nil {
		return err
	}

	gen := &corridors.Generator{CorridorMeters: distMeters, Log: log}
	bundle := gen.Generate(geom)

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := geomio.WriteKML(f, bundle); err != nil {
		return err
	}
	log.Info("wrote corridors", "path", output,
		"legs", len(bundle.LeftSegments), "gates", len(bundle.Gates),
		"points", len(bundle.Points))

	if geojsonPath != "" {
		data, err := json.MarshalIndent(geomio.ToGeoJSON(bundle), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding geojson: %w", err)
		}
		if err := os.WriteFile(geojsonPath, data, 0644); err != nil {
			return err
		}
		log.Info("wrote geojson", "path", geojsonPath)
	}
	return nil
}

func load(path string) (corridors.Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".gpx") {
		return geomio.ParseGPX(data)
	}
	return geomio.ParseKML(bytes.NewReader(data))
}

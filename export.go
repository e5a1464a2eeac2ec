package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// RoutePoints resolves the names of a path to their locations
func RoutePoints(graph *Graph, path []string) []orb.Point {
	points := make([]orb.Point, 0, len(path))
	for _, name := range path {
		if node, ok := graph.GetNode(name); ok {
			points = append(points, node.Location)
		}
	}
	return points
}

// RouteFeatureCollection renders a found route as a LineString followed by
// one Point per stop. A result without a route yields an empty collection.
func RouteFeatureCollection(graph *Graph, result SearchResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if !result.Found || len(result.Path) == 0 {
		return fc
	}

	points := RoutePoints(graph, result.Path)

	line := geojson.NewFeature(orb.LineString(points))
	line.Properties["start"] = result.Path[0]
	line.Properties["goal"] = result.Path[len(result.Path)-1]
	line.Properties["cost"] = result.Cost
	line.Properties["stops"] = len(result.Path)
	if IsGeographic(points) {
		line.Properties["length_m"] = RouteLengthMeters(points)
	}
	fc.Append(line)

	for i, name := range result.Path {
		node, ok := graph.GetNode(name)
		if !ok {
			continue
		}
		stop := geojson.NewFeature(node.Location)
		stop.Properties["name"] = name
		stop.Properties["order"] = i
		fc.Append(stop)
	}

	return fc
}

// GraphFeatureCollection renders every connection once as a LineString and
// every location as a Point
func GraphFeatureCollection(graph *Graph) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	// Undirected graphs store both directions; keep the first of each pair
	seen := make(map[[2]string]bool)
	for _, edge := range graph.Edges() {
		key := [2]string{edge.From.Name, edge.To.Name}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		f := geojson.NewFeature(orb.LineString{edge.From.Location, edge.To.Location})
		f.Properties["from"] = edge.From.Name
		f.Properties["to"] = edge.To.Name
		f.Properties["weight"] = edge.Weight
		fc.Append(f)
	}

	for _, node := range graph.Nodes() {
		f := geojson.NewFeature(node.Location)
		f.Properties["name"] = node.Name
		fc.Append(f)
	}

	return fc
}

// WriteGeoJSON writes a feature collection as indented JSON
func WriteGeoJSON(path string, fc *geojson.FeatureCollection) error {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return WrapError(err, CodeInternal, "failed to marshal GeoJSON")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return WrapError(err, CodeInternal, "failed to write GeoJSON").WithContext(CtxPath, path)
	}

	slog.Info("GeoJSON written", "path", path, "features", len(fc.Features), "bytes", len(data))
	return nil
}

package main

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// RouteDistance is the cost function used both for edge weights and for the
// A* heuristic: the square root of the summed absolute coordinate deltas.
// It is neither Euclidean nor Manhattan distance and is not admissible in
// general, so routes are only as good as this estimate allows.
func RouteDistance(a, b orb.Point) float64 {
	return math.Sqrt(math.Abs(a.X()-b.X()) + math.Abs(a.Y()-b.Y()))
}

// PlanarDistance is the Euclidean distance between two points in coordinate units.
func PlanarDistance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// RouteLengthMeters sums the great-circle length of consecutive points,
// reading X as longitude and Y as latitude.
func RouteLengthMeters(points []orb.Point) float64 {
	var total float64
	for i := 0; i < len(points)-1; i++ {
		total += geo.Distance(points[i], points[i+1])
	}
	return total
}

// IsGeographic reports whether every point lies in the lon/lat range.
func IsGeographic(points []orb.Point) bool {
	if len(points) == 0 {
		return false
	}
	for _, p := range points {
		if p.X() < -180 || p.X() > 180 || p.Y() < -90 || p.Y() > 90 {
			return false
		}
	}
	return true
}

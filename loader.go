package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Coordinates maps location names to points, remembering the order in which
// names first appeared.
type Coordinates struct {
	names  []string
	points map[string]orb.Point
}

func NewCoordinates() *Coordinates {
	return &Coordinates{points: make(map[string]orb.Point)}
}

// Set records a location. A repeated name keeps its original position and
// takes the new point.
func (c *Coordinates) Set(name string, point orb.Point) {
	if _, exists := c.points[name]; !exists {
		c.names = append(c.names, name)
	}
	c.points[name] = point
}

func (c *Coordinates) Lookup(name string) (orb.Point, bool) {
	p, ok := c.points[name]
	return p, ok
}

func (c *Coordinates) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Coordinates) Len() int { return len(c.names) }

// AdjacencyRow is one line of the adjacency table
type AdjacencyRow struct {
	Name      string
	Neighbors []string
	Line      int
}

// ParseCoordinates reads whitespace separated "NAME X Y" lines
func ParseCoordinates(r io.Reader) (*Coordinates, error) {
	coords := NewCoordinates()
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, NewError(CodeInvalidData, fmt.Sprintf("expected NAME X Y, got %d fields", len(fields))).
				WithContext(CtxLine, lineNo)
		}

		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, WrapError(err, CodeInvalidData, "invalid x coordinate").WithContext(CtxLine, lineNo)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, WrapError(err, CodeInvalidData, "invalid y coordinate").WithContext(CtxLine, lineNo)
		}

		if _, exists := coords.Lookup(fields[0]); exists {
			slog.Warn("duplicate location, keeping last coordinates", "name", fields[0], "line", lineNo)
		}
		coords.Set(fields[0], orb.Point{x, y})
	}
	if err := scanner.Err(); err != nil {
		return nil, WrapError(err, CodeInvalidData, "failed to read coordinates")
	}

	return coords, nil
}

// ParseAdjacencies reads whitespace separated "NAME NEIGHBOR..." lines.
// A row may name a location with no neighbours.
func ParseAdjacencies(r io.Reader) ([]AdjacencyRow, error) {
	var rows []AdjacencyRow
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, AdjacencyRow{
			Name:      fields[0],
			Neighbors: fields[1:],
			Line:      lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, WrapError(err, CodeInvalidData, "failed to read adjacencies")
	}

	return rows, nil
}

// BuildGraph turns the two tables into a graph: one node per coordinate
// entry and one logical edge per adjacency pair, weighted by RouteDistance.
// Every name in the adjacency table must have coordinates.
func BuildGraph(coords *Coordinates, rows []AdjacencyRow, directed bool) (*Graph, error) {
	nodes := make([]Node, 0, coords.Len())
	for _, name := range coords.names {
		nodes = append(nodes, Node{Name: name, Location: coords.points[name]})
	}

	node := func(name string, line int) (Node, error) {
		p, ok := coords.Lookup(name)
		if !ok {
			return Node{}, NewError(CodeInvalidData, "location has no coordinates").
				WithContext(CtxNode, name).
				WithContext(CtxLine, line)
		}
		return Node{Name: name, Location: p}, nil
	}

	var edges []Edge
	for _, row := range rows {
		if len(row.Neighbors) == 0 {
			continue
		}
		src, err := node(row.Name, row.Line)
		if err != nil {
			return nil, err
		}
		for _, neighbor := range row.Neighbors {
			dest, err := node(neighbor, row.Line)
			if err != nil {
				return nil, err
			}
			edges = append(edges, Edge{
				From:   src,
				To:     dest,
				Weight: RouteDistance(src.Location, dest.Location),
			})
		}
	}

	return NewGraph(nodes, edges, directed), nil
}

// LoadGraph reads the coordinate and adjacency files and builds the graph
func LoadGraph(coordinatesPath, adjacenciesPath string, directed bool) (*Graph, error) {
	coords, err := loadFile(coordinatesPath, ParseCoordinates)
	if err != nil {
		return nil, err
	}
	rows, err := loadFile(adjacenciesPath, ParseAdjacencies)
	if err != nil {
		return nil, err
	}

	graph, err := BuildGraph(coords, rows, directed)
	if err != nil {
		return nil, AddContext(err, CtxPath, adjacenciesPath)
	}

	bound := graph.Bound()
	slog.Info("graph loaded",
		"nodes", graph.NodeCount(),
		"edges", graph.EdgeCount(),
		"directed", directed,
		"min", fmt.Sprintf("(%g, %g)", bound.Min.X(), bound.Min.Y()),
		"max", fmt.Sprintf("(%g, %g)", bound.Max.X(), bound.Max.Y()),
	)
	return graph, nil
}

func loadFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		code := CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = CodeNotFound
		}
		return zero, WrapError(err, code, "failed to open data file").WithContext(CtxPath, path)
	}
	defer f.Close()

	slog.Debug("reading data file", "path", path)
	out, err := parse(f)
	if err != nil {
		return zero, AddContext(err, CtxPath, path)
	}
	return out, nil
}

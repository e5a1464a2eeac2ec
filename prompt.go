package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
)

const (
	msgUnrecognized = "Error: unrecognized city."
	msgNoPath       = "No paths found."
)

var (
	routeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

// Prompt asks for locations on a line-oriented terminal
type Prompt struct {
	in         *bufio.Scanner
	out        io.Writer
	graph      *Graph
	index      *NodeIndex
	snapRadius float64
	color      bool
}

func NewPrompt(in io.Reader, out io.Writer, graph *Graph, cfg *Config) *Prompt {
	return &Prompt{
		in:         bufio.NewScanner(in),
		out:        out,
		graph:      graph,
		index:      NewNodeIndex(graph),
		snapRadius: cfg.Search.SnapRadius,
		color:      cfg.Output.ColorEnabled(),
	}
}

// Ask repeats label until the answer names a known location or snaps to one.
// Running out of input is an error.
func (p *Prompt) Ask(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", WrapError(err, CodeInternal, "failed to read input")
			}
			return "", NewError(CodeNotFound, "input ended before a location was given").WithContext("prompt", label)
		}

		name, ok := p.Resolve(p.in.Text())
		if ok {
			return name, nil
		}
		fmt.Fprintln(p.out, p.render(errorStyle, msgUnrecognized))
	}
}

// Resolve maps an answer to a location name. "@x,y" snaps to the closest
// location, within the configured radius if one is set.
func (p *Prompt) Resolve(answer string) (string, bool) {
	answer = strings.TrimSpace(answer)

	if strings.HasPrefix(answer, "@") {
		point, ok := parsePoint(answer[1:])
		if !ok {
			return "", false
		}
		node, dist, ok := p.index.Nearest(point)
		if !ok || (p.snapRadius > 0 && dist > p.snapRadius) {
			return "", false
		}
		fmt.Fprintln(p.out, p.render(noteStyle, fmt.Sprintf("Using %s (%.4g away)", node.Name, dist)))
		return node.Name, true
	}

	if _, ok := p.graph.GetNode(answer); !ok {
		return "", false
	}
	return answer, true
}

// Report prints the route or the no-path message
func (p *Prompt) Report(result SearchResult, separator string) {
	if !result.Found {
		fmt.Fprintln(p.out, p.render(errorStyle, msgNoPath))
		return
	}
	fmt.Fprintln(p.out, p.render(routeStyle, FormatRoute(result.Path, separator)))
}

func (p *Prompt) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// FormatRoute joins a path with separator
func FormatRoute(path []string, separator string) string {
	return strings.Join(path, separator)
}

// parsePoint reads "x,y"
func parsePoint(s string) (orb.Point, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, false
	}
	return orb.Point{x, y}, true
}

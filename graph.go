package main

import "github.com/paulmach/orb"

// Node is a named location. Two nodes with the same name are the same node.
type Node struct {
	Name     string
	Location orb.Point
}

// Edge is a directed, weighted connection between two nodes
type Edge struct {
	From   Node
	To     Node
	Weight float64
}

// Inverse returns the same connection in the opposite direction
func (e Edge) Inverse() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Graph is the fixed set of locations and connections a search runs over.
// It is never mutated after NewGraph returns.
type Graph struct {
	nodes     []Node
	edges     []Edge
	index     map[string]int
	adjacency map[string][]Node
}

// NewGraph builds a graph from nodes and edges. Undirected graphs store every
// edge followed by its inverse. Edge endpoints are not checked against nodes.
func NewGraph(nodes []Node, edges []Edge, directed bool) *Graph {
	g := &Graph{
		nodes:     make([]Node, len(nodes)),
		index:     make(map[string]int, len(nodes)),
		adjacency: make(map[string][]Node),
	}
	copy(g.nodes, nodes)
	for i, node := range g.nodes {
		if _, exists := g.index[node.Name]; !exists {
			g.index[node.Name] = i
		}
	}

	if directed {
		g.edges = make([]Edge, len(edges))
		copy(g.edges, edges)
	} else {
		g.edges = make([]Edge, 0, len(edges)*2)
		for _, edge := range edges {
			g.edges = append(g.edges, edge, edge.Inverse())
		}
	}

	// Neighbour sets, deduplicated by name
	seen := make(map[string]map[string]bool)
	for _, edge := range g.edges {
		src := edge.From.Name
		if seen[src] == nil {
			seen[src] = make(map[string]bool)
		}
		if seen[src][edge.To.Name] {
			continue
		}
		seen[src][edge.To.Name] = true
		g.adjacency[src] = append(g.adjacency[src], edge.To)
	}

	return g
}

// Neighbors returns every node reachable from name over a single edge.
// Unknown names yield an empty slice.
func (g *Graph) Neighbors(name string) []Node {
	neighbors := g.adjacency[name]
	out := make([]Node, len(neighbors))
	copy(out, neighbors)
	return out
}

// GetNode looks up a node by exact name
func (g *Graph) GetNode(name string) (Node, bool) {
	i, ok := g.index[name]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int { return len(g.edges) }

// Bound is the bounding box of all node locations
func (g *Graph) Bound() orb.Bound {
	points := make(orb.MultiPoint, len(g.nodes))
	for i, node := range g.nodes {
		points[i] = node.Location
	}
	return points.Bound()
}

package main

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// pointTolerance is the half-width of the box each node occupies in the tree
const pointTolerance = 1e-9

// NodeEntry wraps a node for R-tree storage
type NodeEntry struct {
	Node Node
	BBox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *NodeEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// NodeIndex answers "which named location is closest to this point"
type NodeIndex struct {
	tree *rtreego.Rtree
}

// NewNodeIndex indexes every node of the graph
func NewNodeIndex(graph *Graph) *NodeIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, node := range graph.Nodes() {
		p := rtreego.Point{node.Location.X(), node.Location.Y()}
		tree.Insert(&NodeEntry{
			Node: node,
			BBox: p.ToRect(pointTolerance),
		})
	}

	return &NodeIndex{tree: tree}
}

func (ni *NodeIndex) Size() int { return ni.tree.Size() }

// Nearest returns the node closest to p and its planar distance.
// ok is false when the index is empty.
func (ni *NodeIndex) Nearest(p orb.Point) (node Node, dist float64, ok bool) {
	if ni.tree.Size() == 0 {
		return Node{}, math.Inf(1), false
	}

	item := ni.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	if item == nil {
		return Node{}, math.Inf(1), false
	}

	entry := item.(*NodeEntry)
	return entry.Node, PlanarDistance(p, entry.Node.Location), true
}

package main

import (
	"container/heap"
	"log/slog"
	"math"
)

// SearchResult is the outcome of one A* query. Found is false and Path is
// nil when the goal cannot be reached.
type SearchResult struct {
	Path     []string
	Cost     float64
	Found    bool
	Expanded int // number of entries popped from the open set
}

// openEntry is a queued node name with the f-score it was pushed with
type openEntry struct {
	Name  string
	F     float64
	Index int // Index in the heap
}

// PriorityQueue implements heap.Interface for the open set.
// Equal f-scores are ordered by name.
type PriorityQueue []*openEntry

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}
	return pq[i].Name < pq[j].Name
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	entry := x.(*openEntry)
	entry.Index = n
	*pq = append(*pq, entry)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.Index = -1
	*pq = old[0 : n-1]
	return entry
}

// scoreOf reads a score, treating names never scored as infinitely far
func scoreOf(scores map[string]float64, name string) float64 {
	if s, ok := scores[name]; ok {
		return s
	}
	return math.Inf(1)
}

// AStar finds a route from start to goal. Both names must exist in the graph;
// otherwise an UNKNOWN_NODE error is returned. An unreachable goal is not an
// error: the result simply has Found == false.
//
// A node is pushed only while its name is not already queued. Queued entries
// keep the priority they were pushed with, and a node that was already popped
// is not queued again when a cheaper route to it turns up later.
func AStar(graph *Graph, start, goal string) (SearchResult, error) {
	startNode, ok := graph.GetNode(start)
	if !ok {
		return SearchResult{}, NewError(CodeUnknownNode, "unknown start location").WithContext(CtxNode, start)
	}
	goalNode, ok := graph.GetNode(goal)
	if !ok {
		return SearchResult{}, NewError(CodeUnknownNode, "unknown goal location").WithContext(CtxNode, goal)
	}

	heuristic := func(node Node) float64 {
		return RouteDistance(node.Location, goalNode.Location)
	}

	cameFrom := make(map[string]string)
	gScore := map[string]float64{start: 0}
	fScore := map[string]float64{start: heuristic(startNode)}

	openSet := &PriorityQueue{}
	heap.Init(openSet)
	heap.Push(openSet, &openEntry{Name: start, F: fScore[start]})
	queued := map[string]bool{start: true}

	// Edge endpoints missing from the node list keep the location their
	// edge gave them.
	discovered := map[string]Node{start: startNode}

	expanded := 0

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*openEntry)
		delete(queued, current.Name)
		expanded++

		currentNode, ok := graph.GetNode(current.Name)
		if !ok {
			currentNode = discovered[current.Name]
		}

		if current.Name == goal {
			path := backtrack(cameFrom, current.Name)
			cost := gScore[current.Name]
			slog.Debug("route found", "start", start, "goal", goal, "hops", len(path)-1, "cost", cost, "expanded", expanded)
			return SearchResult{Path: path, Cost: cost, Found: true, Expanded: expanded}, nil
		}

		for _, neighbor := range graph.Neighbors(current.Name) {
			tentativeG := scoreOf(gScore, current.Name) + RouteDistance(currentNode.Location, neighbor.Location)

			if tentativeG < scoreOf(gScore, neighbor.Name) {
				cameFrom[neighbor.Name] = current.Name
				if _, ok := discovered[neighbor.Name]; !ok {
					discovered[neighbor.Name] = neighbor
				}
				gScore[neighbor.Name] = tentativeG
				fScore[neighbor.Name] = tentativeG + heuristic(neighbor)

				if !queued[neighbor.Name] {
					heap.Push(openSet, &openEntry{Name: neighbor.Name, F: fScore[neighbor.Name]})
					queued[neighbor.Name] = true
				}
			}
		}
	}

	slog.Debug("no route", "start", start, "goal", goal, "expanded", expanded)
	return SearchResult{Expanded: expanded}, nil
}

// backtrack follows predecessor links from name until a node without one,
// then returns the chain in start-to-goal order
func backtrack(cameFrom map[string]string, name string) []string {
	path := []string{name}
	visited := map[string]bool{name: true}
	for {
		prev, ok := cameFrom[name]
		if !ok || visited[prev] {
			break
		}
		visited[prev] = true
		path = append(path, prev)
		name = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// This file contains thin wrappers around the graph module
// for managing the knockout bracket structure.
package core

import (
	"github.com/dominikbraun/graph"
)

type GraphNode interface {
	// A unique ID that is used as the node hash
	Id() int
}

func getNodeId[T GraphNode](node T) int {
	return node.Id()
}

type DependencyGraph[T GraphNode] struct {
	graph.Graph[int, T]
	adjacencyMap map[int]map[int]graph.Edge[int]
}

func (g *DependencyGraph[T]) AddEdge(source, target T) error {
	err := g.Graph.AddEdge(source.Id(), target.Id())
	return err
}

// Returns the nodes that are on the outgoing edges of the given
// source node (the dependants).
func (g *DependencyGraph[T]) GetDependants(source T) []T {
	if g.adjacencyMap == nil {
		// The graph does not change after initialization so the
		// adjacency map is stored on the first call
		g.adjacencyMap, _ = g.Graph.AdjacencyMap()
	}

	outEdges := g.adjacencyMap[source.Id()]
	dependants := make([]T, 0, len(outEdges))
	for k := range outEdges {
		dependant, _ := g.Vertex(k)
		dependants = append(dependants, dependant)
	}

	return dependants
}

// A BracketGraph has all nodes of the knockout bracket as its
// vertices. The directed edges lead from a bracket node to the
// following node that its winner advances into, forming a
// conventional tournament tree.
//
// The graph determines how a recorded result propagates: when a
// node resolves, the slots of its dependants update from the
// new winner.
type BracketGraph struct {
	DependencyGraph[*BracketNode]
}

func NewBracketGraph() *BracketGraph {
	graph := DependencyGraph[*BracketNode]{
		Graph: graph.New(getNodeId[*BracketNode], graph.Directed()),
	}
	bracketGraph := BracketGraph{DependencyGraph: graph}
	return &bracketGraph
}

// An idSource hands out the IDs for the matches and bracket
// nodes of one tournament. It is owned by the Tournament value
// so two tournaments produce identical IDs for identical
// configurations.
type idSource struct {
	next int
}

func (s *idSource) nextId() int {
	id := s.next
	s.next += 1
	return id
}

package slide

import (
	"errors"
	"slices"

	"github.com/matzehuels/ventriglisse/pkg/maze"
)

var (
	// ErrEdgeIntoStart is returned by [Graph.Validate] when an edge targets
	// the [Start] sentinel. Start is a pure source.
	ErrEdgeIntoStart = errors.New("edge into start sentinel")

	// ErrEdgeFromEnd is returned by [Graph.Validate] when an edge leaves the
	// [End] sentinel. End is a pure sink.
	ErrEdgeFromEnd = errors.New("edge out of end sentinel")

	// ErrSelfLoop is returned by [Graph.Validate] when a coordinate node
	// links to itself. A slide that does not move is not a move.
	ErrSelfLoop = errors.New("slide edge does not move")
)

// NodeKind distinguishes grid cells from the two sentinel nodes.
type NodeKind int

const (
	// NodeCoord is a grid cell, identified by its coordinate.
	NodeCoord NodeKind = iota
	// NodeStart is the sentinel the search starts from.
	NodeStart
	// NodeEnd is the sentinel the search ends at.
	NodeEnd
)

// Node is a vertex of the slide graph. Coord is only meaningful for
// NodeCoord nodes. Node is comparable and can be used as a map key.
type Node struct {
	Kind  NodeKind
	Coord maze.Coord
}

var (
	// Start is the sentinel source node.
	Start = Node{Kind: NodeStart}
	// End is the sentinel target node.
	End = Node{Kind: NodeEnd}
)

// At returns the node of the cell at c.
func At(c maze.Coord) Node { return Node{Kind: NodeCoord, Coord: c} }

// IsSentinel reports whether n is Start or End.
func (n Node) IsSentinel() bool { return n.Kind != NodeCoord }

func (n Node) String() string {
	switch n.Kind {
	case NodeStart:
		return "start"
	case NodeEnd:
		return "end"
	}
	return n.Coord.String()
}

// Edge is a directed slide from one node to another.
type Edge struct {
	From Node
	To   Node
}

// Graph is a directed graph of slide moves. Nodes and edges keep their
// insertion order, and an edge is stored at most once.
//
// The zero value is not usable - use [New] to create a graph.
type Graph struct {
	nodes    map[Node]struct{}
	order    []Node
	edges    []Edge
	edgeSet  map[Edge]struct{}
	outgoing map[Node][]Node
	incoming map[Node][]Node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[Node]struct{}),
		edgeSet:  make(map[Edge]struct{}),
		outgoing: make(map[Node][]Node),
		incoming: make(map[Node][]Node),
	}
}

// AddNode adds n to the graph. Adding an existing node is a no-op.
func (g *Graph) AddNode(n Node) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = struct{}{}
	g.order = append(g.order, n)
}

// AddEdge adds the edge e, creating its endpoints as needed. It reports
// whether the edge was new; re-adding an existing edge changes nothing.
func (g *Graph) AddEdge(e Edge) bool {
	if _, ok := g.edgeSet[e]; ok {
		return false
	}
	g.AddNode(e.From)
	g.AddNode(e.To)
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether n is in the graph.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasEdge reports whether the edge from→to is in the graph.
func (g *Graph) HasEdge(from, to Node) bool {
	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// Children returns the nodes n has edges to, in insertion order.
// The returned slice should not be modified.
func (g *Graph) Children(n Node) []Node { return g.outgoing[n] }

// Parents returns the nodes with an edge to n, in insertion order.
// The returned slice should not be modified.
func (g *Graph) Parents(n Node) []Node { return g.incoming[n] }

// OutDegree returns the number of edges leaving n.
func (g *Graph) OutDegree(n Node) int { return len(g.outgoing[n]) }

// InDegree returns the number of edges entering n.
func (g *Graph) InDegree(n Node) int { return len(g.incoming[n]) }

// Validate checks that the sentinels are used as a source and a sink and
// that no coordinate node links to itself.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		switch {
		case e.To == Start:
			return ErrEdgeIntoStart
		case e.From == End:
			return ErrEdgeFromEnd
		case e.From.Kind == NodeCoord && e.From == e.To:
			return ErrSelfLoop
		}
	}
	return nil
}

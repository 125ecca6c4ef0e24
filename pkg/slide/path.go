package slide

import (
	"slices"
	"strings"

	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
	"github.com/matzehuels/ventriglisse/pkg/maze"
)

// Path is a sequence of nodes where each consecutive pair is an edge of the
// graph it was found in. Paths returned by [Solve] begin with [Start] and
// end with [End].
type Path []Node

// Coords returns the coordinates of the path with sentinels removed.
func (p Path) Coords() []maze.Coord {
	coords := make([]maze.Coord, 0, len(p))
	for _, n := range p {
		if !n.IsSentinel() {
			coords = append(coords, n.Coord)
		}
	}
	return coords
}

// Hops returns the number of edges in the path.
func (p Path) Hops() int { return max(len(p)-1, 0) }

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = n.String()
	}
	return strings.Join(parts, " -> ")
}

// ShortestPath returns a path with the fewest edges from one node to
// another. The search is breadth-first and visits children in edge insertion
// order, so the same graph always yields the same path.
//
// It fails with a *errors.PathNotFoundError when either endpoint is missing
// from the graph or to is unreachable from from.
func ShortestPath(g *Graph, from, to Node) (Path, error) {
	notFound := &verrors.PathNotFoundError{
		Nodes:        g.NodeCount(),
		Edges:        g.EdgeCount(),
		MissingStart: !g.HasNode(from),
		MissingEnd:   !g.HasNode(to),
	}
	if notFound.MissingStart || notFound.MissingEnd {
		return nil, notFound
	}
	if from == to {
		return Path{from}, nil
	}

	parent := map[Node]Node{from: from}
	queue := []Node{from}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, child := range g.outgoing[n] {
			if _, seen := parent[child]; seen {
				continue
			}
			parent[child] = n
			if child == to {
				return walkBack(parent, from, to), nil
			}
			queue = append(queue, child)
		}
	}
	return nil, notFound
}

// Solve returns the shortest path from Start to End.
func Solve(g *Graph) (Path, error) {
	return ShortestPath(g, Start, End)
}

func walkBack(parent map[Node]Node, from, to Node) Path {
	var p Path
	for n := to; n != from; n = parent[n] {
		p = append(p, n)
	}
	p = append(p, from)
	slices.Reverse(p)
	return p
}

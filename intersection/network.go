package intersection

import (
	"github.com/katalvlaran/citypatrol/grid"
)

// Build scans g once, classifies every road cell and builds the view of
// each intersection. The returned Network keeps a reference to g, which
// must not change afterwards.
func Build(g *grid.Grid) *Network {
	net := &Network{
		g:      g,
		lookup: make([]int, g.Size*g.Size),
	}
	for i := range net.lookup {
		net.lookup[i] = -1
	}

	// 1) Classify in row-major order; the order fixes intersection indices.
	var p grid.Point
	for p.Y = 0; p.Y < g.Size; p.Y++ {
		for p.X = 0; p.X < g.Size; p.X++ {
			if g.At(p).IsBlock() {
				continue
			}
			kind, ok := Classify(Flag(g, p))
			if !ok {
				continue
			}
			net.lookup[g.Index(p)] = len(net.Points)
			net.Points = append(net.Points, p)
			net.Kinds = append(net.Kinds, kind)
		}
	}

	// 2) Build views once all indices are known.
	net.Views = make([]View, len(net.Points))
	for i, q := range net.Points {
		net.Views[i] = net.ViewFrom(q)
	}

	return net
}

// Len returns the number of intersections.
func (n *Network) Len() int { return len(n.Points) }

// Grid returns the grid the network was built from.
func (n *Network) Grid() *grid.Grid { return n.g }

// Index returns the intersection index at p, or -1 if p is not an
// intersection (or lies outside the grid).
func (n *Network) Index(p grid.Point) int {
	if !n.g.InBounds(p) {
		return -1
	}

	return n.lookup[n.g.Index(p)]
}

// ViewFrom computes the view from any road cell p, intersection or not.
// The start cell's view is computed this way.
func (n *Network) ViewFrom(p grid.Point) View {
	return View{
		Horizontal: n.scan(p, n.scan(p, nil, grid.Right), grid.Left),
		Vertical:   n.scan(p, n.scan(p, nil, grid.Down), grid.Up),
	}
}

// scan walks from p in direction d until a block or the edge, appending
// every intersection met with the cost accumulated on entry.
func (n *Network) scan(p grid.Point, dst []Edge, d grid.Direction) []Edge {
	var cost int64
	for q := n.g.Step(p, d); n.g.IsRoad(q); q = n.g.Step(q, d) {
		cost += n.g.At(q).Cost()
		if i := n.lookup[n.g.Index(q)]; i >= 0 {
			dst = append(dst, Edge{To: i, Cost: cost})
		}
	}

	return dst
}

package mazemeta

import (
	"github.com/dshills/mazeforge/pkg/mazeforest"
	"github.com/dshills/mazeforge/pkg/mazerng"
)

// OpenGateways walks the meta spanning tree (metaEdges, produced by running
// mazeforest.Layout over m) and, for every border whose meta-edge is part of
// that tree (direction Forward or Backward, i.e. not Closed), picks one of
// its member grid-edges uniformly at random, records it as the border's
// gateway, and promotes that grid-edge's direction to Border in edges. A
// border whose gateway was already chosen is left untouched — the choice is
// cached, not re-rolled.
func OpenGateways(m *MetaGeometry, metaEdges []mazeforest.Edge, edges []mazeforest.Edge, rng *mazerng.Source) {
	for i := range m.borders {
		if i >= len(metaEdges) {
			break
		}
		if metaEdges[i].Direction != mazeforest.Forward && metaEdges[i].Direction != mazeforest.Backward {
			continue
		}
		border := &m.borders[i]
		if border.Gateway >= 0 {
			continue
		}
		choice := border.Edges[rng.Intn(len(border.Edges))]
		border.Gateway = choice
		edges[choice].Direction = mazeforest.Border
	}
}

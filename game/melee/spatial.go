package melee

import (
	"github.com/dhconnelly/rtreego"

	"github.com/gobots/gobots/common/utils/vector"
)

type bodyNode struct {
	index int
	rect  rtreego.Rect
}

func (node *bodyNode) Bounds() rtreego.Rect {
	return node.rect
}

func makeBoundingRect(center vector.Vector2, radius float64) (rtreego.Rect, error) {
	x, y := center.Get()
	return rtreego.NewRect(
		rtreego.Point{x - radius, y - radius},
		[]float64{radius * 2, radius * 2},
	)
}

func makeSegmentRect(from vector.Vector2, to vector.Vector2, inflate float64) (rtreego.Rect, error) {
	fromx, fromy := from.Get()
	tox, toy := to.Get()

	minx, maxx := fromx, tox
	if minx > maxx {
		minx, maxx = maxx, minx
	}

	miny, maxy := fromy, toy
	if miny > maxy {
		miny, maxy = maxy, miny
	}

	return rtreego.NewRect(
		rtreego.Point{minx - inflate, miny - inflate},
		[]float64{maxx - minx + inflate*2, maxy - miny + inflate*2},
	)
}

// indexBodies builds an rtree over the current bot positions; used as the
// broad phase for body/body and shot/body collision queries.
func (game *MeleeGame) indexBodies() *rtreego.Rtree {
	nodes := make([]rtreego.Spatial, 0, len(game.bots))

	for index := range game.bots {
		qr := game.bot(index)
		physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])

		rect, err := makeBoundingRect(physicalAspect.GetPosition(), physicalAspect.GetRadius())
		if err != nil {
			continue
		}

		nodes = append(nodes, &bodyNode{index: index, rect: rect})
	}

	return rtreego.NewTree(2, 8, 16, nodes...)
}

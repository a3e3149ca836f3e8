package sundial

import "math"

// classify derives the four-way visual state of every node purely from
// the selection chain: chain members are PARENT except the last, which
// is ACTIVE; direct children of the active node are CHILD; every other
// node is GRANDCHILD. Recomputed wholesale after each selection change
// so the invariants stay mechanically checkable.
func classify(root *Node, chain []*Node) {
	var markAll func(n *Node)
	markAll = func(n *Node) {
		n.state = StateGrandchild
		for _, c := range n.children {
			markAll(c)
		}
	}
	markAll(root)

	last := len(chain) - 1
	for i, n := range chain {
		if i == last {
			n.state = StateActive
		} else {
			n.state = StateParent
		}
	}
	for _, c := range chain[last].children {
		c.state = StateChild
	}
}

// projectionState is the snapshot of engine state the projector reads.
// The projector is a pure function of it.
type projectionState struct {
	chain      []*Node
	hovered    *Node
	dragged    *Node
	relMouse   Vec2
	mouseDist  float64
	mouseAngle float64
	dragLive   bool // press travel has exceeded the drag threshold
	cfg        Config
}

// project computes every node's screen transform, top-down. Chain
// members render at their stored absolute anchors; children of the
// active node sit on the child ring, scaled by angular proximity to
// the cursor; everything deeper follows the fixed grandchild rule
// relative to its parent's computed position.
func project(root *Node, ps projectionState) {
	active := ps.chain[len(ps.chain)-1]

	for _, n := range ps.chain {
		n.transform = Transform{X: n.Position.X, Y: n.Position.Y, Scale: 1}
	}

	for i, n := range ps.chain {
		var follower *Node
		if i+1 < len(ps.chain) {
			follower = ps.chain[i+1]
		}
		anchor := n.Position
		for _, c := range n.children {
			if c == follower {
				continue // placed by its own chain anchor
			}
			if n == active {
				projectChild(c, anchor, ps)
			} else {
				projectRing(c, anchor, ps.cfg)
			}
		}
	}
}

// projectChild places one child of the active node. Its base slot is
// on the child ring at its assigned angle; a live drag past the
// threshold overrides the slot with the raw relative mouse position.
func projectChild(c *Node, anchor Vec2, ps projectionState) {
	pos := anchor.Add(Direction(c.Angle-90, ps.cfg.ChildRadius))
	scale := 1.0
	if ps.mouseDist >= ps.cfg.CenterRadius {
		delta := angularDistance(c.Angle, ps.mouseAngle)
		scale += ps.cfg.ScaleBoost * math.Pow(1-delta/180, ps.cfg.ScaleExponent)
	}
	if c == ps.hovered {
		scale += ps.cfg.HoverScale
	}
	if c == ps.dragged && ps.dragLive {
		pos = anchor.Add(ps.relMouse)
	}
	c.transform = Transform{X: pos.X, Y: pos.Y, Scale: scale}

	for _, g := range c.children {
		projectRing(g, pos, ps.cfg)
	}
}

// projectRing places a grandchild-classified node at the fixed small
// radius from its parent's computed position, with no hover or drag
// effects, and recurses for anything deeper.
func projectRing(n *Node, parentPos Vec2, cfg Config) {
	pos := parentPos.Add(Direction(n.Angle-90, cfg.GrandchildRadius))
	n.transform = Transform{X: pos.X, Y: pos.Y, Scale: 1}
	for _, c := range n.children {
		projectRing(c, pos, cfg)
	}
}

// Package sundial is the interaction engine for radial ("pie")
// hierarchical menus.
//
// A sundial menu is a circular widget: a root item exposes a ring of
// child items, each of which may expose a further ring of its own.
// Navigation is driven by cursor angle and distance rather than list
// scrolling. The engine owns the hard part of that interaction — the
// angular layout of sibling wedges, hover resolution across the
// 0°/360° seam, the selection chain of drilled-into nodes, position
// continuity when the selection changes, and press-drag-release
// re-ordering gestures. It never renders anything itself.
//
// # Quick start
//
// Construct a [Menu] with a [View] adapter and show an item tree:
//
//	menu := sundial.New(view, sundial.DefaultConfig())
//	err := menu.Show(&sundial.Item{
//		Name: "root",
//		Children: []*sundial.Item{
//			{Name: "copy"}, {Name: "paste"}, {Name: "cut"},
//		},
//	}, sundial.Vec2{X: 500, Y: 500})
//
// Then forward raw pointer events from your UI surface:
//
//	menu.PointerMove(x, y)
//	menu.PointerDown(x, y)
//	menu.PointerUp()
//
// The engine calls back into the View with a [Transform] and a
// [NodeState] (plus hover/drag [StateFlags]) for every node after each
// event, and with Show/Hide when the menu appears or is dismissed.
// See examples/basic for a complete [Ebitengine] adapter.
//
// # Angle convention
//
// All angles are degrees with 0° pointing up and values increasing
// clockwise, normalized to [0, 360). A node's Angle is its direction
// from its parent's center; StartAngle/EndAngle bound the hit-test
// wedge it claims on that ring.
//
// # Threading
//
// The engine is single-threaded and synchronous: every pointer event
// runs to completion before the next, and all View callbacks happen
// inside the event that caused them.
//
// [Ebitengine]: https://ebitengine.org
package sundial

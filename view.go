package sundial

// View is the capability the engine is constructed with to reach its
// renderer. The engine calls it synchronously from inside pointer
// events; implementations must not call back into the Menu from these
// methods.
//
// The engine never owns rendering: building and tearing down the
// visual tree, applying transforms and state classes, and drawing
// icons are all the adapter's business.
type View interface {
	// Show is called once per Menu.Show after the node tree is built
	// and laid out, before the initial states and transforms arrive.
	Show(root *Node)

	// Hide instructs the adapter to tear down the visual tree.
	Hide()

	// SetTransform delivers a node's screen placement. Called for
	// every node on every redraw.
	SetTransform(n *Node, t Transform)

	// SetState delivers a node's visual classification and its
	// hover/drag markers. Called for every node after each selection
	// change and for the affected nodes when hover or drag move.
	SetState(n *Node, state NodeState, flags StateFlags)
}

// NullView discards all engine output. Useful for tests and for
// driving the engine headless.
type NullView struct{}

func (NullView) Show(*Node) {}

func (NullView) Hide() {}

func (NullView) SetTransform(*Node, Transform) {}

func (NullView) SetState(*Node, NodeState, StateFlags) {}

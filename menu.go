package sundial

// Menu is the selection state machine of a radial menu. It owns the
// node tree, the selection chain from the root to the currently
// drilled-into node, the hover and drag targets, and the live
// mouse-derived polar coordinates. All transitions run synchronously
// inside the three pointer entry points.
type Menu struct {
	view View
	cfg  Config

	root  *Node
	chain []*Node

	hovered *Node
	dragged *Node

	// Mouse state, recomputed on every pointer event. relMouse is the
	// cursor position relative to the active node's anchor; mouseDist
	// and mouseAngle are its polar form (menu convention).
	mouse      Vec2
	relMouse   Vec2
	mouseDist  float64
	mouseAngle float64

	pressPoint Vec2
	pressed    bool
}

// New creates a menu engine that reports to the given view. The view
// must not be nil; pass NullView{} to run headless.
func New(view View, cfg Config) *Menu {
	if view == nil {
		panic("sundial: nil view")
	}
	return &Menu{view: view, cfg: cfg}
}

// Show builds the node tree from the item description, assigns the
// angular layout, anchors the root at the given position, selects the
// root, and emits the initial full-tree classification and transforms.
// A menu already showing is hidden first. Returns a
// *ConfigurationError if the description is cyclic, too deep, or
// over the fan-out cap.
func (m *Menu) Show(item *Item, anchor Vec2) error {
	root, err := buildTree(item, m.cfg)
	if err != nil {
		return err
	}
	if m.root != nil {
		m.Hide()
	}
	assignAngles(root)
	root.Position = anchor

	m.root = root
	m.chain = append(m.chain[:0], root)
	m.mouse = anchor
	m.relMouse = Vec2{}
	m.mouseDist = 0
	m.mouseAngle = 0

	m.view.Show(root)
	m.applyStates()
	m.redraw()
	return nil
}

// Hide tears down the visual tree and resets all transient state.
// No-op if nothing is showing.
func (m *Menu) Hide() {
	if m.root == nil {
		return
	}
	m.view.Hide()
	m.root = nil
	m.chain = m.chain[:0]
	m.hovered = nil
	m.dragged = nil
	m.relMouse = Vec2{}
	m.mouseDist = 0
	m.mouseAngle = 0
	m.pressed = false
}

// Showing reports whether a menu is currently shown.
func (m *Menu) Showing() bool {
	return m.root != nil
}

// Root returns the root node of the shown menu, or nil.
func (m *Menu) Root() *Node {
	return m.root
}

// Active returns the last element of the selection chain, or nil when
// nothing is showing.
func (m *Menu) Active() *Node {
	if len(m.chain) == 0 {
		return nil
	}
	return m.chain[len(m.chain)-1]
}

// Chain returns the selection chain from the root to the active node.
// The returned slice MUST NOT be mutated by the caller.
func (m *Menu) Chain() []*Node {
	return m.chain
}

// Hovered returns the node the cursor currently resolves to, or nil.
func (m *Menu) Hovered() *Node {
	return m.hovered
}

// Dragged returns the node held by an in-progress drag, or nil.
func (m *Menu) Dragged() *Node {
	return m.dragged
}

// --- Pointer entry points ---

// PointerMove feeds an absolute cursor position into the engine.
func (m *Menu) PointerMove(x, y float64) {
	if m.root == nil {
		return
	}
	m.updateMouse(Vec2{X: x, Y: y})
	m.redraw()
}

// PointerDown records a press at the given absolute position. If a
// node is already hovered it starts being dragged immediately; whether
// the gesture counts as a drag or a click is decided by the travel
// from this point against the drag threshold.
func (m *Menu) PointerDown(x, y float64) {
	if m.root == nil {
		return
	}
	m.updateMouse(Vec2{X: x, Y: y})
	m.pressPoint = m.mouse
	m.pressed = true
	if m.hovered != nil {
		m.dragNode(m.hovered)
	}
	m.redraw()
}

// PointerUp releases the press. A dragged node becomes the selection —
// drilling in or out depending on whether it is a child or the parent
// of the active node — and the drag clears.
func (m *Menu) PointerUp() {
	if m.root == nil {
		return
	}
	m.pressed = false
	if m.dragged != nil {
		target := m.dragged
		m.selectNode(target)
		m.dragNode(nil)
	}
	m.redraw()
}

// --- Internal transitions ---

// updateMouse recomputes the cursor position relative to the active
// anchor and its polar form.
func (m *Menu) updateMouse(abs Vec2) {
	m.mouse = abs
	m.relMouse = abs.Sub(m.Active().Position)
	m.mouseDist = m.relMouse.Length()
	m.mouseAngle = PolarAngle(m.relMouse)
}

// computeHoveredNode maps the live polar coordinates to the node the
// cursor resolves to: the parent inside the center dead zone, the
// child whose wedge contains the angle outside it, and the parent
// again in the uncovered arc reserved toward the parent direction.
// Returns nil only when the active node is the root and no child
// matches. Pure; re-evaluated on every mouse move and after every
// selection change.
func computeHoveredNode(dist, angle float64, active *Node, chain []*Node, centerRadius float64) *Node {
	var parent *Node
	if len(chain) > 1 {
		parent = chain[len(chain)-2]
	}
	if dist < centerRadius {
		return parent
	}
	for _, c := range active.children {
		if inWedge(c.StartAngle, c.EndAngle, angle) {
			return c
		}
	}
	return parent
}

// selectNode makes node the active end of the selection chain,
// repositioning the tree so the node about to become active lands
// exactly under the cursor, then resetting the relative mouse state
// and reclassifying every node. No-op if node is already active.
func (m *Menu) selectNode(node *Node) {
	active := m.Active()
	if node == active {
		return
	}
	selectedParent := len(m.chain) > 1 && node == m.chain[len(m.chain)-2]

	// The invariant: the new active node must end up rendered at the
	// current absolute mouse position, wherever it sits in the tree.
	var offset Vec2
	switch {
	case node == m.root:
		offset = m.mouse.Sub(m.root.Position)
	case selectedParent:
		offset = m.mouse.Sub(node.Position)
	default:
		// Where the child would sit on its ring at the current mouse
		// distance, relative to the active anchor. The −90 corrects
		// for the 0°-is-up convention.
		slot := Direction(node.Angle-90, m.mouseDist)
		offset = m.relMouse.Sub(slot)
	}

	// Shift every anchored node by the same offset: the tree moves
	// rigidly, so already-positioned ancestors stay consistent.
	for _, c := range m.chain {
		c.Position = c.Position.Add(offset)
	}

	if selectedParent {
		m.chain = m.chain[:len(m.chain)-1]
	} else {
		node.Position = m.mouse
		m.chain = append(m.chain, node)
	}

	// The cursor is now defined to be exactly on the new active node.
	m.relMouse = Vec2{}
	m.mouseDist = 0
	m.mouseAngle = 0

	m.applyStates()
}

// hoverNode moves the hover marker, clearing the previous target's
// flag before setting the new one. At most one node is hovered.
func (m *Menu) hoverNode(node *Node) {
	if node == m.hovered {
		return
	}
	if m.hovered != nil {
		m.hovered.flags &^= FlagHovered
		m.view.SetState(m.hovered, m.hovered.state, m.hovered.flags)
	}
	m.hovered = node
	if node != nil {
		node.flags |= FlagHovered
		m.view.SetState(node, node.state, node.flags)
	}
}

// dragNode moves the drag marker with the same discipline as
// hoverNode. At most one node is dragged.
func (m *Menu) dragNode(node *Node) {
	if node == m.dragged {
		return
	}
	if m.dragged != nil {
		m.dragged.flags &^= FlagDragged
		m.view.SetState(m.dragged, m.dragged.state, m.dragged.flags)
	}
	m.dragged = node
	if node != nil {
		node.flags |= FlagDragged
		m.view.SetState(node, node.state, node.flags)
	}
}

// redraw couples hover, drag and drop after every pointer event:
// recompute hover, let an active drag follow the hover target, cancel
// the drag when the cursor re-enters the center dead zone, begin a
// drag for a held press over a hover target, then reproject every
// node's transform.
func (m *Menu) redraw() {
	target := computeHoveredNode(m.mouseDist, m.mouseAngle, m.Active(), m.chain, m.cfg.CenterRadius)
	m.hoverNode(target)

	if m.dragged != nil && target != m.dragged {
		m.dragNode(target)
	}
	if m.dragged != nil && m.dragLive() && m.mouseDist < m.cfg.CenterRadius {
		// Dragging back to the center aborts the reorder. A press that
		// never exceeded the threshold is still a click, so the target
		// set on pointer-down survives for selection on release.
		m.dragNode(nil)
	}
	if m.pressed && m.dragged == nil && m.mouseDist >= m.cfg.CenterRadius && m.hovered != nil {
		m.dragNode(m.hovered)
	}

	m.applyTransforms()
}

// applyStates recomputes the full-tree classification from the
// selection chain and reports every node's state to the view.
func (m *Menu) applyStates() {
	classify(m.root, m.chain)
	m.eachNode(m.root, func(n *Node) {
		m.view.SetState(n, n.state, n.flags)
	})
}

// applyTransforms reprojects the whole tree and reports every node's
// transform to the view.
func (m *Menu) applyTransforms() {
	project(m.root, m.projection())
	m.eachNode(m.root, func(n *Node) {
		m.view.SetTransform(n, n.transform)
	})
}

// dragLive reports whether the current press has travelled far enough
// from its origin to count as a drag rather than a click.
func (m *Menu) dragLive() bool {
	return m.pressed && m.mouse.Distance(m.pressPoint) > m.cfg.DragThreshold
}

// projection snapshots the state the projector needs.
func (m *Menu) projection() projectionState {
	return projectionState{
		chain:      m.chain,
		hovered:    m.hovered,
		dragged:    m.dragged,
		relMouse:   m.relMouse,
		mouseDist:  m.mouseDist,
		mouseAngle: m.mouseAngle,
		dragLive:   m.dragLive(),
		cfg:        m.cfg,
	}
}

func (m *Menu) eachNode(n *Node, fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		m.eachNode(c, fn)
	}
}

package sundial

import (
	"fmt"
	"sort"
)

// Item describes one menu entry. Name and Icon are opaque display data
// passed through to the View untouched; Children order is display
// order. The same description can be shown any number of times — Show
// copies it into its own node tree.
type Item struct {
	Name     string
	Icon     string
	Children []*Item
}

// ConfigurationError reports a menu description rejected by Show:
// a cyclic Children reference, a nil item, or a tree exceeding the
// configured depth or fan-out.
type ConfigurationError struct {
	Path   string // slash-joined item names from the root to the fault
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("sundial: invalid menu description at %q: %s", e.Path, e.Reason)
}

// Node is one entry of a shown menu. The tree is built once per Show
// and is structurally immutable afterward; only the transient anchor
// Position and the per-redraw visual outputs change.
type Node struct {
	Name string
	Icon string

	Parent   *Node
	children []*Node

	// Angular layout on the parent's ring, assigned once after the
	// tree is built. Angle is the node's direction from its parent's
	// center (menu convention); StartAngle/EndAngle bound its hit-test
	// wedge (StartAngle, EndAngle], stored unwrapped so StartAngle may
	// be negative and EndAngle may exceed 360 across the seam. All are
	// zero for the root.
	Angle      float64
	StartAngle float64
	EndAngle   float64

	// Position is the absolute screen anchor. Meaningful for selection
	// chain members; other nodes are placed by the projector relative
	// to their parent.
	Position Vec2

	// Visual outputs, recomputed by the engine.
	state     NodeState
	flags     StateFlags
	transform Transform
}

// Children returns the child list. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// IsRoot reports whether this node has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// State returns the node's current four-way visual classification.
func (n *Node) State() NodeState {
	return n.state
}

// Flags returns the node's current hover/drag markers.
func (n *Node) Flags() StateFlags {
	return n.flags
}

// Transform returns the screen transform computed on the last redraw.
func (n *Node) Transform() Transform {
	return n.transform
}

// --- Tree construction ---

// buildTree copies an item description into a node tree, validating it
// against the configured depth and fan-out limits and rejecting cyclic
// Children references.
func buildTree(item *Item, cfg Config) (*Node, error) {
	if item == nil {
		return nil, &ConfigurationError{Path: "", Reason: "nil root item"}
	}
	onPath := make(map[*Item]bool)
	return buildNode(item, nil, 0, item.Name, cfg, onPath)
}

func buildNode(item *Item, parent *Node, depth int, path string, cfg Config, onPath map[*Item]bool) (*Node, error) {
	if onPath[item] {
		return nil, &ConfigurationError{Path: path, Reason: "cyclic children reference"}
	}
	if depth > cfg.MaxDepth {
		return nil, &ConfigurationError{Path: path, Reason: fmt.Sprintf("tree deeper than %d levels", cfg.MaxDepth)}
	}
	if len(item.Children) > cfg.MaxChildren {
		return nil, &ConfigurationError{Path: path, Reason: fmt.Sprintf("%d children exceeds the per-level cap of %d", len(item.Children), cfg.MaxChildren)}
	}

	onPath[item] = true
	defer delete(onPath, item)

	n := &Node{Name: item.Name, Icon: item.Icon, Parent: parent}
	if len(item.Children) > 0 {
		n.children = make([]*Node, 0, len(item.Children))
	}
	for _, ci := range item.Children {
		if ci == nil {
			return nil, &ConfigurationError{Path: path, Reason: "nil child item"}
		}
		child, err := buildNode(ci, n, depth+1, path+"/"+ci.Name, cfg, onPath)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}

// --- Angular layout ---

// assignAngles recursively computes every child's Angle and hit-test
// wedge. Siblings are distributed evenly at 360/N separation. On the
// root ring the first child points up and the ring tiles the full
// circle. On deeper rings the distribution is rotated so the gap
// between two consecutive children straddles the direction back to the
// parent symmetrically, and the wedge partition leaves an arc of 180/N
// degrees around that direction uncovered — hover there resolves to
// the parent, never to a child.
func assignAngles(n *Node) {
	count := len(n.children)
	if count == 0 {
		return
	}

	sep := 360.0 / float64(count)
	if n.IsRoot() {
		for i, c := range n.children {
			c.Angle = normalizeAngle(float64(i) * sep)
		}
		assignWedges(n, false, 0)
	} else {
		reserved := normalizeAngle(n.Angle + 180)
		for i, c := range n.children {
			c.Angle = normalizeAngle(reserved + sep/2 + float64(i)*sep)
		}
		assignWedges(n, true, reserved)
	}

	for _, c := range n.children {
		assignAngles(c)
	}
}

// assignWedges derives each child's wedge bounds as the angular
// midpoint toward each circularly adjacent sibling. With a reserved
// parent direction, the two boundaries adjacent to it stop 90/N
// degrees short instead of meeting at the midpoint, leaving the
// parent-fallback arc open. A single child keeps the full circle.
func assignWedges(n *Node, hasReserved bool, reserved float64) {
	count := len(n.children)

	sorted := make([]*Node, count)
	copy(sorted, n.children)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Angle < sorted[j].Angle })

	if count == 1 {
		c := sorted[0]
		c.StartAngle = c.Angle - 180
		c.EndAngle = c.Angle + 180
		return
	}

	halfGap := 90.0 / float64(count)
	for i, c := range sorted {
		prev := sorted[(i+count-1)%count].Angle
		next := sorted[(i+1)%count].Angle
		// Unwrap neighbors so prev < c.Angle < next.
		if prev >= c.Angle {
			prev -= 360
		}
		if next <= c.Angle {
			next += 360
		}

		c.StartAngle = (prev + c.Angle) / 2
		c.EndAngle = (c.Angle + next) / 2

		if hasReserved {
			if arcContains(prev, c.Angle, reserved) {
				c.StartAngle = unwrapInto(prev, c.Angle, reserved) + halfGap
			}
			if arcContains(c.Angle, next, reserved) {
				c.EndAngle = unwrapInto(c.Angle, next, reserved) - halfGap
			}
		}
	}
}

package sundial

// NodeState is the four-way visual classification of a node, derived
// from its position relative to the selection chain.
type NodeState uint8

const (
	StateGrandchild NodeState = iota // two or more rings away from the active node
	StateChild                       // direct child of the active node
	StateActive                      // last element of the selection chain
	StateParent                      // chain element before the active node
)

// String returns the lower-case name of the state, matching the CSS
// class a renderer would apply.
func (s NodeState) String() string {
	switch s {
	case StateChild:
		return "child"
	case StateActive:
		return "active"
	case StateParent:
		return "parent"
	default:
		return "grandchild"
	}
}

// StateFlags is a bitmask of transient per-node markers, orthogonal to
// NodeState. At most one node carries FlagHovered and at most one
// FlagDragged at any time.
type StateFlags uint8

const (
	FlagHovered StateFlags = 1 << iota // node the cursor currently resolves to
	FlagDragged                        // node held by an in-progress drag gesture
)

// Transform is the screen-space placement of a node: an absolute
// translation and a uniform scale. All translations are relative to
// the same fixed screen origin, never to the node's parent.
type Transform struct {
	X, Y  float64
	Scale float64
}

// Default geometry constants used by DefaultConfig.
const (
	defaultCenterRadius     = 45.0  // dead zone around the active anchor
	defaultChildRadius      = 120.0 // ring radius for children of the active node
	defaultGrandchildRadius = 32.0  // ring radius for every deeper level
	defaultDragThreshold    = 5.0   // pixels of travel before a press becomes a drag
	defaultMaxDepth         = 8
	defaultMaxChildren      = 24
	defaultScaleBoost       = 0.6 // k in 1 + k·(1 − Δ/180)^p
	defaultScaleExponent    = 2.0 // p in 1 + k·(1 − Δ/180)^p
	defaultHoverScale       = 0.2 // additive scale bonus for the hovered child
)

// Config fixes the engine's geometry and gesture constants. All values
// are set at construction; the engine never reconfigures at runtime.
type Config struct {
	// CenterRadius is the radius of the dead zone around the active
	// node's anchor. Inside it, hover resolves to the parent.
	CenterRadius float64

	// ChildRadius is the distance from the active anchor at which its
	// children sit on their ring.
	ChildRadius float64

	// GrandchildRadius is the ring distance used for every level
	// beyond the children of the active node.
	GrandchildRadius float64

	// DragThreshold is the cursor displacement from the press point
	// required before a press is treated as a drag rather than a click.
	DragThreshold float64

	// MaxDepth and MaxChildren bound the item tree accepted by Show.
	// Exceeding either is a configuration error.
	MaxDepth    int
	MaxChildren int

	// ScaleBoost and ScaleExponent shape the continuous scale falloff
	// applied to children by angular proximity to the cursor:
	// scale = 1 + ScaleBoost·(1 − Δ/180)^ScaleExponent.
	ScaleBoost    float64
	ScaleExponent float64

	// HoverScale is added to the hovered child's scale on top of the
	// falloff.
	HoverScale float64
}

// DefaultConfig returns the standard menu geometry.
func DefaultConfig() Config {
	return Config{
		CenterRadius:     defaultCenterRadius,
		ChildRadius:      defaultChildRadius,
		GrandchildRadius: defaultGrandchildRadius,
		DragThreshold:    defaultDragThreshold,
		MaxDepth:         defaultMaxDepth,
		MaxChildren:      defaultMaxChildren,
		ScaleBoost:       defaultScaleBoost,
		ScaleExponent:    defaultScaleExponent,
		HoverScale:       defaultHoverScale,
	}
}

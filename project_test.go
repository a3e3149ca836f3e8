package sundial

import "testing"

// drilledMenu returns the scenario menu drilled into c2, whose anchor
// is (620, 500).
func drilledMenu(t *testing.T) *Menu {
	t.Helper()
	menu, _ := showScenario(t)
	drillIn(t, menu, 620, 500)
	return menu
}

// --- Classification ---

func TestClassificationAtRoot(t *testing.T) {
	menu, _ := showScenario(t)
	root := menu.Root()
	if root.State() != StateActive {
		t.Errorf("root state = %v, want active", root.State())
	}
	for _, c := range root.Children() {
		if c.State() != StateChild {
			t.Errorf("%q state = %v, want child", c.Name, c.State())
		}
		for _, g := range c.Children() {
			if g.State() != StateGrandchild {
				t.Errorf("%q state = %v, want grandchild", g.Name, g.State())
			}
		}
	}
}

func TestClassificationDrilled(t *testing.T) {
	menu := drilledMenu(t)
	root := menu.Root()
	active := menu.Active()

	if root.State() != StateParent {
		t.Errorf("root state = %v, want parent", root.State())
	}
	if active.State() != StateActive {
		t.Errorf("active state = %v, want active", active.State())
	}
	for _, c := range active.Children() {
		if c.State() != StateChild {
			t.Errorf("%q state = %v, want child", c.Name, c.State())
		}
	}
	// Siblings of the active node are children of a PARENT node:
	// grandchildren now.
	for _, c := range root.Children() {
		if c == active {
			continue
		}
		if c.State() != StateGrandchild {
			t.Errorf("%q state = %v, want grandchild", c.Name, c.State())
		}
	}
}

func TestClassificationRestoredOnDrillOut(t *testing.T) {
	menu := drilledMenu(t)
	menu.PointerMove(620, 500)
	menu.PointerDown(620, 500)
	menu.PointerUp()

	if menu.Root().State() != StateActive {
		t.Errorf("root state = %v after drill out, want active", menu.Root().State())
	}
	for _, c := range menu.Root().Children() {
		if c.State() != StateChild {
			t.Errorf("%q state = %v after drill out, want child", c.Name, c.State())
		}
	}
}

// --- Transform projection ---

func TestChildSlotPositions(t *testing.T) {
	menu, _ := showScenario(t)
	anchor := menu.Root().Position
	for _, c := range menu.Root().Children() {
		want := anchor.Add(Direction(c.Angle-90, menu.cfg.ChildRadius))
		got := c.Transform()
		assertNear(t, c.Name+" x", got.X, want.X)
		assertNear(t, c.Name+" y", got.Y, want.Y)
	}
}

func TestGrandchildFixedOffset(t *testing.T) {
	menu, _ := showScenario(t)
	c0 := menu.Root().ChildAt(0)
	base := Vec2{X: c0.Transform().X, Y: c0.Transform().Y}
	for _, g := range c0.Children() {
		want := base.Add(Direction(g.Angle-90, menu.cfg.GrandchildRadius))
		got := g.Transform()
		assertNear(t, g.Name+" x", got.X, want.X)
		assertNear(t, g.Name+" y", got.Y, want.Y)
		assertNear(t, g.Name+" scale", got.Scale, 1)
	}
}

func TestParentRenderedAtStoredPosition(t *testing.T) {
	menu := drilledMenu(t)
	root := menu.Root()
	got := root.Transform()
	assertNear(t, "parent x", got.X, root.Position.X)
	assertNear(t, "parent y", got.Y, root.Position.Y)
	assertNear(t, "parent scale", got.Scale, 1)
}

func TestScaleFalloffFavorsCursorDirection(t *testing.T) {
	menu, _ := showScenario(t)
	menu.PointerMove(620, 500) // angle 90

	c2 := menu.Root().ChildAt(2) // angle 90: closest
	c3 := menu.Root().ChildAt(3) // angle 135
	c6 := menu.Root().ChildAt(6) // angle 270: opposite

	if !(c2.Transform().Scale > c3.Transform().Scale) {
		t.Errorf("closest child scale %v not above neighbor %v", c2.Transform().Scale, c3.Transform().Scale)
	}
	if !(c3.Transform().Scale > c6.Transform().Scale) {
		t.Errorf("neighbor scale %v not above opposite %v", c3.Transform().Scale, c6.Transform().Scale)
	}
	// At Δ = 180 the falloff vanishes entirely.
	assertNear(t, "opposite child scale", c6.Transform().Scale, 1)
}

func TestHoverScaleBonus(t *testing.T) {
	menu, _ := showScenario(t)
	menu.PointerMove(620, 500)
	c2 := menu.Root().ChildAt(2) // hovered, Δ = 0

	want := 1 + menu.cfg.ScaleBoost + menu.cfg.HoverScale
	assertNear(t, "hovered child scale", c2.Transform().Scale, want)
}

func TestScaleFlatInsideDeadZone(t *testing.T) {
	// With the cursor in the center there is no meaningful mouse angle
	// to favor: all children render at unit scale.
	menu, _ := showScenario(t)
	menu.PointerMove(502, 498)
	for _, c := range menu.Root().Children() {
		assertNear(t, c.Name+" scale", c.Transform().Scale, 1)
	}
}

func TestDeepRingsProjectRecursively(t *testing.T) {
	// Great-grandchildren keep the fixed-radius rule relative to their
	// own parent's computed position.
	item := flatItem(2)
	item.Children[0].Children = []*Item{
		{Name: "g", Children: []*Item{{Name: "gg"}}},
	}
	view := newRecordingView()
	menu := New(view, DefaultConfig())
	if err := menu.Show(item, Vec2{X: 300, Y: 300}); err != nil {
		t.Fatalf("Show: %v", err)
	}

	g := menu.Root().ChildAt(0).ChildAt(0)
	gg := g.ChildAt(0)
	base := Vec2{X: g.Transform().X, Y: g.Transform().Y}
	want := base.Add(Direction(gg.Angle-90, menu.cfg.GrandchildRadius))
	got := gg.Transform()
	assertNear(t, "great-grandchild x", got.X, want.X)
	assertNear(t, "great-grandchild y", got.Y, want.Y)
	if gg.State() != StateGrandchild {
		t.Errorf("great-grandchild state = %v, want grandchild", gg.State())
	}
	if _, ok := view.transforms[gg]; !ok {
		t.Error("deep nodes must receive transforms on every redraw")
	}
}

package sundial

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create
// one via the convenience constructors (TweenVec, TweenTransform,
// TweenFloat) and call Update(dt) each frame. Adapters use it to ease
// the transforms the engine emits — menu open scale-in, snap-back
// after a cancelled drag — without the engine knowing about time.
//
// There is no global animation manager — callers call Update
// themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the eased values
// to the target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenVec creates a TweenGroup that animates a Vec2 to the given
// target over the specified duration using the easing function.
func TweenVec(v *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(v.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Y), float32(to.Y), duration, fn)
	g.fields[0] = &v.X
	g.fields[1] = &v.Y
	return g
}

// TweenTransform creates a TweenGroup that animates all three
// components of a Transform to the target over the specified duration.
func TweenTransform(t *Transform, to Transform, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3}
	g.tweens[0] = gween.New(float32(t.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(t.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(t.Scale), float32(to.Scale), duration, fn)
	g.fields[0] = &t.X
	g.fields[1] = &t.Y
	g.fields[2] = &t.Scale
	return g
}

// TweenFloat creates a TweenGroup that animates a single float64 to
// the target value over the specified duration.
func TweenFloat(f *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*f), float32(to), duration, fn)
	g.fields[0] = f
	return g
}

package catwalk

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenValue, TweenVec2) and call Update(dt)
// each frame; values are written through the bound pointers.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the bound
// fields. Once every tween finishes, Done is set and further calls no-op.
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

// TweenValue creates a TweenGroup that animates a single field to the target
// value over the specified duration using the easing function.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenVec2 creates a TweenGroup that animates both components of a vector
// to the target over the specified duration using the easing function.
func TweenVec2(v *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(v.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Y), float32(to.Y), duration, fn)
	g.fields[0] = &v.X
	g.fields[1] = &v.Y
	return g
}

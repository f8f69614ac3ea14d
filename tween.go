package stage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animatable is an actor property bag a Tween can write to. *Label and any
// type embedding Base satisfy it.
type Animatable interface {
	Prop(name string) any
	Set(name string, value any)
}

// Tween animates one numeric property from its current value to a target.
// Call Update(dt) each frame, or register it with Stage.Animate.
type Tween struct {
	tween  *gween.Tween
	target Animatable
	prop   string
	Done   bool
}

// NewTween starts a tween of target's prop toward to over duration seconds.
// If the property is missing or not numeric the tween is already Done and
// never writes.
func NewTween(target Animatable, prop string, to float64, duration float32, fn ease.TweenFunc) *Tween {
	from, ok := toFloat(target.Prop(prop))
	if !ok {
		return &Tween{target: target, prop: prop, Done: true}
	}
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{
		tween:  gween.New(float32(from), float32(to), duration, fn),
		target: target,
		prop:   prop,
	}
}

// Property returns the animated property name.
func (t *Tween) Property() string {
	return t.prop
}

// Update advances the tween by dt seconds and writes the value as a float64.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.target.Set(t.prop, float64(val))
	t.Done = finished
}

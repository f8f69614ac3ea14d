package stage

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Stage owns an ordered list of actors and the tweens animating them. It is
// the traversal that positions each actor and isolates its surface state from
// its siblings.
type Stage struct {
	actors []Actor
	tweens []*Tween
	debug  bool

	// ScreenshotDir is where Screenshot writes PNG files. Defaults to
	// "screenshots".
	ScreenshotDir   string
	screenshotQueue []string
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{ScreenshotDir: "screenshots"}
}

// Add appends a to the draw order. Adding an actor that is already on the
// stage moves it to the end. Panics if a is nil.
func (s *Stage) Add(a Actor) {
	if a == nil {
		panic("stage: cannot add nil actor")
	}
	s.remove(a)
	s.actors = append(s.actors, a)
}

// Remove detaches a from the stage and reports whether it was present.
func (s *Stage) Remove(a Actor) bool {
	return s.remove(a)
}

func (s *Stage) remove(a Actor) bool {
	for i, c := range s.actors {
		if c == a {
			copy(s.actors[i:], s.actors[i+1:])
			s.actors[len(s.actors)-1] = nil
			s.actors = s.actors[:len(s.actors)-1]
			return true
		}
	}
	return false
}

// Actors returns the draw order. The returned slice MUST NOT be mutated by
// the caller.
func (s *Stage) Actors() []Actor {
	return s.actors
}

// Len returns the number of actors.
func (s *Stage) Len() int {
	return len(s.actors)
}

// Draw renders every visible actor in insertion order. Each actor is drawn
// between Save and Restore with its local transform applied, so style state
// set by one actor never leaks into the next.
func (s *Stage) Draw(surface Surface) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		stats.actorCount = len(s.actors)
	}

	for _, a := range s.actors {
		if !Visible(a) {
			stats.hidden++
			continue
		}
		m := LocalTransform(a)
		surface.Save()
		surface.Transform(m[0], m[1], m[2], m[3], m[4], m[5])
		a.Draw(surface)
		surface.Restore()
		stats.drawn++
	}

	if s.debug {
		stats.drawTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// Animate creates a tween for target's numeric property and registers it so
// that Update advances it.
func (s *Stage) Animate(target Animatable, prop string, to float64, duration float32, fn ease.TweenFunc) *Tween {
	t := NewTween(target, prop, to, duration, fn)
	s.tweens = append(s.tweens, t)
	return t
}

// Tweens returns the running tweens. The returned slice MUST NOT be mutated.
func (s *Stage) Tweens() []*Tween {
	return s.tweens
}

// Update advances all registered tweens by dt seconds and drops the ones
// that finished.
func (s *Stage) Update(dt float32) {
	live := s.tweens[:0]
	for _, t := range s.tweens {
		t.Update(dt)
		if !t.Done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame draw
// stats and ignored surface assignments are logged to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

package stage

import "math"

// Property names understood by every actor.
const (
	PropX           = "x"
	PropY           = "y"
	PropRotation    = "rotation"
	PropScaleX      = "scaleX"
	PropScaleY      = "scaleY"
	PropFillStyle   = "fillStyle"
	PropStrokeStyle = "strokeStyle"
	PropVisible     = "visible"
)

// DefaultFillStyle is the paint used when no fillStyle is configured. It
// matches the initial fill style of a canvas 2D context.
const DefaultFillStyle = "#000000"

// Actor is anything the Stage can draw. Position, rotation, scale and
// visibility are read through Prop before Draw is called, so Draw renders in
// the actor's local coordinate space.
type Actor interface {
	Prop(name string) any
	Draw(s Surface)
}

// ActorConfig holds the options shared by every actor. Zero values select the
// defaults: scale 1, visible, black fill and stroke.
type ActorConfig struct {
	Name        string
	X, Y        float64
	Rotation    float64 // radians
	ScaleX      float64
	ScaleY      float64
	FillStyle   string
	StrokeStyle string
	Hidden      bool

	// Props carries extra named properties. They are stored as given; typed
	// fields above win when both name the same property.
	Props map[string]any
}

// Base carries the identity and property bag shared by all actor variants.
// Actor types embed it and add their own Draw.
type Base struct {
	*Properties
	ID   uint32
	Name string
}

// actorIDCounter is a plain counter (no atomic, stage is single-threaded).
var actorIDCounter uint32

func nextActorID() uint32 {
	actorIDCounter++
	return actorIDCounter
}

// actorDefaults returns the property defaults common to every actor.
func actorDefaults() map[string]any {
	return map[string]any{
		PropX:           0.0,
		PropY:           0.0,
		PropRotation:    0.0,
		PropScaleX:      1.0,
		PropScaleY:      1.0,
		PropFillStyle:   DefaultFillStyle,
		PropStrokeStyle: DefaultFillStyle,
		PropVisible:     true,
	}
}

// overrides returns only the properties the config actually sets.
func (c ActorConfig) overrides() map[string]any {
	o := make(map[string]any, 8)
	if c.X != 0 {
		o[PropX] = c.X
	}
	if c.Y != 0 {
		o[PropY] = c.Y
	}
	if c.Rotation != 0 {
		o[PropRotation] = c.Rotation
	}
	if c.ScaleX != 0 {
		o[PropScaleX] = c.ScaleX
	}
	if c.ScaleY != 0 {
		o[PropScaleY] = c.ScaleY
	}
	if c.FillStyle != "" {
		o[PropFillStyle] = c.FillStyle
	}
	if c.StrokeStyle != "" {
		o[PropStrokeStyle] = c.StrokeStyle
	}
	if c.Hidden {
		o[PropVisible] = false
	}
	return o
}

// newBase resolves an actor's properties: variant defaults, then actor
// defaults it did not set, then cfg.Props, then cfg's typed fields.
func newBase(cfg ActorConfig, variantDefaults map[string]any) Base {
	defaults := actorDefaults()
	for k, v := range variantDefaults {
		defaults[k] = v
	}
	return Base{
		Properties: newProperties(defaults, cfg.Props, cfg.overrides()),
		ID:         nextActorID(),
		Name:       cfg.Name,
	}
}

// Visible reports whether the actor's visible property is set. Actors that
// never set it are treated as visible.
func Visible(a Actor) bool {
	v := a.Prop(PropVisible)
	if v == nil {
		return true
	}
	b, ok := v.(bool)
	return !ok || b
}

// LocalTransform computes the actor's local affine matrix
// [a, b, c, d, tx, ty] as Translate(x, y) * Rotate(rotation) * Scale(sx, sy).
// Missing scale properties count as 1.
func LocalTransform(a Actor) [6]float64 {
	x, _ := toFloat(a.Prop(PropX))
	y, _ := toFloat(a.Prop(PropY))
	rot, _ := toFloat(a.Prop(PropRotation))
	sx, ok := toFloat(a.Prop(PropScaleX))
	if !ok {
		sx = 1
	}
	sy, ok := toFloat(a.Prop(PropScaleY))
	if !ok {
		sy = 1
	}

	sin, cos := math.Sincos(rot)
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, x, y}
}

package stage

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Initial ImageSurface state, matching a fresh canvas 2D context.
const (
	initialFont      = "10px sans-serif"
	initialFillStyle = DefaultFillStyle
)

// surfaceState is the portion of ImageSurface state covered by Save/Restore.
type surfaceState struct {
	font      string
	fontSpec  FontSpec
	fillStyle string
	fill      color.Color
	alignName string
	align     TextAlign
	matrix    [6]float64
}

// ImageSurface is a Surface that draws into an *ebiten.Image using
// Ebitengine's text/v2 renderer and the Go font family.
//
// FillText treats y as the alphabetic baseline. Text direction is always
// left-to-right, so start behaves as left and end as right.
type ImageSurface struct {
	target *ebiten.Image
	fonts  *FontCache
	state  surfaceState
	stack  []surfaceState
}

// NewImageSurface returns a surface drawing into target. A nil fonts uses a
// cache shared by all surfaces.
func NewImageSurface(target *ebiten.Image, fonts *FontCache) *ImageSurface {
	if fonts == nil {
		fonts = defaultFontCache
	}
	s := &ImageSurface{target: target, fonts: fonts}
	s.Reset()
	return s
}

// Reset restores the initial state and drops saved states. The target is
// kept.
func (s *ImageSurface) Reset() {
	spec, _ := ParseFont(initialFont)
	s.state = surfaceState{
		font:      initialFont,
		fontSpec:  spec,
		fillStyle: initialFillStyle,
		fill:      color.Black,
		alignName: DefaultTextAlign,
		align:     TextAlignStart,
		matrix:    identityTransform,
	}
	s.stack = s.stack[:0]
}

// SetTarget changes the destination image. State is kept.
func (s *ImageSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Target returns the destination image.
func (s *ImageSurface) Target() *ebiten.Image {
	return s.target
}

// SetFont parses a CSS font shorthand. Unparseable values are ignored.
func (s *ImageSurface) SetFont(font string) {
	spec, err := ParseFont(font)
	if err != nil {
		if globalDebug {
			debugf("ignoring font: %v", err)
		}
		return
	}
	s.state.font = font
	s.state.fontSpec = spec
}

// SetFillStyle parses a CSS color. Unparseable values are ignored.
func (s *ImageSurface) SetFillStyle(style string) {
	c, err := ParseColor(style)
	if err != nil {
		if globalDebug {
			debugf("ignoring fillStyle: %v", err)
		}
		return
	}
	s.state.fillStyle = style
	s.state.fill = c
}

// SetTextAlign sets the alignment. Unknown keywords are ignored.
func (s *ImageSurface) SetTextAlign(align string) {
	a, ok := ParseTextAlign(align)
	if !ok {
		if globalDebug {
			debugf("ignoring textAlign %q", align)
		}
		return
	}
	s.state.alignName = align
	s.state.align = a
}

// FillText draws str with its alignment anchor at (x, y) in the current
// transform.
func (s *ImageSurface) FillText(str string, x, y float64) {
	if str == "" || s.target == nil {
		return
	}
	face, err := s.fonts.Face(s.state.fontSpec)
	if err != nil {
		if globalDebug {
			debugf("fillText: %v", err)
		}
		return
	}

	m := face.Metrics()
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-m.HAscent)
	op.GeoM.Concat(geoM(s.state.matrix))
	op.ColorScale.ScaleWithColor(s.state.fill)
	op.PrimaryAlign = s.state.align.primary()
	op.LineSpacing = m.HAscent + m.HDescent + m.HLineGap
	text.Draw(s.target, str, face, op)
}

// Save pushes the current state.
func (s *ImageSurface) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore pops the last saved state. A Restore with nothing saved is a no-op.
func (s *ImageSurface) Restore() {
	if globalDebug {
		debugCheckRestore(len(s.stack))
	}
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Transform multiplies the current matrix by the given one.
func (s *ImageSurface) Transform(a, b, c, d, e, f float64) {
	s.state.matrix = multiplyAffine(s.state.matrix, [6]float64{a, b, c, d, e, f})
}

// Font returns the last accepted font shorthand.
func (s *ImageSurface) Font() string { return s.state.font }

// FontSpec returns the parsed current font.
func (s *ImageSurface) FontSpec() FontSpec { return s.state.fontSpec }

// FillStyle returns the last accepted fill style.
func (s *ImageSurface) FillStyle() string { return s.state.fillStyle }

// FillColor returns the parsed current fill color.
func (s *ImageSurface) FillColor() color.Color { return s.state.fill }

// TextAlign returns the last accepted alignment keyword.
func (s *ImageSurface) TextAlign() string { return s.state.alignName }

// Matrix returns the current transform as [a, b, c, d, e, f].
func (s *ImageSurface) Matrix() [6]float64 { return s.state.matrix }

// Depth returns the number of saved states.
func (s *ImageSurface) Depth() int { return len(s.stack) }

package stage

// Property names specific to Label.
const (
	PropText      = "text"
	PropTextAlign = "textAlign"
	PropFont      = "font"
)

// Label defaults.
const (
	DefaultText      = ""
	DefaultTextAlign = "start"
	DefaultFont      = "12px Helvetica, Arial"
)

// LabelConfig configures a Label. Empty strings keep the Label defaults.
type LabelConfig struct {
	Text      string
	TextAlign string // start, end, left, right or center
	Font      string // CSS font shorthand, e.g. "20px Arial"
	Actor     ActorConfig
}

// Label is an actor that draws one string at its local origin.
type Label struct {
	Base
}

// NewLabel creates a label. Values are stored as given; the surface decides
// what to do with a font or alignment it does not understand.
func NewLabel(cfg LabelConfig) *Label {
	o := map[string]any{}
	if cfg.Text != "" {
		o[PropText] = cfg.Text
	}
	if cfg.TextAlign != "" {
		o[PropTextAlign] = cfg.TextAlign
	}
	if cfg.Font != "" {
		o[PropFont] = cfg.Font
	}

	l := &Label{Base: newBase(cfg.Actor, map[string]any{
		PropText:      DefaultText,
		PropTextAlign: DefaultTextAlign,
		PropFont:      DefaultFont,
	})}
	for k, v := range o {
		l.Set(k, v)
	}
	return l
}

// Draw sets font, fill style and alignment on s, in that order, then fills
// the text at (0, 0).
func (l *Label) Draw(s Surface) {
	s.SetFont(l.String(PropFont))
	s.SetFillStyle(l.String(PropFillStyle))
	s.SetTextAlign(l.String(PropTextAlign))
	s.FillText(l.String(PropText), 0, 0)
}

// Text returns the label's text.
func (l *Label) Text() string { return l.String(PropText) }

// SetText replaces the label's text.
func (l *Label) SetText(s string) { l.Set(PropText, s) }

// Font returns the label's font shorthand.
func (l *Label) Font() string { return l.String(PropFont) }

// SetFont replaces the label's font shorthand.
func (l *Label) SetFont(s string) { l.Set(PropFont, s) }

// TextAlign returns the label's alignment directive.
func (l *Label) TextAlign() string { return l.String(PropTextAlign) }

// SetTextAlign replaces the label's alignment directive.
func (l *Label) SetTextAlign(s string) { l.Set(PropTextAlign, s) }

// FillStyle returns the label's fill paint.
func (l *Label) FillStyle() string { return l.String(PropFillStyle) }

// SetFillStyle replaces the label's fill paint.
func (l *Label) SetFillStyle(s string) { l.Set(PropFillStyle, s) }

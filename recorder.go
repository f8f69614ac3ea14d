package stage

import "fmt"

// CallOp identifies a recorded Surface method.
type CallOp uint8

const (
	OpSetFont      CallOp = iota // SetFont
	OpSetFillStyle               // SetFillStyle
	OpSetTextAlign               // SetTextAlign
	OpFillText                   // FillText
	OpSave                       // Save
	OpRestore                    // Restore
	OpTransform                  // Transform
)

var callOpNames = [...]string{
	OpSetFont:      "font",
	OpSetFillStyle: "fillStyle",
	OpSetTextAlign: "textAlign",
	OpFillText:     "fillText",
	OpSave:         "save",
	OpRestore:      "restore",
	OpTransform:    "transform",
}

func (op CallOp) String() string {
	if int(op) < len(callOpNames) {
		return callOpNames[op]
	}
	return fmt.Sprintf("CallOp(%d)", op)
}

// Call is one recorded Surface call. Arg holds the string argument of the
// setters and FillText; X and Y hold the FillText position; Matrix holds the
// Transform arguments.
type Call struct {
	Op     CallOp
	Arg    string
	X, Y   float64
	Matrix [6]float64
}

func (c Call) String() string {
	switch c.Op {
	case OpFillText:
		return fmt.Sprintf("fillText(%q, %g, %g)", c.Arg, c.X, c.Y)
	case OpSave, OpRestore:
		return c.Op.String() + "()"
	case OpTransform:
		m := c.Matrix
		return fmt.Sprintf("transform(%g, %g, %g, %g, %g, %g)", m[0], m[1], m[2], m[3], m[4], m[5])
	default:
		return fmt.Sprintf("%s = %q", c.Op, c.Arg)
	}
}

type recorderState struct {
	font, fillStyle, textAlign string
}

// Recorder is a Surface that records every call in order without drawing
// anything. It also tracks the current style state, including Save/Restore,
// so callers can inspect what a real surface would have been told.
type Recorder struct {
	calls []Call
	state recorderState
	stack []recorderState
}

// NewRecorder returns a Recorder whose initial state matches a fresh canvas
// context.
func NewRecorder() *Recorder {
	return &Recorder{state: recorderState{
		font:      "10px sans-serif",
		fillStyle: DefaultFillStyle,
		textAlign: DefaultTextAlign,
	}}
}

func (r *Recorder) SetFont(font string) {
	r.calls = append(r.calls, Call{Op: OpSetFont, Arg: font})
	r.state.font = font
}

func (r *Recorder) SetFillStyle(style string) {
	r.calls = append(r.calls, Call{Op: OpSetFillStyle, Arg: style})
	r.state.fillStyle = style
}

func (r *Recorder) SetTextAlign(align string) {
	r.calls = append(r.calls, Call{Op: OpSetTextAlign, Arg: align})
	r.state.textAlign = align
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.calls = append(r.calls, Call{Op: OpFillText, Arg: text, X: x, Y: y})
}

func (r *Recorder) Save() {
	r.calls = append(r.calls, Call{Op: OpSave})
	r.stack = append(r.stack, r.state)
}

// Restore pops the last saved state. Like a canvas context, a Restore with
// nothing saved is recorded but changes nothing.
func (r *Recorder) Restore() {
	r.calls = append(r.calls, Call{Op: OpRestore})
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Transform(a, b, c, d, e, f float64) {
	r.calls = append(r.calls, Call{Op: OpTransform, Matrix: [6]float64{a, b, c, d, e, f}})
}

// Calls returns the recorded calls. The returned slice MUST NOT be mutated.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Reset discards recorded calls. The current style state is kept.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

// Font returns the current font as last set.
func (r *Recorder) Font() string { return r.state.font }

// FillStyle returns the current fill style as last set.
func (r *Recorder) FillStyle() string { return r.state.fillStyle }

// TextAlign returns the current text alignment as last set.
func (r *Recorder) TextAlign() string { return r.state.textAlign }

package stage

// Surface is a stateful 2D drawing context in the style of the HTML canvas.
// Style setters change state that persists until changed again; Save and
// Restore push and pop that state together with the current transform.
//
// Surfaces interpret the strings they receive. A value they cannot parse is
// ignored and the previous state is kept.
type Surface interface {
	SetFont(font string)
	SetFillStyle(style string)
	SetTextAlign(align string)
	FillText(text string, x, y float64)

	Save()
	Restore()
	// Transform multiplies the current matrix by
	//
	//	| a  c  e |
	//	| b  d  f |
	//	| 0  0  1 |
	Transform(a, b, c, d, e, f float64)
}

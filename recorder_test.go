package stage

import "testing"

func TestRecorderInitialState(t *testing.T) {
	r := NewRecorder()
	if r.Font() != "10px sans-serif" {
		t.Errorf("Font() = %q", r.Font())
	}
	if r.FillStyle() != DefaultFillStyle {
		t.Errorf("FillStyle() = %q", r.FillStyle())
	}
	if r.TextAlign() != "start" {
		t.Errorf("TextAlign() = %q", r.TextAlign())
	}
	if len(r.Calls()) != 0 {
		t.Errorf("Calls() = %v, want none", r.Calls())
	}
}

func TestRecorderSaveRestore(t *testing.T) {
	r := NewRecorder()
	r.SetFont("20px Arial")
	r.Save()
	r.SetFont("30px Arial")
	r.SetTextAlign("center")
	r.Restore()

	if r.Font() != "20px Arial" {
		t.Errorf("Font() after restore = %q, want %q", r.Font(), "20px Arial")
	}
	if r.TextAlign() != "start" {
		t.Errorf("TextAlign() after restore = %q, want start", r.TextAlign())
	}
}

func TestRecorderUnbalancedRestore(t *testing.T) {
	r := NewRecorder()
	r.SetFillStyle("red")
	r.Restore() // should not panic
	if r.FillStyle() != "red" {
		t.Errorf("FillStyle() = %q, want red", r.FillStyle())
	}
	if n := len(r.Calls()); n != 2 {
		t.Errorf("recorded %d calls, want 2", n)
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder()
	r.SetTextAlign("end")
	r.FillText("x", 1, 2)
	r.Reset()
	if len(r.Calls()) != 0 {
		t.Errorf("Calls() after Reset = %v", r.Calls())
	}
	if r.TextAlign() != "end" {
		t.Error("Reset should keep style state")
	}
}

func TestCallString(t *testing.T) {
	tests := []struct {
		call Call
		want string
	}{
		{Call{Op: OpSetFont, Arg: "12px Arial"}, `font = "12px Arial"`},
		{Call{Op: OpSetFillStyle, Arg: "red"}, `fillStyle = "red"`},
		{Call{Op: OpSetTextAlign, Arg: "start"}, `textAlign = "start"`},
		{Call{Op: OpFillText, Arg: "Hi", X: 1, Y: 2.5}, `fillText("Hi", 1, 2.5)`},
		{Call{Op: OpSave}, "save()"},
		{Call{Op: OpRestore}, "restore()"},
		{Call{Op: OpTransform, Matrix: [6]float64{1, 0, 0, 1, 3, 4}}, "transform(1, 0, 0, 1, 3, 4)"},
	}
	for _, tt := range tests {
		if got := tt.call.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := CallOp(99).String(); got != "CallOp(99)" {
		t.Errorf("CallOp(99).String() = %q", got)
	}
}

package stage

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// --- TextAlign ---

func TestParseTextAlign(t *testing.T) {
	tests := []struct {
		in   string
		want TextAlign
		ok   bool
	}{
		{"start", TextAlignStart, true},
		{"end", TextAlignEnd, true},
		{"left", TextAlignLeft, true},
		{"right", TextAlignRight, true},
		{"center", TextAlignCenter, true},
		{"Center", TextAlignStart, false},
		{"middle", TextAlignStart, false},
		{"", TextAlignStart, false},
	}
	for _, tt := range tests {
		got, ok := ParseTextAlign(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTextAlign(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTextAlignStringRoundTrip(t *testing.T) {
	for a := TextAlignStart; a <= TextAlignCenter; a++ {
		got, ok := ParseTextAlign(a.String())
		if !ok || got != a {
			t.Errorf("ParseTextAlign(%q) = (%v, %v)", a.String(), got, ok)
		}
	}
	if got := TextAlign(42).String(); got != "TextAlign(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestTextAlignPrimary(t *testing.T) {
	tests := []struct {
		align TextAlign
		want  text.Align
	}{
		{TextAlignStart, text.AlignStart},
		{TextAlignLeft, text.AlignStart},
		{TextAlignCenter, text.AlignCenter},
		{TextAlignEnd, text.AlignEnd},
		{TextAlignRight, text.AlignEnd},
	}
	for _, tt := range tests {
		if got := tt.align.primary(); got != tt.want {
			t.Errorf("%v.primary() = %v, want %v", tt.align, got, tt.want)
		}
	}
}

// --- ParseFont ---

func TestParseFont(t *testing.T) {
	tests := []struct {
		in   string
		want FontSpec
	}{
		{"12px Helvetica, Arial", FontSpec{Style: "normal", Weight: 400, Size: 12, Families: []string{"Helvetica", "Arial"}}},
		{"10px sans-serif", FontSpec{Style: "normal", Weight: 400, Size: 10, Families: []string{"sans-serif"}}},
		{"bold 20px Arial", FontSpec{Style: "normal", Weight: 700, Size: 20, Families: []string{"Arial"}}},
		{"italic small-caps 600 9pt serif", FontSpec{Style: "italic", Weight: 600, Size: 12, Families: []string{"serif"}}},
		{"16px/1.5 \"Times New Roman\", serif", FontSpec{Style: "normal", Weight: 400, Size: 16, LineHeight: "1.5", Families: []string{"Times New Roman", "serif"}}},
		{"2em monospace", FontSpec{Style: "normal", Weight: 400, Size: 20, Families: []string{"monospace"}}},
		{"1.5rem Go", FontSpec{Style: "normal", Weight: 400, Size: 15, Families: []string{"Go"}}},
		{"150% Arial", FontSpec{Style: "normal", Weight: 400, Size: 15, Families: []string{"Arial"}}},
		{"  OBLIQUE   lighter 8px  Courier  New ", FontSpec{Style: "oblique", Weight: 300, Size: 8, Families: []string{"Courier New"}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFont(tt.in)
			if err != nil {
				t.Fatalf("ParseFont: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFont = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFontErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"Arial",
		"bold Arial",
		"12px",
		"12px , ,",
		"-4px Arial",
		"0px Arial",
		"12qq Arial",
		"12px/ Arial",
		"1200 12px Arial",
		"not a font",
	} {
		if _, err := ParseFont(in); err == nil {
			t.Errorf("ParseFont(%q) should fail", in)
		}
	}
}

func TestFontSpecString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"12px Helvetica, Arial", "12px Helvetica, Arial"},
		{"bold 20px Arial", "bold 20px Arial"},
		{"italic 300 9pt serif", "italic 300 12px serif"},
		{"16px/2 a,b", "16px/2 a, b"},
	}
	for _, tt := range tests {
		spec, err := ParseFont(tt.in)
		if err != nil {
			t.Fatalf("ParseFont(%q): %v", tt.in, err)
		}
		if got := spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFontSpecVariants(t *testing.T) {
	tests := []struct {
		in                 string
		bold, italic, mono bool
	}{
		{"12px Helvetica, Arial", false, false, false},
		{"bold 12px Arial", true, false, false},
		{"italic 12px Arial", false, true, false},
		{"bold italic 12px Courier, Arial", true, true, true},
		{"12px Unknown, monospace", false, false, true},
		{"12px Arial, monospace", false, false, false},
	}
	for _, tt := range tests {
		spec, err := ParseFont(tt.in)
		if err != nil {
			t.Fatalf("ParseFont(%q): %v", tt.in, err)
		}
		if spec.Bold() != tt.bold || spec.Italic() != tt.italic || spec.Monospace() != tt.mono {
			t.Errorf("%q: bold=%v italic=%v mono=%v, want %v %v %v", tt.in,
				spec.Bold(), spec.Italic(), spec.Monospace(), tt.bold, tt.italic, tt.mono)
		}
	}
}

// --- FontCache ---

func TestPickSource(t *testing.T) {
	tests := []struct {
		mono, bold, italic bool
		want               fontSource
	}{
		{false, false, false, srcRegular},
		{false, true, false, srcBold},
		{false, false, true, srcItalic},
		{false, true, true, srcBoldItalic},
		{true, false, false, srcMono},
		{true, true, false, srcMonoBold},
		{true, false, true, srcMonoItalic},
		{true, true, true, srcMonoBoldItalic},
	}
	for _, tt := range tests {
		if got := pickSource(tt.mono, tt.bold, tt.italic); got != tt.want {
			t.Errorf("pickSource(%v, %v, %v) = %d, want %d", tt.mono, tt.bold, tt.italic, got, tt.want)
		}
	}
}

func TestFontCacheFace(t *testing.T) {
	c := NewFontCache()
	spec, _ := ParseFont("12px Helvetica, Arial")

	f1, err := c.Face(spec)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if f1.Size != 12 {
		t.Errorf("Size = %v, want 12", f1.Size)
	}
	f2, err := c.Face(spec)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if f1 != f2 {
		t.Error("same spec should return the cached face")
	}

	bold, _ := ParseFont("bold 12px Arial")
	fb, err := c.Face(bold)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if fb.Source == f1.Source {
		t.Error("bold face should use a different source")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	bigger, _ := ParseFont("24px Helvetica")
	fg, err := c.Face(bigger)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if fg.Source != f1.Source {
		t.Error("sizes of the same variant should share one source")
	}
}

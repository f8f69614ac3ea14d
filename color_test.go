package stage

import (
	"image/color"
	"testing"
)

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"#FF8000", color.NRGBA{255, 128, 0, 255}},
		{"#0f0", color.NRGBA{0, 255, 0, 255}},
		{"#00f8", color.NRGBA{0, 0, 255, 0x88}},
		{"#11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"  White ", color.NRGBA{255, 255, 255, 255}},
		{"cornflowerblue", color.NRGBA{100, 149, 237, 255}},
		{"transparent", color.NRGBA{}},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}},
		{"rgb(10 20 30)", color.NRGBA{10, 20, 30, 255}},
		{"rgba(255, 0, 0, 0.5)", color.NRGBA{255, 0, 0, 128}},
		{"rgb(255 0 0 / 50%)", color.NRGBA{255, 0, 0, 128}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{255, 0, 128, 255}},
		{"rgb(300, -5, 0)", color.NRGBA{255, 0, 0, 255}},
		{"hsl(0, 100%, 50%)", color.NRGBA{255, 0, 0, 255}},
		{"hsl(120deg 100% 50%)", color.NRGBA{0, 255, 0, 255}},
		{"hsla(240, 100%, 50%, 0)", color.NRGBA{0, 0, 255, 0}},
		{"hsl(-120, 100%, 50%)", color.NRGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor: %v", err)
			}
			if got := nrgba(c); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"#",
		"#12",
		"#12345",
		"#ggg",
		"#1122334g",
		"rgb(1, 2)",
		"rgb(1, 2, 3",
		"rgb(a, b, c)",
		"rgbx(1, 2, 3)",
		"hsl(0, 100, 50%)",
		"hsl(x, 1%, 1%)",
		"notacolor",
	} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

package stage

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(),
// rgba(), hsl(), hsla(), a named color, or "transparent".
func ParseColor(s string) (color.Color, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case str == "":
		return nil, fmt.Errorf("stage: empty color")
	case str == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(str, "#"):
		return parseHexColor(str)
	case strings.HasPrefix(str, "rgb"):
		return parseRGBFunc(str)
	case strings.HasPrefix(str, "hsl"):
		return parseHSLFunc(str)
	}
	if c, ok := colornames.Map[str]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("stage: unknown color %q", s)
}

func parseHexColor(s string) (color.Color, error) {
	alpha := uint8(255)
	rgb := s
	switch len(s) {
	case 4, 7:
	case 5:
		a, err := strconv.ParseUint(strings.Repeat(s[4:], 2), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("stage: invalid hex color %q", s)
		}
		alpha, rgb = uint8(a), s[:4]
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("stage: invalid hex color %q", s)
		}
		alpha, rgb = uint8(a), s[:7]
	default:
		return nil, fmt.Errorf("stage: invalid hex color %q", s)
	}

	c, err := colorful.Hex(rgb)
	if err != nil {
		return nil, fmt.Errorf("stage: invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// funcArgs splits "name(a, b, c)" or "name(a b c / d)" into its arguments.
func funcArgs(s string) (string, []string, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("stage: invalid color %q", s)
	}
	name := s[:open]
	body := s[open+1 : len(s)-1]
	body = strings.NewReplacer(",", " ", "/", " ").Replace(body)
	return name, strings.Fields(body), nil
}

func parseRGBFunc(s string) (color.Color, error) {
	name, args, err := funcArgs(s)
	if err != nil {
		return nil, err
	}
	if (name != "rgb" && name != "rgba") || (len(args) != 3 && len(args) != 4) {
		return nil, fmt.Errorf("stage: invalid color %q", s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := parseChannel(args[i], 255)
		if err != nil {
			return nil, fmt.Errorf("stage: invalid color %q: %w", s, err)
		}
		ch[i] = uint8(v + 0.5)
	}
	a := 1.0
	if len(args) == 4 {
		if a, err = parseChannel(args[3], 1); err != nil {
			return nil, fmt.Errorf("stage: invalid color %q: %w", s, err)
		}
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: uint8(a*255 + 0.5)}, nil
}

func parseHSLFunc(s string) (color.Color, error) {
	name, args, err := funcArgs(s)
	if err != nil {
		return nil, err
	}
	if (name != "hsl" && name != "hsla") || (len(args) != 3 && len(args) != 4) {
		return nil, fmt.Errorf("stage: invalid color %q", s)
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return nil, fmt.Errorf("stage: invalid color %q: %w", s, err)
	}
	sat, err := parsePercent(args[1])
	if err != nil {
		return nil, fmt.Errorf("stage: invalid color %q: %w", s, err)
	}
	light, err := parsePercent(args[2])
	if err != nil {
		return nil, fmt.Errorf("stage: invalid color %q: %w", s, err)
	}
	a := 1.0
	if len(args) == 4 {
		if a, err = parseChannel(args[3], 1); err != nil {
			return nil, fmt.Errorf("stage: invalid color %q: %w", s, err)
		}
	}

	h = mod360(h)
	c := colorful.Hsl(h, sat, light).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}, nil
}

// parseChannel parses a number or percentage and clamps it to [0, limit].
// Percentages are relative to limit.
func parseChannel(s string, limit float64) (float64, error) {
	var v float64
	if strings.HasSuffix(s, "%") {
		p, err := parsePercent(s)
		if err != nil {
			return 0, err
		}
		v = p * limit
	} else {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", s)
		}
		v = f
	}
	return min(max(v, 0), limit), nil
}

// parsePercent parses "50%" as 0.5, clamped to [0, 1].
func parsePercent(s string) (float64, error) {
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("expected percentage, got %q", s)
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", s)
	}
	return min(max(f/100, 0), 1), nil
}

func mod360(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

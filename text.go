package stage

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// --- TextAlign ---

// TextAlign is a horizontal text alignment relative to the FillText anchor.
type TextAlign uint8

const (
	TextAlignStart  TextAlign = iota // start of the line for the text direction (default)
	TextAlignEnd                     // end of the line for the text direction
	TextAlignLeft                    // anchor is the left edge
	TextAlignRight                   // anchor is the right edge
	TextAlignCenter                  // anchor is the horizontal center
)

var textAlignNames = [...]string{
	TextAlignStart:  "start",
	TextAlignEnd:    "end",
	TextAlignLeft:   "left",
	TextAlignRight:  "right",
	TextAlignCenter: "center",
}

func (a TextAlign) String() string {
	if int(a) < len(textAlignNames) {
		return textAlignNames[a]
	}
	return "TextAlign(" + strconv.Itoa(int(a)) + ")"
}

// ParseTextAlign maps a canvas textAlign keyword to a TextAlign. Matching is
// exact, as on a canvas context; ok is false for anything else.
func ParseTextAlign(s string) (TextAlign, bool) {
	for i, name := range textAlignNames {
		if s == name {
			return TextAlign(i), true
		}
	}
	return TextAlignStart, false
}

// primary returns the text/v2 alignment for left-to-right text.
func (a TextAlign) primary() text.Align {
	switch a {
	case TextAlignCenter:
		return text.AlignCenter
	case TextAlignEnd, TextAlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// --- Font shorthand ---

// Font weights.
const (
	FontWeightNormal = 400
	FontWeightBold   = 700
)

// FontSpec is a parsed CSS font shorthand.
type FontSpec struct {
	Style      string  // normal, italic or oblique
	Weight     int     // 100..900
	Size       float64 // pixels
	LineHeight string  // as written after the slash, "" if absent
	Families   []string
}

// Bold reports whether the weight selects a bold face.
func (f FontSpec) Bold() bool { return f.Weight >= 600 }

// Italic reports whether the style selects a slanted face.
func (f FontSpec) Italic() bool { return f.Style == "italic" || f.Style == "oblique" }

// Monospace reports whether the first recognized family is monospaced.
func (f FontSpec) Monospace() bool {
	mono, _ := resolveFamily(f.Families)
	return mono
}

// String serializes the spec in canonical shorthand form.
func (f FontSpec) String() string {
	var b strings.Builder
	if f.Style != "" && f.Style != "normal" {
		b.WriteString(f.Style)
		b.WriteByte(' ')
	}
	switch f.Weight {
	case 0, FontWeightNormal:
	case FontWeightBold:
		b.WriteString("bold ")
	default:
		b.WriteString(strconv.Itoa(f.Weight))
		b.WriteByte(' ')
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'g', -1, 64))
	b.WriteString("px")
	if f.LineHeight != "" {
		b.WriteByte('/')
		b.WriteString(f.LineHeight)
	}
	b.WriteByte(' ')
	b.WriteString(strings.Join(f.Families, ", "))
	return b.String()
}

// baseFontSize is the size em, rem and % units are relative to. Canvas
// contexts resolve relative sizes against their 10px default font.
const baseFontSize = 10.0

// ParseFont parses a CSS font shorthand such as "bold 12px Helvetica, Arial":
//
//	[style] [variant] [weight] [stretch] size[/line-height] family[, family...]
func ParseFont(s string) (FontSpec, error) {
	spec := FontSpec{Style: "normal", Weight: FontWeightNormal}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return FontSpec{}, fmt.Errorf("stage: empty font")
	}

	sizeIdx := -1
	for i, tok := range fields {
		lower := strings.ToLower(tok)
		switch lower {
		case "normal", "small-caps",
			"ultra-condensed", "extra-condensed", "condensed", "semi-condensed",
			"semi-expanded", "expanded", "extra-expanded", "ultra-expanded":
			continue
		case "italic", "oblique":
			spec.Style = lower
			continue
		case "bold", "bolder":
			spec.Weight = FontWeightBold
			continue
		case "lighter":
			spec.Weight = 300
			continue
		}
		if w, err := strconv.Atoi(lower); err == nil {
			if w < 1 || w > 1000 {
				return FontSpec{}, fmt.Errorf("stage: font %q: weight %d out of range", s, w)
			}
			spec.Weight = w
			continue
		}
		size, lh, err := parseFontSize(lower)
		if err != nil {
			return FontSpec{}, fmt.Errorf("stage: font %q: %w", s, err)
		}
		spec.Size = size
		spec.LineHeight = lh
		sizeIdx = i
		break
	}
	if sizeIdx < 0 {
		return FontSpec{}, fmt.Errorf("stage: font %q: missing size", s)
	}

	rest := strings.Join(fields[sizeIdx+1:], " ")
	for _, fam := range strings.Split(rest, ",") {
		fam = strings.Trim(strings.TrimSpace(fam), `"'`)
		if fam != "" {
			spec.Families = append(spec.Families, fam)
		}
	}
	if len(spec.Families) == 0 {
		return FontSpec{}, fmt.Errorf("stage: font %q: missing family", s)
	}
	return spec, nil
}

// parseFontSize parses "12px", "9pt", "1.5em" or "12px/1.2" into pixels and
// the raw line height.
func parseFontSize(tok string) (float64, string, error) {
	var lh string
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok, lh = tok[:i], tok[i+1:]
		if lh == "" {
			return 0, "", fmt.Errorf("empty line height")
		}
	}

	// Pixels are v * mul / div.
	var unit string
	var mul, div float64
	switch {
	case strings.HasSuffix(tok, "rem"):
		unit, mul, div = "rem", baseFontSize, 1
	case strings.HasSuffix(tok, "px"):
		unit, mul, div = "px", 1, 1
	case strings.HasSuffix(tok, "pt"):
		unit, mul, div = "pt", 4, 3
	case strings.HasSuffix(tok, "em"):
		unit, mul, div = "em", baseFontSize, 1
	case strings.HasSuffix(tok, "%"):
		unit, mul, div = "%", baseFontSize, 100
	default:
		return 0, "", fmt.Errorf("invalid size %q", tok)
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, unit), 64)
	if err != nil || v <= 0 {
		return 0, "", fmt.Errorf("invalid size %q", tok)
	}
	return v * mul / div, lh, nil
}

// --- Family resolution ---

var monoFamilies = map[string]bool{
	"monospace":      true,
	"courier":        true,
	"courier new":    true,
	"consolas":       true,
	"menlo":          true,
	"monaco":         true,
	"lucida console": true,
	"go mono":        true,
}

var proportionalFamilies = map[string]bool{
	"sans-serif":      true,
	"serif":           true,
	"system-ui":       true,
	"cursive":         true,
	"fantasy":         true,
	"helvetica":       true,
	"helvetica neue":  true,
	"arial":           true,
	"verdana":         true,
	"tahoma":          true,
	"georgia":         true,
	"times":           true,
	"times new roman": true,
	"go":              true,
}

// resolveFamily walks the family list in order and reports whether the first
// family it recognizes is monospaced. Unknown lists resolve to proportional
// with known == false.
func resolveFamily(families []string) (mono, known bool) {
	for _, fam := range families {
		f := strings.ToLower(fam)
		if monoFamilies[f] {
			return true, true
		}
		if proportionalFamilies[f] {
			return false, true
		}
	}
	return false, false
}

// --- FontCache ---

type fontSource uint8

const (
	srcRegular fontSource = iota
	srcBold
	srcItalic
	srcBoldItalic
	srcMono
	srcMonoBold
	srcMonoItalic
	srcMonoBoldItalic
	srcCount
)

var fontSourceData = [srcCount][]byte{
	srcRegular:        goregular.TTF,
	srcBold:           gobold.TTF,
	srcItalic:         goitalic.TTF,
	srcBoldItalic:     gobolditalic.TTF,
	srcMono:           gomono.TTF,
	srcMonoBold:       gomonobold.TTF,
	srcMonoItalic:     gomonoitalic.TTF,
	srcMonoBoldItalic: gomonobolditalic.TTF,
}

// FontCache resolves font specs to Ebitengine text faces backed by the Go
// font family. Each face source is parsed once; faces are cached per
// canonical spec string.
type FontCache struct {
	sources [srcCount]*text.GoTextFaceSource
	faces   map[string]*text.GoTextFace
}

// NewFontCache returns an empty cache.
func NewFontCache() *FontCache {
	return &FontCache{faces: make(map[string]*text.GoTextFace)}
}

// defaultFontCache is shared by surfaces created without their own cache.
var defaultFontCache = NewFontCache()

// Face returns the face for spec, loading its source on first use.
func (c *FontCache) Face(spec FontSpec) (*text.GoTextFace, error) {
	key := spec.String()
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	mono, known := resolveFamily(spec.Families)
	if !known && globalDebug {
		debugf("font families %q not recognized, using Go Regular", spec.Families)
	}
	src, err := c.source(pickSource(mono, spec.Bold(), spec.Italic()))
	if err != nil {
		return nil, err
	}

	f := &text.GoTextFace{Source: src, Size: spec.Size}
	c.faces[key] = f
	return f, nil
}

// Len returns the number of cached faces.
func (c *FontCache) Len() int {
	return len(c.faces)
}

func (c *FontCache) source(k fontSource) (*text.GoTextFaceSource, error) {
	if c.sources[k] != nil {
		return c.sources[k], nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fontSourceData[k]))
	if err != nil {
		return nil, fmt.Errorf("stage: failed to parse font source: %w", err)
	}
	c.sources[k] = src
	return src, nil
}

func pickSource(mono, bold, italic bool) fontSource {
	k := srcRegular
	if mono {
		k = srcMono
	}
	switch {
	case bold && italic:
		k += srcBoldItalic
	case bold:
		k += srcBold
	case italic:
		k += srcItalic
	}
	return k
}

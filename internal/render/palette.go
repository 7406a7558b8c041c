package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// ErrFill is returned for a fill style ParseFill does not understand.
var ErrFill = errors.New("render: unknown fill style")

var (
	fillMu    sync.Mutex
	fillCache = map[string]color.NRGBA{}
)

// ParseFill turns a board fill style into a colour. It accepts CSS colour
// names ("lightsteelblue"), hex forms ("#fff", "#ff8000", "#ff800080") and
// "rgb(r, g, b)" / "rgba(r, g, b, a)" with a in [0, 1].
func ParseFill(style string) (color.NRGBA, error) {
	key := strings.ToLower(strings.TrimSpace(style))
	fillMu.Lock()
	c, ok := fillCache[key]
	fillMu.Unlock()
	if ok {
		return c, nil
	}

	c, err := parseFill(key)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrFill, style)
	}
	fillMu.Lock()
	fillCache[key] = c
	fillMu.Unlock()
	return c, nil
}

// MustFill is ParseFill for styles known to be valid; unknown styles come
// back as opaque magenta so they stand out on screen.
func MustFill(style string) color.NRGBA {
	c, err := ParseFill(style)
	if err != nil {
		return color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

func parseFill(s string) (color.NRGBA, error) {
	switch {
	case s == "":
		return color.NRGBA{}, errors.New("empty")
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunc(s)
	}
	if s == "transparent" {
		return color.NRGBA{}, nil
	}
	rgba, ok := colornames.Map[s]
	if !ok {
		return color.NRGBA{}, errors.New("no such colour name")
	}
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}, nil
}

func parseHex(h string) (color.NRGBA, error) {
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, errors.New("bad hex length")
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseFunc(s string) (color.NRGBA, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if end < open {
		return color.NRGBA{}, errors.New("unterminated")
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, errors.New("want 3 or 4 components")
	}
	var ch [3]uint8
	for i := range ch {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.NRGBA{}, errors.New("channel out of range")
		}
		ch[i] = uint8(n)
	}
	alpha := uint8(0xff)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, errors.New("alpha out of range")
		}
		alpha = uint8(a*255 + 0.5)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

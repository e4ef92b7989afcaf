package svgtext

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var viewBoxAttr = regexp.MustCompile(`viewBox\s*=\s*(?:"([^"]+)"|'([^']+)')`)

// Viewport is the coordinate space declared by an SVG's viewBox
type Viewport struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// HasOrigin reports whether the viewBox starts somewhere other than (0,0).
func (v Viewport) HasOrigin() bool {
	return v.MinX != 0 || v.MinY != 0
}

// ReadViewport parses the first viewBox attribute in the SVG text.
func ReadViewport(svg string) (Viewport, error) {
	m := viewBoxAttr.FindStringSubmatch(svg)
	if m == nil {
		return Viewport{}, svgError(ErrNoViewport)
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(parts) != 4 {
		return Viewport{}, svgError(fmt.Errorf("viewBox %q: want 4 numbers, got %d", raw, len(parts)))
	}

	var nums [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Viewport{}, svgError(fmt.Errorf("viewBox %q: %w", raw, err))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Viewport{}, svgError(fmt.Errorf("viewBox %q: %s is not finite", raw, p))
		}
		nums[i] = v
	}

	vp := Viewport{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}
	if vp.Width <= 0 || vp.Height <= 0 {
		return Viewport{}, svgError(fmt.Errorf("viewBox %q: width and height must be positive", raw))
	}
	return vp, nil
}

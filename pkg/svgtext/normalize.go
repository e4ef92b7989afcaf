package svgtext

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gardar/svgtext/pkg/bbox"
)

// Coord is a viewport coordinate rounded to one decimal place.
// It always encodes with exactly one fractional digit.
type Coord float64

// MarshalJSON implements json.Marshaler.
func (c Coord) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("coordinate %v is not finite", f)
	}
	return strconv.AppendFloat(nil, f, 'f', 1, 64), nil
}

// roundTenth rounds to one decimal on the exact binary value, ties to even.
func roundTenth(v float64) Coord {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return Coord(v)
	}
	return Coord(r)
}

// WordBox is a word and its bounding box in viewport coordinates
type WordBox struct {
	Text string `json:"t"`
	X    Coord  `json:"x"`
	Y    Coord  `json:"y"`
	W    Coord  `json:"w"`
	H    Coord  `json:"h"`
}

// ScaleFactors map page coordinates onto viewport coordinates
type ScaleFactors struct {
	X float64
	Y float64
}

// NewScaleFactors derives per-axis factors from the viewport and page sizes.
func NewScaleFactors(vp Viewport, page bbox.Page) (ScaleFactors, error) {
	if page.Width <= 0 || page.Height <= 0 {
		return ScaleFactors{}, fmt.Errorf("%w: %gx%g", bbox.ErrInvalidPageSize, page.Width, page.Height)
	}
	return ScaleFactors{
		X: vp.Width / page.Width,
		Y: vp.Height / page.Height,
	}, nil
}

// AspectSkew returns how far the two factors are from a uniform scale.
func (s ScaleFactors) AspectSkew() float64 {
	if s.Y == 0 {
		return math.Inf(1)
	}
	return math.Abs(s.X/s.Y - 1)
}

func (s ScaleFactors) String() string {
	return fmt.Sprintf("%.3fx/%.3fx", s.X, s.Y)
}

// normalizeCoords rescales a page point into viewport space.
func normalizeCoords(x, y float64, s ScaleFactors) (float64, float64) {
	return x * s.X, y * s.Y
}

// MapWords rescales every word into viewport space. Boxes are neither
// clipped nor dropped; the offset is added to x and y after scaling.
func MapWords(words []bbox.Word, s ScaleFactors, offsetX, offsetY float64) []WordBox {
	out := make([]WordBox, 0, len(words))
	for _, w := range words {
		x, y := normalizeCoords(w.BBox.XMin, w.BBox.YMin, s)
		width, height := normalizeCoords(w.BBox.Width(), w.BBox.Height(), s)
		out = append(out, WordBox{
			Text: w.Text,
			X:    roundTenth(x + offsetX),
			Y:    roundTenth(y + offsetY),
			W:    roundTenth(width),
			H:    roundTenth(height),
		})
	}
	return out
}

package svgtext

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/svgtext/pkg/bbox"
)

func TestMapWords(t *testing.T) {
	vp := Viewport{Width: 600, Height: 800}
	page := bbox.Page{Width: 300, Height: 400}

	scale, err := NewScaleFactors(vp, page)
	require.NoError(t, err)
	assert.Equal(t, ScaleFactors{X: 2, Y: 2}, scale)

	words := []bbox.Word{{Text: "Hello", BBox: bbox.NewBoundingBox(10, 20, 60, 40)}}
	got := MapWords(words, scale, 0, 0)

	assert.Equal(t, []WordBox{{Text: "Hello", X: 20, Y: 40, W: 100, H: 40}}, got)
}

func TestMapWordsProperty(t *testing.T) {
	vp := Viewport{Width: 595.28, Height: 841.89}
	page := bbox.Page{Width: 612, Height: 792}
	words := []bbox.Word{
		{Text: "a", BBox: bbox.NewBoundingBox(72.1, 71.33, 101.9, 83.07)},
		{Text: "b", BBox: bbox.NewBoundingBox(0, 0, 612, 792)},
		{Text: "c", BBox: bbox.NewBoundingBox(700, -10, 720, 5)},
	}

	scale, err := NewScaleFactors(vp, page)
	require.NoError(t, err)
	got := MapWords(words, scale, 0, 0)
	require.Len(t, got, len(words))

	round := func(v float64) float64 { return math.Round(v*10) / 10 }
	for i, w := range words {
		sx := vp.Width / page.Width
		sy := vp.Height / page.Height
		assert.InDelta(t, round(w.BBox.XMin*sx), float64(got[i].X), 0.1000001)
		assert.InDelta(t, round(w.BBox.YMin*sy), float64(got[i].Y), 0.1000001)
		assert.InDelta(t, round((w.BBox.XMax-w.BBox.XMin)*sx), float64(got[i].W), 0.1000001)
		assert.InDelta(t, round((w.BBox.YMax-w.BBox.YMin)*sy), float64(got[i].H), 0.1000001)
	}

	// Out-of-page boxes are kept as they are.
	assert.Greater(t, float64(got[2].X), vp.Width)
	assert.Less(t, float64(got[2].Y), 0.0)

	// Pure function of its inputs.
	assert.Equal(t, got, MapWords(words, scale, 0, 0))
}

func TestMapWordsOffset(t *testing.T) {
	words := []bbox.Word{{Text: "x", BBox: bbox.NewBoundingBox(1, 1, 2, 2)}}
	got := MapWords(words, ScaleFactors{X: 1, Y: 1}, 10, -5)
	assert.Equal(t, []WordBox{{Text: "x", X: 11, Y: -4, W: 1, H: 1}}, got)
}

func TestNewScaleFactorsInvalidPage(t *testing.T) {
	_, err := NewScaleFactors(Viewport{Width: 1, Height: 1}, bbox.Page{Width: 0, Height: 1})
	assert.ErrorIs(t, err, bbox.ErrInvalidPageSize)
}

func TestAspectSkew(t *testing.T) {
	assert.Equal(t, 0.0, ScaleFactors{X: 2, Y: 2}.AspectSkew())
	assert.InDelta(t, 0.5, ScaleFactors{X: 3, Y: 2}.AspectSkew(), 1e-9)
	assert.Equal(t, "2.000x/1.500x", ScaleFactors{X: 2, Y: 1.5}.String())
}

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		in   float64
		want Coord
	}{
		{in: 20, want: 20},
		{in: 12.34, want: 12.3},
		{in: 12.36, want: 12.4},
		{in: 0.25, want: 0.2}, // exact half rounds to even
		{in: 0.35, want: 0.3}, // 0.35 is slightly below the half in binary
		{in: -1.26, want: -1.3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundTenth(tt.in), "roundTenth(%v)", tt.in)
	}
}

func TestCoordMarshalJSON(t *testing.T) {
	b, err := json.Marshal([]Coord{20, 12.3, -0.5, 1234567.8})
	require.NoError(t, err)
	assert.Equal(t, `[20.0,12.3,-0.5,1234567.8]`, string(b))

	_, err = json.Marshal(Coord(math.Inf(1)))
	assert.Error(t, err)
}

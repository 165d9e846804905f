package preview_test

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/eolymp/go-mathtex"
	"github.com/eolymp/go-mathtex/fontmetrics"
	"github.com/eolymp/go-mathtex/preview"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func typeset(t *testing.T, src string) *mathtex.Box {
	t.Helper()

	m, err := fontmetrics.GoRegular()
	if err != nil {
		t.Fatalf("Unable to load font metrics: %v", err)
	}

	box, err := mathtex.Typeset(src, m, 1)
	if err != nil {
		t.Fatalf("Unable to typeset %q: %v", src, err)
	}

	return box
}

func TestDraw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathtex.preview")
	defer teardown()

	box := typeset(t, "\\left\\{\\frac{\\boldsymbol{a}}{\\sqrt{b_1}}\\right)")

	img, err := preview.Draw(box, 40)
	if !assert.NoError(t, err) {
		return
	}

	bounds := img.Bounds()
	assert.Equal(t, int(math.Ceil(box.Width*40)), bounds.Dx())
	assert.Equal(t, int(math.Ceil(box.Height*40)), bounds.Dy())

	// something has been drawn on the white background
	inked := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !inked; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				inked = true
				break
			}
		}
	}

	assert.True(t, inked, "image is blank")
}

func TestDrawEmpty(t *testing.T) {
	img, err := preview.Draw(typeset(t, ""), 0)
	if assert.NoError(t, err) {
		assert.Equal(t, 1, img.Bounds().Dx())
		assert.Equal(t, 1, img.Bounds().Dy())
	}
}

func TestSavePNG(t *testing.T) {
	box := typeset(t, "x^2+y^2")
	path := filepath.Join(t.TempDir(), "formula.png")

	if !assert.NoError(t, preview.SavePNG(path, box, 20)) {
		return
	}

	file, err := os.Open(path)
	if !assert.NoError(t, err) {
		return
	}
	defer file.Close()

	img, err := png.Decode(file)
	if assert.NoError(t, err) {
		assert.Greater(t, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

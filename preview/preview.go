// Package preview rasterizes box trees, which is handy to eyeball layout
// without a browser. Glyphs are drawn with the Go fonts, shapes approximate
// the borders of the HTML stylesheet.
package preview

import (
	"fmt"
	"image"
	"math"
	"strings"
	"sync"

	"github.com/eolymp/go-mathtex"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer writes to trace with key 'mathtex.preview'
func tracer() tracing.Trace {
	return tracing.Select("mathtex.preview")
}

type style int

const (
	regular style = iota
	italic
	bold
	boldItalic
)

var fonts = sync.OnceValues(func() (map[style]*truetype.Font, error) {
	sources := map[style][]byte{
		regular:    goregular.TTF,
		italic:     goitalic.TTF,
		bold:       gobold.TTF,
		boldItalic: gobolditalic.TTF,
	}

	parsed := map[style]*truetype.Font{}
	for s, src := range sources {
		f, err := truetype.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("unable to parse font: %w", err)
		}

		parsed[s] = f
	}

	return parsed, nil
})

type faceKey struct {
	style style
	size  float64
}

// Renderer draws one box tree.
type Renderer struct {
	context *gg.Context
	scale   float64 // pixels per em
	fonts   map[style]*truetype.Font
	faces   map[faceKey]font.Face
}

// Draw rasterizes the box on a white background, pxPerEm pixels per em.
func Draw(b *mathtex.Box, pxPerEm float64) (image.Image, error) {
	r, err := NewRenderer(b, pxPerEm)
	if err != nil {
		return nil, err
	}

	r.Render(b)
	return r.context.Image(), nil
}

// SavePNG rasterizes the box into a PNG file.
func SavePNG(path string, b *mathtex.Box, pxPerEm float64) error {
	r, err := NewRenderer(b, pxPerEm)
	if err != nil {
		return err
	}

	r.Render(b)
	return r.SavePNG(path)
}

// NewRenderer creates a canvas large enough for the box.
func NewRenderer(b *mathtex.Box, pxPerEm float64) (*Renderer, error) {
	f, err := fonts()
	if err != nil {
		return nil, err
	}

	if pxPerEm <= 0 {
		pxPerEm = 32
	}

	width := max(1, int(math.Ceil(b.Width*pxPerEm)))
	height := max(1, int(math.Ceil(b.Height*pxPerEm)))

	return &Renderer{
		context: gg.NewContext(width, height),
		scale:   pxPerEm,
		fonts:   f,
		faces:   map[faceKey]font.Face{},
	}, nil
}

func (r *Renderer) Render(b *mathtex.Box) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()
	r.context.SetRGB(0, 0, 0)

	b.Leaves(func(leaf *mathtex.Box, x, y float64) {
		if leaf.Text != "" {
			r.drawText(leaf, x, y)
			return
		}

		r.drawShape(leaf, x, y)
	})
}

func (r *Renderer) SavePNG(path string) error {
	if err := r.context.SavePNG(path); err != nil {
		return fmt.Errorf("unable to save preview: %w", err)
	}

	return nil
}

func (r *Renderer) drawText(leaf *mathtex.Box, x, y float64) {
	r.context.SetFontFace(r.face(classStyle(leaf.Class), leaf.FontSize*r.scale))
	r.context.DrawString(leaf.Text, x*r.scale, (y+leaf.Baseline)*r.scale)
}

func (r *Renderer) face(s style, size float64) font.Face {
	key := faceKey{style: s, size: size}
	if face, ok := r.faces[key]; ok {
		return face
	}

	face := truetype.NewFace(r.fonts[s], &truetype.Options{Size: size, DPI: 72})
	r.faces[key] = face
	return face
}

func classStyle(class string) (s style) {
	for _, c := range strings.Fields(class) {
		switch c {
		case "italic":
			s |= italic
		case "bold":
			s |= bold
		}
	}

	return
}

// drawShape draws borders the way the stylesheet does for the class
func (r *Renderer) drawShape(leaf *mathtex.Box, x, y float64) {
	dc := r.context
	x, y = x*r.scale, y*r.scale
	w, h := leaf.Width*r.scale, leaf.Height*r.scale

	dc.SetLineWidth(math.Max(1, 0.06*r.scale))
	dc.NewSubPath()

	switch leaf.Class {
	case "hline":
		dc.DrawRectangle(x, y, w, math.Max(1, h))
		dc.Fill()
		return
	case "left-bracket":
		dc.MoveTo(x+w, y)
		dc.LineTo(x, y)
		dc.LineTo(x, y+h)
		dc.LineTo(x+w, y+h)
	case "right-bracket":
		dc.MoveTo(x, y)
		dc.LineTo(x+w, y)
		dc.LineTo(x+w, y+h)
		dc.LineTo(x, y+h)
	case "left-bracket-rounded":
		dc.DrawEllipticalArc(x+w, y+h/2, w, h/2, math.Pi/2, 3*math.Pi/2)
	case "right-bracket-rounded":
		dc.DrawEllipticalArc(x, y+h/2, w, h/2, -math.Pi/2, math.Pi/2)
	case "left-brace0", "right-brace2":
		dc.DrawEllipticalArc(x+w, y+h, w, h, math.Pi, 3*math.Pi/2) // top left corner
	case "left-brace1", "right-brace3", "sqrt1":
		dc.DrawEllipticalArc(x, y, w, h, 0, math.Pi/2) // bottom right corner
	case "left-brace2", "right-brace0", "sqrt2":
		dc.DrawEllipticalArc(x, y+h, w, h, 3*math.Pi/2, 2*math.Pi) // top right corner
	case "left-brace3", "right-brace1":
		dc.DrawEllipticalArc(x+w, y, w, h, math.Pi/2, math.Pi) // bottom left corner
	default:
		tracer().Debugf("no shape for class %q", leaf.Class)
		return
	}

	dc.Stroke()
}

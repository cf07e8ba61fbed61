// Package wordcloud lays out and rasterises word clouds: each word is drawn
// with a size proportional to its frequency in the input text.
//
// Layout is deterministic. Words are placed largest first along an
// Archimedean spiral starting at the canvas centre, and collisions are tested
// against a summed-area table of the occupied pixels. Glyphs come from the
// fixed 7x13 bitmap face and are scaled to their target size with bilinear
// interpolation, so the same text always produces the same image bytes.
package wordcloud

import (
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrNoWords is returned when the text contains nothing countable
var ErrNoWords = errors.New("wordcloud: no words to draw")

// glyphFace is the bitmap face every word is drawn with before scaling
var glyphFace = basicfont.Face7x13

// DefaultPalette approximates the viridis colour map
var DefaultPalette = []color.Color{
	color.RGBA{R: 68, G: 1, B: 84, A: 255},
	color.RGBA{R: 59, G: 82, B: 139, A: 255},
	color.RGBA{R: 33, G: 145, B: 140, A: 255},
	color.RGBA{R: 94, G: 201, B: 98, A: 255},
	color.RGBA{R: 72, G: 40, B: 120, A: 255},
	color.RGBA{R: 44, G: 114, B: 142, A: 255},
	color.RGBA{R: 40, G: 174, B: 128, A: 255},
}

// Options controls canvas size and word sizing
type Options struct {
	Width  int
	Height int

	Background color.Color
	Palette    []color.Color

	// MaxWords caps the number of distinct words considered
	MaxWords int
	// MinFontSize and MaxFontSize are glyph heights in pixels
	MinFontSize int
	MaxFontSize int
	// FontStep is how much the size shrinks after a failed placement
	FontStep int
	// RelativeScaling in [0,1] sets how strongly frequency drives size.
	// 0 keeps only rank order, 1 makes size proportional to frequency.
	RelativeScaling float64
	// Margin is the free space kept around each word, in pixels
	Margin int

	Stopwords []string
}

// DefaultOptions returns an 800x400 white canvas with up to 200 words
func DefaultOptions() Options {
	return Options{
		Width:           800,
		Height:          400,
		Background:      color.White,
		Palette:         DefaultPalette,
		MaxWords:        200,
		MinFontSize:     8,
		MaxFontSize:     160,
		FontStep:        2,
		RelativeScaling: 0.5,
		Margin:          2,
		Stopwords:       DefaultStopwords,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("wordcloud: invalid canvas %dx%d", o.Width, o.Height)
	}
	if o.MinFontSize <= 0 || o.MaxFontSize < o.MinFontSize {
		return fmt.Errorf("wordcloud: invalid font sizes min=%d max=%d", o.MinFontSize, o.MaxFontSize)
	}
	if o.RelativeScaling < 0 || o.RelativeScaling > 1 {
		return fmt.Errorf("wordcloud: relative scaling %.2f outside [0,1]", o.RelativeScaling)
	}
	return nil
}

// Placement is one word positioned on the canvas
type Placement struct {
	Word     Word
	FontSize int
	Rect     image.Rectangle
	Color    color.Color
}

// Cloud is a laid-out word cloud ready to be rasterised
type Cloud struct {
	Width      int
	Height     int
	Background color.Color
	Placements []Placement
}

// Generate counts the words of text and lays them out on the canvas
func Generate(text string, opts Options) (*Cloud, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.FontStep <= 0 {
		opts.FontStep = 1
	}
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette
	}
	if opts.Background == nil {
		opts.Background = color.White
	}

	words := Frequencies(text, opts.Stopwords, opts.MaxWords)
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	cloud := &Cloud{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: opts.Background,
	}

	occupancy := newOccupancyMap(opts.Width, opts.Height)
	fontSize := float64(opts.MaxFontSize)
	lastWeight := 1.0

	for _, w := range words {
		rs := opts.RelativeScaling
		if w.Weight < lastWeight && lastWeight > 0 {
			fontSize *= rs*(w.Weight/lastWeight) + (1 - rs)
		}
		lastWeight = w.Weight

		size := int(math.Round(fontSize))
		placed := false
		for ; size >= opts.MinFontSize; size -= opts.FontStep {
			width, height := measure(w.Text, size)
			pos, ok := occupancy.find(width+2*opts.Margin, height+2*opts.Margin)
			if !ok {
				continue
			}
			rect := image.Rect(pos.X+opts.Margin, pos.Y+opts.Margin,
				pos.X+opts.Margin+width, pos.Y+opts.Margin+height)
			occupancy.fill(rect.Inset(-opts.Margin))
			cloud.Placements = append(cloud.Placements, Placement{
				Word:     w,
				FontSize: size,
				Rect:     rect,
				Color:    pickColor(w.Text, opts.Palette),
			})
			placed = true
			break
		}
		if !placed {
			// Every remaining word is at most this large, so nothing else fits.
			break
		}
		fontSize = float64(size)
	}

	if len(cloud.Placements) == 0 {
		return nil, ErrNoWords
	}
	return cloud, nil
}

// Image rasterises the cloud onto an RGBA canvas
func (c *Cloud) Image() *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(c.Background), image.Point{}, xdraw.Src)

	for _, p := range c.Placements {
		glyphs := renderGlyphs(p.Word.Text, p.Color)
		xdraw.BiLinear.Scale(canvas, p.Rect, glyphs, glyphs.Bounds(), xdraw.Over, nil)
	}
	return canvas
}

// EncodePNG writes the rasterised cloud as PNG
func (c *Cloud) EncodePNG(w io.Writer) error {
	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("wordcloud: encode png: %w", err)
	}
	return nil
}

// Words returns the placed words in placement order
func (c *Cloud) Words() []string {
	out := make([]string, len(c.Placements))
	for i, p := range c.Placements {
		out[i] = p.Word.Text
	}
	return out
}

// measure returns the pixel size of text drawn at the given glyph height
func measure(text string, size int) (int, int) {
	d := &font.Drawer{Face: glyphFace}
	nativeWidth := d.MeasureString(text).Ceil()
	nativeHeight := glyphFace.Metrics().Height.Ceil()
	scale := float64(size) / float64(nativeHeight)
	return int(math.Ceil(float64(nativeWidth) * scale)), size
}

// renderGlyphs draws text at the face's native size on a transparent background
func renderGlyphs(text string, col color.Color) *image.RGBA {
	d := &font.Drawer{Face: glyphFace}
	width := d.MeasureString(text).Ceil()
	metrics := glyphFace.Metrics()
	height := metrics.Height.Ceil()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	d.Dst = img
	d.Src = image.NewUniform(col)
	d.Dot = fixed.Point26_6{X: 0, Y: metrics.Ascent}
	d.DrawString(text)
	return img
}

func pickColor(word string, palette []color.Color) color.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(word)))
	return palette[int(h.Sum32()%uint32(len(palette)))]
}

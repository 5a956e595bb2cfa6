// Package font provides text rendering on top of the video canvas.
//
// Two font kinds are supported: Bitmap fonts backed by a fixed glyph
// grid atlas, and Outline fonts backed by a TrueType/OpenType file
// shaped with HarfBuzz. Both implement the video.Font interface and
// submit their geometry through the canvas, so font output is sorted
// and filtered with everything else that frame.
package font

import (
	"strings"

	"github.com/serano01/supertux/video"
)

// Bitmap is a fixed-grid atlas font. Every glyph occupies one cell of
// a regular grid laid over the atlas surface, starting at FirstRune
// and advancing left to right, top to bottom.
//
// Bitmap is safe for concurrent use once constructed.
type Bitmap struct {
	surface     *video.Surface
	glyphWidth  float64
	glyphHeight float64
	columns     int
	firstRune   rune
	glyphCount  int
	spacing     float64
	shadowSize  float64
	shadowColor video.Color
}

// BitmapOption configures a Bitmap font during creation.
type BitmapOption func(*Bitmap)

// WithFirstRune sets the rune mapped to the first grid cell.
// The default is ' ' (U+0020), matching the usual ASCII strip layout.
func WithFirstRune(r rune) BitmapOption {
	return func(b *Bitmap) { b.firstRune = r }
}

// WithSpacing adds extra horizontal advance between glyphs.
func WithSpacing(px float64) BitmapOption {
	return func(b *Bitmap) { b.spacing = px }
}

// WithShadow enables a drop shadow pass offset by the given number of
// pixels. A size of 0 disables the shadow.
func WithShadow(size float64) BitmapOption {
	return func(b *Bitmap) { b.shadowSize = size }
}

// WithShadowColor overrides the shadow color. The default is black at
// 75% opacity.
func WithShadowColor(c video.Color) BitmapOption {
	return func(b *Bitmap) { b.shadowColor = c }
}

// NewBitmap creates a bitmap font over the given atlas surface.
// glyphWidth and glyphHeight are the cell dimensions in pixels.
// NewBitmap panics if the surface is nil or the cell dimensions are
// not positive.
func NewBitmap(surface *video.Surface, glyphWidth, glyphHeight float64, opts ...BitmapOption) *Bitmap {
	if surface == nil {
		panic("font: NewBitmap called with nil surface")
	}
	if glyphWidth <= 0 || glyphHeight <= 0 {
		panic("font: NewBitmap called with non-positive glyph size")
	}

	columns := int(surface.Width() / glyphWidth)
	if columns < 1 {
		columns = 1
	}
	rows := int(surface.Height() / glyphHeight)
	if rows < 1 {
		rows = 1
	}

	b := &Bitmap{
		surface:     surface,
		glyphWidth:  glyphWidth,
		glyphHeight: glyphHeight,
		columns:     columns,
		firstRune:   ' ',
		glyphCount:  columns * rows,
		shadowColor: video.Color{A: 0.75},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// advance is the pen movement per glyph.
func (b *Bitmap) advance() float64 { return b.glyphWidth + b.spacing }

// glyphRect returns the atlas-space source rect for r. Runes outside
// the grid fall back to the first cell.
func (b *Bitmap) glyphRect(r rune) video.Rectf {
	idx := int(r - b.firstRune)
	if idx < 0 || idx >= b.glyphCount {
		idx = 0
	}
	col := idx % b.columns
	row := idx / b.columns
	origin := b.surface.Region().TopLeft()
	return video.NewRectf(
		origin.X+float64(col)*b.glyphWidth,
		origin.Y+float64(row)*b.glyphHeight,
		b.glyphWidth, b.glyphHeight)
}

// Draw implements video.Font. Text may contain newlines; each line is
// aligned independently.
func (b *Bitmap) Draw(canvas *video.Canvas, text string, pos video.Vector, alignment video.FontAlignment, layer int, color video.Color) {
	if text == "" {
		return
	}

	lines := strings.Split(text, "\n")
	y := pos.Y
	for _, line := range lines {
		x := alignOrigin(pos.X, b.lineWidth(line), alignment)
		if b.shadowSize > 0 {
			b.drawLine(canvas, line, video.Vec(x+b.shadowSize, y+b.shadowSize), layer, b.shadowColor)
		}
		b.drawLine(canvas, line, video.Vec(x, y), layer, color)
		y += b.glyphHeight
	}
}

// drawLine submits one batch request for a single line of text.
func (b *Bitmap) drawLine(canvas *video.Canvas, line string, pos video.Vector, layer int, color video.Color) {
	runes := []rune(line)
	if len(runes) == 0 {
		return
	}

	src := make([]video.Rectf, 0, len(runes))
	dst := make([]video.Rectf, 0, len(runes))
	x := pos.X
	for _, r := range runes {
		src = append(src, b.glyphRect(r))
		dst = append(dst, video.NewRectf(x, pos.Y, b.glyphWidth, b.glyphHeight))
		x += b.advance()
	}
	canvas.DrawSurfaceBatch(b.surface, src, dst, color, layer)
}

// lineWidth returns the rendered width of a single line.
func (b *Bitmap) lineWidth(line string) float64 {
	n := len([]rune(line))
	if n == 0 {
		return 0
	}
	return float64(n)*b.advance() - b.spacing
}

// TextWidth implements video.Font. For multi-line text it returns the
// widest line.
func (b *Bitmap) TextWidth(text string) float64 {
	var widest float64
	for _, line := range strings.Split(text, "\n") {
		if w := b.lineWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// TextHeight implements video.Font.
func (b *Bitmap) TextHeight(text string) float64 {
	if text == "" {
		return 0
	}
	lines := strings.Count(text, "\n") + 1
	return float64(lines) * b.glyphHeight
}

// alignOrigin shifts the pen start so the line lands left of, centered
// on, or right of x.
func alignOrigin(x, width float64, alignment video.FontAlignment) float64 {
	switch alignment {
	case video.AlignCenter:
		return x - width/2
	case video.AlignRight:
		return x - width
	default:
		return x
	}
}

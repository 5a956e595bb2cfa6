package font

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/serano01/supertux/video"
)

// quadSteps and cubeSteps control how finely bezier segments are
// flattened into line requests.
const (
	quadSteps = 8
	cubeSteps = 16
)

// Outline is a vector font backed by a TrueType or OpenType file.
// Glyphs are shaped with HarfBuzz (kerning, ligatures, script-aware
// reordering) and drawn as flattened outline strokes through the
// canvas line primitive.
//
// Outline is safe for concurrent use.
type Outline struct {
	gtFont *gtfont.Font
	sf     *sfnt.Font
	size   float64

	ascent     float64
	lineHeight float64

	// mu guards shaper and buf; neither is safe for concurrent use.
	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
}

// NewOutline parses the font file data and returns an outline font
// rendered at the given pixel size.
func NewOutline(data []byte, size float64) (*Outline, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font: invalid size %v", size)
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: parse: %w", err)
	}

	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse outlines: %w", err)
	}

	o := &Outline{
		gtFont: gtFace.Font,
		sf:     sf,
		size:   size,
	}

	metrics, err := sf.Metrics(&o.buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font: metrics: %w", err)
	}
	o.ascent = fixedToFloat(metrics.Ascent)
	o.lineHeight = fixedToFloat(metrics.Height)
	if o.lineHeight <= 0 {
		o.lineHeight = size * 1.25
	}

	return o, nil
}

// Size returns the pixel size the font renders at.
func (o *Outline) Size() float64 { return o.size }

// Draw implements video.Font. Text may contain newlines; each line is
// shaped and aligned independently. The position is the top-left of
// the first line.
func (o *Outline) Draw(canvas *video.Canvas, text string, pos video.Vector, alignment video.FontAlignment, layer int, color video.Color) {
	if text == "" {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	y := pos.Y
	for _, line := range strings.Split(text, "\n") {
		o.drawLine(canvas, line, pos.X, y, alignment, layer, color)
		y += o.lineHeight
	}
}

// drawLine shapes and strokes a single line at baseline y+ascent.
func (o *Outline) drawLine(canvas *video.Canvas, line string, x, y float64, alignment video.FontAlignment, layer int, color video.Color) {
	out, ok := o.shapeLine(line)
	if !ok {
		return
	}

	penX := alignOrigin(x, fixedToFloat(out.Advance), alignment)
	baseline := y + o.ascent

	for _, g := range out.Glyphs {
		gx := penX + fixedToFloat(g.XOffset)
		gy := baseline - fixedToFloat(g.YOffset)
		o.strokeGlyph(canvas, uint16(g.GlyphID), gx, gy, layer, color)
		penX += fixedToFloat(g.Advance)
	}
}

// shapeLine runs HarfBuzz shaping over one line. The caller must hold mu.
func (o *Outline) shapeLine(line string) (shaping.Output, bool) {
	runes := []rune(line)
	if len(runes) == 0 {
		return shaping.Output{}, false
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(line),
		Face:      gtfont.NewFace(o.gtFont),
		Size:      floatToFixed(o.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	return o.shaper.Shape(input), true
}

// strokeGlyph loads the glyph outline and submits it as flattened line
// strokes. The caller must hold mu.
func (o *Outline) strokeGlyph(canvas *video.Canvas, gid uint16, gx, gy float64, layer int, color video.Color) {
	segments, err := o.sf.LoadGlyph(&o.buf, sfnt.GlyphIndex(gid), floatToFixed(o.size), nil)
	if err != nil || len(segments) == 0 {
		return
	}

	var cur, start video.Vector
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open && cur != start {
				canvas.DrawLine(cur, start, color, layer)
			}
			cur = glyphPoint(seg.Args[0], gx, gy)
			start = cur
			open = true

		case sfnt.SegmentOpLineTo:
			p := glyphPoint(seg.Args[0], gx, gy)
			canvas.DrawLine(cur, p, color, layer)
			cur = p

		case sfnt.SegmentOpQuadTo:
			ctrl := glyphPoint(seg.Args[0], gx, gy)
			end := glyphPoint(seg.Args[1], gx, gy)
			prev := cur
			for i := 1; i <= quadSteps; i++ {
				t := float64(i) / quadSteps
				p := quadPoint(cur, ctrl, end, t)
				canvas.DrawLine(prev, p, color, layer)
				prev = p
			}
			cur = end

		case sfnt.SegmentOpCubeTo:
			c1 := glyphPoint(seg.Args[0], gx, gy)
			c2 := glyphPoint(seg.Args[1], gx, gy)
			end := glyphPoint(seg.Args[2], gx, gy)
			prev := cur
			for i := 1; i <= cubeSteps; i++ {
				t := float64(i) / cubeSteps
				p := cubePoint(cur, c1, c2, end, t)
				canvas.DrawLine(prev, p, color, layer)
				prev = p
			}
			cur = end
		}
	}
	// TrueType contours are implicitly closed.
	if open && cur != start {
		canvas.DrawLine(cur, start, color, layer)
	}
}

// TextWidth implements video.Font. For multi-line text it returns the
// widest line.
func (o *Outline) TextWidth(text string) float64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	var widest float64
	for _, line := range strings.Split(text, "\n") {
		out, ok := o.shapeLine(line)
		if !ok {
			continue
		}
		if w := fixedToFloat(out.Advance); w > widest {
			widest = w
		}
	}
	return widest
}

// TextHeight implements video.Font.
func (o *Outline) TextHeight(text string) float64 {
	if text == "" {
		return 0
	}
	lines := strings.Count(text, "\n") + 1
	return float64(lines) * o.lineHeight
}

// baseDirection returns the paragraph-level direction for shaping,
// detected per the Unicode bidirectional algorithm.
func baseDirection(line string) di.Direction {
	if line == "" {
		return di.DirectionLTR
	}

	var p bidi.Paragraph
	if _, err := p.SetString(line, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return di.DirectionLTR
	}
	if _, err := p.Order(); err != nil {
		return di.DirectionLTR
	}
	if p.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Mixed
// script text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// glyphPoint maps a Y-down 26.6 outline point to canvas coordinates
// relative to the glyph origin.
func glyphPoint(p fixed.Point26_6, gx, gy float64) video.Vector {
	return video.Vec(gx+fixedToFloat(p.X), gy+fixedToFloat(p.Y))
}

func quadPoint(p0, c, p1 video.Vector, t float64) video.Vector {
	u := 1 - t
	return video.Vec(
		u*u*p0.X+2*u*t*c.X+t*t*p1.X,
		u*u*p0.Y+2*u*t*c.Y+t*t*p1.Y)
}

func cubePoint(p0, c1, c2, p1 video.Vector, t float64) video.Vector {
	u := 1 - t
	return video.Vec(
		u*u*u*p0.X+3*u*u*t*c1.X+3*u*t*t*c2.X+t*t*t*p1.X,
		u*u*u*p0.Y+3*u*u*t*c1.Y+3*u*t*t*c2.Y+t*t*t*p1.Y)
}

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64.0 }

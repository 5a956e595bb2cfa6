package video

// FontAlignment positions text horizontally relative to the draw position.
type FontAlignment uint8

const (
	// AlignLeft places the draw position at the left edge of the text.
	AlignLeft FontAlignment = iota
	// AlignCenter centers the text on the draw position.
	AlignCenter
	// AlignRight places the draw position at the right edge of the text.
	AlignRight
)

// String returns a human-readable name for the alignment.
func (a FontAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Font lays text out as draw calls. Canvas.DrawText delegates to the
// font, which calls back into the canvas's own primitives (surface
// batches for atlas fonts, lines for outline fonts), so text flows
// through the same queue and layer ordering as everything else.
type Font interface {
	// Draw queues the text at pos, in world coordinates, on the canvas.
	Draw(canvas *Canvas, text string, pos Vector, alignment FontAlignment, layer int, color Color)

	// TextWidth returns the width of the widest line of text in pixels.
	TextWidth(text string) float64

	// TextHeight returns the total height of the text in pixels.
	TextHeight(text string) float64
}

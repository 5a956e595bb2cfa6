package video

// PixelResult is the one-shot output cell of a pixel query. It is shared
// between the call site that submitted Canvas.GetPixel and the painter
// that resolves it: written exactly once, either immediately (when the
// query falls outside the viewport) or synchronously during the flush
// that contains the request.
//
// Callers must not read the cell until the enqueuing frame's flush has
// completed. Reading earlier observes an unresolved cell, never a torn
// value: the whole pipeline runs on one thread.
type PixelResult struct {
	color    Color
	resolved bool
}

// NewPixelResult creates an unresolved cell.
func NewPixelResult() *PixelResult {
	return &PixelResult{}
}

// Get returns the sampled color and whether the cell has been resolved.
func (p *PixelResult) Get() (Color, bool) {
	return p.color, p.resolved
}

// Set resolves the cell. Resolving a cell twice is a programming error
// and panics: a cell belongs to exactly one query in exactly one frame.
func (p *PixelResult) Set(c Color) {
	if p.resolved {
		panic("video: PixelResult resolved twice")
	}
	p.color = c
	p.resolved = true
}

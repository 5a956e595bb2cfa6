package video

// Transform is an immutable snapshot of the drawing state a draw call
// submits under: camera translation, mirroring and a global alpha factor.
// The Canvas reads one snapshot per draw call and never caches it, so
// mutating the context between calls can never retroactively move a
// request that is already queued.
type Transform struct {
	Translation Vector
	Flip        Flip
	Alpha       float64
}

// Context supplies the active drawing state at submission time: the
// current transform, the clip rectangle used for cheap surface rejection,
// the viewport the canvas maps into, and the logical canvas size.
//
// All accessors are read-only from the canvas's point of view. The canvas
// queries them once per draw call and bakes the results into the request.
type Context interface {
	// Transform returns the active transform snapshot.
	Transform() Transform

	// ClipRect returns the active clip rectangle in world coordinates.
	ClipRect() Rectf

	// Viewport returns the device-space rectangle the canvas maps into.
	Viewport() Rect

	// Width returns the logical canvas width.
	Width() int

	// Height returns the logical canvas height.
	Height() int
}

// ViewContext is the standard Context implementation: a viewport plus a
// transform stack. Game code pushes a transform, adjusts translation,
// alpha or flip for a sub-scene, and pops it afterwards.
//
// ViewContext is not safe for concurrent use.
type ViewContext struct {
	width    int
	height   int
	viewport Rect
	clip     Rectf

	transform Transform
	stack     []Transform
}

// NewViewContext creates a context with a viewport at the origin and a
// clip rectangle covering the whole canvas.
func NewViewContext(width, height int) *ViewContext {
	return &ViewContext{
		width:     width,
		height:    height,
		viewport:  NewRect(0, 0, width, height),
		clip:      NewRectf(0, 0, float64(width), float64(height)),
		transform: Transform{Alpha: 1.0},
		stack:     make([]Transform, 0, 8),
	}
}

// Transform implements Context.
func (c *ViewContext) Transform() Transform { return c.transform }

// ClipRect implements Context.
func (c *ViewContext) ClipRect() Rectf { return c.clip }

// Viewport implements Context.
func (c *ViewContext) Viewport() Rect { return c.viewport }

// Width implements Context.
func (c *ViewContext) Width() int { return c.width }

// Height implements Context.
func (c *ViewContext) Height() int { return c.height }

// PushTransform saves the current transform on the stack.
func (c *ViewContext) PushTransform() {
	c.stack = append(c.stack, c.transform)
}

// PopTransform restores the most recently pushed transform.
// Popping an empty stack is a programming error and panics.
func (c *ViewContext) PopTransform() {
	if len(c.stack) == 0 {
		panic("video: PopTransform on empty transform stack")
	}
	c.transform = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SetTranslation replaces the camera translation.
func (c *ViewContext) SetTranslation(v Vector) {
	c.transform.Translation = v
}

// Translate shifts the camera translation by v.
func (c *ViewContext) Translate(v Vector) {
	c.transform.Translation = c.transform.Translation.Add(v)
}

// SetFlip replaces the active flip mask.
func (c *ViewContext) SetFlip(f Flip) {
	c.transform.Flip = f
}

// SetAlpha replaces the global alpha factor.
func (c *ViewContext) SetAlpha(a float64) {
	c.transform.Alpha = a
}

// Alpha returns the global alpha factor.
func (c *ViewContext) Alpha() float64 {
	return c.transform.Alpha
}

// SetClipRect replaces the clip rectangle.
func (c *ViewContext) SetClipRect(r Rectf) {
	c.clip = r
}

// SetViewport replaces the viewport rectangle.
func (c *ViewContext) SetViewport(r Rect) {
	c.viewport = r
}

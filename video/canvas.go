package video

import (
	"fmt"
	"sort"
)

// Canvas is the per-frame drawing request queue. Draw calls allocate a
// request from the frame arena, bake the context transform into its
// geometry and append it; Render flushes the queue to a Painter; Clear
// resets queue and arena for the next frame.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	context  Context
	arena    *Arena
	requests []Request
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*Canvas)

// WithArena injects the frame arena instead of letting the canvas create
// its own. The arena must be used by this canvas exclusively: Clear
// resets it.
func WithArena(a *Arena) CanvasOption {
	return func(c *Canvas) { c.arena = a }
}

// NewCanvas creates an empty canvas drawing under the given context.
// A nil context is a programming error and panics.
func NewCanvas(ctx Context, opts ...CanvasOption) *Canvas {
	if ctx == nil {
		panic("video: NewCanvas with nil context")
	}
	c := &Canvas{
		context:  ctx,
		requests: make([]Request, 0, 256),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.arena == nil {
		c.arena = NewArena()
	}
	return c
}

// Context returns the context the canvas draws under.
func (c *Canvas) Context() Context { return c.context }

// Arena returns the canvas's frame arena.
func (c *Canvas) Arena() *Arena { return c.arena }

// Len returns the number of queued requests.
func (c *Canvas) Len() int { return len(c.requests) }

// Clear drops every queued request and resets the frame arena. It must
// be called once per frame cycle, after all flushes relying on the queue
// have completed. Requests do not survive Clear; neither do arena
// pointers held elsewhere.
func (c *Canvas) Clear() {
	for i := range c.requests {
		c.requests[i] = nil
	}
	c.requests = c.requests[:0]
	c.arena.Reset()
}

// Render flushes the queue: it stably sorts the requests by layer,
// applies the band filter, and dispatches each surviving request to the
// painter's matching operation. The queue is left sorted but intact, so
// a second Render with a different filter sees the same requests.
//
// On a regular level each frame carries around 50-250 requests (before
// batching it was 1000-3000); the comparator runs roughly 3-7 times per
// request.
func (c *Canvas) Render(painter Painter, filter Filter) {
	sort.SliceStable(c.requests, func(i, j int) bool {
		return c.requests[i].base().Layer < c.requests[j].base().Layer
	})

	Logger().Debug("canvas flush", "requests", len(c.requests), "filter", filter)

	for _, req := range c.requests {
		if filter.skips(req.base().Layer) {
			continue
		}

		switch r := req.(type) {
		case *TextureRequest:
			painter.DrawTexture(r)
		case *GradientRequest:
			painter.DrawGradient(r)
		case *FillRectRequest:
			painter.DrawFilledRect(r)
		case *InverseEllipseRequest:
			painter.DrawInverseEllipse(r)
		case *LineRequest:
			painter.DrawLine(r)
		case *TriangleRequest:
			painter.DrawTriangle(r)
		case *GetPixelRequest:
			painter.GetPixel(r)
		default:
			// Unreachable: the Request interface is closed.
			panic(fmt.Sprintf("video: unhandled request type %v", req.Type()))
		}
	}
}

// DrawSurface queues the surface at pos with no rotation and a white
// tint.
func (c *Canvas) DrawSurface(surface *Surface, pos Vector, layer int) {
	c.DrawSurfaceStyled(surface, pos, 0.0, White, BlendBlend, layer)
}

// DrawSurfaceStyled queues the surface at pos, rotated by angle degrees,
// tinted and blended. Surfaces entirely outside the clip rectangle are
// rejected before any allocation happens.
func (c *Canvas) DrawSurfaceStyled(surface *Surface, pos Vector, angle float64, color Color, blend Blend, layer int) {
	if surface == nil {
		panic("video: DrawSurfaceStyled with nil surface")
	}

	clip := c.context.ClipRect()
	if pos.X > clip.MaxX ||
		pos.Y > clip.MaxY ||
		pos.X+surface.Width() < clip.MinX ||
		pos.Y+surface.Height() < clip.MinY {
		return
	}

	tf := c.context.Transform()

	request := c.arena.allocTexture()
	request.Layer = layer
	request.Flip = tf.Flip ^ surface.Flip()
	request.Alpha = tf.Alpha
	request.Angle = angle
	request.Blend = blend
	request.Color = color

	rects := c.arena.allocRects(2)
	rects[0] = surface.Region()
	rects[1] = RectfFromSize(c.applyTranslate(pos), Size(surface.Width(), surface.Height()))
	request.SrcRects = rects[:1:1]
	request.DstRects = rects[1:2:2]
	request.Texture = surface.Texture()
	request.DisplacementTexture = surface.DisplacementTexture()

	c.requests = append(c.requests, request)
}

// DrawSurfaceScaled queues the whole surface stretched into dst.
func (c *Canvas) DrawSurfaceScaled(surface *Surface, dst Rectf, layer int, style PaintStyle) {
	if surface == nil {
		panic("video: DrawSurfaceScaled with nil surface")
	}
	c.DrawSurfacePart(surface, surface.Region(), dst, layer, style)
}

// DrawSurfacePart queues the texture-space region src stretched into the
// world-space rectangle dst.
func (c *Canvas) DrawSurfacePart(surface *Surface, src, dst Rectf, layer int, style PaintStyle) {
	if surface == nil {
		panic("video: DrawSurfacePart with nil surface")
	}

	tf := c.context.Transform()

	request := c.arena.allocTexture()
	request.Layer = layer
	request.Flip = tf.Flip ^ surface.Flip()
	request.Alpha = tf.Alpha * style.Alpha()
	request.Blend = style.Blend()
	request.Color = style.Color()

	rects := c.arena.allocRects(2)
	rects[0] = src
	rects[1] = RectfFromSize(c.applyTranslate(dst.TopLeft()), dst.Size())
	request.SrcRects = rects[:1:1]
	request.DstRects = rects[1:2:2]
	request.Texture = surface.Texture()
	request.DisplacementTexture = surface.DisplacementTexture()

	c.requests = append(c.requests, request)
}

// DrawSurfaceBatch queues many regions of one texture with one shared
// tint as a single request. src and dst are parallel: src[i] in texture
// coordinates is painted into the world-space dst[i]. Batching repeated
// small sprites (tilemaps, glyph runs) cuts per-request dispatch
// overhead.
//
// Mismatched slice lengths are a programming error and panic; the batch
// is never silently truncated.
func (c *Canvas) DrawSurfaceBatch(surface *Surface, src, dst []Rectf, color Color, layer int) {
	if surface == nil {
		panic("video: DrawSurfaceBatch with nil surface")
	}
	if len(src) != len(dst) {
		panic(fmt.Sprintf("video: DrawSurfaceBatch rect count mismatch: %d src, %d dst", len(src), len(dst)))
	}

	tf := c.context.Transform()

	request := c.arena.allocTexture()
	request.Layer = layer
	request.Flip = tf.Flip ^ surface.Flip()
	request.Alpha = tf.Alpha
	request.Color = color

	n := len(src)
	rects := c.arena.allocRects(2 * n)
	srcrects := rects[:n:n]
	dstrects := rects[n : 2*n : 2*n]
	copy(srcrects, src)
	for i, d := range dst {
		dstrects[i] = RectfFromSize(c.applyTranslate(d.TopLeft()), d.Size())
	}
	request.SrcRects = srcrects
	request.DstRects = dstrects
	request.Texture = surface.Texture()
	request.DisplacementTexture = surface.DisplacementTexture()

	c.requests = append(c.requests, request)
}

// DrawText queues text through the font, which lays it out using the
// canvas's own primitives.
func (c *Canvas) DrawText(font Font, text string, pos Vector, alignment FontAlignment, layer int, color Color) {
	if font == nil {
		panic("video: DrawText with nil font")
	}
	font.Draw(c, text, pos, alignment, layer, color)
}

// DrawCenterText queues text centered horizontally on the canvas.
func (c *Canvas) DrawCenterText(font Font, text string, pos Vector, layer int, color Color) {
	center := Vec(pos.X+float64(c.context.Width())/2.0, pos.Y)
	c.DrawText(font, text, center, AlignCenter, layer, color)
}

// DrawGradient queues a gradient from top to bottom over the world-space
// region.
func (c *Canvas) DrawGradient(top, bottom Color, layer int, direction GradientDirection, region Rectf, blend Blend) {
	tf := c.context.Transform()

	request := c.arena.allocGradient()
	request.Layer = layer
	request.Flip = tf.Flip
	request.Alpha = tf.Alpha
	request.Blend = blend
	request.Top = top
	request.Bottom = bottom
	request.Direction = direction
	request.Region = RectfFromPoints(
		c.applyTranslate(region.TopLeft()),
		c.applyTranslate(region.BottomRight()))

	c.requests = append(c.requests, request)
}

// DrawFilledRect queues a sharp-cornered filled rectangle.
func (c *Canvas) DrawFilledRect(rect Rectf, color Color, layer int) {
	c.DrawRoundedRect(rect, color, 0.0, layer)
}

// DrawRoundedRect queues a filled rectangle with rounded corners.
// A radius of 0 gives sharp corners.
func (c *Canvas) DrawRoundedRect(rect Rectf, color Color, radius float64, layer int) {
	tf := c.context.Transform()

	request := c.arena.allocFillRect()
	request.Layer = layer
	request.Flip = tf.Flip
	request.Alpha = tf.Alpha
	request.Pos = c.applyTranslate(rect.TopLeft())
	request.Size = rect.Size()
	request.Color = color.MulAlpha(tf.Alpha)
	request.Radius = radius

	c.requests = append(c.requests, request)
}

// DrawInverseEllipse queues a fill of everything outside the ellipse
// centered at pos with axis extents size.
func (c *Canvas) DrawInverseEllipse(pos Vector, size Sizef, color Color, layer int) {
	tf := c.context.Transform()

	request := c.arena.allocInverseEllipse()
	request.Layer = layer
	request.Flip = tf.Flip
	request.Alpha = tf.Alpha
	request.Pos = c.applyTranslate(pos)
	request.Size = size
	request.Color = color.MulAlpha(tf.Alpha)

	c.requests = append(c.requests, request)
}

// DrawLine queues a line from pos1 to pos2.
func (c *Canvas) DrawLine(pos1, pos2 Vector, color Color, layer int) {
	tf := c.context.Transform()

	request := c.arena.allocLine()
	request.Layer = layer
	request.Flip = tf.Flip
	request.Alpha = tf.Alpha
	request.Pos = c.applyTranslate(pos1)
	request.DestPos = c.applyTranslate(pos2)
	request.Color = color.MulAlpha(tf.Alpha)

	c.requests = append(c.requests, request)
}

// DrawTriangle queues a filled triangle.
func (c *Canvas) DrawTriangle(pos1, pos2, pos3 Vector, color Color, layer int) {
	tf := c.context.Transform()

	request := c.arena.allocTriangle()
	request.Layer = layer
	request.Flip = tf.Flip
	request.Alpha = tf.Alpha
	request.Pos1 = c.applyTranslate(pos1)
	request.Pos2 = c.applyTranslate(pos2)
	request.Pos3 = c.applyTranslate(pos3)
	request.Color = color.MulAlpha(tf.Alpha)

	c.requests = append(c.requests, request)
}

// GetPixel queues a pixel query at pos, to be resolved into out during
// this frame's flush. A query outside the viewport resolves immediately
// to opaque black without queueing anything: there is no light offscreen.
//
// The caller must not read out before the flush completes, and must not
// reuse the cell across frames.
func (c *Canvas) GetPixel(pos Vector, out *PixelResult) {
	if out == nil {
		panic("video: GetPixel with nil result cell")
	}

	p := c.applyTranslate(pos)
	vp := c.context.Viewport()
	if p.X < 0 || p.Y < 0 ||
		p.X >= float64(vp.W) || p.Y >= float64(vp.H) {
		out.Set(Black)
		return
	}

	request := c.arena.allocGetPixel()
	request.Layer = LayerGetPixel
	request.Pos = p
	request.Result = out

	c.requests = append(c.requests, request)
}

// applyTranslate maps a world-space position into device space: the
// floored camera translation is subtracted and the viewport origin
// added. Applied exactly once per positional field, at submission.
func (c *Canvas) applyTranslate(pos Vector) Vector {
	translation := c.context.Transform().Translation.Floor()
	vp := c.context.Viewport()
	return pos.Sub(translation).Add(Vec(float64(vp.X), float64(vp.Y)))
}

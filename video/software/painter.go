// Package software provides a CPU painter for the video request queue.
//
// The painter rasterizes every request variant into an *image.RGBA
// target. It is the reference Painter implementation: correct and
// dependency-free at runtime, with quality/speed selected per texture
// blit through an interpolation option. Register-by-name is supported
// via the video painter registry under the name "software".
package software

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/serano01/supertux/video"
)

func init() {
	video.Register("software", func(cfg video.PainterConfig) (video.Painter, error) {
		return New(cfg.Width, cfg.Height), nil
	})
}

// Interpolation selects the resampling filter for scaled texture blits.
type Interpolation uint8

const (
	// InterpolationBilinear resamples with the approximate bilinear
	// filter (default).
	InterpolationBilinear Interpolation = iota
	// InterpolationNearest resamples with nearest-neighbor (pixel-art).
	InterpolationNearest
)

// Painter rasterizes drawing requests into an RGBA image.
//
// Painter is not safe for concurrent use.
type Painter struct {
	target *image.RGBA
	interp Interpolation
}

// Option configures a Painter during creation.
type Option func(*Painter)

// WithInterpolation selects the resampling filter for texture blits.
func WithInterpolation(i Interpolation) Option {
	return func(p *Painter) { p.interp = i }
}

// New creates a painter with a fresh target of the given dimensions.
func New(width, height int, opts ...Option) *Painter {
	return NewForImage(image.NewRGBA(image.Rect(0, 0, width, height)), opts...)
}

// NewForImage creates a painter rasterizing into an existing image.
// The image is used directly, not copied.
func NewForImage(img *image.RGBA, opts ...Option) *Painter {
	p := &Painter{target: img}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Target returns the image the painter rasterizes into.
func (p *Painter) Target() *image.RGBA { return p.target }

// scaler returns the x/image interpolator for the configured filter.
func (p *Painter) scaler() xdraw.Interpolator {
	if p.interp == InterpolationNearest {
		return xdraw.NearestNeighbor
	}
	return xdraw.ApproxBiLinear
}

// DrawTexture implements video.Painter.
func (p *Painter) DrawTexture(req *video.TextureRequest) {
	src := req.Texture.Image()
	if src == nil {
		panic("software: texture has no CPU pixels")
	}

	for i := range req.SrcRects {
		p.blitTexture(src, req.SrcRects[i], req.DstRects[i], req)
	}
}

// blitTexture paints one src/dst rect pair.
func (p *Painter) blitTexture(src *image.RGBA, srcRect, dstRect video.Rectf, req *video.TextureRequest) {
	// Fast path: plain axis-aligned blit with no tint, flip or rotation.
	if req.Angle == 0 && req.Flip == video.NoFlip &&
		req.Color == video.White && req.Alpha >= 1.0 &&
		req.Blend == video.BlendBlend {
		p.scaler().Scale(p.target, rectToImage(dstRect), src, rectToImage(srcRect), xdraw.Over, nil)
		return
	}

	dr := rectToImage(dstRect)
	dw := dstRect.Width()
	dh := dstRect.Height()
	if dw <= 0 || dh <= 0 {
		return
	}

	alpha := req.Alpha * req.Color.A
	sin, cos := 0.0, 1.0
	if req.Angle != 0 {
		rad := req.Angle * math.Pi / 180
		sin, cos = math.Sin(rad), math.Cos(rad)
	}
	cx := dstRect.MinX + dw/2
	cy := dstRect.MinY + dh/2

	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			// Inverse-rotate the pixel center around the dstrect center.
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5
			if req.Angle != 0 {
				ox, oy := fx-cx, fy-cy
				fx = cx + ox*cos + oy*sin
				fy = cy - ox*sin + oy*cos
				if fx < dstRect.MinX || fx >= dstRect.MaxX ||
					fy < dstRect.MinY || fy >= dstRect.MaxY {
					continue
				}
			}

			// Map into the source rect, honoring the flip mask.
			u := (fx - dstRect.MinX) / dw
			v := (fy - dstRect.MinY) / dh
			if req.Flip&video.HorizontalFlip != 0 {
				u = 1 - u
			}
			if req.Flip&video.VerticalFlip != 0 {
				v = 1 - v
			}
			sx := int(srcRect.MinX + u*srcRect.Width())
			sy := int(srcRect.MinY + v*srcRect.Height())
			if sx < src.Bounds().Min.X || sx >= src.Bounds().Max.X ||
				sy < src.Bounds().Min.Y || sy >= src.Bounds().Max.Y {
				continue
			}

			c := video.FromColor(src.RGBAAt(sx, sy))
			c.R *= req.Color.R
			c.G *= req.Color.G
			c.B *= req.Color.B
			c.A *= alpha
			p.blendPixel(x, y, c, req.Blend)
		}
	}
}

// DrawGradient implements video.Painter.
func (p *Painter) DrawGradient(req *video.GradientRequest) {
	dr := rectToImage(req.Region).Intersect(p.target.Bounds())
	if dr.Empty() {
		return
	}

	w := req.Region.Width()
	h := req.Region.Height()

	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			var t float64
			if req.Direction == video.HorizontalGradient {
				t = (float64(x) + 0.5 - req.Region.MinX) / w
			} else {
				t = (float64(y) + 0.5 - req.Region.MinY) / h
			}
			c := lerpColor(req.Top, req.Bottom, t)
			c.A *= req.Alpha
			p.blendPixel(x, y, c, req.Blend)
		}
	}
}

// DrawFilledRect implements video.Painter.
func (p *Painter) DrawFilledRect(req *video.FillRectRequest) {
	rect := video.RectfFromSize(req.Pos, req.Size)
	dr := rectToImage(rect).Intersect(p.target.Bounds())
	if dr.Empty() {
		return
	}

	radius := req.Radius
	maxRadius := math.Min(req.Size.Width, req.Size.Height) / 2
	if radius > maxRadius {
		radius = maxRadius
	}

	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if radius > 0 && !insideRoundedRect(float64(x)+0.5, float64(y)+0.5, rect, radius) {
				continue
			}
			p.blendPixel(x, y, req.Color, video.BlendBlend)
		}
	}
}

// insideRoundedRect reports whether the point lies inside the rectangle
// with the given corner radius.
func insideRoundedRect(x, y float64, rect video.Rectf, radius float64) bool {
	cx := clampf(x, rect.MinX+radius, rect.MaxX-radius)
	cy := clampf(y, rect.MinY+radius, rect.MaxY-radius)
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= radius*radius
}

// DrawInverseEllipse implements video.Painter.
func (p *Painter) DrawInverseEllipse(req *video.InverseEllipseRequest) {
	rx := req.Size.Width / 2
	ry := req.Size.Height / 2
	if rx <= 0 || ry <= 0 {
		return
	}

	b := p.target.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - req.Pos.X) / rx
			dy := (float64(y) + 0.5 - req.Pos.Y) / ry
			if dx*dx+dy*dy <= 1 {
				continue
			}
			p.blendPixel(x, y, req.Color, video.BlendBlend)
		}
	}
}

// DrawLine implements video.Painter.
func (p *Painter) DrawLine(req *video.LineRequest) {
	dx := req.DestPos.X - req.Pos.X
	dy := req.DestPos.Y - req.Pos.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		p.blendPixel(int(req.Pos.X), int(req.Pos.Y), req.Color, video.BlendBlend)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(req.Pos.X + dx*t)
		y := int(req.Pos.Y + dy*t)
		p.blendPixel(x, y, req.Color, video.BlendBlend)
	}
}

// DrawTriangle implements video.Painter.
func (p *Painter) DrawTriangle(req *video.TriangleRequest) {
	minX := int(math.Floor(min(req.Pos1.X, req.Pos2.X, req.Pos3.X)))
	maxX := int(math.Ceil(max(req.Pos1.X, req.Pos2.X, req.Pos3.X)))
	minY := int(math.Floor(min(req.Pos1.Y, req.Pos2.Y, req.Pos3.Y)))
	maxY := int(math.Ceil(max(req.Pos1.Y, req.Pos2.Y, req.Pos3.Y)))

	b := p.target.Bounds()
	minX = max(minX, b.Min.X)
	minY = max(minY, b.Min.Y)
	maxX = min(maxX, b.Max.X)
	maxY = min(maxY, b.Max.Y)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			d1 := edge(px, py, req.Pos1, req.Pos2)
			d2 := edge(px, py, req.Pos2, req.Pos3)
			d3 := edge(px, py, req.Pos3, req.Pos1)
			hasNeg := d1 < 0 || d2 < 0 || d3 < 0
			hasPos := d1 > 0 || d2 > 0 || d3 > 0
			if hasNeg && hasPos {
				continue
			}
			p.blendPixel(x, y, req.Color, video.BlendBlend)
		}
	}
}

// edge is the signed area of the triangle (a, b, p), used as an
// inside/outside test.
func edge(px, py float64, a, b video.Vector) float64 {
	return (px-b.X)*(a.Y-b.Y) - (a.X-b.X)*(py-b.Y)
}

// GetPixel implements video.Painter. The cell is resolved before the
// call returns; out-of-target positions resolve to opaque black.
func (p *Painter) GetPixel(req *video.GetPixelRequest) {
	x := int(req.Pos.X)
	y := int(req.Pos.Y)
	b := p.target.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		req.Result.Set(video.Black)
		return
	}
	req.Result.Set(video.FromColor(p.target.RGBAAt(x, y)))
}

// blendPixel composites c onto the target pixel with the given blend
// equation. Out-of-bounds writes are silently dropped.
func (p *Painter) blendPixel(x, y int, c video.Color, blend video.Blend) {
	b := p.target.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}

	switch blend {
	case video.BlendNone:
		p.set(x, y, video.Color{R: c.R, G: c.G, B: c.B, A: 1})

	case video.BlendAdd:
		d := video.FromColor(p.target.RGBAAt(x, y))
		p.set(x, y, video.Color{
			R: clamp01(d.R + c.R*c.A),
			G: clamp01(d.G + c.G*c.A),
			B: clamp01(d.B + c.B*c.A),
			A: d.A,
		})

	case video.BlendMod:
		d := video.FromColor(p.target.RGBAAt(x, y))
		p.set(x, y, video.Color{R: d.R * c.R, G: d.G * c.G, B: d.B * c.B, A: d.A})

	default: // source-over
		if c.A <= 0 {
			return
		}
		d := video.FromColor(p.target.RGBAAt(x, y))
		outA := c.A + d.A*(1-c.A)
		if outA <= 0 {
			p.set(x, y, video.Color{})
			return
		}
		p.set(x, y, video.Color{
			R: (c.R*c.A + d.R*d.A*(1-c.A)) / outA,
			G: (c.G*c.A + d.G*d.A*(1-c.A)) / outA,
			B: (c.B*c.A + d.B*d.A*(1-c.A)) / outA,
			A: outA,
		})
	}
}

// set stores a non-premultiplied color into the premultiplied target.
func (p *Painter) set(x, y int, c video.Color) {
	p.target.SetRGBA(x, y, color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	})
}

// rectToImage rounds a Rectf to the integer pixel rectangle it covers.
func rectToImage(r video.Rectf) image.Rectangle {
	return image.Rect(
		int(math.Round(r.MinX)), int(math.Round(r.MinY)),
		int(math.Round(r.MaxX)), int(math.Round(r.MaxY)))
}

func lerpColor(a, b video.Color, t float64) video.Color {
	return video.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}


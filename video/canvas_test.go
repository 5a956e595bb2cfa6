package video

import (
	"image"
	"strings"
	"testing"
)

// capturePainter records every dispatched request in dispatch order.
type capturePainter struct {
	types     []RequestType
	layers    []int
	textures  []*TextureRequest
	fillRects []*FillRectRequest
	lines     []*LineRequest
	pixel     Color
}

func (p *capturePainter) record(t RequestType, layer int) {
	p.types = append(p.types, t)
	p.layers = append(p.layers, layer)
}

func (p *capturePainter) DrawTexture(req *TextureRequest) {
	p.record(RequestTexture, req.Layer)
	p.textures = append(p.textures, req)
}

func (p *capturePainter) DrawGradient(req *GradientRequest) {
	p.record(RequestGradient, req.Layer)
}

func (p *capturePainter) DrawFilledRect(req *FillRectRequest) {
	p.record(RequestFillRect, req.Layer)
	p.fillRects = append(p.fillRects, req)
}

func (p *capturePainter) DrawInverseEllipse(req *InverseEllipseRequest) {
	p.record(RequestInverseEllipse, req.Layer)
}

func (p *capturePainter) DrawLine(req *LineRequest) {
	p.record(RequestLine, req.Layer)
	p.lines = append(p.lines, req)
}

func (p *capturePainter) DrawTriangle(req *TriangleRequest) {
	p.record(RequestTriangle, req.Layer)
}

func (p *capturePainter) GetPixel(req *GetPixelRequest) {
	p.record(RequestGetPixel, req.Layer)
	req.Result.Set(p.pixel)
}

func testSurface(w, h int) *Surface {
	return NewSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func newTestCanvas(w, h int) (*Canvas, *ViewContext) {
	ctx := NewViewContext(w, h)
	return NewCanvas(ctx), ctx
}

func TestRenderSortsByLayer(t *testing.T) {
	canvas, _ := newTestCanvas(800, 600)

	canvas.DrawFilledRect(NewRectf(0, 0, 10, 10), White, 100)
	canvas.DrawLine(Vec(0, 0), Vec(5, 5), White, -50)
	canvas.DrawTriangle(Vec(0, 0), Vec(1, 0), Vec(0, 1), White, 100)
	canvas.DrawGradient(Black, White, 0, VerticalGradient, NewRectf(0, 0, 10, 10), BlendBlend)

	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)

	wantLayers := []int{-50, 0, 100, 100}
	if len(painter.layers) != len(wantLayers) {
		t.Fatalf("dispatched %d requests, want %d", len(painter.layers), len(wantLayers))
	}
	for i, want := range wantLayers {
		if painter.layers[i] != want {
			t.Errorf("dispatch %d: layer = %d, want %d", i, painter.layers[i], want)
		}
	}

	// Same layer keeps submission order: the rect was queued before the
	// triangle.
	if painter.types[2] != RequestFillRect || painter.types[3] != RequestTriangle {
		t.Errorf("same-layer order = %v, %v, want FillRect then Triangle", painter.types[2], painter.types[3])
	}
}

func TestRenderStableWithinLayer(t *testing.T) {
	canvas, _ := newTestCanvas(800, 600)

	for i := 0; i < 8; i++ {
		canvas.DrawLine(Vec(float64(i), 0), Vec(float64(i), 10), White, 50)
	}

	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)

	if len(painter.lines) != 8 {
		t.Fatalf("dispatched %d lines, want 8", len(painter.lines))
	}
	for i, req := range painter.lines {
		if req.Pos.X != float64(i) {
			t.Errorf("line %d: Pos.X = %v, want %v", i, req.Pos.X, float64(i))
		}
	}
}

func TestRenderFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"all", FilterAll, []int{LayerLightmap - 1, LayerLightmap, LayerLightmap + 1}},
		{"below lightmap", FilterBelowLightmap, []int{LayerLightmap - 1}},
		{"above lightmap", FilterAboveLightmap, []int{LayerLightmap + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas, _ := newTestCanvas(800, 600)
			canvas.DrawLine(Vec(0, 0), Vec(1, 1), White, LayerLightmap-1)
			canvas.DrawLine(Vec(0, 0), Vec(1, 1), White, LayerLightmap)
			canvas.DrawLine(Vec(0, 0), Vec(1, 1), White, LayerLightmap+1)

			painter := &capturePainter{}
			canvas.Render(painter, tt.filter)

			if len(painter.layers) != len(tt.want) {
				t.Fatalf("dispatched layers %v, want %v", painter.layers, tt.want)
			}
			for i, want := range tt.want {
				if painter.layers[i] != want {
					t.Errorf("dispatch %d: layer = %d, want %d", i, painter.layers[i], want)
				}
			}
		})
	}
}

func TestRenderTwicePreservesQueue(t *testing.T) {
	canvas, _ := newTestCanvas(800, 600)
	canvas.DrawFilledRect(NewRectf(0, 0, 10, 10), White, LayerTiles)
	canvas.DrawFilledRect(NewRectf(0, 0, 10, 10), White, LayerHUD)

	painter := &capturePainter{}
	canvas.Render(painter, FilterBelowLightmap)
	canvas.Render(painter, FilterAboveLightmap)

	if got := canvas.Len(); got != 2 {
		t.Errorf("Len() after two renders = %d, want 2", got)
	}
	want := []int{LayerTiles, LayerHUD}
	if len(painter.layers) != 2 || painter.layers[0] != want[0] || painter.layers[1] != want[1] {
		t.Errorf("dispatched layers %v, want %v", painter.layers, want)
	}
}

func TestTransformBakedAtSubmission(t *testing.T) {
	canvas, ctx := newTestCanvas(800, 600)

	ctx.SetTranslation(Vec(10, 0))
	canvas.DrawLine(Vec(100, 100), Vec(110, 100), White, 0)
	ctx.SetTranslation(Vec(50, 0))
	canvas.DrawLine(Vec(100, 100), Vec(110, 100), White, 0)

	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)

	if got := painter.lines[0].Pos.X; got != 90 {
		t.Errorf("first line Pos.X = %v, want 90", got)
	}
	if got := painter.lines[1].Pos.X; got != 50 {
		t.Errorf("second line Pos.X = %v, want 50", got)
	}
}

func TestApplyTranslateFloorsTranslation(t *testing.T) {
	canvas, ctx := newTestCanvas(800, 600)
	ctx.SetTranslation(Vec(10.7, 5.2))

	canvas.DrawLine(Vec(0, 0), Vec(1, 1), White, 0)

	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)

	got := painter.lines[0].Pos
	if got.X != -10 || got.Y != -5 {
		t.Errorf("Pos = %v, want (-10, -5)", got)
	}
}

func TestApplyTranslateAddsViewportOrigin(t *testing.T) {
	canvas, ctx := newTestCanvas(800, 600)
	ctx.SetViewport(NewRect(100, 50, 800, 600))

	canvas.DrawLine(Vec(0, 0), Vec(1, 1), White, 0)

	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)

	got := painter.lines[0].Pos
	if got.X != 100 || got.Y != 50 {
		t.Errorf("Pos = %v, want (100, 50)", got)
	}
}

func TestDrawSurfaceFlipComposition(t *testing.T) {
	tests := []struct {
		name    string
		context Flip
		surface Flip
		want    Flip
	}{
		{"neither", NoFlip, NoFlip, NoFlip},
		{"context only", HorizontalFlip, NoFlip, HorizontalFlip},
		{"surface only", NoFlip, VerticalFlip, VerticalFlip},
		{"both cancel", HorizontalFlip, HorizontalFlip, NoFlip},
		{"both combine", HorizontalFlip, VerticalFlip, HorizontalFlip | VerticalFlip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas, ctx := newTestCanvas(800, 600)
			ctx.SetFlip(tt.context)
			surface := testSurface(16, 16).Flipped(tt.surface)

			canvas.DrawSurface(surface, Vec(0, 0), 0)

			painter := &capturePainter{}
			canvas.Render(painter, FilterAll)

			if got := painter.textures[0].Flip; got != tt.want {
				t.Errorf("Flip = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawSurfaceClipRejection(t *testing.T) {
	tests := []struct {
		name string
		pos  Vector
	}{
		{"right of clip", Vec(801, 0)},
		{"below clip", Vec(0, 601)},
		{"left of clip", Vec(-17, 0)},
		{"above clip", Vec(0, -17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas, _ := newTestCanvas(800, 600)
			surface := testSurface(16, 16)

			canvas.DrawSurface(surface, tt.pos, 0)

			if got := canvas.Len(); got != 0 {
				t.Errorf("Len() = %d, want 0", got)
			}
			if got := canvas.Arena().Len(); got != 0 {
				t.Errorf("Arena().Len() = %d, want 0", got)
			}
		})
	}
}

func TestDrawSurfaceEdgeTouchingNotRejected(t *testing.T) {
	canvas, _ := newTestCanvas(800, 600)
	surface := testSurface(16, 16)

	// Exactly touching the clip edge still queues.
	canvas.DrawSurface(surface, Vec(800, 0), 0)
	canvas.DrawSurface(surface, Vec(-16, 0), 0)

	if got := canvas.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestDrawSurfaceAlphaStaysSeparate(t *testing.T) {
	canvas, ctx := newTestCanvas(800, 600)
	ctx.SetAlpha(0.5)
	surface := testSurface(16, 16)

	canvas.DrawSurfaceStyled(surface, Vec(0, 0), 0, RGBA(1, 1, 1, 0.8), BlendBlend, 0)

	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)

	req := painter.textures[0]
	if req.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", req.Alpha)
	}
	if req.Color.A != 0.8 {
		t.Errorf("Color.A = %v, want 0.8 (tint alpha must not fold into context alpha)", req.Color.A)
	}
}

func TestDrawSurfacePartMultipliesStyleAlpha(t *testing.T) {
	canvas, ctx := newTestCanvas(800, 600)
	ctx.SetAlpha(0.5)
	surface := testSurface(16, 16)

	style := NewPaintStyle().WithAlpha(0.5)
	canvas.DrawSurfacePart(surface, surface.Region(), NewRectf(0, 0, 32, 32), 0, style)

	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)

	if got := painter.textures[0].Alpha; got != 0.25 {
		t.Errorf("Alpha = %v, want 0.25", got)
	}
}

func TestFillRectFoldsContextAlpha(t *testing.T) {
	canvas, ctx := newTestCanvas(800, 600)
	ctx.SetAlpha(0.5)

	canvas.DrawFilledRect(NewRectf(0, 0, 10, 10), RGBA(1, 0, 0, 0.8), 0)

	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)

	if got := painter.fillRects[0].Color.A; got != 0.4 {
		t.Errorf("Color.A = %v, want 0.4", got)
	}
}

func TestDrawSurfaceBatch(t *testing.T) {
	canvas, ctx := newTestCanvas(800, 600)
	ctx.SetTranslation(Vec(10, 0))
	surface := testSurface(64, 64)

	src := []Rectf{NewRectf(0, 0, 16, 16), NewRectf(16, 0, 16, 16)}
	dst := []Rectf{NewRectf(100, 100, 16, 16), NewRectf(120, 100, 16, 16)}
	canvas.DrawSurfaceBatch(surface, src, dst, White, 0)

	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)

	req := painter.textures[0]
	if len(req.SrcRects) != 2 || len(req.DstRects) != 2 {
		t.Fatalf("rect counts = %d src, %d dst, want 2, 2", len(req.SrcRects), len(req.DstRects))
	}
	// Texture-space rects pass through untranslated.
	if req.SrcRects[0] != src[0] || req.SrcRects[1] != src[1] {
		t.Errorf("SrcRects = %v, want %v", req.SrcRects, src)
	}
	// World-space rects get the camera translation.
	if req.DstRects[0].MinX != 90 || req.DstRects[1].MinX != 110 {
		t.Errorf("DstRects MinX = %v, %v, want 90, 110", req.DstRects[0].MinX, req.DstRects[1].MinX)
	}
}

func TestDrawSurfaceBatchMismatchPanics(t *testing.T) {
	canvas, _ := newTestCanvas(800, 600)
	surface := testSurface(64, 64)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on mismatched rect counts")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "mismatch") {
			t.Errorf("panic = %v, want rect count mismatch message", r)
		}
	}()
	canvas.DrawSurfaceBatch(surface, make([]Rectf, 2), make([]Rectf, 3), White, 0)
}

func TestGetPixelOffViewport(t *testing.T) {
	canvas, _ := newTestCanvas(800, 600)

	out := NewPixelResult()
	canvas.GetPixel(Vec(-5, 10), out)

	c, ok := out.Get()
	if !ok {
		t.Fatal("off-viewport query not resolved synchronously")
	}
	if c != Black {
		t.Errorf("color = %v, want opaque black", c)
	}
	if got := canvas.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestGetPixelResolvedDuringRender(t *testing.T) {
	canvas, _ := newTestCanvas(800, 600)

	out := NewPixelResult()
	canvas.GetPixel(Vec(400, 300), out)

	if _, ok := out.Get(); ok {
		t.Fatal("in-viewport query resolved before flush")
	}

	painter := &capturePainter{pixel: RGB(0, 1, 0)}
	canvas.Render(painter, FilterAll)

	c, ok := out.Get()
	if !ok {
		t.Fatal("query not resolved by flush")
	}
	if c != RGB(0, 1, 0) {
		t.Errorf("color = %v, want %v", c, RGB(0, 1, 0))
	}
	if got := painter.layers[0]; got != LayerGetPixel {
		t.Errorf("query layer = %d, want %d", got, LayerGetPixel)
	}
}

func TestClearResetsQueueAndArena(t *testing.T) {
	canvas, _ := newTestCanvas(800, 600)
	surface := testSurface(16, 16)

	canvas.DrawSurface(surface, Vec(0, 0), 0)
	canvas.DrawFilledRect(NewRectf(0, 0, 10, 10), White, 0)
	canvas.Clear()

	if got := canvas.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
	if got := canvas.Arena().Len(); got != 0 {
		t.Errorf("Arena().Len() after Clear = %d, want 0", got)
	}

	// The canvas is immediately usable for the next frame.
	canvas.DrawLine(Vec(0, 0), Vec(1, 1), White, 0)
	painter := &capturePainter{}
	canvas.Render(painter, FilterAll)
	if len(painter.lines) != 1 {
		t.Errorf("dispatched %d lines after Clear, want 1", len(painter.lines))
	}
}

// argFont records the draw arguments it was handed.
type argFont struct {
	text      string
	pos       Vector
	alignment FontAlignment
	layer     int
	color     Color
}

func (f *argFont) Draw(canvas *Canvas, text string, pos Vector, alignment FontAlignment, layer int, color Color) {
	f.text = text
	f.pos = pos
	f.alignment = alignment
	f.layer = layer
	f.color = color
}

func (f *argFont) TextWidth(text string) float64  { return float64(len(text)) * 8 }
func (f *argFont) TextHeight(text string) float64 { return 16 }

func TestDrawCenterText(t *testing.T) {
	canvas, _ := newTestCanvas(800, 600)

	font := &argFont{}
	canvas.DrawCenterText(font, "hello", Vec(0, 10), LayerHUD, White)

	if font.alignment != AlignCenter {
		t.Errorf("alignment = %v, want AlignCenter", font.alignment)
	}
	if font.pos.X != 400 {
		t.Errorf("pos.X = %v, want 400", font.pos.X)
	}
	if font.layer != LayerHUD {
		t.Errorf("layer = %d, want %d", font.layer, LayerHUD)
	}
}

func TestNewCanvasNilContextPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil context")
		}
	}()
	NewCanvas(nil)
}

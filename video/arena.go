package video

// Arena is the per-frame allocator behind a Canvas. Requests are carved
// from typed slices that grow on demand; Reset truncates every slice
// without releasing the backing arrays, so after the first few frames a
// steady-state scene allocates nothing per frame.
//
// There is no per-request free. Every pointer an alloc method returns is
// valid until Reset; using one afterwards is a caller bug. Only the
// owning Canvas calls Reset, from Canvas.Clear, after it has dropped all
// queued request references.
//
// Arena is not safe for concurrent use.
type Arena struct {
	textures  []TextureRequest
	gradients []GradientRequest
	fillRects []FillRectRequest
	ellipses  []InverseEllipseRequest
	lines     []LineRequest
	triangles []TriangleRequest
	pixels    []GetPixelRequest

	// rects backs the src/dst rect slices of texture requests.
	rects []Rectf
}

// NewArena creates an empty frame arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of requests allocated since the last Reset.
func (a *Arena) Len() int {
	return len(a.textures) + len(a.gradients) + len(a.fillRects) +
		len(a.ellipses) + len(a.lines) + len(a.triangles) + len(a.pixels)
}

// Reset discards all allocations, retaining capacity for the next frame.
// Every pointer previously returned by an alloc method is invalidated.
func (a *Arena) Reset() {
	a.textures = a.textures[:0]
	a.gradients = a.gradients[:0]
	a.fillRects = a.fillRects[:0]
	a.ellipses = a.ellipses[:0]
	a.lines = a.lines[:0]
	a.triangles = a.triangles[:0]
	a.pixels = a.pixels[:0]
	a.rects = a.rects[:0]
}

func (a *Arena) allocTexture() *TextureRequest {
	a.textures = append(a.textures, TextureRequest{})
	return &a.textures[len(a.textures)-1]
}

func (a *Arena) allocGradient() *GradientRequest {
	a.gradients = append(a.gradients, GradientRequest{})
	return &a.gradients[len(a.gradients)-1]
}

func (a *Arena) allocFillRect() *FillRectRequest {
	a.fillRects = append(a.fillRects, FillRectRequest{})
	return &a.fillRects[len(a.fillRects)-1]
}

func (a *Arena) allocInverseEllipse() *InverseEllipseRequest {
	a.ellipses = append(a.ellipses, InverseEllipseRequest{})
	return &a.ellipses[len(a.ellipses)-1]
}

func (a *Arena) allocLine() *LineRequest {
	a.lines = append(a.lines, LineRequest{})
	return &a.lines[len(a.lines)-1]
}

func (a *Arena) allocTriangle() *TriangleRequest {
	a.triangles = append(a.triangles, TriangleRequest{})
	return &a.triangles[len(a.triangles)-1]
}

func (a *Arena) allocGetPixel() *GetPixelRequest {
	a.pixels = append(a.pixels, GetPixelRequest{})
	return &a.pixels[len(a.pixels)-1]
}

// allocRects carves a zeroed rect slice of length n out of the arena.
// The returned slice is capped at n so later arena growth cannot write
// through it.
func (a *Arena) allocRects(n int) []Rectf {
	start := len(a.rects)
	for i := 0; i < n; i++ {
		a.rects = append(a.rects, Rectf{})
	}
	return a.rects[start : start+n : start+n]
}

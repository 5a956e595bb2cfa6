package video

// RequestType identifies the variant of a drawing request.
type RequestType uint8

const (
	// RequestTexture blits one or more regions of a texture.
	RequestTexture RequestType = iota
	// RequestGradient fills a region with a two-color gradient.
	RequestGradient
	// RequestFillRect fills an axis-aligned, optionally rounded rectangle.
	RequestFillRect
	// RequestInverseEllipse fills everything outside an ellipse.
	RequestInverseEllipse
	// RequestLine draws a line between two points.
	RequestLine
	// RequestTriangle fills a triangle.
	RequestTriangle
	// RequestGetPixel reads one pixel back from the target.
	RequestGetPixel
)

// requestTypeNames maps RequestType values to their string representation.
var requestTypeNames = [...]string{
	RequestTexture:        "Texture",
	RequestGradient:       "Gradient",
	RequestFillRect:       "FillRect",
	RequestInverseEllipse: "InverseEllipse",
	RequestLine:           "Line",
	RequestTriangle:       "Triangle",
	RequestGetPixel:       "GetPixel",
}

// String returns the string representation of a RequestType.
func (t RequestType) String() string {
	if int(t) < len(requestTypeNames) {
		return requestTypeNames[t]
	}
	return "Unknown"
}

// RequestBase carries the fields shared by every request variant. All
// geometry in a request is in device space, and any context alpha that
// applies to a stored color has already been folded in at submission
// time; the flush stage never recomputes either.
type RequestBase struct {
	// Layer is the paint-order key. Lower layers dispatch first;
	// requests at the same layer dispatch in submission order.
	Layer int
	// Flip is the combined context and surface mirroring.
	Flip Flip
	// Alpha is the context alpha for variants that do not fold it into
	// their color (texture and gradient requests).
	Alpha float64
}

func (b *RequestBase) base() *RequestBase { return b }

// Request is the interface satisfied by every drawing request variant.
// The variant set is closed: the unexported method prevents outside
// implementations, so the dispatch switch in Canvas.Render is exhaustive
// by construction.
type Request interface {
	// Type returns the variant tag.
	Type() RequestType

	base() *RequestBase
}

// TextureRequest blits regions of a texture. SrcRects and DstRects are
// parallel: SrcRects[i] in texture coordinates is painted into the
// device-space DstRects[i]. A single draw call produces one pair; a batch
// call produces many pairs sharing one texture and tint.
type TextureRequest struct {
	RequestBase

	Blend Blend
	Angle float64 // rotation in degrees around each dstrect center
	Color Color   // tint; context alpha is NOT folded in, see Alpha

	SrcRects []Rectf
	DstRects []Rectf

	Texture             *Texture
	DisplacementTexture *Texture // optional, nil when unused
}

// Type implements Request.
func (*TextureRequest) Type() RequestType { return RequestTexture }

// GradientRequest fills Region with a gradient from Top to Bottom along
// Direction. Region is already in device space.
type GradientRequest struct {
	RequestBase

	Blend     Blend
	Top       Color
	Bottom    Color
	Direction GradientDirection
	Region    Rectf
}

// Type implements Request.
func (*GradientRequest) Type() RequestType { return RequestGradient }

// FillRectRequest fills an axis-aligned rectangle. Radius > 0 rounds the
// corners. Color already has the context alpha folded in.
type FillRectRequest struct {
	RequestBase

	Pos    Vector
	Size   Sizef
	Color  Color
	Radius float64
}

// Type implements Request.
func (*FillRectRequest) Type() RequestType { return RequestFillRect }

// InverseEllipseRequest paints everything outside the ellipse centered at
// Pos with axis extents Size. Color already has the context alpha folded
// in.
type InverseEllipseRequest struct {
	RequestBase

	Pos   Vector // center
	Size  Sizef  // full axis extents
	Color Color
}

// Type implements Request.
func (*InverseEllipseRequest) Type() RequestType { return RequestInverseEllipse }

// LineRequest draws a line from Pos to DestPos. Color already has the
// context alpha folded in.
type LineRequest struct {
	RequestBase

	Pos     Vector
	DestPos Vector
	Color   Color
}

// Type implements Request.
func (*LineRequest) Type() RequestType { return RequestLine }

// TriangleRequest fills the triangle Pos1-Pos2-Pos3. Color already has
// the context alpha folded in.
type TriangleRequest struct {
	RequestBase

	Pos1, Pos2, Pos3 Vector
	Color            Color
}

// Type implements Request.
func (*TriangleRequest) Type() RequestType { return RequestTriangle }

// GetPixelRequest reads the target pixel at Pos into Result. The painter
// must write the cell synchronously while handling the request; this is
// the one request with an externally observable side effect beyond
// painting.
type GetPixelRequest struct {
	RequestBase

	Pos    Vector
	Result *PixelResult
}

// Type implements Request.
func (*GetPixelRequest) Type() RequestType { return RequestGetPixel }

package video

// Painter is the backend that performs the actual paint operation for
// each request variant. Canvas.Render calls exactly one method per
// surviving request, in sorted order, on the frame thread.
//
// Painters must not mutate request geometry: requests may be dispatched
// to several painters (for example to a screen painter and a recording
// painter) and their fields are final once queued.
type Painter interface {
	// DrawTexture blits each SrcRects[i] to DstRects[i], applying tint,
	// alpha, flip, rotation and blend mode.
	DrawTexture(req *TextureRequest)

	// DrawGradient fills the request region with a two-color gradient.
	DrawGradient(req *GradientRequest)

	// DrawFilledRect fills an axis-aligned, optionally rounded rectangle.
	DrawFilledRect(req *FillRectRequest)

	// DrawInverseEllipse fills everything outside the request's ellipse.
	DrawInverseEllipse(req *InverseEllipseRequest)

	// DrawLine draws a line between the request's endpoints.
	DrawLine(req *LineRequest)

	// DrawTriangle fills the request's triangle.
	DrawTriangle(req *TriangleRequest)

	// GetPixel samples the target at req.Pos and resolves req.Result.
	// The write must happen before GetPixel returns.
	GetPixel(req *GetPixelRequest)
}

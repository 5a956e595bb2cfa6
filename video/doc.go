// Package video provides a deferred rendering queue for a 2D game engine.
//
// Game logic never paints directly. Instead it issues draw calls against a
// Canvas, which records each call as a typed drawing request in per-frame
// arena storage. At the end of the frame the canvas is flushed: the queue
// is stably sorted by layer and every request is dispatched to a Painter
// backend, which performs the actual rasterization.
//
// # Architecture
//
// The pipeline has three stages:
//
//   - Submission: a draw call snapshots the Context transform, converts
//     geometry to device space, folds the context alpha into the color,
//     allocates a request from the frame Arena and appends it to the queue.
//     Nothing is painted yet.
//   - Flush: Canvas.Render stably sorts the queue by layer (requests at
//     equal layer keep submission order, painter's-algorithm semantics),
//     applies an optional band filter relative to LayerLightmap, and
//     dispatches each request to the Painter by its variant type.
//   - Clear: Canvas.Clear drops the queue and resets the Arena; the
//     backing storage is retained for the next frame.
//
// Request geometry is always in device space by the time it reaches the
// queue. Mutating the Context transform after submission has no effect on
// already-queued requests, so the flush stage is a pure function of
// resolved geometry.
//
// # Requests
//
// The request set is closed: Texture, Gradient, FillRect, InverseEllipse,
// Line, Triangle and GetPixel. GetPixel is the one request with a side
// effect beyond painting: it carries a PixelResult cell that the Painter
// must write exactly once during the flush that contains the request.
//
// # Example
//
//	ctx := video.NewViewContext(640, 480)
//	canvas := video.NewCanvas(ctx)
//	painter := video.MustPainter("software", video.PainterConfig{Width: 640, Height: 480})
//
//	canvas.DrawFilledRect(video.NewRectf(10, 10, 100, 50), video.RGB(1, 0, 0), video.LayerObjects)
//	canvas.Render(painter, video.FilterAll)
//	canvas.Clear()
//
// Canvas, Arena and ViewContext are not safe for concurrent use; the whole
// pipeline is designed for a single frame thread.
package video

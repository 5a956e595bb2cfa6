package video

// Layer constants define the shared back-to-front paint order. Lower
// layers paint first. Game objects are free to use any value in between;
// these are the anchors the engine itself draws at.
const (
	LayerBackground0     = -300
	LayerBackground1     = -200
	LayerBackgroundTiles = -100
	LayerTiles           = 0
	LayerObjects         = 50
	LayerFloatingObjects = 150
	LayerForegroundTiles = 200
	LayerForeground0     = 300
	LayerForeground1     = 400

	// LayerLightmap separates the normally-lit scene from content drawn
	// on top of the lightmap. The band filters in Canvas.Render are
	// defined relative to this layer.
	LayerLightmap = 450

	LayerHUD = 500
	LayerGUI = 600

	// LayerGetPixel is the layer pixel queries are queued at: just below
	// the lightmap, so the sampled color reflects the fully composed
	// scene but not the lighting pass.
	LayerGetPixel = LayerLightmap - 1
)

// Filter restricts a flush to a band of layers, so canvas content can be
// interleaved with a separately rendered effect pass (such as lighting)
// without keeping a second queue.
type Filter uint8

const (
	// FilterAll dispatches every request.
	FilterAll Filter = iota
	// FilterBelowLightmap dispatches only requests with layer < LayerLightmap.
	FilterBelowLightmap
	// FilterAboveLightmap dispatches only requests with layer > LayerLightmap.
	FilterAboveLightmap
)

// String returns a human-readable name for the filter.
func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterBelowLightmap:
		return "BelowLightmap"
	case FilterAboveLightmap:
		return "AboveLightmap"
	default:
		return "Unknown"
	}
}

// skips reports whether the filter excludes the given layer.
func (f Filter) skips(layer int) bool {
	switch f {
	case FilterBelowLightmap:
		return layer >= LayerLightmap
	case FilterAboveLightmap:
		return layer <= LayerLightmap
	default:
		return false
	}
}

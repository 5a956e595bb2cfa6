package video

import (
	"image"
	"image/draw"

	"github.com/gogpu/gputypes"
)

// Texture is a backend texture resource. CPU painters sample the pixel
// data via Image; GPU painters identify the texture by its Format and
// dimensions and keep their own device-side handle keyed on the Texture
// pointer.
//
// A Texture is immutable after creation and may be shared by any number
// of surfaces.
type Texture struct {
	width  int
	height int
	format gputypes.TextureFormat
	img    *image.RGBA // nil for device-only textures
}

// NewTexture creates a texture from an image. The pixels are copied into
// RGBA8 form.
func NewTexture(src image.Image) *Texture {
	bounds := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	return &Texture{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		format: gputypes.TextureFormatRGBA8Unorm,
		img:    img,
	}
}

// NewDeviceTexture creates a texture that has no CPU-side pixels, for
// painters that manage device memory themselves.
func NewDeviceTexture(width, height int, format gputypes.TextureFormat) *Texture {
	return &Texture{width: width, height: height, format: format}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Format returns the pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// Image returns the CPU-side pixels, or nil for device-only textures.
func (t *Texture) Image() *image.RGBA { return t.img }

package video

import "image"

// Surface is a drawable region of a texture: the unit sprites, tiles and
// glyph atlases are expressed in. Multiple surfaces may share one texture
// (sprite sheets), each with its own region and intrinsic flip.
type Surface struct {
	texture      *Texture
	displacement *Texture
	region       Rectf
	flip         Flip
}

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*Surface)

// WithRegion restricts the surface to a sub-rectangle of its texture, in
// texture coordinates.
func WithRegion(r Rectf) SurfaceOption {
	return func(s *Surface) { s.region = r }
}

// WithDisplacement attaches a displacement-map texture, sampled by
// painters that support heat-shimmer style effects.
func WithDisplacement(t *Texture) SurfaceOption {
	return func(s *Surface) { s.displacement = t }
}

// WithFlip sets the surface's intrinsic flip.
func WithFlip(f Flip) SurfaceOption {
	return func(s *Surface) { s.flip = f }
}

// NewSurface creates a surface covering the whole texture, unless
// narrowed by options. A nil texture is a programming error and panics.
func NewSurface(texture *Texture, opts ...SurfaceOption) *Surface {
	if texture == nil {
		panic("video: NewSurface with nil texture")
	}
	s := &Surface{
		texture: texture,
		region:  NewRectf(0, 0, float64(texture.Width()), float64(texture.Height())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSurfaceFromImage creates a texture from img and a surface covering it.
func NewSurfaceFromImage(img image.Image, opts ...SurfaceOption) *Surface {
	return NewSurface(NewTexture(img), opts...)
}

// Width returns the surface width in pixels.
func (s *Surface) Width() float64 { return s.region.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() float64 { return s.region.Height() }

// Region returns the surface's region within its texture.
func (s *Surface) Region() Rectf { return s.region }

// Texture returns the backing texture.
func (s *Surface) Texture() *Texture { return s.texture }

// DisplacementTexture returns the displacement map, or nil.
func (s *Surface) DisplacementTexture() *Texture { return s.displacement }

// Flip returns the surface's intrinsic flip.
func (s *Surface) Flip() Flip { return s.flip }

// Flipped returns a copy of the surface with the given intrinsic flip.
// The texture is shared, not copied.
func (s *Surface) Flipped(f Flip) *Surface {
	clone := *s
	clone.flip = f
	return &clone
}

// SubSurface returns a surface for a sub-rectangle of this surface, in
// coordinates relative to this surface's region.
func (s *Surface) SubSurface(r Rectf) *Surface {
	clone := *s
	clone.region = r.Translate(s.region.TopLeft())
	return &clone
}

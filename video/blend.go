package video

// Blend selects the blend equation a painter uses when compositing a
// request onto the target.
type Blend uint8

const (
	// BlendBlend is standard source-over alpha blending.
	BlendBlend Blend = iota
	// BlendAdd adds source to destination (light effects).
	BlendAdd
	// BlendMod multiplies destination by source (lightmap application).
	BlendMod
	// BlendNone replaces the destination outright.
	BlendNone
)

// String returns a human-readable name for the blend mode.
func (b Blend) String() string {
	switch b {
	case BlendBlend:
		return "Blend"
	case BlendAdd:
		return "Add"
	case BlendMod:
		return "Mod"
	case BlendNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Flip is a bitmask of mirroring operations. The context flip and a
// surface's intrinsic flip combine by exclusive-or at submission time.
type Flip uint8

const (
	// NoFlip leaves the request unmirrored.
	NoFlip Flip = 0
	// HorizontalFlip mirrors around the vertical axis.
	HorizontalFlip Flip = 1 << 0
	// VerticalFlip mirrors around the horizontal axis.
	VerticalFlip Flip = 1 << 1
)

// String returns a human-readable name for the flip mask.
func (f Flip) String() string {
	switch f {
	case NoFlip:
		return "NoFlip"
	case HorizontalFlip:
		return "Horizontal"
	case VerticalFlip:
		return "Vertical"
	case HorizontalFlip | VerticalFlip:
		return "Both"
	default:
		return "Unknown"
	}
}

// GradientDirection selects the axis along which a gradient interpolates.
type GradientDirection uint8

const (
	// VerticalGradient interpolates from top to bottom.
	VerticalGradient GradientDirection = iota
	// HorizontalGradient interpolates from left to right.
	HorizontalGradient
)

// String returns a human-readable name for the gradient direction.
func (d GradientDirection) String() string {
	switch d {
	case VerticalGradient:
		return "Vertical"
	case HorizontalGradient:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// PaintStyle bundles the optional paint attributes of the surface draw
// calls: tint color, extra alpha and blend mode. The zero value is not
// useful; start from NewPaintStyle.
type PaintStyle struct {
	color Color
	alpha float64
	blend Blend
}

// NewPaintStyle returns the default style: white tint, full alpha,
// source-over blending.
func NewPaintStyle() PaintStyle {
	return PaintStyle{color: White, alpha: 1.0, blend: BlendBlend}
}

// WithColor returns the style with the tint color replaced.
func (s PaintStyle) WithColor(c Color) PaintStyle {
	s.color = c
	return s
}

// WithAlpha returns the style with the extra alpha replaced.
func (s PaintStyle) WithAlpha(a float64) PaintStyle {
	s.alpha = a
	return s
}

// WithBlend returns the style with the blend mode replaced.
func (s PaintStyle) WithBlend(b Blend) PaintStyle {
	s.blend = b
	return s
}

// Color returns the tint color.
func (s PaintStyle) Color() Color { return s.color }

// Alpha returns the extra alpha factor.
func (s PaintStyle) Alpha() float64 { return s.alpha }

// Blend returns the blend mode.
func (s PaintStyle) Blend() Blend { return s.blend }

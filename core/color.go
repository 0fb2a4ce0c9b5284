package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
)

// RGBFromUnit converts [0, 1] float channels to RGB
func RGBFromUnit(r, g, b float64) RGB {
	return RGB{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b)}
}

func unitToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Tint is a color with opacity, used for particle start colors
type Tint struct {
	Color RGB
	Alpha float64
}

// TintClear is the fully transparent tint (particles emitting nothing visible)
var TintClear = Tint{}

// Opaque wraps a color with full opacity
func Opaque(c RGB) Tint {
	return Tint{Color: c, Alpha: 1}
}

// Visible reports whether the tint has any opacity
func (t Tint) Visible() bool {
	return t.Alpha > 0
}

// TurboColors are the particle colors of boost tiers 1..3
var TurboColors = [3]RGB{
	{R: 102, G: 204, B: 255},
	{R: 255, G: 170, B: 51},
	{R: 221, G: 68, B: 255},
}

// TurboTint returns the particle tint for a boost tier, clear for tier 0
func TurboTint(tier int) Tint {
	if tier <= 0 || tier > len(TurboColors) {
		return TintClear
	}
	return Opaque(TurboColors[tier-1])
}

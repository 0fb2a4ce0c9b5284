package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kart-drift/core"
)

// RGB color definitions for the HUD
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 230) // Near white
	RgbDim        = tcell.NewRGBColor(110, 110, 130) // Labels and empty bar cells
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbTrackFloor   = tcell.NewRGBColor(60, 62, 80)
	RgbTrackRaised  = tcell.NewRGBColor(120, 125, 160)
	RgbTrackSummit  = tcell.NewRGBColor(180, 185, 220)
	RgbTrackBorder  = tcell.NewRGBColor(80, 82, 110)
	RgbKart         = tcell.NewRGBColor(255, 255, 255)
	RgbOverlayKey   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbOverlayValue = tcell.NewRGBColor(200, 200, 200)
)

// backgroundRGB mirrors RgbBackground for blending
var backgroundRGB = core.RGB{R: 26, G: 27, B: 38}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as the standard background color
func TcellToRGB(c tcell.Color) core.RGB {
	if c == tcell.ColorDefault {
		return backgroundRGB
	}
	r, g, b := c.RGB()
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// GetSpeedColor returns the speed bar gradient color at progress in [0, 1]
// Cool blue at rest through yellow to red at full speed
func GetSpeedColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return RgbDim
	}
	if progress > 1.0 {
		progress = 1.0
	}

	if progress < 0.5 { // Blue to Yellow
		t := progress / 0.5
		r := int32(65 + (255-65)*t)
		g := int32(105 + (215-105)*t)
		b := int32(225 - 225*t)
		return tcell.NewRGBColor(r, g, b)
	}
	// Yellow to Red
	t := (progress - 0.5) / 0.5
	r := int32(255)
	g := int32(215 - 215*t)
	return tcell.NewRGBColor(r, g, 0)
}

// TierStyle returns the HUD text style of a drift level
func TierStyle(tier core.Tier) tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(RGBToTcell(tier.Color()))
}

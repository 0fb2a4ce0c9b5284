package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/parameter"
	"github.com/lixenwraith/kart-drift/physics"
	"github.com/lixenwraith/kart-drift/vmath"
)

// Heading glyphs clockwise from +Z (screen up)
var headingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// HeadingGlyph returns the arrow closest to a yaw in degrees (0 faces +Z, 90 faces +X)
func HeadingGlyph(yawDeg float64) rune {
	yaw := vmath.Repeat(yawDeg, 360)
	idx := int(math.Round(yaw/45)) % len(headingGlyphs)
	return headingGlyphs[idx]
}

// Rect is a screen region
type Rect struct {
	X, Y, W, H int
}

// Viewport maps world XZ to cells of a screen region centered on a world point
// Terminal cells are about twice as tall as wide, so rows cover twice the world distance
type Viewport struct {
	Area   Rect
	Center mgl64.Vec3
	Scale  float64 // Cells per world unit horizontally
}

// ToScreen returns the cell of a world point and whether it lies inside the area
func (v Viewport) ToScreen(p mgl64.Vec3) (int, int, bool) {
	cx := v.Area.X + v.Area.W/2
	cy := v.Area.Y + v.Area.H/2
	x := cx + int(math.Round((p.X()-v.Center.X())*v.Scale))
	y := cy - int(math.Round((p.Z()-v.Center.Z())*v.Scale/2))
	inside := x >= v.Area.X && x < v.Area.X+v.Area.W && y >= v.Area.Y && y < v.Area.Y+v.Area.H
	return x, y, inside
}

// ToWorld returns the world XZ at the center of a cell
func (v Viewport) ToWorld(x, y int) (float64, float64) {
	cx := v.Area.X + v.Area.W/2
	cy := v.Area.Y + v.Area.H/2
	wx := v.Center.X() + float64(x-cx)/v.Scale
	wz := v.Center.Z() - float64(y-cy)*2/v.Scale
	return wx, wz
}

// within keeps the view inside the XZ extent lo..hi on each axis the extent exceeds
// Axes narrower than the view center on the extent; an empty extent leaves v unchanged
func (v Viewport) within(lo, hi mgl64.Vec2) Viewport {
	if lo == hi {
		return v
	}
	halfX := float64(v.Area.W) / 2 / v.Scale
	halfZ := float64(v.Area.H) / v.Scale
	v.Center = mgl64.Vec3{
		clampAxis(v.Center.X(), lo.X(), hi.X(), halfX),
		v.Center.Y(),
		clampAxis(v.Center.Z(), lo.Y(), hi.Y(), halfZ),
	}
	return v
}

func clampAxis(c, lo, hi, half float64) float64 {
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	return vmath.Clamp(c, lo+half, hi-half)
}

// drawTrack shades ground height under every cell of the viewport
func drawTrack(s tcell.Screen, v Viewport, track *physics.Surfaces, border tcell.Color) {
	base := tcell.StyleDefault.Background(RgbBackground)
	for y := v.Area.Y; y < v.Area.Y+v.Area.H; y++ {
		for x := v.Area.X; x < v.Area.X+v.Area.W; x++ {
			wx, wz := v.ToWorld(x, y)
			h, ok := track.HeightAt(wx, wz, parameter.LayerGround)
			switch {
			case !ok:
				s.SetContent(x, y, ' ', nil, base)
			case h < 0.5:
				s.SetContent(x, y, '.', nil, base.Foreground(RgbTrackFloor))
			case h < 2.5:
				s.SetContent(x, y, ':', nil, base.Foreground(RgbTrackRaised))
			default:
				s.SetContent(x, y, '#', nil, base.Foreground(RgbTrackSummit))
			}
		}
	}

	// Frame
	style := base.Foreground(border)
	top, bottom := v.Area.Y-1, v.Area.Y+v.Area.H
	left, right := v.Area.X-1, v.Area.X+v.Area.W
	for x := left; x <= right; x++ {
		s.SetContent(x, top, '─', nil, style)
		s.SetContent(x, bottom, '─', nil, style)
	}
	for y := top; y <= bottom; y++ {
		s.SetContent(left, y, '│', nil, style)
		s.SetContent(right, y, '│', nil, style)
	}
	s.SetContent(left, top, '┌', nil, style)
	s.SetContent(right, top, '┐', nil, style)
	s.SetContent(left, bottom, '└', nil, style)
	s.SetContent(right, bottom, '┘', nil, style)
}

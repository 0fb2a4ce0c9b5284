package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/core"
	"github.com/lixenwraith/kart-drift/parameter"
	"github.com/lixenwraith/kart-drift/physics"
	"github.com/lixenwraith/kart-drift/status"
)

// KartView is the read side of the motion controller used for drawing
type KartView interface {
	Position() mgl64.Vec3
	Heading() float64
	CurrentSpeed() float64
	DriftPower() float64
	BoostTier() int
	IsDrifting() bool
	DriftDirection() int
	Boosting() bool
	ParticleTint() core.Tint
}

// Frame is everything drawn in one frame
type Frame struct {
	Kart    KartView
	Track   *physics.Surfaces // Optional
	Metrics []status.Metric   // Drawn when the overlay is shown
	Paused  bool
}

// Layout rows
const (
	rowScore  = 0
	rowSpeed  = 1
	rowPower  = 2
	rowState  = 3
	rowTrack  = 5
	barColumn = 6
)

// Renderer draws the HUD and a top-down track view onto a tcell screen
type Renderer struct {
	screen      tcell.Screen
	hud         *HUD
	thresholds  []float64
	showOverlay bool
}

// NewRenderer creates a renderer; thresholds are the boost power levels marked on the power bar
func NewRenderer(screen tcell.Screen, hud *HUD, thresholds []float64) *Renderer {
	return &Renderer{screen: screen, hud: hud, thresholds: thresholds}
}

// ToggleOverlay flips the metric overlay and returns the new state
func (r *Renderer) ToggleOverlay() bool {
	r.showOverlay = !r.showOverlay
	return r.showOverlay
}

func (r *Renderer) OverlayVisible() bool { return r.showOverlay }

// RenderFrame draws a complete frame and shows it
func (r *Renderer) RenderFrame(f Frame) {
	r.screen.Clear()
	width, height := r.screen.Size()
	base := tcell.StyleDefault.Background(RgbBackground)
	r.fill(width, height, base)

	r.drawScore(width, base)
	if f.Kart != nil {
		r.drawSpeed(f.Kart, base)
		r.drawPower(f.Kart, base)
		r.drawState(f.Kart, f.Paused, base)
	}

	overlayWidth := 0
	if r.showOverlay && len(f.Metrics) > 0 {
		overlayWidth = r.drawOverlay(f.Metrics, width, height, base)
	}

	if f.Track != nil && f.Kart != nil {
		area := Rect{X: 1, Y: rowTrack + 1, W: width - 2 - overlayWidth, H: height - rowTrack - 2}
		if area.W > 2 && area.H > 2 {
			r.drawTrackView(f, area)
		}
	}

	r.screen.Show()
}

func (r *Renderer) fill(width, height int, style tcell.Style) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// drawScore writes the score label left and the level name right, both in tier color
func (r *Renderer) drawScore(width int, base tcell.Style) {
	style := TierStyle(r.hud.Tier())
	if color, strength := r.hud.Flash(); strength > 0 {
		fg := r.hud.Tier().Color().Blend(color, strength)
		style = style.Foreground(RGBToTcell(fg))
	}

	label := r.hud.ScoreLabel()
	switch {
	case r.hud.DriftUIVisible() && r.hud.Combo() > 0:
		label += fmt.Sprintf("  x%d", r.hud.Combo())
	case !r.hud.DriftUIVisible() && r.hud.LastSessionScore() > 0:
		label += fmt.Sprintf("  last +%.0f", r.hud.LastSessionScore())
	}
	r.drawText(0, rowScore, label, style.Bold(r.hud.DriftUIVisible()))

	level := r.hud.LevelLabel()
	x := width - len([]rune(level))
	if x < 0 {
		x = 0
	}
	r.drawText(x, rowScore, level, TierStyle(r.hud.Tier()))
}

func (r *Renderer) drawSpeed(k KartView, base tcell.Style) {
	speed := k.CurrentSpeed()
	r.drawText(0, rowSpeed, "SPD", base.Foreground(RgbDim))

	filled := BarBlocks(speed, parameter.HUDSpeedScale, parameter.HUDBarWidth)
	for i := 0; i < parameter.HUDBarWidth; i++ {
		if i < filled {
			progress := float64(i+1) / parameter.HUDBarWidth
			r.screen.SetContent(barColumn+i, rowSpeed, '█', nil, base.Foreground(GetSpeedColor(progress)))
		} else {
			r.screen.SetContent(barColumn+i, rowSpeed, '·', nil, base.Foreground(RgbDim))
		}
	}
	r.drawText(barColumn+parameter.HUDBarWidth+1, rowSpeed, fmt.Sprintf("%5.1f", speed), base.Foreground(RgbText))
}

// drawPower fills the power bar in the color of the tier each cell falls in
// Threshold cells are marked so the next tier is visible
func (r *Renderer) drawPower(k KartView, base tcell.Style) {
	r.drawText(0, rowPower, "PWR", base.Foreground(RgbDim))
	if len(r.thresholds) == 0 {
		return
	}
	limit := r.thresholds[len(r.thresholds)-1]
	filled := BarBlocks(k.DriftPower(), limit, parameter.HUDBarWidth)

	markers := make(map[int]bool, len(r.thresholds))
	for _, th := range r.thresholds {
		if col := MarkerColumn(th, limit, parameter.HUDBarWidth); col >= 0 {
			markers[col] = true
		}
	}

	for i := 0; i < parameter.HUDBarWidth; i++ {
		cellPower := float64(i+1) / parameter.HUDBarWidth * limit
		tier := 0
		for _, th := range r.thresholds {
			if cellPower > th {
				tier++
			}
		}
		color := RgbDim
		if tint := core.TurboTint(tier + 1); tint.Visible() {
			color = RGBToTcell(tint.Color)
		}

		switch {
		case i < filled:
			r.screen.SetContent(barColumn+i, rowPower, '█', nil, base.Foreground(color))
		case markers[i]:
			r.screen.SetContent(barColumn+i, rowPower, '|', nil, base.Foreground(color))
		default:
			r.screen.SetContent(barColumn+i, rowPower, '·', nil, base.Foreground(RgbDim))
		}
	}
	r.drawText(barColumn+parameter.HUDBarWidth+1, rowPower, fmt.Sprintf("T%d", k.BoostTier()), base.Foreground(RgbText))
}

func (r *Renderer) drawState(k KartView, paused bool, base tcell.Style) {
	var state string
	switch {
	case k.IsDrifting() && k.DriftDirection() < 0:
		state = "DRIFT ◀"
	case k.IsDrifting():
		state = "DRIFT ▶"
	case k.Boosting():
		state = "BOOST"
	default:
		state = "DRIVE"
	}

	style := base.Foreground(RgbText)
	if tint := k.ParticleTint(); tint.Visible() {
		style = base.Foreground(RGBToTcell(tint.Color))
	}
	x := r.drawText(0, rowState, state, style.Bold(true))

	if paused {
		r.drawText(x+2, rowState, "PAUSED", base.Foreground(RgbPaused).Bold(true))
	}
}

// drawOverlay lists metrics in a right-hand column and returns its width
func (r *Renderer) drawOverlay(metrics []status.Metric, width, height int, base tcell.Style) int {
	keyWidth, valWidth := 0, 0
	for _, m := range metrics {
		keyWidth = max(keyWidth, len(m.Key))
		valWidth = max(valWidth, len(m.Value))
	}
	colWidth := keyWidth + valWidth + 3
	x := width - colWidth
	if x < barColumn {
		return 0
	}

	for i, m := range metrics {
		y := rowTrack + i
		if y >= height {
			break
		}
		r.drawText(x, y, m.Key, base.Foreground(RgbOverlayKey))
		r.drawText(x+keyWidth+1, y, m.Value, base.Foreground(RgbOverlayValue))
	}
	return colWidth
}

// drawTrackView centers the track on the kart, stopping at the track edges, and draws the heading arrow
// The frame tints toward the boost color while the chromatic pulse runs
func (r *Renderer) drawTrackView(f Frame, area Rect) {
	border := RgbTrackBorder
	if color, intensity := r.hud.ChromaticPulse(); intensity > 0 {
		border = RGBToTcell(TcellToRGB(RgbTrackBorder).Blend(color, intensity))
	}

	v := Viewport{Area: area, Center: f.Kart.Position(), Scale: parameter.HUDTrackScale}
	v = v.within(f.Track.Bounds())
	drawTrack(r.screen, v, f.Track, border)

	kartColor := RgbKart
	if f.Kart.IsDrifting() {
		kartColor = RGBToTcell(r.hud.ParticleColor())
	}
	if x, y, ok := v.ToScreen(f.Kart.Position()); ok {
		style := tcell.StyleDefault.Background(RgbBackground).Foreground(kartColor).Bold(true)
		r.screen.SetContent(x, y, HeadingGlyph(f.Kart.Heading()), nil, style)
	}
}

package main

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kart-drift/audio"
	"github.com/lixenwraith/kart-drift/engine"
	"github.com/lixenwraith/kart-drift/event"
	"github.com/lixenwraith/kart-drift/input"
	"github.com/lixenwraith/kart-drift/kart"
	"github.com/lixenwraith/kart-drift/physics"
	"github.com/lixenwraith/kart-drift/render"
	"github.com/lixenwraith/kart-drift/score"
	"github.com/lixenwraith/kart-drift/status"
)

// app owns the per-frame glue between terminal input, simulation and drawing
// Every method runs on the loop goroutine
type app struct {
	screen   tcell.Screen
	clock    *engine.GameClock
	kart     *kart.Controller
	scorer   *score.Engine
	machine  *input.Machine
	renderer *render.Renderer
	track    *physics.Surfaces
	status   *status.Registry
	cues     *audio.CueHandler // Nil when audio is unavailable
	logger   *slog.Logger

	events <-chan tcell.Event
	quit   func()
}

// beforeFrame drains pending terminal events, then feeds held controls to the kart
func (a *app) beforeFrame() {
	now := time.Now()
	for {
		select {
		case ev := <-a.events:
			if intent := a.machine.Process(ev, now); intent != nil {
				a.handle(intent)
			}
		default:
			if !a.clock.IsPaused() {
				a.machine.Apply(now, a.kart)
			}
			return
		}
	}
}

// afterFrame draws the frame; runs while paused too
func (a *app) afterFrame() {
	f := render.Frame{
		Kart:   a.kart,
		Track:  a.track,
		Paused: a.clock.IsPaused(),
	}
	if a.renderer.OverlayVisible() {
		f.Metrics = a.status.Snapshot()
	}
	a.renderer.RenderFrame(f)
}

func (a *app) handle(intent *input.Intent) {
	switch intent.Type {
	case input.IntentQuit:
		a.quit()

	case input.IntentPause:
		paused := a.clock.TogglePause()
		a.machine.Release()
		a.logger.Info("pause", "paused", paused, "paused_total", a.clock.GetTotalPauseDuration())

	case input.IntentResize:
		a.screen.Sync()

	case input.IntentLogDriftAngle:
		a.logger.Info("drift angle",
			"degrees", a.kart.GetCurrentDriftAngle(),
			"drifting", a.kart.IsDrifting(),
			"elapsed", a.kart.DriftTime(),
			"distance", a.kart.DriftDistance(),
			"rotate", a.kart.CurrentRotate(),
			"steer", a.kart.SmoothedSteer(),
			"pivot_yaw", a.kart.PivotYaw(),
			"ground_up", a.kart.GroundUp())

	case input.IntentLogScore:
		a.logger.Info("score",
			"current", a.scorer.GetCurrentScore(),
			"total", a.scorer.GetTotalScore(),
			"combo", a.scorer.GetComboCount(),
			"level", a.scorer.GetCurrentLevel().String())

	case input.IntentResetScore:
		a.scorer.ResetScore()

	case input.IntentToggleMute:
		if a.cues != nil {
			a.logger.Info("audio", "muted", a.cues.ToggleMute())
		}

	case input.IntentToggleAutoAccelerate:
		a.kart.ToggleAutoAccelerate()

	case input.IntentToggleOverlay:
		a.renderer.ToggleOverlay()
	}
}

// logEvents traces every bus event by name at debug level
func logEvents(bus *event.Bus, logger *slog.Logger) {
	bus.Subscribe(func(ev event.GameEvent) {
		logger.Debug("event", "type", event.GetEventName(ev.Type), "frame", ev.Frame)
	}, event.AllTypes()...)
}

package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

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

type testApp struct {
	*app
	events chan tcell.Event
	logs   *bytes.Buffer
	bus    *event.Bus
	quits  int
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bus := event.NewBus()
	registry := status.NewRegistry()
	clock := engine.NewGameClock(time.Time{})
	track := physics.DefaultTrack()
	body := physics.NewSphere(physics.DefaultSphereConfig(), mgl64.Vec3{0, 0.5, 0}, track)

	scorer, err := score.New(score.DefaultConfig(), score.Deps{Clock: clock, Events: bus, Status: registry, Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	controller, err := kart.New(kart.DefaultConfig(), kart.Deps{
		Body:   body,
		Probe:  track,
		Rig:    kart.NewNodeRig(),
		Scorer: scorer,
		Events: bus,
		Clock:  clock,
		Status: registry,
		Logger: logger,
	})
	if err != nil {
		t.Fatal(err)
	}

	hud := render.NewHUD()
	bus.Register(hud)

	ta := &testApp{events: make(chan tcell.Event, 16), logs: logs, bus: bus}
	ta.app = &app{
		screen:   screen,
		clock:    clock,
		kart:     controller,
		scorer:   scorer,
		machine:  input.NewMachine(input.DefaultKeyTable()),
		renderer: render.NewRenderer(screen, hud, kart.DefaultConfig().PowerThresholds),
		track:    track,
		status:   registry,
		cues:     audio.NewCueHandler(audio.DefaultConfig(), nil),
		logger:   logger,
		events:   ta.events,
		quit:     func() { ta.quits++ },
	}
	return ta
}

func (ta *testApp) press(evs ...tcell.Event) {
	for _, ev := range evs {
		ta.events <- ev
	}
	ta.beforeFrame()
}

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func specialKey(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func TestQuitIntent(t *testing.T) {
	ta := newTestApp(t)
	ta.press(runeKey('q'))
	if ta.quits != 1 {
		t.Errorf("expected one quit, got %d", ta.quits)
	}
}

func TestHeldControlsReachController(t *testing.T) {
	ta := newTestApp(t)
	ta.press(runeKey('w'), runeKey('d'))

	cmd := ta.kart.Pending()
	if !cmd.Accelerate.IsSet() {
		t.Error("accelerate should be recorded")
	}
	if steer, ok := cmd.Steer.Get(); !ok || steer != 1 {
		t.Errorf("expected steer 1, got %v (set %v)", steer, ok)
	}
}

func TestPauseStopsControlsAndReleases(t *testing.T) {
	ta := newTestApp(t)
	ta.press(runeKey('w'), runeKey('p'))

	if !ta.clock.IsPaused() {
		t.Fatal("p should pause the clock")
	}
	if ta.kart.Pending().Accelerate.IsSet() {
		t.Error("paused frames should not feed the controller")
	}

	ta.press(runeKey('p'))
	if ta.clock.IsPaused() {
		t.Fatal("second p should resume")
	}
	if ta.kart.Pending().Accelerate.IsSet() {
		t.Error("pause should release held controls")
	}
}

func TestPauseLogsTotalPausedTime(t *testing.T) {
	ta := newTestApp(t)
	ta.press(runeKey('p'))
	ta.clock.Advance(time.Second)
	ta.press(runeKey('p'))

	if !strings.Contains(ta.logs.String(), "paused_total=1s") {
		t.Errorf("resume should log the paused total:\n%s", ta.logs.String())
	}
}

func TestEventLogNamesEvents(t *testing.T) {
	ta := newTestApp(t)
	logEvents(ta.bus, ta.logger)
	ta.bus.SetFrame(7)
	ta.bus.Emit(event.EventScoreReset, nil)

	if !strings.Contains(ta.logs.String(), "msg=event type=ScoreReset frame=7") {
		t.Errorf("expected named event line:\n%s", ta.logs.String())
	}
}

func TestToggles(t *testing.T) {
	ta := newTestApp(t)
	ta.press(runeKey('o'), runeKey('m'))

	if !ta.renderer.OverlayVisible() {
		t.Error("o should show the overlay")
	}
	if ta.cues.ToggleMute() {
		t.Error("m should have muted cues")
	}
}

func TestResetScoreIntent(t *testing.T) {
	ta := newTestApp(t)
	ta.scorer.StartDrift()
	ta.clock.Advance(time.Second)
	ta.scorer.UpdateDriftScore(30, 1)
	ta.scorer.EndDrift()
	if ta.scorer.GetTotalScore() <= 0 {
		t.Fatal("setup should bank a score")
	}

	ta.press(specialKey(tcell.KeyF3))
	if ta.scorer.GetTotalScore() != 0 {
		t.Errorf("F3 should reset the total, got %v", ta.scorer.GetTotalScore())
	}
}

func TestAfterFrameDrawsHUD(t *testing.T) {
	ta := newTestApp(t)
	ta.afterFrame()

	var sb strings.Builder
	for x := 0; x < 40; x++ {
		r, _, _, _ := ta.screen.GetContent(x, 0)
		sb.WriteRune(r)
	}
	if !strings.HasPrefix(sb.String(), "Total Score: 0") {
		t.Errorf("unexpected score row %q", sb.String())
	}
}

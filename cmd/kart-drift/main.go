package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/kart-drift/audio"
	"github.com/lixenwraith/kart-drift/config"
	"github.com/lixenwraith/kart-drift/engine"
	"github.com/lixenwraith/kart-drift/event"
	"github.com/lixenwraith/kart-drift/input"
	"github.com/lixenwraith/kart-drift/kart"
	"github.com/lixenwraith/kart-drift/physics"
	"github.com/lixenwraith/kart-drift/render"
	"github.com/lixenwraith/kart-drift/score"
	"github.com/lixenwraith/kart-drift/status"
)

var (
	configFlag = flag.String("config", "", "TOML config file layered over defaults")
	envFlag    = flag.String("env", ".env", "Optional .env file with KART_DRIFT_* overrides")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/kart-drift.log")
	keymapFlag = flag.String("keymap", "", "TOML keymap override file")
	muteFlag   = flag.Bool("mute", false, "Start without audio")
)

func main() {
	defer crashGuard("KART-DRIFT")

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kart-drift: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, *envFlag); err != nil {
		return cfg, err
	}

	// Flags win over file and environment
	if *debugFlag {
		cfg.Debug = true
	}
	if *keymapFlag != "" {
		cfg.Keymap = *keymapFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()
	logger.Info("config loaded", "file", *configFlag, "env", *envFlag, "auto_accelerate", cfg.Kart.AutoAccelerate)

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	// Simulation
	bus := event.NewBus()
	if cfg.Debug {
		logEvents(bus, logger)
	}
	registry := status.NewRegistry()
	clock := engine.NewGameClock(time.Now())

	track := physics.DefaultTrack()
	body := physics.NewSphere(cfg.Body, mgl64.Vec3{0, cfg.Body.Radius, 0}, track)

	scorer, err := score.New(cfg.Score, score.Deps{
		Clock:  clock,
		Events: bus,
		Status: registry,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	controller, err := kart.New(cfg.Kart, kart.Deps{
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
		return err
	}

	// Presentation
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	hud := render.NewHUD()
	bus.Register(hud)
	renderer := render.NewRenderer(screen, hud, cfg.Kart.PowerThresholds)

	var cues *audio.CueHandler
	if cfg.Audio.Enabled {
		sounds := audio.NewSoundManager(cfg.Audio, logger)
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio initialization failed, continuing without audio", "error", err)
		} else {
			defer sounds.Cleanup()
			cues = audio.NewCueHandler(cfg.Audio, sounds)
			bus.Register(cues)
		}
	}

	scorer.Announce()

	// Update phase: controller before HUD tweens; physics phase: forces before integration
	loop := engine.NewLoop(cfg.Loop, clock, bus, logger)
	loop.AddUpdater(controller)
	loop.AddUpdater(hud)
	loop.AddFixedUpdater(controller)
	loop.AddFixedUpdater(body)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	machine := input.NewMachine(keys)
	machine.SetHoldWindows(cfg.Input.Initial, cfg.Input.Repeat)

	events := make(chan tcell.Event, 256)
	a := &app{
		screen:   screen,
		clock:    clock,
		kart:     controller,
		scorer:   scorer,
		machine:  machine,
		renderer: renderer,
		track:    track,
		status:   registry,
		cues:     cues,
		logger:   logger,
		events:   events,
		quit:     cancel,
	}

	// Input polling blocks in the terminal; Fini on shutdown unblocks it with a nil event
	g.Go(func() error {
		defer crashGuard("EVENT POLLER")
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer crashGuard("GAME LOOP")
		defer cancel()
		err := loop.Run(gctx, nil, a.beforeFrame, a.afterFrame)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		screen.Fini()
		return nil
	})

	err = g.Wait()
	logger.Info("shutdown",
		"total_score", scorer.GetTotalScore(),
		"level", scorer.GetCurrentLevel().String(),
		"game_time", clock.Elapsed(),
		"paused_total", clock.GetTotalPauseDuration(),
		"dropped_steps", loop.DroppedSteps())
	return err
}

// crashGuard resets the terminal and exits on panic; deferred at the top of every goroutine touching the screen
// \r\n keeps the trace aligned while the terminal may still be in raw mode
func crashGuard(where string) {
	if r := recover(); r != nil {
		emergencyReset(os.Stdout)
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}

// emergencyReset restores terminal modes when the screen could not be finalized normally
func emergencyReset(w io.Writer) {
	io.WriteString(w, "\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l") // Mouse tracking off
	io.WriteString(w, "\x1b[?25h")                                    // Cursor show
	io.WriteString(w, "\x1b[?1049l")                                  // Alt screen exit
	io.WriteString(w, "\x1b[0m")                                      // SGR reset
	io.WriteString(w, "\x1b[?7h")                                     // Auto wrap on
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

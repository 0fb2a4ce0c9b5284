package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

type phaseRecorder struct {
	calls *[]string
	name  string
	dts   []float64
}

func (p *phaseRecorder) Update(dt float64) {
	*p.calls = append(*p.calls, p.name)
	p.dts = append(p.dts, dt)
}

func (p *phaseRecorder) FixedUpdate(dt float64) {
	*p.calls = append(*p.calls, p.name)
	p.dts = append(p.dts, dt)
}

type frameStamp struct{ last int64 }

func (f *frameStamp) SetFrame(frame int64) { f.last = frame }

func newTestLoop(stamper FrameStamper) *Loop {
	cfg := LoopConfig{
		FrameInterval:   time.Millisecond,
		PhysicsStep:     20 * time.Millisecond,
		MaxPhysicsSteps: 3,
		MaxFrameDelta:   time.Second,
	}
	return NewLoop(cfg, NewGameClock(time.Time{}), stamper, nil)
}

func TestLoopUpdateBeforeFixed(t *testing.T) {
	var calls []string
	loop := newTestLoop(nil)
	upd := &phaseRecorder{calls: &calls, name: "update"}
	fix := &phaseRecorder{calls: &calls, name: "fixed"}
	loop.AddUpdater(upd)
	loop.AddFixedUpdater(fix)

	steps := loop.Step(40 * time.Millisecond)
	if steps != 2 {
		t.Fatalf("expected 2 physics steps, got %d", steps)
	}
	want := []string{"update", "fixed", "fixed"}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, calls)
		}
	}
	if fix.dts[0] != 0.02 {
		t.Errorf("fixed step should be 0.02s, got %f", fix.dts[0])
	}
}

func TestLoopAccumulatesRemainder(t *testing.T) {
	var calls []string
	loop := newTestLoop(nil)
	fix := &phaseRecorder{calls: &calls, name: "fixed"}
	loop.AddFixedUpdater(fix)

	if steps := loop.Step(15 * time.Millisecond); steps != 0 {
		t.Fatalf("expected no step for 15ms, got %d", steps)
	}
	if steps := loop.Step(15 * time.Millisecond); steps != 1 {
		t.Fatalf("expected carried remainder to produce 1 step, got %d", steps)
	}
}

func TestLoopCapsPhysicsSteps(t *testing.T) {
	var calls []string
	loop := newTestLoop(nil)
	loop.AddFixedUpdater(&phaseRecorder{calls: &calls, name: "fixed"})

	if steps := loop.Step(200 * time.Millisecond); steps != 3 {
		t.Fatalf("expected cap of 3, got %d", steps)
	}
	if loop.DroppedSteps() != 7 {
		t.Errorf("expected 7 dropped steps, got %d", loop.DroppedSteps())
	}
}

func TestLoopPausedSkipsPhases(t *testing.T) {
	var calls []string
	stamp := &frameStamp{}
	loop := newTestLoop(stamp)
	loop.AddUpdater(&phaseRecorder{calls: &calls, name: "update"})
	loop.Clock().Pause()

	loop.Step(50 * time.Millisecond)
	if len(calls) != 0 {
		t.Errorf("paused frame ran phases: %v", calls)
	}
	if stamp.last != 1 {
		t.Errorf("frame should still be stamped, got %d", stamp.last)
	}
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	loop := newTestLoop(nil)
	ctx, cancel := context.WithCancel(context.Background())

	frames := 0
	done := make(chan error, 1)
	go func() {
		done <- loop.Run(ctx, nil, nil, func() {
			frames++
			if frames == 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoopConfigValidate(t *testing.T) {
	if err := DefaultLoopConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg := DefaultLoopConfig()
	cfg.PhysicsStep = 0
	cfg.MaxPhysicsSteps = -1
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidLoopConfig) {
		t.Fatalf("expected ErrInvalidLoopConfig, got %v", err)
	}
}

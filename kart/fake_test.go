package kart

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kart-drift/engine"
	"github.com/lixenwraith/kart-drift/event"
	"github.com/lixenwraith/kart-drift/status"
)

const frameDT = 1.0 / 64

type fakeBody struct {
	pos    mgl64.Vec3
	vel    mgl64.Vec3
	accels []mgl64.Vec3
}

func (b *fakeBody) Position() mgl64.Vec3          { return b.pos }
func (b *fakeBody) Velocity() mgl64.Vec3          { return b.vel }
func (b *fakeBody) AddAcceleration(a mgl64.Vec3)  { b.accels = append(b.accels, a) }
func (b *fakeBody) lastAccels(n int) []mgl64.Vec3 { return b.accels[len(b.accels)-n:] }

type rayCall struct {
	maxDist float64
	mask    uint32
}

type fakeProbe struct {
	calls  []rayCall
	normal mgl64.Vec3
	hitAt  float64 // Rays at least this long hit; 0 = every ray misses
}

func (p *fakeProbe) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (Hit, bool) {
	p.calls = append(p.calls, rayCall{maxDist, mask})
	if p.hitAt == 0 || maxDist < p.hitAt {
		return Hit{}, false
	}
	return Hit{Point: origin.Add(dir.Mul(p.hitAt)), Normal: p.normal, Distance: p.hitAt}, true
}

type scoreCall struct {
	speed, control float64
}

type fakeScorer struct {
	starts, ends int
	updates      []scoreCall
}

func (s *fakeScorer) StartDrift() { s.starts++ }
func (s *fakeScorer) EndDrift()   { s.ends++ }
func (s *fakeScorer) UpdateDriftScore(speed, control float64) {
	s.updates = append(s.updates, scoreCall{speed, control})
}

type harness struct {
	c      *Controller
	body   *fakeBody
	probe  *fakeProbe
	scorer *fakeScorer
	rec    *event.Recorder
	clock  *engine.GameClock
	status *status.Registry
}

func newHarness(t *testing.T, mutate func(*Config)) *harness {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	h := &harness{
		body:   &fakeBody{vel: mgl64.Vec3{0, 0, 20}},
		probe:  &fakeProbe{normal: mgl64.Vec3{0, 1, 0}, hitAt: 0.5},
		scorer: &fakeScorer{},
		rec:    &event.Recorder{Types: event.AllTypes()},
		clock:  engine.NewGameClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		status: status.NewRegistry(),
	}
	bus := event.NewBus()
	bus.Register(h.rec)

	c, err := New(cfg, Deps{
		Body:   h.body,
		Probe:  h.probe,
		Rig:    NewNodeRig(),
		Scorer: h.scorer,
		Events: bus,
		Clock:  h.clock,
		Status: h.status,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.c = c
	return h
}

// frame records commands then runs one update and one physics step
func (h *harness) frame(accel bool, steer *float64, jump bool) {
	if accel {
		h.c.Accelerate()
	}
	if steer != nil {
		h.c.Steer(*steer)
	}
	if jump {
		h.c.Jump()
	}
	h.clock.Advance(time.Second / 64)
	h.c.Update(frameDT)
	h.c.FixedUpdate(frameDT)
}

func f(v float64) *float64 { return &v }

package fsm

import (
	"errors"
	"testing"

	"github.com/lixenwraith/kart-drift/event"
)

type doorCtx struct {
	unlocked bool
	log      []string
}

const doorGraph = `
initial = "Closed"

[states.Closed]
on_enter = [{ action = "Record", args = { msg = "enter closed" } }]
transitions = [
  { trigger = "JumpPressed", target = "Open", guard = "Unlocked" },
]

[states.Open]
on_enter = [{ action = "Record", args = { msg = "enter open" } }]
on_exit = [{ action = "Record", args = { msg = "exit open" } }]
transitions = [
  { trigger = "JumpReleased", target = "Closed" },
  { trigger = "Tick", target = "Closed", guard = "Locked" },
]
`

func newDoor(t *testing.T) *Machine[*doorCtx] {
	t.Helper()
	m := NewMachine[*doorCtx]()
	m.RegisterGuard("Unlocked", func(c *doorCtx) bool { return c.unlocked })
	m.RegisterGuard("Locked", func(c *doorCtx) bool { return !c.unlocked })
	m.RegisterAction("Record", func(c *doorCtx, args map[string]any) {
		c.log = append(c.log, args["msg"].(string))
	})
	if err := m.LoadConfig([]byte(doorGraph)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return m
}

func TestMachineGuardedTransition(t *testing.T) {
	m := newDoor(t)
	ctx := &doorCtx{}
	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if m.State() != "Closed" {
		t.Fatalf("expected Closed, got %s", m.State())
	}

	if m.HandleEvent(ctx, event.EventJumpPressed) {
		t.Fatal("guard should block while locked")
	}

	ctx.unlocked = true
	if !m.HandleEvent(ctx, event.EventJumpPressed) {
		t.Fatal("expected transition once unlocked")
	}
	if m.State() != "Open" {
		t.Fatalf("expected Open, got %s", m.State())
	}

	if m.HandleEvent(ctx, event.EventJumpPressed) {
		t.Error("Open has no JumpPressed transition")
	}

	m.HandleEvent(ctx, event.EventJumpReleased)
	want := []string{"enter closed", "enter open", "exit open", "enter closed"}
	if len(ctx.log) != len(want) {
		t.Fatalf("expected %v, got %v", want, ctx.log)
	}
	for i := range want {
		if ctx.log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ctx.log)
		}
	}
}

func TestMachineTickTransition(t *testing.T) {
	m := newDoor(t)
	ctx := &doorCtx{unlocked: true}
	m.Init(ctx)
	m.HandleEvent(ctx, event.EventJumpPressed)

	m.Update(ctx)
	if m.State() != "Open" {
		t.Fatal("tick guard should hold while unlocked")
	}

	ctx.unlocked = false
	m.Update(ctx)
	if m.State() != "Closed" {
		t.Fatalf("expected tick transition to Closed, got %s", m.State())
	}
}

func TestGuardEvaluatedOncePerEvent(t *testing.T) {
	m := NewMachine[*doorCtx]()
	calls := 0
	m.RegisterGuard("Unlocked", func(c *doorCtx) bool { calls++; return false })
	m.RegisterGuard("Locked", func(c *doorCtx) bool { return true })
	m.RegisterAction("Record", func(c *doorCtx, args map[string]any) {})
	if err := m.LoadConfig([]byte(doorGraph)); err != nil {
		t.Fatal(err)
	}
	ctx := &doorCtx{}
	m.Init(ctx)

	if m.HandleEvent(ctx, event.EventJumpPressed) {
		t.Fatal("failing guard must not transition")
	}
	if calls != 1 {
		t.Errorf("expected one guard evaluation, got %d", calls)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		graph string
		want  error
	}{
		{"unknown target", `initial = "A"
[states.A]
transitions = [{ trigger = "Tick", target = "B" }]`, ErrUnknownState},
		{"unknown guard", `initial = "A"
[states.A]
transitions = [{ trigger = "Tick", target = "A", guard = "Nope" }]`, ErrUnknownGuard},
		{"unknown action", `initial = "A"
[states.A]
on_enter = [{ action = "Nope" }]`, ErrUnknownAction},
		{"unknown event", `initial = "A"
[states.A]
transitions = [{ trigger = "Explode", target = "A" }]`, ErrUnknownEvent},
		{"missing initial", `initial = "Z"
[states.A]`, ErrUnknownState},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine[*doorCtx]()
			err := m.LoadConfig([]byte(tc.graph))
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	m := NewMachine[*doorCtx]()
	err := m.LoadConfig([]byte(`initial = "A"
colour = "blue"
[states.A]`))
	if err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestInitWithoutGraph(t *testing.T) {
	m := NewMachine[*doorCtx]()
	if err := m.Init(&doorCtx{}); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
}

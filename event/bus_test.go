package event

import "testing"

func TestBusDeliversInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var order []int
	bus.Subscribe(func(GameEvent) { order = append(order, 1) }, EventLevelUp)
	bus.Subscribe(func(GameEvent) { order = append(order, 2) }, EventLevelUp, EventScoreChanged)

	bus.Emit(EventLevelUp, &LevelUpPayload{})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected [1 2], got %v", order)
	}

	order = nil
	bus.Emit(EventScoreChanged, &ScorePayload{})
	if len(order) != 1 || order[0] != 2 {
		t.Errorf("only the second handler watches ScoreChanged, got %v", order)
	}
}

func TestBusSynchronousDelivery(t *testing.T) {
	bus := NewBus()
	delivered := false
	bus.Subscribe(func(GameEvent) { delivered = true }, EventDriftUIStart)

	bus.Emit(EventDriftUIStart, &DriftUIPayload{})
	if !delivered {
		t.Fatal("handler must run before Emit returns")
	}
}

func TestBusStampsFrame(t *testing.T) {
	bus := NewBus()
	rec := &Recorder{Types: []EventType{EventScoreTick}}
	bus.Register(rec)

	bus.SetFrame(42)
	bus.Emit(EventScoreTick, &ScoreTickPayload{Current: 3})

	ev, ok := rec.Last(EventScoreTick)
	if !ok {
		t.Fatal("expected recorded event")
	}
	if ev.Frame != 42 {
		t.Errorf("expected frame 42, got %d", ev.Frame)
	}
	if p := ev.Payload.(*ScoreTickPayload); p.Current != 3 {
		t.Errorf("payload lost: %+v", p)
	}
}

func TestBusDropsUnhandled(t *testing.T) {
	bus := NewBus()
	rec := &Recorder{Types: []EventType{EventBoostStart}}
	bus.Emit(EventBoostStart, nil)
	bus.Register(rec)
	if rec.Count(EventBoostStart) != 0 {
		t.Error("events emitted before registration are not replayed")
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	for _, et := range AllTypes() {
		name := GetEventName(et)
		if name == "" {
			t.Errorf("event %d has no registered name", et)
			continue
		}
		got, ok := GetEventType(name)
		if !ok || got != et {
			t.Errorf("name %q resolved to %d, want %d", name, got, et)
		}
	}

	if et, ok := GetEventType("tick"); !ok || et != EventTick {
		t.Errorf("tick should resolve to EventTick")
	}
	if _, ok := GetEventType("Explode"); ok {
		t.Error("unknown names should not resolve")
	}
}

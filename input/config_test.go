package input

import (
	"errors"
	"testing"
	"time"
)

func TestHoldConfigValidate(t *testing.T) {
	if err := DefaultHoldConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, c := range []HoldConfig{
		{Initial: 0, Repeat: 0},
		{Initial: 100 * time.Millisecond, Repeat: -time.Millisecond},
		{Initial: 100 * time.Millisecond, Repeat: 200 * time.Millisecond},
	} {
		if err := c.Validate(); !errors.Is(err, ErrInvalidHold) {
			t.Errorf("%+v: expected ErrInvalidHold, got %v", c, err)
		}
	}
}

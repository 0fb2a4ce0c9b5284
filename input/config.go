package input

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/kart-drift/parameter"
)

var ErrInvalidHold = errors.New("input: invalid hold windows")

// HoldConfig sets how long a control stays held without key release events
type HoldConfig struct {
	Initial time.Duration `toml:"hold_initial"` // After a first press, spans the auto-repeat delay
	Repeat  time.Duration `toml:"hold_repeat"`  // After each repeat
}

func DefaultHoldConfig() HoldConfig {
	return HoldConfig{
		Initial: parameter.KeyHoldWindowInitial,
		Repeat:  parameter.KeyHoldWindow,
	}
}

// Validate requires positive windows with the repeat window no longer than the initial one
func (c HoldConfig) Validate() error {
	if c.Initial <= 0 || c.Repeat <= 0 || c.Repeat > c.Initial {
		return fmt.Errorf("%w: hold_initial %v, hold_repeat %v", ErrInvalidHold, c.Initial, c.Repeat)
	}
	return nil
}

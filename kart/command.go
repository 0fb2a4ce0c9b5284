package kart

import (
	"math"

	"github.com/lixenwraith/kart-drift/vmath"
)

// Commands holds the intent recorded for the next Update
// Setters may be called any number of times; the last write wins
type Commands struct {
	Accelerate Option[bool]
	Steer      Option[float64]
	Jump       Option[bool]
}

// take returns the recorded commands and clears them to unset
func (c *Commands) take() Commands {
	out := *c
	*c = Commands{}
	return out
}

// Accelerate requests throttle for the next update
func (c *Controller) Accelerate() {
	c.cmd.Accelerate = Some(true)
}

// Steer requests a steer amount in [-1, 1] for the next update
// Out of range values are clamped; NaN counts as zero
func (c *Controller) Steer(amount float64) {
	if math.IsNaN(amount) {
		amount = 0
	}
	c.cmd.Steer = Some(vmath.Clamp(amount, -1, 1))
}

// Jump records that jump is held during the next update
// Callers report the held state every frame; drift start and stop are derived from its edges
func (c *Controller) Jump() {
	c.cmd.Jump = Some(true)
}

// Pending returns the commands recorded since the last update
func (c *Controller) Pending() Commands {
	return c.cmd
}

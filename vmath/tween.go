package vmath

import "math"

// EaseFunc maps normalized progress [0, 1] to eased progress
type EaseFunc func(t float64) float64

func EaseLinear(t float64) float64 { return t }

func EaseInQuad(t float64) float64 { return t * t }

func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseOutBack overshoots past 1 before settling
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// Tween animates a scalar from From to To over Duration seconds
// Zero value is an inactive tween
type Tween struct {
	From     float64
	To       float64
	Duration float64
	Ease     EaseFunc

	elapsed float64
	active  bool
}

// NewTween creates an active tween; non-positive duration completes immediately at To
func NewTween(from, to, duration float64, ease EaseFunc) Tween {
	if ease == nil {
		ease = EaseOutQuad
	}
	tw := Tween{From: from, To: to, Duration: duration, Ease: ease, active: true}
	if duration <= 0 {
		tw.Duration = 0
	}
	return tw
}

// Active reports whether the tween still produces values
func (tw *Tween) Active() bool {
	return tw.active
}

// Stop deactivates the tween without jumping to the end value
func (tw *Tween) Stop() {
	tw.active = false
}

// Progress returns normalized elapsed time in [0, 1]
func (tw *Tween) Progress() float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return Clamp01(tw.elapsed / tw.Duration)
}

// Value returns the eased value at the current progress
func (tw *Tween) Value() float64 {
	ease := tw.Ease
	if ease == nil {
		ease = EaseLinear
	}
	return LerpUnclamped(tw.From, tw.To, ease(tw.Progress()))
}

// Advance steps the tween by dt seconds and returns the new value
// The final step returns exactly To and deactivates the tween
func (tw *Tween) Advance(dt float64) float64 {
	if !tw.active {
		return tw.Value()
	}
	tw.elapsed += math.Max(dt, 0)
	if tw.elapsed >= tw.Duration {
		tw.elapsed = tw.Duration
		tw.active = false
		return tw.To
	}
	return tw.Value()
}

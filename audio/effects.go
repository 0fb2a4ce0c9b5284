package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/kart-drift/core"
	"github.com/lixenwraith/kart-drift/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Major arpeggio from C5, one note per step of a level-up cue
var arpeggio = [...]float64{523.25, 659.25, 783.99, 1046.50, 1318.51}

// Boost flash pitch per tier, index 0 unused
var flashPitch = [...]float64{0, 440.0, 587.33, 783.99}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a shaped tone of the level-up arpeggio
func note(freq float64, rate beep.SampleRate) beep.Streamer {
	d := parameter.LevelUpNoteDuration
	return NewEnvelope(NewOscillator(freq, d, WaveSquare, rate), d, parameter.LevelUpAttack, parameter.LevelUpRelease, rate)
}

// CreateLevelUpSound plays a rising arpeggio, one note longer per tier above Bronze
func CreateLevelUpSound(tier core.Tier, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	count := int(tier) + 2
	if count > len(arpeggio) {
		count = len(arpeggio)
	}
	notes := make([]beep.Streamer, 0, count)
	for _, freq := range arpeggio[:count] {
		notes = append(notes, newVolume(note(freq, rate), 0.5))
	}

	return newVolume(beep.Seq(notes...), cfg.Volume(core.SoundLevelUp))
}

// CreateTickSound generates a short blip for score ticks
func CreateTickSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.TickSoundDuration

	osc := NewOscillator(1760.0, d, WaveSine, rate)
	shaped := NewEnvelope(osc, d, parameter.TickSoundAttack, parameter.TickSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(core.SoundScoreTick))
}

// CreateFlashSound generates a bright chime pitched by boost tier
func CreateFlashSound(tier int, cfg Config) beep.Streamer {
	if tier < 1 || tier >= len(flashPitch) {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.FlashSoundDuration
	freq := flashPitch[tier]

	fund := NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, parameter.FlashSoundAttack, parameter.FlashSoundRelease, rate)
	over := NewEnvelope(NewOscillator(freq*2, d, WaveSine, rate), d, parameter.FlashSoundAttack, parameter.FlashSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.Volume(core.SoundBoostFlash))
}

// CreateWhooshSound generates a noise sweep lasting the boost decay
func CreateWhooshSound(duration time.Duration, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	if duration < parameter.WhooshMinDuration {
		duration = parameter.WhooshMinDuration
	}

	noise := NewOscillator(0, duration, WaveNoise, rate)
	shaped := NewEnvelope(noise, duration, parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(core.SoundBoostWhoosh))
}

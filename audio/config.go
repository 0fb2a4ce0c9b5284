package audio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/lixenwraith/kart-drift/core"
	"github.com/lixenwraith/kart-drift/parameter"
)

var ErrInvalidConfig = errors.New("audio: invalid config")

// Config controls cue playback
// EffectVolumes is keyed by sound name ("level_up", "score_tick", "boost_flash", "boost_whoosh")
type Config struct {
	Enabled       bool               `toml:"enabled"`
	MasterVolume  float64            `toml:"master_volume"`
	SampleRate    int                `toml:"sample_rate"`
	EffectVolumes map[string]float64 `toml:"effect_volumes"`
}

// DefaultConfig returns audio settings from parameter defaults
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[string]float64{
			core.SoundLevelUp.String():     parameter.LevelUpVolume,
			core.SoundScoreTick.String():   parameter.TickSoundVolume,
			core.SoundBoostFlash.String():  parameter.FlashSoundVolume,
			core.SoundBoostWhoosh.String(): parameter.WhooshSoundVolume,
		},
	}
}

// Volume returns the effective gain of a cue: effect volume times master volume
// Sounds without an explicit effect volume play at master volume
func (c Config) Volume(st core.SoundType) float64 {
	v, ok := c.EffectVolumes[st.String()]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

// Validate checks volume ranges and effect names
func (c Config) Validate() error {
	var errs []error
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("%w: master_volume %v outside [0, 1]", ErrInvalidConfig, c.MasterVolume))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: sample_rate must be > 0, got %d", ErrInvalidConfig, c.SampleRate))
	}
	for name, v := range c.EffectVolumes {
		if _, ok := core.ParseSoundType(name); !ok {
			errs = append(errs, fmt.Errorf("%w: unknown effect %q", ErrInvalidConfig, name))
			continue
		}
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: effect %q volume %v is negative", ErrInvalidConfig, name, v))
		}
	}
	return errors.Join(errs...)
}

// ApplyEnv overrides c from environment values resolved by lookup
// Recognized keys: <prefix>AUDIO_ENABLED, <prefix>MASTER_VOLUME (0-100),
// <prefix>SFX_VOLUMES (JSON object of name to volume), <prefix>SAMPLE_RATE
func (c *Config) ApplyEnv(prefix string, lookup func(string) (string, bool)) {
	if enabled, ok := lookup(prefix + "AUDIO_ENABLED"); ok {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	if volume, ok := lookup(prefix + "MASTER_VOLUME"); ok {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = float64(val) / 100.0
			if c.MasterVolume < 0 {
				c.MasterVolume = 0
			}
			if c.MasterVolume > 1 {
				c.MasterVolume = 1
			}
		}
	}

	if effectVols, ok := lookup(prefix + "SFX_VOLUMES"); ok {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if c.EffectVolumes == nil {
				c.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for name, v := range volumes {
				if _, known := core.ParseSoundType(name); known {
					c.EffectVolumes[name] = v
				}
			}
		}
	}

	if sampleRate, ok := lookup(prefix + "SAMPLE_RATE"); ok {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

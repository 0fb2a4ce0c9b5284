package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/kart-drift/audio"
	"github.com/lixenwraith/kart-drift/engine"
	"github.com/lixenwraith/kart-drift/input"
	"github.com/lixenwraith/kart-drift/kart"
	"github.com/lixenwraith/kart-drift/physics"
	"github.com/lixenwraith/kart-drift/score"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "KART_DRIFT_"

var ErrInvalid = errors.New("config: invalid")

// Config aggregates the tuning of every component
//
//	debug = true
//	keymap = "keys.toml"
//	[kart]
//	auto_accelerate = true
//	[score]
//	silver_threshold = 800
//	[loop]
//	physics_step = "10ms"
//	[input]
//	hold_initial = "400ms"
type Config struct {
	Kart  kart.Config          `toml:"kart"`
	Score score.Config         `toml:"score"`
	Loop  engine.LoopConfig    `toml:"loop"`
	Audio audio.Config         `toml:"audio"`
	Body  physics.SphereConfig `toml:"body"`
	Input input.HoldConfig     `toml:"input"`

	Debug  bool   `toml:"debug"`
	Keymap string `toml:"keymap"` // Path to a keymap override file
}

// Default returns every component at its parameter defaults
func Default() Config {
	return Config{
		Kart:  kart.DefaultConfig(),
		Score: score.DefaultConfig(),
		Loop:  engine.DefaultLoopConfig(),
		Audio: audio.DefaultConfig(),
		Body:  physics.DefaultSphereConfig(),
		Input: input.DefaultHoldConfig(),
	}
}

// Load decodes the TOML file at path over the defaults
// An empty path returns the defaults; keys the file sets but Config lacks are an error
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalid, path, undecoded)
	}
	return cfg, nil
}

// ApplyEnv applies KART_DRIFT_* overrides from the process environment and the optional envFile
// Process variables win over the file; a missing file is not an error
func ApplyEnv(cfg *Config, envFile string) error {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("%w: env file %s: %w", ErrInvalid, envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	cfg.applyLookup(lookup)
	return nil
}

func (c *Config) applyLookup(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvPrefix + "AUTO_ACCELERATE"); ok {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Kart.AutoAccelerate = val
		}
	}
	if v, ok := lookup(EnvPrefix + "AUTO_INTENSITY"); ok {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			c.Kart.AutoIntensity = val
		}
	}
	if v, ok := lookup(EnvPrefix + "DEBUG"); ok {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Debug = val
		}
	}
	if v, ok := lookup(EnvPrefix + "KEYMAP"); ok && v != "" {
		c.Keymap = v
	}
	c.Audio.ApplyEnv(EnvPrefix, lookup)
}

// Validate joins the validation errors of every component
func (c Config) Validate() error {
	var errs []error
	for _, err := range []error{
		c.Kart.Validate(),
		c.Score.Validate(),
		c.Loop.Validate(),
		c.Audio.Validate(),
		c.Body.Validate(),
		c.Input.Validate(),
	} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// KeyTable returns the default bindings merged with the keymap file, if one is set
func (c Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if c.Keymap == "" {
		return base, nil
	}
	data, err := os.ReadFile(c.Keymap)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", c.Keymap, err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", c.Keymap, err)
	}
	return input.MergeKeyTable(base, override), nil
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/kart-drift/engine"
	"github.com/lixenwraith/kart-drift/input"
	"github.com/lixenwraith/kart-drift/score"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Score.SilverThreshold != Default().Score.SilverThreshold {
		t.Errorf("expected default silver threshold, got %v", cfg.Score.SilverThreshold)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "kart.toml", `
debug = true
[kart]
auto_accelerate = true
auto_intensity = 0.5
[score]
silver_threshold = 800
[loop]
physics_step = "10ms"
[input]
hold_initial = "400ms"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug not decoded")
	}
	if !cfg.Kart.AutoAccelerate || cfg.Kart.AutoIntensity != 0.5 {
		t.Errorf("kart overrides not applied: %+v", cfg.Kart)
	}
	if cfg.Score.SilverThreshold != 800 {
		t.Errorf("silver threshold = %v, want 800", cfg.Score.SilverThreshold)
	}
	if cfg.Score.GoldenThreshold != score.DefaultConfig().GoldenThreshold {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Loop.PhysicsStep != 10*time.Millisecond {
		t.Errorf("physics step = %v, want 10ms", cfg.Loop.PhysicsStep)
	}
	if cfg.Loop.FrameInterval != engine.DefaultLoopConfig().FrameInterval {
		t.Error("frame interval should keep its default")
	}
	if cfg.Input.Initial != 400*time.Millisecond || cfg.Input.Repeat != input.DefaultHoldConfig().Repeat {
		t.Errorf("hold windows not layered over defaults: %+v", cfg.Input)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "bad.toml", "[kart]\nwarp_drive = true\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for unknown key, got %v", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeFile(t, "broken.toml", "[kart\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for parse failure, got %v", err)
	}
}

func TestValidateJoinsComponentErrors(t *testing.T) {
	cfg := Default()
	cfg.Score.GoldenThreshold = cfg.Score.SilverThreshold - 1
	cfg.Loop.PhysicsStep = 0
	cfg.Input.Repeat = cfg.Input.Initial + time.Millisecond

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !errors.Is(err, score.ErrInvalidThresholds) {
		t.Error("score threshold error should be reachable")
	}
	if !errors.Is(err, engine.ErrInvalidLoopConfig) {
		t.Error("loop config error should be reachable")
	}
	if !errors.Is(err, input.ErrInvalidHold) {
		t.Error("hold window error should be reachable")
	}
}

func TestApplyEnvFileAndProcessPrecedence(t *testing.T) {
	envFile := writeFile(t, ".env", "KART_DRIFT_AUTO_ACCELERATE=true\nKART_DRIFT_AUTO_INTENSITY=0.25\nKART_DRIFT_MASTER_VOLUME=40\n")
	t.Setenv("KART_DRIFT_AUTO_INTENSITY", "0.75")

	cfg := Default()
	if err := ApplyEnv(&cfg, envFile); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if !cfg.Kart.AutoAccelerate {
		t.Error("file value should apply when the process has none")
	}
	if cfg.Kart.AutoIntensity != 0.75 {
		t.Errorf("process value should win, got %v", cfg.Kart.AutoIntensity)
	}
	if cfg.Audio.MasterVolume != 0.4 {
		t.Errorf("audio override should apply, got %v", cfg.Audio.MasterVolume)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg := Default()
	if err := ApplyEnv(&cfg, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestApplyEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("KART_DRIFT_AUTO_INTENSITY", "lots")
	cfg := Default()
	want := cfg.Kart.AutoIntensity
	if err := ApplyEnv(&cfg, ""); err != nil {
		t.Fatal(err)
	}
	if cfg.Kart.AutoIntensity != want {
		t.Errorf("malformed value should be ignored, got %v", cfg.Kart.AutoIntensity)
	}
}

func TestKeyTableMergesKeymap(t *testing.T) {
	cfg := Default()
	cfg.Keymap = writeFile(t, "keys.toml", "[runes]\nj = \"jump\"\nw = \"none\"\n")

	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable: %v", err)
	}
	if e, ok := kt.Runes['j']; !ok || e.Control != input.ControlJump {
		t.Errorf("j should bind to jump, got %+v", e)
	}
	if _, ok := kt.Runes['w']; ok {
		t.Error("w should be unbound")
	}
	if e, ok := kt.Runes[' ']; !ok || e.Control != input.ControlJump {
		t.Error("default bindings should survive the merge")
	}
}

func TestKeyTableMissingFile(t *testing.T) {
	cfg := Default()
	cfg.Keymap = filepath.Join(t.TempDir(), "none.toml")
	if _, err := cfg.KeyTable(); err == nil {
		t.Error("expected error for missing keymap")
	}
}

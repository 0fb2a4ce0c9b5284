package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/kart-drift/parameter"
)

// Sink accepts finished cue streamers for playback
type Sink interface {
	Play(s beep.Streamer)
}

// SoundManager owns the speaker and a mixer all cues are added to
// Operations before Initialize or after Cleanup are silently dropped
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	logger      *slog.Logger
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(cfg Config, logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger.With("component", "audio"),
	}
}

// Initialize opens the speaker at the configured sample rate and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("speaker initialized", "sample_rate", sm.cfg.SampleRate)
	return nil
}

// Play mixes s into the running output
func (sm *SoundManager) Play(s beep.Streamer) {
	if s == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Active returns the number of cues still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// Cleanup stops all cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

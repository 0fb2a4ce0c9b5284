package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.8
)

// Level Up Sound
const (
	LevelUpNoteDuration = 90 * time.Millisecond
	LevelUpAttack       = 5 * time.Millisecond
	LevelUpRelease      = 60 * time.Millisecond
)

// Score Tick Sound
const (
	TickSoundDuration = 40 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 30 * time.Millisecond
)

// Boost Tier Flash Sound
const (
	FlashSoundDuration = 250 * time.Millisecond
	FlashSoundAttack   = 5 * time.Millisecond
	FlashSoundRelease  = 200 * time.Millisecond
)

// Boost Whoosh Sound
const (
	WhooshSoundAttack  = 80 * time.Millisecond
	WhooshSoundRelease = 200 * time.Millisecond
)

// Cue Volumes
const (
	LevelUpVolume     = 0.9
	TickSoundVolume   = 0.3
	FlashSoundVolume  = 0.7
	WhooshSoundVolume = 0.6

	// WhooshMinDuration is the shortest whoosh, used for single tier boosts
	WhooshMinDuration = 150 * time.Millisecond
)

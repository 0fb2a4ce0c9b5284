package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundLevelUp     SoundType = iota // Tier promotion arpeggio
	SoundScoreTick                    // Periodic blip while scoring
	SoundBoostFlash                   // Boost tier latched during a drift
	SoundBoostWhoosh                  // Boost released at drift end
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"level_up", "score_tick", "boost_flash", "boost_whoosh"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a sound by its config name
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

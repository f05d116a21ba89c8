package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPlayerShoot SoundType = iota // Descending sweep on player fire
	SoundEnemyShoot                   // Ascending sweep on enemy fire
	SoundEnemyStep                    // Low tick on formation cadence
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundPlayerShoot: "player_shoot",
	SoundEnemyShoot:  "enemy_shoot",
	SoundEnemyStep:   "enemy_step",
}

// String returns the config key of the sound
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config key back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

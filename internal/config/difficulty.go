package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change how forgiving a session is (lives, time budget). Level
// progressions stay the same, but only normal sessions are ranked.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", s)
	}
}

// Ranked reports whether sessions on this preset reach the leaderboards.
func (p DifficultyPreset) Ranked() bool {
	return p == "" || p == DifficultyNormal
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Chimp.Lives = 5
		cfg.Visual.Lives = 5
		cfg.RapidMath.SessionMs = 90000
		cfg.Stroop.WrongPenalty = 0
	case DifficultyHard:
		cfg.Chimp.Lives = 1
		cfg.Visual.Lives = 1
		cfg.RapidMath.SessionMs = 45000
		cfg.Stroop.WrongPenalty = 10
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/musclebrain.yaml
var defaultYAML []byte

//go:embed defaults/tutorials.yaml
var tutorialsYAML []byte

// Default returns the built-in configuration. It mirrors
// defaults/musclebrain.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		App: AppConfig{
			DBPath:      "~/.musclebrain/scores.db",
			TickRate:    30,
			LogLevel:    "info",
			SSHAddr:     ":23234",
			HTTPAddr:    ":8080",
			IdleMinutes: 30,
		},
		Chimp: ChimpConfig{
			Lives:          3,
			MaxLevel:       15,
			LevelUpDelayMs: 1500,
			FailDelayMs:    1000,
		},
		Schulte: SchulteConfig{
			ErrorFlashMs:   300,
			LevelUpDelayMs: 1500,
		},
		Reaction: ReactionConfig{
			Rounds:             5,
			TooEarlyCooldownMs: 1500,
			FinishDelayMs:      1500,
		},
		Visual: VisualConfig{
			Lives:           3,
			CountdownSteps:  3,
			CountdownStepMs: 500,
			ClearDelayMs:    1000,
			FailDelayMs:     1200,
			StreakBonusAt:   5,
			StreakBonus:     20,
		},
		RapidMath: RapidMathConfig{
			SessionMs:      60000,
			CorrectDelayMs: 400,
			WrongDelayMs:   600,
			TimeoutDelayMs: 500,
		},
		Stroop: StroopConfig{
			CongruentPercent: 30,
			NextRoundDelayMs: 300,
			WrongPenalty:     5,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

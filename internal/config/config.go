// Package config provides YAML-based configuration loading for the
// application and per-game tuning, plus the embedded tutorial texts.
package config

// Config is the root configuration document.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Chimp     ChimpConfig     `yaml:"chimp"`
	Schulte   SchulteConfig   `yaml:"schulte"`
	Reaction  ReactionConfig  `yaml:"reaction"`
	Visual    VisualConfig    `yaml:"visual"`
	RapidMath RapidMathConfig `yaml:"rapid_math"`
	Stroop    StroopConfig    `yaml:"stroop"`
}

// AppConfig holds process-wide settings. Command-line flags take precedence.
type AppConfig struct {
	DBPath      string `yaml:"db_path"`
	RedisURL    string `yaml:"redis_url"` // empty disables the leaderboard cache
	TickRate    int    `yaml:"tick_rate"`
	LogLevel    string `yaml:"log_level"`
	SSHAddr     string `yaml:"ssh_addr"`
	HTTPAddr    string `yaml:"http_addr"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes"`
}

// ChimpConfig tunes the Chimp Test.
type ChimpConfig struct {
	Lives          int `yaml:"lives"`
	MaxLevel       int `yaml:"max_level"`
	LevelUpDelayMs int `yaml:"level_up_delay_ms"`
	FailDelayMs    int `yaml:"fail_delay_ms"`
}

// SchulteConfig tunes the Schulte Table.
type SchulteConfig struct {
	ErrorFlashMs   int `yaml:"error_flash_ms"`
	LevelUpDelayMs int `yaml:"level_up_delay_ms"`
}

// ReactionConfig tunes the Reaction Time test.
type ReactionConfig struct {
	Rounds             int `yaml:"rounds"`
	TooEarlyCooldownMs int `yaml:"too_early_cooldown_ms"`
	FinishDelayMs      int `yaml:"finish_delay_ms"`
}

// VisualConfig tunes Visual Memory.
type VisualConfig struct {
	Lives           int `yaml:"lives"`
	CountdownSteps  int `yaml:"countdown_steps"`
	CountdownStepMs int `yaml:"countdown_step_ms"`
	ClearDelayMs    int `yaml:"clear_delay_ms"`
	FailDelayMs     int `yaml:"fail_delay_ms"`
	StreakBonusAt   int `yaml:"streak_bonus_at"`
	StreakBonus     int `yaml:"streak_bonus"`
}

// RapidMathConfig tunes Rapid Math.
type RapidMathConfig struct {
	SessionMs      int `yaml:"session_ms"`
	CorrectDelayMs int `yaml:"correct_delay_ms"`
	WrongDelayMs   int `yaml:"wrong_delay_ms"`
	TimeoutDelayMs int `yaml:"timeout_delay_ms"`
}

// StroopConfig tunes the Stroop Test.
type StroopConfig struct {
	CongruentPercent int `yaml:"congruent_percent"`
	NextRoundDelayMs int `yaml:"next_round_delay_ms"`
	WrongPenalty     int `yaml:"wrong_penalty"`
}

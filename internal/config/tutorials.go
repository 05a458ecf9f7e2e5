package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tutorial is the how-to-play card shown before a game's first session.
type Tutorial struct {
	Title        string   `yaml:"title"`
	Instructions []string `yaml:"instructions"`
	Time         string   `yaml:"time"`
	CTA          string   `yaml:"cta"`
}

// Tutorials maps game IDs to their tutorial cards.
type Tutorials map[string]Tutorial

// LoadTutorials parses the embedded tutorial texts.
func LoadTutorials() (Tutorials, error) {
	var t Tutorials
	if err := yaml.Unmarshal(tutorialsYAML, &t); err != nil {
		return nil, fmt.Errorf("config: cannot parse tutorials: %w", err)
	}
	return t, nil
}

// For returns the tutorial for a game, falling back to a generic card.
func (t Tutorials) For(gameID, title string) Tutorial {
	if tut, ok := t[gameID]; ok {
		return tut
	}
	return Tutorial{Title: title, CTA: "Start"}
}

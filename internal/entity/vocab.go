package entity

import "strings"

// PartOfSpeech classifies a vocabulary entry for quiz construction.
type PartOfSpeech string

const (
	PartNoun      PartOfSpeech = "noun"
	PartVerb      PartOfSpeech = "verb"
	PartAdjective PartOfSpeech = "adjective"
	PartParticle  PartOfSpeech = "particle"
)

// VocabEntry is one immutable vocabulary card from the course catalog.
type VocabEntry struct {
	ID             string       `json:"id"`
	Hanzi          string       `json:"hanzi"`
	Pinyin         string       `json:"pinyin"`
	English        string       `json:"english"`
	Type           PartOfSpeech `json:"type"`
	Radical        string       `json:"radical,omitempty"`
	RadicalMeaning string       `json:"radicalMeaning,omitempty"`
	ToneNumber     int          `json:"toneNumber"`
	Week           int          `json:"week"`
}

// Lesson groups the new words (by vocabulary id) and grammar points taught together.
type Lesson struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	NewWords      []string `json:"newWords"`
	GrammarPoints []string `json:"grammarPoints,omitempty"`
}

// Unit is an ordered, named group of lessons on the roadmap.
type Unit struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Lessons     []Lesson `json:"lessons"`
}

// GrammarPoint is a sentence pattern with one worked example.
type GrammarPoint struct {
	ID             string `json:"id"`
	Pattern        string `json:"pattern"`
	English        string `json:"english"`
	Example        string `json:"example"`
	ExamplePinyin  string `json:"examplePinyin"`
	ExampleEnglish string `json:"exampleEnglish"`
	Week           int    `json:"week"`
}

// Difficulty tiers a sentence challenge and fixes its XP reward.
type Difficulty string

const (
	DifficultyUnspecified Difficulty = ""
	DifficultyEasy        Difficulty = "easy"
	DifficultyMedium      Difficulty = "medium"
	DifficultyHard        Difficulty = "hard"
)

// XPReward returns the fixed XP awarded for clearing a quest of this tier.
func (d Difficulty) XPReward() int {
	switch d {
	case DifficultyMedium:
		return 25
	case DifficultyHard:
		return 50
	default:
		return 10
	}
}

// ParseDifficulty converts an arbitrary string into a supported Difficulty value.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	case "":
		return DifficultyUnspecified, nil
	default:
		return DifficultyUnspecified, ErrInvalidDifficulty
	}
}

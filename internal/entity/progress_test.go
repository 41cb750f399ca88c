package entity

import (
	"encoding/json"
	"testing"
)

func TestCloneDoesNotAlias(t *testing.T) {
	p := NewProgress()
	p.UnlockedCards = []string{"v1"}

	clone := p.Clone()
	clone.XP = 500
	clone.UnlockedCards = append(clone.UnlockedCards, "v2")

	if p.XP != 0 {
		t.Errorf("clone mutation leaked xp: %d", p.XP)
	}
	if len(p.UnlockedCards) != 1 {
		t.Errorf("clone mutation leaked cards: %v", p.UnlockedCards)
	}
}

func TestNormalize(t *testing.T) {
	p := &Progress{
		Level:         0,
		Streak:        8,
		LongestStreak: 3,
		TotalDuelsWon: 5,
	}
	p.Normalize()

	if p.Level != 1 {
		t.Errorf("level = %d, want floored to 1", p.Level)
	}
	if p.DailyXPGoal != DefaultDailyXPGoal {
		t.Errorf("dailyXPGoal = %d, want default", p.DailyXPGoal)
	}
	if p.LongestStreak != 8 {
		t.Errorf("longestStreak = %d, want raised to streak", p.LongestStreak)
	}
	if p.TotalDuelsPlayed != 5 {
		t.Errorf("duelsPlayed = %d, want raised to wins", p.TotalDuelsPlayed)
	}
	if p.UnlockedCards == nil || p.CompletedLessons == nil || p.CompletedQuests == nil {
		t.Error("nil collections survived normalization")
	}
}

func TestTodayXPOn(t *testing.T) {
	p := NewProgress()
	p.TodayDate = "2025-06-15"
	p.TodayXP = 40

	if got := p.TodayXPOn("2025-06-15"); got != 40 {
		t.Errorf("same day = %d, want 40", got)
	}
	if got := p.TodayXPOn("2025-06-16"); got != 0 {
		t.Errorf("stale day = %d, want 0", got)
	}
}

func TestProgressJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(NewProgress())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// The backup format is shared with the original web app; these names are a
	// compatibility contract.
	for _, key := range []string{"xp", "level", "streak", "longestStreak", "unlockedCards", "completedLessons", "currentUnitId", "currentLessonId", "dailyXPGoal", "streakFreezes"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("backup missing field %q", key)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":   DifficultyEasy,
		"medium": DifficultyMedium,
		"hard":   DifficultyHard,
		"":       DifficultyUnspecified,
	}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q) = (%v, %v), want %v", in, got, err, want)
		}
	}
	if _, err := ParseDifficulty("legendary"); err == nil {
		t.Error("unknown difficulty accepted")
	}
}

func TestDifficultyXPReward(t *testing.T) {
	cases := map[Difficulty]int{
		DifficultyEasy:        10,
		DifficultyMedium:      25,
		DifficultyHard:        50,
		DifficultyUnspecified: 10,
	}
	for d, want := range cases {
		if got := d.XPReward(); got != want {
			t.Errorf("%q reward = %d, want %d", d, got, want)
		}
	}
}

package entity

// Progress is the single persisted progression record for a player.
// JSON field names match the original web app's backup format so that
// exports remain interchangeable.
type Progress struct {
	XP               int      `json:"xp"`
	Level            int      `json:"level"`
	Streak           int      `json:"streak"`
	LongestStreak    int      `json:"longestStreak"`
	LastPlayed       string   `json:"lastPlayed,omitempty"`
	UnlockedCards    []string `json:"unlockedCards"`
	CompletedLessons []string `json:"completedLessons"`
	CompletedQuests  []string `json:"completedQuests"`
	TotalDuelsWon    int      `json:"totalDuelsWon"`
	TotalDuelsPlayed int      `json:"totalDuelsPlayed"`
	CurrentUnitID    string   `json:"currentUnitId"`
	CurrentLessonID  string   `json:"currentLessonId"`
	DailyXPGoal      int      `json:"dailyXPGoal"`
	TodayXP          int      `json:"todayXP"`
	TodayDate        string   `json:"todayDate,omitempty"`
	StreakFreezes    int      `json:"streakFreezes"`
	LastFreezeUsed   string   `json:"lastFreezeUsed,omitempty"`
}

// DefaultDailyXPGoal is the daily target used until the player picks their own.
const DefaultDailyXPGoal = 50

// NewProgress returns the zero-value record a fresh player starts from.
func NewProgress() *Progress {
	return &Progress{
		Level:            1,
		UnlockedCards:    []string{},
		CompletedLessons: []string{},
		CompletedQuests:  []string{},
		CurrentUnitID:    "unit-1",
		CurrentLessonID:  "lesson-1-1",
		DailyXPGoal:      DefaultDailyXPGoal,
	}
}

// Clone returns a deep copy so mutations never alias the caller's record.
func (p *Progress) Clone() *Progress {
	copy := *p
	copy.UnlockedCards = append([]string{}, p.UnlockedCards...)
	copy.CompletedLessons = append([]string{}, p.CompletedLessons...)
	copy.CompletedQuests = append([]string{}, p.CompletedQuests...)
	return &copy
}

// Normalize ensures defaults & constraints before persistence.
func (p *Progress) Normalize() {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.DailyXPGoal <= 0 {
		p.DailyXPGoal = DefaultDailyXPGoal
	}
	if p.UnlockedCards == nil {
		p.UnlockedCards = []string{}
	}
	if p.CompletedLessons == nil {
		p.CompletedLessons = []string{}
	}
	if p.CompletedQuests == nil {
		p.CompletedQuests = []string{}
	}
	if p.Streak > p.LongestStreak {
		p.LongestStreak = p.Streak
	}
	if p.TotalDuelsWon > p.TotalDuelsPlayed {
		p.TotalDuelsPlayed = p.TotalDuelsWon
	}
}

// TodayXPOn reports the XP earned on the given date, treating a stale
// accumulator as zero without refreshing it.
func (p *Progress) TodayXPOn(date string) int {
	if p.TodayDate != date {
		return 0
	}
	return p.TodayXP
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/mandarin-master/internal/catalog"
	"github.com/eslsoft/mandarin-master/internal/entity"
	"github.com/eslsoft/mandarin-master/internal/repository"
)

const (
	// maxStreakFreezes caps how many grace days a player can hold at once.
	maxStreakFreezes = 3
	dateLayout       = "2006-01-02"
)

// ProgressUsecase is the single authoritative transform layer over the
// persisted progression record. Every mutation computes the fully-updated
// record, persists it, and returns it; persistence failures degrade to
// in-memory state with a logged warning, never an error.
type ProgressUsecase interface {
	Load(ctx context.Context) *entity.Progress
	AddXP(ctx context.Context, p *entity.Progress, amount int) *entity.Progress
	UpdateStreak(ctx context.Context, p *entity.Progress) *entity.Progress
	UnlockCard(ctx context.Context, p *entity.Progress, cardID string) *entity.Progress
	CompleteQuest(ctx context.Context, p *entity.Progress, questID string) *entity.Progress
	CompleteLesson(ctx context.Context, p *entity.Progress, lessonID string, newWordIDs []string) *entity.Progress
	RecordDuel(ctx context.Context, p *entity.Progress, won bool) *entity.Progress
	SetDailyGoal(ctx context.Context, p *entity.Progress, goal int) (*entity.Progress, error)
	Export(p *entity.Progress) ([]byte, error)
	Import(ctx context.Context, data []byte) (*entity.Progress, error)
	ShareSummary(p *entity.Progress) string
	RecordDraw(ctx context.Context, hanzi string, mistakes int) (perfect bool, err error)
	PerfectDraws(ctx context.Context) ([]string, error)
}

// NewProgressUsecase wires the repositories with default behaviour.
func NewProgressUsecase(repo repository.ProgressRepository, draws repository.DrawRepository, logger *logrus.Logger) ProgressUsecase {
	if logger == nil {
		logger = logrus.New()
	}
	return &progressUsecase{
		repo:   repo,
		draws:  draws,
		logger: logger,
		clock:  time.Now,
	}
}

type progressUsecase struct {
	repo   repository.ProgressRepository
	draws  repository.DrawRepository
	logger *logrus.Logger
	clock  func() time.Time
}

// XPForLevel is the closed-form XP threshold to finish the given level.
// Strictly increasing in level, which bounds the leveling loop in AddXP.
func XPForLevel(level int) int {
	return level*100 + (level-1)*50
}

func (u *progressUsecase) today() string {
	return u.clock().Format(dateLayout)
}

func (u *progressUsecase) persist(ctx context.Context, p *entity.Progress) *entity.Progress {
	p.Normalize()
	if err := u.repo.Save(ctx, p); err != nil {
		u.logger.WithError(err).Warn("failed to save progress, continuing in memory")
	}
	return p
}

func (u *progressUsecase) Load(ctx context.Context) *entity.Progress {
	p, err := u.repo.Load(ctx)
	if err != nil {
		u.logger.WithError(err).Warn("failed to load progress, starting from defaults")
		return entity.NewProgress()
	}
	if p == nil {
		return entity.NewProgress()
	}
	p.Normalize()
	return p
}

func (u *progressUsecase) AddXP(ctx context.Context, p *entity.Progress, amount int) *entity.Progress {
	next := p.Clone()
	today := u.today()

	// Roll the daily accumulator forward before adding: a stale date means
	// yesterday's XP must not leak into today's goal.
	if next.TodayDate != today {
		next.TodayDate = today
		next.TodayXP = amount
	} else {
		next.TodayXP += amount
	}

	next.XP += amount
	levelsGained := 0
	for next.XP >= XPForLevel(next.Level) {
		next.XP -= XPForLevel(next.Level)
		next.Level++
		levelsGained++
	}
	if levelsGained > 0 {
		next.StreakFreezes = min(maxStreakFreezes, next.StreakFreezes+levelsGained)
	}

	return u.persist(ctx, next)
}

func (u *progressUsecase) UpdateStreak(ctx context.Context, p *entity.Progress) *entity.Progress {
	next := p.Clone()
	now := u.clock()
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	twoDaysAgo := now.AddDate(0, 0, -2).Format(dateLayout)

	switch {
	case next.LastPlayed == today:
		// Already counted today; only the daily bookkeeping may need a refresh.
	case next.LastPlayed == yesterday:
		next.Streak++
	case next.LastPlayed == twoDaysAgo && next.StreakFreezes > 0:
		// One missed day forgiven per available freeze.
		next.Streak++
		next.StreakFreezes--
		next.LastFreezeUsed = today
	default:
		next.Streak = 1
	}

	next.LongestStreak = max(next.LongestStreak, next.Streak)
	next.LastPlayed = today
	if next.TodayDate != today {
		next.TodayDate = today
		next.TodayXP = 0
	}

	return u.persist(ctx, next)
}

func (u *progressUsecase) UnlockCard(ctx context.Context, p *entity.Progress, cardID string) *entity.Progress {
	if lo.Contains(p.UnlockedCards, cardID) {
		return p
	}
	next := p.Clone()
	next.UnlockedCards = append(next.UnlockedCards, cardID)
	return u.persist(ctx, next)
}

func (u *progressUsecase) CompleteQuest(ctx context.Context, p *entity.Progress, questID string) *entity.Progress {
	if lo.Contains(p.CompletedQuests, questID) {
		return p
	}
	next := p.Clone()
	next.CompletedQuests = append(next.CompletedQuests, questID)
	return u.persist(ctx, next)
}

func (u *progressUsecase) CompleteLesson(ctx context.Context, p *entity.Progress, lessonID string, newWordIDs []string) *entity.Progress {
	if lo.Contains(p.CompletedLessons, lessonID) {
		return p
	}
	next := p.Clone()
	next.CompletedLessons = append(next.CompletedLessons, lessonID)
	for _, id := range newWordIDs {
		if !lo.Contains(next.UnlockedCards, id) {
			next.UnlockedCards = append(next.UnlockedCards, id)
		}
	}
	if unitID, nextLessonID, ok := catalog.NextLesson(lessonID); ok {
		next.CurrentUnitID = unitID
		next.CurrentLessonID = nextLessonID
	}
	return u.persist(ctx, next)
}

func (u *progressUsecase) RecordDuel(ctx context.Context, p *entity.Progress, won bool) *entity.Progress {
	next := p.Clone()
	next.TotalDuelsPlayed++
	if won {
		next.TotalDuelsWon++
	}
	return u.persist(ctx, next)
}

func (u *progressUsecase) SetDailyGoal(ctx context.Context, p *entity.Progress, goal int) (*entity.Progress, error) {
	if goal <= 0 {
		return nil, entity.ErrInvalidDailyGoal
	}
	next := p.Clone()
	next.DailyXPGoal = goal
	return u.persist(ctx, next), nil
}

func (u *progressUsecase) Export(p *entity.Progress) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}
	return data, nil
}

// parseBackup validates and merges a backup payload onto defaults. Returns
// nil unless the payload carries numeric xp and level fields, so partial or
// older exports still load while junk is rejected.
func parseBackup(data []byte) *entity.Progress {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	var xp, level float64
	if err := json.Unmarshal(raw["xp"], &xp); err != nil {
		return nil
	}
	if err := json.Unmarshal(raw["level"], &level); err != nil {
		return nil
	}
	p := entity.NewProgress()
	if err := json.Unmarshal(data, p); err != nil {
		return nil
	}
	return p
}

func (u *progressUsecase) Import(ctx context.Context, data []byte) (*entity.Progress, error) {
	p := parseBackup(data)
	if p == nil {
		return nil, entity.ErrInvalidBackup
	}
	return u.persist(ctx, p), nil
}

func (u *progressUsecase) ShareSummary(p *entity.Progress) string {
	winRate := 0
	if p.TotalDuelsPlayed > 0 {
		winRate = int(float64(p.TotalDuelsWon)/float64(p.TotalDuelsPlayed)*100 + 0.5)
	}
	lastActive := p.LastPlayed
	if lastActive == "" {
		lastActive = "Never"
	}
	lines := []string{
		"🀄 Mandarin Master — Progress Summary",
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━",
		"",
		fmt.Sprintf("🏯 Level %d Duelist", p.Level),
		fmt.Sprintf("⚡ %d XP", p.XP),
		fmt.Sprintf("🔥 %d-day streak (Best: %d)", p.Streak, p.LongestStreak),
		"",
		fmt.Sprintf("📜 Cards Mastered: %d", len(p.UnlockedCards)),
		fmt.Sprintf("📚 Lessons Completed: %d", len(p.CompletedLessons)),
		fmt.Sprintf("⚔️ Duels Won: %d / %d", p.TotalDuelsWon, p.TotalDuelsPlayed),
		fmt.Sprintf("📈 Win Rate: %d%%", winRate),
		"",
		fmt.Sprintf("🗓️ Last active: %s", lastActive),
		"",
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━",
		"Play at: Mandarin Master: Linguistic Duelist",
	}
	return strings.Join(lines, "\n")
}

func (u *progressUsecase) RecordDraw(ctx context.Context, hanzi string, mistakes int) (bool, error) {
	if mistakes > 0 {
		return false, nil
	}
	draws, err := u.draws.LoadPerfectDraws(ctx)
	if err != nil {
		return false, fmt.Errorf("load perfect draws: %w", err)
	}
	if lo.Contains(draws, hanzi) {
		return true, nil
	}
	draws = append(draws, hanzi)
	if err := u.draws.SavePerfectDraws(ctx, draws); err != nil {
		return false, fmt.Errorf("save perfect draws: %w", err)
	}
	return true, nil
}

func (u *progressUsecase) PerfectDraws(ctx context.Context) ([]string, error) {
	return u.draws.LoadPerfectDraws(ctx)
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/mandarin-master/internal/entity"
)

type fakeProgressRepo struct {
	stored    *entity.Progress
	loadErr   error
	saveErr   error
	saveCount int
}

func (r *fakeProgressRepo) Load(ctx context.Context) (*entity.Progress, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.stored == nil {
		return nil, nil
	}
	return r.stored.Clone(), nil
}

func (r *fakeProgressRepo) Save(ctx context.Context, p *entity.Progress) error {
	r.saveCount++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = p.Clone()
	return nil
}

type fakeDrawRepo struct {
	draws []string
}

func (r *fakeDrawRepo) LoadPerfectDraws(ctx context.Context) ([]string, error) {
	return append([]string{}, r.draws...), nil
}

func (r *fakeDrawRepo) SavePerfectDraws(ctx context.Context, hanzi []string) error {
	r.draws = append([]string{}, hanzi...)
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// newTestUsecase fixes the clock so date-sensitive transitions are deterministic.
func newTestUsecase(repo *fakeProgressRepo, draws *fakeDrawRepo, now time.Time) *progressUsecase {
	if repo == nil {
		repo = &fakeProgressRepo{}
	}
	if draws == nil {
		draws = &fakeDrawRepo{}
	}
	return &progressUsecase{
		repo:   repo,
		draws:  draws,
		logger: quietLogger(),
		clock:  func() time.Time { return now },
	}
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestXPForLevelStrictlyIncreasing(t *testing.T) {
	for level := 1; level < 100; level++ {
		if XPForLevel(level) >= XPForLevel(level+1) {
			t.Fatalf("threshold not increasing at level %d: %d >= %d",
				level, XPForLevel(level), XPForLevel(level+1))
		}
	}
	if got := XPForLevel(1); got != 100 {
		t.Errorf("XPForLevel(1) = %d, want 100", got)
	}
	if got := XPForLevel(2); got != 250 {
		t.Errorf("XPForLevel(2) = %d, want 250", got)
	}
}

func TestAddXPAccumulates(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	state := u.AddXP(ctx, entity.NewProgress(), 30)
	if state.XP != 30 || state.Level != 1 {
		t.Fatalf("got xp=%d level=%d, want 30/1", state.XP, state.Level)
	}
	if state.TodayXP != 30 || state.TodayDate != "2025-06-15" {
		t.Errorf("daily accumulator = %d on %q, want 30 on 2025-06-15", state.TodayXP, state.TodayDate)
	}
}

func TestAddXPLevelsThroughOverflow(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	// 400 XP crosses level 1 (100) and level 2 (250), leaving 50 into level 3.
	state := u.AddXP(context.Background(), entity.NewProgress(), 400)
	if state.Level != 3 || state.XP != 50 {
		t.Fatalf("got level=%d xp=%d, want 3/50", state.Level, state.XP)
	}
	if state.XP >= XPForLevel(state.Level) {
		t.Errorf("xp %d not normalized below threshold %d", state.XP, XPForLevel(state.Level))
	}
}

func TestAddXPZeroKeepsState(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	start := entity.NewProgress()
	start.XP = 40
	start.Level = 2
	state := u.AddXP(context.Background(), start, 0)
	if state.XP != 40 || state.Level != 2 || state.StreakFreezes != 0 {
		t.Errorf("AddXP(0) changed state: %+v", state)
	}
}

func TestAddXPSplitMatchesCombined(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	split := u.AddXP(ctx, u.AddXP(ctx, entity.NewProgress(), 180), 90)
	combined := u.AddXP(ctx, entity.NewProgress(), 270)
	if split.XP != combined.XP || split.Level != combined.Level {
		t.Errorf("split = %d/%d, combined = %d/%d",
			split.XP, split.Level, combined.XP, combined.Level)
	}
}

func TestAddXPRollsStaleDailyAccumulator(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	start := entity.NewProgress()
	start.TodayDate = "2025-06-14"
	start.TodayXP = 120
	state := u.AddXP(context.Background(), start, 25)
	if state.TodayXP != 25 || state.TodayDate != "2025-06-15" {
		t.Errorf("stale accumulator leaked: %d on %q", state.TodayXP, state.TodayDate)
	}
}

func TestAddXPGrantsFreezesOnLevelUp(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	state := u.AddXP(ctx, entity.NewProgress(), 150)
	if state.Level != 2 || state.StreakFreezes != 1 {
		t.Fatalf("got level=%d freezes=%d, want 2/1", state.Level, state.StreakFreezes)
	}

	// A huge award gains many levels but freezes stay capped.
	state = u.AddXP(ctx, state, 100000)
	if state.StreakFreezes != 3 {
		t.Errorf("freezes = %d, want cap of 3", state.StreakFreezes)
	}
}

func TestUpdateStreakFirstPlay(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	state := u.UpdateStreak(context.Background(), entity.NewProgress())
	if state.Streak != 1 || state.LongestStreak != 1 {
		t.Errorf("got streak=%d longest=%d, want 1/1", state.Streak, state.LongestStreak)
	}
	if state.LastPlayed != "2025-06-15" {
		t.Errorf("lastPlayed = %q", state.LastPlayed)
	}
}

func TestUpdateStreakIdempotentSameDay(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	once := u.UpdateStreak(ctx, entity.NewProgress())
	twice := u.UpdateStreak(ctx, once)
	if twice.Streak != once.Streak {
		t.Errorf("second call changed streak: %d -> %d", once.Streak, twice.Streak)
	}
}

func TestUpdateStreakExtendsFromYesterday(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	start := entity.NewProgress()
	start.Streak = 4
	start.LongestStreak = 9
	start.LastPlayed = "2025-06-14"
	state := u.UpdateStreak(context.Background(), start)
	if state.Streak != 5 {
		t.Errorf("streak = %d, want 5", state.Streak)
	}
	if state.LongestStreak != 9 {
		t.Errorf("longest = %d, want 9", state.LongestStreak)
	}
}

func TestUpdateStreakConsumesFreezeForOneMissedDay(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	start := entity.NewProgress()
	start.Streak = 6
	start.LongestStreak = 6
	start.LastPlayed = "2025-06-13"
	start.StreakFreezes = 2
	state := u.UpdateStreak(context.Background(), start)
	if state.Streak != 7 {
		t.Errorf("streak = %d, want 7 (freeze forgives one missed day)", state.Streak)
	}
	if state.StreakFreezes != 1 {
		t.Errorf("freezes = %d, want 1", state.StreakFreezes)
	}
	if state.LastFreezeUsed != "2025-06-15" {
		t.Errorf("lastFreezeUsed = %q", state.LastFreezeUsed)
	}
}

func TestUpdateStreakResetsWithoutFreeze(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	start := entity.NewProgress()
	start.Streak = 6
	start.LongestStreak = 6
	start.LastPlayed = "2025-06-13"
	state := u.UpdateStreak(context.Background(), start)
	if state.Streak != 1 {
		t.Errorf("streak = %d, want reset to 1", state.Streak)
	}
	if state.LongestStreak != 6 {
		t.Errorf("longest = %d, want 6 preserved", state.LongestStreak)
	}
}

func TestUpdateStreakResetsAfterLongGap(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	start := entity.NewProgress()
	start.Streak = 30
	start.LongestStreak = 30
	start.LastPlayed = "2025-06-01"
	start.StreakFreezes = 3
	state := u.UpdateStreak(context.Background(), start)
	if state.Streak != 1 {
		t.Errorf("streak = %d, want 1 (freezes only cover a single missed day)", state.Streak)
	}
	if state.StreakFreezes != 3 {
		t.Errorf("freezes = %d, want 3 untouched", state.StreakFreezes)
	}
}

func TestUnlockCardIdempotent(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	state := u.UnlockCard(ctx, entity.NewProgress(), "v1")
	state = u.UnlockCard(ctx, state, "v1")
	if len(state.UnlockedCards) != 1 || state.UnlockedCards[0] != "v1" {
		t.Errorf("unlockedCards = %v, want [v1]", state.UnlockedCards)
	}
}

func TestCompleteQuestIdempotent(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	state := u.CompleteQuest(ctx, entity.NewProgress(), "quest-a")
	state = u.CompleteQuest(ctx, state, "quest-a")
	if len(state.CompletedQuests) != 1 {
		t.Errorf("completedQuests = %v, want one entry", state.CompletedQuests)
	}
}

func TestCompleteLessonAdvancesWithinUnit(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	state := u.CompleteLesson(context.Background(), entity.NewProgress(), "lesson-1-1", []string{"v1", "v2", "v3", "v4"})
	if state.CurrentLessonID != "lesson-1-2" || state.CurrentUnitID != "unit-1" {
		t.Errorf("pointer = %s/%s, want unit-1/lesson-1-2", state.CurrentUnitID, state.CurrentLessonID)
	}
	if len(state.UnlockedCards) != 4 {
		t.Errorf("unlockedCards = %v", state.UnlockedCards)
	}
}

func TestCompleteLessonCrossesUnitBoundary(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	state := u.CompleteLesson(context.Background(), entity.NewProgress(), "lesson-1-4", []string{"v14"})
	if state.CurrentUnitID != "unit-2" || state.CurrentLessonID != "lesson-2-1" {
		t.Errorf("pointer = %s/%s, want unit-2/lesson-2-1", state.CurrentUnitID, state.CurrentLessonID)
	}
}

func TestCompleteLessonFinalLeavesPointer(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	start := entity.NewProgress()
	start.CurrentUnitID = "unit-6"
	start.CurrentLessonID = "lesson-6-3"
	state := u.CompleteLesson(context.Background(), start, "lesson-6-3", []string{"v56", "v57"})
	if state.CurrentUnitID != "unit-6" || state.CurrentLessonID != "lesson-6-3" {
		t.Errorf("final lesson moved pointer to %s/%s", state.CurrentUnitID, state.CurrentLessonID)
	}
}

func TestCompleteLessonTwiceIsNoOp(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	once := u.CompleteLesson(ctx, entity.NewProgress(), "lesson-1-1", []string{"v1"})
	twice := u.CompleteLesson(ctx, once, "lesson-1-1", []string{"v1", "v99"})
	if len(twice.CompletedLessons) != 1 {
		t.Errorf("completedLessons = %v", twice.CompletedLessons)
	}
	if twice.CurrentLessonID != once.CurrentLessonID {
		t.Errorf("repeat completion moved pointer to %s", twice.CurrentLessonID)
	}
	if len(twice.UnlockedCards) != len(once.UnlockedCards) {
		t.Errorf("repeat completion unlocked cards: %v", twice.UnlockedCards)
	}
}

func TestCompleteLessonMergesWithoutDuplicates(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	start := entity.NewProgress()
	start.UnlockedCards = []string{"v1", "v2"}
	state := u.CompleteLesson(context.Background(), start, "lesson-1-1", []string{"v1", "v2", "v3", "v4"})
	if len(state.UnlockedCards) != 4 {
		t.Errorf("unlockedCards = %v, want 4 unique ids", state.UnlockedCards)
	}
}

func TestRecordDuelCounters(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	state := u.RecordDuel(ctx, entity.NewProgress(), true)
	state = u.RecordDuel(ctx, state, false)
	if state.TotalDuelsPlayed != 2 || state.TotalDuelsWon != 1 {
		t.Errorf("duels = %d won / %d played, want 1/2", state.TotalDuelsWon, state.TotalDuelsPlayed)
	}
}

func TestSetDailyGoalRejectsNonPositive(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	if _, err := u.SetDailyGoal(ctx, entity.NewProgress(), 0); !errors.Is(err, entity.ErrInvalidDailyGoal) {
		t.Errorf("goal 0: err = %v, want ErrInvalidDailyGoal", err)
	}
	state, err := u.SetDailyGoal(ctx, entity.NewProgress(), 80)
	if err != nil || state.DailyXPGoal != 80 {
		t.Errorf("goal 80: state=%v err=%v", state, err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	state := u.AddXP(ctx, entity.NewProgress(), 175)
	state = u.UnlockCard(ctx, state, "v7")
	data, err := u.Export(state)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	imported, err := u.Import(ctx, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported.XP != state.XP || imported.Level != state.Level {
		t.Errorf("round trip changed xp/level: %d/%d vs %d/%d",
			imported.XP, imported.Level, state.XP, state.Level)
	}
	if len(imported.UnlockedCards) != 1 || imported.UnlockedCards[0] != "v7" {
		t.Errorf("round trip lost unlocks: %v", imported.UnlockedCards)
	}
}

func TestImportPartialBackupMergesDefaults(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	state, err := u.Import(context.Background(), []byte(`{"xp":5,"level":2}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if state.XP != 5 || state.Level != 2 {
		t.Errorf("got xp=%d level=%d, want 5/2", state.XP, state.Level)
	}
	if state.DailyXPGoal != entity.DefaultDailyXPGoal {
		t.Errorf("dailyXPGoal = %d, want default %d", state.DailyXPGoal, entity.DefaultDailyXPGoal)
	}
	if state.CurrentLessonID != "lesson-1-1" {
		t.Errorf("currentLessonId = %q, want default", state.CurrentLessonID)
	}
}

func TestImportRejectsMalformedPayloads(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)
	ctx := context.Background()

	for _, payload := range []string{"not json", `{"foo":1}`, `{"xp":"five","level":2}`, `[]`, ""} {
		if _, err := u.Import(ctx, []byte(payload)); !errors.Is(err, entity.ErrInvalidBackup) {
			t.Errorf("payload %q: err = %v, want ErrInvalidBackup", payload, err)
		}
	}
}

func TestImportRejectionLeavesStoreUntouched(t *testing.T) {
	repo := &fakeProgressRepo{}
	u := newTestUsecase(repo, nil, testNow)
	ctx := context.Background()

	u.AddXP(ctx, entity.NewProgress(), 42)
	before := repo.saveCount
	if _, err := u.Import(ctx, []byte("junk")); err == nil {
		t.Fatal("expected rejection")
	}
	if repo.saveCount != before {
		t.Error("rejected import reached the store")
	}
	if repo.stored.XP != 42 {
		t.Errorf("stored xp = %d, want 42", repo.stored.XP)
	}
}

func TestShareSummaryIsDeterministic(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	state := entity.NewProgress()
	state.Level = 3
	state.XP = 120
	state.Streak = 7
	state.LongestStreak = 12
	state.LastPlayed = "2025-06-15"
	state.UnlockedCards = []string{"v1", "v2"}
	state.TotalDuelsWon = 3
	state.TotalDuelsPlayed = 4

	summary := u.ShareSummary(state)
	if summary != u.ShareSummary(state) {
		t.Fatal("summary not deterministic")
	}
	for _, want := range []string{"Level 3 Duelist", "120 XP", "7-day streak (Best: 12)", "Cards Mastered: 2", "Duels Won: 3 / 4", "Win Rate: 75%", "Last active: 2025-06-15"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestShareSummaryZeroDuels(t *testing.T) {
	u := newTestUsecase(nil, nil, testNow)

	summary := u.ShareSummary(entity.NewProgress())
	if !strings.Contains(summary, "Win Rate: 0%") {
		t.Errorf("zero-duel win rate wrong:\n%s", summary)
	}
	if !strings.Contains(summary, "Last active: Never") {
		t.Errorf("missing Never for fresh state:\n%s", summary)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	repo := &fakeProgressRepo{loadErr: errors.New("disk gone")}
	u := newTestUsecase(repo, nil, testNow)

	state := u.Load(context.Background())
	if state.Level != 1 || state.XP != 0 {
		t.Errorf("got %+v, want fresh defaults", state)
	}
}

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	repo := &fakeProgressRepo{saveErr: errors.New("disk full")}
	u := newTestUsecase(repo, nil, testNow)

	state := u.AddXP(context.Background(), entity.NewProgress(), 60)
	if state.XP != 60 {
		t.Errorf("in-memory state lost on save failure: %+v", state)
	}
}

func TestRecordDraw(t *testing.T) {
	draws := &fakeDrawRepo{}
	u := newTestUsecase(nil, draws, testNow)
	ctx := context.Background()

	perfect, err := u.RecordDraw(ctx, "好", 0)
	if err != nil || !perfect {
		t.Fatalf("perfect draw: got (%v, %v)", perfect, err)
	}
	perfect, err = u.RecordDraw(ctx, "好", 0)
	if err != nil || !perfect {
		t.Fatalf("repeat perfect draw: got (%v, %v)", perfect, err)
	}
	if len(draws.draws) != 1 {
		t.Errorf("draws = %v, want single entry", draws.draws)
	}

	perfect, err = u.RecordDraw(ctx, "我", 2)
	if err != nil || perfect {
		t.Fatalf("imperfect draw: got (%v, %v)", perfect, err)
	}
	if len(draws.draws) != 1 {
		t.Errorf("imperfect draw was recorded: %v", draws.draws)
	}
}

package usecase

import (
	"math"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"

	"github.com/eslsoft/mandarin-master/internal/catalog"
	"github.com/eslsoft/mandarin-master/internal/entity"
)

// DuelUsecase generates sentence-translation challenges and scores them.
// All operations are pure over their inputs; the only randomness comes from
// the injected source so tests can fix the sequence.
type DuelUsecase interface {
	GenerateQuest(pool []entity.VocabEntry, difficulty entity.Difficulty) *entity.QuestCard
	CheckAnswer(quest *entity.QuestCard, placed []entity.VocabEntry) bool
	XPForStreak(baseXP, streak int) int
}

// NewDuelUsecase builds a generator backed by the catalog's template bank.
// rng may be nil, in which case a time-seeded source is used.
func NewDuelUsecase(rng *rand.Rand) DuelUsecase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &duelUsecase{
		templates: catalog.SentenceTemplates(),
		rng:       rng,
	}
}

type duelUsecase struct {
	templates []entity.SentenceTemplate
	rng       *rand.Rand
}

// GenerateQuest picks a uniformly random feasible template for the pool and
// wraps it into a playable card. A nil result means no template of the
// requested difficulty is playable with the given pool: a normal outcome for
// small or newly-unlocked pools, not an error.
func (u *duelUsecase) GenerateQuest(pool []entity.VocabEntry, difficulty entity.Difficulty) *entity.QuestCard {
	index := catalog.HanziIndex(pool)

	templates := u.templates
	if difficulty != entity.DifficultyUnspecified {
		templates = lo.Filter(templates, func(t entity.SentenceTemplate, _ int) bool {
			return t.Difficulty == difficulty
		})
	}
	playable := lo.Filter(templates, func(t entity.SentenceTemplate, _ int) bool {
		return lo.EveryBy(t.HanziKeys, func(k string) bool {
			_, ok := index[k]
			return ok
		})
	})
	if len(playable) == 0 {
		return nil
	}

	template := playable[u.rng.Intn(len(playable))]
	targetOrder := lo.Map(template.HanziKeys, func(k string, _ int) entity.VocabEntry {
		return index[k]
	})

	// Distractors: random pool entries outside the answer, scaled so short
	// answers still face a challenging word bank.
	answerHanzi := lo.SliceToMap(template.HanziKeys, func(k string) (string, struct{}) { return k, struct{}{} })
	distractorPool := lo.Filter(pool, func(v entity.VocabEntry, _ int) bool {
		_, inAnswer := answerHanzi[v.Hanzi]
		return !inAnswer
	})

	var numDistractors int
	switch {
	case len(targetOrder) == 1:
		numDistractors = min(5, len(distractorPool))
	case len(targetOrder) <= 3:
		numDistractors = min(4, len(distractorPool))
	default:
		numDistractors = min(3, len(distractorPool))
	}

	distractors := u.shuffled(distractorPool)[:numDistractors]
	allCards := u.shuffled(append(append([]entity.VocabEntry{}, targetOrder...), distractors...))

	return &entity.QuestCard{
		ID:            ulid.MustNew(ulid.Timestamp(time.Now()), u.rng).String(),
		English:       template.English,
		TargetOrder:   targetOrder,
		ShuffledCards: allCards,
		Difficulty:    template.Difficulty,
		XPReward:      template.Difficulty.XPReward(),
	}
}

// CheckAnswer is an exact-length, exact-order hanzi comparison.
func (u *duelUsecase) CheckAnswer(quest *entity.QuestCard, placed []entity.VocabEntry) bool {
	if quest == nil || len(placed) != len(quest.TargetOrder) {
		return false
	}
	return lo.EveryBy(lo.Zip2(quest.TargetOrder, placed), func(pair lo.Tuple2[entity.VocabEntry, entity.VocabEntry]) bool {
		return pair.A.Hanzi == pair.B.Hanzi
	})
}

// XPForStreak applies the win-streak bonus: +10% per consecutive win,
// saturating at +100% for streaks of 10 or more.
func (u *duelUsecase) XPForStreak(baseXP, streak int) int {
	bonus := float64(min(streak, 10)) * 0.1
	return int(math.Round(float64(baseXP) * (1 + bonus)))
}

func (u *duelUsecase) shuffled(cards []entity.VocabEntry) []entity.VocabEntry {
	out := append([]entity.VocabEntry{}, cards...)
	u.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

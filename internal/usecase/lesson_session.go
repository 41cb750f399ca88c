package usecase

import (
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/mandarin-master/internal/catalog"
	"github.com/eslsoft/mandarin-master/internal/entity"
)

// StepType is the closed set of lesson step variants.
type StepType string

const (
	StepTheory   StepType = "theory"
	StepIntro    StepType = "intro"
	StepMC       StepType = "mc"
	StepMatching StepType = "matching"
	StepSentence StepType = "sentence"
	StepVictory  StepType = "victory"
)

// MCDirection selects which side of a card a multiple-choice step prompts with.
type MCDirection string

const (
	HanziToEnglish MCDirection = "hanzi-to-english"
	EnglishToHanzi MCDirection = "english-to-hanzi"
	AudioToHanzi   MCDirection = "audio-to-hanzi"
)

// Step is one tagged variant in a lesson's step sequence. Grammar is set only
// for theory steps, Direction only for mc steps.
type Step struct {
	Type      StepType
	Direction MCDirection
	Grammar   *entity.GrammarPoint
}

// MaxHearts is the lives budget for one lesson attempt.
const MaxHearts = 5

const (
	quizStepXP         = 10
	lessonCompletionXP = 50
	matchingPairLimit  = 4
)

// MCQuestion is one generated multiple-choice round.
type MCQuestion struct {
	Direction MCDirection
	Correct   entity.VocabEntry
	Options   []entity.VocabEntry
}

// MatchingRound is one generated pairs-matching round.
type MatchingRound struct {
	Pairs []entity.VocabEntry
	Left  []entity.VocabEntry
	Right []entity.VocabEntry
}

// LessonSession drives a learner through one lesson as an ordered sequence of
// heterogeneous steps with a hearts failure mechanic. Nothing is persisted by
// the session itself; the caller commits XP and unlocks to the progress store
// only after the victory step.
type LessonSession struct {
	lesson  entity.Lesson
	vocab   []entity.VocabEntry
	steps   []Step
	index   int
	hearts  int
	intro   int
	xp      int
	rng     *rand.Rand
	catalog []entity.VocabEntry
}

// NewLessonSession assembles the step sequence for a lesson. rng may be nil,
// in which case a time-seeded source is used.
func NewLessonSession(lesson entity.Lesson, rng *rand.Rand) *LessonSession {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &LessonSession{
		lesson:  lesson,
		vocab:   catalog.LessonVocabulary(lesson),
		hearts:  MaxHearts,
		rng:     rng,
		catalog: catalog.Vocabulary(),
	}
	s.steps = s.buildSteps()
	return s
}

// buildSteps assembles the pedagogical sequence:
// theory per grammar point, one intro, a shuffled recognition+listening pool
// (two drills per word), a matching round for lessons of three or more words,
// two or three sentence challenges, coin-flip recall drills, then victory.
func (s *LessonSession) buildSteps() []Step {
	var steps []Step

	for _, point := range catalog.LessonGrammar(s.lesson) {
		p := point
		steps = append(steps, Step{Type: StepTheory, Grammar: &p})
	}

	steps = append(steps, Step{Type: StepIntro})

	reinforcement := make([]Step, 0, 2*len(s.vocab))
	for range s.vocab {
		reinforcement = append(reinforcement,
			Step{Type: StepMC, Direction: HanziToEnglish},
			Step{Type: StepMC, Direction: AudioToHanzi},
		)
	}
	s.rng.Shuffle(len(reinforcement), func(i, j int) {
		reinforcement[i], reinforcement[j] = reinforcement[j], reinforcement[i]
	})
	steps = append(steps, reinforcement...)

	if len(s.vocab) >= 3 {
		steps = append(steps, Step{Type: StepMatching})
	}

	steps = append(steps, Step{Type: StepSentence}, Step{Type: StepSentence})
	if len(s.vocab) > 5 {
		steps = append(steps, Step{Type: StepSentence})
	}

	// Final recall: each word gets an English→hanzi drill with independent
	// 50% probability. Variety over completeness.
	for range s.vocab {
		if s.rng.Float64() > 0.5 {
			steps = append(steps, Step{Type: StepMC, Direction: EnglishToHanzi})
		}
	}

	return append(steps, Step{Type: StepVictory})
}

// Lesson returns the lesson this session teaches.
func (s *LessonSession) Lesson() entity.Lesson { return s.lesson }

// Vocabulary returns the lesson's resolved new words.
func (s *LessonSession) Vocabulary() []entity.VocabEntry { return s.vocab }

// Steps returns the assembled sequence.
func (s *LessonSession) Steps() []Step { return s.steps }

// Current returns the active step.
func (s *LessonSession) Current() Step { return s.steps[s.index] }

// Hearts returns the remaining lives.
func (s *LessonSession) Hearts() int { return s.hearts }

// XPEarned returns the XP accumulated this session, excluding the victory bonus.
func (s *LessonSession) XPEarned() int { return s.xp }

// Advance moves to the next step. It is a no-op on the terminal victory step.
func (s *LessonSession) Advance() {
	if s.index < len(s.steps)-1 {
		s.index++
	}
}

// AnswerCorrect credits one correct quiz interaction.
func (s *LessonSession) AnswerCorrect() {
	s.xp += quizStepXP
}

// AnswerIncorrect burns one heart, floored at zero.
func (s *LessonSession) AnswerIncorrect() {
	s.hearts = max(0, s.hearts-1)
}

// AddXP credits XP awarded directly by a sentence round.
func (s *LessonSession) AddXP(amount int) {
	s.xp += amount
}

// OutOfHearts reports whether progression has halted before victory.
func (s *LessonSession) OutOfHearts() bool {
	return s.hearts == 0 && s.Current().Type != StepVictory
}

// AtVictory reports whether the session reached its terminal step.
func (s *LessonSession) AtVictory() bool {
	return s.Current().Type == StepVictory
}

// FinalXP is the session XP plus the lesson-completion bonus, reported to the
// progress store when the learner confirms the victory step.
func (s *LessonSession) FinalXP() int {
	return s.xp + lessonCompletionXP
}

// Retry resets the cursor, hearts, and session XP. The step sequence is not
// regenerated: a retry replays the identical sequence.
func (s *LessonSession) Retry() {
	s.index = 0
	s.hearts = MaxHearts
	s.intro = 0
	s.xp = 0
}

// IntroWord returns the word shown by the intro step's pagination.
func (s *LessonSession) IntroWord() (entity.VocabEntry, bool) {
	if s.intro < 0 || s.intro >= len(s.vocab) {
		return entity.VocabEntry{}, false
	}
	return s.vocab[s.intro], true
}

// IntroIndex returns the intro pagination position.
func (s *LessonSession) IntroIndex() int { return s.intro }

// IntroNext pages forward through the intro; advancing past the last word
// leaves the intro step. Reports whether the intro is still active.
func (s *LessonSession) IntroNext() bool {
	if s.intro < len(s.vocab)-1 {
		s.intro++
		return true
	}
	s.Advance()
	return false
}

// IntroPrev pages backward within the intro. The intro is the only step with
// backward navigation.
func (s *LessonSession) IntroPrev() {
	if s.intro > 0 {
		s.intro--
	}
}

// Progress is the percentage of quiz steps passed so far. Intro and victory
// are not quiz content and are excluded from both counts.
func (s *LessonSession) Progress() float64 {
	isQuiz := func(st Step) bool {
		return st.Type != StepIntro && st.Type != StepVictory
	}
	total := lo.CountBy(s.steps, isQuiz)
	if total == 0 {
		return 0
	}
	done := lo.CountBy(s.steps[:s.index], isQuiz)
	return float64(done) / float64(total) * 100
}

// NextMCQuestion builds a multiple-choice round for the current mc step:
// a random target from the lesson's words plus three distractors drawn from
// the full catalog, options shuffled.
func (s *LessonSession) NextMCQuestion(direction MCDirection) *MCQuestion {
	if len(s.vocab) == 0 {
		return nil
	}
	correct := s.vocab[s.rng.Intn(len(s.vocab))]
	pool := lo.Filter(s.catalog, func(v entity.VocabEntry, _ int) bool {
		return v.ID != correct.ID
	})
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	options := append([]entity.VocabEntry{correct}, pool[:min(3, len(pool))]...)
	s.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return &MCQuestion{Direction: direction, Correct: correct, Options: options}
}

// NextMatchingRound builds a pairs round covering up to four of the lesson's
// words, with both columns independently shuffled.
func (s *LessonSession) NextMatchingRound() *MatchingRound {
	pairs := append([]entity.VocabEntry{}, s.vocab...)
	s.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	pairs = pairs[:min(matchingPairLimit, len(pairs))]

	left := append([]entity.VocabEntry{}, pairs...)
	right := append([]entity.VocabEntry{}, pairs...)
	s.rng.Shuffle(len(left), func(i, j int) { left[i], left[j] = left[j], left[i] })
	s.rng.Shuffle(len(right), func(i, j int) { right[i], right[j] = right[j], right[i] })
	return &MatchingRound{Pairs: pairs, Left: left, Right: right}
}

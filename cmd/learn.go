package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eslsoft/mandarin-master/internal/catalog"
	"github.com/eslsoft/mandarin-master/internal/entity"
	"github.com/eslsoft/mandarin-master/internal/usecase"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Play a lesson from the roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID, _ := cmd.Flags().GetString("lesson")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		state := a.progress.Load(ctx)
		if lessonID == "" {
			lessonID = state.CurrentLessonID
		}
		lesson, ok := catalog.LessonByID(lessonID)
		if !ok {
			return fmt.Errorf("%w: %s", entity.ErrLessonNotFound, lessonID)
		}

		session := usecase.NewLessonSession(lesson, nil)
		if len(session.Vocabulary()) == 0 {
			return fmt.Errorf("%w: %s has no vocabulary", entity.ErrLessonNotFound, lessonID)
		}

		out := cmd.OutOrStdout()
		in := bufio.NewScanner(cmd.InOrStdin())
		fmt.Fprintf(out, "── %s — %s ──\n", lesson.Name, lesson.Description)

		for {
			if session.OutOfHearts() {
				fmt.Fprintln(out, "\n💔 Out of hearts! Practice makes perfect.")
				choice := prompt(in, out, "[r]etry or [q]uit? ")
				if strings.HasPrefix(strings.ToLower(choice), "r") {
					session.Retry()
					continue
				}
				fmt.Fprintln(out, "No progress recorded. See you on the roadmap!")
				return nil
			}

			step := session.Current()
			switch step.Type {
			case usecase.StepTheory:
				runTheory(in, out, step.Grammar)
				session.Advance()
			case usecase.StepIntro:
				runIntro(a, in, out, session)
			case usecase.StepMC:
				runMultipleChoice(a, in, out, session, step.Direction)
				session.Advance()
			case usecase.StepMatching:
				runMatching(in, out, session)
				session.Advance()
			case usecase.StepSentence:
				runSentence(a, in, out, session)
				session.Advance()
			case usecase.StepVictory:
				finalXP := session.FinalXP()
				fmt.Fprintf(out, "\n✨ Lesson complete! %d XP earned, %d hearts left, %d words.\n",
					finalXP, session.Hearts(), len(session.Vocabulary()))
				state = a.progress.AddXP(ctx, state, finalXP)
				state = a.progress.CompleteLesson(ctx, state, lesson.ID, lesson.NewWords)
				state = a.progress.UpdateStreak(ctx, state)
				fmt.Fprintf(out, "Level %d · %d/%d XP · 🔥 %d-day streak\n",
					state.Level, state.XP, usecase.XPForLevel(state.Level), state.Streak)
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(learnCmd)

	learnCmd.Flags().String("lesson", "", "lesson id to play (default: current roadmap lesson)")
}

func prompt(in *bufio.Scanner, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	if !in.Scan() {
		return "q"
	}
	return strings.TrimSpace(in.Text())
}

// readChoice asks for a 1-based option number until it gets one in range.
func readChoice(in *bufio.Scanner, out io.Writer, label string, n int) int {
	for {
		text := prompt(in, out, label)
		if text == "q" {
			return -1
		}
		i, err := strconv.Atoi(text)
		if err == nil && i >= 1 && i <= n {
			return i - 1
		}
		fmt.Fprintf(out, "Enter a number between 1 and %d.\n", n)
	}
}

func runTheory(in *bufio.Scanner, out io.Writer, point *entity.GrammarPoint) {
	fmt.Fprintf(out, "\n📖 Grammar: %s (%s)\n", point.Pattern, point.English)
	fmt.Fprintf(out, "   %s — %s — %s\n", point.Example, point.ExamplePinyin, point.ExampleEnglish)
	prompt(in, out, "Press Enter to continue...")
}

func runIntro(a *app, in *bufio.Scanner, out io.Writer, session *usecase.LessonSession) {
	for {
		word, ok := session.IntroWord()
		if !ok {
			session.Advance()
			return
		}
		fmt.Fprintf(out, "\n🆕 New word %d/%d: %s (%s) — %s\n",
			session.IntroIndex()+1, len(session.Vocabulary()), word.Hanzi, word.Pinyin, word.English)
		if word.Radical != "" {
			fmt.Fprintf(out, "   radical %s (%s)\n", word.Radical, word.RadicalMeaning)
		}
		playPronunciation(a, out, word.Hanzi)

		switch prompt(in, out, "[Enter] next, [p]revious: ") {
		case "p":
			session.IntroPrev()
		default:
			if !session.IntroNext() {
				return
			}
		}
	}
}

func runMultipleChoice(a *app, in *bufio.Scanner, out io.Writer, session *usecase.LessonSession, direction usecase.MCDirection) {
	q := session.NextMCQuestion(direction)
	if q == nil {
		return
	}

	fmt.Fprintf(out, "\n[%.0f%%] ❤ %d\n", session.Progress(), session.Hearts())
	switch direction {
	case usecase.HanziToEnglish:
		fmt.Fprintf(out, "What does %s (%s) mean?\n", q.Correct.Hanzi, q.Correct.Pinyin)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt.English)
		}
	case usecase.EnglishToHanzi:
		fmt.Fprintf(out, "Select the correct character for: %s\n", q.Correct.English)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s (%s)\n", i+1, opt.Hanzi, opt.Pinyin)
		}
	case usecase.AudioToHanzi:
		fmt.Fprintln(out, "What do you hear?")
		playPronunciation(a, out, q.Correct.Hanzi)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s (%s)\n", i+1, opt.Hanzi, opt.Pinyin)
		}
	}

	pick := readChoice(in, out, "> ", len(q.Options))
	if pick >= 0 && q.Options[pick].ID == q.Correct.ID {
		fmt.Fprintln(out, "✨ Correct!")
		session.AnswerCorrect()
		return
	}
	fmt.Fprintf(out, "Wrong — the answer is %q (%s %s)\n", q.Correct.English, q.Correct.Hanzi, q.Correct.Pinyin)
	session.AnswerIncorrect()
}

func runMatching(in *bufio.Scanner, out io.Writer, session *usecase.LessonSession) {
	round := session.NextMatchingRound()
	matched := map[string]bool{}

	fmt.Fprintf(out, "\n🔗 Match the pairs (%d)\n", len(round.Pairs))
	for len(matched) < len(round.Pairs) {
		for i, v := range round.Left {
			mark := " "
			if matched[v.ID] {
				mark = "✓"
			}
			fmt.Fprintf(out, "  %s %d) %s (%s)\n", mark, i+1, v.Hanzi, v.Pinyin)
		}
		for i, v := range round.Right {
			mark := " "
			if matched[v.ID] {
				mark = "✓"
			}
			fmt.Fprintf(out, "  %s %c) %s\n", mark, 'a'+i, v.English)
		}

		li := readChoice(in, out, "character number> ", len(round.Left))
		if li < 0 {
			return
		}
		text := prompt(in, out, "meaning letter> ")
		if text == "" || text == "q" {
			return
		}
		ri := int(text[0] - 'a')
		if ri < 0 || ri >= len(round.Right) {
			continue
		}

		if round.Left[li].ID == round.Right[ri].ID && !matched[round.Left[li].ID] {
			matched[round.Left[li].ID] = true
			fmt.Fprintln(out, "✨ Matched!")
			session.AnswerCorrect()
		} else {
			fmt.Fprintln(out, "Not a pair.")
			session.AnswerIncorrect()
			if session.Hearts() == 0 {
				return
			}
		}
	}
}

func runSentence(a *app, in *bufio.Scanner, out io.Writer, session *usecase.LessonSession) {
	quest := a.duel.GenerateQuest(session.Vocabulary(), entity.DifficultyUnspecified)
	if quest == nil {
		// Too few unlocked words for any template; skip without penalty.
		return
	}

	fmt.Fprintf(out, "\n⚔️  Arrange the sentence: %q (+%d XP)\n", quest.English, quest.XPReward)
	placed := pickSentence(in, out, quest)
	if a.duel.CheckAnswer(quest, placed) {
		fmt.Fprintln(out, "✨ Excellent!")
		session.AddXP(a.duel.XPForStreak(quest.XPReward, 0))
	} else {
		fmt.Fprintf(out, "Try again next time — answer: %s (%s)\n",
			joinHanzi(quest.TargetOrder), joinPinyin(quest.TargetOrder))
		session.AnswerIncorrect()
	}
}

// pickSentence reads a space-separated sequence of word-bank numbers.
func pickSentence(in *bufio.Scanner, out io.Writer, quest *entity.QuestCard) []entity.VocabEntry {
	for i, card := range quest.ShuffledCards {
		fmt.Fprintf(out, "  %d) %s (%s)\n", i+1, card.Hanzi, card.Pinyin)
	}
	for {
		text := prompt(in, out, "word numbers in order> ")
		if text == "" || text == "q" {
			return nil
		}
		fields := strings.Fields(text)
		placed := make([]entity.VocabEntry, 0, len(fields))
		ok := true
		for _, f := range fields {
			i, err := strconv.Atoi(f)
			if err != nil || i < 1 || i > len(quest.ShuffledCards) {
				ok = false
				break
			}
			placed = append(placed, quest.ShuffledCards[i-1])
		}
		if ok {
			return placed
		}
		fmt.Fprintf(out, "Enter numbers between 1 and %d, separated by spaces.\n", len(quest.ShuffledCards))
	}
}

func playPronunciation(a *app, out io.Writer, hanzi string) {
	path, err := a.player.Fetch(context.Background(), hanzi)
	if err != nil {
		fmt.Fprintf(out, "   🔇 audio unavailable for %s\n", hanzi)
		return
	}
	fmt.Fprintf(out, "   🔊 pronunciation: %s\n", path)
}

func joinHanzi(cards []entity.VocabEntry) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Hanzi
	}
	return strings.Join(parts, "")
}

func joinPinyin(cards []entity.VocabEntry) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pinyin
	}
	return strings.Join(parts, " ")
}

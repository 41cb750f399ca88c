// Package catalog holds the immutable course content: vocabulary entries,
// units and lessons, grammar points, and the sentence-template bank.
package catalog

import (
	"github.com/samber/lo"

	"github.com/eslsoft/mandarin-master/internal/entity"
)

var (
	vocabByID    = lo.Associate(hsk1Vocabulary, func(v entity.VocabEntry) (string, entity.VocabEntry) { return v.ID, v })
	grammarByID  = lo.Associate(grammarPoints, func(g entity.GrammarPoint) (string, entity.GrammarPoint) { return g.ID, g })
	lessonByID   = map[string]entity.Lesson{}
	lessonUnitID = map[string]string{}
)

func init() {
	for _, unit := range courseContent {
		for _, lesson := range unit.Lessons {
			lessonByID[lesson.ID] = lesson
			lessonUnitID[lesson.ID] = unit.ID
		}
	}
}

// Vocabulary returns every entry in the catalog, in week order.
func Vocabulary() []entity.VocabEntry {
	return hsk1Vocabulary
}

// VocabByID looks up a single vocabulary entry.
func VocabByID(id string) (entity.VocabEntry, bool) {
	v, ok := vocabByID[id]
	return v, ok
}

// VocabByIDs resolves a list of ids, silently skipping unknown ones.
func VocabByIDs(ids []string) []entity.VocabEntry {
	return lo.FilterMap(ids, func(id string, _ int) (entity.VocabEntry, bool) {
		return VocabByID(id)
	})
}

// HanziIndex converts a vocabulary pool into a hanzi lookup. Duplicate hanzi
// across distinct ids collapse to one entry, last writer wins.
func HanziIndex(pool []entity.VocabEntry) map[string]entity.VocabEntry {
	return lo.Associate(pool, func(v entity.VocabEntry) (string, entity.VocabEntry) { return v.Hanzi, v })
}

// Units returns the roadmap in order.
func Units() []entity.Unit {
	return courseContent
}

// LessonByID looks up a lesson anywhere on the roadmap.
func LessonByID(id string) (entity.Lesson, bool) {
	l, ok := lessonByID[id]
	return l, ok
}

// UnitOfLesson returns the id of the unit containing the given lesson.
func UnitOfLesson(lessonID string) (string, bool) {
	u, ok := lessonUnitID[lessonID]
	return u, ok
}

// NextLesson returns the lesson that follows the given one in catalog order:
// the next lesson in the same unit if one exists, otherwise the first lesson
// of the next unit. ok is false for the final lesson of the final unit and
// for unknown ids.
func NextLesson(lessonID string) (unitID, nextLessonID string, ok bool) {
	for ui, unit := range courseContent {
		for li, lesson := range unit.Lessons {
			if lesson.ID != lessonID {
				continue
			}
			if li+1 < len(unit.Lessons) {
				return unit.ID, unit.Lessons[li+1].ID, true
			}
			if ui+1 < len(courseContent) {
				next := courseContent[ui+1]
				return next.ID, next.Lessons[0].ID, true
			}
			return "", "", false
		}
	}
	return "", "", false
}

// GrammarByID looks up a grammar point.
func GrammarByID(id string) (entity.GrammarPoint, bool) {
	g, ok := grammarByID[id]
	return g, ok
}

// LessonVocabulary resolves a lesson's new-word ids to entries.
func LessonVocabulary(lesson entity.Lesson) []entity.VocabEntry {
	return VocabByIDs(lesson.NewWords)
}

// LessonGrammar resolves a lesson's grammar-point ids, skipping unknown ones.
func LessonGrammar(lesson entity.Lesson) []entity.GrammarPoint {
	return lo.FilterMap(lesson.GrammarPoints, func(id string, _ int) (entity.GrammarPoint, bool) {
		return GrammarByID(id)
	})
}

// RadicalMeaning returns the semantic hint for a radical, if known.
func RadicalMeaning(radical string) (string, bool) {
	m, ok := radicalMeanings[radical]
	return m, ok
}

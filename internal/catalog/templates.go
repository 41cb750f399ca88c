package catalog

import "github.com/eslsoft/mandarin-master/internal/entity"

// sentenceTemplates is the fixed bank of translation challenges. Roles follow
// the SAVO (Subject-Adverb-Verb-Object) ordering taught by the course.
var sentenceTemplates = []entity.SentenceTemplate{
	// Single-word, for early lessons with very limited vocabulary.
	{English: "I / me", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"我"}, Difficulty: entity.DifficultyEasy},
	{English: "you", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"你"}, Difficulty: entity.DifficultyEasy},
	{English: "he / him", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"他"}, Difficulty: entity.DifficultyEasy},
	{English: "she / her", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"她"}, Difficulty: entity.DifficultyEasy},
	{English: "good", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"好"}, Difficulty: entity.DifficultyEasy},
	{English: "to be", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"是"}, Difficulty: entity.DifficultyEasy},
	{English: "not / no", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"不"}, Difficulty: entity.DifficultyEasy},
	{English: "one", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"一"}, Difficulty: entity.DifficultyEasy},
	{English: "two", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"二"}, Difficulty: entity.DifficultyEasy},
	{English: "three", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"三"}, Difficulty: entity.DifficultyEasy},
	{English: "very", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"很"}, Difficulty: entity.DifficultyEasy},
	{English: "also", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"也"}, Difficulty: entity.DifficultyEasy},
	{English: "person", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"人"}, Difficulty: entity.DifficultyEasy},
	{English: "water", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"水"}, Difficulty: entity.DifficultyEasy},
	{English: "tea", Roles: []entity.WordRole{entity.RoleSubject}, HanziKeys: []string{"茶"}, Difficulty: entity.DifficultyEasy},

	// Two-word pairs.
	{English: "I am good.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb}, HanziKeys: []string{"我", "好"}, Difficulty: entity.DifficultyEasy},
	{English: "Not good.", Roles: []entity.WordRole{entity.RoleAdverb, entity.RoleVerb}, HanziKeys: []string{"不", "好"}, Difficulty: entity.DifficultyEasy},
	{English: "She is good.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb}, HanziKeys: []string{"她", "好"}, Difficulty: entity.DifficultyEasy},
	{English: "He is good.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb}, HanziKeys: []string{"他", "好"}, Difficulty: entity.DifficultyEasy},

	// Easy, 2-3 cards.
	{English: "I drink water.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"我", "喝", "水"}, Difficulty: entity.DifficultyEasy},
	{English: "You are good.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleAdverb, entity.RoleVerb}, HanziKeys: []string{"你", "很", "好"}, Difficulty: entity.DifficultyEasy},
	{English: "He reads books.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"他", "看", "书"}, Difficulty: entity.DifficultyEasy},
	{English: "She eats rice.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"她", "吃", "饭"}, Difficulty: entity.DifficultyEasy},
	{English: "I want to go.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleVerb}, HanziKeys: []string{"我", "想", "去"}, Difficulty: entity.DifficultyEasy},
	{English: "He is a student.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"他", "是", "学生"}, Difficulty: entity.DifficultyEasy},
	{English: "I study Chinese.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"我", "学", "中文"}, Difficulty: entity.DifficultyEasy},
	{English: "She likes cats.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"她", "喜欢", "猫"}, Difficulty: entity.DifficultyEasy},

	// Medium, 3-4 cards.
	{English: "I don't drink tea.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleAdverb, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"我", "不", "喝", "茶"}, Difficulty: entity.DifficultyMedium},
	{English: "Do you like China?", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleObject, entity.RoleParticle}, HanziKeys: []string{"你", "喜欢", "中国", "吗"}, Difficulty: entity.DifficultyMedium},
	{English: "She is very beautiful.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleAdverb, entity.RoleAdverb, entity.RoleVerb}, HanziKeys: []string{"她", "非常", "漂亮"}, Difficulty: entity.DifficultyMedium},
	{English: "We eat Chinese food.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"我们", "吃", "中国菜"}, Difficulty: entity.DifficultyMedium},
	{English: "He doesn't go to school.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleAdverb, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"他", "不", "去", "学校"}, Difficulty: entity.DifficultyMedium},
	{English: "I want to drink coffee.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleVerb, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"我", "想", "喝", "咖啡"}, Difficulty: entity.DifficultyMedium},

	// Hard, 4-5 cards.
	{English: "I also want to go to China.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleAdverb, entity.RoleVerb, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"我", "也", "想", "去", "中国"}, Difficulty: entity.DifficultyHard},
	{English: "She doesn't like to eat rice.", Roles: []entity.WordRole{entity.RoleSubject, entity.RoleAdverb, entity.RoleVerb, entity.RoleVerb, entity.RoleObject}, HanziKeys: []string{"她", "不", "喜欢", "吃", "饭"}, Difficulty: entity.DifficultyHard},
}

// SentenceTemplates returns the full template bank.
func SentenceTemplates() []entity.SentenceTemplate {
	return sentenceTemplates
}

package catalog

import "github.com/eslsoft/mandarin-master/internal/entity"

// courseContent maps the vocabulary into the ordered units and lessons that
// make up the roadmap.
var courseContent = []entity.Unit{
	{
		ID:          "unit-1",
		Name:        "Foundations",
		Description: "Start here! Learn basic pronouns, greetings, and numbers.",
		Color:       "#C41E3A",
		Lessons: []entity.Lesson{
			{
				ID:            "lesson-1-1",
				Name:          "Me & You",
				Description:   "Learn I, You, He, She",
				NewWords:      []string{"v1", "v2", "v3", "v4"},
				GrammarPoints: []string{"g1"},
			},
			{
				ID:            "lesson-1-2",
				Name:          "Basic Verbs",
				Description:   "Good, To Be, Not",
				NewWords:      []string{"v5", "v6", "v7", "v8"},
				GrammarPoints: []string{"g2"},
			},
			{
				ID:          "lesson-1-3",
				Name:        "Numbers 1-5",
				Description: "Count from one to five",
				NewWords:    []string{"v9", "v10", "v11", "v12", "v13"},
			},
			{
				ID:            "lesson-1-4",
				Name:          "Common Particles",
				Description:   "Very, Question, Completed, Also, All",
				NewWords:      []string{"v14", "v15", "v16", "v17", "v18"},
				GrammarPoints: []string{"g3", "g4"},
			},
		},
	},
	{
		ID:          "unit-2",
		Name:        "Identity",
		Description: "Introduce yourself and talk about your family.",
		Color:       "#E63950",
		Lessons: []entity.Lesson{
			{
				ID:            "lesson-2-1",
				Name:          "People",
				Description:   "Person, Student, Teacher",
				NewWords:      []string{"v19", "v20", "v21"},
				GrammarPoints: []string{"g5"},
			},
			{
				ID:          "lesson-2-2",
				Name:        "Relationships",
				Description: "Friend, Family",
				NewWords:    []string{"v22", "v23"},
			},
			{
				ID:          "lesson-2-3",
				Name:        "Origins",
				Description: "China, Chinese language, To be called",
				NewWords:    []string{"v24", "v25", "v26"},
			},
			{
				ID:            "lesson-2-4",
				Name:          "Actions",
				Description:   "To study, To want/think",
				NewWords:      []string{"v27", "v28"},
				GrammarPoints: []string{"g6"},
			},
		},
	},
	{
		ID:          "unit-3",
		Name:        "Survival",
		Description: "Essential words for eating and drinking.",
		Color:       "#D4AF37",
		Lessons: []entity.Lesson{
			{
				ID:          "lesson-3-1",
				Name:        "Drinks",
				Description: "Water, Tea, Coffee",
				NewWords:    []string{"v29", "v30", "v31"},
			},
			{
				ID:            "lesson-3-2",
				Name:          "Food",
				Description:   "Rice, Chinese Food",
				NewWords:      []string{"v32", "v33"},
				GrammarPoints: []string{"g7"},
			},
			{
				ID:          "lesson-3-3",
				Name:        "Eating Actions",
				Description: "Eat, Drink",
				NewWords:    []string{"v34", "v35"},
			},
			{
				ID:          "lesson-3-4",
				Name:        "Shopping",
				Description: "Buy, Money, How much",
				NewWords:    []string{"v36", "v37", "v38"},
			},
		},
	},
	{
		ID:          "unit-4",
		Name:        "Time & Place",
		Description: "Navigate through time and space.",
		Color:       "#E5C85C",
		Lessons: []entity.Lesson{
			{
				ID:          "lesson-4-1",
				Name:        "Time",
				Description: "Today, Tomorrow, Yesterday",
				NewWords:    []string{"v39", "v40", "v41"},
			},
			{
				ID:          "lesson-4-2",
				Name:        "Movement",
				Description: "Go, Come",
				NewWords:    []string{"v42", "v43"},
			},
			{
				ID:          "lesson-4-3",
				Name:        "Places",
				Description: "School, Shop",
				NewWords:    []string{"v44", "v45"},
			},
		},
	},
	{
		ID:          "unit-5",
		Name:        "Description",
		Description: "Describe the world around you.",
		Color:       "#3B82F6",
		Lessons: []entity.Lesson{
			{
				ID:          "lesson-5-1",
				Name:        "Size",
				Description: "Big, Small",
				NewWords:    []string{"v46", "v47"},
			},
			{
				ID:          "lesson-5-2",
				Name:        "Feelings",
				Description: "Beautiful, Happy",
				NewWords:    []string{"v48", "v49"},
			},
			{
				ID:          "lesson-5-3",
				Name:        "Intensifiers",
				Description: "Extremely",
				NewWords:    []string{"v50"},
			},
		},
	},
	{
		ID:          "unit-6",
		Name:        "Integration",
		Description: "Put it all together.",
		Color:       "#22C55E",
		Lessons: []entity.Lesson{
			{
				ID:          "lesson-6-1",
				Name:        "Reading",
				Description: "Look/Read, Book",
				NewWords:    []string{"v51", "v52"},
			},
			{
				ID:            "lesson-6-2",
				Name:          "Preferences",
				Description:   "Like, Cat, Dog",
				NewWords:      []string{"v53", "v54", "v55"},
				GrammarPoints: []string{"g8"},
			},
			{
				ID:          "lesson-6-3",
				Name:        "Social",
				Description: "We, Speak",
				NewWords:    []string{"v56", "v57"},
			},
		},
	},
}

var grammarPoints = []entity.GrammarPoint{
	{
		ID:             "g1",
		Pattern:        "S + 是 + O",
		English:        "A is B",
		Example:        "我是学生",
		ExamplePinyin:  "Wǒ shì xuéshēng",
		ExampleEnglish: "I am a student",
		Week:           1,
	},
	{
		ID:             "g2",
		Pattern:        "S + 不 + V",
		English:        "Negation",
		Example:        "我不喝茶",
		ExamplePinyin:  "Wǒ bù hē chá",
		ExampleEnglish: "I don't drink tea",
		Week:           2,
	},
	{
		ID:             "g3",
		Pattern:        "S + V + O + 吗？",
		English:        "Yes/no question",
		Example:        "你好吗？",
		ExamplePinyin:  "Nǐ hǎo ma?",
		ExampleEnglish: "Are you well?",
		Week:           3,
	},
	{
		ID:             "g4",
		Pattern:        "S + 很 + Adj",
		English:        "Very + adj",
		Example:        "她很好",
		ExamplePinyin:  "Tā hěn hǎo",
		ExampleEnglish: "She is very good",
		Week:           4,
	},
	{
		ID:             "g5",
		Pattern:        "S + 也 + V",
		English:        "Also",
		Example:        "我也喜欢",
		ExamplePinyin:  "Wǒ yě xǐhuān",
		ExampleEnglish: "I also like it",
		Week:           5,
	},
	{
		ID:             "g6",
		Pattern:        "S + 想 + V",
		English:        "Want to",
		Example:        "我想去",
		ExamplePinyin:  "Wǒ xiǎng qù",
		ExampleEnglish: "I want to go",
		Week:           8,
	},
	{
		ID:             "g7",
		Pattern:        "S + V + 了",
		English:        "Completed action",
		Example:        "我吃了",
		ExamplePinyin:  "Wǒ chī le",
		ExampleEnglish: "I ate",
		Week:           10,
	},
	{
		ID:             "g8",
		Pattern:        "S + 喜欢 + V/O",
		English:        "Like to / like",
		Example:        "我喜欢猫",
		ExamplePinyin:  "Wǒ xǐhuān māo",
		ExampleEnglish: "I like cats",
		Week:           22,
	},
}

package catalog

import "github.com/eslsoft/mandarin-master/internal/entity"

// hsk1Vocabulary is the full HSK-1 subset taught by the course, in
// pedagogical week order.
var hsk1Vocabulary = []entity.VocabEntry{
	// Weeks 1-4: Foundations
	{ID: "v1", Hanzi: "我", Pinyin: "wǒ", English: "I, me", Type: entity.PartNoun, ToneNumber: 3, Week: 1},
	{ID: "v2", Hanzi: "你", Pinyin: "nǐ", English: "you", Type: entity.PartNoun, ToneNumber: 3, Week: 1},
	{ID: "v3", Hanzi: "他", Pinyin: "tā", English: "he, him", Type: entity.PartNoun, ToneNumber: 1, Week: 1},
	{ID: "v4", Hanzi: "她", Pinyin: "tā", English: "she, her", Type: entity.PartNoun, ToneNumber: 1, Week: 1},
	{ID: "v5", Hanzi: "好", Pinyin: "hǎo", English: "good", Type: entity.PartAdjective, ToneNumber: 3, Week: 1},
	{ID: "v6", Hanzi: "是", Pinyin: "shì", English: "to be", Type: entity.PartVerb, ToneNumber: 4, Week: 1},
	{ID: "v7", Hanzi: "不", Pinyin: "bù", English: "not, no", Type: entity.PartParticle, ToneNumber: 4, Week: 1},
	{ID: "v8", Hanzi: "的", Pinyin: "de", English: "possessive particle", Type: entity.PartParticle, ToneNumber: 5, Week: 1},
	{ID: "v9", Hanzi: "一", Pinyin: "yī", English: "one", Type: entity.PartNoun, ToneNumber: 1, Week: 2},
	{ID: "v10", Hanzi: "二", Pinyin: "èr", English: "two", Type: entity.PartNoun, ToneNumber: 4, Week: 2},
	{ID: "v11", Hanzi: "三", Pinyin: "sān", English: "three", Type: entity.PartNoun, ToneNumber: 1, Week: 2},
	{ID: "v12", Hanzi: "四", Pinyin: "sì", English: "four", Type: entity.PartNoun, ToneNumber: 4, Week: 2},
	{ID: "v13", Hanzi: "五", Pinyin: "wǔ", English: "five", Type: entity.PartNoun, ToneNumber: 3, Week: 2},
	{ID: "v14", Hanzi: "很", Pinyin: "hěn", English: "very", Type: entity.PartParticle, ToneNumber: 3, Week: 3},
	{ID: "v15", Hanzi: "吗", Pinyin: "ma", English: "question particle", Type: entity.PartParticle, ToneNumber: 5, Week: 3},
	{ID: "v16", Hanzi: "了", Pinyin: "le", English: "completed action", Type: entity.PartParticle, ToneNumber: 5, Week: 3},
	{ID: "v17", Hanzi: "也", Pinyin: "yě", English: "also", Type: entity.PartParticle, ToneNumber: 3, Week: 4},
	{ID: "v18", Hanzi: "都", Pinyin: "dōu", English: "all, both", Type: entity.PartParticle, ToneNumber: 1, Week: 4},

	// Weeks 5-8: Identity
	{ID: "v19", Hanzi: "人", Pinyin: "rén", English: "person", Type: entity.PartNoun, Radical: "亻", RadicalMeaning: "person", ToneNumber: 2, Week: 5},
	{ID: "v20", Hanzi: "学生", Pinyin: "xuéshēng", English: "student", Type: entity.PartNoun, ToneNumber: 2, Week: 5},
	{ID: "v21", Hanzi: "老师", Pinyin: "lǎoshī", English: "teacher", Type: entity.PartNoun, ToneNumber: 3, Week: 5},
	{ID: "v22", Hanzi: "朋友", Pinyin: "péngyǒu", English: "friend", Type: entity.PartNoun, ToneNumber: 2, Week: 6},
	{ID: "v23", Hanzi: "家", Pinyin: "jiā", English: "home, family", Type: entity.PartNoun, ToneNumber: 1, Week: 6},
	{ID: "v24", Hanzi: "中国", Pinyin: "Zhōngguó", English: "China", Type: entity.PartNoun, ToneNumber: 1, Week: 7},
	{ID: "v25", Hanzi: "中文", Pinyin: "Zhōngwén", English: "Chinese (language)", Type: entity.PartNoun, ToneNumber: 1, Week: 7},
	{ID: "v26", Hanzi: "叫", Pinyin: "jiào", English: "to be called", Type: entity.PartVerb, ToneNumber: 4, Week: 7},
	{ID: "v27", Hanzi: "学", Pinyin: "xué", English: "to study", Type: entity.PartVerb, Radical: "子", RadicalMeaning: "child", ToneNumber: 2, Week: 8},
	{ID: "v28", Hanzi: "想", Pinyin: "xiǎng", English: "to want, to think", Type: entity.PartVerb, Radical: "心", RadicalMeaning: "heart", ToneNumber: 3, Week: 8},

	// Weeks 9-12: Survival
	{ID: "v29", Hanzi: "水", Pinyin: "shuǐ", English: "water", Type: entity.PartNoun, Radical: "氵", RadicalMeaning: "water", ToneNumber: 3, Week: 9},
	{ID: "v30", Hanzi: "茶", Pinyin: "chá", English: "tea", Type: entity.PartNoun, Radical: "艹", RadicalMeaning: "grass", ToneNumber: 2, Week: 9},
	{ID: "v31", Hanzi: "咖啡", Pinyin: "kāfēi", English: "coffee", Type: entity.PartNoun, ToneNumber: 1, Week: 9},
	{ID: "v32", Hanzi: "饭", Pinyin: "fàn", English: "rice, meal", Type: entity.PartNoun, Radical: "饣", RadicalMeaning: "food", ToneNumber: 4, Week: 10},
	{ID: "v33", Hanzi: "中国菜", Pinyin: "Zhōngguó cài", English: "Chinese food", Type: entity.PartNoun, ToneNumber: 1, Week: 10},
	{ID: "v34", Hanzi: "喝", Pinyin: "hē", English: "to drink", Type: entity.PartVerb, Radical: "口", RadicalMeaning: "mouth", ToneNumber: 1, Week: 10},
	{ID: "v35", Hanzi: "吃", Pinyin: "chī", English: "to eat", Type: entity.PartVerb, Radical: "口", RadicalMeaning: "mouth", ToneNumber: 1, Week: 10},
	{ID: "v36", Hanzi: "买", Pinyin: "mǎi", English: "to buy", Type: entity.PartVerb, ToneNumber: 3, Week: 11},
	{ID: "v37", Hanzi: "钱", Pinyin: "qián", English: "money", Type: entity.PartNoun, Radical: "钅", RadicalMeaning: "metal", ToneNumber: 2, Week: 11},
	{ID: "v38", Hanzi: "多少", Pinyin: "duōshǎo", English: "how much / many", Type: entity.PartParticle, ToneNumber: 1, Week: 11},

	// Weeks 13-16: Time & Place
	{ID: "v39", Hanzi: "今天", Pinyin: "jīntiān", English: "today", Type: entity.PartNoun, ToneNumber: 1, Week: 13},
	{ID: "v40", Hanzi: "明天", Pinyin: "míngtiān", English: "tomorrow", Type: entity.PartNoun, ToneNumber: 2, Week: 13},
	{ID: "v41", Hanzi: "昨天", Pinyin: "zuótiān", English: "yesterday", Type: entity.PartNoun, ToneNumber: 2, Week: 13},
	{ID: "v42", Hanzi: "去", Pinyin: "qù", English: "to go", Type: entity.PartVerb, ToneNumber: 4, Week: 14},
	{ID: "v43", Hanzi: "来", Pinyin: "lái", English: "to come", Type: entity.PartVerb, ToneNumber: 2, Week: 14},
	{ID: "v44", Hanzi: "学校", Pinyin: "xuéxiào", English: "school", Type: entity.PartNoun, ToneNumber: 2, Week: 15},
	{ID: "v45", Hanzi: "商店", Pinyin: "shāngdiàn", English: "shop", Type: entity.PartNoun, ToneNumber: 1, Week: 15},

	// Weeks 17-20: Description
	{ID: "v46", Hanzi: "大", Pinyin: "dà", English: "big", Type: entity.PartAdjective, ToneNumber: 4, Week: 17},
	{ID: "v47", Hanzi: "小", Pinyin: "xiǎo", English: "small", Type: entity.PartAdjective, ToneNumber: 3, Week: 17},
	{ID: "v48", Hanzi: "漂亮", Pinyin: "piàoliang", English: "beautiful", Type: entity.PartAdjective, ToneNumber: 4, Week: 18},
	{ID: "v49", Hanzi: "高兴", Pinyin: "gāoxìng", English: "happy", Type: entity.PartAdjective, ToneNumber: 1, Week: 18},
	{ID: "v50", Hanzi: "非常", Pinyin: "fēicháng", English: "extremely", Type: entity.PartParticle, ToneNumber: 1, Week: 19},

	// Weeks 21-24: Integration
	{ID: "v51", Hanzi: "看", Pinyin: "kàn", English: "to look, to read", Type: entity.PartVerb, Radical: "目", RadicalMeaning: "eye", ToneNumber: 4, Week: 21},
	{ID: "v52", Hanzi: "书", Pinyin: "shū", English: "book", Type: entity.PartNoun, ToneNumber: 1, Week: 21},
	{ID: "v53", Hanzi: "喜欢", Pinyin: "xǐhuān", English: "to like", Type: entity.PartVerb, ToneNumber: 3, Week: 22},
	{ID: "v54", Hanzi: "猫", Pinyin: "māo", English: "cat", Type: entity.PartNoun, ToneNumber: 1, Week: 22},
	{ID: "v55", Hanzi: "狗", Pinyin: "gǒu", English: "dog", Type: entity.PartNoun, ToneNumber: 3, Week: 22},
	{ID: "v56", Hanzi: "我们", Pinyin: "wǒmen", English: "we, us", Type: entity.PartNoun, ToneNumber: 3, Week: 23},
	{ID: "v57", Hanzi: "说", Pinyin: "shuō", English: "to speak", Type: entity.PartVerb, Radical: "讠", RadicalMeaning: "speech", ToneNumber: 1, Week: 24},
}

// radicalMeanings maps common radicals to their semantic hint.
var radicalMeanings = map[string]string{
	"氵": "water",
	"亻": "person",
	"口": "mouth",
	"女": "woman",
	"木": "wood/tree",
	"日": "sun/day",
	"月": "moon/month",
	"心": "heart",
	"忄": "heart (left)",
	"手": "hand",
	"扌": "hand (left)",
	"火": "fire",
	"灬": "fire (bottom)",
	"土": "earth",
	"金": "metal/gold",
	"钅": "metal (left)",
	"食": "food",
	"饣": "food (left)",
	"言": "speech",
	"讠": "speech (left)",
	"走": "walk",
	"足": "foot",
	"目": "eye",
	"耳": "ear",
	"门": "door",
	"草": "grass",
	"艹": "grass (top)",
	"雨": "rain",
	"山": "mountain",
	"石": "stone",
	"田": "field",
	"力": "power",
	"刀": "knife",
	"子": "child",
}

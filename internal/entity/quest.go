package entity

// WordRole labels a slot in a sentence template (SAVO ordering).
type WordRole string

const (
	RoleSubject  WordRole = "subject"
	RoleAdverb   WordRole = "adverb"
	RoleVerb     WordRole = "verb"
	RoleObject   WordRole = "object"
	RoleParticle WordRole = "particle"
)

// SentenceTemplate names an English prompt and the ordered hanzi keys that
// translate it. A template is only playable against a vocabulary pool that
// contains every key.
type SentenceTemplate struct {
	English    string
	Roles      []WordRole
	HanziKeys  []string
	Difficulty Difficulty
}

// QuestCard is one generated sentence-translation challenge. It is ephemeral:
// built on demand, discarded once the round's outcome is recorded.
type QuestCard struct {
	ID            string
	English       string
	TargetOrder   []VocabEntry
	ShuffledCards []VocabEntry
	Difficulty    Difficulty
	XPReward      int
}

// Package extract normalizes study-page content into typed facts the
// quiz generator draws from.
package extract

// Type classifies a fact for quiz balancing.
type Type int

const (
	Vocabulary Type = iota
	Survival
	Conjugation
	PowerVerb
)

func (t Type) String() string {
	switch t {
	case Vocabulary:
		return "vocabulary"
	case Survival:
		return "survival"
	case Conjugation:
		return "conjugation"
	case PowerVerb:
		return "power-verb"
	}
	return "unknown"
}

// ConjMeta carries the grammatical context of a conjugation fact, kept
// so feedback can name the person and tense a form belongs to.
type ConjMeta struct {
	Verb   string
	Person string
	Tense  string
}

// Fact is one learnable unit: a prompt/answer pair with its balancing
// category. Facts are derived from page content and never persisted.
type Fact struct {
	Category string
	Type     Type
	Prompt   string
	Answer   string
	Meta     *ConjMeta
}

// Persons maps a conjugation's position within a table row to its
// grammatical person (voseo paradigm).
var Persons = [...]string{"yo", "vos", "él/ella", "nosotros", "ustedes/ellos"}

// powerVerbStems marks an item as a power verb when its prompt or
// answer contains one of these, case-insensitively.
var powerVerbStems = []string{
	"ser", "estar", "tener", "ir", "hacer", "querer", "gustar",
	"hablar", "comer", "beber", "vivir", "venir", "llamar",
	"to be", "to have", "to go", "to do", "to want", "to like",
	"to speak", "to eat", "to drink", "to live", "to come", "to call",
}

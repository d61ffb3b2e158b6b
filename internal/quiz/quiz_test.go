package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mgarcia/palabra/internal/content"
	"github.com/mgarcia/palabra/internal/extract"
)

func makeFacts(t extract.Type, n int) []extract.Fact {
	facts := make([]extract.Fact, n)
	for i := range facts {
		facts[i] = extract.Fact{
			Category: "Test",
			Type:     t,
			Prompt:   fmt.Sprintf("%s prompt %d", t, i),
			Answer:   fmt.Sprintf("%s answer %d", t, i),
		}
		if t == extract.Conjugation {
			facts[i].Meta = &extract.ConjMeta{Verb: "SER", Person: "yo", Tense: "Present"}
		}
	}
	return facts
}

func countByType(questions []Question) map[extract.Type]int {
	counts := make(map[extract.Type]int)
	for _, q := range questions {
		counts[q.Type]++
	}
	return counts
}

func TestBuildOptionsCapAndUniqueness(t *testing.T) {
	pool := []string{
		"adiós", "gracias", "por favor", "buenos días", "buenas noches",
		"hasta luego", "lo siento", "de nada", "salud", "perdón",
	}
	rng := rand.New(rand.NewSource(7))

	options := buildOptions("hola", pool, rng)
	if len(options) != MaxOptions {
		t.Fatalf("options = %d, want %d", len(options), MaxOptions)
	}
	seen := make(map[string]bool)
	found := 0
	for _, o := range options {
		if seen[o] {
			t.Errorf("duplicate option %q", o)
		}
		seen[o] = true
		if o == "hola" {
			found++
		}
	}
	if found != 1 {
		t.Errorf("correct answer appears %d times, want 1", found)
	}
}

func TestBuildOptionsSmallPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	options := buildOptions("hola", []string{"adiós", "hola", "adiós"}, rng)
	if len(options) != 2 {
		t.Fatalf("options = %v, want answer plus one distractor", options)
	}
}

func TestGenerateBalancedComposition(t *testing.T) {
	var facts []extract.Fact
	for _, ft := range []extract.Type{extract.Conjugation, extract.Survival, extract.Vocabulary, extract.PowerVerb} {
		facts = append(facts, makeFacts(ft, 5)...)
	}
	rng := rand.New(rand.NewSource(42))

	questions := Generate(facts, content.ModeMixedBalanced, rng)
	if len(questions) != TargetQuestions {
		t.Fatalf("questions = %d, want %d", len(questions), TargetQuestions)
	}
	counts := countByType(questions)
	want := map[extract.Type]int{
		extract.Conjugation: 3,
		extract.Survival:    2,
		extract.Vocabulary:  2,
		extract.PowerVerb:   3,
	}
	for ft, n := range want {
		if counts[ft] != n {
			t.Errorf("%s questions = %d, want %d", ft, counts[ft], n)
		}
	}
}

func TestGenerateTopUpPriority(t *testing.T) {
	var facts []extract.Fact
	facts = append(facts, makeFacts(extract.Conjugation, 1)...)
	facts = append(facts, makeFacts(extract.Survival, 5)...)
	facts = append(facts, makeFacts(extract.Vocabulary, 5)...)
	facts = append(facts, makeFacts(extract.PowerVerb, 5)...)
	rng := rand.New(rand.NewSource(3))

	questions := Generate(facts, content.ModeMixedBalanced, rng)
	if len(questions) != TargetQuestions {
		t.Fatalf("questions = %d, want %d", len(questions), TargetQuestions)
	}
	// Conjugation can only supply 1 of its 3 slots; the two extras come
	// from power verbs first, then vocabulary.
	counts := countByType(questions)
	if counts[extract.Conjugation] != 1 {
		t.Errorf("conjugation = %d, want 1", counts[extract.Conjugation])
	}
	if counts[extract.PowerVerb] != 4 {
		t.Errorf("power-verb = %d, want 4", counts[extract.PowerVerb])
	}
	if counts[extract.Vocabulary] != 3 {
		t.Errorf("vocabulary = %d, want 3", counts[extract.Vocabulary])
	}
	if counts[extract.Survival] != 2 {
		t.Errorf("survival = %d, want 2", counts[extract.Survival])
	}
}

func TestGenerateSinglePoolLength(t *testing.T) {
	facts := makeFacts(extract.Vocabulary, 4)
	rng := rand.New(rand.NewSource(9))

	questions := Generate(facts, content.ModeSinglePool, rng)
	if len(questions) != 4 {
		t.Errorf("questions = %d, want every fact once", len(questions))
	}
}

func TestGenerateTruncatesToTarget(t *testing.T) {
	facts := makeFacts(extract.Vocabulary, 25)
	rng := rand.New(rand.NewSource(11))

	if n := len(Generate(facts, content.ModeSinglePool, rng)); n != TargetQuestions {
		t.Errorf("questions = %d, want %d", n, TargetQuestions)
	}
}

func TestSessionLifecycle(t *testing.T) {
	facts := makeFacts(extract.Vocabulary, 6)
	s := NewSession(facts, content.ModeSinglePool, rand.New(rand.NewSource(5)))

	if s.State() != Idle {
		t.Fatalf("state = %v, want Idle", s.State())
	}
	s.Start()
	if s.State() != InProgress {
		t.Fatalf("state = %v, want InProgress", s.State())
	}

	for s.State() == InProgress {
		if s.Score() < 0 || s.Score() > s.Index() || s.Index() > s.Total() {
			t.Fatalf("invariant broken: score=%d index=%d total=%d", s.Score(), s.Index(), s.Total())
		}
		q := s.Current()
		choice := -1
		for i, o := range s.Options() {
			if o.Text == q.Answer {
				choice = i
			}
		}
		if choice < 0 {
			t.Fatalf("correct answer missing from options %v", s.Options())
		}
		if !s.Answer(choice) {
			t.Fatalf("correct answer reported wrong at index %d", s.Index())
		}
		s.Advance()
	}

	if s.State() != Finished {
		t.Fatalf("state = %v, want Finished", s.State())
	}
	if s.Score() != s.Total() || s.Index() != s.Total() {
		t.Errorf("score=%d index=%d total=%d after perfect run", s.Score(), s.Index(), s.Total())
	}
}

func TestSessionWrongAnswer(t *testing.T) {
	facts := []extract.Fact{
		{Type: extract.Vocabulary, Prompt: "hello", Answer: "hola"},
		{Type: extract.Vocabulary, Prompt: "goodbye", Answer: "adiós"},
	}
	s := NewSession(facts, content.ModeSinglePool, rand.New(rand.NewSource(2)))
	s.Start()

	q := s.Current()
	wrong := -1
	for i, o := range s.Options() {
		if o.Text != q.Answer {
			wrong = i
		}
	}
	if wrong < 0 {
		t.Fatal("no distractor generated")
	}
	if s.Answer(wrong) {
		t.Fatal("wrong answer reported correct")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d after wrong answer", s.Score())
	}
	for i, o := range s.Options() {
		if !o.Disabled {
			t.Errorf("option %d not disabled after answering", i)
		}
		if o.Text == q.Answer && !o.Correct {
			t.Errorf("true answer not flagged correct")
		}
		if i == wrong && !o.Incorrect {
			t.Errorf("chosen option not flagged incorrect")
		}
	}
	if s.Explanation() == "" {
		t.Error("no explanation for wrong vocabulary answer")
	}

	// Repeat answers on a locked question change nothing.
	score := s.Score()
	if s.Answer(wrong) || s.Score() != score {
		t.Error("second answer was not a no-op")
	}
}

func TestSessionRestartIndependence(t *testing.T) {
	facts := makeFacts(extract.Vocabulary, 8)
	s := NewSession(facts, content.ModeSinglePool, rand.New(rand.NewSource(13)))

	s.Start()
	s.Answer(0)
	s.Advance()

	s.Restart()
	if s.State() != InProgress {
		t.Fatalf("state = %v after restart", s.State())
	}
	if s.Index() != 0 || s.Score() != 0 {
		t.Errorf("restart kept progress: index=%d score=%d", s.Index(), s.Score())
	}
	if s.Answered() {
		t.Error("restart kept answered flag")
	}
}

func TestSessionEmpty(t *testing.T) {
	s := NewSession(nil, content.ModeMixedBalanced, rand.New(rand.NewSource(1)))
	s.Start()
	if s.State() != Empty {
		t.Fatalf("state = %v, want Empty", s.State())
	}
	if s.Answer(0) {
		t.Error("answer accepted with no questions")
	}
	if s.Advance() {
		t.Error("advance accepted with no questions")
	}
}

func TestSessionAdvanceRequiresAnswer(t *testing.T) {
	facts := makeFacts(extract.Vocabulary, 3)
	s := NewSession(facts, content.ModeSinglePool, rand.New(rand.NewSource(4)))
	s.Start()

	if s.Advance() {
		t.Error("advanced past an unanswered question")
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0", s.Index())
	}
}

func TestExplain(t *testing.T) {
	facts := []extract.Fact{
		{Type: extract.Conjugation, Prompt: "SER", Answer: "eres",
			Meta: &extract.ConjMeta{Verb: "SER", Person: "vos", Tense: "Present"}},
		{Type: extract.Vocabulary, Prompt: "the bread", Answer: "el pan"},
	}

	if got := Explain("el pan", facts); got != `"el pan" means "the bread".` {
		t.Errorf("vocabulary explanation = %q", got)
	}
	if got := Explain("eres", facts); got != `"eres" would be the conjugation for vos in present.` {
		t.Errorf("conjugation explanation = %q", got)
	}
	if got := Explain("nunca", facts); got != "" {
		t.Errorf("unknown option explanation = %q, want empty", got)
	}
}

package quiz

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/mgarcia/palabra/internal/content"
	"github.com/mgarcia/palabra/internal/extract"
)

// State is the session lifecycle phase.
type State int

const (
	// Idle means the session is created but no run has started.
	Idle State = iota
	// InProgress means a question is on screen.
	InProgress
	// Finished means every question was answered and advanced past.
	Finished
	// Empty means no questions could be generated from the material.
	Empty
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// Option is one selectable answer with its presentation flags. Flags
// only change when the current question is answered.
type Option struct {
	Text      string
	Disabled  bool
	Correct   bool
	Incorrect bool
}

// Session runs one quiz: a fixed question sequence, a cursor, and a
// score. It is not safe for concurrent use; the event loop that owns
// it is the single writer.
type Session struct {
	id    uuid.UUID
	facts []extract.Fact
	mode  content.Mode
	rng   *rand.Rand

	state       State
	questions   []Question
	index       int
	score       int
	options     []Option
	answered    bool
	explanation string
}

// NewSession prepares a session over the given material. No questions
// exist until Start.
func NewSession(facts []extract.Fact, mode content.Mode, rng *rand.Rand) *Session {
	return &Session{
		id:    uuid.New(),
		facts: facts,
		mode:  mode,
		rng:   rng,
		state: Idle,
	}
}

// Start generates a fresh question sequence and resets all progress.
// A run that yields no questions lands in the Empty state.
func (s *Session) Start() {
	s.questions = Generate(s.facts, s.mode, s.rng)
	s.index = 0
	s.score = 0
	s.answered = false
	s.explanation = ""
	if len(s.questions) == 0 {
		s.state = Empty
		s.options = nil
		return
	}
	s.state = InProgress
	s.loadOptions()
}

// Restart begins a new independent run, keeping the session identity.
func (s *Session) Restart() {
	s.Start()
}

func (s *Session) loadOptions() {
	q := s.questions[s.index]
	s.options = make([]Option, len(q.Options))
	for i, text := range q.Options {
		s.options[i] = Option{Text: text}
	}
}

// Answer records the choice at index i. It returns whether the choice
// was correct. Out-of-range indexes, calls outside InProgress, and
// repeat calls on an already answered question do nothing and report
// false.
func (s *Session) Answer(i int) bool {
	if s.state != InProgress || s.answered || i < 0 || i >= len(s.options) {
		return false
	}
	s.answered = true

	q := s.questions[s.index]
	chosen := s.options[i].Text
	correct := chosen == q.Answer

	for j := range s.options {
		s.options[j].Disabled = true
		if s.options[j].Text == q.Answer {
			s.options[j].Correct = true
		}
	}
	if correct {
		s.score++
	} else {
		s.options[i].Incorrect = true
		if q.Type != extract.Conjugation {
			s.explanation = Explain(chosen, s.facts)
		}
	}
	return correct
}

// Advance moves to the next question once the current one is answered.
// After the last question the session is Finished. It reports whether
// the session moved.
func (s *Session) Advance() bool {
	if s.state != InProgress || !s.answered {
		return false
	}
	s.answered = false
	s.explanation = ""
	s.index++
	if s.index >= len(s.questions) {
		s.state = Finished
		s.options = nil
		return true
	}
	s.loadOptions()
	return true
}

// ID identifies the session across runs and in the quiz history.
func (s *Session) ID() uuid.UUID { return s.id }

// State reports the lifecycle phase.
func (s *Session) State() State { return s.state }

// Mode reports the generation mode the session was built with.
func (s *Session) Mode() content.Mode { return s.mode }

// Current returns the question on screen, or nil outside InProgress.
func (s *Session) Current() *Question {
	if s.state != InProgress {
		return nil
	}
	return &s.questions[s.index]
}

// Options returns the current question's choices with their flags.
func (s *Session) Options() []Option { return s.options }

// Answered reports whether the current question has been answered.
func (s *Session) Answered() bool { return s.answered }

// Explanation describes the last wrong choice, when one is available.
func (s *Session) Explanation() string { return s.explanation }

// Index is the zero-based cursor; equal to Total when Finished.
func (s *Session) Index() int { return s.index }

// Score is the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Total is the length of the current run's question sequence.
func (s *Session) Total() int { return len(s.questions) }

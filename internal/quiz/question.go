// Package quiz generates multiple-choice questions from extracted facts
// and drives a linear quiz session with scoring and feedback.
package quiz

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mgarcia/palabra/internal/content"
	"github.com/mgarcia/palabra/internal/extract"
)

const (
	// TargetQuestions is the session length when enough material exists.
	TargetQuestions = 10

	// MaxOptions caps the choice count per question.
	MaxOptions = 8
)

// Question is one multiple-choice question. Options contain the correct
// answer exactly once, with no duplicates, in randomized order.
// Questions are immutable after generation.
type Question struct {
	Type    extract.Type
	Prompt  string
	Answer  string
	Options []string
}

// quotas is the balanced composition for mixed documents.
var quotas = map[extract.Type]int{
	extract.Conjugation: 3,
	extract.Survival:    2,
	extract.Vocabulary:  2,
	extract.PowerVerb:   3,
}

// selectionOrder fixes pool iteration so a seeded rng reproduces runs.
var selectionOrder = []extract.Type{
	extract.Conjugation,
	extract.Survival,
	extract.Vocabulary,
	extract.PowerVerb,
}

// topUpOrder is the priority used to fill quota shortfalls.
var topUpOrder = []extract.Type{
	extract.PowerVerb,
	extract.Conjugation,
	extract.Vocabulary,
	extract.Survival,
}

// Generate builds the ordered question sequence for one session.
func Generate(facts []extract.Fact, mode content.Mode, rng *rand.Rand) []Question {
	pools := buildPools(facts, rng)

	var questions []Question
	if mode == content.ModeMixedBalanced {
		questions = selectBalanced(pools, rng)
	} else {
		for _, t := range selectionOrder {
			questions = append(questions, pools[t]...)
		}
	}

	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > TargetQuestions {
		questions = questions[:TargetQuestions]
	}
	return questions
}

// buildPools creates one question per fact. Distractors are drawn from
// the answers of same-type facts.
func buildPools(facts []extract.Fact, rng *rand.Rand) map[extract.Type][]Question {
	answers := make(map[extract.Type][]string)
	for _, f := range facts {
		answers[f.Type] = append(answers[f.Type], f.Answer)
	}

	pools := make(map[extract.Type][]Question)
	for _, f := range facts {
		pools[f.Type] = append(pools[f.Type], Question{
			Type:    f.Type,
			Prompt:  promptFor(f),
			Answer:  f.Answer,
			Options: buildOptions(f.Answer, answers[f.Type], rng),
		})
	}
	return pools
}

func promptFor(f extract.Fact) string {
	if f.Type == extract.Conjugation && f.Meta != nil {
		return fmt.Sprintf("What is the conjugation of %s for %s in %s?",
			f.Meta.Verb, f.Meta.Person, strings.ToLower(f.Meta.Tense))
	}
	return fmt.Sprintf("What is the Spanish for %q?", f.Prompt)
}

// selectBalanced draws the quota from each pool, tops up shortfalls in
// priority order until the target is met or every pool is exhausted,
// then leaves the final shuffle to the caller.
func selectBalanced(pools map[extract.Type][]Question, rng *rand.Rand) []Question {
	for _, t := range selectionOrder {
		pool := pools[t]
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	taken := make(map[extract.Type]int)
	var selected []Question
	for _, t := range selectionOrder {
		n := min(quotas[t], len(pools[t]))
		selected = append(selected, pools[t][:n]...)
		taken[t] = n
	}

	for len(selected) < TargetQuestions {
		progressed := false
		for _, t := range topUpOrder {
			if len(selected) >= TargetQuestions {
				break
			}
			if taken[t] < len(pools[t]) {
				selected = append(selected, pools[t][taken[t]])
				taken[t]++
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return selected
}

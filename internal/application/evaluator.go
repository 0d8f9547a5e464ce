package application

import (
	"fmt"
	"regexp"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
)

// Evaluator tests comment text against a RuleSet whose patterns were
// compiled once at construction. Evaluate is pure and deterministic: no
// I/O, no randomness, no state mutated between calls.
type Evaluator struct {
	mention  *regexp.Regexp
	triggers []*regexp.Regexp
	quick    []*regexp.Regexp
}

// NewEvaluator compiles the matching patterns for the given RuleSet.
// A pattern that fails to compile is a startup-fatal configuration error.
func NewEvaluator(rules model.RuleSet) (*Evaluator, error) {
	mention, err := regexp.Compile(`(?i)@` + regexp.QuoteMeta(rules.WatchedIdentity) + `\b`)
	if err != nil {
		return nil, fmt.Errorf("compiling mention pattern for %q: %w", rules.WatchedIdentity, err)
	}

	triggers, err := compilePhrases(rules.TriggerPhrases)
	if err != nil {
		return nil, fmt.Errorf("compiling trigger phrases: %w", err)
	}

	quick, err := compilePhrases(rules.QuickTriggerPhrases)
	if err != nil {
		return nil, fmt.Errorf("compiling quick-trigger phrases: %w", err)
	}

	return &Evaluator{
		mention:  mention,
		triggers: triggers,
		quick:    quick,
	}, nil
}

// Evaluate returns the verdict for a comment body. All four checks are
// computed independently; in particular the quick-trigger set is never
// consulted for the trigger check.
func (e *Evaluator) Evaluate(text string) model.Verdict {
	return model.Verdict{
		MentionsWatchedIdentity: e.mention.MatchString(text),
		HasTriggerPhrase:        matchesAny(e.triggers, text),
		HasQuickTriggerPhrase:   matchesAny(e.quick, text),
		HasEmoji:                ContainsEmoji(text),
	}
}

// compilePhrases builds a whole-word, case-insensitive matcher per phrase.
func compilePhrases(phrases []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(phrases))
	for _, phrase := range phrases {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("phrase %q: %w", phrase, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

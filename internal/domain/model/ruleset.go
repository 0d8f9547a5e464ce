package model

import "fmt"

// DelayBounds is the inclusive range, in whole seconds, from which a
// deferred approval delay is sampled.
type DelayBounds struct {
	MinSeconds int
	MaxSeconds int
}

// RuleSet is the immutable trigger configuration. It is assembled once at
// startup (vocabulary and messages from the rules file, WatchedIdentity from
// the GitHub API) and shared read-only across all event handlers.
type RuleSet struct {
	// WatchedIdentity is the login whose @-mention activates evaluation.
	// It is also the identity the approval review is submitted as.
	WatchedIdentity string

	// TriggerPhrases must match (whole-word, case-insensitive) for any
	// approval path to open.
	TriggerPhrases []string

	// QuickTriggerPhrases switch an already-qualifying comment from the
	// delayed path to immediate approval. They are an independent set and
	// are never implicitly unioned with TriggerPhrases.
	QuickTriggerPhrases []string

	// ApprovalMessages is the pool the review body is drawn from uniformly
	// at random.
	ApprovalMessages []string

	DelayBounds DelayBounds
}

// Validate checks the structural invariants of a RuleSet.
func (r RuleSet) Validate() error {
	if r.WatchedIdentity == "" {
		return fmt.Errorf("watched identity is empty")
	}
	if len(r.TriggerPhrases) == 0 {
		return fmt.Errorf("trigger phrase list is empty")
	}
	if len(r.ApprovalMessages) == 0 {
		return fmt.Errorf("approval message list is empty")
	}
	if r.DelayBounds.MinSeconds < 0 {
		return fmt.Errorf("delay minSeconds %d is negative", r.DelayBounds.MinSeconds)
	}
	if r.DelayBounds.MaxSeconds < r.DelayBounds.MinSeconds {
		return fmt.Errorf("delay maxSeconds %d is less than minSeconds %d",
			r.DelayBounds.MaxSeconds, r.DelayBounds.MinSeconds)
	}
	return nil
}

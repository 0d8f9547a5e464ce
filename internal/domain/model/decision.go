package model

import "time"

// Verdict is the structured result of evaluating a comment against the
// configured conditions. All four checks are computed independently.
type Verdict struct {
	MentionsWatchedIdentity bool
	HasTriggerPhrase        bool
	HasQuickTriggerPhrase   bool
	HasEmoji                bool
}

// Qualifies reports whether the comment satisfies the approval conditions:
// mention AND trigger phrase AND emoji. A quick-trigger phrase only affects
// timing, never qualification.
func (v Verdict) Qualifies() bool {
	return v.MentionsWatchedIdentity && v.HasTriggerPhrase && v.HasEmoji
}

// DecisionKind identifies the action chosen for a comment event.
type DecisionKind string

const (
	DecisionSkip         DecisionKind = "skip"
	DecisionApproveNow   DecisionKind = "approve_now"
	DecisionApproveAfter DecisionKind = "approve_after"
)

// Decision is the action derived from a Verdict. Delay is meaningful only
// when Kind is DecisionApproveAfter.
type Decision struct {
	Kind  DecisionKind
	Delay time.Duration
}

// Skip returns the no-op decision.
func Skip() Decision {
	return Decision{Kind: DecisionSkip}
}

// ApproveNow returns the immediate-approval decision.
func ApproveNow() Decision {
	return Decision{Kind: DecisionApproveNow}
}

// ApproveAfter returns a deferred-approval decision with the given delay.
func ApproveAfter(delay time.Duration) Decision {
	return Decision{Kind: DecisionApproveAfter, Delay: delay}
}

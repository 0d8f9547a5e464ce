package model

import "time"

// ApprovalOutcome is the result of a single approval attempt. It is produced
// by the executor, reported through the notifier, and recorded in the audit
// log; it is never used to drive further decisions.
type ApprovalOutcome struct {
	Success       bool
	ChosenMessage string
	// FailureReason carries the diagnostic text from the failed approval
	// call. Empty on success.
	FailureReason string
}

// ApprovalRecord is one row of the append-only approval audit log.
type ApprovalRecord struct {
	ID             int64
	RepoFullName   string
	PRNumber       int
	Commenter      string
	ActingIdentity string
	Message        string
	Success        bool
	FailureReason  string
	QuickTriggered bool
	DelaySeconds   int
	CreatedAt      time.Time
}

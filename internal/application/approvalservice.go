package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
	"github.com/ericfisherdev/approvebot/internal/domain/port/driven"
	"github.com/ericfisherdev/approvebot/internal/metrics"
)

// ApprovalService orchestrates the per-event lifecycle: evaluate the
// comment, decide, execute the approval (immediately or after the sampled
// delay), then report the outcome. Events are handled independently and
// concurrently; the only shared state is the read-only RuleSet and the
// concurrency-safe Rand.
//
// A deferred approval is a fire-and-forget timer holding no durable state.
// Process shutdown abandons any timers that have not fired yet; this is a
// known limitation of the best-effort design.
type ApprovalService struct {
	rules     model.RuleSet
	evaluator *Evaluator
	rng       Rand
	approver  driven.Approver
	notifier  driven.Notifier // nil when no channel is configured
	outcomes  driven.OutcomeStore
	logger    *slog.Logger

	// afterFunc schedules deferred execution; replaced in tests.
	afterFunc func(d time.Duration, fn func()) *time.Timer
}

// NewApprovalService creates the service. notifier may be nil, in which case
// outcome reports are logged no-ops.
func NewApprovalService(
	rules model.RuleSet,
	evaluator *Evaluator,
	rng Rand,
	approver driven.Approver,
	notifier driven.Notifier,
	outcomes driven.OutcomeStore,
	logger *slog.Logger,
) *ApprovalService {
	return &ApprovalService{
		rules:     rules,
		evaluator: evaluator,
		rng:       rng,
		approver:  approver,
		notifier:  notifier,
		outcomes:  outcomes,
		logger:    logger,
		afterFunc: time.AfterFunc,
	}
}

// HandleResult is what the webhook handler needs to build its response.
// Outcome is non-nil only when the approval executed synchronously.
type HandleResult struct {
	Decision model.Decision
	Outcome  *model.ApprovalOutcome
}

// HandleComment runs one gated comment event through the evaluator and
// decision policy, then dispatches the chosen action. It never returns an
// error: decision outcomes are normal control flow, and approval failures
// are captured inside the outcome.
func (s *ApprovalService) HandleComment(ctx context.Context, ev model.CommentEvent) HandleResult {
	logger := s.logger.With(
		"repo", ev.RepoFullName,
		"pr", ev.PRNumber,
		"commenter", ev.Commenter,
	)

	verdict := s.evaluator.Evaluate(ev.CommentText)
	decision := Decide(verdict, s.rules, s.rng)

	logger.Info("comment evaluated",
		"mention", verdict.MentionsWatchedIdentity,
		"trigger", verdict.HasTriggerPhrase,
		"quick_trigger", verdict.HasQuickTriggerPhrase,
		"emoji", verdict.HasEmoji,
		"decision", string(decision.Kind),
	)

	switch decision.Kind {
	case model.DecisionApproveNow:
		outcome := s.execute(ctx, ev, true, 0)
		return HandleResult{Decision: decision, Outcome: &outcome}

	case model.DecisionApproveAfter:
		logger.Info("approval scheduled", "delay", decision.Delay)
		delaySeconds := int(decision.Delay / time.Second)
		s.afterFunc(decision.Delay, func() {
			// The request context is gone by the time the timer fires.
			s.execute(context.Background(), ev, false, delaySeconds)
		})
		return HandleResult{Decision: decision}

	default:
		return HandleResult{Decision: decision}
	}
}

// execute performs the approval exactly once, records it, and reports it.
// The executor always completes before the notifier runs, and exactly one
// notification is attempted per execution regardless of the outcome.
func (s *ApprovalService) execute(ctx context.Context, ev model.CommentEvent, quick bool, delaySeconds int) model.ApprovalOutcome {
	message := s.rules.ApprovalMessages[s.rng.IntN(len(s.rules.ApprovalMessages))]

	outcome := model.ApprovalOutcome{Success: true, ChosenMessage: message}
	if err := s.approver.ApprovePullRequest(ctx, ev.RepoFullName, ev.PRNumber, message); err != nil {
		outcome.Success = false
		outcome.FailureReason = err.Error()
	}

	mode := "delayed"
	if quick {
		mode = "immediate"
	}
	if outcome.Success {
		s.logger.Info("pull request approved",
			"repo", ev.RepoFullName, "pr", ev.PRNumber, "mode", mode, "message", message)
		metrics.ApprovalsTotal.WithLabelValues("success", mode).Inc()
	} else {
		s.logger.Error("pull request approval failed",
			"repo", ev.RepoFullName, "pr", ev.PRNumber, "mode", mode, "reason", outcome.FailureReason)
		metrics.ApprovalsTotal.WithLabelValues("failure", mode).Inc()
	}

	s.record(ctx, ev, outcome, quick, delaySeconds)
	s.notify(ctx, ev, outcome, quick)

	return outcome
}

// record appends the outcome to the audit log. A store failure is logged and
// swallowed: the external approval already happened.
func (s *ApprovalService) record(ctx context.Context, ev model.CommentEvent, outcome model.ApprovalOutcome, quick bool, delaySeconds int) {
	if s.outcomes == nil {
		return
	}

	rec := model.ApprovalRecord{
		RepoFullName:   ev.RepoFullName,
		PRNumber:       ev.PRNumber,
		Commenter:      ev.Commenter,
		ActingIdentity: s.rules.WatchedIdentity,
		Message:        outcome.ChosenMessage,
		Success:        outcome.Success,
		FailureReason:  outcome.FailureReason,
		QuickTriggered: quick,
		DelaySeconds:   delaySeconds,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.outcomes.Insert(ctx, rec); err != nil {
		s.logger.Error("failed to record approval outcome",
			"repo", ev.RepoFullName, "pr", ev.PRNumber, "error", err)
	}
}

// notify sends exactly one outcome report per executed approval. Delivery
// failures are logged and swallowed; they never affect the outcome.
func (s *ApprovalService) notify(ctx context.Context, ev model.CommentEvent, outcome model.ApprovalOutcome, quick bool) {
	if s.notifier == nil {
		s.logger.Info("no notification channel configured, skipping outcome report",
			"repo", ev.RepoFullName, "pr", ev.PRNumber)
		metrics.NotificationsTotal.WithLabelValues("skipped").Inc()
		return
	}

	text := formatNotification(ev, outcome, s.rules.WatchedIdentity, quick)
	if err := s.notifier.Send(ctx, text); err != nil {
		s.logger.Error("failed to deliver outcome notification",
			"repo", ev.RepoFullName, "pr", ev.PRNumber, "error", err)
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		return
	}
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
}

// formatNotification builds the human-readable outcome report, including a
// link to the pull request and whether the quick-trigger path was used.
func formatNotification(ev model.CommentEvent, outcome model.ApprovalOutcome, identity string, quick bool) string {
	link := fmt.Sprintf("<%s|%s#%d>", ev.PullRequestURL(), ev.RepoFullName, ev.PRNumber)

	path := "delayed"
	if quick {
		path = "quick"
	}

	if outcome.Success {
		return fmt.Sprintf("✅ Approved %s as @%s — triggered by @%s (%s path) with %q",
			link, identity, ev.Commenter, path, outcome.ChosenMessage)
	}
	return fmt.Sprintf("❌ Failed to approve %s as @%s — triggered by @%s (%s path): %s",
		link, identity, ev.Commenter, path, outcome.FailureReason)
}

package httphandler

import (
	"encoding/json"

	gh "github.com/google/go-github/v82/github"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
)

// Gate outcome messages, also used as webhook response bodies and metric
// result labels after normalization.
const (
	gateIgnoredEventType = "event ignored"
	gateNotPullRequest   = "not a pull request comment"
	gateActionIgnored    = "action ignored"
	gateInvalidPayload   = "invalid payload"
)

// gateComment filters a raw event envelope down to "newly created comment on
// a pull request". It returns either a CommentEvent or a non-empty reason
// string; a rejection is a normal outcome, never an error. The rules apply
// in order and each one short-circuits:
//  1. the event type tag must be issue_comment;
//  2. the parent issue must carry a pull-request reference;
//  3. the action must be "created".
func gateComment(eventType string, payload []byte) (*model.CommentEvent, string) {
	if eventType != "issue_comment" {
		return nil, gateIgnoredEventType
	}

	var event gh.IssueCommentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, gateInvalidPayload
	}

	if event.GetIssue().PullRequestLinks == nil {
		return nil, gateNotPullRequest
	}

	if event.GetAction() != "created" {
		return nil, gateActionIgnored
	}

	ev := model.CommentEvent{
		RepoFullName: event.GetRepo().GetFullName(),
		PRNumber:     event.GetIssue().GetNumber(),
		CommentText:  event.GetComment().GetBody(),
		Commenter:    event.GetComment().GetUser().GetLogin(),
	}
	if ev.RepoFullName == "" || ev.PRNumber <= 0 {
		return nil, gateInvalidPayload
	}

	return &ev, ""
}

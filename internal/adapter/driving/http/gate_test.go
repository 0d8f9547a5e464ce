package httphandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentPayload(action string, pullRequest bool) []byte {
	pr := ""
	if pullRequest {
		pr = `"pull_request": {"url": "https://api.github.com/repos/octocat/hello-world/pulls/7"},`
	}
	return []byte(`{
		"action": "` + action + `",
		"issue": {` + pr + `"number": 7},
		"repository": {"full_name": "octocat/hello-world"},
		"comment": {"body": "@approvebot please review 🙏", "user": {"login": "alice"}}
	}`)
}

func TestGateComment_Accepts(t *testing.T) {
	ev, reason := gateComment("issue_comment", commentPayload("created", true))

	require.NotNil(t, ev)
	assert.Empty(t, reason)
	assert.Equal(t, "octocat/hello-world", ev.RepoFullName)
	assert.Equal(t, 7, ev.PRNumber)
	assert.Equal(t, "@approvebot please review 🙏", ev.CommentText)
	assert.Equal(t, "alice", ev.Commenter)
}

func TestGateComment_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		eventType  string
		payload    []byte
		wantReason string
	}{
		{
			name:       "wrong event type",
			eventType:  "push",
			payload:    commentPayload("created", true),
			wantReason: gateIgnoredEventType,
		},
		{
			name:       "plain issue comment",
			eventType:  "issue_comment",
			payload:    commentPayload("created", false),
			wantReason: gateNotPullRequest,
		},
		{
			name:       "edited action",
			eventType:  "issue_comment",
			payload:    commentPayload("edited", true),
			wantReason: gateActionIgnored,
		},
		{
			name:       "deleted action",
			eventType:  "issue_comment",
			payload:    commentPayload("deleted", true),
			wantReason: gateActionIgnored,
		},
		{
			name:       "malformed json",
			eventType:  "issue_comment",
			payload:    []byte(`{"action":`),
			wantReason: gateInvalidPayload,
		},
		{
			name:      "missing repository name",
			eventType: "issue_comment",
			payload: []byte(`{
				"action": "created",
				"issue": {"pull_request": {}, "number": 7},
				"comment": {"body": "x", "user": {"login": "alice"}}
			}`),
			wantReason: gateInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, reason := gateComment(tt.eventType, tt.payload)

			assert.Nil(t, ev)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestGateComment_TypeCheckedBeforePayload(t *testing.T) {
	// A wrong event type short-circuits before the payload is even parsed.
	ev, reason := gateComment("pull_request", []byte("not json at all"))

	assert.Nil(t, ev)
	assert.Equal(t, gateIgnoredEventType, reason)
}

func TestGateComment_EmptyCommentBodyIsAccepted(t *testing.T) {
	payload := []byte(`{
		"action": "created",
		"issue": {"pull_request": {}, "number": 3},
		"repository": {"full_name": "octocat/hello-world"},
		"comment": {"body": "", "user": {"login": "bob"}}
	}`)

	ev, reason := gateComment("issue_comment", payload)

	require.NotNil(t, ev)
	assert.Empty(t, reason)
	assert.Empty(t, ev.CommentText)
}

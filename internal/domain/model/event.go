package model

import "strconv"

// CommentEvent is a newly created comment on a pull request, built by the
// event gate from the raw webhook payload. It is immutable and consumed
// exactly once; nothing about it is persisted.
type CommentEvent struct {
	RepoFullName string
	PRNumber     int
	CommentText  string
	Commenter    string
}

// PullRequestURL returns the canonical web URL of the pull request the
// comment was made on.
func (e CommentEvent) PullRequestURL() string {
	return "https://github.com/" + e.RepoFullName + "/pull/" + strconv.Itoa(e.PRNumber)
}

package driven

import "context"

// Approver defines the driven port for the external approval action against
// the code-hosting platform. The call is treated as opaque, possibly slow,
// and possibly failing; callers invoke it at most once per decision.
type Approver interface {
	// ApprovePullRequest submits an approving review with the given body on
	// the pull request, acting as the identity the adapter was built with.
	ApprovePullRequest(ctx context.Context, repoFullName string, prNumber int, body string) error

	// ResolveIdentity returns the login the approval action will act as.
	// It is called once at startup; failure is fatal to the process.
	ResolveIdentity(ctx context.Context) (string, error)
}

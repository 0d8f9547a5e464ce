package driven

import (
	"context"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
)

// OutcomeStore defines the driven port for the append-only approval audit
// log. Writes are best-effort: a failed insert is logged by the caller and
// has no effect on the already-completed approval.
type OutcomeStore interface {
	Insert(ctx context.Context, record model.ApprovalRecord) error
	ListRecent(ctx context.Context, limit int) ([]model.ApprovalRecord, error)
}

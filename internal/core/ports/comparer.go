package ports

import (
	"context"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
)

// CategoryComparer diffs one category of two snapshots. Implementations read
// only their inputs and hold no mutable state, so different categories may
// run concurrently.
type CategoryComparer interface {
	Category() domain.Category
	Compare(ctx context.Context, source, target *domain.Snapshot, opts domain.CollectionOptions) (domain.CategoryOutcome, error)
}

package ports

import (
	"context"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
)

// SnapshotLoader supplies one already-collected environment snapshot.
type SnapshotLoader interface {
	Type() string
	Load(ctx context.Context) (*domain.Snapshot, error)
}

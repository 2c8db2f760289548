package ports

import (
	"context"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, report *domain.ComparisonReport) error
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
)

// Comparator runs every enabled category comparer against two snapshots and
// assembles the report. It performs no logging and keeps no state between
// calls.
type Comparator struct {
	registry *ComponentRegistry
	now      func() time.Time
	newRunID func() string
}

func NewComparator(registry *ComponentRegistry) *Comparator {
	return &Comparator{
		registry: registry,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Compare fans out one worker per enabled category and joins their outcomes.
// The first failing category cancels workers that have not started yet and
// fails the whole run; no partial report is returned.
func (c *Comparator) Compare(
	ctx context.Context,
	source, target *domain.Snapshot,
	opts domain.CollectionOptions,
) (*domain.ComparisonReport, error) {
	if source == nil || target == nil {
		return nil, errors.New(errors.CodeComparisonError, "source and target snapshots are required")
	}

	categories := opts.EnabledCategories()
	comparers := make([]ports.CategoryComparer, len(categories))
	for i, category := range categories {
		comparer, err := c.registry.GetCategoryComparer(category)
		if err != nil {
			return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation,
				fmt.Sprintf("category %s is enabled but cannot be compared", category),
				"Remove the category from comparison.categories or exclude it.")
		}
		comparers[i] = comparer
	}

	outcomes := make([]domain.CategoryOutcome, len(comparers))
	g, gctx := errgroup.WithContext(ctx)
	for i, comparer := range comparers {
		g.Go(func() (err error) {
			category := comparer.Category()
			defer func() {
				if r := recover(); r != nil {
					err = errors.CategoryFailure(category.String(), fmt.Errorf("panic: %v", r))
				}
			}()

			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, err := comparer.Compare(gctx, source, target, opts)
			if err != nil {
				return errors.CategoryFailure(category.String(), err)
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := domain.NewComparisonReport(c.newRunID(), source, target, c.now().UTC())
	report.Categories = categories
	for _, outcome := range outcomes {
		for _, r := range outcome.Results {
			report.Results[r.Category] = append(report.Results[r.Category], r)
		}
		for category, n := range outcome.Duplicates {
			report.DuplicateKeys[category] += n
		}
	}
	for category := range report.Results {
		domain.SortResults(report.Results[category])
	}
	return report, nil
}

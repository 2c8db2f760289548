package service

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
)

const (
	RoleSource = "source"
	RoleTarget = "target"
)

type DriftAnalysisEngine struct {
	registry   *ComponentRegistry
	comparator *Comparator
	reporter   ports.Reporter
	logger     ports.Logger
	options    domain.CollectionOptions
}

func NewDriftAnalysisEngine(
	registry *ComponentRegistry,
	reporter ports.Reporter,
	logger ports.Logger,
	options domain.CollectionOptions,
) (*DriftAnalysisEngine, error) {
	if registry == nil {
		return nil, errors.New(errors.CodeConfigValidation, "component registry cannot be nil")
	}
	if reporter == nil {
		return nil, errors.New(errors.CodeConfigValidation, "reporter cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil")
	}
	if len(options.EnabledCategories()) == 0 {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation, "no categories enabled for comparison",
			"Enable at least one category under comparison.categories.")
	}

	return &DriftAnalysisEngine{
		registry:   registry,
		comparator: NewComparator(registry),
		reporter:   reporter,
		logger:     logger,
		options:    options,
	}, nil
}

// Run loads both snapshots, compares them and hands the report to the
// reporter.
func (e *DriftAnalysisEngine) Run(ctx context.Context) error {
	source, target, err := e.loadSnapshots(ctx)
	if err != nil {
		return err
	}
	e.logger.Infof(ctx, "Comparing %s (%s) against %s (%s)",
		source.EnvironmentName, source.PlatformVersion, target.EnvironmentName, target.PlatformVersion)
	e.checkPlatformVersions(ctx, source, target)

	e.logger.Debugf(ctx, "Enabled categories: %v (max depth %d)", e.options.EnabledCategories(), e.options.MaxDepth)
	report, err := e.comparator.Compare(ctx, source, target, e.options)
	if err != nil {
		if ctx.Err() != nil {
			e.logger.Warnf(ctx, "Comparison cancelled: %v", ctx.Err())
			return ctx.Err()
		}
		e.logger.Errorf(ctx, err, "comparison failed")
		return err
	}

	e.logDuplicates(ctx, report)
	summary := report.Summary()
	e.logger.Infof(ctx, "Comparison %s complete: %d results, %d differences (%d source only, %d target only, %d mismatches)",
		report.RunID, summary.Total, summary.Differences(), summary.SourceOnly, summary.TargetOnly, summary.Mismatches)

	if err := e.reporter.Report(ctx, report); err != nil {
		return errors.Wrap(err, errors.CodeReportError, "failed to generate report")
	}
	return nil
}

func (e *DriftAnalysisEngine) loadSnapshots(ctx context.Context) (*domain.Snapshot, *domain.Snapshot, error) {
	roles := []string{RoleSource, RoleTarget}
	loaders := make([]ports.SnapshotLoader, len(roles))
	for i, role := range roles {
		loader, err := e.registry.GetSnapshotLoader(role)
		if err != nil {
			return nil, nil, err
		}
		loaders[i] = loader
	}

	snapshots := make([]*domain.Snapshot, len(roles))
	g, gctx := errgroup.WithContext(ctx)
	for i, loader := range loaders {
		g.Go(func() error {
			log := e.logger.WithFields(map[string]any{"role": roles[i], "loader": loader.Type()})
			log.Debugf(gctx, "Loading snapshot")
			snap, err := loader.Load(gctx)
			if err != nil {
				return errors.Wrap(err, errors.CodeSnapshotReadError, "failed to load "+roles[i]+" snapshot")
			}
			if snap == nil {
				return errors.New(errors.CodeSnapshotReadError, roles[i]+" snapshot loader returned no snapshot")
			}
			log.Debugf(gctx, "Loaded snapshot %q with %d modules and %d fields",
				snap.EnvironmentName, len(snap.Modules), len(snap.Fields))
			snapshots[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Errorf(ctx, err, "snapshot loading failed")
		return nil, nil, err
	}
	return snapshots[0], snapshots[1], nil
}

func (e *DriftAnalysisEngine) checkPlatformVersions(ctx context.Context, source, target *domain.Snapshot) {
	same, ok := sameFeatureRelease(source.PlatformVersion, target.PlatformVersion)
	switch {
	case !ok:
		e.logger.Debugf(ctx, "Platform versions %q and %q could not be compared",
			source.PlatformVersion, target.PlatformVersion)
	case !same:
		e.logger.Warnf(ctx, "Platform versions differ (%s vs %s); some differences may come from the upgrade itself",
			source.PlatformVersion, target.PlatformVersion)
	}
}

func (e *DriftAnalysisEngine) logDuplicates(ctx context.Context, report *domain.ComparisonReport) {
	categories := make([]domain.Category, 0, len(report.DuplicateKeys))
	for c, n := range report.DuplicateKeys {
		if n > 0 {
			categories = append(categories, c)
		}
	}
	slices.Sort(categories)
	for _, c := range categories {
		e.logger.Warnf(ctx, "%d %s entities share a composite key with an earlier entity and were not compared",
			report.DuplicateKeys[c], c)
	}
}

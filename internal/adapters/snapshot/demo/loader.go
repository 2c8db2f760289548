// Package demo synthesizes small, fixed snapshots for trying the tool out
// without access to a live environment. An environment whose name contains
// "dev" differs from any other in a calculated field formula and in one
// environment-specific field.
package demo

import (
	"context"
	"strings"
	"time"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
)

const (
	LoaderTypeDemo  = "demo"
	PlatformVersion = "6.9.100.1000"
)

type Config struct {
	Environment string `mapstructure:"environment" validate:"required"`
}

type Loader struct {
	cfg    Config
	now    func() time.Time
	logger ports.Logger
}

func NewLoader(cfg Config, logger ports.Logger) (*Loader, error) {
	if strings.TrimSpace(cfg.Environment) == "" {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			"demo snapshot loader requires an environment name", "Set source.demo.environment, for example 'Dev'.")
	}
	return &Loader{
		cfg:    cfg,
		now:    time.Now,
		logger: logger.WithFields(map[string]any{"loader": LoaderTypeDemo, "environment": cfg.Environment}),
	}, nil
}

func (l *Loader) Type() string { return LoaderTypeDemo }

func (l *Loader) Load(ctx context.Context) (*domain.Snapshot, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	isDev := strings.Contains(strings.ToLower(l.cfg.Environment), "dev")
	l.logger.Debugf(ctx, "Synthesizing demo snapshot (development flavour: %t)", isDev)
	return build(l.cfg.Environment, isDev, l.now().UTC()), nil
}

func ptr[T any](v T) *T { return &v }

func build(env string, isDev bool, collectedAt time.Time) *domain.Snapshot {
	updated := collectedAt.AddDate(0, 0, -10)

	snap := &domain.Snapshot{
		EnvironmentName: env,
		PlatformVersion: PlatformVersion,
		CollectedAt:     collectedAt,
		Modules: []domain.Module{
			{ID: 1, Name: "Risk Register", Type: ptr("Application"), GUID: ptr("GUID-RISK-REG"), Alias: ptr("risk_reg"),
				IsLeveled: true, UpdatedBy: ptr("System Admin"), UpdatedDate: &updated},
		},
		Fields: []domain.Field{
			{ID: 101, Name: "Risk Title", Module: ptr("Risk Register"), Level: ptr("Risk Assessment"),
				TypeLabel: ptr("Text"), GUID: ptr("GUID-FLD-TITLE"), IsActive: true},
			{ID: 102, Name: "Risk Score", Module: ptr("Risk Register"), Level: ptr("Risk Assessment"),
				TypeLabel: ptr("Numeric"), GUID: ptr("GUID-FLD-SCORE"), IsActive: true, IsCalculated: true,
				Formula: ptr("Impact * Likelihood")},
		},
		ValuesLists: []domain.ValuesList{
			{ID: 401, Name: "Priority", IsActive: true, Values: []domain.ValuesListValue{
				{ID: 411, Name: "High", ValuesListID: 401, SortOrder: 1, IsActive: true},
				{ID: 412, Name: "Medium", ValuesListID: 401, SortOrder: 2, IsActive: true, IsDefault: true},
				{ID: 413, Name: "Low", ValuesListID: 401, SortOrder: 3, IsActive: true},
			}},
		},
		Layouts: []domain.Layout{
			{ID: 201, Name: "Default Layout", Module: ptr("Risk Register"), Level: ptr("Risk Assessment"),
				LayoutName: ptr("Default"), LayoutTab: ptr("General"), LayoutSection: ptr("Risk Details"),
				LayoutField: ptr("Risk Title"), GUID: ptr("GUID-LAY-1"), IsActive: true},
		},
		DDERules: []domain.DDERule{
			{ID: 301, Name: "Hide Score if Inactive", GUID: ptr("GUID-DDE-1"), IsActive: true},
		},
		Roles: []domain.Role{
			{ID: 501, Name: "Risk Manager", GUID: ptr("GUID-ROLE-RM")},
		},
	}

	if isDev {
		snap.Fields[1].Formula = ptr("(Impact * Likelihood) + 1")
		snap.Fields = append(snap.Fields, domain.Field{
			ID: 103, Name: "Dev Only Field", Module: ptr("Risk Register"), Level: ptr("Risk Assessment"),
			TypeLabel: ptr("Text"), GUID: ptr("GUID-FLD-DEV"), IsActive: true,
		})
	} else {
		snap.Fields = append(snap.Fields, domain.Field{
			ID: 104, Name: "Legacy Field", Module: ptr("Risk Register"), Level: ptr("Risk Assessment"),
			TypeLabel: ptr("Text"), GUID: ptr("GUID-FLD-PROD"), IsActive: true,
		})
	}
	return snap
}

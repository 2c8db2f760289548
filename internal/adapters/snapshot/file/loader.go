package file

import (
	"context"

	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
	"github.com/olusolaa/metadata-drift-detector/internal/errors"
)

const LoaderTypeFile = "file"

type Config struct {
	Path string `mapstructure:"path" validate:"required"`
	// EnvironmentName, when set, overrides the name recorded in the file.
	EnvironmentName string `mapstructure:"environment_name"`
}

// Loader reads a snapshot exported by the collection tooling. The file is
// parsed once; later calls return the cached snapshot or error.
type Loader struct {
	parser *snapshotParser
	cfg    Config
	logger ports.Logger
}

func NewLoader(cfg Config, logger ports.Logger) (*Loader, error) {
	if cfg.Path == "" {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			"file snapshot loader requires a path", "Set source.file.path and target.file.path.")
	}
	if _, err := formatFor(cfg.Path); err != nil {
		return nil, err
	}

	llog := logger.WithFields(map[string]any{
		"loader":        LoaderTypeFile,
		"snapshot_file": cfg.Path,
	})
	return &Loader{
		parser: newSnapshotParser(cfg.Path, llog),
		cfg:    cfg,
		logger: llog,
	}, nil
}

func (l *Loader) Type() string { return LoaderTypeFile }

func (l *Loader) Load(ctx context.Context) (*domain.Snapshot, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	snap, err := l.parser.parseAndCache(ctx)
	if err != nil {
		return nil, err
	}

	if l.cfg.EnvironmentName != "" && snap.EnvironmentName != l.cfg.EnvironmentName {
		l.logger.Debugf(ctx, "Overriding environment name %q with %q", snap.EnvironmentName, l.cfg.EnvironmentName)
		named := *snap
		named.EnvironmentName = l.cfg.EnvironmentName
		return &named, nil
	}
	return snap, nil
}

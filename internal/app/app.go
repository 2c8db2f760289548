package app

import (
	"context"

	"github.com/olusolaa/metadata-drift-detector/internal/config"
	"github.com/olusolaa/metadata-drift-detector/internal/core/ports"
)

// Application wires a configured engine to its logger.
type Application struct {
	Engine ports.DriftAnalysisEngine
	Logger ports.Logger
	Config *config.Config
}

func NewApplication(engine ports.DriftAnalysisEngine, logger ports.Logger, cfg *config.Config) *Application {
	return &Application{
		Engine: engine,
		Logger: logger,
		Config: cfg,
	}
}

// Run executes one comparison.
func (a *Application) Run(ctx context.Context) error {
	a.Logger.Infof(ctx, "Starting metadata comparison...")

	if err := a.Engine.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, err, "Metadata comparison failed")
		return err
	}

	a.Logger.Infof(ctx, "Metadata comparison completed successfully")
	return nil
}

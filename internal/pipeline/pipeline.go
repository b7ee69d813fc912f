package pipeline

import (
	"context"
	"io"

	"github.com/ethandillon/DreamJobRealityCheck/internal/app"
	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
)

// All returns the stages in the order a full refresh runs them
func All() []app.Stage {
	return []app.Stage{Normalize(), Enrich(), CareerDB()}
}

// RunAll executes every stage in order and stops at the first failure
func RunAll(ctx context.Context, cfg *config.Config, stderr io.Writer) error {
	for _, stage := range All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := app.Execute(ctx, cfg, stage, stderr); err != nil {
			return err
		}
	}
	return nil
}

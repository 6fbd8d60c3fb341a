package demo

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Runner prints demos to out and reports progress to logger.
type Runner struct {
	out    io.Writer
	logger *zap.Logger
}

func NewRunner(out io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{out: out, logger: logger}
}

// Run executes the named demos in order, or all of them if names is empty.
// It stops at the first demo that fails.
func (r *Runner) Run(names ...string) error {
	selected, err := Select(names)
	if err != nil {
		return err
	}
	for _, d := range selected {
		r.logger.Debug("running demo", zap.String("name", d.Name), zap.String("title", d.Title))
		if err := d.Run(r.out); err != nil {
			r.logger.Error("demo failed", zap.String("name", d.Name), zap.Error(err))
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}
	r.logger.Info("demos complete", zap.Int("count", len(selected)))
	return nil
}

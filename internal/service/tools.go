// Package service implements the budgeting tools: input validation,
// upstream orchestration, amount transformation, rendering, and the
// spill-to-file policy for large collections. Every tool returns text;
// failures are classified into stable user-facing messages.
package service

import (
	"context"
	"time"

	"github.com/hmalcolm/ynab-bridge-go/internal/infra/observability"
	"github.com/hmalcolm/ynab-bridge-go/internal/port"
	"github.com/hmalcolm/ynab-bridge-go/internal/spill"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service/tools")

// Tools holds the collaborators shared by every tool.
type Tools struct {
	api     port.BudgetStore
	spill   *spill.Writer
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewTools creates the tool service with all dependencies injected.
func NewTools(api port.BudgetStore, writer *spill.Writer, metrics *observability.Metrics, logger *zap.Logger) *Tools {
	return &Tools{
		api:     api,
		spill:   writer,
		metrics: metrics,
		logger:  logger,
	}
}

// run executes one tool invocation: span, timing, classification.
func (t *Tools) run(ctx context.Context, tool string, fn func(ctx context.Context) (string, error)) string {
	ctx, span := tracer.Start(ctx, tool)
	defer span.End()

	start := time.Now()
	result, err := fn(ctx)
	t.metrics.RecordToolDuration(tool, time.Since(start))

	if err != nil {
		t.metrics.IncrTool("error")
		t.logger.Warn("tool failed",
			zap.String("tool", tool),
			zap.Error(err),
		)
		return Classify(err)
	}

	t.metrics.IncrTool("success")
	t.logger.Debug("tool ok",
		zap.String("tool", tool),
		zap.Duration("duration", time.Since(start)),
	)
	return result
}

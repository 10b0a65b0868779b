package gate

import (
	"context"

	"github.com/gatekit/gate-go/pkg/gate/logging"
)

// Step records one branch visited during a Scan: the branch itself and the
// classifier outcome (true means the left child was taken).
type Step[C, T any] struct {
	Node     Gate[C, T]
	TookLeft bool
}

// TraceScan runs Scan and logs the recorded path through the given logger:
// one debug line per branch visited, in descent order, and one info line
// with the final depth. It returns exactly what Scan returns.
func TraceScan[C, T any](ctx context.Context, logger logging.Logger, g Gate[C, T], input T) (C, []Step[C, T]) {
	result, path := Scan(g, input)
	for i, step := range path {
		logger.Debug(ctx, "gate descent", "step", i, logging.Branch(step.TookLeft))
	}
	logger.Info(ctx, "gate classified", "depth", len(path))
	return result, path
}

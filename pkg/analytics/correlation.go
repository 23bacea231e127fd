package analytics

import (
	"context"
	"fmt"

	"github.com/finpulse/insights/pkg/db"
)

// CorrelationDataset returns the flat cross-metric panel keyed by
// (state, year, quarter). Periods absent from a joined fact table carry nil
// columns; consumers decide how to treat the gaps.
func (e *Engine) CorrelationDataset(ctx context.Context) ([]db.CorrelationRow, error) {
	rows, err := e.store.CorrelationRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("correlation dataset: %w", err)
	}
	return rows, nil
}

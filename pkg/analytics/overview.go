package analytics

import (
	"context"
	"fmt"

	"github.com/finpulse/insights/pkg/db"
)

// Overview returns the single-row summary of the transaction fact table. An
// empty table yields a zero-valued summary; the store's avg over zero rows is
// not a number, so the guard lives here.
func (e *Engine) Overview(ctx context.Context) (*db.OverviewStats, error) {
	stats, err := e.store.TransactionOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	if stats.TotalTransactions == 0 {
		return &db.OverviewStats{}, nil
	}
	return stats, nil
}

package analytics

import (
	"context"
	"fmt"

	"github.com/finpulse/insights/pkg/db"
)

// GrowthRow is one year's totals plus year-over-year growth percentages.
// Growth fields are nil for the first year and whenever the previous value
// is zero.
type GrowthRow struct {
	db.YearlyTotalsRow
	AmountGrowthPercent      *float64 `json:"amount_growth_percent"`
	TransactionGrowthPercent *float64 `json:"transaction_growth_percent"`
	StateExpansionPercent    *float64 `json:"state_expansion_percent"`
}

// GrowthAnalysis returns yearly totals in ascending order with lag-by-one
// growth percentages computed against the previous year.
func (e *Engine) GrowthAnalysis(ctx context.Context) ([]GrowthRow, error) {
	rows, err := e.store.YearlyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("growth analysis: %w", err)
	}

	out := make([]GrowthRow, 0, len(rows))
	for i, row := range rows {
		g := GrowthRow{YearlyTotalsRow: row}
		if i > 0 {
			prev := rows[i-1]
			g.AmountGrowthPercent = growth(row.TotalAmount, prev.TotalAmount)
			g.TransactionGrowthPercent = growth(float64(row.TotalTransactions), float64(prev.TotalTransactions))
			g.StateExpansionPercent = growth(float64(row.ActiveStates), float64(prev.ActiveStates))
		}
		out = append(out, g)
	}
	return out, nil
}

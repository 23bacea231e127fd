package analytics

import (
	"context"
	"fmt"
)

// Market segment bands of the concentration analysis.
const (
	SegmentTop    = "Top 80%"
	SegmentNext   = "Next 15%"
	SegmentBottom = "Bottom 5%"
)

// ConcentrationRow is one state's position in the Pareto breakdown of
// transaction amount.
type ConcentrationRow struct {
	Rank                 int      `json:"rank"`
	State                string   `json:"state"`
	TotalAmount          float64  `json:"total_amount"`
	IndividualPercentage *float64 `json:"individual_percentage"`
	CumulativePercentage *float64 `json:"cumulative_percentage"`
	MarketSegment        string   `json:"market_segment"`
}

// MarketConcentration ranks every state by transaction amount and assigns
// Pareto bands on the running cumulative share: at or below 80% of the grand
// total is "Top 80%", at or below 95% is "Next 15%", the rest "Bottom 5%".
// With a zero grand total shares are nil and every state lands in the bottom
// band.
func (e *Engine) MarketConcentration(ctx context.Context) ([]ConcentrationRow, error) {
	rows, err := e.store.StateAmountTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("market concentration: %w", err)
	}

	var grandTotal float64
	for _, row := range rows {
		grandTotal += row.TotalAmount
	}

	out := make([]ConcentrationRow, 0, len(rows))
	var running float64
	for i, row := range rows {
		running += row.TotalAmount

		r := ConcentrationRow{
			Rank:                 i + 1,
			State:                row.State,
			TotalAmount:          row.TotalAmount,
			IndividualPercentage: share(row.TotalAmount, grandTotal),
			CumulativePercentage: share(running, grandTotal),
			MarketSegment:        SegmentBottom,
		}
		if r.CumulativePercentage != nil {
			switch cum := *r.CumulativePercentage; {
			case cum <= 80:
				r.MarketSegment = SegmentTop
			case cum <= 95:
				r.MarketSegment = SegmentNext
			}
		}
		out = append(out, r)
	}
	return out, nil
}

package analytics

import (
	"context"
	"fmt"

	"github.com/finpulse/insights/pkg/db"
)

// TypeBreakdown is one transaction type's totals plus its amount and volume
// shares of the unfiltered grand totals.
type TypeBreakdown struct {
	db.TypeStatsRow
	PercentageOfTotal *float64 `json:"percentage_of_total"`
	VolumePercentage  *float64 `json:"volume_percentage"`
}

// InsuranceInsight is one insurance type's totals plus its premium and policy
// shares.
type InsuranceInsight struct {
	db.InsuranceTypeStatsRow
	PremiumPercentage *float64 `json:"premium_percentage"`
	PolicyPercentage  *float64 `json:"policy_percentage"`
}

// TypeBreakdown returns per-type transaction statistics with amount and
// volume shares, ordered by amount descending.
func (e *Engine) TypeBreakdown(ctx context.Context) ([]TypeBreakdown, error) {
	rows, err := e.store.TypeStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("type breakdown: %w", err)
	}
	totals, err := e.store.TransactionGrandTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("type breakdown: %w", err)
	}

	out := make([]TypeBreakdown, 0, len(rows))
	for _, row := range rows {
		out = append(out, TypeBreakdown{
			TypeStatsRow:      row,
			PercentageOfTotal: share(row.TotalAmount, totals.TotalAmount),
			VolumePercentage:  share(float64(row.TotalTransactions), float64(totals.TotalCount)),
		})
	}
	return out, nil
}

// InsuranceByDistrict returns one state's per-district insurance totals
// ordered by premium descending.
func (e *Engine) InsuranceByDistrict(ctx context.Context, state string) ([]db.DistrictInsuranceRow, error) {
	rows, err := e.store.DistrictInsuranceTotals(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("insurance by district: %w", err)
	}
	return rows, nil
}

// InsuranceInsights returns per-type insurance statistics with premium and
// policy shares, ordered by premium descending.
func (e *Engine) InsuranceInsights(ctx context.Context) ([]InsuranceInsight, error) {
	rows, err := e.store.InsuranceTypeStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("insurance insights: %w", err)
	}
	totals, err := e.store.InsuranceGrandTotalStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("insurance insights: %w", err)
	}

	out := make([]InsuranceInsight, 0, len(rows))
	for _, row := range rows {
		out = append(out, InsuranceInsight{
			InsuranceTypeStatsRow: row,
			PremiumPercentage:     share(row.TotalPremium, totals.TotalPremium),
			PolicyPercentage:      share(float64(row.TotalPolicies), float64(totals.TotalPolicies)),
		})
	}
	return out, nil
}

package analytics

import (
	"context"
	"fmt"

	"github.com/finpulse/insights/pkg/db"
)

// DefaultRankingLimit bounds ranking results when the caller gives no limit.
const DefaultRankingLimit = 10

// StateRanking is one state's totals plus its share of the unfiltered grand
// total. The share denominator is never affected by the limit.
type StateRanking struct {
	db.StateTotalsRow
	PercentageOfTotal *float64 `json:"percentage_of_total"`
}

// BrandRanking is one device brand's totals plus its overall market share.
type BrandRanking struct {
	db.BrandStatsRow
	OverallMarketShare *float64 `json:"overall_market_share"`
}

// DistrictRanking is one district's totals plus its share of the state total.
type DistrictRanking struct {
	db.DistrictStatsRow
	StatePercentage *float64 `json:"state_percentage"`
}

// PincodeRanking holds one pincode leaderboard; exactly one slice is set,
// matching the requested metric.
type PincodeRanking struct {
	Metric       string                   `json:"metric"`
	Transactions []db.PincodeAmountRow    `json:"transactions,omitempty"`
	Users        []db.PincodeUserRow      `json:"users,omitempty"`
	Insurance    []db.PincodeInsuranceRow `json:"insurance,omitempty"`
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultRankingLimit
	}
	return limit
}

// StateRanking returns the top states by transaction amount with each state's
// share of the grand total.
func (e *Engine) StateRanking(ctx context.Context, limit int) ([]StateRanking, error) {
	limit = normalizeLimit(limit)

	rows, err := e.store.StateTotals(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("state ranking: %w", err)
	}
	totals, err := e.store.TransactionGrandTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("state ranking: %w", err)
	}

	out := make([]StateRanking, 0, len(rows))
	for _, row := range rows {
		out = append(out, StateRanking{
			StateTotalsRow:    row,
			PercentageOfTotal: share(row.TotalAmount, totals.TotalAmount),
		})
	}
	return out, nil
}

// BrandRanking returns the top device brands by user count with each brand's
// overall market share.
func (e *Engine) BrandRanking(ctx context.Context, limit int) ([]BrandRanking, error) {
	limit = normalizeLimit(limit)

	rows, err := e.store.BrandTotals(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("brand ranking: %w", err)
	}
	grand, err := e.store.DeviceGrandTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("brand ranking: %w", err)
	}

	out := make([]BrandRanking, 0, len(rows))
	for _, row := range rows {
		out = append(out, BrandRanking{
			BrandStatsRow:      row,
			OverallMarketShare: share(float64(row.TotalUsers), float64(grand)),
		})
	}
	return out, nil
}

// DistrictPerformance returns one state's top districts by transaction amount
// with each district's share of the state total.
func (e *Engine) DistrictPerformance(ctx context.Context, state string, limit int) ([]DistrictRanking, error) {
	limit = normalizeLimit(limit)

	rows, err := e.store.DistrictTotals(ctx, state, limit)
	if err != nil {
		return nil, fmt.Errorf("district performance: %w", err)
	}
	stateTotal, err := e.store.StateMapAmountTotal(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("district performance: %w", err)
	}

	out := make([]DistrictRanking, 0, len(rows))
	for _, row := range rows {
		out = append(out, DistrictRanking{
			DistrictStatsRow: row,
			StatePercentage:  share(row.TotalAmount, stateTotal),
		})
	}
	return out, nil
}

// TopPincodes returns the pincode leaderboard for the requested metric:
// "transaction_amount" (default), "registered_users" or "insurance_premium".
func (e *Engine) TopPincodes(ctx context.Context, metric string, limit int) (*PincodeRanking, error) {
	limit = normalizeLimit(limit)
	if metric == "" {
		metric = "transaction_amount"
	}

	result := &PincodeRanking{Metric: metric}
	var err error
	switch metric {
	case "transaction_amount":
		result.Transactions, err = e.store.TopPincodesByAmount(ctx, limit)
	case "registered_users":
		result.Users, err = e.store.TopPincodesByUsers(ctx, limit)
	case "insurance_premium":
		result.Insurance, err = e.store.TopPincodesByPremium(ctx, limit)
	default:
		return nil, fmt.Errorf("top pincodes: unknown metric %q", metric)
	}
	if err != nil {
		return nil, fmt.Errorf("top pincodes: %w", err)
	}
	return result, nil
}

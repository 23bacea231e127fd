package db

import (
	"context"
	"fmt"
)

// InsuranceTypeStatsRow aggregates the insurance fact table by policy type.
type InsuranceTypeStatsRow struct {
	InsuranceType string  `json:"insurance_type" ch:"insurance_type"`
	TotalPolicies uint64  `json:"total_policies" ch:"total_policies"`
	TotalPremium  float64 `json:"total_premium" ch:"total_premium"`
	AvgPremium    float64 `json:"avg_premium" ch:"avg_premium"`
	MinPremium    float64 `json:"min_premium" ch:"min_premium"`
	MaxPremium    float64 `json:"max_premium" ch:"max_premium"`
	StatesCovered uint64  `json:"states_covered" ch:"states_covered"`
	YearsActive   uint64  `json:"years_active" ch:"years_active"`
}

// InsuranceGrandTotals carries the unfiltered premium and policy sums used as
// percentage denominators.
type InsuranceGrandTotals struct {
	TotalPremium  float64 `ch:"total_premium"`
	TotalPolicies uint64  `ch:"total_policies"`
}

// InsuranceTypeStats aggregates the insurance fact table by type, ordered
// descending by premium, ties broken by type name ascending.
func (db *InsightsDB) InsuranceTypeStats(ctx context.Context) ([]InsuranceTypeStatsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			insurance_type,
			sum(insurance_count) AS total_policies,
			sum(insurance_amount) AS total_premium,
			avg(insurance_amount) AS avg_premium,
			min(insurance_amount) AS min_premium,
			max(insurance_amount) AS max_premium,
			uniqExact(state) AS states_covered,
			uniqExact(year) AS years_active
		FROM "%s"."aggregated_insurance"
		GROUP BY insurance_type
		ORDER BY total_premium DESC, insurance_type ASC
	`, db.Name)

	var rows []InsuranceTypeStatsRow
	if err := db.selectRows(ctx, &rows, "insurance type stats", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// InsuranceGrandTotalStats returns the unfiltered premium and policy sums over
// the whole insurance fact table.
func (db *InsightsDB) InsuranceGrandTotalStats(ctx context.Context) (*InsuranceGrandTotals, error) {
	query := fmt.Sprintf(`
		SELECT
			sum(insurance_amount) AS total_premium,
			sum(insurance_count) AS total_policies
		FROM "%s"."aggregated_insurance"
	`, db.Name)

	var totals InsuranceGrandTotals
	if err := db.scanRow(ctx, &totals, "insurance grand totals", query); err != nil {
		return nil, err
	}

	return &totals, nil
}

package db

import (
	"context"
	"fmt"
)

// DistrictStatsRow aggregates the district transaction map by district within
// one state.
type DistrictStatsRow struct {
	District          string  `json:"district" ch:"district"`
	TotalTransactions uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalAmount       float64 `json:"total_amount" ch:"total_amount"`
	AvgAmount         float64 `json:"avg_amount" ch:"avg_amount"`
	YearsActive       uint64  `json:"years_active" ch:"years_active"`
	QuartersActive    uint64  `json:"quarters_active" ch:"quarters_active"`
}

// DistrictInsuranceRow aggregates the district insurance map by district
// within one state.
type DistrictInsuranceRow struct {
	District      string  `json:"district" ch:"district"`
	TotalPolicies uint64  `json:"total_policies" ch:"total_policies"`
	TotalPremium  float64 `json:"total_premium" ch:"total_premium"`
	AvgPremium    float64 `json:"avg_premium" ch:"avg_premium"`
	YearsActive   uint64  `json:"years_active" ch:"years_active"`
}

// DistrictTotals returns one state's per-district transaction totals ordered
// descending by amount, ties broken by district name ascending, truncated to
// limit.
func (db *InsightsDB) DistrictTotals(ctx context.Context, state string, limit int) ([]DistrictStatsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			district,
			sum(count) AS total_transactions,
			sum(amount) AS total_amount,
			avg(amount) AS avg_amount,
			uniqExact(year) AS years_active,
			uniqExact(quarter) AS quarters_active
		FROM "%s"."map_transaction"
		WHERE state = ?
		GROUP BY district
		ORDER BY total_amount DESC, district ASC
		LIMIT ?
	`, db.Name)

	var rows []DistrictStatsRow
	if err := db.selectRows(ctx, &rows, "district totals", query, state, limit); err != nil {
		return nil, err
	}

	return rows, nil
}

// StateMapAmountTotal returns one state's unfiltered district-map amount sum,
// the denominator for district share percentages.
func (db *InsightsDB) StateMapAmountTotal(ctx context.Context, state string) (float64, error) {
	query := fmt.Sprintf(`SELECT sum(amount) AS total_amount FROM "%s"."map_transaction" WHERE state = ?`, db.Name)

	var totals struct {
		TotalAmount float64 `ch:"total_amount"`
	}
	if err := db.scanRow(ctx, &totals, "state map amount total", query, state); err != nil {
		return 0, err
	}

	return totals.TotalAmount, nil
}

// StateMapUserTotal returns one state's unfiltered registered-user sum, the
// denominator for district user share percentages.
func (db *InsightsDB) StateMapUserTotal(ctx context.Context, state string) (uint64, error) {
	query := fmt.Sprintf(`SELECT sum(registered_users) AS registered_users FROM "%s"."map_user" WHERE state = ?`, db.Name)

	var totals struct {
		RegisteredUsers uint64 `ch:"registered_users"`
	}
	if err := db.scanRow(ctx, &totals, "state map user total", query, state); err != nil {
		return 0, err
	}

	return totals.RegisteredUsers, nil
}

// NationalUserTotal returns the unfiltered registered-user sum across all
// states.
func (db *InsightsDB) NationalUserTotal(ctx context.Context) (uint64, error) {
	query := fmt.Sprintf(`SELECT sum(registered_users) AS registered_users FROM "%s"."map_user"`, db.Name)

	var totals struct {
		RegisteredUsers uint64 `ch:"registered_users"`
	}
	if err := db.scanRow(ctx, &totals, "national user total", query); err != nil {
		return 0, err
	}

	return totals.RegisteredUsers, nil
}

// DistrictInsuranceTotals returns one state's per-district insurance totals
// ordered descending by premium, ties broken by district name ascending.
func (db *InsightsDB) DistrictInsuranceTotals(ctx context.Context, state string) ([]DistrictInsuranceRow, error) {
	query := fmt.Sprintf(`
		SELECT
			district,
			sum(insurance_count) AS total_policies,
			sum(insurance_amount) AS total_premium,
			avg(insurance_amount) AS avg_premium,
			uniqExact(year) AS years_active
		FROM "%s"."map_insurance"
		WHERE state = ?
		GROUP BY district
		ORDER BY total_premium DESC, district ASC
	`, db.Name)

	var rows []DistrictInsuranceRow
	if err := db.selectRows(ctx, &rows, "district insurance totals", query, state); err != nil {
		return nil, err
	}

	return rows, nil
}

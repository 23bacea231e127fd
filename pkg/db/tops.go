package db

import (
	"context"
	"fmt"
)

// PincodeAmountRow aggregates the pincode transaction leaderboard by
// (state, pincode).
type PincodeAmountRow struct {
	State             string  `json:"state" ch:"state"`
	Pincode           string  `json:"pincode" ch:"pincode"`
	TotalTransactions uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalAmount       float64 `json:"total_amount" ch:"total_amount"`
	AvgAmount         float64 `json:"avg_amount" ch:"avg_amount"`
	YearsActive       uint64  `json:"years_active" ch:"years_active"`
	QuartersActive    uint64  `json:"quarters_active" ch:"quarters_active"`
}

// PincodeUserRow aggregates the pincode user leaderboard by (state, pincode).
type PincodeUserRow struct {
	State          string `json:"state" ch:"state"`
	Pincode        string `json:"pincode" ch:"pincode"`
	TotalUsers     uint64 `json:"total_users" ch:"total_users"`
	YearsActive    uint64 `json:"years_active" ch:"years_active"`
	QuartersActive uint64 `json:"quarters_active" ch:"quarters_active"`
}

// PincodeInsuranceRow aggregates the pincode insurance leaderboard by
// (state, pincode).
type PincodeInsuranceRow struct {
	State         string  `json:"state" ch:"state"`
	Pincode       string  `json:"pincode" ch:"pincode"`
	TotalPolicies uint64  `json:"total_policies" ch:"total_policies"`
	TotalPremium  float64 `json:"total_premium" ch:"total_premium"`
	YearsActive   uint64  `json:"years_active" ch:"years_active"`
}

// TopPincodesByAmount returns pincodes ordered descending by transaction
// amount, ties broken by pincode ascending, truncated to limit.
func (db *InsightsDB) TopPincodesByAmount(ctx context.Context, limit int) ([]PincodeAmountRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			pincode,
			sum(transaction_count) AS total_transactions,
			sum(transaction_amount) AS total_amount,
			avg(transaction_amount) AS avg_amount,
			uniqExact(year) AS years_active,
			uniqExact(quarter) AS quarters_active
		FROM "%s"."top_transaction"
		GROUP BY state, pincode
		ORDER BY total_amount DESC, pincode ASC
		LIMIT ?
	`, db.Name)

	var rows []PincodeAmountRow
	if err := db.selectRows(ctx, &rows, "top pincodes by amount", query, limit); err != nil {
		return nil, err
	}

	return rows, nil
}

// TopPincodesByUsers returns pincodes ordered descending by registered users,
// ties broken by pincode ascending, truncated to limit.
func (db *InsightsDB) TopPincodesByUsers(ctx context.Context, limit int) ([]PincodeUserRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			pincode,
			sum(registered_users) AS total_users,
			uniqExact(year) AS years_active,
			uniqExact(quarter) AS quarters_active
		FROM "%s"."top_user"
		GROUP BY state, pincode
		ORDER BY total_users DESC, pincode ASC
		LIMIT ?
	`, db.Name)

	var rows []PincodeUserRow
	if err := db.selectRows(ctx, &rows, "top pincodes by users", query, limit); err != nil {
		return nil, err
	}

	return rows, nil
}

// TopPincodesByPremium returns pincodes ordered descending by insurance
// premium, ties broken by pincode ascending, truncated to limit.
func (db *InsightsDB) TopPincodesByPremium(ctx context.Context, limit int) ([]PincodeInsuranceRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			pincode,
			sum(insurance_count) AS total_policies,
			sum(insurance_amount) AS total_premium,
			uniqExact(year) AS years_active
		FROM "%s"."top_insurance"
		GROUP BY state, pincode
		ORDER BY total_premium DESC, pincode ASC
		LIMIT ?
	`, db.Name)

	var rows []PincodeInsuranceRow
	if err := db.selectRows(ctx, &rows, "top pincodes by premium", query, limit); err != nil {
		return nil, err
	}

	return rows, nil
}

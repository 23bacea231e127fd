package db

import (
	"context"
	"fmt"
)

// ReportTransactionRow is one (year, quarter, type) bucket of a single
// state's transaction history.
type ReportTransactionRow struct {
	Year            uint16  `json:"year" ch:"year"`
	Quarter         uint8   `json:"quarter" ch:"quarter"`
	TransactionType string  `json:"transaction_type" ch:"transaction_type"`
	Transactions    uint64  `json:"transactions" ch:"transactions"`
	Amount          float64 `json:"amount" ch:"amount"`
	AvgAmount       float64 `json:"avg_amount" ch:"avg_amount"`
}

// ReportBrandRow is one (year, brand) bucket of a single state's device
// history.
type ReportBrandRow struct {
	Year          uint16  `json:"year" ch:"year"`
	Brand         string  `json:"brand" ch:"brand"`
	TotalUsers    uint64  `json:"total_users" ch:"total_users"`
	AvgPercentage float64 `json:"avg_percentage" ch:"avg_percentage"`
	MinPercentage float64 `json:"min_percentage" ch:"min_percentage"`
	MaxPercentage float64 `json:"max_percentage" ch:"max_percentage"`
}

// ReportDistrictRow joins a state's district transaction map against its
// district user map. The user side is nullable; a district with no user rows
// carries nil pointers, not zeroes.
type ReportDistrictRow struct {
	District          string  `json:"district" ch:"district"`
	TotalTransactions uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalAmount       float64 `json:"total_amount" ch:"total_amount"`
	AvgAmount         float64 `json:"avg_amount" ch:"avg_amount"`
	TotalUsers        *uint64 `json:"total_users" ch:"total_users"`
	TotalAppOpens     *uint64 `json:"total_app_opens" ch:"total_app_opens"`
}

// ReportInsuranceRow is one (year, type) bucket of a single state's insurance
// history.
type ReportInsuranceRow struct {
	Year          uint16  `json:"year" ch:"year"`
	InsuranceType string  `json:"insurance_type" ch:"insurance_type"`
	Policies      uint64  `json:"policies" ch:"policies"`
	Premium       float64 `json:"premium" ch:"premium"`
	AvgPremium    float64 `json:"avg_premium" ch:"avg_premium"`
}

// ReportPincodeRow joins a state's pincode transaction leaderboard against
// its pincode user leaderboard. The user side is nullable.
type ReportPincodeRow struct {
	Pincode           string  `json:"pincode" ch:"pincode"`
	TotalTransactions uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalAmount       float64 `json:"total_amount" ch:"total_amount"`
	TotalUsers        *uint64 `json:"total_users" ch:"total_users"`
}

// ReportTransactions returns one state's transaction history grouped by
// (year, quarter, type), ordered by period then amount descending.
func (db *InsightsDB) ReportTransactions(ctx context.Context, state string) ([]ReportTransactionRow, error) {
	query := fmt.Sprintf(`
		SELECT
			year,
			quarter,
			transaction_type,
			sum(transaction_count) AS transactions,
			sum(transaction_amount) AS amount,
			avg(transaction_amount) AS avg_amount
		FROM "%s"."aggregated_transaction"
		WHERE state = ?
		GROUP BY year, quarter, transaction_type
		ORDER BY year, quarter, amount DESC
	`, db.Name)

	var rows []ReportTransactionRow
	if err := db.selectRows(ctx, &rows, "report transactions", query, state); err != nil {
		return nil, err
	}

	return rows, nil
}

// ReportBrands returns one state's device history grouped by (year, brand),
// ordered by year then user count descending.
func (db *InsightsDB) ReportBrands(ctx context.Context, state string) ([]ReportBrandRow, error) {
	query := fmt.Sprintf(`
		SELECT
			year,
			brand,
			sum(device_count) AS total_users,
			avg(market_share_percentage) AS avg_percentage,
			min(market_share_percentage) AS min_percentage,
			max(market_share_percentage) AS max_percentage
		FROM "%s"."aggregated_user"
		WHERE state = ?
		GROUP BY year, brand
		ORDER BY year, total_users DESC
	`, db.Name)

	var rows []ReportBrandRow
	if err := db.selectRows(ctx, &rows, "report brands", query, state); err != nil {
		return nil, err
	}

	return rows, nil
}

// ReportDistricts returns one state's district performance, transaction map
// left-joined against the user map on (state, district, year, quarter).
func (db *InsightsDB) ReportDistricts(ctx context.Context, state string) ([]ReportDistrictRow, error) {
	query := fmt.Sprintf(`
		SELECT
			mt.district AS district,
			sum(mt.count) AS total_transactions,
			sum(mt.amount) AS total_amount,
			avg(mt.amount) AS avg_amount,
			sum(mu.registered_users) AS total_users,
			sum(mu.app_opens) AS total_app_opens
		FROM "%s"."map_transaction" AS mt
		LEFT JOIN "%s"."map_user" AS mu
			ON mt.state = mu.state AND mt.district = mu.district
			AND mt.year = mu.year AND mt.quarter = mu.quarter
		WHERE mt.state = ?
		GROUP BY mt.district
		ORDER BY total_amount DESC, district ASC
		SETTINGS join_use_nulls = 1
	`, db.Name, db.Name)

	var rows []ReportDistrictRow
	if err := db.selectRows(ctx, &rows, "report districts", query, state); err != nil {
		return nil, err
	}

	return rows, nil
}

// ReportInsurance returns one state's insurance history grouped by
// (year, type), ordered by year then premium descending.
func (db *InsightsDB) ReportInsurance(ctx context.Context, state string) ([]ReportInsuranceRow, error) {
	query := fmt.Sprintf(`
		SELECT
			year,
			insurance_type,
			sum(insurance_count) AS policies,
			sum(insurance_amount) AS premium,
			avg(insurance_amount) AS avg_premium
		FROM "%s"."aggregated_insurance"
		WHERE state = ?
		GROUP BY year, insurance_type
		ORDER BY year, premium DESC
	`, db.Name)

	var rows []ReportInsuranceRow
	if err := db.selectRows(ctx, &rows, "report insurance", query, state); err != nil {
		return nil, err
	}

	return rows, nil
}

// ReportTopPincodes returns one state's ten highest-amount pincodes, the
// transaction leaderboard left-joined against the user leaderboard.
func (db *InsightsDB) ReportTopPincodes(ctx context.Context, state string) ([]ReportPincodeRow, error) {
	query := fmt.Sprintf(`
		SELECT
			tt.pincode AS pincode,
			sum(tt.transaction_count) AS total_transactions,
			sum(tt.transaction_amount) AS total_amount,
			sum(tu.registered_users) AS total_users
		FROM "%s"."top_transaction" AS tt
		LEFT JOIN "%s"."top_user" AS tu
			ON tt.state = tu.state AND tt.pincode = tu.pincode
			AND tt.year = tu.year AND tt.quarter = tu.quarter
		WHERE tt.state = ?
		GROUP BY tt.pincode
		ORDER BY total_amount DESC, pincode ASC
		LIMIT 10
		SETTINGS join_use_nulls = 1
	`, db.Name, db.Name)

	var rows []ReportPincodeRow
	if err := db.selectRows(ctx, &rows, "report top pincodes", query, state); err != nil {
		return nil, err
	}

	return rows, nil
}

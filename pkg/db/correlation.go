package db

import (
	"context"
	"fmt"
)

// CorrelationRow lines up transaction, device, insurance and engagement
// metrics on a (state, year, quarter) key. Joined sides are nullable; a
// period with no rows in a joined table carries nil pointers.
type CorrelationRow struct {
	State             string   `json:"state" ch:"state"`
	Year              uint16   `json:"year" ch:"year"`
	Quarter           uint8    `json:"quarter" ch:"quarter"`
	TransactionAmount float64  `json:"transaction_amount" ch:"transaction_amount"`
	TransactionCount  uint64   `json:"transaction_count" ch:"transaction_count"`
	AvgUserCount      *float64 `json:"avg_user_count" ch:"avg_user_count"`
	InsuranceAmount   *float64 `json:"insurance_amount" ch:"insurance_amount"`
	RegisteredUsers   *uint64  `json:"registered_users" ch:"registered_users"`
	AppOpens          *uint64  `json:"app_opens" ch:"app_opens"`
}

// CorrelationRows returns the cross-table metric panel in (state, year,
// quarter) order. Each side is pre-aggregated to the panel grain before
// joining so a join never multiplies rows on the transaction side.
func (db *InsightsDB) CorrelationRows(ctx context.Context) ([]CorrelationRow, error) {
	query := fmt.Sprintf(`
		SELECT
			at.state AS state,
			at.year AS year,
			at.quarter AS quarter,
			at.transaction_amount AS transaction_amount,
			at.transaction_count AS transaction_count,
			au.avg_user_count AS avg_user_count,
			ai.insurance_amount AS insurance_amount,
			mu.registered_users AS registered_users,
			mu.app_opens AS app_opens
		FROM (
			SELECT state, year, quarter,
				sum(transaction_amount) AS transaction_amount,
				sum(transaction_count) AS transaction_count
			FROM "%s"."aggregated_transaction"
			GROUP BY state, year, quarter
		) AS at
		LEFT JOIN (
			SELECT state, year, quarter, avg(device_count) AS avg_user_count
			FROM "%s"."aggregated_user"
			GROUP BY state, year, quarter
		) AS au ON at.state = au.state AND at.year = au.year AND at.quarter = au.quarter
		LEFT JOIN (
			SELECT state, year, quarter, sum(insurance_amount) AS insurance_amount
			FROM "%s"."aggregated_insurance"
			GROUP BY state, year, quarter
		) AS ai ON at.state = ai.state AND at.year = ai.year AND at.quarter = ai.quarter
		LEFT JOIN (
			SELECT state, year, quarter,
				sum(registered_users) AS registered_users,
				sum(app_opens) AS app_opens
			FROM "%s"."map_user"
			GROUP BY state, year, quarter
		) AS mu ON at.state = mu.state AND at.year = mu.year AND at.quarter = mu.quarter
		ORDER BY state, year, quarter
		SETTINGS join_use_nulls = 1
	`, db.Name, db.Name, db.Name, db.Name)

	var rows []CorrelationRow
	if err := db.selectRows(ctx, &rows, "correlation rows", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// StateAmountWithUsers pairs each state's transaction amount with its
// registered-user total. States absent from the user map are dropped; the
// lifetime-value derivation has nothing to divide by there.
func (db *InsightsDB) StateAmountWithUsers(ctx context.Context) ([]StateValueRow, error) {
	query := fmt.Sprintf(`
		SELECT
			at.state AS state,
			at.total_amount AS total_amount,
			mu.registered_users AS registered_users
		FROM (
			SELECT state, sum(transaction_amount) AS total_amount
			FROM "%s"."aggregated_transaction"
			GROUP BY state
		) AS at
		INNER JOIN (
			SELECT state, sum(registered_users) AS registered_users
			FROM "%s"."map_user"
			GROUP BY state
		) AS mu ON at.state = mu.state
		ORDER BY state
	`, db.Name, db.Name)

	var rows []StateValueRow
	if err := db.selectRows(ctx, &rows, "state amount with users", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// StateValueRow pairs a state's transaction amount with its registered-user
// total.
type StateValueRow struct {
	State           string  `json:"state" ch:"state"`
	TotalAmount     float64 `json:"total_amount" ch:"total_amount"`
	RegisteredUsers uint64  `json:"registered_users" ch:"registered_users"`
}

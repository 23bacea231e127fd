package db

import (
	"context"
	"fmt"
)

// OverviewStats is the single-row summary of the transaction fact table.
// All fields are zero-valued when the table is empty.
type OverviewStats struct {
	TotalTransactions      uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalTransactionCount  uint64  `json:"total_transaction_count" ch:"total_transaction_count"`
	TotalTransactionAmount float64 `json:"total_transaction_amount" ch:"total_transaction_amount"`
	AvgTransactionAmount   float64 `json:"avg_transaction_amount" ch:"avg_transaction_amount"`
	UniqueStates           uint64  `json:"unique_states" ch:"unique_states"`
	UniqueTransactionTypes uint64  `json:"unique_transaction_types" ch:"unique_transaction_types"`
	EarliestYear           uint16  `json:"earliest_year" ch:"earliest_year"`
	LatestYear             uint16  `json:"latest_year" ch:"latest_year"`
}

// StateTotalsRow aggregates the transaction fact table by state.
type StateTotalsRow struct {
	State             string  `json:"state" ch:"state"`
	TotalTransactions uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalAmount       float64 `json:"total_amount" ch:"total_amount"`
	AvgAmount         float64 `json:"avg_amount" ch:"avg_amount"`
	YearsActive       uint64  `json:"years_active" ch:"years_active"`
	TransactionTypes  uint64  `json:"transaction_types" ch:"transaction_types"`
}

// StateAmountRow is the minimal per-state amount rollup used by the
// concentration and lifetime-value derivations.
type StateAmountRow struct {
	State       string  `json:"state" ch:"state"`
	TotalAmount float64 `json:"total_amount" ch:"total_amount"`
}

// GrandTotals carries the unfiltered sums used as percentage denominators.
// They are always computed independently of any limited result set.
type GrandTotals struct {
	TotalAmount float64 `ch:"total_amount"`
	TotalCount  uint64  `ch:"total_count"`
}

// TrendRow is one (year, quarter) bucket of the quarterly trend.
type TrendRow struct {
	Year              uint16  `json:"year" ch:"year"`
	Quarter           uint8   `json:"quarter" ch:"quarter"`
	TotalTransactions uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalAmount       float64 `json:"total_amount" ch:"total_amount"`
	AvgAmount         float64 `json:"avg_amount" ch:"avg_amount"`
	StatesActive      uint64  `json:"states_active" ch:"states_active"`
}

// YearTrendRow is one quarter bucket of a single year's trend.
type YearTrendRow struct {
	Quarter           uint8   `json:"quarter" ch:"quarter"`
	TotalTransactions uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalAmount       float64 `json:"total_amount" ch:"total_amount"`
	AvgAmount         float64 `json:"avg_amount" ch:"avg_amount"`
	StatesActive      uint64  `json:"states_active" ch:"states_active"`
	TypesActive       uint64  `json:"types_active" ch:"types_active"`
}

// TypeStatsRow aggregates the transaction fact table by transaction type.
type TypeStatsRow struct {
	TransactionType   string  `json:"transaction_type" ch:"transaction_type"`
	TotalTransactions uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalAmount       float64 `json:"total_amount" ch:"total_amount"`
	AvgAmount         float64 `json:"avg_amount" ch:"avg_amount"`
	MinAmount         float64 `json:"min_amount" ch:"min_amount"`
	MaxAmount         float64 `json:"max_amount" ch:"max_amount"`
	StatesCovered     uint64  `json:"states_covered" ch:"states_covered"`
	YearsActive       uint64  `json:"years_active" ch:"years_active"`
}

// YearlyTotalsRow aggregates the transaction fact table by year, ordered
// ascending so lag-based growth derivations can walk it in period order.
type YearlyTotalsRow struct {
	Year              uint16  `json:"year" ch:"year"`
	TotalTransactions uint64  `json:"total_transactions" ch:"total_transactions"`
	TotalAmount       float64 `json:"total_amount" ch:"total_amount"`
	ActiveStates      uint64  `json:"active_states" ch:"active_states"`
	ActiveTypes       uint64  `json:"active_types" ch:"active_types"`
}

// SeasonalRow aggregates by quarter across all years.
type SeasonalRow struct {
	Quarter         uint8   `json:"quarter" ch:"quarter"`
	AvgTransactions float64 `json:"avg_transactions" ch:"avg_transactions"`
	AvgAmount       float64 `json:"avg_amount" ch:"avg_amount"`
	MinAmount       float64 `json:"min_amount" ch:"min_amount"`
	MaxAmount       float64 `json:"max_amount" ch:"max_amount"`
	StatesActive    uint64  `json:"states_active" ch:"states_active"`
	YearsAnalyzed   uint64  `json:"years_analyzed" ch:"years_analyzed"`
}

// StatePeriodRow is one (state, year, quarter) bucket of transaction totals.
type StatePeriodRow struct {
	State   string  `json:"state" ch:"state"`
	Year    uint16  `json:"year" ch:"year"`
	Quarter uint8   `json:"quarter" ch:"quarter"`
	Amount  float64 `json:"amount" ch:"amount"`
	Count   uint64  `json:"count" ch:"count"`
}

// SeriesPointRow is one (year, quarter) bucket for a single state.
type SeriesPointRow struct {
	Year    uint16  `json:"year" ch:"year"`
	Quarter uint8   `json:"quarter" ch:"quarter"`
	Amount  float64 `json:"amount" ch:"amount"`
	Count   uint64  `json:"count" ch:"count"`
}

// StateMetricsRow carries the four per-state metrics the competitive analysis
// ranks on.
type StateMetricsRow struct {
	State                string  `json:"state" ch:"state"`
	TotalAmount          float64 `json:"total_amount" ch:"total_amount"`
	TotalTransactions    uint64  `json:"total_transactions" ch:"total_transactions"`
	TransactionDiversity uint64  `json:"transaction_diversity" ch:"transaction_diversity"`
	AvgTransactionSize   float64 `json:"avg_transaction_size" ch:"avg_transaction_size"`
}

// StateTypeStatsRow is one (state, transaction type) group of the fraud/risk
// source statistics.
type StateTypeStatsRow struct {
	State           string  `json:"state" ch:"state"`
	TransactionType string  `json:"transaction_type" ch:"transaction_type"`
	AvgAmount       float64 `json:"avg_amount" ch:"avg_amount"`
	MaxAmount       float64 `json:"max_amount" ch:"max_amount"`
	MinAmount       float64 `json:"min_amount" ch:"min_amount"`
	Frequency       uint64  `json:"transaction_frequency" ch:"transaction_frequency"`
}

// PeriodVolumeRow is one (state, year, quarter) volume bucket; only the
// quarter is carried out because the velocity KPI normalizes by quarter length.
type PeriodVolumeRow struct {
	Quarter     uint8   `ch:"quarter"`
	TotalCount  uint64  `ch:"total_count"`
	TotalAmount float64 `ch:"total_amount"`
}

// TransactionOverview returns overall statistics for the transaction fact
// table. An empty table yields a zero-valued summary, not an error.
func (db *InsightsDB) TransactionOverview(ctx context.Context) (*OverviewStats, error) {
	query := fmt.Sprintf(`
		SELECT
			count() AS total_transactions,
			sum(transaction_count) AS total_transaction_count,
			sum(transaction_amount) AS total_transaction_amount,
			avg(transaction_amount) AS avg_transaction_amount,
			uniqExact(state) AS unique_states,
			uniqExact(transaction_type) AS unique_transaction_types,
			min(year) AS earliest_year,
			max(year) AS latest_year
		FROM "%s"."aggregated_transaction"
	`, db.Name)

	var stats OverviewStats
	if err := db.scanRow(ctx, &stats, "transaction overview", query); err != nil {
		return nil, err
	}

	return &stats, nil
}

// StateTotals returns per-state transaction totals ordered descending by
// amount, ties broken by state name ascending, truncated to limit.
func (db *InsightsDB) StateTotals(ctx context.Context, limit int) ([]StateTotalsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			sum(transaction_count) AS total_transactions,
			sum(transaction_amount) AS total_amount,
			avg(transaction_amount) AS avg_amount,
			uniqExact(year) AS years_active,
			uniqExact(transaction_type) AS transaction_types
		FROM "%s"."aggregated_transaction"
		GROUP BY state
		ORDER BY total_amount DESC, state ASC
		LIMIT ?
	`, db.Name)

	var rows []StateTotalsRow
	if err := db.selectRows(ctx, &rows, "state totals", query, limit); err != nil {
		return nil, err
	}

	return rows, nil
}

// StateAmountTotals returns the full per-state amount rollup ordered
// descending by amount, ties broken by state name ascending. The result is
// never truncated; concentration ranks need the whole population.
func (db *InsightsDB) StateAmountTotals(ctx context.Context) ([]StateAmountRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			sum(transaction_amount) AS total_amount
		FROM "%s"."aggregated_transaction"
		GROUP BY state
		ORDER BY total_amount DESC, state ASC
	`, db.Name)

	var rows []StateAmountRow
	if err := db.selectRows(ctx, &rows, "state amount totals", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// TransactionGrandTotals returns the unfiltered amount and count sums over the
// whole transaction fact table.
func (db *InsightsDB) TransactionGrandTotals(ctx context.Context) (*GrandTotals, error) {
	query := fmt.Sprintf(`
		SELECT
			sum(transaction_amount) AS total_amount,
			sum(transaction_count) AS total_count
		FROM "%s"."aggregated_transaction"
	`, db.Name)

	var totals GrandTotals
	if err := db.scanRow(ctx, &totals, "transaction grand totals", query); err != nil {
		return nil, err
	}

	return &totals, nil
}

// QuarterlyTrends returns (year, quarter) transaction buckets in ascending
// period order.
func (db *InsightsDB) QuarterlyTrends(ctx context.Context) ([]TrendRow, error) {
	query := fmt.Sprintf(`
		SELECT
			year,
			quarter,
			sum(transaction_count) AS total_transactions,
			sum(transaction_amount) AS total_amount,
			avg(transaction_amount) AS avg_amount,
			uniqExact(state) AS states_active
		FROM "%s"."aggregated_transaction"
		GROUP BY year, quarter
		ORDER BY year, quarter
	`, db.Name)

	var rows []TrendRow
	if err := db.selectRows(ctx, &rows, "quarterly trends", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// QuarterlyTrendsForYear returns quarter buckets for a single year in
// ascending quarter order.
func (db *InsightsDB) QuarterlyTrendsForYear(ctx context.Context, year int) ([]YearTrendRow, error) {
	query := fmt.Sprintf(`
		SELECT
			quarter,
			sum(transaction_count) AS total_transactions,
			sum(transaction_amount) AS total_amount,
			avg(transaction_amount) AS avg_amount,
			uniqExact(state) AS states_active,
			uniqExact(transaction_type) AS types_active
		FROM "%s"."aggregated_transaction"
		WHERE year = ?
		GROUP BY quarter
		ORDER BY quarter
	`, db.Name)

	var rows []YearTrendRow
	if err := db.selectRows(ctx, &rows, "quarterly trends for year", query, year); err != nil {
		return nil, err
	}

	return rows, nil
}

// TypeStats aggregates the transaction fact table by transaction type,
// ordered descending by amount, ties broken by type name ascending.
func (db *InsightsDB) TypeStats(ctx context.Context) ([]TypeStatsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			transaction_type,
			sum(transaction_count) AS total_transactions,
			sum(transaction_amount) AS total_amount,
			avg(transaction_amount) AS avg_amount,
			min(transaction_amount) AS min_amount,
			max(transaction_amount) AS max_amount,
			uniqExact(state) AS states_covered,
			uniqExact(year) AS years_active
		FROM "%s"."aggregated_transaction"
		GROUP BY transaction_type
		ORDER BY total_amount DESC, transaction_type ASC
	`, db.Name)

	var rows []TypeStatsRow
	if err := db.selectRows(ctx, &rows, "type stats", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// YearlyTotals aggregates the transaction fact table by year in ascending
// order, the input to the year-over-year growth derivation.
func (db *InsightsDB) YearlyTotals(ctx context.Context) ([]YearlyTotalsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			year,
			sum(transaction_count) AS total_transactions,
			sum(transaction_amount) AS total_amount,
			uniqExact(state) AS active_states,
			uniqExact(transaction_type) AS active_types
		FROM "%s"."aggregated_transaction"
		GROUP BY year
		ORDER BY year
	`, db.Name)

	var rows []YearlyTotalsRow
	if err := db.selectRows(ctx, &rows, "yearly totals", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// SeasonalStats aggregates by quarter across all years to expose cyclic
// patterns independent of year.
func (db *InsightsDB) SeasonalStats(ctx context.Context) ([]SeasonalRow, error) {
	query := fmt.Sprintf(`
		SELECT
			quarter,
			avg(transaction_count) AS avg_transactions,
			avg(transaction_amount) AS avg_amount,
			min(transaction_amount) AS min_amount,
			max(transaction_amount) AS max_amount,
			uniqExact(state) AS states_active,
			uniqExact(year) AS years_analyzed
		FROM "%s"."aggregated_transaction"
		GROUP BY quarter
		ORDER BY quarter
	`, db.Name)

	var rows []SeasonalRow
	if err := db.selectRows(ctx, &rows, "seasonal stats", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// StatePeriodTotals returns per (state, year, quarter) transaction totals in
// period order, the source for the anomaly derivation.
func (db *InsightsDB) StatePeriodTotals(ctx context.Context) ([]StatePeriodRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			year,
			quarter,
			sum(transaction_amount) AS amount,
			sum(transaction_count) AS count
		FROM "%s"."aggregated_transaction"
		GROUP BY state, year, quarter
		ORDER BY state, year, quarter
	`, db.Name)

	var rows []StatePeriodRow
	if err := db.selectRows(ctx, &rows, "state period totals", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// StateSeries returns one state's (year, quarter) transaction buckets in
// ascending period order, the source for time-series preparation.
func (db *InsightsDB) StateSeries(ctx context.Context, state string) ([]SeriesPointRow, error) {
	query := fmt.Sprintf(`
		SELECT
			year,
			quarter,
			sum(transaction_amount) AS amount,
			sum(transaction_count) AS count
		FROM "%s"."aggregated_transaction"
		WHERE state = ?
		GROUP BY year, quarter
		ORDER BY year, quarter
	`, db.Name)

	var rows []SeriesPointRow
	if err := db.selectRows(ctx, &rows, "state series", query, state); err != nil {
		return nil, err
	}

	return rows, nil
}

// StateCompetitiveMetrics returns the per-state metric set ranked by the
// competitive analysis.
func (db *InsightsDB) StateCompetitiveMetrics(ctx context.Context) ([]StateMetricsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			sum(transaction_amount) AS total_amount,
			sum(transaction_count) AS total_transactions,
			uniqExact(transaction_type) AS transaction_diversity,
			avg(transaction_amount) AS avg_transaction_size
		FROM "%s"."aggregated_transaction"
		GROUP BY state
		ORDER BY state
	`, db.Name)

	var rows []StateMetricsRow
	if err := db.selectRows(ctx, &rows, "state competitive metrics", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// StateTypeStats returns per (state, transaction type) amount statistics, the
// source for the fraud/risk classification.
func (db *InsightsDB) StateTypeStats(ctx context.Context) ([]StateTypeStatsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			transaction_type,
			avg(transaction_amount) AS avg_amount,
			max(transaction_amount) AS max_amount,
			min(transaction_amount) AS min_amount,
			count() AS transaction_frequency
		FROM "%s"."aggregated_transaction"
		GROUP BY state, transaction_type
		ORDER BY state, transaction_type
	`, db.Name)

	var rows []StateTypeStatsRow
	if err := db.selectRows(ctx, &rows, "state type stats", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// PeriodVolumes returns per (state, year, quarter) volume buckets carrying
// the quarter, the source for the per-day velocity KPI.
func (db *InsightsDB) PeriodVolumes(ctx context.Context) ([]PeriodVolumeRow, error) {
	query := fmt.Sprintf(`
		SELECT
			quarter,
			sum(transaction_count) AS total_count,
			sum(transaction_amount) AS total_amount
		FROM "%s"."aggregated_transaction"
		GROUP BY state, year, quarter
	`, db.Name)

	var rows []PeriodVolumeRow
	if err := db.selectRows(ctx, &rows, "period volumes", query); err != nil {
		return nil, err
	}

	return rows, nil
}

package db

import (
	"context"
	"fmt"
)

// BrandStatsRow aggregates the device fact table by brand.
type BrandStatsRow struct {
	Brand          string  `json:"brand" ch:"brand"`
	TotalUsers     uint64  `json:"total_users" ch:"total_users"`
	AvgMarketShare float64 `json:"avg_market_share" ch:"avg_market_share"`
	MinMarketShare float64 `json:"min_market_share" ch:"min_market_share"`
	MaxMarketShare float64 `json:"max_market_share" ch:"max_market_share"`
	StatesPresent  uint64  `json:"states_present" ch:"states_present"`
	YearsActive    uint64  `json:"years_active" ch:"years_active"`
}

// StateEngagementRow aggregates registration and app-open activity by state.
type StateEngagementRow struct {
	State                string `json:"state" ch:"state"`
	TotalRegisteredUsers uint64 `json:"total_registered_users" ch:"total_registered_users"`
	TotalAppOpens        uint64 `json:"total_app_opens" ch:"total_app_opens"`
	DistrictsCovered     uint64 `json:"districts_covered" ch:"districts_covered"`
	YearsActive          uint64 `json:"years_active" ch:"years_active"`
}

// DistrictEngagementRow aggregates registration and app-open activity by
// district within one state.
type DistrictEngagementRow struct {
	District             string `json:"district" ch:"district"`
	TotalRegisteredUsers uint64 `json:"total_registered_users" ch:"total_registered_users"`
	TotalAppOpens        uint64 `json:"total_app_opens" ch:"total_app_opens"`
	MinUsers             uint64 `json:"min_users" ch:"min_users"`
	MaxUsers             uint64 `json:"max_users" ch:"max_users"`
	YearsActive          uint64 `json:"years_active" ch:"years_active"`
}

// StatePeriodUserRow is one (state, year, quarter) bucket of user activity,
// the source for cohort grouping.
type StatePeriodUserRow struct {
	State   string `json:"state" ch:"state"`
	Year    uint16 `json:"year" ch:"year"`
	Quarter uint8  `json:"quarter" ch:"quarter"`
	Users   uint64 `json:"users" ch:"users"`
	Opens   uint64 `json:"opens" ch:"opens"`
}

// StateUserTotalsRow is the per-state registered-user rollup used by the
// penetration and lifetime-value derivations.
type StateUserTotalsRow struct {
	State           string `json:"state" ch:"state"`
	RegisteredUsers uint64 `json:"registered_users" ch:"registered_users"`
}

// BrandTotals returns per-brand device statistics ordered descending by user
// count, ties broken by brand name ascending, truncated to limit.
func (db *InsightsDB) BrandTotals(ctx context.Context, limit int) ([]BrandStatsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			brand,
			sum(device_count) AS total_users,
			avg(market_share_percentage) AS avg_market_share,
			min(market_share_percentage) AS min_market_share,
			max(market_share_percentage) AS max_market_share,
			uniqExact(state) AS states_present,
			uniqExact(year) AS years_active
		FROM "%s"."aggregated_user"
		GROUP BY brand
		ORDER BY total_users DESC, brand ASC
		LIMIT ?
	`, db.Name)

	var rows []BrandStatsRow
	if err := db.selectRows(ctx, &rows, "brand totals", query, limit); err != nil {
		return nil, err
	}

	return rows, nil
}

// DeviceGrandTotal returns the unfiltered device-count sum, the denominator
// for overall market share.
func (db *InsightsDB) DeviceGrandTotal(ctx context.Context) (uint64, error) {
	query := fmt.Sprintf(`SELECT sum(device_count) AS total_count FROM "%s"."aggregated_user"`, db.Name)

	var totals struct {
		TotalCount uint64 `ch:"total_count"`
	}
	if err := db.scanRow(ctx, &totals, "device grand total", query); err != nil {
		return 0, err
	}

	return totals.TotalCount, nil
}

// StateEngagement returns per-state user activity ordered descending by
// registered users, ties broken by state name ascending.
func (db *InsightsDB) StateEngagement(ctx context.Context) ([]StateEngagementRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			sum(registered_users) AS total_registered_users,
			sum(app_opens) AS total_app_opens,
			uniqExact(district) AS districts_covered,
			uniqExact(year) AS years_active
		FROM "%s"."map_user"
		GROUP BY state
		ORDER BY total_registered_users DESC, state ASC
	`, db.Name)

	var rows []StateEngagementRow
	if err := db.selectRows(ctx, &rows, "state engagement", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// DistrictEngagement returns one state's per-district user activity ordered
// descending by registered users, ties broken by district name ascending.
func (db *InsightsDB) DistrictEngagement(ctx context.Context, state string) ([]DistrictEngagementRow, error) {
	query := fmt.Sprintf(`
		SELECT
			district,
			sum(registered_users) AS total_registered_users,
			sum(app_opens) AS total_app_opens,
			min(registered_users) AS min_users,
			max(registered_users) AS max_users,
			uniqExact(year) AS years_active
		FROM "%s"."map_user"
		WHERE state = ?
		GROUP BY district
		ORDER BY total_registered_users DESC, district ASC
	`, db.Name)

	var rows []DistrictEngagementRow
	if err := db.selectRows(ctx, &rows, "district engagement", query, state); err != nil {
		return nil, err
	}

	return rows, nil
}

// StatePeriodUserActivity returns per (state, year, quarter) user activity in
// period order.
func (db *InsightsDB) StatePeriodUserActivity(ctx context.Context) ([]StatePeriodUserRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			year,
			quarter,
			sum(registered_users) AS users,
			sum(app_opens) AS opens
		FROM "%s"."map_user"
		GROUP BY state, year, quarter
		ORDER BY state, year, quarter
	`, db.Name)

	var rows []StatePeriodUserRow
	if err := db.selectRows(ctx, &rows, "state period user activity", query); err != nil {
		return nil, err
	}

	return rows, nil
}

// StateUserTotals returns the per-state registered-user rollup.
func (db *InsightsDB) StateUserTotals(ctx context.Context) ([]StateUserTotalsRow, error) {
	query := fmt.Sprintf(`
		SELECT
			state,
			sum(registered_users) AS registered_users
		FROM "%s"."map_user"
		GROUP BY state
		ORDER BY state
	`, db.Name)

	var rows []StateUserTotalsRow
	if err := db.selectRows(ctx, &rows, "state user totals", query); err != nil {
		return nil, err
	}

	return rows, nil
}

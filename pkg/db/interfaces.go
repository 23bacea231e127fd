package db

import "context"

// Store is the read surface the analytics engine consumes. *InsightsDB is the
// ClickHouse implementation; tests substitute fakes.
type Store interface {
	DatabaseName() string
	Ping(ctx context.Context) error

	// aggregated_transaction
	TransactionOverview(ctx context.Context) (*OverviewStats, error)
	TransactionGrandTotals(ctx context.Context) (*GrandTotals, error)
	StateTotals(ctx context.Context, limit int) ([]StateTotalsRow, error)
	StateAmountTotals(ctx context.Context) ([]StateAmountRow, error)
	QuarterlyTrends(ctx context.Context) ([]TrendRow, error)
	QuarterlyTrendsForYear(ctx context.Context, year int) ([]YearTrendRow, error)
	TypeStats(ctx context.Context) ([]TypeStatsRow, error)
	YearlyTotals(ctx context.Context) ([]YearlyTotalsRow, error)
	SeasonalStats(ctx context.Context) ([]SeasonalRow, error)
	StatePeriodTotals(ctx context.Context) ([]StatePeriodRow, error)
	StateSeries(ctx context.Context, state string) ([]SeriesPointRow, error)
	StateCompetitiveMetrics(ctx context.Context) ([]StateMetricsRow, error)
	StateTypeStats(ctx context.Context) ([]StateTypeStatsRow, error)
	PeriodVolumes(ctx context.Context) ([]PeriodVolumeRow, error)

	// aggregated_user / map_user
	BrandTotals(ctx context.Context, limit int) ([]BrandStatsRow, error)
	DeviceGrandTotal(ctx context.Context) (uint64, error)
	StateEngagement(ctx context.Context) ([]StateEngagementRow, error)
	DistrictEngagement(ctx context.Context, state string) ([]DistrictEngagementRow, error)
	StatePeriodUserActivity(ctx context.Context) ([]StatePeriodUserRow, error)
	StateUserTotals(ctx context.Context) ([]StateUserTotalsRow, error)
	NationalUserTotal(ctx context.Context) (uint64, error)

	// aggregated_insurance / map_insurance
	InsuranceTypeStats(ctx context.Context) ([]InsuranceTypeStatsRow, error)
	InsuranceGrandTotalStats(ctx context.Context) (*InsuranceGrandTotals, error)
	DistrictInsuranceTotals(ctx context.Context, state string) ([]DistrictInsuranceRow, error)

	// map_transaction
	DistrictTotals(ctx context.Context, state string, limit int) ([]DistrictStatsRow, error)
	StateMapAmountTotal(ctx context.Context, state string) (float64, error)
	StateMapUserTotal(ctx context.Context, state string) (uint64, error)

	// top_* leaderboards
	TopPincodesByAmount(ctx context.Context, limit int) ([]PincodeAmountRow, error)
	TopPincodesByUsers(ctx context.Context, limit int) ([]PincodeUserRow, error)
	TopPincodesByPremium(ctx context.Context, limit int) ([]PincodeInsuranceRow, error)

	// state report sections
	ReportTransactions(ctx context.Context, state string) ([]ReportTransactionRow, error)
	ReportBrands(ctx context.Context, state string) ([]ReportBrandRow, error)
	ReportDistricts(ctx context.Context, state string) ([]ReportDistrictRow, error)
	ReportInsurance(ctx context.Context, state string) ([]ReportInsuranceRow, error)
	ReportTopPincodes(ctx context.Context, state string) ([]ReportPincodeRow, error)

	// cross-table panels
	CorrelationRows(ctx context.Context) ([]CorrelationRow, error)
	StateAmountWithUsers(ctx context.Context) ([]StateValueRow, error)
}

var _ Store = (*InsightsDB)(nil)

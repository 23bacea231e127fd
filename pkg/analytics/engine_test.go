package analytics

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/finpulse/insights/pkg/db"
)

// fakeStore is an in-memory Store. Each dataset has a companion error field
// so tests can fail individual queries.
type fakeStore struct {
	overview    *db.OverviewStats
	overviewErr error

	grandTotals    *db.GrandTotals
	grandTotalsErr error

	stateTotals    []db.StateTotalsRow
	stateTotalsErr error

	stateAmounts    []db.StateAmountRow
	stateAmountsErr error

	trends    []db.TrendRow
	trendsErr error

	yearTrends    []db.YearTrendRow
	yearTrendsErr error

	typeStats    []db.TypeStatsRow
	typeStatsErr error

	yearly    []db.YearlyTotalsRow
	yearlyErr error

	seasonal    []db.SeasonalRow
	seasonalErr error

	statePeriods    []db.StatePeriodRow
	statePeriodsErr error

	series    []db.SeriesPointRow
	seriesErr error

	stateMetrics    []db.StateMetricsRow
	stateMetricsErr error

	stateTypeStats    []db.StateTypeStatsRow
	stateTypeStatsErr error

	periodVolumes    []db.PeriodVolumeRow
	periodVolumesErr error

	brands    []db.BrandStatsRow
	brandsErr error

	deviceTotal    uint64
	deviceTotalErr error

	stateEngagement    []db.StateEngagementRow
	stateEngagementErr error

	districtEngagement    []db.DistrictEngagementRow
	districtEngagementErr error

	statePeriodUsers    []db.StatePeriodUserRow
	statePeriodUsersErr error

	stateUserTotals    []db.StateUserTotalsRow
	stateUserTotalsErr error

	nationalUsers    uint64
	nationalUsersErr error

	insuranceTypes    []db.InsuranceTypeStatsRow
	insuranceTypesErr error

	insuranceTotals    *db.InsuranceGrandTotals
	insuranceTotalsErr error

	districtInsurance    []db.DistrictInsuranceRow
	districtInsuranceErr error

	districts    []db.DistrictStatsRow
	districtsErr error

	stateMapAmount    float64
	stateMapAmountErr error

	stateMapUsers    uint64
	stateMapUsersErr error

	pincodeAmounts    []db.PincodeAmountRow
	pincodeAmountsErr error

	pincodeUsers    []db.PincodeUserRow
	pincodeUsersErr error

	pincodeInsurance    []db.PincodeInsuranceRow
	pincodeInsuranceErr error

	reportTransactions    []db.ReportTransactionRow
	reportTransactionsErr error

	reportBrands    []db.ReportBrandRow
	reportBrandsErr error

	reportDistricts    []db.ReportDistrictRow
	reportDistrictsErr error

	reportInsurance    []db.ReportInsuranceRow
	reportInsuranceErr error

	reportPincodes    []db.ReportPincodeRow
	reportPincodesErr error

	correlation    []db.CorrelationRow
	correlationErr error

	stateValues    []db.StateValueRow
	stateValuesErr error
}

var _ db.Store = (*fakeStore)(nil)

func (f *fakeStore) DatabaseName() string { return "test" }

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) TransactionOverview(ctx context.Context) (*db.OverviewStats, error) {
	if f.overviewErr != nil {
		return nil, f.overviewErr
	}
	if f.overview == nil {
		return &db.OverviewStats{}, nil
	}
	return f.overview, nil
}

func (f *fakeStore) TransactionGrandTotals(ctx context.Context) (*db.GrandTotals, error) {
	if f.grandTotalsErr != nil {
		return nil, f.grandTotalsErr
	}
	if f.grandTotals == nil {
		return &db.GrandTotals{}, nil
	}
	return f.grandTotals, nil
}

func (f *fakeStore) StateTotals(ctx context.Context, limit int) ([]db.StateTotalsRow, error) {
	if f.stateTotalsErr != nil {
		return nil, f.stateTotalsErr
	}
	if limit < len(f.stateTotals) {
		return f.stateTotals[:limit], nil
	}
	return f.stateTotals, nil
}

func (f *fakeStore) StateAmountTotals(ctx context.Context) ([]db.StateAmountRow, error) {
	return f.stateAmounts, f.stateAmountsErr
}

func (f *fakeStore) QuarterlyTrends(ctx context.Context) ([]db.TrendRow, error) {
	return f.trends, f.trendsErr
}

func (f *fakeStore) QuarterlyTrendsForYear(ctx context.Context, year int) ([]db.YearTrendRow, error) {
	return f.yearTrends, f.yearTrendsErr
}

func (f *fakeStore) TypeStats(ctx context.Context) ([]db.TypeStatsRow, error) {
	return f.typeStats, f.typeStatsErr
}

func (f *fakeStore) YearlyTotals(ctx context.Context) ([]db.YearlyTotalsRow, error) {
	return f.yearly, f.yearlyErr
}

func (f *fakeStore) SeasonalStats(ctx context.Context) ([]db.SeasonalRow, error) {
	return f.seasonal, f.seasonalErr
}

func (f *fakeStore) StatePeriodTotals(ctx context.Context) ([]db.StatePeriodRow, error) {
	return f.statePeriods, f.statePeriodsErr
}

func (f *fakeStore) StateSeries(ctx context.Context, state string) ([]db.SeriesPointRow, error) {
	return f.series, f.seriesErr
}

func (f *fakeStore) StateCompetitiveMetrics(ctx context.Context) ([]db.StateMetricsRow, error) {
	return f.stateMetrics, f.stateMetricsErr
}

func (f *fakeStore) StateTypeStats(ctx context.Context) ([]db.StateTypeStatsRow, error) {
	return f.stateTypeStats, f.stateTypeStatsErr
}

func (f *fakeStore) PeriodVolumes(ctx context.Context) ([]db.PeriodVolumeRow, error) {
	return f.periodVolumes, f.periodVolumesErr
}

func (f *fakeStore) BrandTotals(ctx context.Context, limit int) ([]db.BrandStatsRow, error) {
	if f.brandsErr != nil {
		return nil, f.brandsErr
	}
	if limit < len(f.brands) {
		return f.brands[:limit], nil
	}
	return f.brands, nil
}

func (f *fakeStore) DeviceGrandTotal(ctx context.Context) (uint64, error) {
	return f.deviceTotal, f.deviceTotalErr
}

func (f *fakeStore) StateEngagement(ctx context.Context) ([]db.StateEngagementRow, error) {
	return f.stateEngagement, f.stateEngagementErr
}

func (f *fakeStore) DistrictEngagement(ctx context.Context, state string) ([]db.DistrictEngagementRow, error) {
	return f.districtEngagement, f.districtEngagementErr
}

func (f *fakeStore) StatePeriodUserActivity(ctx context.Context) ([]db.StatePeriodUserRow, error) {
	return f.statePeriodUsers, f.statePeriodUsersErr
}

func (f *fakeStore) StateUserTotals(ctx context.Context) ([]db.StateUserTotalsRow, error) {
	return f.stateUserTotals, f.stateUserTotalsErr
}

func (f *fakeStore) NationalUserTotal(ctx context.Context) (uint64, error) {
	return f.nationalUsers, f.nationalUsersErr
}

func (f *fakeStore) InsuranceTypeStats(ctx context.Context) ([]db.InsuranceTypeStatsRow, error) {
	return f.insuranceTypes, f.insuranceTypesErr
}

func (f *fakeStore) InsuranceGrandTotalStats(ctx context.Context) (*db.InsuranceGrandTotals, error) {
	if f.insuranceTotalsErr != nil {
		return nil, f.insuranceTotalsErr
	}
	if f.insuranceTotals == nil {
		return &db.InsuranceGrandTotals{}, nil
	}
	return f.insuranceTotals, nil
}

func (f *fakeStore) DistrictInsuranceTotals(ctx context.Context, state string) ([]db.DistrictInsuranceRow, error) {
	return f.districtInsurance, f.districtInsuranceErr
}

func (f *fakeStore) DistrictTotals(ctx context.Context, state string, limit int) ([]db.DistrictStatsRow, error) {
	if f.districtsErr != nil {
		return nil, f.districtsErr
	}
	if limit < len(f.districts) {
		return f.districts[:limit], nil
	}
	return f.districts, nil
}

func (f *fakeStore) StateMapAmountTotal(ctx context.Context, state string) (float64, error) {
	return f.stateMapAmount, f.stateMapAmountErr
}

func (f *fakeStore) StateMapUserTotal(ctx context.Context, state string) (uint64, error) {
	return f.stateMapUsers, f.stateMapUsersErr
}

func (f *fakeStore) TopPincodesByAmount(ctx context.Context, limit int) ([]db.PincodeAmountRow, error) {
	return f.pincodeAmounts, f.pincodeAmountsErr
}

func (f *fakeStore) TopPincodesByUsers(ctx context.Context, limit int) ([]db.PincodeUserRow, error) {
	return f.pincodeUsers, f.pincodeUsersErr
}

func (f *fakeStore) TopPincodesByPremium(ctx context.Context, limit int) ([]db.PincodeInsuranceRow, error) {
	return f.pincodeInsurance, f.pincodeInsuranceErr
}

func (f *fakeStore) ReportTransactions(ctx context.Context, state string) ([]db.ReportTransactionRow, error) {
	return f.reportTransactions, f.reportTransactionsErr
}

func (f *fakeStore) ReportBrands(ctx context.Context, state string) ([]db.ReportBrandRow, error) {
	return f.reportBrands, f.reportBrandsErr
}

func (f *fakeStore) ReportDistricts(ctx context.Context, state string) ([]db.ReportDistrictRow, error) {
	return f.reportDistricts, f.reportDistrictsErr
}

func (f *fakeStore) ReportInsurance(ctx context.Context, state string) ([]db.ReportInsuranceRow, error) {
	return f.reportInsurance, f.reportInsuranceErr
}

func (f *fakeStore) ReportTopPincodes(ctx context.Context, state string) ([]db.ReportPincodeRow, error) {
	return f.reportPincodes, f.reportPincodesErr
}

func (f *fakeStore) CorrelationRows(ctx context.Context) ([]db.CorrelationRow, error) {
	return f.correlation, f.correlationErr
}

func (f *fakeStore) StateAmountWithUsers(ctx context.Context) ([]db.StateValueRow, error) {
	return f.stateValues, f.stateValuesErr
}

func newTestEngine(t *testing.T, store db.Store) *Engine {
	t.Helper()
	return New(store, zaptest.NewLogger(t), Config{AddressablePopulation: 1_000_000})
}

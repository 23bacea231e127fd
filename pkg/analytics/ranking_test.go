package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/insights/pkg/db"
)

func TestStateRankingShares(t *testing.T) {
	store := &fakeStore{
		stateTotals: []db.StateTotalsRow{
			{State: "alpha", TotalAmount: 600},
			{State: "bravo", TotalAmount: 300},
		},
		// Grand total covers states beyond the limited result set.
		grandTotals: &db.GrandTotals{TotalAmount: 1200, TotalCount: 100},
	}
	engine := newTestEngine(t, store)

	rows, err := engine.StateRanking(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].PercentageOfTotal)
	assert.Equal(t, 50.0, *rows[0].PercentageOfTotal)
	require.NotNil(t, rows[1].PercentageOfTotal)
	assert.Equal(t, 25.0, *rows[1].PercentageOfTotal)

	// Truncated shares must not sum to 100: the denominator is unfiltered.
	total := *rows[0].PercentageOfTotal + *rows[1].PercentageOfTotal
	assert.Less(t, total, 100.0)
}

func TestStateRankingZeroGrandTotal(t *testing.T) {
	store := &fakeStore{
		stateTotals: []db.StateTotalsRow{{State: "alpha", TotalAmount: 0}},
		grandTotals: &db.GrandTotals{},
	}
	engine := newTestEngine(t, store)

	rows, err := engine.StateRanking(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].PercentageOfTotal)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultRankingLimit, normalizeLimit(0))
	assert.Equal(t, DefaultRankingLimit, normalizeLimit(-3))
	assert.Equal(t, 25, normalizeLimit(25))
}

func TestBrandRankingMarketShare(t *testing.T) {
	store := &fakeStore{
		brands: []db.BrandStatsRow{
			{Brand: "acme", TotalUsers: 750},
			{Brand: "zenith", TotalUsers: 250},
		},
		deviceTotal: 1000,
	}
	engine := newTestEngine(t, store)

	rows, err := engine.BrandRanking(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].OverallMarketShare)
	assert.Equal(t, 75.0, *rows[0].OverallMarketShare)
	require.NotNil(t, rows[1].OverallMarketShare)
	assert.Equal(t, 25.0, *rows[1].OverallMarketShare)
	assert.Equal(t, 100.0, *rows[0].OverallMarketShare+*rows[1].OverallMarketShare)
}

func TestDistrictPerformanceShares(t *testing.T) {
	store := &fakeStore{
		districts: []db.DistrictStatsRow{
			{District: "north", TotalAmount: 80},
			{District: "south", TotalAmount: 20},
		},
		stateMapAmount: 100,
	}
	engine := newTestEngine(t, store)

	rows, err := engine.DistrictPerformance(context.Background(), "alpha", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].StatePercentage)
	assert.Equal(t, 80.0, *rows[0].StatePercentage)
}

func TestTopPincodesMetricSwitch(t *testing.T) {
	store := &fakeStore{
		pincodeAmounts:   []db.PincodeAmountRow{{State: "a", Pincode: "110001", TotalAmount: 10}},
		pincodeUsers:     []db.PincodeUserRow{{State: "a", Pincode: "110002", TotalUsers: 5}},
		pincodeInsurance: []db.PincodeInsuranceRow{{State: "a", Pincode: "110003", TotalPremium: 3}},
	}
	engine := newTestEngine(t, store)

	byDefault, err := engine.TopPincodes(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Equal(t, "transaction_amount", byDefault.Metric)
	assert.Len(t, byDefault.Transactions, 1)
	assert.Empty(t, byDefault.Users)

	byUsers, err := engine.TopPincodes(context.Background(), "registered_users", 10)
	require.NoError(t, err)
	assert.Len(t, byUsers.Users, 1)
	assert.Empty(t, byUsers.Transactions)

	byPremium, err := engine.TopPincodes(context.Background(), "insurance_premium", 10)
	require.NoError(t, err)
	assert.Len(t, byPremium.Insurance, 1)

	_, err = engine.TopPincodes(context.Background(), "nonsense", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metric")
}

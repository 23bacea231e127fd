package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/insights/pkg/db"
)

func TestTypeBreakdownSharesSumToHundred(t *testing.T) {
	store := &fakeStore{
		typeStats: []db.TypeStatsRow{
			{TransactionType: "p2p", TotalAmount: 700, TotalTransactions: 70},
			{TransactionType: "p2m", TotalAmount: 200, TotalTransactions: 20},
			{TransactionType: "bills", TotalAmount: 100, TotalTransactions: 10},
		},
		grandTotals: &db.GrandTotals{TotalAmount: 1000, TotalCount: 100},
	}
	engine := newTestEngine(t, store)

	rows, err := engine.TypeBreakdown(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	var amountShare, volumeShare float64
	for _, row := range rows {
		require.NotNil(t, row.PercentageOfTotal)
		require.NotNil(t, row.VolumePercentage)
		amountShare += *row.PercentageOfTotal
		volumeShare += *row.VolumePercentage
	}
	assert.InDelta(t, 100.0, amountShare, 1e-9)
	assert.InDelta(t, 100.0, volumeShare, 1e-9)
}

func TestInsuranceInsightsShares(t *testing.T) {
	store := &fakeStore{
		insuranceTypes: []db.InsuranceTypeStatsRow{
			{InsuranceType: "health", TotalPremium: 300, TotalPolicies: 30},
			{InsuranceType: "motor", TotalPremium: 100, TotalPolicies: 70},
		},
		insuranceTotals: &db.InsuranceGrandTotals{TotalPremium: 400, TotalPolicies: 100},
	}
	engine := newTestEngine(t, store)

	rows, err := engine.InsuranceInsights(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].PremiumPercentage)
	assert.Equal(t, 75.0, *rows[0].PremiumPercentage)
	require.NotNil(t, rows[0].PolicyPercentage)
	assert.Equal(t, 30.0, *rows[0].PolicyPercentage)

	// Premium and policy shares rank types differently; both are carried.
	require.NotNil(t, rows[1].PolicyPercentage)
	assert.Equal(t, 70.0, *rows[1].PolicyPercentage)
}

func TestTypeBreakdownEmptyTable(t *testing.T) {
	engine := newTestEngine(t, &fakeStore{})

	rows, err := engine.TypeBreakdown(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

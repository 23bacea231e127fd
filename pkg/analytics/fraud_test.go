package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/insights/pkg/db"
)

func TestFraudIndicatorsRiskLevels(t *testing.T) {
	tests := []struct {
		name string
		avg  float64
		max  float64
		want string
	}{
		{name: "max above 3x avg is high", avg: 100, max: 301, want: RiskHigh},
		{name: "max exactly 3x avg is medium", avg: 100, max: 300, want: RiskMedium},
		{name: "max above 2x avg is medium", avg: 100, max: 201, want: RiskMedium},
		{name: "max exactly 2x avg is low", avg: 100, max: 200, want: RiskLow},
		{name: "max equals avg is low", avg: 100, max: 100, want: RiskLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{
				stateTypeStats: []db.StateTypeStatsRow{
					{State: "s", TransactionType: "p2p", AvgAmount: tt.avg, MaxAmount: tt.max},
				},
			}
			engine := newTestEngine(t, store)

			rows, err := engine.FraudIndicators(context.Background())
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].RiskLevel)
		})
	}
}

func TestFraudIndicatorsDeviation(t *testing.T) {
	store := &fakeStore{
		stateTypeStats: []db.StateTypeStatsRow{
			{State: "a", TransactionType: "p2p", AvgAmount: 100, MaxAmount: 400},
			{State: "b", TransactionType: "p2m", AvgAmount: 100, MaxAmount: 150},
			{State: "c", TransactionType: "bills", AvgAmount: 0, MaxAmount: 0},
		},
	}
	engine := newTestEngine(t, store)

	rows, err := engine.FraudIndicators(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Ordered by deviation descending, zero-average group last with no figure.
	assert.Equal(t, "a", rows[0].State)
	require.NotNil(t, rows[0].DeviationPercentage)
	assert.Equal(t, 300.0, *rows[0].DeviationPercentage)

	assert.Equal(t, "b", rows[1].State)
	require.NotNil(t, rows[1].DeviationPercentage)
	assert.Equal(t, 50.0, *rows[1].DeviationPercentage)

	assert.Equal(t, "c", rows[2].State)
	assert.Nil(t, rows[2].DeviationPercentage)
	assert.Equal(t, RiskLow, rows[2].RiskLevel)
}

package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/insights/pkg/db"
)

func TestCompetitionRanks(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []int
	}{
		{name: "distinct", values: []float64{30, 10, 20}, want: []int{1, 3, 2}},
		{name: "two way tie skips next", values: []float64{30, 30, 20}, want: []int{1, 1, 3}},
		{name: "three way tie", values: []float64{5, 5, 5, 1}, want: []int{1, 1, 1, 4}},
		{name: "single", values: []float64{42}, want: []int{1}},
		{name: "empty", values: nil, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, competitionRanks(tt.values))
		})
	}
}

func TestCompetitiveAnalysis(t *testing.T) {
	store := &fakeStore{
		stateMetrics: []db.StateMetricsRow{
			{State: "alpha", TotalAmount: 300, TotalTransactions: 30, TransactionDiversity: 3, AvgTransactionSize: 10},
			{State: "bravo", TotalAmount: 200, TotalTransactions: 20, TransactionDiversity: 2, AvgTransactionSize: 10},
			{State: "charlie", TotalAmount: 100, TotalTransactions: 10, TransactionDiversity: 1, AvgTransactionSize: 10},
		},
	}
	engine := newTestEngine(t, store)

	rows, err := engine.CompetitiveAnalysis(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// alpha leads every metric except size, where all three tie at rank 1.
	assert.Equal(t, "alpha", rows[0].State)
	assert.Equal(t, 1, rows[0].AmountRank)
	assert.Equal(t, 1, rows[0].VolumeRank)
	assert.Equal(t, 1, rows[0].DiversityRank)
	assert.Equal(t, 1, rows[0].SizeRank)
	assert.Equal(t, 1.0, rows[0].OverallScore)

	assert.Equal(t, "bravo", rows[1].State)
	assert.Equal(t, 2, rows[1].AmountRank)
	assert.Equal(t, 1, rows[1].SizeRank)
	assert.Equal(t, 1.75, rows[1].OverallScore)

	assert.Equal(t, "charlie", rows[2].State)
	assert.Equal(t, 3, rows[2].AmountRank)
	assert.Equal(t, 2.5, rows[2].OverallScore)
}

func TestCompetitiveAnalysisScoreTieBreaksByState(t *testing.T) {
	store := &fakeStore{
		stateMetrics: []db.StateMetricsRow{
			{State: "zulu", TotalAmount: 100, TotalTransactions: 10, TransactionDiversity: 1, AvgTransactionSize: 10},
			{State: "alpha", TotalAmount: 100, TotalTransactions: 10, TransactionDiversity: 1, AvgTransactionSize: 10},
		},
	}
	engine := newTestEngine(t, store)

	rows, err := engine.CompetitiveAnalysis(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "alpha", rows[0].State)
	assert.Equal(t, "zulu", rows[1].State)
	assert.Equal(t, rows[0].OverallScore, rows[1].OverallScore)
}

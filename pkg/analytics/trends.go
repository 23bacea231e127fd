package analytics

import (
	"context"
	"fmt"

	"github.com/finpulse/insights/pkg/db"
)

// QuarterlyTrends returns every (year, quarter) bucket in ascending period
// order.
func (e *Engine) QuarterlyTrends(ctx context.Context) ([]db.TrendRow, error) {
	rows, err := e.store.QuarterlyTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("quarterly trends: %w", err)
	}
	return rows, nil
}

// QuarterlyTrendsForYear returns one year's quarter buckets in ascending
// order.
func (e *Engine) QuarterlyTrendsForYear(ctx context.Context, year int) ([]db.YearTrendRow, error) {
	rows, err := e.store.QuarterlyTrendsForYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("quarterly trends for year %d: %w", year, err)
	}
	return rows, nil
}

// SeasonalAnalysis returns per-quarter statistics across all years, exposing
// cyclic patterns independent of year.
func (e *Engine) SeasonalAnalysis(ctx context.Context) ([]db.SeasonalRow, error) {
	rows, err := e.store.SeasonalStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("seasonal analysis: %w", err)
	}
	return rows, nil
}

package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/finpulse/insights/pkg/db"
)

// Anomaly flags of the deviation classification.
const (
	FlagAnomaly = "Anomaly"
	FlagNormal  = "Normal"
)

// AnomalyRow is one (state, year, quarter) bucket compared against the
// state's long-run quarterly average. Deviation percentages are nil when the
// respective average is zero.
type AnomalyRow struct {
	db.StatePeriodRow
	AvgAmount              float64  `json:"avg_amount"`
	AmountDeviationPercent *float64 `json:"amount_deviation_percent"`
	CountDeviationPercent  *float64 `json:"count_deviation_percent"`
	AnomalyFlag            string   `json:"anomaly_flag"`
}

// AnomalyDetection flags quarters whose amount deviates from the state
// average by strictly more than 200% of that average. Results are ordered by
// amount deviation descending with nil deviations last.
func (e *Engine) AnomalyDetection(ctx context.Context) ([]AnomalyRow, error) {
	rows, err := e.store.StatePeriodTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("anomaly detection: %w", err)
	}

	type stateStats struct {
		amountSum float64
		countSum  float64
		periods   int
	}
	stats := make(map[string]*stateStats)
	for _, row := range rows {
		s, ok := stats[row.State]
		if !ok {
			s = &stateStats{}
			stats[row.State] = s
		}
		s.amountSum += row.Amount
		s.countSum += float64(row.Count)
		s.periods++
	}

	out := make([]AnomalyRow, 0, len(rows))
	for _, row := range rows {
		s := stats[row.State]
		avgAmount := s.amountSum / float64(s.periods)
		avgCount := s.countSum / float64(s.periods)

		r := AnomalyRow{
			StatePeriodRow: row,
			AvgAmount:      avgAmount,
			AnomalyFlag:    FlagNormal,
		}
		if avgAmount != 0 {
			dev := math.Abs(row.Amount-avgAmount) / avgAmount
			pct := dev * 100
			r.AmountDeviationPercent = &pct
			if dev > 2 {
				r.AnomalyFlag = FlagAnomaly
			}
		}
		if avgCount != 0 {
			pct := math.Abs(float64(row.Count)-avgCount) / avgCount * 100
			r.CountDeviationPercent = &pct
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].AmountDeviationPercent, out[j].AmountDeviationPercent
		switch {
		case di != nil && dj != nil && *di != *dj:
			return *di > *dj
		case di != nil && dj == nil:
			return true
		case di == nil && dj != nil:
			return false
		}
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Quarter < out[j].Quarter
	})

	return out, nil
}

package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/finpulse/insights/pkg/db"
)

// Risk levels of the fraud indicator classification.
const (
	RiskHigh   = "High Risk"
	RiskMedium = "Medium Risk"
	RiskLow    = "Low Risk"
)

// FraudIndicator is one (state, transaction type) group classified by how far
// its maximum amount sits above its average. The deviation percentage is nil
// when the average is zero.
type FraudIndicator struct {
	db.StateTypeStatsRow
	RiskLevel           string   `json:"risk_level"`
	DeviationPercentage *float64 `json:"deviation_percentage"`
}

// FraudIndicators classifies every (state, type) group: a maximum above three
// times the average is high risk, above twice is medium, the rest low.
// Results are ordered by deviation descending with nil deviations last.
func (e *Engine) FraudIndicators(ctx context.Context) ([]FraudIndicator, error) {
	rows, err := e.store.StateTypeStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("fraud indicators: %w", err)
	}

	out := make([]FraudIndicator, 0, len(rows))
	for _, row := range rows {
		ind := FraudIndicator{StateTypeStatsRow: row, RiskLevel: RiskLow}
		switch {
		case row.MaxAmount > row.AvgAmount*3:
			ind.RiskLevel = RiskHigh
		case row.MaxAmount > row.AvgAmount*2:
			ind.RiskLevel = RiskMedium
		}
		if row.AvgAmount != 0 {
			dev := round2((row.MaxAmount - row.AvgAmount) / row.AvgAmount * 100)
			ind.DeviationPercentage = &dev
		}
		out = append(out, ind)
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DeviationPercentage, out[j].DeviationPercentage
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
		return out[i].TransactionType < out[j].TransactionType
	})

	return out, nil
}

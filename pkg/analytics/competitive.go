package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/finpulse/insights/pkg/db"
)

// CompetitiveRow is one state's metrics plus its competition ranks. Equal
// metric values share a rank and the next rank skips by the tie size. The
// overall score is the mean of the four ranks; lower is stronger.
type CompetitiveRow struct {
	db.StateMetricsRow
	AmountRank    int     `json:"amount_rank"`
	VolumeRank    int     `json:"volume_rank"`
	DiversityRank int     `json:"diversity_rank"`
	SizeRank      int     `json:"size_rank"`
	OverallScore  float64 `json:"overall_score"`
}

// CompetitiveAnalysis ranks every state on amount, volume, type diversity and
// average transaction size, ordered by overall score ascending.
func (e *Engine) CompetitiveAnalysis(ctx context.Context) ([]CompetitiveRow, error) {
	rows, err := e.store.StateCompetitiveMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("competitive analysis: %w", err)
	}

	amounts := make([]float64, len(rows))
	volumes := make([]float64, len(rows))
	diversities := make([]float64, len(rows))
	sizes := make([]float64, len(rows))
	for i, row := range rows {
		amounts[i] = row.TotalAmount
		volumes[i] = float64(row.TotalTransactions)
		diversities[i] = float64(row.TransactionDiversity)
		sizes[i] = row.AvgTransactionSize
	}

	amountRanks := competitionRanks(amounts)
	volumeRanks := competitionRanks(volumes)
	diversityRanks := competitionRanks(diversities)
	sizeRanks := competitionRanks(sizes)

	out := make([]CompetitiveRow, 0, len(rows))
	for i, row := range rows {
		score := float64(amountRanks[i]+volumeRanks[i]+diversityRanks[i]+sizeRanks[i]) / 4
		out = append(out, CompetitiveRow{
			StateMetricsRow: row,
			AmountRank:      amountRanks[i],
			VolumeRank:      volumeRanks[i],
			DiversityRank:   diversityRanks[i],
			SizeRank:        sizeRanks[i],
			OverallScore:    round2(score),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OverallScore != out[j].OverallScore {
			return out[i].OverallScore < out[j].OverallScore
		}
		return out[i].State < out[j].State
	})

	return out, nil
}

package analytics

import (
	"context"
	"fmt"
)

// SeriesPoint is one (year, quarter) observation of a state's series with a
// monotonically increasing period index, period = (year-1)*4 + quarter.
type SeriesPoint struct {
	Year       uint16  `json:"year"`
	Quarter    uint8   `json:"quarter"`
	TimePeriod int     `json:"time_period"`
	Amount     float64 `json:"amount"`
	Count      uint64  `json:"count"`
}

// TimeSeriesPrep returns one state's quarterly series in period order, shaped
// for downstream forecasting.
func (e *Engine) TimeSeriesPrep(ctx context.Context, state string) ([]SeriesPoint, error) {
	rows, err := e.store.StateSeries(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("time series prep: %w", err)
	}

	out := make([]SeriesPoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, SeriesPoint{
			Year:       row.Year,
			Quarter:    row.Quarter,
			TimePeriod: (int(row.Year)-1)*4 + int(row.Quarter),
			Amount:     row.Amount,
			Count:      row.Count,
		})
	}
	return out, nil
}

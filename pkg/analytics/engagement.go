package analytics

import (
	"context"
	"fmt"

	"github.com/finpulse/insights/pkg/db"
)

// StateEngagement is one state's user activity plus its national user share
// and opens-per-user ratio. The ratio divides the summed opens by the summed
// users and is nil when the state has no registered users.
type StateEngagement struct {
	db.StateEngagementRow
	AvgOpensPerUser        *float64 `json:"avg_opens_per_user"`
	NationalUserPercentage *float64 `json:"national_user_percentage"`
}

// DistrictEngagement is one district's user activity within a state.
type DistrictEngagement struct {
	db.DistrictEngagementRow
	AvgOpensPerUser        *float64 `json:"avg_opens_per_user"`
	DistrictUserPercentage *float64 `json:"district_user_percentage"`
}

// EngagementByState returns per-state user engagement ordered by registered
// users descending.
func (e *Engine) EngagementByState(ctx context.Context) ([]StateEngagement, error) {
	rows, err := e.store.StateEngagement(ctx)
	if err != nil {
		return nil, fmt.Errorf("engagement by state: %w", err)
	}
	national, err := e.store.NationalUserTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("engagement by state: %w", err)
	}

	out := make([]StateEngagement, 0, len(rows))
	for _, row := range rows {
		out = append(out, StateEngagement{
			StateEngagementRow:     row,
			AvgOpensPerUser:        ratio(float64(row.TotalAppOpens), float64(row.TotalRegisteredUsers)),
			NationalUserPercentage: share(float64(row.TotalRegisteredUsers), float64(national)),
		})
	}
	return out, nil
}

// EngagementByDistrict returns one state's per-district engagement ordered by
// registered users descending.
func (e *Engine) EngagementByDistrict(ctx context.Context, state string) ([]DistrictEngagement, error) {
	rows, err := e.store.DistrictEngagement(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("engagement by district: %w", err)
	}
	stateTotal, err := e.store.StateMapUserTotal(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("engagement by district: %w", err)
	}

	out := make([]DistrictEngagement, 0, len(rows))
	for _, row := range rows {
		out = append(out, DistrictEngagement{
			DistrictEngagementRow:  row,
			AvgOpensPerUser:        ratio(float64(row.TotalAppOpens), float64(row.TotalRegisteredUsers)),
			DistrictUserPercentage: share(float64(row.TotalRegisteredUsers), float64(stateTotal)),
		})
	}
	return out, nil
}

package analytics

import (
	"context"
	"fmt"
	"sort"
)

// CohortRow groups states by the period their user activity first appeared.
// Periods are absolute quarter indexes (year*4 + quarter); the period number
// is the offset from the cohort's first period.
type CohortRow struct {
	FirstPeriod  int    `json:"first_period"`
	Period       int    `json:"period"`
	PeriodNumber int    `json:"period_number"`
	CohortSize   int    `json:"cohort_size"`
	TotalUsers   uint64 `json:"total_users"`
	TotalOpens   uint64 `json:"total_opens"`
}

// CohortAnalysis buckets per-state user activity by (first active period,
// period), ordered by first period then period.
func (e *Engine) CohortAnalysis(ctx context.Context) ([]CohortRow, error) {
	rows, err := e.store.StatePeriodUserActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("cohort analysis: %w", err)
	}

	firstPeriod := make(map[string]int)
	for _, row := range rows {
		period := int(row.Year)*4 + int(row.Quarter)
		if first, ok := firstPeriod[row.State]; !ok || period < first {
			firstPeriod[row.State] = period
		}
	}

	type cohortKey struct {
		first  int
		period int
	}
	buckets := make(map[cohortKey]*CohortRow)
	members := make(map[cohortKey]map[string]struct{})
	for _, row := range rows {
		key := cohortKey{
			first:  firstPeriod[row.State],
			period: int(row.Year)*4 + int(row.Quarter),
		}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &CohortRow{
				FirstPeriod:  key.first,
				Period:       key.period,
				PeriodNumber: key.period - key.first,
			}
			buckets[key] = bucket
			members[key] = make(map[string]struct{})
		}
		bucket.TotalUsers += row.Users
		bucket.TotalOpens += row.Opens
		members[key][row.State] = struct{}{}
	}

	out := make([]CohortRow, 0, len(buckets))
	for key, bucket := range buckets {
		bucket.CohortSize = len(members[key])
		out = append(out, *bucket)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FirstPeriod != out[j].FirstPeriod {
			return out[i].FirstPeriod < out[j].FirstPeriod
		}
		return out[i].Period < out[j].Period
	})

	return out, nil
}

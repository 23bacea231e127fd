package analytics

import (
	"context"
	"errors"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

// KPIReport carries three independently computed business metrics. A
// sub-metric whose source is empty or fails leaves its fields nil; the
// other sub-metrics are unaffected.
type KPIReport struct {
	AvgDailyTransactions     *float64 `json:"avg_daily_transactions"`
	AvgDailyAmount           *float64 `json:"avg_daily_amount"`
	TotalStates              *uint64  `json:"total_states"`
	AvgUserPenetration       *float64 `json:"avg_user_penetration"`
	AvgCustomerLifetimeValue *float64 `json:"avg_customer_lifetime_value"`
}

// AdvancedKPIs computes transaction velocity, market penetration and a
// customer lifetime-value proxy in parallel.
func (e *Engine) AdvancedKPIs(ctx context.Context) (*KPIReport, error) {
	report := &KPIReport{}

	group := e.pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	group.Submit(func() {
		if groupCtx.Err() != nil {
			return
		}
		e.velocityKPI(groupCtx, report)
	})
	group.Submit(func() {
		if groupCtx.Err() != nil {
			return
		}
		e.penetrationKPI(groupCtx, report)
	})
	group.Submit(func() {
		if groupCtx.Err() != nil {
			return
		}
		e.lifetimeValueKPI(groupCtx, report)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		e.logger.Warn("kpi fan-out error", zap.Error(err))
	}

	return report, nil
}

// velocityKPI averages per-day transaction volume over every (state, year,
// quarter) bucket, normalizing each bucket by the length of its quarter
// (90/91/92/92 days).
func (e *Engine) velocityKPI(ctx context.Context, report *KPIReport) {
	rows, err := e.store.PeriodVolumes(ctx)
	if err != nil {
		e.logger.Warn("transaction velocity kpi failed", zap.Error(err))
		return
	}
	if len(rows) == 0 {
		return
	}

	var dailyCount, dailyAmount float64
	for _, row := range rows {
		days := daysInQuarter(row.Quarter)
		dailyCount += float64(row.TotalCount) / days
		dailyAmount += row.TotalAmount / days
	}

	n := float64(len(rows))
	avgCount := dailyCount / n
	avgAmount := dailyAmount / n
	report.AvgDailyTransactions = &avgCount
	report.AvgDailyAmount = &avgAmount
}

// penetrationKPI averages each state's registered users as a percentage of
// the configured addressable population.
func (e *Engine) penetrationKPI(ctx context.Context, report *KPIReport) {
	rows, err := e.store.StateUserTotals(ctx)
	if err != nil {
		e.logger.Warn("market penetration kpi failed", zap.Error(err))
		return
	}
	if len(rows) == 0 {
		return
	}

	population := float64(e.cfg.AddressablePopulation)
	var total float64
	for _, row := range rows {
		total += float64(row.RegisteredUsers) * 100 / population
	}

	states := uint64(len(rows))
	avg := total / float64(len(rows))
	report.TotalStates = &states
	report.AvgUserPenetration = &avg
}

// lifetimeValueKPI averages transaction amount per registered user across
// states. States with zero users contribute nothing to the average.
func (e *Engine) lifetimeValueKPI(ctx context.Context, report *KPIReport) {
	rows, err := e.store.StateAmountWithUsers(ctx)
	if err != nil {
		e.logger.Warn("lifetime value kpi failed", zap.Error(err))
		return
	}

	var total float64
	var n int
	for _, row := range rows {
		if row.RegisteredUsers == 0 {
			continue
		}
		total += row.TotalAmount / float64(row.RegisteredUsers)
		n++
	}
	if n == 0 {
		return
	}

	avg := total / float64(n)
	report.AvgCustomerLifetimeValue = &avg
}

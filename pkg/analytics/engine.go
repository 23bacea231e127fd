// Package analytics derives metric tables from the payment fact store.
// Grouping and summation live in the store's SQL; everything positional or
// conditional (lag deltas, cumulative shares, competition ranks, risk
// buckets) is computed here so it can be tested without a live database.
package analytics

import (
	"math"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/finpulse/insights/pkg/db"
	"github.com/finpulse/insights/pkg/utils"
)

// Config carries the engine's tunables.
type Config struct {
	// AddressablePopulation is the assumed reachable user base per state,
	// the denominator of the penetration KPI.
	AddressablePopulation uint64
}

// ConfigFromEnv reads the engine config from the environment.
func ConfigFromEnv() Config {
	return Config{
		AddressablePopulation: uint64(utils.EnvInt("ADDRESSABLE_POPULATION", 1_000_000)),
	}
}

// Engine computes derived metric tables. It holds no state between calls;
// results are computed, returned and discarded.
type Engine struct {
	store  db.Store
	logger *zap.Logger
	cfg    Config

	// pool bounds the fan-out of independent sub-queries (state reports,
	// KPI sub-metrics). The driver's connection pool is concurrency-safe.
	pool pond.Pool
}

// New builds an engine over the given store.
func New(store db.Store, logger *zap.Logger, cfg Config) *Engine {
	if cfg.AddressablePopulation == 0 {
		cfg.AddressablePopulation = 1_000_000
	}
	return &Engine{
		store:  store,
		logger: logger,
		cfg:    cfg,
		pool:   pond.NewPool(utils.EnvInt("ANALYTICS_WORKERS", 10)),
	}
}

// round2 rounds half away from zero to two decimals, the rounding every
// derived percentage uses.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// share returns part as a percentage of whole, rounded to two decimals, or
// nil when the denominator is not positive.
func share(part, whole float64) *float64 {
	if whole <= 0 {
		return nil
	}
	pct := round2(part * 100 / whole)
	return &pct
}

// growth returns the percentage change from prev to curr, rounded to two
// decimals, or nil when there is no usable previous value.
func growth(curr, prev float64) *float64 {
	if prev <= 0 {
		return nil
	}
	pct := round2((curr - prev) * 100 / prev)
	return &pct
}

// ratio returns num/den rounded to two decimals, or nil when den is zero.
func ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	r := round2(num / den)
	return &r
}

// daysInQuarter maps a calendar quarter to its day count (non-leap).
func daysInQuarter(q uint8) float64 {
	switch q {
	case 1:
		return 90
	case 2:
		return 91
	default:
		return 92
	}
}

// competitionRanks assigns competition ranking over values, highest first:
// equal values share a rank and the following rank skips by the tie size.
func competitionRanks(values []float64) []int {
	ranks := make([]int, len(values))
	for i, v := range values {
		rank := 1
		for _, other := range values {
			if other > v {
				rank++
			}
		}
		ranks[i] = rank
	}
	return ranks
}

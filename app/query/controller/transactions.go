package controller

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HandleOverview returns the single-row transaction summary.
// Endpoint: GET /api/overview
func (c *Controller) HandleOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := c.App.Engine.Overview(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": stats,
	})
}

// HandleStateRanking returns the top states by transaction amount.
// Endpoint: GET /api/states?limit=<n>
func (c *Controller) HandleStateRanking(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := c.App.Engine.StateRanking(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  rows,
		"limit": limit,
	})
}

// HandleTrends returns quarterly trends, optionally narrowed to one year.
// Endpoint: GET /api/trends?year=<y>
func (c *Controller) HandleTrends(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if year > 0 {
		rows, trendErr := c.App.Engine.QuarterlyTrendsForYear(r.Context(), year)
		if trendErr != nil {
			writeError(w, http.StatusInternalServerError, "query failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data": rows,
			"year": year,
		})
		return
	}

	rows, err := c.App.Engine.QuarterlyTrends(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleTypeBreakdown returns per-type statistics with amount and volume shares.
// Endpoint: GET /api/types
func (c *Controller) HandleTypeBreakdown(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.TypeBreakdown(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleGrowth returns year-over-year growth figures.
// Endpoint: GET /api/growth
func (c *Controller) HandleGrowth(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.GrowthAnalysis(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleSeasonal returns quarter statistics across all years.
// Endpoint: GET /api/seasonal
func (c *Controller) HandleSeasonal(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.SeasonalAnalysis(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleConcentration returns the Pareto market-concentration breakdown.
// Endpoint: GET /api/concentration
func (c *Controller) HandleConcentration(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.MarketConcentration(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleAnomalies returns deviation-flagged state quarters.
// Endpoint: GET /api/anomalies
func (c *Controller) HandleAnomalies(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.AnomalyDetection(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleTimeSeries returns one state's forecast-ready quarterly series.
// Endpoint: GET /api/states/{state}/timeseries
func (c *Controller) HandleTimeSeries(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["state"]
	if state == "" {
		writeError(w, http.StatusBadRequest, "missing state")
		return
	}

	points, err := c.App.Engine.TimeSeriesPrep(r.Context(), state)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  points,
		"state": state,
	})
}

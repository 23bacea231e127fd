package controller

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HandleStateReport returns the five-section deep dive on one state.
// Endpoint: GET /api/states/{state}/report
func (c *Controller) HandleStateReport(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["state"]
	if state == "" {
		writeError(w, http.StatusBadRequest, "missing state")
		return
	}

	report, err := c.App.Engine.StateReport(r.Context(), state)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": report,
	})
}

// HandleCorrelation returns the cross-metric panel keyed (state, year, quarter).
// Endpoint: GET /api/correlation
func (c *Controller) HandleCorrelation(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.CorrelationDataset(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleKPIs returns transaction velocity, penetration and lifetime-value
// metrics.
// Endpoint: GET /api/kpis
func (c *Controller) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	report, err := c.App.Engine.AdvancedKPIs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": report,
	})
}

// HandleCompetitive returns per-state competition ranks and overall scores.
// Endpoint: GET /api/competitive
func (c *Controller) HandleCompetitive(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.CompetitiveAnalysis(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleFraudIndicators returns risk-classified (state, type) groups.
// Endpoint: GET /api/fraud
func (c *Controller) HandleFraudIndicators(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.FraudIndicators(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

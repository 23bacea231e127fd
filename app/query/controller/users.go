package controller

import (
	"net/http"
)

// HandleBrandRanking returns the top device brands by user count.
// Endpoint: GET /api/brands?limit=<n>
func (c *Controller) HandleBrandRanking(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := c.App.Engine.BrandRanking(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  rows,
		"limit": limit,
	})
}

// HandleEngagement returns user engagement per state, or per district when a
// state is given.
// Endpoint: GET /api/engagement?state=<name>
func (c *Controller) HandleEngagement(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")

	if state != "" {
		rows, err := c.App.Engine.EngagementByDistrict(r.Context(), state)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "query failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data":  rows,
			"state": state,
		})
		return
	}

	rows, err := c.App.Engine.EngagementByState(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleCohorts returns state cohorts grouped by first active period.
// Endpoint: GET /api/cohorts
func (c *Controller) HandleCohorts(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.CohortAnalysis(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

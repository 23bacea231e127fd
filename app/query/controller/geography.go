package controller

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HandleDistrictPerformance returns one state's top districts by amount.
// Endpoint: GET /api/states/{state}/districts?limit=<n>
func (c *Controller) HandleDistrictPerformance(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["state"]
	if state == "" {
		writeError(w, http.StatusBadRequest, "missing state")
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := c.App.Engine.DistrictPerformance(r.Context(), state, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  rows,
		"state": state,
		"limit": limit,
	})
}

// HandleTopPincodes returns the pincode leaderboard for a metric.
// Endpoint: GET /api/pincodes?metric=<m>&limit=<n>
func (c *Controller) HandleTopPincodes(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	metric := r.URL.Query().Get("metric")
	switch metric {
	case "", "transaction_amount", "registered_users", "insurance_premium":
	default:
		writeError(w, http.StatusBadRequest, "invalid metric")
		return
	}

	result, err := c.App.Engine.TopPincodes(r.Context(), metric, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  result,
		"limit": limit,
	})
}

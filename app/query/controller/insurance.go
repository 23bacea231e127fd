package controller

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HandleInsuranceInsights returns per-type insurance adoption statistics.
// Endpoint: GET /api/insurance
func (c *Controller) HandleInsuranceInsights(w http.ResponseWriter, r *http.Request) {
	rows, err := c.App.Engine.InsuranceInsights(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": rows,
	})
}

// HandleDistrictInsurance returns one state's per-district insurance totals.
// Endpoint: GET /api/states/{state}/insurance
func (c *Controller) HandleDistrictInsurance(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["state"]
	if state == "" {
		writeError(w, http.StatusBadRequest, "missing state")
		return
	}

	rows, err := c.App.Engine.InsuranceByDistrict(r.Context(), state)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  rows,
		"state": state,
	})
}

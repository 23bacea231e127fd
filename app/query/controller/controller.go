package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/finpulse/insights/app/query/types"
)

type Controller struct {
	App *types.App
}

// NewController returns a new controller.
func NewController(app *types.App) *Controller {
	return &Controller{
		App: app,
	}
}

// NewRouter returns a new router with all the routes defined in this file.
func (c *Controller) NewRouter() (*mux.Router, error) {
	r := mux.NewRouter()

	r.Handle("/health", http.HandlerFunc(c.HandleHealth)).Methods("GET")

	r.HandleFunc("/api/overview", c.HandleOverview).Methods("GET")
	r.HandleFunc("/api/states", c.HandleStateRanking).Methods("GET")
	r.HandleFunc("/api/trends", c.HandleTrends).Methods("GET")
	r.HandleFunc("/api/types", c.HandleTypeBreakdown).Methods("GET")
	r.HandleFunc("/api/growth", c.HandleGrowth).Methods("GET")
	r.HandleFunc("/api/seasonal", c.HandleSeasonal).Methods("GET")
	r.HandleFunc("/api/concentration", c.HandleConcentration).Methods("GET")
	r.HandleFunc("/api/anomalies", c.HandleAnomalies).Methods("GET")

	r.HandleFunc("/api/brands", c.HandleBrandRanking).Methods("GET")
	r.HandleFunc("/api/engagement", c.HandleEngagement).Methods("GET")
	r.HandleFunc("/api/cohorts", c.HandleCohorts).Methods("GET")

	r.HandleFunc("/api/insurance", c.HandleInsuranceInsights).Methods("GET")
	r.HandleFunc("/api/states/{state}/insurance", c.HandleDistrictInsurance).Methods("GET")

	r.HandleFunc("/api/pincodes", c.HandleTopPincodes).Methods("GET")
	r.HandleFunc("/api/states/{state}/districts", c.HandleDistrictPerformance).Methods("GET")
	r.HandleFunc("/api/states/{state}/report", c.HandleStateReport).Methods("GET")
	r.HandleFunc("/api/states/{state}/timeseries", c.HandleTimeSeries).Methods("GET")

	r.HandleFunc("/api/correlation", c.HandleCorrelation).Methods("GET")
	r.HandleFunc("/api/kpis", c.HandleKPIs).Methods("GET")
	r.HandleFunc("/api/competitive", c.HandleCompetitive).Methods("GET")
	r.HandleFunc("/api/fraud", c.HandleFraudIndicators).Methods("GET")

	return r, nil
}

// WithCORS is a middleware that adds CORS headers to the response.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

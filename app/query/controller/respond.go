package controller

import (
	"net/http"
	"strconv"

	"github.com/go-jose/go-jose/v4/json"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

var (
	errInvalidLimit = &parseError{msg: "invalid limit"}
	errInvalidYear  = &parseError{msg: "invalid year"}
)

type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

// parseLimit reads the limit query parameter, defaulting to 10 and capping
// at 100.
func parseLimit(r *http.Request) (int, error) {
	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, errInvalidLimit
		}
		if n > maxLimit {
			n = maxLimit
		}
		limit = n
	}
	return limit, nil
}

// parseYear reads the optional year query parameter; zero means unset.
func parseYear(r *http.Request) (int, error) {
	v := r.URL.Query().Get("year")
	if v == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(v)
	if err != nil || year <= 0 {
		return 0, errInvalidYear
	}
	return year, nil
}

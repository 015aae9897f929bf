package controller

import (
	"net/http"

	"github.com/microcosm-cc/stash/models"
)

// StatsController is a web controller
type StatsController struct{}

// StatsHandler is a web handler
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	ctl := StatsController{}

	switch r.Method {
	case "OPTIONS":
		respondWithOptions(w, []string{"OPTIONS", "GET"})
		return
	case "GET":
		ctl.Read(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}

// Read handles GET. Returns the snapshot written by the most recent
// stats cron run; 404 until the first run has happened.
func (ctl *StatsController) Read(w http.ResponseWriter, r *http.Request) {
	snapshot, found := models.LastStashStats(r.Context())
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	respondWithData(w, http.StatusOK, snapshot)
}

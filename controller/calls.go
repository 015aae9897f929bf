package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	e "github.com/microcosm-cc/stash/errors"
	"github.com/microcosm-cc/stash/models"
)

// CallsController is a web controller
type CallsController struct{}

// CallsHandler is a web handler
func CallsHandler(w http.ResponseWriter, r *http.Request) {
	ctl := CallsController{}

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

// Read handles GET. Reports how often the method has been called and
// replays the recorded calls in order.
func (ctl *CallsController) Read(w http.ResponseWriter, r *http.Request) {
	stash := models.DefaultStash()
	if stash == nil {
		respondWithErrorMessage(
			w,
			http.StatusInternalServerError,
			e.CacheUnavailable,
			"cache is not initialised",
		)
		return
	}

	// The route constrains method to the instrumented set.
	method := mux.Vars(r)["method"]

	count, err := stash.CallCount(r.Context(), method)
	if err != nil {
		respondWithErrorMessage(
			w,
			http.StatusInternalServerError,
			e.CacheUnavailable,
			err.Error(),
		)
		return
	}

	calls, err := stash.Replay(r.Context(), method)
	if err != nil {
		respondWithErrorMessage(
			w,
			http.StatusInternalServerError,
			e.CacheUnavailable,
			err.Error(),
		)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{
		"method": method,
		"count":  count,
		"calls":  calls,
	})
}

package controller

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	e "github.com/microcosm-cc/stash/errors"
	"github.com/microcosm-cc/stash/models"
)

// StashController is a web controller
type StashController struct{}

// StashHandler is a web handler
func StashHandler(w http.ResponseWriter, r *http.Request) {
	ctl := StashController{}

	switch r.Method {
	case "OPTIONS":
		respondWithOptions(w, []string{"OPTIONS", "POST"})
		return
	case "POST":
		ctl.Create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}

// StashItemHandler is a web handler
func StashItemHandler(w http.ResponseWriter, r *http.Request) {
	ctl := StashController{}

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

// Create handles POST. The body is the opaque value; the response is
// the key it was stored under.
func (ctl *StashController) Create(w http.ResponseWriter, r *http.Request) {
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

	value, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithErrorMessage(
			w,
			http.StatusBadRequest,
			e.InvalidContent,
			err.Error(),
		)
		return
	}

	key, err := stash.Store(r.Context(), value)
	if err != nil {
		respondWithErrorMessage(
			w,
			http.StatusInternalServerError,
			e.CacheUnavailable,
			err.Error(),
		)
		return
	}

	respondWithData(w, http.StatusCreated, map[string]string{"key": key})
}

// Read handles GET. The stored value is returned byte-for-byte.
func (ctl *StashController) Read(w http.ResponseWriter, r *http.Request) {
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

	key := mux.Vars(r)["key"]

	value, found, err := stash.Retrieve(r.Context(), key)
	if err != nil {
		respondWithErrorMessage(
			w,
			http.StatusInternalServerError,
			e.CacheUnavailable,
			err.Error(),
		)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(value)
}

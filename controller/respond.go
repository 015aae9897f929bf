package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang/glog"

	e "github.com/microcosm-cc/stash/errors"
)

// respondWithData writes v as a JSON response with the given status.
func respondWithData(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		glog.Errorf("json.Marshal(v) %+v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	w.Write(body)
}

// respondWithErrorMessage writes a detailed error as JSON.
func respondWithErrorMessage(w http.ResponseWriter, status int, code e.ErrCode, message string) {
	respondWithData(w, status, e.StashError{
		ErrorCode:    code,
		ErrorMessage: message,
	})
}

// respondWithOptions advertises the methods a resource accepts.
func respondWithOptions(w http.ResponseWriter, options []string) {
	w.Header().Set("Allow", strings.Join(options, ","))
	w.WriteHeader(http.StatusOK)
}

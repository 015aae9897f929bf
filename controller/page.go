package controller

import (
	"net/http"
	"strconv"
	"strings"

	e "github.com/microcosm-cc/stash/errors"
	"github.com/microcosm-cc/stash/models"
)

// PageController is a web controller
type PageController struct{}

// PageHandler is a web handler
func PageHandler(w http.ResponseWriter, r *http.Request) {
	ctl := PageController{}

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

// Read handles GET.
//
// Call this with the page URL as a GET param:
//
//	/api/v1/page?url=http%3A%2F%2Fexample.com%2F
//
// The URL in the GET param should be URL encoded to ensure that if it
// has any querystring, nothing goes awry.
func (ctl *PageController) Read(w http.ResponseWriter, r *http.Request) {
	pages := models.DefaultPageCache()
	if pages == nil {
		respondWithErrorMessage(
			w,
			http.StatusInternalServerError,
			e.CacheUnavailable,
			"cache is not initialised",
		)
		return
	}

	pageURL := strings.Trim(r.URL.Query().Get("url"), " ")
	if pageURL == "" {
		respondWithErrorMessage(
			w,
			http.StatusBadRequest,
			e.MissingParameter,
			"url needed",
		)
		return
	}

	body, err := pages.GetPage(r.Context(), pageURL)
	if err != nil {
		respondWithErrorMessage(
			w,
			http.StatusBadGateway,
			e.UpstreamFailed,
			err.Error(),
		)
		return
	}

	count, err := pages.AccessCount(r.Context(), pageURL)
	if err == nil {
		w.Header().Set("X-Access-Count", strconv.FormatInt(count, 10))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

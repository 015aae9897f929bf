package server

import (
	"fmt"
	"net/http"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/robfig/cron"
)

// StartServer owns the http process and cron jobs
func StartServer(port int64) {

	// Set up the cron jobs
	c := cron.New()
	for schedule, job := range jobs {
		c.AddFunc(schedule, job)
	}
	c.Start()

	// Start the HTTP server
	glog.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), Router()))
}

// Router registers all handlers and returns the root router.
func Router() *mux.Router {
	r := mux.NewRouter()

	for url, handler := range handlers {
		r.HandleFunc(url, handler)
	}

	return r
}

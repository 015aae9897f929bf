package server

import (
	"net/http"

	"github.com/microcosm-cc/stash/controller"
)

var (
	handlers = map[string]func(http.ResponseWriter, *http.Request){
		"/api/v1/stash":                         controller.StashHandler,
		"/api/v1/stash/{key:[0-9a-fA-F-]+}":     controller.StashItemHandler,
		"/api/v1/calls/{method:store|retrieve}": controller.CallsHandler,

		"/api/v1/page": controller.PageHandler,

		"/api/v1/stats":   controller.StatsHandler,
		"/api/v1/version": controller.VersionHandler,
	}
)

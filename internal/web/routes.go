package web

import (
	"net/http"

	"github.com/louisbranch/contactbook/internal/web/httpx"
)

// Route paths served by the web server.
const (
	routeRoot     = "/"
	routeSubmit   = "/submit"
	routeContacts = "/contacts"
	routeHealth   = "/healthz"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" /{$}", h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routeSubmit, h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routeSubmit, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routeContacts, h.handleContacts)
	mux.HandleFunc(http.MethodGet+" "+routeHealth, h.handleHealth)
}

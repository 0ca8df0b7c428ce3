package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the registration and auth endpoints.
func NewRouter(regHandler *RegistrationHandler, authHandler *AuthHandler, authMw *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	r.HandleFunc("/registration", regHandler.Submit).Methods(http.MethodPut)
	r.HandleFunc("/registration", authMw.RequireAdmin(regHandler.List)).Methods(http.MethodGet)
	r.HandleFunc("/registration/{id:[a-z0-9-]+}/approve", authMw.RequireAdmin(regHandler.Approve)).Methods(http.MethodPost)
	r.HandleFunc("/registration/{id:[a-z0-9-]+}/reject", authMw.RequireAdmin(regHandler.Reject)).Methods(http.MethodPost)
	r.HandleFunc("/registration/{id:[a-z0-9-]+}", authMw.RequireAdmin(regHandler.Delete)).Methods(http.MethodDelete)

	return r
}

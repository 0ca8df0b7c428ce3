package http

import (
	"errors"
	"net/http"

	"docshelf-backend/internal/logger"
	"docshelf-backend/internal/service"

	validation "github.com/go-ozzo/ozzo-validation"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginPayload struct {
	Username string
	Password string
}

func (p loginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required),
		validation.Field(&p.Password, validation.Required),
	)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload := loginPayload{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", err.Error())
		return
	}

	token, err := h.authSvc.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusForbidden, "ForbiddenError", "invalid username or password")
			return
		}
		logger.Error("Login failed", "username", payload.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

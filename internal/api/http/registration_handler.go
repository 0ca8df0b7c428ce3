package http

import (
	"errors"
	"net/http"

	"docshelf-backend/internal/logger"
	"docshelf-backend/internal/service"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gorilla/mux"
)

// RegistrationHandler exposes the registration request workflow over HTTP.
type RegistrationHandler struct {
	regSvc service.RegistrationService
}

func NewRegistrationHandler(regSvc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc}
}

type submitPayload struct {
	Username string
	Email    string
}

func (p submitPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&p.Email, validation.Required, validation.Length(3, 50), is.Email),
	)
}

type rejectPayload struct {
	Reason string
}

func (p rejectPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Reason, validation.Required, validation.Length(1, 500)),
	)
}

// Submit handles PUT /registration. Open to unauthenticated callers; the new
// request id is deliberately not leaked in the response.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	payload := submitPayload{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", err.Error())
		return
	}

	if _, err := h.regSvc.CreateRequest(r.Context(), payload.Username, payload.Email); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "AlreadyExistError", err.Error())
			return
		}
		logger.Error("Failed to create registration request", "username", payload.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "failed to create registration request")
		return
	}

	writeOK(w)
}

type registrationRequestResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	CreateDate int64  `json:"create_date"`
	UpdateDate *int64 `json:"update_date,omitempty"`
}

// List handles GET /registration. Admin only.
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.regSvc.FindAllPending(r.Context())
	if err != nil {
		logger.Error("Failed to list pending registration requests", "error", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "failed to list registration requests")
		return
	}

	resp := make([]registrationRequestResponse, 0, len(requests))
	for _, req := range requests {
		item := registrationRequestResponse{
			ID:         req.ID,
			Username:   req.Username,
			Email:      req.Email,
			Status:     string(req.Status),
			Reason:     req.Reason,
			CreateDate: req.CreateDate.UnixMilli(),
		}
		if req.UpdateDate != nil {
			millis := req.UpdateDate.UnixMilli()
			item.UpdateDate = &millis
		}
		resp = append(resp, item)
	}

	writeJSON(w, http.StatusOK, map[string]any{"requests": resp})
}

// Approve handles POST /registration/{id}/approve. Admin only.
func (h *RegistrationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	adminID := claimsFromContext(r.Context()).UserID

	if err := h.regSvc.ApproveRequest(r.Context(), id, adminID); err != nil {
		h.writeDecisionError(w, "approve", id, err)
		return
	}

	writeOK(w)
}

// Reject handles POST /registration/{id}/reject. Admin only.
func (h *RegistrationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	adminID := claimsFromContext(r.Context()).UserID

	payload := rejectPayload{Reason: r.FormValue("reason")}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "ValidationError", err.Error())
		return
	}

	if err := h.regSvc.RejectRequest(r.Context(), id, adminID, payload.Reason); err != nil {
		h.writeDecisionError(w, "reject", id, err)
		return
	}

	writeOK(w)
}

// Delete handles DELETE /registration/{id}. Admin only.
func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	adminID := claimsFromContext(r.Context()).UserID

	if err := h.regSvc.DeleteRequest(r.Context(), id, adminID); err != nil {
		h.writeDecisionError(w, "delete", id, err)
		return
	}

	writeOK(w)
}

// writeDecisionError maps workflow failures to distinct status codes so that
// an admin can tell an unknown request from an already-decided one or an
// internal provisioning failure.
func (h *RegistrationHandler) writeDecisionError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "NotFoundError", "registration request not found")
	case errors.Is(err, service.ErrRequestAlreadyDecided):
		writeError(w, http.StatusConflict, "AlreadyDecidedError", "registration request already decided")
	default:
		logger.Error("Registration decision failed", "operation", op, "request_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "operation failed")
	}
}

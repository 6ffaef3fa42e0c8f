package user

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/binder"
	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/clientip"
	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/logger"
	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/validator"
)

// Handler exposes the user module over HTTP. Validation runs before any
// store call; domain errors from the service are mapped to status codes in
// one place (respondServiceError).
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.With(logger.Component("user.handler")),
	}
}

type registerRequest struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// Register handles POST /api/create-user-with-login and its /api/register
// alias. Both run the atomic registration transaction.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := binder.BindJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validator.Apply(
		validator.Required("uid", req.UID),
		validator.Required("name", req.Name),
		validator.Required("email", req.Email),
		validator.Required("phoneNumber", req.PhoneNumber),
		validator.Required("address", req.Address),
	); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.Apply(
		validator.ValidEmail("email", req.Email),
		validator.ValidPhone("phoneNumber", req.PhoneNumber),
	); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.Register(r.Context(), RegisterInput{
		UID:         req.UID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		UserAgent:   userAgent(r),
		IPAddress:   clientip.GetIP(r),
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, http.StatusCreated, map[string]any{
		"message": "user registered successfully",
		"user":    h.svc.Redact(u),
	})
}

type checkUserRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// CheckUser handles POST /api/check-user.
func (h *Handler) CheckUser(w http.ResponseWriter, r *http.Request) {
	var req checkUserRequest
	if err := binder.BindJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validator.Apply(
		validator.Required("phoneNumber", req.PhoneNumber),
		validator.ValidPhone("phoneNumber", req.PhoneNumber),
	); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := h.svc.CheckPhone(r.Context(), req.PhoneNumber)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{"exists": exists})
}

type recordLoginRequest struct {
	UID         string `json:"uid"`
	PhoneNumber string `json:"phoneNumber"`
}

// RecordLogin handles POST /api/login-history.
func (h *Handler) RecordLogin(w http.ResponseWriter, r *http.Request) {
	var req recordLoginRequest
	if err := binder.BindJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validator.Apply(
		validator.Required("uid", req.UID),
		validator.Required("phoneNumber", req.PhoneNumber),
		validator.ValidPhone("phoneNumber", req.PhoneNumber),
	); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.RecordLogin(r.Context(), req.UID, req.PhoneNumber, userAgent(r), clientip.GetIP(r)); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, http.StatusCreated, map[string]any{"message": "login recorded successfully"})
}

// GetHistory handles GET /api/login-history/{uid}.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	history, err := h.svc.History(r.Context(), uid, limit)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{
		"history": history,
		"count":   len(history),
	})
}

// GetUser handles GET /api/user/{uid}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{"user": h.svc.Redact(u)})
}

type updateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// UpdateUser handles PUT /api/user/{uid}. Phone is immutable: the strict
// binder rejects any body carrying a phoneNumber field.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := binder.BindJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	upd := Update{Name: req.Name, Email: req.Email, Address: req.Address}
	if upd.IsEmpty() {
		respondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	var rules []validator.Rule
	if req.Name != nil {
		rules = append(rules, validator.Required("name", *req.Name))
	}
	if req.Email != nil {
		rules = append(rules, validator.ValidEmail("email", *req.Email))
	}
	if len(rules) > 0 {
		if err := validator.Apply(rules...); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	u, err := h.svc.Update(r.Context(), chi.URLParam(r, "uid"), upd)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{"user": h.svc.Redact(u)})
}

type unregisterRequest struct {
	UID string `json:"uid"`
}

// Unregister handles POST /api/unregister.
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	var req unregisterRequest
	if err := binder.BindJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validator.Apply(validator.Required("uid", req.UID)); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Unregister(r.Context(), req.UID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{"message": "user unregistered successfully"})
}

// respondServiceError maps service errors to status codes. Infrastructure
// failures are logged server-side and never echo their text to the caller.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsConflict(err):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPhoneMismatch):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func userAgent(r *http.Request) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}
	return "unknown"
}

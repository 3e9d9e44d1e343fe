package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"edudesk/internal/middleware"
	"edudesk/internal/service"
	"edudesk/internal/utils"
)

// TicketHTTP wires the ticket endpoints to the ticket service. Identity is
// pulled from request context once per handler and passed into the service
// explicitly.
type TicketHTTP struct {
	svc *service.TicketService
	log zerolog.Logger
}

func NewTicketHTTP(svc *service.TicketService, log zerolog.Logger) *TicketHTTP {
	return &TicketHTTP{svc: svc, log: log}
}

// fail maps service errors to the response taxonomy. Storage failures are
// logged in full and surfaced as a generic 500; the detail never reaches
// the client.
func (h *TicketHTTP) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrTicketNotFound):
		utils.Error(w, http.StatusNotFound, "Ticket not found")
	case errors.Is(err, service.ErrAccessDenied):
		utils.Error(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, service.ErrNotAssigned):
		utils.Error(w, http.StatusForbidden, "Ticket not assigned to you")
	default:
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("ticket store failure")
		utils.Error(w, http.StatusInternalServerError, "something went wrong")
	}
}

func identity(r *http.Request) (uid, role string) {
	uid, _ = utils.GetString(r.Context(), middleware.CtxUserID)
	role, _ = utils.GetString(r.Context(), middleware.CtxRole)
	return uid, role
}

// POST /api/tickets
func (h *TicketHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(in.Title) == "" {
			utils.Error(w, http.StatusBadRequest, "title is required")
			return
		}

		uid, _ := identity(r)
		t, err := h.svc.Create(r.Context(), uid, in.Title, in.Description)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusCreated, t)
	}
}

// GET /api/tickets
func (h *TicketHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.svc.AllTickets(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// GET /api/students/tickets
func (h *TicketHTTP) StudentTickets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := identity(r)
		items, err := h.svc.StudentTickets(r.Context(), uid)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// GET /api/employees/tickets
func (h *TicketHTTP) EmployeeTickets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := identity(r)
		items, err := h.svc.EmployeeTickets(r.Context(), uid)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// PUT /api/tickets/{id}/status
func (h *TicketHTTP) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var in struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.Status) == "" {
			utils.Error(w, http.StatusBadRequest, "status is required")
			return
		}

		t, err := h.svc.UpdateStatus(r.Context(), id, strings.TrimSpace(in.Status))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

// PUT /api/tickets/{id}/assign
func (h *TicketHTTP) Assign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var in struct {
			EmployeeID string `json:"employeeId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.EmployeeID) == "" {
			utils.Error(w, http.StatusBadRequest, "employeeId is required")
			return
		}

		t, err := h.svc.Assign(r.Context(), id, strings.TrimSpace(in.EmployeeID))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

// POST /api/tickets/{id}/comments
func (h *TicketHTTP) AddComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var in struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.Message) == "" {
			utils.Error(w, http.StatusBadRequest, "message is required")
			return
		}

		uid, role := identity(r)
		c, err := h.svc.AddComment(r.Context(), uid, role, id, in.Message)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusCreated, c)
	}
}

// GET /api/tickets/{id}/comments
func (h *TicketHTTP) Comments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		uid, role := identity(r)
		items, err := h.svc.CommentsByTicket(r.Context(), uid, role, id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

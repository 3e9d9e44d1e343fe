package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"edudesk/internal/models"
	"edudesk/internal/service"
	"edudesk/internal/utils"
)

type ProfileHTTP struct {
	svc *service.ProfileService
	log zerolog.Logger
}

func NewProfileHTTP(svc *service.ProfileService, log zerolog.Logger) *ProfileHTTP {
	return &ProfileHTTP{svc: svc, log: log}
}

func (h *ProfileHTTP) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}
	h.log.Error().Err(err).Str("path", r.URL.Path).Msg("profile store failure")
	utils.Error(w, http.StatusInternalServerError, "something went wrong")
}

// GET /api/students/profile (lazy create on first fetch)
func (h *ProfileHTTP) StudentGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := identity(r)
		p, err := h.svc.StudentProfile(r.Context(), uid)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, p)
	}
}

// PUT /api/students/profile (full-document upsert)
func (h *ProfileHTTP) StudentPut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.StudentProfile
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		uid, _ := identity(r)
		p, err := h.svc.SaveStudentProfile(r.Context(), uid, &in)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, p)
	}
}

// GET /api/employees/profile
func (h *ProfileHTTP) EmployeeGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := identity(r)
		p, err := h.svc.EmployeeProfile(r.Context(), uid)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, p)
	}
}

// PUT /api/employees/profile
func (h *ProfileHTTP) EmployeePut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.EmployeeProfile
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		uid, _ := identity(r)
		p, err := h.svc.SaveEmployeeProfile(r.Context(), uid, &in)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, p)
	}
}

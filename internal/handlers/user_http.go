package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"edudesk/internal/repository"
	"edudesk/internal/utils"
)

// UserHTTP exposes the admin user-management endpoints. There is
// deliberately no role-update endpoint: a user's role is fixed at creation.
type UserHTTP struct {
	repo repository.UserRepository
	log  zerolog.Logger
}

func NewUserHTTP(repo repository.UserRepository, log zerolog.Logger) *UserHTTP {
	return &UserHTTP{repo: repo, log: log}
}

// GET /api/users?role=&active=&limit=&offset=
func (h *UserHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		role := qv.Get("role")
		var active *bool
		if s := qv.Get("active"); s != "" {
			v, _ := strconv.ParseBool(s)
			active = &v
		}
		limit := utils.QueryInt(qv, "limit", 20)
		offset := utils.QueryInt(qv, "offset", 0)

		users, total, err := h.repo.List(r.Context(), role, active, limit, offset)
		if err != nil {
			h.log.Error().Err(err).Msg("user list failure")
			utils.Error(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": users, "total": total})
	}
}

// PATCH /api/users/{id}/active
func (h *UserHTTP) SetActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var in struct {
			Active bool `json:"active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid request")
			return
		}

		u, err := h.repo.SetActive(r.Context(), id, in.Active)
		if err != nil {
			h.log.Error().Err(err).Msg("user update failure")
			utils.Error(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		if u == nil {
			utils.Error(w, http.StatusNotFound, "User not found")
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}

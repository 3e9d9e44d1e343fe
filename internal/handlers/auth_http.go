package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"edudesk/internal/middleware"
	"edudesk/internal/repository"
	"edudesk/internal/service"
	"edudesk/internal/utils"
)

type AuthHTTP struct {
	svc   *service.AuthService
	users repository.UserRepository
	log   zerolog.Logger
}

func NewAuthHTTP(s *service.AuthService, users repository.UserRepository, log zerolog.Logger) *AuthHTTP {
	return &AuthHTTP{svc: s, users: users, log: log}
}

func (h *AuthHTTP) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Name     string `json:"name"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := h.svc.Register(r.Context(), in.Email, in.Name, in.Password)
		if err != nil {
			// only the known client errors get a client-facing message;
			// store failures are logged and masked
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				utils.Error(w, http.StatusBadRequest, "invalid input")
			case errors.Is(err, service.ErrEmailTaken):
				utils.Error(w, http.StatusConflict, "Email already registered")
			default:
				h.log.Error().Err(err).Msg("register failure")
				utils.Error(w, http.StatusInternalServerError, "something went wrong")
			}
			return
		}
		utils.JSON(w, http.StatusCreated, u)
	}
}

func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, u, err := h.svc.Login(r.Context(), in.Email, in.Password)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidCredentials) {
				h.log.Error().Err(err).Msg("login failure")
				utils.Error(w, http.StatusInternalServerError, "something went wrong")
				return
			}
			utils.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		// Issue httpOnly session cookie
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			// Set true behind HTTPS in prod
			Secure:  false,
			Expires: time.Now().Add(24 * time.Hour),
		})

		utils.JSON(w, http.StatusOK, u)
	}
}

func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,              // expire immediately
			Expires:  time.Unix(0, 0), // for older browsers
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetString(r.Context(), middleware.CtxUserID)
		if !ok || uid == "" {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		u, err := h.users.GetByID(r.Context(), uid)
		if err != nil {
			h.log.Error().Err(err).Msg("user lookup failure")
			utils.Error(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		if u == nil {
			utils.Error(w, http.StatusNotFound, "user not found")
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}

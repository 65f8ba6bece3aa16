package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fjod/go_storefront/internal/service"
)

type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type RegisterRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SessionResponseDTO struct {
	Username string `json:"username,omitempty"`
	LoggedIn bool   `json:"logged_in"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	account, err := h.accounts.Register(r.Context(), req.Username, req.Password, req.Phone)
	if errors.Is(err, service.ErrDuplicateUsername) {
		respondError(w, http.StatusConflict, "duplicate_username", err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, SessionResponseDTO{Username: account.Username, LoggedIn: true})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, SessionResponseDTO{Username: req.Username, LoggedIn: true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Logout(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, SessionResponseDTO{LoggedIn: false})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, err := h.accounts.CurrentUser(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, SessionResponseDTO{Username: username, LoggedIn: username != ""})
}

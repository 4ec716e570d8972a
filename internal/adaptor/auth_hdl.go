package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-boxoffice/internal/dto/request"
	"cinema-boxoffice/internal/usecase"
	"cinema-boxoffice/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "register user")
		return
	}

	utils.ResponseCreated(w, "User registered successfully", user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// never leak which part of the credential pair failed
		h.log.Warn("Login failed", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid email or password")
		return
	}

	utils.ResponseSuccess(w, "Login successful", auth)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		respondServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logged out successfully", nil)
}

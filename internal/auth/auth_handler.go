package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atuljain2995/Tangry-Website/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

func setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookie, accessToken, int(accessTokenTTL.Seconds()), "/", "", false, true)
	c.SetCookie(refreshCookie, refreshToken, int(refreshTokenTTL.Seconds()), "/", "", false, true)
}

// POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid registration payload", err.Error())
		return
	}

	accessToken, refreshToken, user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	setAuthCookies(c, accessToken, refreshToken)
	response.Success(c, http.StatusCreated, "Account created", user)
}

// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid login payload", err.Error())
		return
	}

	accessToken, refreshToken, user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	setAuthCookies(c, accessToken, refreshToken)
	response.Success(c, http.StatusOK, "Logged in", user)
}

// POST /auth/refresh
func (h *Handler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Refresh token is required", nil)
		return
	}

	accessToken, newRefreshToken, user, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		response.FromError(c, err)
		return
	}

	setAuthCookies(c, accessToken, newRefreshToken)
	response.Success(c, http.StatusOK, "", user)
}

// GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", user)
}

// POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(accessCookie, "", -1, "/", "", false, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karshdev/LeadBlock-BE/internal/middleware"
	"github.com/karshdev/LeadBlock-BE/internal/pkg/response"
	"github.com/karshdev/LeadBlock-BE/internal/pkg/validator"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler with injected service
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the auth endpoints. Login is public (behind the rate
// limiter); /me requires a valid bearer token.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, authn, loginLimit gin.HandlerFunc) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", loginLimit, h.Login)
		authGroup.GET("/me", authn, h.Me)
	}
}

// Login handles POST /api/auth/login
// @Summary	Log in with username and password
// @Tags	Auth
// @Param	request	body	LoginRequest	true	"Credentials"
// @Success	200	{object}	map[string]interface{}	"Token and public user record"
// @Failure	400	{object}	map[string]interface{}	"Validation error"
// @Failure	401	{object}	map[string]interface{}	"Bad credentials"
// @Router	/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validator.Validate(&req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": UserPublic{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	})
}

// Me handles GET /api/auth/me
// @Summary	Return the identity attached by the auth middleware
// @Tags	Auth
// @Security	BearerAuth
// @Success	200	{object}	map[string]interface{}
// @Failure	401	{object}	map[string]interface{}
// @Router	/auth/me [GET]
func (h *Handler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, UserPublic{
		ID:       c.GetString(middleware.CtxUserID),
		Username: c.GetString(middleware.CtxUsername),
		Role:     c.GetString(middleware.CtxRole),
	})
}

// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/services"
	"github.com/hexadigitall/platform/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

// Login authenticates a user and issues a session token
// @Summary User login
// @Description Authenticates a user and returns a signed session token. The token is also set as a cookie for the dashboard gate.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 403 {object} dto.APIResponse "Account suspended or role mismatch"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The dashboard gate reads the same token from this cookie.
	ctx.SetCookie(middleware.SessionCookieName, resp.Token, resp.ExpiresIn, "/", "", false, true)

	c.logger.Info().Str("username", req.Username).Str("role", resp.Role).Msg("User logged in")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Logout clears the session cookie. Tokens themselves remain valid
// until natural expiry; there is no server-side revocation.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// Introspect reports the identity behind the presented token
// @Summary Token introspection
// @Description Returns the authenticated caller's username and live role.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.IntrospectionResponse}
// @Failure 401 {object} dto.APIResponse "Unauthenticated"
// @Router /admin/auth [get]
func (c *AuthController) Introspect(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.IntrospectionResponse{
		Authenticated: true,
		Username:      middleware.CallerUsername(ctx),
		Role:          middleware.CallerRole(ctx),
	}))
}

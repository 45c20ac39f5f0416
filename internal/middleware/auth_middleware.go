package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/repositories"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
	"github.com/hexadigitall/platform/internal/pkg/auth"
)

// SessionCookieName is the cookie carrying the session token for the
// coarse dashboard gate. API calls present the same value as a bearer
// header instead.
const SessionCookieName = "admin_token"

// Context keys set by RequireAuth
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware handles authentication and role checks
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
	// bootstrapUsername identifies the configuration-backed administrator
	// whose tokens carry no user id and skip the live re-check.
	bootstrapUsername string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository, bootstrapUsername string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:        jwtService,
		userRepo:          userRepo,
		bootstrapUsername: bootstrapUsername,
	}
}

// RequireAuth validates the bearer token and resolves the caller's live
// identity. Tokens carrying a user id are re-checked against the
// directory on every call: a user suspended or re-roled after issuance
// is caught here, and the live role wins over the token's cached role.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Session expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		if claims.UserID > 0 {
			user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, apperrors.ErrUserNotFound) {
					abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
					return
				}
				// Store failures are 500s, not auth failures.
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
				return
			}
			if user.IsSuspended() {
				abortUnauthorized(c, dto.ErrorCodeAccountSuspended, "Authentication required")
				return
			}

			c.Set(ContextUserID, user.ID)
			c.Set(ContextUsername, user.Username)
			c.Set(ContextRole, string(user.Role))
			c.Next()
			return
		}

		// Legacy path: no user id means the bootstrap administrator. The
		// embedded role is trusted without a live re-check, limited to that
		// single account.
		if claims.Username != m.bootstrapUsername || claims.Role != string(models.RoleAdmin) {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		c.Set(ContextUserID, int64(0))
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole layers a role check over RequireAuth. A wrong role is
// Forbidden, never Unauthorized: the caller is known, just not allowed.
// Admins pass every section.
func (m *AuthMiddleware) RequireRole(requiredRole models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		roleStr, ok := role.(string)
		if !ok || (roleStr != string(requiredRole) && roleStr != string(models.RoleAdmin)) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeForbidden, "You don't have sufficient permissions for this operation")))
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// CallerID returns the authenticated caller's user id from the context.
// Zero identifies the bootstrap administrator.
func CallerID(c *gin.Context) int64 {
	if v, exists := c.Get(ContextUserID); exists {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// CallerRole returns the authenticated caller's resolved role
func CallerRole(c *gin.Context) string {
	if v, exists := c.Get(ContextRole); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

// CallerUsername returns the authenticated caller's username
func CallerUsername(c *gin.Context) string {
	if v, exists := c.Get(ContextUsername); exists {
		if username, ok := v.(string); ok {
			return username
		}
	}
	return ""
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hexadigitall/platform/internal/app/models"
)

// DashboardGate is the coarse gate in front of a dashboard section. It
// only inspects the session cookie - no directory query - and exists to
// keep protected pages from rendering before the per-route API guard
// runs on data fetches. Login pages are registered outside the gated
// group so a redirect can never loop.
func (m *AuthMiddleware) DashboardGate(section string, requiredRole models.Role) gin.HandlerFunc {
	loginPath := "/" + section + "/login"

	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			// Expired or undecodable: clear the cookie so the next request
			// arrives clean.
			c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if claims.Role != string(requiredRole) && claims.Role != string(models.RoleAdmin) {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/openschool/volunteer-hub/web/session"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a handler to sessions holding the given role. Any
// other session, logged in or not, is sent to that role's login page.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil || user.Role != role {
			c.Redirect(http.StatusFound, "/login/"+role)
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userId"
	resumeIDKey = "resumeId"

	// UserCookie and ResumeCookie are the identifying cookies the web client
	// sends back after login and resume creation.
	UserCookie   = "userId"
	ResumeCookie = "resumeId"
)

// Identity copies the identifying cookies into the request context. The
// cookies are unsigned and client-controlled, so the values are claims, not
// authenticated identity; ownership is only ever enforced by the owner filter
// on store queries.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		if id, err := c.Cookie(UserCookie); err == nil && id != "" {
			c.Set(userIDKey, id)
		}
		if id, err := c.Cookie(ResumeCookie); err == nil && id != "" {
			c.Set(resumeIDKey, id)
		}
		c.Next()
	}
}

// UserIDFromContext returns the claimed owner id, or "" when absent.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userIDKey)
}

// ResumeIDFromContext returns the claimed resume id, or "" when absent.
func ResumeIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(resumeIDKey)
}

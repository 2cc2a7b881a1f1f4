package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	UsersHandler   *users.Handler
	ResumesHandler *resumes.Handler
}

// authRateRule throttles registration and login per client. One credential
// attempt per second with headroom for page-load retries.
var authRateRule = middleware.RateLimitRule{Rate: 1, Burst: 10}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	auth := r.Group("/", middleware.RateLimit(middleware.NewRateLimiter(nil), authRateRule))
	deps.UsersHandler.RegisterRoutes(auth)

	deps.ResumesHandler.RegisterRoutes(r)

	if deps.Config.Env == "production" {
		registerStatic(r, deps.Config.StaticDir)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":9000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

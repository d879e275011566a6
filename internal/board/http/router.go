package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/driftlab/driftboard/internal/board/cache"
	"github.com/driftlab/driftboard/internal/board/service"
	"github.com/driftlab/driftboard/internal/board/session"
	"github.com/driftlab/driftboard/internal/board/store"
	"github.com/driftlab/driftboard/pkg/httpx"
	"github.com/driftlab/driftboard/pkg/slogx"

	_ "github.com/driftlab/driftboard/api/board" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	cache    cache.Cache
	sessions *session.Manager

	AuthService          *service.AuthService
	PasswordResetService *service.PasswordResetService
	PostService          *service.PostService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	c cache.Cache,
	sessions *session.Manager,
	corsOrigin string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		cache:        c,
		sessions:     sessions,
		logger:       logger,
	}

	// Set default middleware chain. Session resolution runs after logging
	// so handlers and rate limiters can read the user id from context.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		CORSMiddleware(corsOrigin),
		SessionMiddleware(sessions),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPasswordReset()
	r.registerPosts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Drift Board API
//	@version		0.1.0
//	@description	A small social-posting backend: registration and login with
//	@description	session cookies, password reset via emailed tokens, and CRUD
//	@description	plus cursor-paginated listing of posts.
//
//	@contact.name	Drift Lab
//	@contact.url	https://github.com/driftlab/driftboard
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:4000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Sessions:    r.sessions,
	}

	// Credential endpoints take a strict limit to slow brute forcing.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPasswordReset() {
	h := &PasswordHandler{
		PasswordResetService: r.PasswordResetService,
		Sessions:             r.sessions,
	}

	r.Mux.Handle("POST /v1/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgot),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/change-password",
		httpx.Chain(http.HandlerFunc(h.HandleChange),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerPosts() {
	h := &PostsHandler{PostService: r.PostService}

	// Reads are public; mutations require a session.
	r.Mux.Handle("GET /v1/posts",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /v1/posts",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			RequireAuth(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			RequireAuth(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			RequireAuth(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.cache),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

package routes

import (
	"job-radar/internal/delivery/http/handler"
	"job-radar/internal/delivery/http/middleware"
	"job-radar/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires handlers onto the fiber app. The v1 API group sits
// behind the auth middleware; health and the ws endpoint do not.
type Registry struct {
	health     *handler.HealthHandler
	auth       *handler.AuthHandler
	duplicates *handler.DuplicateHandler
	match      *handler.MatchHandler
	wsHandler  *ws.Handler
	authMw     *middleware.AuthMiddleware
}

func NewRegistry(
	auth *handler.AuthHandler,
	duplicates *handler.DuplicateHandler,
	match *handler.MatchHandler,
	wsHandler *ws.Handler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:     handler.NewHealthHandler(),
		auth:       auth,
		duplicates: duplicates,
		match:      match,
		wsHandler:  wsHandler,
		authMw:     authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	if r.wsHandler != nil {
		app.Get("/ws", r.wsHandler.HandleWS)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.auth.RegisterRoutes(v1)

	protected := v1.Group("", r.authMw.Middleware())
	r.duplicates.RegisterRoutes(protected)
	r.match.RegisterRoutes(protected)
}

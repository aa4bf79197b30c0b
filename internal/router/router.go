package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/cine-estrella/box-office/internal/config"
	"github.com/cine-estrella/box-office/internal/handler"
	"github.com/cine-estrella/box-office/internal/middleware"
	"github.com/cine-estrella/box-office/internal/model"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Auth   *handler.AuthHandler
	Public *handler.PublicHandler
	Ticket *handler.TicketHandler
	Admin  *handler.AdminHandler
}

// Register attaches all routes and their middleware to the Echo instance.
// The public catalog sits behind the Redis response cache; every route
// shares the rate limiter. Both degrade to pass-throughs when rdb is nil.
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// health check for load balancers and monitoring
	e.GET("/healthz", handler.Health)

	// unauthenticated session endpoints
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	// public catalog browsing, cached
	public := e.Group("/v1", middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	public.GET("/titles", h.Public.ListTitles)
	public.GET("/titles/:id", h.Public.GetTitle)
	public.GET("/titles/:id/showtimes/:sid/seats", h.Public.GetShowtimeSeats)
	public.GET("/titles/:id/showtimes/:sid/alternatives", h.Public.GetAlternatives)

	// endpoints requiring a valid access token
	protected := e.Group("/v1")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))
	protected.Use(middleware.RequireRole(model.RoleAdmin, model.RoleCustomer))
	protected.GET("/me", h.Auth.Me)
	protected.POST("/tickets", h.Ticket.Reserve)
	protected.GET("/my-tickets", h.Ticket.ListMine)
	protected.DELETE("/tickets/:code", h.Ticket.Cancel)

	// catalog management and reporting, admins only
	admin := e.Group("/v1/admin")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/rooms", h.Admin.CreateRoom)
	admin.POST("/titles", h.Admin.CreateTitle)
	admin.POST("/titles/:id/showtimes", h.Admin.CreateShowtime)
	admin.GET("/report", h.Admin.Report)
}

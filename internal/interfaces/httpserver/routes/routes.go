package routes

import (
	"github.com/gin-gonic/gin"

	"foodatlas-server/internal/interfaces/httpserver/handlers"
)

// Middleware holds the gating middlewares applied per route group.
type Middleware struct {
	Auth       gin.HandlerFunc
	CookieAuth gin.HandlerFunc
	Admin      gin.HandlerFunc
}

// Routes encapsulates route registration.
type Routes struct {
	handlers   *handlers.Provider
	middleware Middleware
}

func NewRoutes(provider *handlers.Provider, middleware Middleware) *Routes {
	return &Routes{handlers: provider, middleware: middleware}
}

// Register attaches the auth, catalog and admin routes.
func (r *Routes) Register(router gin.IRouter) {
	auth := router.Group("/auth")
	auth.POST("/register", r.handlers.Auth.Register)
	auth.POST("/login", r.handlers.Auth.Login)
	auth.POST("/logout", r.handlers.Auth.Logout)
	auth.GET("/check-auth", r.handlers.Auth.CheckAuth)
	auth.GET("/profile", r.middleware.CookieAuth, r.handlers.Auth.Profile)
	auth.GET("/users", r.handlers.Auth.ListUsers)

	foods := router.Group("/foods")
	foods.GET("", r.handlers.Food.List)
	foods.GET("/:id", r.handlers.Food.Get)
	foods.POST("", r.middleware.Auth, r.handlers.Food.Create)
	foods.PUT("/:id", r.middleware.Auth, r.handlers.Food.Update)
	foods.DELETE("/:id", r.middleware.Auth, r.handlers.Food.Delete)

	admin := router.Group("/admin", r.middleware.Auth, r.middleware.Admin)
	admin.DELETE("/users/:id", r.handlers.Auth.DeleteUser)
}

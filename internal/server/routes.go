package server

import (
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/scalemyorg/internal/handlers"
	"github.com/nfrund/scalemyorg/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()
	requireSession := middleware.Auth(s.auth)

	s.E.GET("/", handlers.LandingGet)

	s.E.GET("/login", s.authHandler.LoginGet)
	s.E.POST("/login", s.authHandler.LoginPost, rateLimiter)
	s.E.GET("/signup", s.authHandler.SignupGet)
	s.E.POST("/signup", s.authHandler.SignupPost, rateLimiter)
	s.E.POST("/logout", s.authHandler.Logout)
	s.E.GET("/logout", s.authHandler.Logout)

	s.E.GET("/dashboard", handlers.DashboardGet, requireSession)

	s.E.GET("/health", s.healthHandler.Get)

	if s.static != nil {
		s.E.StaticFS("/static", s.static)
	}
}

// RouteTable lists the registered method and path pairs, sorted by path.
func (s *Server) RouteTable() []*echo.Route {
	routes := s.E.Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	return routes
}

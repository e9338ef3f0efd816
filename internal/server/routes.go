package server

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, deps Deps, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	session := middleware.Session(deps.Sessions, middleware.SessionCookieConfig{
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	})

	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, session)
	h.Auth.RegisterRoutes(e, session,
		middleware.AuthJWT(deps.TokenParser),
		middleware.ActiveUserGuard(deps.Users),
	)
}

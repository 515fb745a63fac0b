package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type RouteDeps struct {
	Menu     *handler.MenuHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, deps RouteDeps) {
	deps.Menu.RegisterRoutes(e)
	deps.Cart.RegisterRoutes(e, cfg)
	deps.Checkout.RegisterRoutes(e, cfg)
	deps.Order.RegisterRoutes(e)
}

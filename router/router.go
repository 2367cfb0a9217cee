package router

import (
	"github.com/labstack/echo/v4"

	"docqa/pkg/middleware"
)

func New(
	e *echo.Echo,
	authToken string,
	qaCtrl interface {
		Run(echo.Context) error
		Process(echo.Context) error
		Query(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("", middleware.BearerAuth(authToken))

	// one-shot: download + extract + ephemeral index + answer everything
	api.POST("/hackrx/run", qaCtrl.Run)

	// decoupled: persist once, query many times
	api.POST("/documents", qaCtrl.Process)
	api.POST("/query", qaCtrl.Query)

	return e
}

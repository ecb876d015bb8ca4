package http

import (
	"log/slog"
	"net/http"

	"fnbpos/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance: health, metrics and Swagger UI
// endpoints plus the validated API routes served by s.
func NewRouter(s *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}
	api.RegisterSwagger()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover(), RequestLogger(logger), MetricsMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1", validator)
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/preview", s.PreviewOrder)
	v1.GET("/orders/open", s.GetOpenOrders)
	v1.GET("/orders/:orderId", s.GetOrderOverview)
	v1.POST("/orders/:orderId/actions/:action", s.ExecuteOrderAction)
	v1.POST("/orders/:orderId/lines", s.AddLineItem)
	v1.PATCH("/orders/:orderId/lines/:lineId", s.ChangeLineItemQuantity)
	v1.DELETE("/orders/:orderId/lines/:lineId", s.RemoveLineItem)
	v1.GET("/reports/daily-revenue", s.GetDailyRevenue)

	return e, nil
}

package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds everything NewRouter wires together.
type RouterConfig struct {
	Server         *Server
	Users          UserFinder
	Doc            *openapi3.T
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewRouter builds the echo instance serving the API under /api and the
// swagger UI under /swagger.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger.With("component", "http")

	validator, err := RequestValidator(cfg.Doc)
	if err != nil {
		return nil, err
	}
	if err := registerSwagger(cfg.Doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderContentType, echo.HeaderAuthorization, "Cache-Control", UserIDHeader,
		},
	}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s := cfg.Server
	api := e.Group("/api", validator, PrincipalMiddleware(cfg.Users))
	api.GET("/health", s.GetHealth)
	api.GET("/openapi.yaml", serveOpenAPI)
	api.GET("/notifications", s.StreamNotifications)

	api.POST("/orders", s.CreatePublicOrder)
	api.POST("/orders/authenticated", s.CreateOrder)
	api.DELETE("/orders", s.DeleteAllOrders)

	api.GET("/orders/recent", s.ListRecentOrders)
	api.GET("/orders/all", s.ListAllOrders)
	api.GET("/orders/confirmer", s.ListConfirmerOrders)
	api.GET("/orders/unassigned", s.ListUnassignedOrders)
	api.GET("/orders/buyer", s.ListBuyerOrders)

	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PUT("/orders/:id/confirmer-status", s.UpdateConfirmerStatus)
	api.PUT("/orders/:id/buyer-status", s.UpdateBuyerStatus)

	return e, nil
}

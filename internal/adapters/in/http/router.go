package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterOptions configures the non-API routes.
type RouterOptions struct {
	// StaticDir is served at the site root. Empty disables static files.
	StaticDir string

	// Metrics is mounted at /metrics when set.
	Metrics http.Handler

	Logger *slog.Logger
}

// formValidator adapts go-playground/validator to echo.Validator.
type formValidator struct {
	validate *validator.Validate
}

func (v *formValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// NewRouter builds the echo instance with middleware and every route.
func NewRouter(s *Server, opts RouterOptions) (*echo.Echo, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}

	validateRequests, err := openAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &formValidator{validate: validator.New(validator.WithRequiredStructEnabled())}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	}))

	e.POST("/checkout", s.Checkout, validateRequests)
	e.GET("/tracking/:code", s.GetTracking, validateRequests)
	e.GET("/admin", s.GetAdmin, s.RequireAdmin, validateRequests)
	e.GET("/health", s.GetHealth)

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	if opts.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(opts.Metrics))
	}

	if opts.StaticDir != "" {
		e.Static("/", opts.StaticDir)
	}

	return e, nil
}

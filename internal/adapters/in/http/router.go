package http

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	// Registers the Swagger document served under /swagger.
	_ "foodorders/docs"
)

const instrumentationName = "foodorders/internal/adapters/in/http"

// RouterOptions carries the observability dependencies of the router. Nil
// fields fall back to no-op implementations.
type RouterOptions struct {
	Logger *slog.Logger
	Tracer trace.Tracer
	Meter  metric.Meter
}

// NewRouter builds the echo instance serving the API, the health check and
// the Swagger UI.
func NewRouter(server *Server, opts RouterOptions) (*echo.Echo, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tracer == nil {
		opts.Tracer = nooptrace.NewTracerProvider().Tracer(instrumentationName)
	}
	if opts.Meter == nil {
		opts.Meter = metricnoop.NewMeterProvider().Meter(instrumentationName)
	}
	logger := opts.Logger.With("component", "HTTPServer")

	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(Telemetry(opts.Tracer, opts.Meter))
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", server.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	RegisterHandlers(e, server)

	return e, nil
}

package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const defaultInvalidBodyMessage = "Invalid request body."

// RequestValidator checks POST bodies against the OpenAPI document before they
// reach a handler. Requests for routes the document does not describe pass
// through so echo can answer 404 or 405.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if req.Method != http.MethodPost {
				return next(ctx)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, invalidBodyMessage(route.Operation)).SetInternal(err)
			}

			return next(ctx)
		}
	}, nil
}

func invalidBodyMessage(op *openapi3.Operation) string {
	if op == nil {
		return defaultInvalidBodyMessage
	}
	if msg, ok := op.Extensions[invalidBodyMessageExtension].(string); ok && msg != "" {
		return msg
	}
	return defaultInvalidBodyMessage
}

// RequestLogger writes one slog line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

type httpMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newHTTPMetrics(m metric.Meter) httpMetrics {
	if m == nil {
		return httpMetrics{}
	}
	requests, _ := m.Int64Counter("http.server.requests", metric.WithDescription("Number of handled HTTP requests"))
	duration, _ := m.Float64Histogram("http.server.duration",
		metric.WithDescription("Duration of handled HTTP requests"), metric.WithUnit("ms"))
	return httpMetrics{requests: requests, duration: duration}
}

func (m httpMetrics) record(ctx echo.Context, route string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("http.method", ctx.Request().Method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", ctx.Response().Status),
	)
	if m.requests != nil {
		m.requests.Add(ctx.Request().Context(), 1, attrs)
	}
	if m.duration != nil {
		m.duration.Record(ctx.Request().Context(), float64(elapsed.Microseconds())/1000, attrs)
	}
}

// Telemetry starts a server span per request and records request counters.
func Telemetry(tracer trace.Tracer, meter metric.Meter) echo.MiddlewareFunc {
	metrics := newHTTPMetrics(meter)
	propagator := otel.GetTextMapPropagator()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			parent := propagator.Extract(req.Context(), propagation.HeaderCarrier(req.Header))

			route := ctx.Path()
			if route == "" {
				route = req.URL.Path
			}

			spanCtx, span := tracer.Start(parent, req.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", req.Method),
					attribute.String("http.route", route),
					attribute.String("http.request_id", ctx.Response().Header().Get(echo.HeaderXRequestID)),
				),
			)
			defer span.End()
			ctx.SetRequest(req.WithContext(spanCtx))

			started := time.Now()
			err := next(ctx)
			if err != nil {
				span.RecordError(err)
			}

			status := ctx.Response().Status
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
			metrics.record(ctx, route, time.Since(started))

			return err
		}
	}
}

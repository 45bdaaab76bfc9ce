package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/services"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

// DefaultOrderStatusSchedule runs the job at the start of every minute.
const DefaultOrderStatusSchedule = "* * * * *"

const tracerName = "foodorders/internal/jobs"

// OrderStatusJob advances every undelivered order one status step per tick.
// Ticks never overlap: a tick that is due while the previous one still runs is
// skipped.
type OrderStatusJob struct {
	handler  commands.AdvanceOrderStatusesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  jobMetrics
}

type Option func(*OrderStatusJob)

func WithTracer(tr trace.Tracer) Option {
	return func(j *OrderStatusJob) { j.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(j *OrderStatusJob) { j.metrics = newJobMetrics(m) }
}

// NewOrderStatusJob creates the job. schedule is a standard five-field cron
// expression or a descriptor such as "@every 30s"; empty means once a minute.
func NewOrderStatusJob(
	handler commands.AdvanceOrderStatusesCommandHandler,
	schedule string,
	logger *slog.Logger,
	opts ...Option,
) *OrderStatusJob {
	if schedule == "" {
		schedule = DefaultOrderStatusSchedule
	}

	logger = logger.With("component", "order_status_job")
	j := &OrderStatusJob{
		handler:  handler,
		schedule: schedule,
		logger:   logger,
		tracer:   nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(j)
		}
	}

	cronLog := newCronLogger(logger)
	j.cron = cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	return j
}

// Start schedules the job. It fails when the schedule cannot be parsed.
func (j *OrderStatusJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		// errors are logged by RunOnce
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Order status job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running tick to finish.
func (j *OrderStatusJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order status job stopped")
}

// RunOnce performs a single tick and returns the transitions it applied.
func (j *OrderStatusJob) RunOnce(ctx context.Context) ([]services.Transition, error) {
	ctx, span := j.tracer.Start(ctx, "OrderStatusJob.Tick")
	defer span.End()

	transitions, err := j.handler.Handle(ctx, commands.NewAdvanceOrderStatusesCommand())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		j.logger.ErrorContext(ctx, "Order status job failed", "error", err)
		return nil, err
	}

	for _, tr := range transitions {
		j.logger.DebugContext(ctx, "Order status updated",
			slog.Int64("order_id", tr.OrderID.Int64()),
			slog.String("from", tr.From.String()),
			slog.String("to", tr.To.String()),
		)
		j.metrics.recordTransition(ctx, tr)
	}
	j.metrics.recordTick(ctx)

	span.SetAttributes(attribute.Int("orders.transitions", len(transitions)))
	j.logger.InfoContext(ctx, "Order statuses updated", slog.Int("transitions", len(transitions)))

	return transitions, nil
}

type jobMetrics struct {
	ticks       metric.Int64Counter
	transitions metric.Int64Counter
}

func newJobMetrics(m metric.Meter) jobMetrics {
	if m == nil {
		return jobMetrics{}
	}
	ticks, _ := m.Int64Counter("orders.status.ticks", metric.WithDescription("Number of completed status ticks"))
	transitions, _ := m.Int64Counter("orders.status.transitions",
		metric.WithDescription("Number of order status transitions"))
	return jobMetrics{ticks: ticks, transitions: transitions}
}

func (m jobMetrics) recordTick(ctx context.Context) {
	if m.ticks != nil {
		m.ticks.Add(ctx, 1)
	}
}

func (m jobMetrics) recordTransition(ctx context.Context, tr services.Transition) {
	if m.transitions != nil {
		m.transitions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("from", tr.From.String()),
			attribute.String("to", tr.To.String()),
		))
	}
}

package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// AppMetrics holds the instruments recorded across the request path and
// the order/payment workflow.
type AppMetrics struct {
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestsErrors  metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram

	OrdersCreated    metric.Int64Counter
	PaymentsCaptured metric.Int64Counter
	RevenueTotal     metric.Int64Counter
}

// Init builds the meter provider. With an OTLP endpoint configured the
// provider exports over OTLP/HTTP; without one the instruments still work
// but nothing leaves the process.
func Init(ctx context.Context, endpoint, serviceName string) (*AppMetrics, *sdkmetric.MeterProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	if endpoint != "" {
		exporter, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(15*time.Second)),
		))
	}

	provider := sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)
	m := &AppMetrics{}

	if m.HTTPRequestsTotal, err = meter.Int64Counter("http.requests.total",
		metric.WithDescription("Total HTTP requests")); err != nil {
		return nil, nil, err
	}
	if m.HTTPRequestsErrors, err = meter.Int64Counter("http.requests.errors",
		metric.WithDescription("HTTP requests ending in 4xx/5xx")); err != nil {
		return nil, nil, err
	}
	if m.HTTPRequestDuration, err = meter.Float64Histogram("http.request.duration",
		metric.WithDescription("Request duration in milliseconds"),
		metric.WithUnit("ms")); err != nil {
		return nil, nil, err
	}
	if m.OrdersCreated, err = meter.Int64Counter("orders.created",
		metric.WithDescription("Orders placed")); err != nil {
		return nil, nil, err
	}
	if m.PaymentsCaptured, err = meter.Int64Counter("payments.captured",
		metric.WithDescription("Payments recorded")); err != nil {
		return nil, nil, err
	}
	if m.RevenueTotal, err = meter.Int64Counter("revenue.total",
		metric.WithDescription("Captured payment amounts")); err != nil {
		return nil, nil, err
	}

	return m, provider, nil
}

// RecordRequest feeds the HTTP instruments from the router middleware.
func (m *AppMetrics) RecordRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	m.HTTPRequestsTotal.Add(ctx, 1, attrs)
	if status >= 400 {
		m.HTTPRequestsErrors.Add(ctx, 1, attrs)
	}
	m.HTTPRequestDuration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
}

func (m *AppMetrics) RecordOrder(ctx context.Context) {
	if m == nil {
		return
	}
	m.OrdersCreated.Add(ctx, 1)
}

func (m *AppMetrics) RecordPayment(ctx context.Context, amount int64) {
	if m == nil {
		return
	}
	m.PaymentsCaptured.Add(ctx, 1)
	m.RevenueTotal.Add(ctx, amount)
}

package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// Metrics bundles the meter provider, the meter handed to instrumented components,
// and the HTTP handler serving the Prometheus scrape endpoint.
type Metrics struct {
	Provider *sdkmetric.MeterProvider
	Meter    metric.Meter
	Handler  http.Handler
}

// InitMetrics initializes the Prometheus metrics exporter.
func InitMetrics(cfg MetricsConfig) (*Metrics, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return &Metrics{
		Provider: provider,
		Meter:    provider.Meter(cfg.ServiceName),
		Handler:  promhttp.Handler(),
	}, nil
}

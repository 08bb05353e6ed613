package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/flowise/cycle-tracker/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ServiceName identifies the API in exported spans.
const ServiceName = "cycle-tracker-api"

// InitTracer installs a global tracer provider that ships spans to the
// Langfuse OTLP endpoint. Without Langfuse credentials it is a no-op and the
// default noop provider stays in place.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string) (func(context.Context) error, error) {
	if !cfg.LangfuseEnabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(TracesEndpoint(cfg.LangfuseBaseURL)),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": BasicAuth(cfg.LangfusePublicKey, cfg.LangfuseSecretKey),
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("deployment.environment", cfg.AppEnv),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// TracesEndpoint is the Langfuse OTLP/HTTP traces URL for baseURL.
func TracesEndpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/api/public/otel/v1/traces"
}

// BasicAuth builds the Authorization header value from Langfuse keys.
func BasicAuth(publicKey, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(publicKey+":"+secretKey))
}

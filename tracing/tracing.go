package tracing

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const EnvEndpoint = "TRACE_ENDPOINT"

// InitTracer installs the global tracer provider and propagator. Spans are exported over OTLP/HTTP when
// TRACE_ENDPOINT is set and dropped otherwise.
func InitTracer(l logrus.FieldLogger) func(serviceName string) (*sdktrace.TracerProvider, error) {
	return func(serviceName string) (*sdktrace.TracerProvider, error) {
		opts := []sdktrace.TracerProviderOption{
			sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
		}
		if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
			exp, err := otlptracehttp.New(context.Background(), otlptracehttp.WithEndpointURL(endpoint))
			if err != nil {
				return nil, err
			}
			opts = append(opts, sdktrace.WithBatcher(exp))
			l.Infof("Exporting traces to [%s].", endpoint)
		} else {
			l.Infof("No trace endpoint configured, spans will not be exported.")
		}

		tp := sdktrace.NewTracerProvider(opts...)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
		return tp, nil
	}
}

func Teardown(l logrus.FieldLogger) func(tp *sdktrace.TracerProvider) func() {
	return func(tp *sdktrace.TracerProvider) func() {
		return func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				l.WithError(err).Errorf("Unable to shutdown tracer.")
			}
		}
	}
}

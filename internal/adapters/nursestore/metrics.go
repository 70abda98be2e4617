package nursestore

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var fallbackCounter metric.Int64Counter
var fallbackCounterInit = false

func ensureFallbackCounter() {
	if fallbackCounterInit {
		return
	}
	meter := otel.Meter("github.com/zatekoja/nursematch/nursestore")

	counter, err := meter.Int64Counter(
		"nurses.store.fallback.count",
		metric.WithDescription("Times the candidate source fell back to the static file"),
	)
	if err != nil {
		return
	}
	fallbackCounter = counter
	fallbackCounterInit = true
}

func recordFallbackMetric(ctx context.Context, kind Kind) {
	ensureFallbackCounter()
	if !fallbackCounterInit {
		return
	}
	fallbackCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("nurses.store.kind", string(kind)),
	))
}

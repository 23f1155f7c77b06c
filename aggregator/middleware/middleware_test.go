package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/absmach/fedavg/aggregator/middleware"
	"github.com/absmach/fedavg/aggregator/mocks"
	"github.com/absmach/fedavg/pkg/fl"
	"github.com/go-kit/kit/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var (
	updates = []fl.Update{
		{ParticipantID: "p1", Parameters: fl.ParameterSet[float64]{"b": fl.Scalar(1.0)}},
		{ParticipantID: "p2", Parameters: fl.ParameterSet[float64]{"b": fl.Scalar(3.0)}},
	}
	model = fl.Model{
		Data:     fl.ParameterSet[float64]{"b": fl.Scalar(2.0)},
		Metadata: map[string]any{"round_id": "round-1"},
	}
	errBoom = errors.New("boom")
)

func TestLogging(t *testing.T) {
	t.Parallel()

	cases := []struct {
		desc  string
		err   error
		level string
		msg   string
	}{
		{desc: "success", level: "INFO", msg: "Aggregate round completed successfully"},
		{desc: "failure", err: errBoom, level: "WARN", msg: "Aggregate round failed"},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			svc := new(mocks.Service)
			svc.On("Aggregate", context.Background(), "round-1", updates).Return(model, tc.err)

			_, err := middleware.Logging(logger, svc).Aggregate(context.Background(), "round-1", updates)
			assert.ErrorIs(t, err, tc.err)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.level, entry["level"])
			assert.Equal(t, tc.msg, entry["msg"])
			round, ok := entry["round"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "round-1", round["id"])
			assert.Equal(t, float64(2), round["participants"])
		})
	}
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	counter := &spyCounter{total: new(float64)}
	latency := &spyHistogram{observations: new(int)}
	svc := new(mocks.Service)
	svc.On("Aggregate", context.Background(), "round-1", updates).Return(model, nil).Once()
	svc.On("Aggregate", context.Background(), "round-2", updates).Return(fl.Model{}, errBoom).Once()

	mm := middleware.Metrics(counter, latency, svc)
	_, err := mm.Aggregate(context.Background(), "round-1", updates)
	require.NoError(t, err)
	_, err = mm.Aggregate(context.Background(), "round-2", updates)
	require.ErrorIs(t, err, errBoom)

	assert.Equal(t, float64(2), *counter.total)
	assert.Equal(t, 2, *latency.observations)
	svc.AssertExpectations(t)
}

// Labelled children share the parent's totals.
type spyCounter struct {
	total *float64
	lvs   []string
}

func (c *spyCounter) With(labelValues ...string) metrics.Counter {
	return &spyCounter{total: c.total, lvs: labelValues}
}

func (c *spyCounter) Add(delta float64) {
	*c.total += delta
}

type spyHistogram struct {
	observations *int
	lvs          []string
}

func (h *spyHistogram) With(labelValues ...string) metrics.Histogram {
	return &spyHistogram{observations: h.observations, lvs: labelValues}
}

func (h *spyHistogram) Observe(float64) {
	*h.observations++
}

func TestTracing(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	svc := new(mocks.Service)
	svc.On("Aggregate", mock.Anything, "round-1", updates).Return(model, nil).Once()
	svc.On("Aggregate", mock.Anything, "round-2", updates).Return(fl.Model{}, errBoom).Once()

	tm := middleware.Tracing(tp.Tracer("test"), svc)
	_, err := tm.Aggregate(context.Background(), "round-1", updates)
	require.NoError(t, err)
	_, err = tm.Aggregate(context.Background(), "round-2", updates)
	require.ErrorIs(t, err, errBoom)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "aggregate", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}


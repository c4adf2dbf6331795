package ocr

import (
	"context"
	"image"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// instrumentedEngine records call counts and latency of the wrapped engine.
type instrumentedEngine struct {
	next     Engine
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Instrument wraps next with Prometheus metrics registered on reg.
func Instrument(next Engine, reg prometheus.Registerer) (Engine, error) {
	e := &instrumentedEngine{
		next: next,
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ocr_recognitions_total",
				Help: "Total number of OCR engine calls by outcome.",
			},
			[]string{"engine", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ocr_recognition_duration_seconds",
				Help:    "OCR engine call latency.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"engine"},
		),
	}
	if err := reg.Register(e.total); err != nil {
		return nil, err
	}
	if err := reg.Register(e.duration); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *instrumentedEngine) Name() string { return e.next.Name() }

func (e *instrumentedEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	start := time.Now()
	text, err := e.next.Recognize(ctx, img)
	e.duration.WithLabelValues(e.next.Name()).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	e.total.WithLabelValues(e.next.Name(), outcome).Inc()
	return text, err
}

func (e *instrumentedEngine) Check(ctx context.Context) error { return e.next.Check(ctx) }

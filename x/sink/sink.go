package sink

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/totegamma/unifedi/core"
)

// SlogSink writes every decode warning to a structured logger.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink on logger, or on the default logger when nil
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Warn(w core.Warning) {
	s.logger.Warn(w.Message,
		slog.String("entity", w.Entity),
		slog.String("field", w.Field),
		slog.String("value", w.Value),
		slog.String("module", "decoder"),
	)
}

// PrometheusSink counts decode warnings per entity and field.
type PrometheusSink struct {
	warnings *prometheus.CounterVec
}

// NewPrometheusSink registers unifedi_decode_warnings_total on reg. A counter
// already registered by an earlier sink is shared.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	warnings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "unifedi_decode_warnings_total",
		Help: "Total number of non-fatal anomalies found while decoding",
	}, []string{"entity", "field"})

	if err := reg.Register(warnings); err != nil {
		var registered prometheus.AlreadyRegisteredError
		if !errors.As(err, &registered) {
			return nil, errors.Wrap(err, "failed to register decode warning counter")
		}
		existing, ok := registered.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, errors.New("unifedi_decode_warnings_total is registered with another type")
		}
		warnings = existing
	}

	return &PrometheusSink{warnings: warnings}, nil
}

func (s *PrometheusSink) Warn(w core.Warning) {
	s.warnings.WithLabelValues(w.Entity, w.Field).Inc()
}

// Multi fans a warning out to every sink in order.
type Multi []core.WarningSink

func (m Multi) Warn(w core.Warning) {
	for _, sink := range m {
		if sink != nil {
			sink.Warn(w)
		}
	}
}

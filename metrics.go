package quicwire

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quicwire/quicwire/internal/wire"
)

const metricNamespace = "quicwire"

var (
	framesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "frames_processed_total",
			Help:      "frames processed, by frame type",
		},
		[]string{"frame_type"},
	)
	framesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "frames_rejected_total",
			Help:      "received frames rejected, by reason",
		},
		[]string{"reason"},
	)
	ackECNDiscarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "ack_ecn_discarded_total",
			Help:      "ACK frames whose ECN counts were discarded unprocessed",
		},
	)
)

// RegisterMetrics registers the frame counters with a Prometheus registerer.
// Passing nil uses the default registerer.
func RegisterMetrics(registerer prometheus.Registerer) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	for _, c := range [...]prometheus.Collector{
		framesProcessed,
		framesRejected,
		ackECNDiscarded,
	} {
		if err := registerer.Register(c); err != nil {
			are := prometheus.AlreadyRegisteredError{}
			if !errors.As(err, &are) {
				panic(err)
			}
		}
	}
}

func frameTypeLabel(t wire.FrameType) string {
	return t.String()
}

package metrics

import (
	"context"

	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nftsnap"

// Metrics provides observability for the snap module.
// It consumes committed events and the phase counts observed by the watcher.
type Metrics struct {
	Events           *prometheus.CounterVec
	PhaseTransitions *prometheus.CounterVec
	Snaps            prometheus.Gauge
	ActiveSnaps      prometheus.Gauge
	VisibleSnaps     prometheus.Gauge
	LiveItems        prometheus.Gauge
	WebhookDelivery  *prometheus.CounterVec
}

// New creates a new Metrics instance registered to reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total number of committed snap events by kind",
		}, []string{"kind"}),
		PhaseTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_transitions_total",
			Help:      "Total number of observed lifecycle transitions by target phase",
		}, []string{"phase"}),
		Snaps: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snaps",
			Help:      "Number of snaps in the registry directory",
		}),
		ActiveSnaps: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_snaps",
			Help:      "Number of snaps still open for minting",
		}),
		VisibleSnaps: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "visible_snaps",
			Help:      "Number of snaps not yet expired",
		}),
		LiveItems: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_items",
			Help:      "Number of minted and not yet burned items across all snaps",
		}),
		WebhookDelivery: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "deliveries_total",
			Help:      "Webhook deliveries by result (delivered, failed, dropped)",
		}, []string{"result"}),
	}
}

// Notify counts a committed event.
func (m *Metrics) Notify(_ context.Context, event entity.Event) {
	m.Events.WithLabelValues(event.Kind.String()).Inc()
	switch event.Kind {
	case entity.EventKindSnapMade:
		m.Snaps.Inc()
	case entity.EventKindMinted:
		m.LiveItems.Inc()
	case entity.EventKindBurned:
		m.LiveItems.Dec()
	case entity.EventKindPhaseChanged:
		m.PhaseTransitions.WithLabelValues(event.Data["phase"]).Inc()
	}
}

// ObserveDirectory records a full scan of the registry.
func (m *Metrics) ObserveDirectory(total, active, visible int, liveItems uint64) {
	m.Snaps.Set(float64(total))
	m.ActiveSnaps.Set(float64(active))
	m.VisibleSnaps.Set(float64(visible))
	m.LiveItems.Set(float64(liveItems))
}

func (m *Metrics) ObserveDelivery(result string) {
	m.WebhookDelivery.WithLabelValues(result).Inc()
}

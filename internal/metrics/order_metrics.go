package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics содержит метрики размещения заказов.
type OrderMetrics struct {
	// Счётчики операций
	placementsStarted   prometheus.Counter
	placementsCompleted prometheus.Counter
	placementsRejected  *prometheus.CounterVec

	// Гистограммы
	placementDuration prometheus.Histogram
	orderLines        prometheus.Histogram
}

// NewOrderMetrics создаёт новый экземпляр метрик размещения заказов.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		placementsStarted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "commerce_order_placements_started_total",
			Help: "Total number of order placement attempts",
		}),
		placementsCompleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "commerce_order_placements_completed_total",
			Help: "Total number of successfully placed orders",
		}),
		placementsRejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "commerce_order_placements_rejected_total",
			Help: "Total number of rejected order placements grouped by reason",
		}, []string{"reason"}),
		placementDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "commerce_order_placement_duration_seconds",
			Help:    "Duration of order placement calls in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		orderLines: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "commerce_order_lines",
			Help:    "Number of lines per successfully placed order",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),
	}
}

// RecordPlacementStarted фиксирует начало попытки размещения.
func (m *OrderMetrics) RecordPlacementStarted() {
	m.placementsStarted.Inc()
}

// RecordPlacementCompleted фиксирует успешное размещение и размер заказа.
func (m *OrderMetrics) RecordPlacementCompleted(lines int) {
	m.placementsCompleted.Inc()
	m.orderLines.Observe(float64(lines))
}

// RecordPlacementRejected фиксирует отказ с причиной.
func (m *OrderMetrics) RecordPlacementRejected(reason string) {
	m.placementsRejected.WithLabelValues(reason).Inc()
}

// RecordPlacementDuration фиксирует длительность вызова размещения.
func (m *OrderMetrics) RecordPlacementDuration(d time.Duration) {
	m.placementDuration.Observe(d.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

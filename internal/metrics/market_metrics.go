package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MarketMetrics содержит метрики операций маркетплейса.
type MarketMetrics struct {
	// Счётчики workflow создания заказа
	ordersCreated  prometheus.Counter
	ordersRejected prometheus.Counter

	// Гистограммы времени выполнения
	requestDuration *prometheus.HistogramVec

	// Gauge для запросов в обработке
	inFlightRequests prometheus.Gauge
}

// NewMarketMetrics создаёт новый экземпляр метрик сервиса.
func NewMarketMetrics() *MarketMetrics {
	return newMarketMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newMarketMetricsWithRegisterer(registerer prometheus.Registerer) *MarketMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &MarketMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "marketsvc_orders_created_total",
			Help: "Total number of orders committed successfully",
		}),
		ordersRejected: registerCounter(registerer, prometheus.CounterOpts{
			Name: "marketsvc_orders_rejected_total",
			Help: "Total number of order creation attempts rejected",
		}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "marketsvc_request_duration_seconds",
			Help:    "Duration of service operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"operation"}),
		inFlightRequests: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "marketsvc_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		}),
	}
}

// RecordOrderCreated увеличивает счётчик успешно созданных заказов.
func (m *MarketMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordOrderRejected увеличивает счётчик отклонённых заказов.
func (m *MarketMetrics) RecordOrderRejected() {
	m.ordersRejected.Inc()
}

// ObserveOperation фиксирует длительность операции сервиса.
func (m *MarketMetrics) ObserveOperation(operation string, started time.Time) {
	m.requestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// RequestStarted/RequestFinished двигают gauge активных HTTP-запросов.
func (m *MarketMetrics) RequestStarted()  { m.inFlightRequests.Inc() }
func (m *MarketMetrics) RequestFinished() { m.inFlightRequests.Dec() }

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

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

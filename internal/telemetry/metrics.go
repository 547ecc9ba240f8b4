// Package telemetry wires Prometheus and OpenTelemetry metrics for the storefront.
package telemetry

import (
	"time"

	"storefront/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

// Metrics holds the application collectors. Its methods satisfy the recorder
// interfaces of the checkout use cases and of the notification dispatcher.
type Metrics struct {
	ordersCreated      prometheus.Counter
	orderStatusChanges *prometheus.CounterVec
	ordersDeleted      prometheus.Counter
	checkoutCollisions prometheus.Counter
	notifications      *prometheus.CounterVec
	notificationTime   prometheus.Histogram
	ordersByStatus     *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders created by checkout",
		}),
		orderStatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_changes_total",
			Help:      "Total number of admin status changes",
		}, []string{"transition"}),
		ordersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_deleted_total",
			Help:      "Total number of orders deleted by the admin",
		}),
		checkoutCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_tracking_code_collisions_total",
			Help:      "Total number of generated tracking codes that were already taken",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Total number of notifications handed to the mail relay",
		}, []string{"result"}),
		notificationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "notification_send_duration_seconds",
			Help:      "Time spent delivering one notification to the mail relay",
			Buckets:   prometheus.DefBuckets,
		}),
		ordersByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders",
			Help:      "Number of stored orders by status",
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.ordersCreated,
		m.orderStatusChanges,
		m.ordersDeleted,
		m.checkoutCollisions,
		m.notifications,
		m.notificationTime,
		m.ordersByStatus,
	)

	return m
}

// RegisterQueueDepth exposes the dispatcher queue length as a gauge.
func RegisterQueueDepth(reg prometheus.Registerer, length func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Notifications waiting for the dispatcher",
	}, func() float64 {
		return float64(length())
	}))
}

func (m *Metrics) OrderCreated() {
	m.ordersCreated.Inc()
}

func (m *Metrics) OrderStatusChanged(transition string) {
	m.orderStatusChanges.WithLabelValues(transition).Inc()
}

func (m *Metrics) OrderDeleted() {
	m.ordersDeleted.Inc()
}

func (m *Metrics) CheckoutCollision() {
	m.checkoutCollisions.Inc()
}

func (m *Metrics) NotificationSent(elapsed time.Duration) {
	m.notifications.WithLabelValues("sent").Inc()
	m.notificationTime.Observe(elapsed.Seconds())
}

func (m *Metrics) NotificationFailed(elapsed time.Duration) {
	m.notifications.WithLabelValues("failed").Inc()
	m.notificationTime.Observe(elapsed.Seconds())
}

// SetOrdersByStatus replaces the per-status order gauge. Statuses missing from
// counts are reported as zero.
func (m *Metrics) SetOrdersByStatus(counts map[order.Status]int) {
	for _, s := range order.Statuses() {
		m.ordersByStatus.WithLabelValues(s.String()).Set(float64(counts[s]))
	}
}

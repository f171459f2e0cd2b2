package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arena_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_bookings_total",
			Help: "Total number of bookings created, by initial status",
		},
		[]string{"status", "recurring"},
	)

	BookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_booking_transitions_total",
			Help: "Total number of booking status changes",
		},
		[]string{"to"},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "arena_booking_conflicts_total",
			Help: "Total number of booking requests refused because of a conflict",
		},
	)

	BlockedSlotsDerived = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "arena_blocked_slots_derived",
			Help:    "Number of blocked slots derived per calendar request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	CalendarRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arena_calendar_render_duration_seconds",
			Help:    "Time spent building a calendar view",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"view"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "arena_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	InvoicesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_invoices_total",
			Help: "Total number of invoice status changes",
		},
		[]string{"status"},
	)

	InvoicedAmountCents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "arena_invoiced_amount_cents_total",
			Help: "Total amount invoiced in cents",
		},
	)

	UserDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_user_decisions_total",
			Help: "Total number of account registrations and admin decisions",
		},
		[]string{"status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string, recurring bool) {
	label := "false"
	if recurring {
		label = "true"
	}
	BookingsTotal.WithLabelValues(status, label).Inc()
}

func RecordBookingTransition(to string, count int) {
	BookingTransitionsTotal.WithLabelValues(to).Add(float64(count))
}

func RecordBookingConflict() {
	BookingConflictsTotal.Inc()
}

func RecordBlockedSlots(n int) {
	BlockedSlotsDerived.Observe(float64(n))
}

func RecordCalendarRender(view string, seconds float64) {
	CalendarRenderDuration.WithLabelValues(view).Observe(seconds)
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordInvoice(status string, amountCents int64) {
	InvoicesTotal.WithLabelValues(status).Inc()
	if status == "unpaid" && amountCents > 0 {
		InvoicedAmountCents.Add(float64(amountCents))
	}
}

func RecordUserDecision(status string) {
	UserDecisionsTotal.WithLabelValues(status).Inc()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the ledger mutations, exposed at /metrics.
var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gambo_signups_total",
		Help: "Total number of successful signups",
	})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gambo_bookings_created_total",
		Help: "Total number of bookings created",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gambo_bookings_cancelled_total",
		Help: "Total number of bookings cancelled",
	})

	EnrollmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gambo_premium_enrollments_created_total",
		Help: "Total number of premium team enrollments created",
	})

	ExportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gambo_booking_exports_total",
		Help: "Total number of CSV booking exports served",
	})
)

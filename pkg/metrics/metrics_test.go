package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BookingOutcomes(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "studio-booking")

	m.IncBooking(OutcomeCreated)
	m.IncBooking(OutcomeCreated)
	m.IncBooking(OutcomeUnavailable)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookings.WithLabelValues(OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues(OutcomeUnavailable)))
}

func TestMetrics_DBErrorsCounted(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "studio-booking")

	m.ObserveDBQuery("update", time.Millisecond, nil)
	m.ObserveDBQuery("update", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("update")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBooking(OutcomeCreated)
		m.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, time.Second)
		m.IncNotificationFailure("booking.created")
	})
}

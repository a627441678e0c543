package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
	"github.com/m04kA/SMC-StudioBookingService/pkg/metrics"
)

type observation struct {
	method string
	path   string
	status int
}

type fakeMetrics struct {
	mu   sync.Mutex
	seen []observation
}

func (f *fakeMetrics) ObserveHTTP(method, path string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, observation{method: method, path: path, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/public/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/public/bookings/6f1c1f3e-8d0a-4a53-9a57-4a1f0f0f0f0f", nil))

	require.Len(t, m.seen, 1)
	assert.Equal(t, observation{method: http.MethodGet, path: "/public/bookings/{bookingId}", status: http.StatusNotFound}, m.seen[0])
}

func TestMetricsMiddleware_Prometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewWithRegisterer(reg, "studio-booking")

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(collector))
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {}).Methods(http.MethodGet)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	expected := `
# HELP http_requests_total Total number of HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="GET",path="/health",service="studio-booking",status="200"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"))
}

func TestRecovery(t *testing.T) {
	handler := Recovery(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/public/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"kind":"internal","detail":"Internal server error"}`, w.Body.String())
}

func newLimitedHandler(rl *RateLimiter) http.Handler {
	return rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
}

func request(ip string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/public/bookings", nil)
	r.RemoteAddr = ip + ":53211"
	return r
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(1, 2, time.Hour, logger.NewNop())
	handler := newLimitedHandler(rl)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, request("10.0.0.1"))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, request("10.0.0.1"))
	assert.JSONEq(t, `{"kind":"rate_limited","detail":"Rate limit exceeded. Try again later."}`, w.Body.String())

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, request("10.0.0.2"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateLimiter_SpoofedHeadersShareBucket(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Hour, logger.NewNop())
	handler := newLimitedHandler(rl)

	passed := 0
	for i := 0; i < 50; i++ {
		r := request("198.51.100.20")
		r.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		r.Header.Set("X-Real-IP", fmt.Sprintf("10.0.1.%d", i))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code == http.StatusCreated {
			passed++
		}
	}

	assert.Equal(t, 1, passed)
	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "198.51.100.20")
}

func TestRateLimiter_TrustedProxyForwardsClient(t *testing.T) {
	rl, err := NewRateLimiter(1, 1, time.Hour, logger.NewNop()).
		WithTrustedProxies([]string{"127.0.0.1", "10.0.0.0/8"})
	require.NoError(t, err)
	handler := newLimitedHandler(rl)

	first := request("127.0.0.1")
	first.Header.Set("X-Forwarded-For", "203.0.113.7, 10.1.2.3")
	second := request("127.0.0.1")
	second.Header.Set("X-Forwarded-For", "198.51.100.4")
	repeat := request("127.0.0.1")
	repeat.Header.Set("X-Real-IP", "198.51.100.4")

	codes := make([]int, 0, 3)
	for _, r := range []*http.Request{first, second, repeat} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
	assert.Contains(t, rl.limiters, "203.0.113.7")
	assert.Contains(t, rl.limiters, "198.51.100.4")
	assert.NotContains(t, rl.limiters, "127.0.0.1")
}

func TestRateLimiter_InvalidTrustedProxy(t *testing.T) {
	_, err := NewRateLimiter(1, 1, time.Hour, logger.NewNop()).WithTrustedProxies([]string{"proxy.local"})
	assert.Error(t, err)

	_, err = NewRateLimiter(1, 1, time.Hour, logger.NewNop()).WithTrustedProxies([]string{"10.0.0.0/33"})
	assert.Error(t, err)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(60, 1, 10*time.Minute, logger.NewNop())
	rl.now = func() time.Time { return now }

	rl.getLimiter("10.0.0.1")
	now = now.Add(5 * time.Minute)
	rl.getLimiter("10.0.0.2")
	now = now.Add(6 * time.Minute)

	assert.Equal(t, 1, rl.Cleanup())
	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

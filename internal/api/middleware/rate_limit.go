package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
)

const msgRateLimited = "Rate limit exceeded. Try again later."

// RateLimiter ограничивает частоту запросов с одного адреса (token bucket на IP)
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	logger   Logger
	now      func() time.Time
	mu       sync.Mutex
	limiters map[string]*clientLimiter

	trustedProxies []*net.IPNet
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает ограничитель: perMinute запросов в минуту, burst подряд
func NewRateLimiter(perMinute, burst int, idleTTL time.Duration, logger Logger) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &RateLimiter{
		limit:    limit,
		burst:    burst,
		idleTTL:  idleTTL,
		logger:   logger,
		now:      time.Now,
		limiters: make(map[string]*clientLimiter),
	}
}

// WithTrustedProxies задает прокси, которым разрешено передавать адрес клиента
// в X-Forwarded-For / X-Real-IP. Без них ключом всегда служит RemoteAddr
func (rl *RateLimiter) WithTrustedProxies(entries []string) (*RateLimiter, error) {
	nets, err := parseTrustedProxies(entries)
	if err != nil {
		return nil, err
	}
	rl.trustedProxies = nets
	return rl, nil
}

// getLimiter возвращает ограничитель адреса, создавая его при первом запросе
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cl, ok := rl.limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// Cleanup удаляет ограничители адресов, не присылавших запросы дольше idleTTL
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	cutoff := rl.now().Add(-rl.idleTTL)
	for ip, cl := range rl.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.limiters, ip)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически вызывает Cleanup до закрытия stopCh
func (rl *RateLimiter) RunCleanup(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Cleanup()
		case <-stopCh:
			return
		}
	}
}

// Middleware отвечает 429, если лимит адреса исчерпан
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := rl.clientIP(r)
			if !rl.getLimiter(ip).Allow() {
				rl.logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
				handlers.RespondTooManyRequests(w, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

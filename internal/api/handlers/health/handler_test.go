package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"healthy", nil, http.StatusOK, `{"status":"healthy"}`},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, `{"status":"unhealthy"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(pingerFunc(func(context.Context) error { return tt.err }), logger.NewNop())

			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

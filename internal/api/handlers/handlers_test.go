package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"customer_email" validate:"required,email"`
	Name  string `json:"customer_first_name" validate:"required,max=5"`
}

func TestRespondError_Payload(t *testing.T) {
	w := httptest.NewRecorder()
	RespondConflict(w, "This time slot is not available for the selected package")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, KindConflict, body.Kind)
	assert.Equal(t, "This time slot is not available for the selected package", body.Detail)
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"kind":"internal","detail":"Internal server error"}`, w.Body.String())
}

func TestRespondMessage(t *testing.T) {
	w := httptest.NewRecorder()
	RespondMessage(w, "Booking cancelled successfully")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Booking cancelled successfully","status":"success"}`, w.Body.String())
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"valid", `{"customer_email":"ana@example.com","customer_first_name":"Ana"}`, ""},
		{"missing email", `{"customer_first_name":"Ana"}`, "customer_email is required"},
		{"bad email", `{"customer_email":"nope","customer_first_name":"Ana"}`, "customer_email must be a valid email address"},
		{"too long", `{"customer_email":"ana@example.com","customer_first_name":"Anastasia"}`, "customer_first_name must be at most 5"},
		{"malformed", `{"customer_email":`, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst sampleRequest

			err := DecodeAndValidate(r, &dst)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, ValidationMessage(err))
		})
	}
}

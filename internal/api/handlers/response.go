package handlers

import (
	"encoding/json"
	"net/http"
)

// Виды ошибок в теле ответа
const (
	KindNotFound       = "not_found"
	KindUnavailable    = "unavailable"
	KindConflict       = "conflict"
	KindInvalidRequest = "invalid_request"
	KindForbidden      = "forbidden"
	KindInvalidState   = "invalid_state"
	KindRateLimited    = "rate_limited"
	KindInternal       = "internal"
)

const msgInternalError = "Internal server error"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// MessageResponse тело ответа с сообщением
type MessageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с видом и сообщением
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{Kind: kind, Detail: message})
}

// RespondMessage отправляет сообщение об успешной операции
func RespondMessage(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, MessageResponse{Message: message, Status: "success"})
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, KindNotFound, message)
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, KindInvalidRequest, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, KindForbidden, message)
}

// RespondUnavailable слот заполнен, выключен или в прошлом (400)
func RespondUnavailable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, KindUnavailable, message)
}

// RespondConflict слот закреплен за другим пакетом (400)
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, KindConflict, message)
}

// RespondInvalidState недопустимый переход статуса (400)
func RespondInvalidState(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, KindInvalidState, message)
}

func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, KindRateLimited, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, KindInternal, msgInternalError)
}

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/YoussefKhattab111/microblog/internal/service"
	"github.com/YoussefKhattab111/microblog/internal/store"
)

type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, status int, payload Payload) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondData(w http.ResponseWriter, data any) {
	respond(w, http.StatusOK, Payload{Success: true, Data: data})
}

func respondErr(w http.ResponseWriter, err error) {
	respond(w, GetCode(err), Payload{Success: false, Message: err.Error()})
}

// GetCode maps core errors onto HTTP status codes.
func GetCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrEmptyPost),
		errors.Is(err, service.ErrEmptyComment),
		errors.Is(err, service.ErrQueryTooShort):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrCorrupted):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pulse-keeper/internal/service"
	"github.com/MKhiriev/pulse-keeper/internal/store"
)

// errorStatusMap pairs service and storage sentinel errors with the HTTP
// status code the API answers with.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCursor:           http.StatusBadRequest,
	service.ErrWrongSecret:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	store.ErrDeviceNotFound:            http.StatusNotFound,
	store.ErrMeasurementNotFound:       http.StatusNotFound,
	store.ErrDeviceAlreadyExists:       http.StatusConflict,
	service.ErrDeviceQuotaExceeded:     http.StatusInsufficientStorage,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	store.ErrExecutingStatement:        http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:          http.StatusInternalServerError,
	store.ErrScanningRows:              http.StatusInternalServerError,
}

// statusFromError maps err to an HTTP status code, unwrapping through the
// error chain. Unknown errors answer as 500.
func statusFromError(err error) int {
	for sentinel, status := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return http.StatusInternalServerError
}

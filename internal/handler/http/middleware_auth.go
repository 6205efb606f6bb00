package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/utils"
)

// auth validates the bearer session token on protected routes and stores the
// authenticated device identifier in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromAuthHeader(r)
		if err != nil {
			log.Warn().Err(err).Msg("rejected request without a valid bearer token")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		deviceID, err := h.services.DeviceService.ParseToken(r.Context(), token)
		if err != nil {
			log.Warn().Err(err).Msg("rejected request with an invalid session token")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		ctx := context.WithValue(r.Context(), utils.DeviceIDCtxKey, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from an `Authorization: Bearer
// <token>` header.
func getTokenFromAuthHeader(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidAuthorizationHeader
	}

	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}

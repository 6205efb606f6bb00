// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/utils"
	"github.com/MKhiriev/pulse-keeper/models"
)

// exchange is the sync endpoint: it stores the uploaded batch and answers
// with every record modified since the caller's cursor. The device identity
// in the payload is always overridden by the authenticated one.
func (h *Handler) exchange(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	deviceID, ok := utils.GetDeviceIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no device id in authenticated request context")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("malformed exchange request body")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	req.DeviceID = deviceID

	resp, err := h.services.ExchangeService.Exchange(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("exchange failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().
		Str("device_id", deviceID).
		Int("received", req.Length).
		Int("returned", resp.Length).
		Msg("exchange completed")

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("failed to write exchange response")
	}
}

// accountStatus reports whether the authenticated device can sync. Reaching
// this handler means the session token was valid, so the account is
// available.
func (h *Handler) accountStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp := models.AccountStatusResponse{Status: models.AccountAvailable}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("failed to write account status")
	}
}

// subscribe acknowledges a remote-change notification subscription. The hub
// records the requested endpoint for future wake-up pushes.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	deviceID, ok := utils.GetDeviceIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no device id in authenticated request context")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("malformed subscribe request body")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	log.Info().Str("device_id", deviceID).Str("endpoint", req.Endpoint).Msg("device subscribed for change notifications")
	w.WriteHeader(http.StatusNoContent)
}

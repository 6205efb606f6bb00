// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/utils"
	"github.com/MKhiriev/pulse-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// registerDevice creates a device record on the hub and answers with a
// ready-to-use session so the device does not need a separate login call.
func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("malformed register request body")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	device, err := h.services.DeviceService.RegisterDevice(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("device_id", req.DeviceID).Msg("device registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeSession(w, r, device)
}

// loginDevice verifies the device secret and issues a fresh session token.
func (h *Handler) loginDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("malformed login request body")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	device, err := h.services.DeviceService.Login(r.Context(), req)
	if err != nil {
		log.Warn().Err(err).Str("device_id", req.DeviceID).Msg("device login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeSession(w, r, device)
}

func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, device models.Device) {
	log := logger.FromRequest(r)

	token, err := h.services.DeviceService.CreateToken(r.Context(), device)
	if err != nil {
		log.Error().Err(err).Str("device_id", device.DeviceID).Msg("session token creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	session := models.DeviceSession{
		DeviceID: device.DeviceID,
		Token:    token.SignedString,
	}
	if claims, ok := token.Token.Claims.(*jwt.RegisteredClaims); ok && claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	if _, err := utils.WriteJSON(w, session, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("failed to write device session")
	}
}

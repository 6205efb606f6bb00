// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/pulse-keeper/internal/config"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/store"
	"github.com/MKhiriev/pulse-keeper/internal/utils"
	"github.com/MKhiriev/pulse-keeper/models"
)

// Argon2id parameters for device-secret hashing.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// deviceService is the concrete implementation of DeviceService. It hashes
// device secrets with Argon2id and issues JWT session tokens.
type deviceService struct {
	devices store.DeviceRepository

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewDeviceService constructs a DeviceService wired to the device registry
// and populated with token parameters from cfg. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewDeviceService(devices store.DeviceRepository, cfg config.HubAuth, log *logger.Logger) DeviceService {
	return &deviceService{
		devices:       devices,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}
}

// RegisterDevice creates a device record keyed by its stable identifier.
//
// Returns ErrInvalidDataProvided when the identifier or secret is empty, or
// a wrapped storage error (see store.ErrDeviceAlreadyExists) when the
// identifier is taken.
func (s *deviceService) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	log := logger.FromContext(ctx)

	if req.DeviceID == "" || req.Secret == "" {
		log.Error().Str("device_id", req.DeviceID).Msg("invalid device registration data")
		return models.Device{}, ErrInvalidDataProvided
	}

	hash, err := hashSecret(req.Secret)
	if err != nil {
		return models.Device{}, fmt.Errorf("hash device secret: %w", err)
	}

	device, err := s.devices.CreateDevice(ctx, models.Device{
		DeviceID:   req.DeviceID,
		Name:       req.Name,
		SecretHash: hash,
	})
	if err != nil {
		log.Err(err).Str("device_id", req.DeviceID).Msg("device registration failed")
		return models.Device{}, fmt.Errorf("device registration failed: %w", err)
	}

	return device, nil
}

// Login verifies the presented secret against the stored Argon2id hash.
//
// Returns ErrInvalidDataProvided for empty credentials, a wrapped storage
// error (see store.ErrDeviceNotFound) for unknown identifiers, or
// ErrWrongSecret when the secret does not match.
func (s *deviceService) Login(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	log := logger.FromContext(ctx)

	if req.DeviceID == "" || req.Secret == "" {
		log.Error().Str("device_id", req.DeviceID).Msg("invalid device login data")
		return models.Device{}, ErrInvalidDataProvided
	}

	device, err := s.devices.FindDevice(ctx, req.DeviceID)
	if err != nil {
		log.Err(err).Str("device_id", req.DeviceID).Msg("device lookup failed")
		return models.Device{}, fmt.Errorf("device lookup failed: %w", err)
	}

	if !verifySecret(req.Secret, device.SecretHash) {
		log.Error().Str("device_id", req.DeviceID).Msg("wrong device secret")
		return models.Device{}, ErrWrongSecret
	}

	return device, nil
}

func (s *deviceService) CreateToken(ctx context.Context, device models.Device) (models.Token, error) {
	token, err := utils.GenerateDeviceToken(s.tokenIssuer, device.DeviceID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken normalises every validation failure to ErrTokenIsExpiredOrInvalid
// so callers do not need to inspect low-level JWT errors.
func (s *deviceService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	deviceID, err := utils.ValidateDeviceToken(tokenString, s.tokenSignKey)
	if err != nil {
		return "", ErrTokenIsExpiredOrInvalid
	}

	return deviceID, nil
}

// hashSecret derives an Argon2id hash and encodes it together with its salt
// as "base64(salt)$base64(hash)".
func hashSecret(secret string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(hash), nil
}

// verifySecret re-derives the hash with the stored salt and compares in
// constant time.
func verifySecret(secret, encoded string) bool {
	parts := strings.SplitN(encoded, "$", 2)
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package background hands out single-use execution tokens that bound how
// long deferred work may run after the app resigns the foreground. Every
// token is released exactly once: either by the holder finishing its work
// or by the budget timer firing the expiration handler.
package background

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
)

var ErrTokenAlreadyActive = errors.New("a background execution token is already active")

// Token represents one granted slice of background execution time.
// Finish is safe to call multiple times and from multiple goroutines;
// only the first call (or the budget expiring, whichever comes first)
// releases the token.
type Token struct {
	name   string
	ctx    context.Context
	cancel context.CancelFunc

	once    sync.Once
	timer   *time.Timer
	release func()
}

// Context is cancelled when the token is finished or its budget expires.
// Work holding the token should pass it down to every blocking call.
func (t *Token) Context() context.Context {
	return t.ctx
}

// Finish releases the token. The first caller wins; later calls and a
// later timer fire are no-ops.
func (t *Token) Finish() {
	t.once.Do(func() {
		if t.timer != nil {
			t.timer.Stop()
		}
		t.cancel()
		t.release()
	})
}

// expire is the timer path: it runs the expiration handler, then releases
// through the same once guard as Finish.
func (t *Token) expire(onExpire func()) {
	t.once.Do(func() {
		if onExpire != nil {
			onExpire()
		}
		t.cancel()
		t.release()
	})
}

// Manager grants at most one active token at a time.
type Manager struct {
	budget time.Duration
	logger *logger.Logger

	mu     sync.Mutex
	active *Token
}

func NewManager(budget time.Duration, log *logger.Logger) *Manager {
	return &Manager{budget: budget, logger: log}
}

// Begin grants a new execution token with the manager's budget. onExpire
// runs on the timer goroutine when the budget elapses before Finish is
// called. Returns ErrTokenAlreadyActive while a previous token is live.
func (m *Manager) Begin(name string, onExpire func()) (*Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil {
		return nil, ErrTokenAlreadyActive
	}

	ctx, cancel := context.WithCancel(context.Background())
	token := &Token{
		name:   name,
		ctx:    ctx,
		cancel: cancel,
	}
	token.release = func() {
		m.mu.Lock()
		if m.active == token {
			m.active = nil
		}
		m.mu.Unlock()
		m.logger.Debug().Str("task", token.name).Msg("execution token released")
	}

	if m.budget > 0 {
		token.timer = time.AfterFunc(m.budget, func() {
			m.logger.Warn().Str("task", token.name).Dur("budget", m.budget).Msg("execution budget expired")
			token.expire(onExpire)
		})
	}

	m.active = token
	m.logger.Debug().Str("task", name).Dur("budget", m.budget).Msg("execution token granted")
	return token, nil
}

// FinishActive releases the live token, if any, cancelling the work that
// holds it. The expiration handler does not run; this is the cooperative
// finish path, taken when the app returns to the foreground and deferred
// work should yield to it. Reports whether a token was live.
func (m *Manager) FinishActive() bool {
	m.mu.Lock()
	token := m.active
	m.mu.Unlock()

	if token == nil {
		return false
	}
	token.Finish()
	return true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/mock"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount int
}

func (m *countingWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on an empty workers list.
	NewWorkers().Run()
}

func TestSyncWorker_TriggersOnInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mock.NewMockSyncOrchestrator(ctrl)

	synced := make(chan struct{})
	orchestrator.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) error {
		select {
		case synced <- struct{}{}:
		default:
		}
		return nil
	}).MinTimes(1)

	w := NewSyncWorker(context.Background(), orchestrator, 10*time.Millisecond, logger.Nop())
	w.Run()
	defer w.Stop()

	select {
	case <-synced:
	case <-time.After(time.Second):
		t.Fatal("worker never triggered a sync")
	}
}

func TestSyncWorker_StopHaltsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mock.NewMockSyncOrchestrator(ctrl)
	orchestrator.EXPECT().Sync(gomock.Any()).Return(nil).AnyTimes()

	w := NewSyncWorker(context.Background(), orchestrator, 5*time.Millisecond, logger.Nop())
	w.Run()

	time.Sleep(20 * time.Millisecond)
	w.Stop()

	// Stop must be idempotent.
	w.Stop()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker counts its runs and blocks until the context is done.
type blockingWorker struct {
	runCount atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runCount.Add(1)
	<-ctx.Done()
	return nil
}

type failingWorker struct {
	err error
}

func (f *failingWorker) Run(context.Context) error {
	return f.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(t.Context()))
	assert.NoError(t, (&Workers{}).Run(t.Context()))
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &blockingWorker{}

	err := NewWorkers(blocking, &failingWorker{err: boom}).Run(t.Context())

	require.ErrorIs(t, err, boom)
}

type fakeStats struct {
	calls atomic.Int32
}

func (f *fakeStats) Stats() sql.DBStats {
	n := f.calls.Add(1)
	return sql.DBStats{OpenConnections: int(n), InUse: 1, Idle: int(n) - 1}
}

func TestDBStatsWorker_RecordsUntilCancelled(t *testing.T) {
	src := &fakeStats{}
	w := NewDBStatsWorker(src, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return src.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.DatabaseConnections.WithLabelValues("open")), 3.0)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DatabaseConnections.WithLabelValues("in_use")))
}

func TestDBStatsWorker_Disabled(t *testing.T) {
	src := &fakeStats{}

	require.NoError(t, NewDBStatsWorker(src, 0, logger.Nop()).Run(t.Context()))
	assert.Zero(t, src.calls.Load())
}

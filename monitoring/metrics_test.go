package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_Stop(t *testing.T) {
	db, _ := redismock.NewClientMock()
	monitor := NewMonitor(db)

	done := make(chan struct{})
	go func() {
		monitor.Stop()
		monitor.Stop() // idempotent
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestMonitor_CollectCacheMetrics(t *testing.T) {
	db, mock := redismock.NewClientMock()
	monitor := &Monitor{redis: db, stop: make(chan struct{})}

	mock.ExpectKeys("event:slug:*").SetVal([]string{
		"event:slug:dev-conf-2025",
		"event:slug:backend-meetup",
	})

	monitor.collectCacheMetrics(context.Background())

	assert.Equal(t, 2.0, testutil.ToFloat64(cachedEvents))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMonitor_CollectCacheMetricsRedisFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	monitor := &Monitor{redis: db, stop: make(chan struct{})}

	cachedEvents.Set(7)
	mock.ExpectKeys("event:slug:*").SetErr(assert.AnError)

	// A failed scan leaves the gauge at its last known value.
	monitor.collectCacheMetrics(context.Background())
	assert.Equal(t, 7.0, testutil.ToFloat64(cachedEvents))
}

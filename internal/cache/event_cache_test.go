package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-system/models"
)

func testEvent() *models.Event {
	return &models.Event{
		ID:    "abc123def456ghi",
		Title: "Dev Conf 2025",
		Slug:  "dev-conf-2025",
		Date:  "2025-03-05",
		Time:  "21:30",
		Tags:  []string{"go"},
	}
}

func TestEventCache_SetAndGet(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	eventCache := NewEventCache(redisClient, 5*time.Minute)
	event := testEvent()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	redisMock.ExpectSet("event:slug:dev-conf-2025", data, 5*time.Minute).SetVal("OK")
	require.NoError(t, eventCache.Set(context.Background(), event))

	redisMock.ExpectGet("event:slug:dev-conf-2025").SetVal(string(data))
	got := eventCache.Get(context.Background(), "dev-conf-2025")
	require.NotNil(t, got)
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, event.Tags, got.Tags)

	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestEventCache_GetMiss(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	eventCache := NewEventCache(redisClient, 5*time.Minute)

	redisMock.ExpectGet("event:slug:unknown").RedisNil()
	assert.Nil(t, eventCache.Get(context.Background(), "unknown"))
}

func TestEventCache_GetErrorDegradesToMiss(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	eventCache := NewEventCache(redisClient, 5*time.Minute)

	redisMock.ExpectGet("event:slug:dev-conf-2025").SetErr(assert.AnError)
	assert.Nil(t, eventCache.Get(context.Background(), "dev-conf-2025"))
}

func TestEventCache_GetCorruptPayloadDegradesToMiss(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	eventCache := NewEventCache(redisClient, 5*time.Minute)

	redisMock.ExpectGet("event:slug:dev-conf-2025").SetVal("{not json")
	assert.Nil(t, eventCache.Get(context.Background(), "dev-conf-2025"))
}

func TestEventCache_Invalidate(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	eventCache := NewEventCache(redisClient, 5*time.Minute)

	redisMock.ExpectDel("event:slug:dev-conf-2025").SetVal(1)
	require.NoError(t, eventCache.Invalidate(context.Background(), "dev-conf-2025"))
	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestEventCache_InvalidateEmptySlugIsNoop(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	eventCache := NewEventCache(redisClient, 5*time.Minute)

	require.NoError(t, eventCache.Invalidate(context.Background(), ""))
	require.NoError(t, redisMock.ExpectationsWereMet())
}

//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	rediscontainer "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

func TestRedisSummaryCache(t *testing.T) {
	ctx := context.Background()
	client := newTestRedis(t, ctx)
	summary := domain.TimesheetSummary{
		Timesheet:          domain.Timesheet{ID: "4", WeekNumber: 4, Status: domain.TimesheetStatusCompleted, TotalHours: 40},
		EntryCount:         8,
		LoggedHours:        32,
		WeeklyTargetHours:  40,
		ProgressPercentage: 80,
		Days:               []domain.DayGroup{{Date: "2024-01-21", Hours: 8, Entries: []domain.TimesheetEntry{{ID: "e1", TimesheetID: "4", Hours: 4}}}},
	}

	t.Run("set get invalidate", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		c := NewRedisSummaryCache(client, time.Minute)

		_, ok, err := c.Get(ctx, "4")
		require.NoError(t, err)
		assert.False(t, ok)

		gen, err := c.Generation(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, int64(0), gen)

		require.NoError(t, c.Set(ctx, summary, gen))
		got, ok, err := c.Get(ctx, "4")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, summary, *got)

		ttl, err := client.PTTL(ctx, SummaryKey("4")).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)

		require.NoError(t, c.Invalidate(ctx, "4"))
		_, ok, err = c.Get(ctx, "4")
		require.NoError(t, err)
		assert.False(t, ok)

		gen, err = c.Generation(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, int64(1), gen)
	})

	t.Run("set with an outdated generation is discarded", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		c := NewRedisSummaryCache(client, 0)

		gen, err := c.Generation(ctx, "4")
		require.NoError(t, err)
		require.NoError(t, c.Invalidate(ctx, "4"))

		require.NoError(t, c.Set(ctx, summary, gen))
		_, ok, err := c.Get(ctx, "4")
		require.NoError(t, err)
		assert.False(t, ok)

		gen, err = c.Generation(ctx, "4")
		require.NoError(t, err)
		require.NoError(t, c.Set(ctx, summary, gen))
		_, ok, err = c.Get(ctx, "4")
		require.NoError(t, err)
		assert.True(t, ok)

		exists, err := client.Exists(ctx, SummaryKey("4")).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)
	})

	t.Run("generations are per timesheet", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		c := NewRedisSummaryCache(client, time.Minute)

		require.NoError(t, c.Invalidate(ctx, "3"))
		gen, err := c.Generation(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, int64(0), gen)
	})
}

func newTestRedis(t *testing.T, ctx context.Context) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	var opts *redis.Options
	if addr != "" {
		opts = &redis.Options{Addr: addr}
	} else {
		testcontainers.SkipIfProviderIsNotHealthy(t)

		ctr, err := rediscontainer.Run(ctx, "redis:7-alpine")
		require.NoError(t, err)
		t.Cleanup(func() { _ = ctr.Terminate(ctx) })

		uri, err := ctr.ConnectionString(ctx)
		require.NoError(t, err)
		opts, err = redis.ParseURL(uri)
		require.NoError(t, err)
	}

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

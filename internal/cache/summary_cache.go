package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

const (
	summaryKeyPrefix    = "timesheet:summary:"
	generationKeyPrefix = "timesheet:summary-gen:"
)

// SummaryCache stores computed timesheet summaries.
//
// Every Invalidate bumps a per-timesheet generation. A summary computed after
// reading generation g is stored by Set only while the generation is still g,
// so a summary built from entries that changed mid-computation is discarded.
type SummaryCache interface {
	Get(ctx context.Context, timesheetID string) (*domain.TimesheetSummary, bool, error)
	Generation(ctx context.Context, timesheetID string) (int64, error)
	Set(ctx context.Context, summary domain.TimesheetSummary, generation int64) error
	Invalidate(ctx context.Context, timesheetID string) error
}

// NoopSummaryCache never stores anything.
type NoopSummaryCache struct{}

// Get always misses.
func (NoopSummaryCache) Get(context.Context, string) (*domain.TimesheetSummary, bool, error) {
	return nil, false, nil
}

// Generation is always zero.
func (NoopSummaryCache) Generation(context.Context, string) (int64, error) { return 0, nil }

// Set does nothing.
func (NoopSummaryCache) Set(context.Context, domain.TimesheetSummary, int64) error { return nil }

// Invalidate does nothing.
func (NoopSummaryCache) Invalidate(context.Context, string) error { return nil }

// setIfGeneration writes KEYS[1] only when KEYS[2] still holds ARGV[1].
// ARGV[3] is a TTL in milliseconds, 0 for none.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
  return 0
end
if tonumber(ARGV[3]) > 0 then
  redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
  redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// RedisSummaryCache keeps JSON-encoded summaries in Redis.
type RedisSummaryCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisSummaryCache constructs the cache. A zero ttl keeps keys until invalidated.
func NewRedisSummaryCache(client redis.Cmdable, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

// Get returns the cached summary, if any.
func (c *RedisSummaryCache) Get(ctx context.Context, timesheetID string) (*domain.TimesheetSummary, bool, error) {
	raw, err := c.client.Get(ctx, SummaryKey(timesheetID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var summary domain.TimesheetSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, err
	}
	return &summary, true, nil
}

// Generation returns the current invalidation count of a timesheet.
func (c *RedisSummaryCache) Generation(ctx context.Context, timesheetID string) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey(timesheetID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores the summary unless the timesheet was invalidated since generation was read.
func (c *RedisSummaryCache) Set(ctx context.Context, summary domain.TimesheetSummary, generation int64) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	id := summary.Timesheet.ID
	return setIfGeneration.Run(ctx, c.client,
		[]string{SummaryKey(id), GenerationKey(id)},
		strconv.FormatInt(generation, 10), raw, c.ttl.Milliseconds(),
	).Err()
}

// Invalidate bumps the generation and drops the cached summary.
func (c *RedisSummaryCache) Invalidate(ctx context.Context, timesheetID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey(timesheetID))
		pipe.Del(ctx, SummaryKey(timesheetID))
		return nil
	})
	return err
}

// SummaryKey is the Redis key for a timesheet summary.
func SummaryKey(timesheetID string) string {
	return summaryKeyPrefix + timesheetID
}

// GenerationKey is the Redis key holding a timesheet's invalidation count.
func GenerationKey(timesheetID string) string {
	return generationKeyPrefix + timesheetID
}

package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

func TestNoopSummaryCacheAlwaysMisses(t *testing.T) {
	var c SummaryCache = NoopSummaryCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, domain.TimesheetSummary{Timesheet: domain.Timesheet{ID: "4"}}, 0))
	got, ok, err := c.Get(ctx, "4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx, "4"))
}

func TestSummaryKey(t *testing.T) {
	assert.Equal(t, "timesheet:summary:4", SummaryKey("4"))
}

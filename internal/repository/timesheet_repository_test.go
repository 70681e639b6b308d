package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/timesheet-service/internal/directory"
)

func TestStaticTimesheetRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticTimesheetRepository(directory.Timesheets())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "1", list[0].ID)

	ts, err := repo.GetByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 3, ts.WeekNumber)

	_, err = repo.GetByID(ctx, "99")
	assert.ErrorIs(t, err, ErrTimesheetNotFound)
}

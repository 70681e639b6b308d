package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/timesheet-service/internal/directory"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/repository"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

func newTimesheetService() *TimesheetService {
	return NewTimesheetService(repository.NewStaticTimesheetRepository(directory.Timesheets()))
}

func TestListMissingReturnsTimesheetFive(t *testing.T) {
	page, err := newTimesheetService().List(context.Background(), TimesheetFilter{Status: "missing", Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "5", page.Items[0].ID)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestListStatusFiltersMatchOnly(t *testing.T) {
	svc := newTimesheetService()
	all := directory.Timesheets()

	for _, status := range []string{"COMPLETED", "INCOMPLETE", "MISSING", "all"} {
		page, err := svc.List(context.Background(), TimesheetFilter{Status: status, Page: 1, Limit: 2})
		require.NoError(t, err)

		want := 0
		for _, ts := range all {
			if status == "all" || string(ts.Status) == status {
				want++
			}
		}
		assert.Equal(t, want, page.Total, status)
		for _, ts := range page.Items {
			if status != "all" {
				assert.Equal(t, domain.TimesheetStatus(status), ts.Status)
			}
		}
	}
}

func TestListUnknownStatusIsEmpty(t *testing.T) {
	page, err := newTimesheetService().List(context.Background(), TimesheetFilter{Status: "archived", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestListPaginationWindow(t *testing.T) {
	svc := newTimesheetService()
	total := len(directory.Timesheets())

	for limit := 1; limit <= 6; limit++ {
		for page := 1; page <= 7; page++ {
			t.Run(fmt.Sprintf("page=%d/limit=%d", page, limit), func(t *testing.T) {
				got, err := svc.List(context.Background(), TimesheetFilter{Page: page, Limit: limit})
				require.NoError(t, err)

				want := total - (page-1)*limit
				if want > limit {
					want = limit
				}
				if want < 0 {
					want = 0
				}
				assert.Len(t, got.Items, want)
				assert.Equal(t, (total+limit-1)/limit, got.TotalPages)
				assert.Equal(t, total, got.Total)
				if want > 0 {
					assert.Equal(t, fmt.Sprint((page-1)*limit+1), got.Items[0].ID)
				}
			})
		}
	}
}

func TestListDefaults(t *testing.T) {
	page, err := newTimesheetService().List(context.Background(), TimesheetFilter{Page: 0, Limit: -3})
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, page.Page)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Len(t, page.Items, 5)
}

func TestListHugePageDoesNotOverflow(t *testing.T) {
	page, err := newTimesheetService().List(context.Background(), TimesheetFilter{Page: 1 << 62, Limit: 1 << 40})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	page, err = newTimesheetService().List(context.Background(), TimesheetFilter{Page: 1, Limit: 1 << 62})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 1, page.TotalPages)
}

func TestListMaxIntLimit(t *testing.T) {
	svc := newTimesheetService()

	page, err := svc.List(context.Background(), TimesheetFilter{Page: 1, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.TotalPages)

	page, err = svc.List(context.Background(), TimesheetFilter{Page: math.MaxInt, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 1, totalPages(5, math.MaxInt))
	assert.Equal(t, 1, totalPages(math.MaxInt, math.MaxInt))
}

func TestGetTimesheet(t *testing.T) {
	svc := newTimesheetService()

	ts, err := svc.Get(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "22 - 26 January, 2024", ts.DateRange)

	_, err = svc.Get(context.Background(), "nope")
	assert.True(t, apperrors.IsNotFound(err))
}

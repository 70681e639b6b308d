// Package aggregate derives display values from a snapshot of timesheet entries.
package aggregate

import (
	"math"
	"sort"
	"strconv"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// WeeklyTargetHours is the reference week used for progress.
const WeeklyTargetHours = 40.0

// TotalHours sums the hours of all entries.
func TotalHours(entries []domain.TimesheetEntry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// GroupByDate buckets entries by calendar date. Entries keep their input order
// inside a day and days are sorted ascending; ISO dates sort lexicographically.
func GroupByDate(entries []domain.TimesheetEntry) []domain.DayGroup {
	index := make(map[string]int)
	groups := make([]domain.DayGroup, 0)
	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, domain.DayGroup{Date: e.Date})
		}
		groups[i].Entries = append(groups[i].Entries, e)
		groups[i].Hours += e.Hours
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Date < groups[b].Date
	})
	return groups
}

// ProgressPercentage returns min(100, 100*total/target). A non-positive target yields 0.
func ProgressPercentage(total, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(100, 100*total/target)
}

// FormatPercentage renders a percentage with zero decimals, e.g. "80%".
// Halves round up.
func FormatPercentage(p float64) string {
	return strconv.FormatFloat(math.Floor(p+0.5), 'f', 0, 64) + "%"
}

// Summarize builds a summary of ts from its entries. The stored status and
// total are carried through untouched.
func Summarize(ts domain.Timesheet, entries []domain.TimesheetEntry, target float64) domain.TimesheetSummary {
	logged := TotalHours(entries)
	return domain.TimesheetSummary{
		Timesheet:          ts,
		EntryCount:         len(entries),
		LoggedHours:        logged,
		WeeklyTargetHours:  target,
		ProgressPercentage: ProgressPercentage(logged, target),
		Days:               GroupByDate(entries),
	}
}

// Package directory holds the fixed seed data the service starts with:
// users, timesheets, the entries of timesheet 4 and the project and work
// type catalogues.
package directory

import "github.com/spec-kit/timesheet-service/internal/domain"

var users = []domain.User{
	{ID: "1", Email: "saqib@example.com", Name: "Saqib"},
	{ID: "2", Email: "test@example.com", Name: "Test User"},
}

var timesheets = []domain.Timesheet{
	{ID: "1", WeekNumber: 1, DateRange: "1 - 5 January, 2024", StartDate: "2024-01-01", EndDate: "2024-01-05", Status: domain.TimesheetStatusCompleted, TotalHours: 40},
	{ID: "2", WeekNumber: 2, DateRange: "8 - 12 January, 2024", StartDate: "2024-01-08", EndDate: "2024-01-12", Status: domain.TimesheetStatusCompleted, TotalHours: 40},
	{ID: "3", WeekNumber: 3, DateRange: "15 - 19 January, 2024", StartDate: "2024-01-15", EndDate: "2024-01-19", Status: domain.TimesheetStatusIncomplete, TotalHours: 32},
	{ID: "4", WeekNumber: 4, DateRange: "22 - 26 January, 2024", StartDate: "2024-01-22", EndDate: "2024-01-26", Status: domain.TimesheetStatusCompleted, TotalHours: 40},
	{ID: "5", WeekNumber: 5, DateRange: "28 January - 1 February, 2024", StartDate: "2024-01-28", EndDate: "2024-02-01", Status: domain.TimesheetStatusMissing, TotalHours: 0},
}

var entries = map[string][]domain.TimesheetEntry{
	"4": {
		{ID: "e1", TimesheetID: "4", Date: "2024-01-21", ProjectName: "Homepage Development", WorkType: "Development", Description: "Implemented responsive navigation", Hours: 4},
		{ID: "e2", TimesheetID: "4", Date: "2024-01-21", ProjectName: "Homepage Development", WorkType: "Development", Description: "Fixed header styling issues", Hours: 4},
		{ID: "e3", TimesheetID: "4", Date: "2024-01-22", ProjectName: "Homepage Development", WorkType: "Development", Description: "Created hero section component", Hours: 4},
		{ID: "e4", TimesheetID: "4", Date: "2024-01-22", ProjectName: "Homepage Development", WorkType: "Bug fixes", Description: "Resolved mobile menu issues", Hours: 4},
		{ID: "e5", TimesheetID: "4", Date: "2024-01-22", ProjectName: "Homepage Development", WorkType: "Development", Description: "Added footer component", Hours: 4},
		{ID: "e6", TimesheetID: "4", Date: "2024-01-23", ProjectName: "Homepage Development", WorkType: "Development", Description: "Implemented contact form", Hours: 4},
		{ID: "e7", TimesheetID: "4", Date: "2024-01-23", ProjectName: "Homepage Development", WorkType: "Testing", Description: "Cross-browser testing", Hours: 4},
		{ID: "e8", TimesheetID: "4", Date: "2024-01-23", ProjectName: "Homepage Development", WorkType: "Development", Description: "Performance optimization", Hours: 4},
	},
}

var projectNames = []string{
	"Homepage Development",
	"Mobile App Development",
	"API Integration",
	"Database Migration",
	"UI/UX Design",
	"Client Meeting",
	"Code Review",
}

var workTypes = []string{
	"Development",
	"Bug fixes",
	"Testing",
	"Code Review",
	"Meeting",
	"Documentation",
	"Research",
}

// Users returns a copy of the seeded users.
func Users() []domain.User {
	return append([]domain.User(nil), users...)
}

// FindUserByEmail looks up a user by exact email.
func FindUserByEmail(email string) (domain.User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// FindUserByID looks up a user by id.
func FindUserByID(id string) (domain.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// Timesheets returns a copy of the seeded timesheets in week order.
func Timesheets() []domain.Timesheet {
	return append([]domain.Timesheet(nil), timesheets...)
}

// Entries returns a deep copy of the seeded entries keyed by timesheet id.
func Entries() map[string][]domain.TimesheetEntry {
	out := make(map[string][]domain.TimesheetEntry, len(entries))
	for id, list := range entries {
		out[id] = append([]domain.TimesheetEntry(nil), list...)
	}
	return out
}

// ProjectNames returns the project catalogue.
func ProjectNames() []string {
	return append([]string(nil), projectNames...)
}

// WorkTypes returns the work type catalogue.
func WorkTypes() []string {
	return append([]string(nil), workTypes...)
}

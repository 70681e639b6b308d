package domain

// User is an employee who logs time. Users are seed data and never change at runtime.
type User struct {
	ID    string
	Email string
	Name  string
}

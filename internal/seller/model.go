package seller

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// Application is one seller-registration submission. A declined applicant
// may resubmit; resubmission creates a new row and the newest row is the
// authoritative one.
type Application struct {
	ID           int
	UserID       int
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Address      string
	PostalCode   string
	BusinessName string
	Description  string
	Status       Status
	CreatedAt    time.Time
}

// ApplicationInput carries the submission form fields.
type ApplicationInput struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Address      string
	PostalCode   string
	BusinessName string
	Description  string
}

package models

import "time"

// Project represents a unit of work belonging to a Client. A project never
// exists without a valid owning client; the reference is validated on
// creation and enforced by cascade deletion afterwards.
type Project struct {
	// ProjectID is the unique, system-assigned identifier.
	ProjectID int64 `json:"id"`

	// Title is the short name of the project.
	Title string `json:"title"`

	// Description is optional free-form text.
	Description string `json:"description,omitempty"`

	// Budget is the agreed amount for the project. Never negative;
	// defaults to 0 when omitted on creation.
	Budget float64 `json:"budget"`

	// Status is the current position in the project status cycle.
	Status Status `json:"status"`

	// ClientID references the owning client.
	ClientID int64 `json:"client_id"`

	// CreatedAt is the timestamp when the project record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

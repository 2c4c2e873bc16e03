package models

import "time"

// Client represents a customer/employer record. A Client exclusively owns
// its Projects: deleting the client cascade-deletes every owned project.
type Client struct {
	// ClientID is the unique, system-assigned identifier.
	ClientID int64 `json:"id"`

	// Name is the display name of the client.
	Name string `json:"name"`

	// Email is the contact address. Unique across all clients.
	Email string `json:"email"`

	// CompanyName is optional and may be empty.
	CompanyName string `json:"company_name,omitempty"`

	// Projects holds the projects owned by this client. Always non-nil in
	// listing responses so callers can rely on the collection being present.
	Projects []Project `json:"projects"`

	// CreatedAt is the timestamp when the client record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Client model.
func (c Client) TableName() string {
	return "clients"
}

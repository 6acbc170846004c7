package identity

import "time"

// User is the canonical identity record used across the application.
// The backend's wire payloads spell the name fields "forename"/"lastname";
// the gateway maps them into this shape once, at the API boundary, so
// nothing downstream ever deals with the wire naming.
type User struct {
	ID        string    `json:"id,omitempty"`         // Unique identifier for the user
	Email     string    `json:"email,omitempty"`      // User's email address
	FirstName string    `json:"first_name,omitempty"` // First name of the user
	LastName  string    `json:"last_name,omitempty"`  // Last name of the user
	CreatedAt time.Time `json:"created_at,omitempty"` // When the account was created
}

// FullName returns "First Last", falling back to the email address when
// neither name field is set.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Email
	}
}

// Registration carries the signup form fields. ConfirmPassword is validated
// locally and stripped before the request is sent; it never crosses the
// network.
type Registration struct {
	Forename        string `json:"forename"`
	Lastname        string `json:"lastname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// Credentials carries the login form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

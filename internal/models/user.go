package models

// User represents a row of the users table.
type User struct {
	ID       int64  `json:"id" db:"id"`       // Primary key, assigned by the store
	Name     string `json:"name" db:"name"`   // Display name
	Email    string `json:"email" db:"email"` // Unique, looked up case-insensitively
	Password string `json:"-" db:"password"`  // Opaque, stored as given
}

// NewUser holds the fields supplied when registering a user.
type NewUser struct {
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"password" db:"password"`
}

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every owned record (quote items, spreadsheets, uploaded files) is scoped by
// UserID; sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// Never serialized; used only for credential verification.
	PasswordHash string `json:"-"`

	// InitialLetter is the uppercased first rune of Name, derived once at
	// registration and used by the UI as the avatar fallback.
	InitialLetter string `json:"initialLetter,omitempty"`

	// RegistrationCode is the invitation code consumed to create this account.
	RegistrationCode string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// IsActive gates authentication: an inactive user cannot log in.
	IsActive bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the reduced user representation embedded in auth responses.
type PublicUser struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	InitialLetter string `json:"initialLetter,omitempty"`
}

// Public returns the response-safe projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:            u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		InitialLetter: u.InitialLetter,
	}
}

package models

import "time"

// Operator is a console account. Operators authenticate with login and
// password and receive a JWT for subsequent requests.
type Operator struct {
	// ID is the internal identifier, used as the token subject.
	ID int64 `json:"id,omitempty"`

	// Login is unique among operators.
	Login string `json:"login" validate:"required,max=255"`

	// Password is only set on create and login requests. It is never
	// stored or returned.
	Password string `json:"password,omitempty" validate:"required,min=8"`

	// PasswordHash is the bcrypt hash kept in the database.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Operator model.
func (o Operator) TableName() string {
	return "operators"
}

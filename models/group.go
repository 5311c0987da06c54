package models

import "time"

// GroupDeviceID marks group rows in the table shared with clients.
const GroupDeviceID = "_SYSTEMGROUP_"

// Group is a named set of clients that share configuration overrides.
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required,max=255"`
	Description string    `json:"description,omitempty" validate:"max=1024"`
	CreatedAt   time.Time `json:"created_at,omitzero"`

	// Query is the SQL that selects automatic members. It is stored for
	// the agent server; the console does not evaluate it.
	Query string `json:"query,omitempty"`

	// CacheCreationDate is when the automatic member cache was last built.
	CacheCreationDate time.Time `json:"cache_creation_date,omitzero"`
}

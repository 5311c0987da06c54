package models

import "time"

// Client is an inventoried computer.
type Client struct {
	ID int64 `json:"id"`

	// Name is the computer name reported by the agent.
	Name string `json:"name" validate:"required,max=255"`

	// DeviceID is the agent-generated unique identifier. Groups share the
	// same table and carry [GroupDeviceID] instead.
	DeviceID string `json:"device_id" validate:"required,max=255,ne=_SYSTEMGROUP_"`

	// LastContact is the time of the last agent contact.
	LastContact time.Time `json:"last_contact,omitzero"`
}

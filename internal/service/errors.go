package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrGroupNameEmpty is returned when a group is created without a name.
	ErrGroupNameEmpty = errors.New("group name is empty")
	// ErrGroupLocked is returned when another operation holds the group lock.
	ErrGroupLocked = errors.New("group is locked")

	// ErrInvalidMembership is returned for membership types that cannot be
	// stored.
	ErrInvalidMembership = errors.New("invalid membership type")
)

// ErrClientLocked is returned when another operation holds the client lock.
var ErrClientLocked = errors.New("client is locked")

package models

import (
	"fmt"
	"strings"
)

// MembershipType describes how a client belongs to a group.
type MembershipType int

// Stored membership types.
const (
	// MembershipAutomatic: member because the group query matched.
	MembershipAutomatic MembershipType = 0
	// MembershipAlways: manually included.
	MembershipAlways MembershipType = 1
	// MembershipNever: manually excluded, even if the query matches.
	MembershipNever MembershipType = 2
)

// Filters accepted when listing memberships. They are never stored.
const (
	// MembershipManual selects Always and Never.
	MembershipManual MembershipType = -1
	// MembershipAny selects every stored type.
	MembershipAny MembershipType = -2
)

// Stored reports whether t may be written to the database.
func (t MembershipType) Stored() bool {
	return t == MembershipAutomatic || t == MembershipAlways || t == MembershipNever
}

// Matches reports whether a stored type passes filter.
func (t MembershipType) Matches(filter MembershipType) bool {
	switch filter {
	case MembershipAny:
		return true
	case MembershipManual:
		return t == MembershipAlways || t == MembershipNever
	default:
		return t == filter
	}
}

func (t MembershipType) String() string {
	switch t {
	case MembershipAutomatic:
		return "automatic"
	case MembershipAlways:
		return "always"
	case MembershipNever:
		return "never"
	case MembershipManual:
		return "manual"
	case MembershipAny:
		return "any"
	default:
		return fmt.Sprintf("MembershipType(%d)", int(t))
	}
}

// ParseMembershipType accepts the names printed by String. An empty string
// means MembershipAny.
func ParseMembershipType(s string) (MembershipType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return MembershipAny, nil
	case "manual":
		return MembershipManual, nil
	case "automatic":
		return MembershipAutomatic, nil
	case "always":
		return MembershipAlways, nil
	case "never":
		return MembershipNever, nil
	default:
		return 0, fmt.Errorf("unknown membership type %q", s)
	}
}

// GroupMembership is one group a client is linked to.
type GroupMembership struct {
	GroupID   int64          `json:"group_id"`
	GroupName string         `json:"group_name"`
	Type      MembershipType `json:"type"`
}

// SetMembershipsRequest maps group id to the requested membership type.
// Groups that do not exist are ignored.
type SetMembershipsRequest struct {
	Memberships map[int64]MembershipType `json:"memberships" validate:"required,dive,keys,gt=0,endkeys,membership"`
}

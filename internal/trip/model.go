package trip

import "time"

// MemberStatus represents the status of a trip member
type MemberStatus string

const (
	MemberStatusInvited MemberStatus = "INVITED"
	MemberStatusJoined  MemberStatus = "JOINED"
)

// MemberRole represents the role of a trip member
type MemberRole string

const (
	MemberRoleOrganizer MemberRole = "ORGANIZER"
	MemberRoleMember    MemberRole = "MEMBER"
)

// Trip represents a shared trip in the system
type Trip struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Destination  *string    `json:"destination,omitempty"`
	BaseCurrency string     `json:"base_currency"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TripMember represents a traveler's membership in a trip
type TripMember struct {
	ID         string       `json:"id"`
	TripID     string       `json:"trip_id"`
	TravelerID string       `json:"traveler_id"`
	Status     MemberStatus `json:"status"`
	Role       MemberRole   `json:"role"`
	JoinedAt   time.Time    `json:"joined_at"`

	// Populated from JOIN
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
}

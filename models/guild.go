package models

import "time"

// Guild member roles
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Guild request statuses — pending is the only non-terminal state.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// Guild is a founder community with role-based membership.
// Invariants: OwnerID always has a member entry with role owner, and a
// user appears at most once in Members.
type Guild struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	OwnerID     string        `json:"ownerId"`
	IsPrivate   bool          `json:"isPrivate"`
	CreatedAt   time.Time     `json:"createdAt"`
	Members     []GuildMember `json:"members"`
}

// GuildMember is a User enrolled in a guild.
type GuildMember struct {
	User
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// GuildRequest is a membership application for a private guild.
// Once accepted or rejected it never transitions again.
type GuildRequest struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guildId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasMember reports whether userID already appears in the member set.
func (g *Guild) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

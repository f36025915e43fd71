package models

import "time"

// User is a member of the platform. Reputation is a static value loaded from
// fixtures and is never recomputed.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DisplayName     string    `json:"displayName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Bio             string    `json:"bio"`
	Reputation      float64   `json:"reputation"`
	FavorsCompleted int       `json:"favorsCompleted"`
	FavorsRequested int       `json:"favorsRequested"`
	JoinDate        time.Time `json:"joinDate"`
	SponsorID       *string   `json:"sponsorId,omitempty"`
	Role            Role      `json:"role"`
	PasswordHash    string    `json:"-"`
}

// IsAdmin reports whether the user may access the admin UI.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// PublicName prefers the display name.
func (u *User) PublicName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Name
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.SponsorID != nil {
		id := *u.SponsorID
		c.SponsorID = &id
	}
	return &c
}

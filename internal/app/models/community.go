package models

import (
	"slices"
	"time"
)

// Community is a named group users can join; favors may be scoped to one.
type Community struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        CommunityType `json:"type"`
	CreatorID   string        `json:"creatorId"`
	MemberIDs   []string      `json:"memberIds"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// HasMember reports whether userID belongs to the community.
func (c *Community) HasMember(userID string) bool {
	return slices.Contains(c.MemberIDs, userID)
}

// Clone returns a deep copy.
func (c *Community) Clone() *Community {
	if c == nil {
		return nil
	}
	cp := *c
	cp.MemberIDs = slices.Clone(c.MemberIDs)
	return &cp
}

package dto

import (
	"net/url"

	"github.com/yigit/conexao/internal/app/models"
)

// CreateFavorRequest represents the new favor form. Amount and Headcount
// are checked by a struct-level rule because they depend on Type and
// Participation.
type CreateFavorRequest struct {
	Title         string  `form:"title" binding:"required,min=5,max=100"`
	Description   string  `form:"description" binding:"required,min=10,max=1000"`
	Urgency       string  `form:"urgency" binding:"required,oneof=low medium high"`
	Location      string  `form:"location" binding:"required,min=3,max=120"`
	Type          string  `form:"type" binding:"required,oneof=volunteer paid"`
	Amount        float64 `form:"amount"`
	Participation string  `form:"participation" binding:"required,oneof=individual collective"`
	Headcount     int     `form:"headcount"`
	CommunityID   string  `form:"communityId"`
}

// RateFavorRequest represents the rating form
type RateFavorRequest struct {
	Score    int    `form:"score" binding:"required,min=1,max=5"`
	Feedback string `form:"feedback" binding:"max=500"`
}

// FavorFilterRequest holds the favor list query string.
type FavorFilterRequest struct {
	Q             string `form:"q"`
	Type          string `form:"type" binding:"omitempty,oneof=volunteer paid"`
	Urgency       string `form:"urgency" binding:"omitempty,oneof=low medium high"`
	Status        string `form:"status" binding:"omitempty,oneof=open accepted completed cancelled"`
	Participation string `form:"participation" binding:"omitempty,oneof=individual collective"`
	CommunityID   string `form:"community"`
	RequesterID   string `form:"-"`
	ExecutorID    string `form:"-"`
}

// FavorPermissions lists the lifecycle actions the viewer may take.
type FavorPermissions struct {
	CanAccept   bool
	CanComplete bool
	CanCancel   bool
	CanRate     bool
	CanReport   bool
	HasRated    bool
}

// FavorView is a favor resolved with the users around it.
type FavorView struct {
	Favor       *models.Favor
	Requester   *models.User
	Executors   []*models.User
	Community   *models.Community
	Permissions FavorPermissions
}

// FavorListResponse is one page of filtered favors.
type FavorListResponse struct {
	Favors     []FavorView
	Filter     FavorFilterRequest
	Pagination PaginationInfo
	Query      url.Values
}

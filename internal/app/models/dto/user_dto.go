package dto

import "github.com/yigit/conexao/internal/app/models"

// UpdateProfileRequest represents the profile edit form
type UpdateProfileRequest struct {
	DisplayName string `form:"displayName" binding:"required,min=2,max=40"`
	Phone       string `form:"phone" binding:"omitempty,phone"`
	Bio         string `form:"bio" binding:"max=300"`
}

// ReceivedRating is a rating a user got on a completed favor.
type ReceivedRating struct {
	FavorID    string
	FavorTitle string
	From       *models.User
	Rating     models.Rating
}

// ProfileView is everything the public profile page shows.
type ProfileView struct {
	User        *models.User
	Sponsor     *models.User
	Requested   []*models.Favor
	Executed    []*models.Favor
	Ratings     []ReceivedRating
	Communities []*models.Community
	IsOwn       bool
	CanReport   bool
}

// UserFilterRequest filters the admin user list.
type UserFilterRequest struct {
	Q string `form:"q"`
}

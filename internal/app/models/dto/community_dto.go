package dto

import (
	"net/url"

	"github.com/yigit/conexao/internal/app/models"
)

// CreateCommunityRequest represents community creation data
type CreateCommunityRequest struct {
	Name        string `form:"name" binding:"required,min=3,max=60"`
	Description string `form:"description" binding:"required,min=10,max=500"`
	Type        string `form:"type" binding:"required,oneof=public private"`
}

// CommunityFilterRequest represents community filter parameters
type CommunityFilterRequest struct {
	Q    string `form:"q"`
	Type string `form:"type" binding:"omitempty,oneof=public private"`
}

// CommunityView is a community with its creator and the viewer's relation to it.
type CommunityView struct {
	Community *models.Community
	Creator   *models.User
	IsMember  bool
	CanJoin   bool
	CanLeave  bool
}

// CommunityDetailResponse adds members and scoped favors to the view.
type CommunityDetailResponse struct {
	CommunityView
	Members []*models.User
	Favors  []FavorView
}

// CommunityListResponse is one page of filtered communities.
type CommunityListResponse struct {
	Communities []CommunityView
	Filter      CommunityFilterRequest
	Pagination  PaginationInfo
	Query       url.Values
}

package dto

import "github.com/yigit/conexao/internal/app/models"

// DashboardView is the signed-in home page.
type DashboardView struct {
	Requested     []FavorView
	Executing     []FavorView
	Suggested     []FavorView
	Notifications []*models.Notification
	UnreadCount   int
}

// AdminStats are the counters on the admin dashboard.
type AdminStats struct {
	Users           int
	Favors          int
	OpenFavors      int
	AcceptedFavors  int
	CompletedFavors int
	CancelledFavors int
	Communities     int
	PendingReports  int
	Missions        int
}

// MissionView groups missions by niche for the missions page.
type MissionView struct {
	Niche    models.Niche
	Missions []*models.Mission
}

// AdminUsersView is the admin user list.
type AdminUsersView struct {
	Users  []*models.User
	Filter UserFilterRequest
}

// AdminReportsView is the moderation queue, optionally narrowed to one status.
type AdminReportsView struct {
	Reports []ReportView
	Status  string
}

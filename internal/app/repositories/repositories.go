package repositories

import (
	"sync"

	"github.com/yigit/conexao/internal/app/models"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	FavorRepository        *FavorRepository
	CommunityRepository    *CommunityRepository
	MissionRepository      *MissionRepository
	NotificationRepository *NotificationRepository
	ReportRepository       *ReportRepository
}

// Snapshot is a full data set the repositories can be reset to.
type Snapshot struct {
	Users         []*models.User
	Favors        []*models.Favor
	Communities   []*models.Community
	Missions      []*models.Mission
	Notifications []*models.Notification
	Reports       []*models.Report
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(),
		FavorRepository:        NewFavorRepository(),
		CommunityRepository:    NewCommunityRepository(),
		MissionRepository:      NewMissionRepository(),
		NotificationRepository: NewNotificationRepository(),
		ReportRepository:       NewReportRepository(),
	}
}

// Load replaces the content of every repository with snap. All stores are
// locked for the whole swap, so once a reader sees any row of snap every
// later read sees snap too.
func (r *Repositories) Load(snap *Snapshot) {
	locks := []sync.Locker{
		&r.UserRepository.store.mu,
		&r.FavorRepository.store.mu,
		&r.CommunityRepository.store.mu,
		&r.MissionRepository.store.mu,
		&r.NotificationRepository.store.mu,
		&r.ReportRepository.store.mu,
	}
	for _, l := range locks {
		l.Lock()
	}
	defer func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}()

	r.UserRepository.store.resetLocked(snap.Users)
	r.FavorRepository.store.resetLocked(snap.Favors)
	r.CommunityRepository.store.resetLocked(snap.Communities)
	r.MissionRepository.store.resetLocked(snap.Missions)
	r.NotificationRepository.store.resetLocked(snap.Notifications)
	r.ReportRepository.store.resetLocked(snap.Reports)
}

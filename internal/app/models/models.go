package models

// Role separates regular members from moderators of the admin UI.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Urgency of a favor request.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// FavorType says whether the executor is paid.
type FavorType string

const (
	FavorTypeVolunteer FavorType = "volunteer"
	FavorTypePaid      FavorType = "paid"
)

// ParticipationType says how many executors a favor takes.
type ParticipationType string

const (
	ParticipationIndividual ParticipationType = "individual"
	ParticipationCollective ParticipationType = "collective"
)

// FavorStatus is the lifecycle state of a favor.
type FavorStatus string

const (
	FavorStatusOpen      FavorStatus = "open"
	FavorStatusAccepted  FavorStatus = "accepted"
	FavorStatusCompleted FavorStatus = "completed"
	FavorStatusCancelled FavorStatus = "cancelled"
)

// IsTerminal reports whether no further transition can leave the status.
func (s FavorStatus) IsTerminal() bool {
	return s == FavorStatusCompleted || s == FavorStatusCancelled
}

// CommunityType controls whether anyone may join.
type CommunityType string

const (
	CommunityPublic  CommunityType = "public"
	CommunityPrivate CommunityType = "private"
)

// Niche groups missions by the kind of partner running them.
type Niche string

const (
	NicheStreamer Niche = "streamer"
	NicheONG      Niche = "ong"
	NicheEmpresa  Niche = "empresa"
)

// Niches lists every niche in display order.
var Niches = []Niche{NicheStreamer, NicheONG, NicheEmpresa}

// ReportTarget is the kind of item a report points at.
type ReportTarget string

const (
	ReportTargetFavor ReportTarget = "favor"
	ReportTargetUser  ReportTarget = "user"
)

// ReportStatus tracks moderation of a report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
	ReportStatusIgnored  ReportStatus = "ignored"
)

// ReportReason is the category picked in the report form.
type ReportReason string

const (
	ReportReasonSpam          ReportReason = "spam"
	ReportReasonInappropriate ReportReason = "inappropriate"
	ReportReasonFraud         ReportReason = "fraud"
	ReportReasonHarassment    ReportReason = "harassment"
	ReportReasonOther         ReportReason = "other"
)

// ReportReasons lists every reason in display order.
var ReportReasons = []ReportReason{
	ReportReasonSpam,
	ReportReasonInappropriate,
	ReportReasonFraud,
	ReportReasonHarassment,
	ReportReasonOther,
}

// NotificationType categorises in-app notifications.
type NotificationType string

const (
	NotificationFavorAccepted  NotificationType = "favor_accepted"
	NotificationFavorCompleted NotificationType = "favor_completed"
	NotificationFavorCancelled NotificationType = "favor_cancelled"
	NotificationFavorRated     NotificationType = "favor_rated"
	NotificationCommunity      NotificationType = "community"
	NotificationSystem         NotificationType = "system"
)

package models

import "time"

// Report flags a favor or a user for moderation.
type Report struct {
	ID         string       `json:"id"`
	ReporterID string       `json:"reporterId"`
	TargetType ReportTarget `json:"targetType"`
	TargetID   string       `json:"targetId"`
	Reason     ReportReason `json:"reason"`
	Comments   string       `json:"comments"`
	Status     ReportStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	ReviewedBy *string      `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time   `json:"reviewedAt,omitempty"`
}

// Review closes a pending report with the given outcome.
func (r *Report) Review(status ReportStatus, adminID string, now time.Time) bool {
	if r.Status != ReportStatusPending {
		return false
	}
	if status != ReportStatusResolved && status != ReportStatusIgnored {
		return false
	}
	r.Status = status
	r.ReviewedBy = &adminID
	r.ReviewedAt = &now
	return true
}

package models

import (
	"maps"
	"slices"
	"time"

	"github.com/yigit/conexao/internal/pkg/apperrors"
)

// Rating is the score one side of a completed favor gives the other.
type Rating struct {
	Score    int       `json:"score"`
	Feedback string    `json:"feedback,omitempty"`
	RatedAt  time.Time `json:"ratedAt"`
}

const (
	MinRating = 1
	MaxRating = 5
)

// Favor is a unit of requested help.
//
// Lifecycle: open -> accepted -> completed, and open|accepted -> cancelled.
// Individual favors hold their executor in ExecutorID; collective favors
// gather ExecutorIDs while open and become accepted once Headcount is reached.
type Favor struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Urgency       Urgency           `json:"urgency"`
	Location      string            `json:"location"`
	Type          FavorType         `json:"type"`
	Amount        *float64          `json:"amount,omitempty"`
	Participation ParticipationType `json:"participation"`
	Headcount     int               `json:"headcount,omitempty"`
	Status        FavorStatus       `json:"status"`
	RequesterID   string            `json:"requesterId"`
	ExecutorID    *string           `json:"executorId,omitempty"`
	ExecutorIDs   []string          `json:"executorIds,omitempty"`
	CommunityID   *string           `json:"communityId,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	AcceptedAt    *time.Time        `json:"acceptedAt,omitempty"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
	CancelledAt   *time.Time        `json:"cancelledAt,omitempty"`

	// RequesterRating is given by the requester to the executor side.
	RequesterRating *Rating `json:"requesterRating,omitempty"`
	// ExecutorRatings are given by each executor to the requester, keyed by executor ID.
	ExecutorRatings map[string]*Rating `json:"executorRatings,omitempty"`
}

// IsCollective reports whether the favor takes several executors.
func (f *Favor) IsCollective() bool {
	return f.Participation == ParticipationCollective
}

// Executors returns every executor ID regardless of participation type.
func (f *Favor) Executors() []string {
	if f.IsCollective() {
		return slices.Clone(f.ExecutorIDs)
	}
	if f.ExecutorID != nil {
		return []string{*f.ExecutorID}
	}
	return nil
}

// IsRequester reports whether userID posted the favor.
func (f *Favor) IsRequester(userID string) bool {
	return userID != "" && f.RequesterID == userID
}

// IsExecutor reports whether userID accepted the favor.
func (f *Favor) IsExecutor(userID string) bool {
	return userID != "" && slices.Contains(f.Executors(), userID)
}

// OpenSlots is the number of executors a collective favor still needs.
func (f *Favor) OpenSlots() int {
	if !f.IsCollective() {
		if f.ExecutorID == nil {
			return 1
		}
		return 0
	}
	return max(f.Headcount-len(f.ExecutorIDs), 0)
}

// HasRated reports whether userID already rated the counterpart.
func (f *Favor) HasRated(userID string) bool {
	if f.IsRequester(userID) {
		return f.RequesterRating != nil
	}
	_, ok := f.ExecutorRatings[userID]
	return ok
}

// CanAccept reports whether actorID may accept the favor now.
func (f *Favor) CanAccept(actorID string) error {
	if f.Status != FavorStatusOpen {
		return apperrors.ErrInvalidTransition
	}
	if f.IsRequester(actorID) {
		return apperrors.ErrOwnFavor
	}
	if f.IsExecutor(actorID) {
		return apperrors.ErrAlreadyParticipant
	}
	return nil
}

// Accept assigns actorID as executor.
func (f *Favor) Accept(actorID string, now time.Time) error {
	if err := f.CanAccept(actorID); err != nil {
		return err
	}

	if !f.IsCollective() {
		id := actorID
		f.ExecutorID = &id
		f.markAccepted(now)
		return nil
	}

	f.ExecutorIDs = append(f.ExecutorIDs, actorID)
	if len(f.ExecutorIDs) >= max(f.Headcount, 1) {
		f.markAccepted(now)
	}
	return nil
}

func (f *Favor) markAccepted(now time.Time) {
	f.Status = FavorStatusAccepted
	f.AcceptedAt = &now
}

// CanComplete reports whether actorID may mark the favor as done.
func (f *Favor) CanComplete(actorID string) error {
	if f.Status != FavorStatusAccepted {
		return apperrors.ErrInvalidTransition
	}
	if !f.IsRequester(actorID) && !f.IsExecutor(actorID) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// Complete moves an accepted favor to completed.
func (f *Favor) Complete(actorID string, now time.Time) error {
	if err := f.CanComplete(actorID); err != nil {
		return err
	}
	f.Status = FavorStatusCompleted
	f.CompletedAt = &now
	return nil
}

// CanCancel reports whether actorID may cancel the favor.
func (f *Favor) CanCancel(actorID string) error {
	if f.Status != FavorStatusOpen && f.Status != FavorStatusAccepted {
		return apperrors.ErrInvalidTransition
	}
	if !f.IsRequester(actorID) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// Cancel moves an open or accepted favor to cancelled.
func (f *Favor) Cancel(actorID string, now time.Time) error {
	if err := f.CanCancel(actorID); err != nil {
		return err
	}
	f.markCancelled(now)
	return nil
}

// ForceCancel cancels on behalf of a moderator; only the status is checked.
func (f *Favor) ForceCancel(now time.Time) error {
	if f.Status.IsTerminal() {
		return apperrors.ErrInvalidTransition
	}
	f.markCancelled(now)
	return nil
}

func (f *Favor) markCancelled(now time.Time) {
	f.Status = FavorStatusCancelled
	f.CancelledAt = &now
}

// CanRate reports whether actorID may still rate the counterpart.
func (f *Favor) CanRate(actorID string) error {
	if f.Status != FavorStatusCompleted {
		return apperrors.ErrInvalidTransition
	}
	if !f.IsRequester(actorID) && !f.IsExecutor(actorID) {
		return apperrors.ErrPermissionDenied
	}
	if f.HasRated(actorID) {
		return apperrors.ErrAlreadyRated
	}
	return nil
}

// Rate records actorID's score and feedback.
func (f *Favor) Rate(actorID string, score int, feedback string, now time.Time) error {
	if score < MinRating || score > MaxRating {
		return apperrors.ErrInvalidRating
	}
	if err := f.CanRate(actorID); err != nil {
		return err
	}

	rating := &Rating{Score: score, Feedback: feedback, RatedAt: now}
	if f.IsRequester(actorID) {
		f.RequesterRating = rating
		return nil
	}
	if f.ExecutorRatings == nil {
		f.ExecutorRatings = make(map[string]*Rating)
	}
	f.ExecutorRatings[actorID] = rating
	return nil
}

// Clone returns a deep copy so callers never share state with the store.
func (f *Favor) Clone() *Favor {
	if f == nil {
		return nil
	}
	cp := *f
	cp.Amount = clonePtr(f.Amount)
	cp.ExecutorID = clonePtr(f.ExecutorID)
	cp.CommunityID = clonePtr(f.CommunityID)
	cp.AcceptedAt = clonePtr(f.AcceptedAt)
	cp.CompletedAt = clonePtr(f.CompletedAt)
	cp.CancelledAt = clonePtr(f.CancelledAt)
	cp.ExecutorIDs = slices.Clone(f.ExecutorIDs)
	cp.RequesterRating = clonePtr(f.RequesterRating)
	if f.ExecutorRatings != nil {
		cp.ExecutorRatings = maps.Clone(f.ExecutorRatings)
		for k, v := range cp.ExecutorRatings {
			cp.ExecutorRatings[k] = clonePtr(v)
		}
	}
	return &cp
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

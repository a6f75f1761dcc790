package models

import (
	"fbs/src/types"

	"github.com/google/uuid"
)

// PlanRequest is a "plan my vacation" lead captured from the public site.
// Status only ever moves forward: pending -> contacted -> completed.
type PlanRequest struct {
	ID              uuid.UUID               `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name            string                  `json:"name"`
	Email           string                  `json:"email"`
	Destination     string                  `json:"destination"`
	StartDate       string                  `json:"start_date"`
	EndDate         string                  `json:"end_date"`
	Budget          string                  `json:"budget,omitempty"`
	Preferences     types.StringArray       `gorm:"type:jsonb" json:"preferences,omitempty"`
	AdditionalNotes string                  `json:"additional_notes,omitempty"`
	Status          types.PlanRequestStatus `gorm:"default:'pending'" json:"status"`

	types.Timestamps
}

// CanAdvanceTo reports whether moving to next is a legal forward transition.
func (p *PlanRequest) CanAdvanceTo(next types.PlanRequestStatus) bool {
	order := map[types.PlanRequestStatus]int{
		types.PLAN_REQUEST_PENDING:   0,
		types.PLAN_REQUEST_CONTACTED: 1,
		types.PLAN_REQUEST_COMPLETED: 2,
	}
	from, ok := order[p.Status]
	if !ok {
		return false
	}
	to, ok := order[next]
	if !ok {
		return false
	}
	return to > from
}

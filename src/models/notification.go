package models

import (
	"fbs/src/types"

	"github.com/google/uuid"
)

type Notification struct {
	ID             uuid.UUID    `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title          string       `json:"title"`
	Description    *string      `json:"description,omitempty"`
	ReferenceType  string       `json:"ref_type"`
	ReferenceValue string       `json:"ref_value"`
	ReferenceBody  *types.JSONB `gorm:"type:jsonb" json:"ref_body,omitempty"`
	Read           bool         `gorm:"default:false" json:"read"`

	types.Timestamps
}

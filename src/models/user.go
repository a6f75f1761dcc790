package models

import (
	"fbs/src/types"
	"time"
)

type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `gorm:"default:'admin'" json:"role"`
	LastActive   *time.Time `json:"last_active,omitempty"`

	types.Timestamps
}

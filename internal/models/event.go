package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is one calendar entry. A recurring event is stored as a series of
// materialized Event rows sharing a GroupID; standalone events have no
// GroupID.
type Event struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Start        time.Time      `gorm:"not null" json:"start"`
	End          time.Time      `gorm:"not null" json:"end"`
	Color        string         `json:"color,omitempty"`
	Location     string         `json:"location,omitempty"`
	Description  string         `json:"description,omitempty"`
	Recurrence   Recurrence     `gorm:"type:varchar(16)" json:"recurrence,omitempty"`
	Notification *int           `json:"notification,omitempty"`
	GroupID      *uuid.UUID     `gorm:"type:uuid;index" json:"groupId,omitempty"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

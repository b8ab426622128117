package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventType classifies an event listing.
type EventType string

const (
	EventTypeFree EventType = "FREE"
	EventTypePro  EventType = "PRO"
)

// Event represents an uploaded event listing.
type Event struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string          `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Image     string          `json:"image" gorm:"size:512;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Date      string          `json:"date" gorm:"size:64;not null"`
	Info      string          `json:"info" gorm:"type:text;not null"`
	Type      EventType       `json:"type" gorm:"type:varchar(10);not null;index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

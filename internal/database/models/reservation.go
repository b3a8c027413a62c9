package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a time-scoped booking on a calendar. OrganizationID
// is denormalized from the calendar so tenant scoping never needs a join.
type Reservation struct {
	BaseModel
	CalendarID     uuid.UUID         `json:"calendar_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrganizationID uuid.UUID         `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string            `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	StartFrom      time.Time         `json:"start_from" gorm:"not null;index" validate:"required"`
	EndAt          time.Time         `json:"end_at" gorm:"not null" validate:"required"`
	IsWholeDay     bool              `json:"is_whole_day" gorm:"default:false"`
	BookerID       uuid.UUID         `json:"booker_id" gorm:"type:uuid;not null"`
	Status         ReservationStatus `json:"status" gorm:"type:varchar(50);not null;default:'confirmed'"`

	// Relationships
	Calendar     Calendar     `json:"calendar,omitempty" gorm:"foreignKey:CalendarID;constraint:OnDelete:CASCADE"`
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

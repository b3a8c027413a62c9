package models

import "github.com/google/uuid"

// Calendar represents a bookable calendar owned by an organization.
// TimeScale is the slot granularity in minutes.
type Calendar struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	TimeZone       string    `json:"time_zone" gorm:"size:100;default:'UTC'"`
	IsPublic       bool      `json:"is_public" gorm:"default:false"`
	MinAttendees   int       `json:"min_attendees" gorm:"default:0" validate:"min=0"`
	MaxAttendees   int       `json:"max_attendees" gorm:"default:0" validate:"min=0"`
	TimeScale      int       `json:"time_scale" gorm:"default:30" validate:"min=0"`
	CreatedBy      uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	Organization Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:CalendarID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Calendar
func (Calendar) TableName() string {
	return "calendars"
}

package models

import "github.com/google/uuid"

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	IsSuspended bool      `json:"is_suspended" gorm:"default:false"`

	// Relationships
	Calendars   []Calendar               `json:"calendars,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Memberships []OrganizationMembership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

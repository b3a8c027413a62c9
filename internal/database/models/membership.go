package models

import "github.com/google/uuid"

// OrganizationMembership grants a user a role within an organization.
// One row per grant; uniqueness of (organization, user) is not enforced.
type OrganizationMembership struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	RoleID         string    `json:"role_id" gorm:"size:36;not null" validate:"required"`

	// Relationships
	Organization Organization      `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role         *OrganizationRole `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for OrganizationMembership
func (OrganizationMembership) TableName() string {
	return "organization_memberships"
}

package models

// User represents an account that can authenticate and hold memberships.
// EmailConfirmed is set at registration; this deployment never dispatches
// confirmation mail.
type User struct {
	BaseModel
	UserName       string `json:"user_name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	Email          string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name           string `json:"name" gorm:"size:200" validate:"max=200"`
	PasswordHash   string `json:"-" gorm:"not null"`
	EmailConfirmed bool   `json:"email_confirmed" gorm:"default:false"`

	// Relationships
	Memberships []OrganizationMembership `json:"memberships,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

package models

// Role identifiers seeded at startup. Membership rows reference roles by
// these string keys, so a creator grant carries role_id = "admin".
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// OrganizationRole represents a role a membership can grant within an
// organization. Roles are a fixed lookup table; no endpoint mutates them.
type OrganizationRole struct {
	ID   string `json:"id" gorm:"primaryKey;size:36"`
	Name string `json:"name" gorm:"not null;size:100"`
}

// TableName returns the table name for OrganizationRole
func (OrganizationRole) TableName() string {
	return "organization_roles"
}

// DefaultRoles returns the roles seeded into a fresh database.
func DefaultRoles() []OrganizationRole {
	return []OrganizationRole{
		{ID: RoleAdmin, Name: "Administrator"},
		{ID: RoleMember, Name: "Member"},
		{ID: RoleViewer, Name: "Viewer"},
	}
}

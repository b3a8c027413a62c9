package repository

import (
	"reservations-backend/internal/database/models"

	"gorm.io/gorm"
)

// RoleRepository handles database operations for organization roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByID retrieves a role by its string identifier
func (r *RoleRepository) GetByID(id string) (*models.OrganizationRole, error) {
	var role models.OrganizationRole
	err := r.db.First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetAll retrieves all roles
func (r *RoleRepository) GetAll() ([]models.OrganizationRole, error) {
	var roles []models.OrganizationRole
	err := r.db.Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

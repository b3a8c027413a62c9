package repository

import (
	"reservations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for organization memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.OrganizationMembership) error {
	return r.db.Create(membership).Error
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(id uuid.UUID) (*models.OrganizationMembership, error) {
	var membership models.OrganizationMembership
	err := r.db.First(&membership, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByOrganizationID retrieves all memberships for an organization with pagination
func (r *MembershipRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMembership, int64, error) {
	var memberships []models.OrganizationMembership
	var total int64

	if err := r.db.Model(&models.OrganizationMembership{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).Limit(limit).Offset(offset).Find(&memberships).Error
	if err != nil {
		return nil, 0, err
	}

	return memberships, total, nil
}

// GetByUserID retrieves all memberships held by a user
func (r *MembershipRepository) GetByUserID(userID uuid.UUID) ([]models.OrganizationMembership, error) {
	var memberships []models.OrganizationMembership
	err := r.db.Where("user_id = ?", userID).Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// Delete hard-deletes a membership
func (r *MembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OrganizationMembership{}, "id = ?", id).Error
}

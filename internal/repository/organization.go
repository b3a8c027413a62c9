package repository

import (
	"reservations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// CreateWithMembership creates an organization together with the creator's
// membership grant. Both rows commit together or not at all.
func (r *OrganizationRepository) CreateWithMembership(org *models.Organization, membership *models.OrganizationMembership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		membership.OrganizationID = org.ID
		return tx.Create(membership).Error
	})
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetWithMemberships retrieves an organization with its membership rows
func (r *OrganizationRepository) GetWithMemberships(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Preload("Memberships").First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Search retrieves organizations matching the keyword with pagination.
// The keyword is a case-sensitive substring match on name.
func (r *OrganizationRepository) Search(keyword string, limit, offset int) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	var total int64

	query := r.db.Model(&models.Organization{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	// Get total count of the filtered, pre-pagination set
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Limit(limit).Offset(offset).Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete hard-deletes an organization
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}

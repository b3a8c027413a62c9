package repository

import (
	"reservations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarRepository handles database operations for calendars
type CalendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// Create creates a new calendar
func (r *CalendarRepository) Create(calendar *models.Calendar) error {
	return r.db.Create(calendar).Error
}

// GetByID retrieves a calendar by ID
func (r *CalendarRepository) GetByID(id uuid.UUID) (*models.Calendar, error) {
	var calendar models.Calendar
	err := r.db.First(&calendar, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &calendar, nil
}

// GetWithReservations retrieves a calendar with its reservations
func (r *CalendarRepository) GetWithReservations(id uuid.UUID) (*models.Calendar, error) {
	var calendar models.Calendar
	err := r.db.Preload("Reservations").First(&calendar, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &calendar, nil
}

// Search retrieves calendars of an organization matching the keyword with
// pagination. The keyword is a case-sensitive substring match on name.
func (r *CalendarRepository) Search(orgID uuid.UUID, keyword string, limit, offset int) ([]models.Calendar, int64, error) {
	var calendars []models.Calendar
	var total int64

	query := r.db.Model(&models.Calendar{}).Where("organization_id = ?", orgID)
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Find(&calendars).Error
	if err != nil {
		return nil, 0, err
	}

	return calendars, total, nil
}

// Update updates a calendar
func (r *CalendarRepository) Update(calendar *models.Calendar) error {
	return r.db.Save(calendar).Error
}

// Delete hard-deletes a calendar
func (r *CalendarRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Calendar{}, "id = ?", id).Error
}

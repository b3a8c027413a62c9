package repository

import (
	"time"

	"reservations-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationRepository handles database operations for reservations
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create creates a new reservation
func (r *ReservationRepository) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.First(&reservation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Search retrieves reservations of a calendar matching the keyword with
// pagination. The keyword is a case-sensitive substring match on name.
func (r *ReservationRepository) Search(calendarID uuid.UUID, keyword string, limit, offset int) ([]models.Reservation, int64, error) {
	var reservations []models.Reservation
	var total int64

	query := r.db.Model(&models.Reservation{}).Where("calendar_id = ?", calendarID)
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Find(&reservations).Error
	if err != nil {
		return nil, 0, err
	}

	return reservations, total, nil
}

// CountUpcomingByCalendarIDs counts, per calendar, the reservations whose
// start time is strictly after the given instant and that are not cancelled.
// One grouped query covers a whole result page.
func (r *ReservationRepository) CountUpcomingByCalendarIDs(calendarIDs []uuid.UUID, at time.Time) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(calendarIDs))
	if len(calendarIDs) == 0 {
		return counts, nil
	}

	type row struct {
		CalendarID uuid.UUID
		Total      int64
	}
	var rows []row
	err := r.db.Model(&models.Reservation{}).
		Select("calendar_id, COUNT(*) AS total").
		Where("calendar_id IN ? AND start_from > ? AND status <> ?", calendarIDs, at, models.ReservationStatusCancelled).
		Group("calendar_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.CalendarID] = r.Total
	}
	return counts, nil
}

// Update updates a reservation
func (r *ReservationRepository) Update(reservation *models.Reservation) error {
	return r.db.Save(reservation).Error
}

// Delete hard-deletes a reservation
func (r *ReservationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Reservation{}, "id = ?", id).Error
}

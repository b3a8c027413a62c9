package repository

import (
	"time"

	"reservations-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	CreateWithMembership(org *models.Organization, membership *models.OrganizationMembership) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetWithMemberships(id uuid.UUID) (*models.Organization, error)
	Search(keyword string, limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.OrganizationMembership) error
	GetByID(id uuid.UUID) (*models.OrganizationMembership, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMembership, int64, error)
	GetByUserID(userID uuid.UUID) ([]models.OrganizationMembership, error)
	Delete(id uuid.UUID) error
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	GetByID(id string) (*models.OrganizationRole, error)
	GetAll() ([]models.OrganizationRole, error)
}

// CalendarRepositoryInterface defines the interface for calendar repository operations
type CalendarRepositoryInterface interface {
	Create(calendar *models.Calendar) error
	GetByID(id uuid.UUID) (*models.Calendar, error)
	GetWithReservations(id uuid.UUID) (*models.Calendar, error)
	Search(orgID uuid.UUID, keyword string, limit, offset int) ([]models.Calendar, int64, error)
	Update(calendar *models.Calendar) error
	Delete(id uuid.UUID) error
}

// ReservationRepositoryInterface defines the interface for reservation repository operations
type ReservationRepositoryInterface interface {
	Create(reservation *models.Reservation) error
	GetByID(id uuid.UUID) (*models.Reservation, error)
	Search(calendarID uuid.UUID, keyword string, limit, offset int) ([]models.Reservation, int64, error)
	CountUpcomingByCalendarIDs(calendarIDs []uuid.UUID, at time.Time) (map[uuid.UUID]int64, error)
	Update(reservation *models.Reservation) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUserName(userName string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(userID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	Search(req *SearchRequest) (*OrganizationListResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) (*OrganizationResponse, error)
}

// CalendarServiceInterface defines the interface for calendar service
type CalendarServiceInterface interface {
	Create(orgID, userID uuid.UUID, req *CreateCalendarRequest) (*CalendarResponse, error)
	Search(orgID uuid.UUID, req *SearchRequest) (*CalendarListResponse, error)
	GetByID(orgID, calendarID uuid.UUID) (*CalendarResponse, error)
	Update(orgID, calendarID uuid.UUID, req *UpdateCalendarRequest) (*CalendarResponse, error)
	Delete(orgID, calendarID uuid.UUID) (*CalendarResponse, error)
}

// ReservationServiceInterface defines the interface for reservation service
type ReservationServiceInterface interface {
	Create(orgID, calendarID, bookerID uuid.UUID, req *CreateReservationRequest) (*ReservationResponse, error)
	Search(orgID, calendarID uuid.UUID, req *SearchRequest) (*ReservationListResponse, error)
	GetByID(orgID, calendarID, reservationID uuid.UUID) (*ReservationResponse, error)
	Update(orgID, calendarID, reservationID uuid.UUID, req *UpdateReservationRequest) (*ReservationResponse, error)
	Delete(orgID, calendarID, reservationID uuid.UUID) (*ReservationResponse, error)
}

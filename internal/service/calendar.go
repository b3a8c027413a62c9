package service

import (
	"errors"
	"fmt"
	"time"

	"reservations-backend/internal/database/models"
	apperrors "reservations-backend/internal/errors"
	"reservations-backend/internal/logger"
	"reservations-backend/internal/pagination"
	"reservations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarService handles business logic for calendars
type CalendarService struct {
	repo            repository.CalendarRepositoryInterface
	orgRepo         repository.OrganizationRepositoryInterface
	reservationRepo repository.ReservationRepositoryInterface
	validator       *validator.Validate
}

// Ensure CalendarService implements CalendarServiceInterface
var _ CalendarServiceInterface = (*CalendarService)(nil)

// NewCalendarService creates a new calendar service
func NewCalendarService(repo repository.CalendarRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, reservationRepo repository.ReservationRepositoryInterface, validator *validator.Validate) *CalendarService {
	return &CalendarService{
		repo:            repo,
		orgRepo:         orgRepo,
		reservationRepo: reservationRepo,
		validator:       validator,
	}
}

// CreateCalendarRequest represents the request to create a calendar
type CreateCalendarRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	TimeZone     string `json:"time_zone" validate:"omitempty,max=100"`
	IsPublic     bool   `json:"is_public"`
	MinAttendees int    `json:"min_attendees" validate:"min=0"`
	MaxAttendees int    `json:"max_attendees" validate:"min=0"`
	TimeScale    int    `json:"time_scale" validate:"min=0"`
}

// UpdateCalendarRequest represents the request to update a calendar.
// Updates are full replaces: every mutable field is overwritten.
type UpdateCalendarRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	TimeZone     string `json:"time_zone" validate:"omitempty,max=100"`
	IsPublic     bool   `json:"is_public"`
	MinAttendees int    `json:"min_attendees" validate:"min=0"`
	MaxAttendees int    `json:"max_attendees" validate:"min=0"`
	TimeScale    int    `json:"time_scale" validate:"min=0"`
}

// CalendarResponse represents the response for calendar operations.
// NumOfValidReservations counts reservations starting strictly in the
// future whose status is not cancelled.
type CalendarResponse struct {
	ID                     uuid.UUID             `json:"id"`
	OrganizationID         uuid.UUID             `json:"organization_id"`
	Name                   string                `json:"name"`
	TimeZone               string                `json:"time_zone"`
	IsPublic               bool                  `json:"is_public"`
	MinAttendees           int                   `json:"min_attendees"`
	MaxAttendees           int                   `json:"max_attendees"`
	TimeScale              int                   `json:"time_scale"`
	CreatedBy              uuid.UUID             `json:"created_by"`
	CreatedAt              string                `json:"created_at"`
	UpdatedAt              string                `json:"updated_at"`
	NumOfValidReservations int64                 `json:"num_of_valid_reservations"`
	Reservations           []ReservationResponse `json:"reservations,omitempty"`
}

// CalendarListResponse represents a paginated list of calendars
type CalendarListResponse struct {
	Calendars    []CalendarResponse `json:"calendars"`
	TotalItems   int64              `json:"total_items"`
	TotalPages   int                `json:"total_pages"`
	CurrentPage  int                `json:"current_page"`
	ItemsPerPage int                `json:"items_per_page"`
	Sort         string             `json:"sort,omitempty"`
}

// Create creates a new calendar under an existing organization
func (s *CalendarService) Create(orgID, userID uuid.UUID, req *CreateCalendarRequest) (*CalendarResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// The owning organization must exist before anything is written
	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	timeZone := req.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}

	calendar := &models.Calendar{
		OrganizationID: orgID,
		Name:           req.Name,
		TimeZone:       timeZone,
		IsPublic:       req.IsPublic,
		MinAttendees:   req.MinAttendees,
		MaxAttendees:   req.MaxAttendees,
		TimeScale:      req.TimeScale,
		CreatedBy:      userID,
	}
	if calendar.TimeScale == 0 {
		calendar.TimeScale = 30
	}

	if err := s.repo.Create(calendar); err != nil {
		return nil, fmt.Errorf("failed to create calendar: %w", err)
	}

	return s.toResponse(calendar, 0), nil
}

// Search retrieves calendars of an organization matching the keyword with
// pagination. Each returned calendar is annotated with its count of upcoming
// reservations, computed in a single grouped query for the whole page.
func (s *CalendarService) Search(orgID uuid.UUID, req *SearchRequest) (*CalendarListResponse, error) {
	params := pagination.Params{
		CurrentPage:  req.CurrentPage,
		ItemsPerPage: req.ItemsPerPage,
		Sort:         req.Sort,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	calendars, total, err := s.repo.Search(orgID, req.Keyword, params.Limit(), params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to search calendars: %w", err)
	}

	ids := make([]uuid.UUID, len(calendars))
	for i, cal := range calendars {
		ids[i] = cal.ID
	}
	counts, err := s.reservationRepo.CountUpcomingByCalendarIDs(ids, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming reservations: %w", err)
	}

	responses := make([]CalendarResponse, len(calendars))
	for i, cal := range calendars {
		responses[i] = *s.toResponse(&cal, counts[cal.ID])
	}

	return &CalendarListResponse{
		Calendars:    responses,
		TotalItems:   total,
		TotalPages:   pagination.TotalPages(total, params.ItemsPerPage),
		CurrentPage:  params.CurrentPage,
		ItemsPerPage: params.ItemsPerPage,
		Sort:         params.Sort,
	}, nil
}

// GetByID retrieves a calendar with its reservations. A calendar outside the
// requested organization is reported as not found.
func (s *CalendarService) GetByID(orgID, calendarID uuid.UUID) (*CalendarResponse, error) {
	calendar, err := s.repo.GetWithReservations(calendarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarNotFound
		}
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	if calendar.OrganizationID != orgID {
		return nil, apperrors.ErrCalendarNotFound
	}

	counts, err := s.reservationRepo.CountUpcomingByCalendarIDs([]uuid.UUID{calendar.ID}, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming reservations: %w", err)
	}

	resp := s.toResponse(calendar, counts[calendar.ID])
	resp.Reservations = make([]ReservationResponse, len(calendar.Reservations))
	for i, res := range calendar.Reservations {
		resp.Reservations[i] = *toReservationResponse(&res)
	}
	return resp, nil
}

// Update overwrites all mutable fields of a calendar after the ownership check
func (s *CalendarService) Update(orgID, calendarID uuid.UUID, req *UpdateCalendarRequest) (*CalendarResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	calendar, err := s.repo.GetByID(calendarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarNotFound
		}
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	if err := verifyCalendarScope(calendar, orgID); err != nil {
		return nil, err
	}

	calendar.Name = req.Name
	calendar.TimeZone = req.TimeZone
	calendar.IsPublic = req.IsPublic
	calendar.MinAttendees = req.MinAttendees
	calendar.MaxAttendees = req.MaxAttendees
	calendar.TimeScale = req.TimeScale

	if err := s.repo.Update(calendar); err != nil {
		return nil, fmt.Errorf("failed to update calendar: %w", err)
	}

	return s.toResponse(calendar, 0), nil
}

// Delete hard-deletes a calendar after the ownership check and returns a
// snapshot of the deleted row
func (s *CalendarService) Delete(orgID, calendarID uuid.UUID) (*CalendarResponse, error) {
	calendar, err := s.repo.GetByID(calendarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarNotFound
		}
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	if err := verifyCalendarScope(calendar, orgID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(calendarID); err != nil {
		return nil, fmt.Errorf("failed to delete calendar: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"organization_id": orgID,
		"calendar_id":     calendarID,
	}).Info("Calendar deleted")

	return s.toResponse(calendar, 0), nil
}

// toResponse converts a calendar model to response
func (s *CalendarService) toResponse(cal *models.Calendar, upcoming int64) *CalendarResponse {
	return &CalendarResponse{
		ID:                     cal.ID,
		OrganizationID:         cal.OrganizationID,
		Name:                   cal.Name,
		TimeZone:               cal.TimeZone,
		IsPublic:               cal.IsPublic,
		MinAttendees:           cal.MinAttendees,
		MaxAttendees:           cal.MaxAttendees,
		TimeScale:              cal.TimeScale,
		CreatedBy:              cal.CreatedBy,
		CreatedAt:              cal.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:              cal.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		NumOfValidReservations: upcoming,
	}
}

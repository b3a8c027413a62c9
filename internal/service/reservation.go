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

// ReservationService handles business logic for reservations
type ReservationService struct {
	repo         repository.ReservationRepositoryInterface
	calendarRepo repository.CalendarRepositoryInterface
	orgRepo      repository.OrganizationRepositoryInterface
	validator    *validator.Validate
}

// Ensure ReservationService implements ReservationServiceInterface
var _ ReservationServiceInterface = (*ReservationService)(nil)

// NewReservationService creates a new reservation service
func NewReservationService(repo repository.ReservationRepositoryInterface, calendarRepo repository.CalendarRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate) *ReservationService {
	return &ReservationService{
		repo:         repo,
		calendarRepo: calendarRepo,
		orgRepo:      orgRepo,
		validator:    validator,
	}
}

// CreateReservationRequest represents the request to create a reservation
type CreateReservationRequest struct {
	Name       string                   `json:"name" validate:"required,min=1,max=100"`
	StartFrom  time.Time                `json:"start_from" validate:"required"`
	EndAt      time.Time                `json:"end_at" validate:"required"`
	IsWholeDay bool                     `json:"is_whole_day"`
	Status     models.ReservationStatus `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// UpdateReservationRequest represents the request to update a reservation.
// Updates are full replaces: every mutable field is overwritten.
type UpdateReservationRequest struct {
	Name       string                   `json:"name" validate:"required,min=1,max=100"`
	StartFrom  time.Time                `json:"start_from" validate:"required"`
	EndAt      time.Time                `json:"end_at" validate:"required"`
	IsWholeDay bool                     `json:"is_whole_day"`
	Status     models.ReservationStatus `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// ReservationResponse represents the response for reservation operations
type ReservationResponse struct {
	ID             uuid.UUID                `json:"id"`
	CalendarID     uuid.UUID                `json:"calendar_id"`
	OrganizationID uuid.UUID                `json:"organization_id"`
	Name           string                   `json:"name"`
	StartFrom      time.Time                `json:"start_from"`
	EndAt          time.Time                `json:"end_at"`
	IsWholeDay     bool                     `json:"is_whole_day"`
	BookerID       uuid.UUID                `json:"booker_id"`
	Status         models.ReservationStatus `json:"status"`
	CreatedAt      string                   `json:"created_at"`
	UpdatedAt      string                   `json:"updated_at"`
}

// ReservationListResponse represents a paginated list of reservations
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalItems   int64                 `json:"total_items"`
	TotalPages   int                   `json:"total_pages"`
	CurrentPage  int                   `json:"current_page"`
	ItemsPerPage int                   `json:"items_per_page"`
	Sort         string                `json:"sort,omitempty"`
}

// Create creates a new reservation. The organization and calendar named in
// the path must both exist and agree before anything is written.
func (s *ReservationService) Create(orgID, calendarID, bookerID uuid.UUID, req *CreateReservationRequest) (*ReservationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.EndAt.Before(req.StartFrom) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	calendar, err := s.calendarRepo.GetByID(calendarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarNotFound
		}
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	if calendar.OrganizationID != orgID {
		return nil, apperrors.ErrCalendarNotFound
	}

	status := req.Status
	if status == "" {
		status = models.ReservationStatusConfirmed
	}

	reservation := &models.Reservation{
		CalendarID:     calendarID,
		OrganizationID: orgID,
		Name:           req.Name,
		StartFrom:      req.StartFrom,
		EndAt:          req.EndAt,
		IsWholeDay:     req.IsWholeDay,
		BookerID:       bookerID,
		Status:         status,
	}

	if err := s.repo.Create(reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return toReservationResponse(reservation), nil
}

// Search retrieves reservations of a calendar matching the keyword with
// pagination. A calendar outside the requested organization is reported as
// not found.
func (s *ReservationService) Search(orgID, calendarID uuid.UUID, req *SearchRequest) (*ReservationListResponse, error) {
	params := pagination.Params{
		CurrentPage:  req.CurrentPage,
		ItemsPerPage: req.ItemsPerPage,
		Sort:         req.Sort,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	calendar, err := s.calendarRepo.GetByID(calendarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCalendarNotFound
		}
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	if calendar.OrganizationID != orgID {
		return nil, apperrors.ErrCalendarNotFound
	}

	reservations, total, err := s.repo.Search(calendarID, req.Keyword, params.Limit(), params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to search reservations: %w", err)
	}

	responses := make([]ReservationResponse, len(reservations))
	for i, res := range reservations {
		responses[i] = *toReservationResponse(&res)
	}

	return &ReservationListResponse{
		Reservations: responses,
		TotalItems:   total,
		TotalPages:   pagination.TotalPages(total, params.ItemsPerPage),
		CurrentPage:  params.CurrentPage,
		ItemsPerPage: params.ItemsPerPage,
		Sort:         params.Sort,
	}, nil
}

// GetByID retrieves a reservation. A reservation outside the requested
// organization or calendar is reported as not found.
func (s *ReservationService) GetByID(orgID, calendarID, reservationID uuid.UUID) (*ReservationResponse, error) {
	reservation, err := s.repo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if reservation.OrganizationID != orgID || reservation.CalendarID != calendarID {
		return nil, apperrors.ErrReservationNotFound
	}

	return toReservationResponse(reservation), nil
}

// Update overwrites all mutable fields of a reservation after the ownership check
func (s *ReservationService) Update(orgID, calendarID, reservationID uuid.UUID, req *UpdateReservationRequest) (*ReservationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.EndAt.Before(req.StartFrom) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	reservation, err := s.repo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if err := verifyReservationScope(reservation, orgID, calendarID); err != nil {
		return nil, err
	}

	reservation.Name = req.Name
	reservation.StartFrom = req.StartFrom
	reservation.EndAt = req.EndAt
	reservation.IsWholeDay = req.IsWholeDay
	if req.Status != "" {
		reservation.Status = req.Status
	}

	if err := s.repo.Update(reservation); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	return toReservationResponse(reservation), nil
}

// Delete hard-deletes a reservation after the ownership check and returns a
// snapshot of the deleted row
func (s *ReservationService) Delete(orgID, calendarID, reservationID uuid.UUID) (*ReservationResponse, error) {
	reservation, err := s.repo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if err := verifyReservationScope(reservation, orgID, calendarID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(reservationID); err != nil {
		return nil, fmt.Errorf("failed to delete reservation: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"calendar_id":    calendarID,
		"reservation_id": reservationID,
	}).Info("Reservation deleted")

	return toReservationResponse(reservation), nil
}

// toReservationResponse converts a reservation model to response
func toReservationResponse(res *models.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:             res.ID,
		CalendarID:     res.CalendarID,
		OrganizationID: res.OrganizationID,
		Name:           res.Name,
		StartFrom:      res.StartFrom,
		EndAt:          res.EndAt,
		IsWholeDay:     res.IsWholeDay,
		BookerID:       res.BookerID,
		Status:         res.Status,
		CreatedAt:      res.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      res.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

package service

import (
	"errors"
	"fmt"

	"reservations-backend/internal/database/models"
	apperrors "reservations-backend/internal/errors"
	"reservations-backend/internal/logger"
	"reservations-backend/internal/pagination"
	"reservations-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// Ensure OrganizationService implements OrganizationServiceInterface
var _ OrganizationServiceInterface = (*OrganizationService)(nil)

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateOrganizationRequest represents the request to update an organization.
// Updates are full replaces: every mutable field is overwritten.
type UpdateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	IsSuspended bool   `json:"is_suspended"`
}

// MembershipResponse represents a membership grant in API responses
type MembershipResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	UserID         uuid.UUID `json:"user_id"`
	RoleID         string    `json:"role_id"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	CreatedBy   uuid.UUID            `json:"created_by"`
	IsSuspended bool                 `json:"is_suspended"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
	Memberships []MembershipResponse `json:"memberships,omitempty"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	TotalItems    int64                  `json:"total_items"`
	TotalPages    int                    `json:"total_pages"`
	CurrentPage   int                    `json:"current_page"`
	ItemsPerPage  int                    `json:"items_per_page"`
	Sort          string                 `json:"sort,omitempty"`
}

// Create creates a new organization and grants the creator the admin role.
// Both rows are written in one transaction.
func (s *OrganizationService) Create(userID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	org := &models.Organization{
		Name:      req.Name,
		CreatedBy: userID,
	}
	membership := &models.OrganizationMembership{
		UserID: userID,
		RoleID: models.RoleAdmin,
	}

	if err := s.repo.CreateWithMembership(org, membership); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"organization_id": org.ID,
		"created_by":      userID,
	}).Info("Organization created")

	resp := s.toResponse(org)
	resp.Memberships = []MembershipResponse{toMembershipResponse(membership)}
	return resp, nil
}

// Search retrieves organizations matching the keyword with pagination
func (s *OrganizationService) Search(req *SearchRequest) (*OrganizationListResponse, error) {
	params := pagination.Params{
		CurrentPage:  req.CurrentPage,
		ItemsPerPage: req.ItemsPerPage,
		Sort:         req.Sort,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	orgs, total, err := s.repo.Search(req.Keyword, params.Limit(), params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to search organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}

	return &OrganizationListResponse{
		Organizations: responses,
		TotalItems:    total,
		TotalPages:    pagination.TotalPages(total, params.ItemsPerPage),
		CurrentPage:   params.CurrentPage,
		ItemsPerPage:  params.ItemsPerPage,
		Sort:          params.Sort,
	}, nil
}

// GetByID retrieves an organization by ID, including its membership grants
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetWithMemberships(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	resp := s.toResponse(org)
	resp.Memberships = make([]MembershipResponse, len(org.Memberships))
	for i, m := range org.Memberships {
		resp.Memberships[i] = toMembershipResponse(&m)
	}
	return resp, nil
}

// Update overwrites all mutable fields of an organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	org.Name = req.Name
	org.IsSuspended = req.IsSuspended

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.toResponse(org), nil
}

// Delete hard-deletes an organization and returns a snapshot of the deleted row
func (s *OrganizationService) Delete(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete organization: %w", err)
	}

	logger.New().WithField("organization_id", id).Info("Organization deleted")

	return s.toResponse(org), nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		CreatedBy:   org.CreatedBy,
		IsSuspended: org.IsSuspended,
		CreatedAt:   org.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   org.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// toMembershipResponse converts a membership model to response
func toMembershipResponse(m *models.OrganizationMembership) MembershipResponse {
	return MembershipResponse{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		RoleID:         m.RoleID,
	}
}

package service_test

import (
	"testing"
	"time"

	"reservations-backend/internal/database/models"
	apperrors "reservations-backend/internal/errors"
	"reservations-backend/internal/mocks"
	"reservations-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	organizationService *service.OrganizationService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.organizationService = service.NewOrganizationService(suite.mockOrgRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization together with the
// creator's admin membership
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	userID := uuid.New()
	req := &service.CreateOrganizationRequest{
		Name: "Acme Dental Clinic",
	}

	suite.mockOrgRepo.EXPECT().
		CreateWithMembership(gomock.Any(), gomock.Any()).
		DoAndReturn(func(org *models.Organization, membership *models.OrganizationMembership) error {
			assert.Equal(suite.T(), req.Name, org.Name)
			assert.Equal(suite.T(), userID, org.CreatedBy)
			assert.Equal(suite.T(), userID, membership.UserID)
			assert.Equal(suite.T(), models.RoleAdmin, membership.RoleID)
			org.ID = uuid.New()
			membership.OrganizationID = org.ID
			return nil
		}).
		Times(1)

	response, err := suite.organizationService.Create(userID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), userID, response.CreatedBy)
	assert.False(suite.T(), response.IsSuspended)
	assert.Len(suite.T(), response.Memberships, 1)
	assert.Equal(suite.T(), models.RoleAdmin, response.Memberships[0].RoleID)
}

// TestCreateOrganizationValidationError tests creating an organization with
// an empty name; the repository must never be touched
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationError() {
	req := &service.CreateOrganizationRequest{
		Name: "",
	}

	response, err := suite.organizationService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestSearchOrganizations tests the paged keyword search
func (suite *OrganizationServiceTestSuite) TestSearchOrganizations() {
	orgs := []models.Organization{
		{
			BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			Name:      "Acme Dental Clinic",
			CreatedBy: uuid.New(),
		},
		{
			BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			Name:      "Acme Coworking",
			CreatedBy: uuid.New(),
		},
	}

	// page 2 of size 2 translates to limit 2, offset 2
	suite.mockOrgRepo.EXPECT().
		Search("Acme", 2, 2).
		Return(orgs, int64(5), nil).
		Times(1)

	response, err := suite.organizationService.Search(&service.SearchRequest{
		Keyword:      "Acme",
		CurrentPage:  2,
		ItemsPerPage: 2,
		Sort:         "name",
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Organizations, 2)
	assert.Equal(suite.T(), int64(5), response.TotalItems)
	assert.Equal(suite.T(), 3, response.TotalPages)
	assert.Equal(suite.T(), 2, response.CurrentPage)
	assert.Equal(suite.T(), 2, response.ItemsPerPage)
	// Sort is echoed back even though results keep storage order
	assert.Equal(suite.T(), "name", response.Sort)
}

// TestSearchOrganizationsInvalidPagination tests that non-positive paging is
// rejected before any query runs
func (suite *OrganizationServiceTestSuite) TestSearchOrganizationsInvalidPagination() {
	response, err := suite.organizationService.Search(&service.SearchRequest{
		CurrentPage:  0,
		ItemsPerPage: 10,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetOrganization tests retrieving an organization with its memberships
func (suite *OrganizationServiceTestSuite) TestGetOrganization() {
	orgID := uuid.New()
	userID := uuid.New()
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: orgID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:      "Acme Dental Clinic",
		CreatedBy: userID,
		Memberships: []models.OrganizationMembership{
			{
				BaseModel:      models.BaseModel{ID: uuid.New()},
				OrganizationID: orgID,
				UserID:         userID,
				RoleID:         models.RoleAdmin,
			},
		},
	}

	suite.mockOrgRepo.EXPECT().
		GetWithMemberships(orgID).
		Return(org, nil).
		Times(1)

	response, err := suite.organizationService.GetByID(orgID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), orgID, response.ID)
	assert.Len(suite.T(), response.Memberships, 1)
	assert.Equal(suite.T(), userID, response.Memberships[0].UserID)
}

// TestGetOrganizationNotFound tests retrieving a missing organization
func (suite *OrganizationServiceTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetWithMemberships(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.organizationService.GetByID(orgID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestUpdateOrganization tests the full-replace update
func (suite *OrganizationServiceTestSuite) TestUpdateOrganization() {
	orgID := uuid.New()
	org := &models.Organization{
		BaseModel:   models.BaseModel{ID: orgID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:        "Old Name",
		CreatedBy:   uuid.New(),
		IsSuspended: false,
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(org, nil).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Organization) error {
			assert.Equal(suite.T(), "New Name", updated.Name)
			assert.True(suite.T(), updated.IsSuspended)
			return nil
		}).
		Times(1)

	response, err := suite.organizationService.Update(orgID, &service.UpdateOrganizationRequest{
		Name:        "New Name",
		IsSuspended: true,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Name", response.Name)
	assert.True(suite.T(), response.IsSuspended)
}

// TestUpdateOrganizationNotFound tests updating a missing organization
func (suite *OrganizationServiceTestSuite) TestUpdateOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.organizationService.Update(orgID, &service.UpdateOrganizationRequest{
		Name: "New Name",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestDeleteOrganization tests the hard delete and its returned snapshot
func (suite *OrganizationServiceTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: orgID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:      "Doomed Org",
		CreatedBy: uuid.New(),
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(org, nil).
		Times(1)

	suite.mockOrgRepo.EXPECT().
		Delete(orgID).
		Return(nil).
		Times(1)

	response, err := suite.organizationService.Delete(orgID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), orgID, response.ID)
	assert.Equal(suite.T(), "Doomed Org", response.Name)
}

// TestDeleteOrganizationNotFound tests deleting a missing organization;
// no delete must be issued
func (suite *OrganizationServiceTestSuite) TestDeleteOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.organizationService.Delete(orgID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}

package handlers

import (
	"net/http"
	"testing"

	apperrors "reservations-backend/internal/errors"
	"reservations-backend/internal/mocks"
	"reservations-backend/internal/service"
	"reservations-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
	userID                  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)

	suite.httpSuite = testutils.SetupHTTPTest()

	// Stand-in for the auth middleware: inject the caller identity directly
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})

	orgs := suite.httpSuite.Router.Group("/organization")
	{
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.POST("/search", suite.handler.SearchOrganizations)
		orgs.GET("/:orgId", suite.handler.GetOrganization)
		orgs.PUT("/:orgId", suite.handler.UpdateOrganization)
		orgs.DELETE("/:orgId", suite.handler.DeleteOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name": "Acme Dental Clinic",
	}

	expectedResponse := &service.OrganizationResponse{
		ID:        orgID,
		Name:      "Acme Dental Clinic",
		CreatedBy: suite.userID,
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	}

	suite.mockOrganizationService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organization", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
	assert.Equal(suite.T(), suite.userID, response.CreatedBy)
}

// TestCreateOrganizationValidationError tests the 400 mapping of validation errors
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationValidationError() {
	requestBody := map[string]interface{}{
		"name": "",
	}

	suite.mockOrganizationService.EXPECT().
		Create(suite.userID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "is required")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organization", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
}

// TestSearchOrganizations tests the paged search endpoint
func (suite *OrganizationHandlerTestSuite) TestSearchOrganizations() {
	requestBody := map[string]interface{}{
		"keyword":        "Acme",
		"current_page":   1,
		"items_per_page": 10,
		"sort":           "name",
	}

	expectedResponse := &service.OrganizationListResponse{
		Organizations: []service.OrganizationResponse{
			{ID: uuid.New(), Name: "Acme Dental Clinic"},
		},
		TotalItems:   1,
		TotalPages:   1,
		CurrentPage:  1,
		ItemsPerPage: 10,
		Sort:         "name",
	}

	suite.mockOrganizationService.EXPECT().
		Search(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organization/search", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Organizations, 1)
	assert.Equal(suite.T(), "name", response.Sort)
}

// TestSearchOrganizationsInvalidPagination tests the 400 mapping of bad paging
func (suite *OrganizationHandlerTestSuite) TestSearchOrganizationsInvalidPagination() {
	requestBody := map[string]interface{}{
		"current_page":   0,
		"items_per_page": 10,
	}

	suite.mockOrganizationService.EXPECT().
		Search(gomock.Any()).
		Return(nil, apperrors.ErrInvalidPaginationParams).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organization/search", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetOrganization tests retrieving an organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	orgID := uuid.New()
	expectedResponse := &service.OrganizationResponse{
		ID:   orgID,
		Name: "Acme Dental Clinic",
	}

	suite.mockOrganizationService.EXPECT().
		GetByID(orgID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/organization/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), orgID, response.ID)
}

// TestGetOrganizationInvalidID tests the 400 mapping of a malformed UUID
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/organization/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

// TestGetOrganizationNotFound tests the 404 mapping
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		GetByID(orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/organization/"+orgID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestUpdateOrganization tests updating an organization
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganization() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name":         "New Name",
		"is_suspended": true,
	}

	expectedResponse := &service.OrganizationResponse{
		ID:          orgID,
		Name:        "New Name",
		IsSuspended: true,
	}

	suite.mockOrganizationService.EXPECT().
		Update(orgID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/organization/"+orgID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.IsSuspended)
}

// TestUpdateOrganizationNotFound tests the 404 mapping on update
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationNotFound() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"name": "New Name",
	}

	suite.mockOrganizationService.EXPECT().
		Update(orgID, gomock.Any()).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/organization/"+orgID.String(), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestDeleteOrganization tests deleting an organization; the snapshot of the
// deleted row comes back with status 200
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()
	expectedResponse := &service.OrganizationResponse{
		ID:   orgID,
		Name: "Doomed Org",
	}

	suite.mockOrganizationService.EXPECT().
		Delete(orgID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/organization/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Doomed Org", response.Name)
}

// TestDeleteOrganizationNotFound tests the 404 mapping on delete
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockOrganizationService.EXPECT().
		Delete(orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/organization/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}

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

// ReservationServiceTestSuite defines the test suite for ReservationService
type ReservationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockReservationRepo *mocks.MockReservationRepositoryInterface
	mockCalendarRepo    *mocks.MockCalendarRepositoryInterface
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	reservationService  *service.ReservationService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReservationRepo = mocks.NewMockReservationRepositoryInterface(suite.ctrl)
	suite.mockCalendarRepo = mocks.NewMockCalendarRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.reservationService = service.NewReservationService(suite.mockReservationRepo, suite.mockCalendarRepo, suite.mockOrgRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ReservationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateReservation tests creating a reservation with the default status
func (suite *ReservationServiceTestSuite) TestCreateReservation() {
	orgID := uuid.New()
	calendarID := uuid.New()
	bookerID := uuid.New()
	start := time.Now().Add(time.Hour)
	req := &service.CreateReservationRequest{
		Name:      "Checkup",
		StartFrom: start,
		EndAt:     start.Add(30 * time.Minute),
	}

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}}, nil).
		Times(1)

	suite.mockCalendarRepo.EXPECT().
		GetByID(calendarID).
		Return(&models.Calendar{
			BaseModel:      models.BaseModel{ID: calendarID},
			OrganizationID: orgID,
		}, nil).
		Times(1)

	suite.mockReservationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(res *models.Reservation) error {
			assert.Equal(suite.T(), calendarID, res.CalendarID)
			assert.Equal(suite.T(), orgID, res.OrganizationID)
			assert.Equal(suite.T(), bookerID, res.BookerID)
			// Omitted status defaults to confirmed
			assert.Equal(suite.T(), models.ReservationStatusConfirmed, res.Status)
			res.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.reservationService.Create(orgID, calendarID, bookerID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), models.ReservationStatusConfirmed, response.Status)
}

// TestCreateReservationInvalidTimeRange tests that an end before the start is
// rejected before any lookup
func (suite *ReservationServiceTestSuite) TestCreateReservationInvalidTimeRange() {
	start := time.Now().Add(time.Hour)
	response, err := suite.reservationService.Create(uuid.New(), uuid.New(), uuid.New(), &service.CreateReservationRequest{
		Name:      "Checkup",
		StartFrom: start,
		EndAt:     start.Add(-time.Minute),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateReservationInvalidStatus tests that an unknown status is rejected
func (suite *ReservationServiceTestSuite) TestCreateReservationInvalidStatus() {
	start := time.Now().Add(time.Hour)
	response, err := suite.reservationService.Create(uuid.New(), uuid.New(), uuid.New(), &service.CreateReservationRequest{
		Name:      "Checkup",
		StartFrom: start,
		EndAt:     start.Add(time.Hour),
		Status:    "tentative",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateReservationOrganizationNotFound tests that nothing is written
// under a missing organization
func (suite *ReservationServiceTestSuite) TestCreateReservationOrganizationNotFound() {
	orgID := uuid.New()
	start := time.Now().Add(time.Hour)

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.reservationService.Create(orgID, uuid.New(), uuid.New(), &service.CreateReservationRequest{
		Name:      "Checkup",
		StartFrom: start,
		EndAt:     start.Add(time.Hour),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestCreateReservationCalendarOutsideOrganization tests that a calendar from
// another organization is reported as a missing calendar
func (suite *ReservationServiceTestSuite) TestCreateReservationCalendarOutsideOrganization() {
	orgID := uuid.New()
	calendarID := uuid.New()
	start := time.Now().Add(time.Hour)

	suite.mockOrgRepo.EXPECT().
		GetByID(orgID).
		Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}}, nil).
		Times(1)

	suite.mockCalendarRepo.EXPECT().
		GetByID(calendarID).
		Return(&models.Calendar{
			BaseModel:      models.BaseModel{ID: calendarID},
			OrganizationID: uuid.New(),
		}, nil).
		Times(1)

	response, err := suite.reservationService.Create(orgID, calendarID, uuid.New(), &service.CreateReservationRequest{
		Name:      "Checkup",
		StartFrom: start,
		EndAt:     start.Add(time.Hour),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCalendarNotFound)
}

// TestSearchReservations tests the paged keyword search within a calendar
func (suite *ReservationServiceTestSuite) TestSearchReservations() {
	orgID := uuid.New()
	calendarID := uuid.New()
	reservations := []models.Reservation{
		{
			BaseModel:      models.BaseModel{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			CalendarID:     calendarID,
			OrganizationID: orgID,
			Name:           "Checkup",
			Status:         models.ReservationStatusConfirmed,
		},
	}

	suite.mockCalendarRepo.EXPECT().
		GetByID(calendarID).
		Return(&models.Calendar{
			BaseModel:      models.BaseModel{ID: calendarID},
			OrganizationID: orgID,
		}, nil).
		Times(1)

	suite.mockReservationRepo.EXPECT().
		Search(calendarID, "Check", 5, 0).
		Return(reservations, int64(1), nil).
		Times(1)

	response, err := suite.reservationService.Search(orgID, calendarID, &service.SearchRequest{
		Keyword:      "Check",
		CurrentPage:  1,
		ItemsPerPage: 5,
		Sort:         "start_from",
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Reservations, 1)
	assert.Equal(suite.T(), int64(1), response.TotalItems)
	assert.Equal(suite.T(), "start_from", response.Sort)
}

// TestSearchReservationsCalendarOutsideOrganization tests that searching a
// foreign calendar is reported as a missing calendar
func (suite *ReservationServiceTestSuite) TestSearchReservationsCalendarOutsideOrganization() {
	calendarID := uuid.New()

	suite.mockCalendarRepo.EXPECT().
		GetByID(calendarID).
		Return(&models.Calendar{
			BaseModel:      models.BaseModel{ID: calendarID},
			OrganizationID: uuid.New(),
		}, nil).
		Times(1)

	response, err := suite.reservationService.Search(uuid.New(), calendarID, &service.SearchRequest{
		CurrentPage:  1,
		ItemsPerPage: 5,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCalendarNotFound)
}

// TestGetReservation tests retrieving a reservation within its scope
func (suite *ReservationServiceTestSuite) TestGetReservation() {
	orgID := uuid.New()
	calendarID := uuid.New()
	reservationID := uuid.New()
	reservation := &models.Reservation{
		BaseModel:      models.BaseModel{ID: reservationID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CalendarID:     calendarID,
		OrganizationID: orgID,
		Name:           "Checkup",
		Status:         models.ReservationStatusConfirmed,
	}

	suite.mockReservationRepo.EXPECT().
		GetByID(reservationID).
		Return(reservation, nil).
		Times(1)

	response, err := suite.reservationService.GetByID(orgID, calendarID, reservationID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), reservationID, response.ID)
	assert.Equal(suite.T(), "Checkup", response.Name)
}

// TestGetReservationWrongCalendar tests that a reservation read through the
// wrong calendar is reported as not found
func (suite *ReservationServiceTestSuite) TestGetReservationWrongCalendar() {
	orgID := uuid.New()
	reservationID := uuid.New()
	reservation := &models.Reservation{
		BaseModel:      models.BaseModel{ID: reservationID},
		CalendarID:     uuid.New(),
		OrganizationID: orgID,
	}

	suite.mockReservationRepo.EXPECT().
		GetByID(reservationID).
		Return(reservation, nil).
		Times(1)

	response, err := suite.reservationService.GetByID(orgID, uuid.New(), reservationID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrReservationNotFound)
	assert.False(suite.T(), apperrors.IsAuthorization(err))
}

// TestUpdateReservation tests the full-replace update; an empty status keeps
// the stored one
func (suite *ReservationServiceTestSuite) TestUpdateReservation() {
	orgID := uuid.New()
	calendarID := uuid.New()
	reservationID := uuid.New()
	start := time.Now().Add(2 * time.Hour)
	reservation := &models.Reservation{
		BaseModel:      models.BaseModel{ID: reservationID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CalendarID:     calendarID,
		OrganizationID: orgID,
		Name:           "Checkup",
		Status:         models.ReservationStatusPending,
	}

	suite.mockReservationRepo.EXPECT().
		GetByID(reservationID).
		Return(reservation, nil).
		Times(1)

	suite.mockReservationRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Reservation) error {
			assert.Equal(suite.T(), "Follow-up", updated.Name)
			assert.Equal(suite.T(), models.ReservationStatusPending, updated.Status)
			return nil
		}).
		Times(1)

	response, err := suite.reservationService.Update(orgID, calendarID, reservationID, &service.UpdateReservationRequest{
		Name:      "Follow-up",
		StartFrom: start,
		EndAt:     start.Add(time.Hour),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Follow-up", response.Name)
	assert.Equal(suite.T(), models.ReservationStatusPending, response.Status)
}

// TestUpdateReservationStatusChange tests that a provided status overwrites
// the stored one
func (suite *ReservationServiceTestSuite) TestUpdateReservationStatusChange() {
	orgID := uuid.New()
	calendarID := uuid.New()
	reservationID := uuid.New()
	start := time.Now().Add(2 * time.Hour)
	reservation := &models.Reservation{
		BaseModel:      models.BaseModel{ID: reservationID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CalendarID:     calendarID,
		OrganizationID: orgID,
		Name:           "Checkup",
		Status:         models.ReservationStatusConfirmed,
	}

	suite.mockReservationRepo.EXPECT().
		GetByID(reservationID).
		Return(reservation, nil).
		Times(1)

	suite.mockReservationRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.reservationService.Update(orgID, calendarID, reservationID, &service.UpdateReservationRequest{
		Name:      "Checkup",
		StartFrom: start,
		EndAt:     start.Add(time.Hour),
		Status:    models.ReservationStatusCancelled,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReservationStatusCancelled, response.Status)
}

// TestUpdateReservationWrongScope tests that a cross-scope update is rejected
// as an authorization failure and writes nothing
func (suite *ReservationServiceTestSuite) TestUpdateReservationWrongScope() {
	reservationID := uuid.New()
	start := time.Now().Add(2 * time.Hour)
	reservation := &models.Reservation{
		BaseModel:      models.BaseModel{ID: reservationID},
		CalendarID:     uuid.New(),
		OrganizationID: uuid.New(),
	}

	suite.mockReservationRepo.EXPECT().
		GetByID(reservationID).
		Return(reservation, nil).
		Times(1)

	response, err := suite.reservationService.Update(uuid.New(), uuid.New(), reservationID, &service.UpdateReservationRequest{
		Name:      "Checkup",
		StartFrom: start,
		EndAt:     start.Add(time.Hour),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantMismatch)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestDeleteReservation tests the hard delete and its returned snapshot
func (suite *ReservationServiceTestSuite) TestDeleteReservation() {
	orgID := uuid.New()
	calendarID := uuid.New()
	reservationID := uuid.New()
	reservation := &models.Reservation{
		BaseModel:      models.BaseModel{ID: reservationID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CalendarID:     calendarID,
		OrganizationID: orgID,
		Name:           "Checkup",
		Status:         models.ReservationStatusConfirmed,
	}

	suite.mockReservationRepo.EXPECT().
		GetByID(reservationID).
		Return(reservation, nil).
		Times(1)

	suite.mockReservationRepo.EXPECT().
		Delete(reservationID).
		Return(nil).
		Times(1)

	response, err := suite.reservationService.Delete(orgID, calendarID, reservationID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), reservationID, response.ID)
	assert.Equal(suite.T(), "Checkup", response.Name)
}

// TestDeleteReservationWrongScope tests that a cross-scope delete is rejected
// and no delete is issued
func (suite *ReservationServiceTestSuite) TestDeleteReservationWrongScope() {
	reservationID := uuid.New()
	reservation := &models.Reservation{
		BaseModel:      models.BaseModel{ID: reservationID},
		CalendarID:     uuid.New(),
		OrganizationID: uuid.New(),
	}

	suite.mockReservationRepo.EXPECT().
		GetByID(reservationID).
		Return(reservation, nil).
		Times(1)

	response, err := suite.reservationService.Delete(uuid.New(), uuid.New(), reservationID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantMismatch)
}

// TestReservationServiceTestSuite runs the test suite
func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}

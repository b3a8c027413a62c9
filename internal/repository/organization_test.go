//go:build integration
// +build integration

package repository

import (
	"testing"

	"reservations-backend/internal/database/models"
	"reservations-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createUser persists a user so membership foreign keys resolve
func (suite *OrganizationRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
	suite.NotZero(org.UpdatedAt)
}

// TestCreateWithMembership tests that the creator grant lands in the same
// transaction as the organization itself
func (suite *OrganizationRepositoryTestSuite) TestCreateWithMembership() {
	user := suite.createUser()
	org := suite.factories.Organization.WithCreator(user.ID)
	membership := suite.factories.Membership.ForOrganization(uuid.Nil, user.ID)

	err := suite.repo.CreateWithMembership(org, membership)

	suite.NoError(err)
	suite.Equal(org.ID, membership.OrganizationID)

	retrieved, err := suite.repo.GetWithMemberships(org.ID)
	suite.NoError(err)
	suite.Len(retrieved.Memberships, 1)
	suite.Equal(user.ID, retrieved.Memberships[0].UserID)
	suite.Equal(models.RoleAdmin, retrieved.Memberships[0].RoleID)
}

// TestCreateWithMembershipRollsBack tests that a failed membership insert
// takes the organization row down with it
func (suite *OrganizationRepositoryTestSuite) TestCreateWithMembershipRollsBack() {
	user := suite.createUser()

	// An existing membership whose primary key the second insert will collide with
	existingOrg := suite.factories.Organization.WithCreator(user.ID)
	suite.NoError(suite.repo.Create(existingOrg))
	existingMembership := suite.factories.Membership.ForOrganization(existingOrg.ID, user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(existingMembership).Error)

	org := suite.factories.Organization.WithCreator(user.ID)
	conflicting := suite.factories.Membership.ForOrganization(uuid.Nil, user.ID)
	conflicting.ID = existingMembership.ID

	err := suite.repo.CreateWithMembership(org, conflicting)

	suite.Error(err)

	_, err = suite.repo.GetByID(org.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.factories.Organization.WithName("Acme Dental Clinic")
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetByID(org.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal("Acme Dental Clinic", retrieved.Name)
	suite.Equal(org.CreatedBy, retrieved.CreatedBy)
	suite.False(retrieved.IsSuspended)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(org)
}

// TestSearch tests the keyword search; matching is case-sensitive
func (suite *OrganizationRepositoryTestSuite) TestSearch() {
	for _, name := range []string{"Acme Dental Clinic", "acme labs", "Riverside Coworking"} {
		org := suite.factories.Organization.WithName(name)
		suite.NoError(suite.repo.Create(org))
	}

	orgs, total, err := suite.repo.Search("Acme", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(orgs, 1)
	suite.Equal("Acme Dental Clinic", orgs[0].Name)
}

// TestSearchEmptyKeyword tests that an empty keyword matches everything
func (suite *OrganizationRepositoryTestSuite) TestSearchEmptyKeyword() {
	for i := 0; i < 3; i++ {
		org := suite.factories.Organization.WithName("org-" + uuid.New().String()[:8])
		suite.NoError(suite.repo.Create(org))
	}

	orgs, total, err := suite.repo.Search("", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(orgs, 3)
}

// TestSearchPagination tests that the total counts the whole filtered set,
// not just the returned page
func (suite *OrganizationRepositoryTestSuite) TestSearchPagination() {
	for i := 0; i < 5; i++ {
		org := suite.factories.Organization.WithName("paged-" + uuid.New().String()[:8])
		suite.NoError(suite.repo.Create(org))
	}

	orgs, total, err := suite.repo.Search("paged", 2, 0)
	suite.NoError(err)
	suite.Len(orgs, 2)
	suite.Equal(int64(5), total)

	orgs, total, err = suite.repo.Search("paged", 2, 4)
	suite.NoError(err)
	suite.Len(orgs, 1)
	suite.Equal(int64(5), total)
}

// TestUpdate tests updating an organization
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	org.Name = "Renamed Clinic"
	org.IsSuspended = true

	err := suite.repo.Update(org)

	suite.NoError(err)

	updated, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal("Renamed Clinic", updated.Name)
	suite.True(updated.IsSuspended)
}

// TestDelete tests deleting an organization
func (suite *OrganizationRepositoryTestSuite) TestDelete() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	err := suite.repo.Delete(org.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(org.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteCascadesToCalendars tests that deleting an organization takes its
// calendars with it
func (suite *OrganizationRepositoryTestSuite) TestDeleteCascadesToCalendars() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	calendar := suite.factories.Calendar.WithOrganization(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(calendar).Error)

	err := suite.repo.Delete(org.ID)
	suite.NoError(err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Calendar{}).Where("id = ?", calendar.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestDeleteNotFound tests deleting a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())

	// Deleting a missing row is not an error
	suite.NoError(err)
}

// Run the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}

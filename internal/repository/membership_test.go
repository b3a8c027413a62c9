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

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createUserAndOrganization persists the rows a membership references
func (suite *MembershipRepositoryTestSuite) createUserAndOrganization() (*models.User, *models.Organization) {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	org := suite.factories.Organization.WithCreator(user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	return user, org
}

// TestCreate tests creating a new membership
func (suite *MembershipRepositoryTestSuite) TestCreate() {
	user, org := suite.createUserAndOrganization()
	membership := suite.factories.Membership.ForOrganization(org.ID, user.ID)

	err := suite.repo.Create(membership)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, membership.ID)
}

// TestGetByID tests retrieving a membership by ID
func (suite *MembershipRepositoryTestSuite) TestGetByID() {
	user, org := suite.createUserAndOrganization()
	membership := suite.factories.Membership.ForOrganization(org.ID, user.ID)
	suite.NoError(suite.repo.Create(membership))

	retrieved, err := suite.repo.GetByID(membership.ID)

	suite.NoError(err)
	suite.Equal(membership.ID, retrieved.ID)
	suite.Equal(org.ID, retrieved.OrganizationID)
	suite.Equal(user.ID, retrieved.UserID)
	suite.Equal(models.RoleAdmin, retrieved.RoleID)
}

// TestGetByIDNotFound tests retrieving a non-existent membership
func (suite *MembershipRepositoryTestSuite) TestGetByIDNotFound() {
	membership, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(membership)
}

// TestGetByOrganizationID tests listing an organization's memberships with pagination
func (suite *MembershipRepositoryTestSuite) TestGetByOrganizationID() {
	user, org := suite.createUserAndOrganization()

	first := suite.factories.Membership.ForOrganization(org.ID, user.ID)
	suite.NoError(suite.repo.Create(first))

	for i := 0; i < 2; i++ {
		member := suite.factories.User.Create()
		suite.NoError(suite.baseTestSuite.DB.Create(member).Error)

		membership := suite.factories.Membership.ForOrganization(org.ID, member.ID)
		membership.RoleID = models.RoleMember
		suite.NoError(suite.repo.Create(membership))
	}

	memberships, total, err := suite.repo.GetByOrganizationID(org.ID, 2, 0)

	suite.NoError(err)
	suite.Len(memberships, 2)
	suite.Equal(int64(3), total)
}

// TestGetByUserID tests listing every grant a user holds across organizations
func (suite *MembershipRepositoryTestSuite) TestGetByUserID() {
	user, orgA := suite.createUserAndOrganization()

	orgB := suite.factories.Organization.WithCreator(user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(orgB).Error)

	suite.NoError(suite.repo.Create(suite.factories.Membership.ForOrganization(orgA.ID, user.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Membership.ForOrganization(orgB.ID, user.ID)))

	memberships, err := suite.repo.GetByUserID(user.ID)

	suite.NoError(err)
	suite.Len(memberships, 2)
}

// TestDelete tests deleting a membership
func (suite *MembershipRepositoryTestSuite) TestDelete() {
	user, org := suite.createUserAndOrganization()
	membership := suite.factories.Membership.ForOrganization(org.ID, user.ID)
	suite.NoError(suite.repo.Create(membership))

	err := suite.repo.Delete(membership.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(membership.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}

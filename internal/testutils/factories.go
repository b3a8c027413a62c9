package testutils

import (
	"time"

	"reservations-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The user name and email are
// derived from the generated ID so repeated calls never collide on the unique
// indexes.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserName:       "user-" + suffix,
		Email:          "user-" + suffix + "@test.com",
		Name:           "Test User",
		PasswordHash:   "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		EmailConfirmed: true,
	}
}

// WithUserName sets a custom user name
func (f *UserFactory) WithUserName(userName string) *models.User {
	user := f.Create()
	user.UserName = userName
	return user
}

// WithEmail sets a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Organization",
		CreatedBy:   uuid.New(),
		IsSuspended: false,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithCreator sets the creating user for the organization
func (f *OrganizationFactory) WithCreator(userID uuid.UUID) *models.Organization {
	org := f.Create()
	org.CreatedBy = userID
	return org
}

// MembershipFactory provides methods to create test OrganizationMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test OrganizationMembership with default values
func (f *MembershipFactory) Create() *models.OrganizationMembership {
	return &models.OrganizationMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		RoleID:         models.RoleAdmin,
	}
}

// ForOrganization sets the organization and user for the membership
func (f *MembershipFactory) ForOrganization(orgID, userID uuid.UUID) *models.OrganizationMembership {
	membership := f.Create()
	membership.OrganizationID = orgID
	membership.UserID = userID
	return membership
}

// WithRole sets a custom role for the membership
func (f *MembershipFactory) WithRole(roleID string) *models.OrganizationMembership {
	membership := f.Create()
	membership.RoleID = roleID
	return membership
}

// CalendarFactory provides methods to create test Calendar data
type CalendarFactory struct{}

// NewCalendarFactory creates a new CalendarFactory
func NewCalendarFactory() *CalendarFactory {
	return &CalendarFactory{}
}

// Create creates a test Calendar with default values
func (f *CalendarFactory) Create() *models.Calendar {
	return &models.Calendar{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Test Calendar",
		TimeZone:       "UTC",
		IsPublic:       false,
		MinAttendees:   0,
		MaxAttendees:   10,
		TimeScale:      30,
		CreatedBy:      uuid.New(),
	}
}

// WithOrganization sets the organization ID for the calendar
func (f *CalendarFactory) WithOrganization(orgID uuid.UUID) *models.Calendar {
	calendar := f.Create()
	calendar.OrganizationID = orgID
	return calendar
}

// WithName sets a custom name for the calendar
func (f *CalendarFactory) WithName(name string) *models.Calendar {
	calendar := f.Create()
	calendar.Name = name
	return calendar
}

// ReservationFactory provides methods to create test Reservation data
type ReservationFactory struct{}

// NewReservationFactory creates a new ReservationFactory
func NewReservationFactory() *ReservationFactory {
	return &ReservationFactory{}
}

// Create creates a test Reservation with default values. The slot starts one
// hour from now so it counts as upcoming.
func (f *ReservationFactory) Create() *models.Reservation {
	start := time.Now().Add(time.Hour).Truncate(time.Second)
	return &models.Reservation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CalendarID:     uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Test Reservation",
		StartFrom:      start,
		EndAt:          start.Add(time.Hour),
		IsWholeDay:     false,
		BookerID:       uuid.New(),
		Status:         models.ReservationStatusConfirmed,
	}
}

// ForCalendar sets the owning calendar and organization for the reservation
func (f *ReservationFactory) ForCalendar(orgID, calendarID uuid.UUID) *models.Reservation {
	reservation := f.Create()
	reservation.OrganizationID = orgID
	reservation.CalendarID = calendarID
	return reservation
}

// WithName sets a custom name for the reservation
func (f *ReservationFactory) WithName(name string) *models.Reservation {
	reservation := f.Create()
	reservation.Name = name
	return reservation
}

// WithStatus sets a custom status for the reservation
func (f *ReservationFactory) WithStatus(status models.ReservationStatus) *models.Reservation {
	reservation := f.Create()
	reservation.Status = status
	return reservation
}

// WithTimes sets explicit start and end times for the reservation
func (f *ReservationFactory) WithTimes(startFrom, endAt time.Time) *models.Reservation {
	reservation := f.Create()
	reservation.StartFrom = startFrom
	reservation.EndAt = endAt
	return reservation
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Membership   *MembershipFactory
	Calendar     *CalendarFactory
	Reservation  *ReservationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
		Calendar:     NewCalendarFactory(),
		Reservation:  NewReservationFactory(),
	}
}

// CreateTenantHierarchy creates a user with an organization they administer,
// one calendar in that organization and one upcoming reservation on it.
func (fs *FactorySet) CreateTenantHierarchy() (*models.User, *models.Organization, *models.OrganizationMembership, *models.Calendar, *models.Reservation) {
	user := fs.User.Create()

	org := fs.Organization.WithCreator(user.ID)

	membership := fs.Membership.ForOrganization(org.ID, user.ID)

	calendar := fs.Calendar.WithOrganization(org.ID)
	calendar.CreatedBy = user.ID

	reservation := fs.Reservation.ForCalendar(org.ID, calendar.ID)
	reservation.BookerID = user.ID

	return user, org, membership, calendar, reservation
}

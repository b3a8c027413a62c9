package service

import (
	"reservations-backend/internal/database/models"
	apperrors "reservations-backend/internal/errors"

	"github.com/google/uuid"
)

// Ownership checks are pure and run before every mutation or deletion.
// Scope mismatches on mutating requests surface as ErrTenantMismatch (401);
// reads that miss scope return the entity's not-found error instead so
// callers cannot probe for resources outside their path.

// verifyCalendarScope checks that a fetched calendar belongs to the
// organization named in the request path.
func verifyCalendarScope(calendar *models.Calendar, orgID uuid.UUID) error {
	if calendar.OrganizationID != orgID {
		return apperrors.ErrTenantMismatch
	}
	return nil
}

// verifyReservationScope checks that a fetched reservation belongs to both
// the organization and the calendar named in the request path.
func verifyReservationScope(reservation *models.Reservation, orgID, calendarID uuid.UUID) error {
	if reservation.OrganizationID != orgID {
		return apperrors.ErrTenantMismatch
	}
	if reservation.CalendarID != calendarID {
		return apperrors.ErrTenantMismatch
	}
	return nil
}

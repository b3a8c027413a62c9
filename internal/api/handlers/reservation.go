package handlers

import (
	"net/http"

	"reservations-backend/internal/auth"
	apperrors "reservations-backend/internal/errors"
	"reservations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReservationHandler handles HTTP requests for reservations
type ReservationHandler struct {
	service service.ReservationServiceInterface
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(service service.ReservationServiceInterface) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// pathIDs parses the organization and calendar IDs shared by every
// reservation route.
func (h *ReservationHandler) pathIDs(c *gin.Context) (orgID, calendarID uuid.UUID, ok bool) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return uuid.Nil, uuid.Nil, false
	}
	calendarID, err = uuid.Parse(c.Param("calendarId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid calendar ID"})
		return uuid.Nil, uuid.Nil, false
	}
	return orgID, calendarID, true
}

// CreateReservation handles POST /:orgId/calendar/:calendarId/reservation
// @Summary Create a new reservation
// @Description Create a reservation on a calendar; the organization and calendar must exist and agree
// @Tags reservations
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param calendarId path string true "Calendar ID (UUID)"
// @Param reservation body service.CreateReservationRequest true "Reservation data"
// @Success 200 {object} service.ReservationResponse "Successfully created reservation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 404 {object} map[string]interface{} "Organization or calendar not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar/{calendarId}/reservation [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	orgID, calendarID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNoAuthenticatedUser.Error()})
		return
	}

	var req service.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reservation, err := h.service.Create(orgID, calendarID, userID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// SearchReservations handles POST /:orgId/calendar/:calendarId/reservation/search
// @Summary Search reservations
// @Description Search reservations of a calendar by keyword with pagination
// @Tags reservations
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param calendarId path string true "Calendar ID (UUID)"
// @Param search body service.SearchRequest true "Search parameters"
// @Success 200 {object} service.ReservationListResponse "Successfully retrieved reservations"
// @Failure 400 {object} map[string]interface{} "Invalid pagination parameters"
// @Failure 404 {object} map[string]interface{} "Calendar not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar/{calendarId}/reservation/search [post]
func (h *ReservationHandler) SearchReservations(c *gin.Context) {
	orgID, calendarID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	var req service.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reservations, err := h.service.Search(orgID, calendarID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search reservations", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation handles GET /:orgId/calendar/:calendarId/reservation/:reservationId
// @Summary Get reservation by ID
// @Description Get a reservation scoped to the organization and calendar in the path
// @Tags reservations
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param calendarId path string true "Calendar ID (UUID)"
// @Param reservationId path string true "Reservation ID (UUID)"
// @Success 200 {object} service.ReservationResponse "Successfully retrieved reservation"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Reservation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar/{calendarId}/reservation/{reservationId} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	orgID, calendarID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	reservation, err := h.service.GetByID(orgID, calendarID, reservationID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reservation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// UpdateReservation handles PUT /:orgId/calendar/:calendarId/reservation/:reservationId
// @Summary Update reservation
// @Description Overwrite all mutable fields of a reservation after the ownership check
// @Tags reservations
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param calendarId path string true "Calendar ID (UUID)"
// @Param reservationId path string true "Reservation ID (UUID)"
// @Param reservation body service.UpdateReservationRequest true "Updated reservation data"
// @Success 200 {object} service.ReservationResponse "Successfully updated reservation"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Reservation belongs to another scope"
// @Failure 404 {object} map[string]interface{} "Reservation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar/{calendarId}/reservation/{reservationId} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	orgID, calendarID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	var req service.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reservation, err := h.service.Update(orgID, calendarID, reservationID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation handles DELETE /:orgId/calendar/:calendarId/reservation/:reservationId
// @Summary Delete reservation
// @Description Hard-delete a reservation after the ownership check and return a snapshot of the deleted row
// @Tags reservations
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param calendarId path string true "Calendar ID (UUID)"
// @Param reservationId path string true "Reservation ID (UUID)"
// @Success 200 {object} service.ReservationResponse "Successfully deleted reservation"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 401 {object} map[string]interface{} "Reservation belongs to another scope"
// @Failure 404 {object} map[string]interface{} "Reservation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar/{calendarId}/reservation/{reservationId} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	orgID, calendarID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	reservation, err := h.service.Delete(orgID, calendarID, reservationID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reservation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

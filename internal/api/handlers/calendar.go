package handlers

import (
	"net/http"

	"reservations-backend/internal/auth"
	apperrors "reservations-backend/internal/errors"
	"reservations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalendarHandler handles HTTP requests for calendars
type CalendarHandler struct {
	service service.CalendarServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(service service.CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// CreateCalendar handles POST /:orgId/calendar
// @Summary Create a new calendar
// @Description Create a calendar under an existing organization
// @Tags calendars
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param calendar body service.CreateCalendarRequest true "Calendar data"
// @Success 200 {object} service.CalendarResponse "Successfully created calendar"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar [post]
func (h *CalendarHandler) CreateCalendar(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNoAuthenticatedUser.Error()})
		return
	}

	var req service.CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	calendar, err := h.service.Create(orgID, userID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create calendar", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// SearchCalendars handles POST /:orgId/calendar/search
// @Summary Search calendars
// @Description Search calendars of an organization by keyword with pagination; each result carries its upcoming-reservation count
// @Tags calendars
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param search body service.SearchRequest true "Search parameters"
// @Success 200 {object} service.CalendarListResponse "Successfully retrieved calendars"
// @Failure 400 {object} map[string]interface{} "Invalid pagination parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar/search [post]
func (h *CalendarHandler) SearchCalendars(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	var req service.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	calendars, err := h.service.Search(orgID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search calendars", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, calendars)
}

// GetCalendar handles GET /:orgId/calendar/:calendarId
// @Summary Get calendar by ID
// @Description Get a calendar with its reservations and upcoming-reservation count
// @Tags calendars
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param calendarId path string true "Calendar ID (UUID)"
// @Success 200 {object} service.CalendarResponse "Successfully retrieved calendar"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Calendar not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar/{calendarId} [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}
	calendarID, err := uuid.Parse(c.Param("calendarId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid calendar ID"})
		return
	}

	calendar, err := h.service.GetByID(orgID, calendarID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get calendar", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// UpdateCalendar handles PUT /:orgId/calendar/:calendarId
// @Summary Update calendar
// @Description Overwrite all mutable fields of a calendar after the ownership check
// @Tags calendars
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param calendarId path string true "Calendar ID (UUID)"
// @Param calendar body service.UpdateCalendarRequest true "Updated calendar data"
// @Success 200 {object} service.CalendarResponse "Successfully updated calendar"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Calendar belongs to another organization"
// @Failure 404 {object} map[string]interface{} "Calendar not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar/{calendarId} [put]
func (h *CalendarHandler) UpdateCalendar(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}
	calendarID, err := uuid.Parse(c.Param("calendarId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid calendar ID"})
		return
	}

	var req service.UpdateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	calendar, err := h.service.Update(orgID, calendarID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update calendar", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// DeleteCalendar handles DELETE /:orgId/calendar/:calendarId
// @Summary Delete calendar
// @Description Hard-delete a calendar after the ownership check and return a snapshot of the deleted row
// @Tags calendars
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param calendarId path string true "Calendar ID (UUID)"
// @Success 200 {object} service.CalendarResponse "Successfully deleted calendar"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 401 {object} map[string]interface{} "Calendar belongs to another organization"
// @Failure 404 {object} map[string]interface{} "Calendar not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /{orgId}/calendar/{calendarId} [delete]
func (h *CalendarHandler) DeleteCalendar(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}
	calendarID, err := uuid.Parse(c.Param("calendarId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid calendar ID"})
		return
	}

	calendar, err := h.service.Delete(orgID, calendarID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete calendar", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, calendar)
}

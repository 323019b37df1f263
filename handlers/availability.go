package handlers

import (
	"net/http"
	"strconv"

	"lensbook/models"
	availabilitySvc "lensbook/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes schedule management and slot lookups over HTTP.
type AvailabilityHandler struct {
	Service availabilitySvc.AvailabilityService
}

func NewAvailabilityHandler(service availabilitySvc.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: service}
}

// GetAvailability handles GET /professionals/:id/availability.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	avail, err := h.Service.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": avail})
}

// UpdateWeeklySchedule handles PUT /professionals/:id/availability/schedule.
func (h *AvailabilityHandler) UpdateWeeklySchedule(c *gin.Context) {
	var input struct {
		WeeklySchedule map[string]models.DaySchedule `json:"weeklySchedule" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateWeeklySchedule(c.Request.Context(), c.Param("id"), input.WeeklySchedule); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// AddBlockedDate handles POST /professionals/:id/availability/blocked.
func (h *AvailabilityHandler) AddBlockedDate(c *gin.Context) {
	var input models.BlockedDate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.AddBlockedDate(c.Request.Context(), c.Param("id"), input); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"blocked": input.Date})
}

// RemoveBlockedDate handles DELETE /professionals/:id/availability/blocked/:date.
func (h *AvailabilityHandler) RemoveBlockedDate(c *gin.Context) {
	if err := h.Service.RemoveBlockedDate(c.Request.Context(), c.Param("id"), c.Param("date")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// SetSpecialDate handles PUT /professionals/:id/availability/special.
func (h *AvailabilityHandler) SetSpecialDate(c *gin.Context) {
	var input models.SpecialDate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.SetSpecialDate(c.Request.Context(), c.Param("id"), input); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": input.Date})
}

// RemoveSpecialDate handles DELETE /professionals/:id/availability/special/:date.
func (h *AvailabilityHandler) RemoveSpecialDate(c *gin.Context) {
	if err := h.Service.RemoveSpecialDate(c.Request.Context(), c.Param("id"), c.Param("date")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// UpdateSettings handles PUT /professionals/:id/availability/settings.
func (h *AvailabilityHandler) UpdateSettings(c *gin.Context) {
	var input models.AvailabilitySettings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateSettings(c.Request.Context(), c.Param("id"), input); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// GetAvailableSlots handles GET /professionals/:id/slots?date=...&duration=...
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": "duration must be an integer"})
		return
	}

	result, err := h.Service.GetAvailableSlots(c.Request.Context(), c.Param("id"), date, duration)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMonthlyCalendar handles GET /professionals/:id/calendar?year=...&month=...
func (h *AvailabilityHandler) GetMonthlyCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": "month must be an integer"})
		return
	}

	days, err := h.Service.GetMonthlyAvailability(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

package handlers

import (
	"net/http"

	"lensbook/models"
	bookingSvc "lensbook/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Engine bookingSvc.BookingService
}

func NewBookingHandler(engine bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Engine: engine}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		ClientID string `json:"clientId" binding:"required"`
		models.BookingInput
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Engine.CreateBooking(c.Request.Context(), input.ClientID, input.BookingInput)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Engine.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ConfirmBooking handles POST /bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		ProfessionalID string `json:"professionalId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Engine.ConfirmBooking(c.Request.Context(), c.Param("id"), input.ProfessionalID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// RejectBooking handles POST /bookings/:id/reject.
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	var input struct {
		ProfessionalID string `json:"professionalId" binding:"required"`
		Reason         string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Engine.RejectBooking(c.Request.Context(), c.Param("id"), input.ProfessionalID, input.Reason)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelBooking handles POST /bookings/:id/cancel. Either party may cancel;
// the actor is identified in the payload.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		ActorID string `json:"actorId" binding:"required"`
		Reason  string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Engine.CancelBooking(c.Request.Context(), c.Param("id"), input.ActorID, input.Reason)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// RescheduleBooking handles POST /bookings/:id/reschedule.
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var input models.RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Engine.RescheduleBooking(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CompleteBooking handles POST /bookings/:id/complete.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	var input struct {
		ProfessionalID string `json:"professionalId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Engine.CompleteBooking(c.Request.Context(), c.Param("id"), input.ProfessionalID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// AssignProfessional handles POST /bookings/:id/assign.
func (h *BookingHandler) AssignProfessional(c *gin.Context) {
	var input struct {
		ProfessionalID string `json:"professionalId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Engine.AssignProfessional(c.Request.Context(), c.Param("id"), input.ProfessionalID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// DeleteBooking handles DELETE /bookings/:id (soft delete).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Engine.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListCandidates handles GET /bookings/:id/candidates, returning approved
// professionals ranked by locality match for an unassigned booking.
func (h *BookingHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.Engine.RankCandidates(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// ListUnassignedBookings handles GET /bookings/unassigned, the admin
// assignment queue.
func (h *BookingHandler) ListUnassignedBookings(c *gin.Context) {
	bookings, err := h.Engine.ListUnassignedBookings(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListClientBookings handles GET /users/:id/bookings.
func (h *BookingHandler) ListClientBookings(c *gin.Context) {
	status := models.Status(c.Query("status"))
	bookings, err := h.Engine.ListClientBookings(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListProfessionalBookings handles GET /professionals/:id/bookings.
func (h *BookingHandler) ListProfessionalBookings(c *gin.Context) {
	status := models.Status(c.Query("status"))
	bookings, err := h.Engine.ListProfessionalBookings(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

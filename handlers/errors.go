package handlers

import (
	"errors"
	"net/http"

	availabilityRepo "lensbook/database/repository/availability"
	bookingRepo "lensbook/database/repository/booking"
	professionalRepo "lensbook/database/repository/professional"
	availabilitySvc "lensbook/services/availability"
	bookingSvc "lensbook/services/booking"
	"lensbook/utils"

	"github.com/gin-gonic/gin"
)

// respondWithError maps the engine's typed errors onto HTTP status codes.
// Anything unrecognized is treated as an internal failure.
func respondWithError(c *gin.Context, err error) {
	var (
		slotErr       *bookingSvc.SlotUnavailableError
		transitionErr *bookingSvc.InvalidTransitionError
		bookingValErr *bookingSvc.ValidationError
		availValErr   *availabilitySvc.ValidationError
	)

	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound),
		errors.Is(err, professionalRepo.ErrProfessionalNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.As(err, &slotErr):
		utils.JSONError(c, http.StatusConflict, "slot unavailable", err.Error())
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, "invalid transition", err.Error())
	case errors.As(err, &bookingValErr), errors.As(err, &availValErr),
		errors.Is(err, utils.ErrInvalidTimeFormat),
		errors.Is(err, bookingSvc.ErrReasonRequired):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, bookingSvc.ErrProfessionalNotApproved),
		errors.Is(err, bookingSvc.ErrAlreadyAssigned),
		errors.Is(err, availabilityRepo.ErrDateAlreadyBlocked):
		utils.JSONError(c, http.StatusUnprocessableEntity, "request not allowed", err.Error())
	case errors.Is(err, bookingSvc.ErrActorNotAllowed):
		utils.JSONError(c, http.StatusForbidden, "forbidden", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

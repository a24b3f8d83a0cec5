package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/helpers"
	"github.com/easyevent/server/internal/middleware"
	"github.com/easyevent/server/internal/models"
)

// currentClaims returns the authenticated claims or writes a 401 and returns
// nil.
func currentClaims(c *gin.Context) *helpers.CustomClaims {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
	}
	return claims
}

// writeServiceError translates service errors into HTTP responses. Typed
// domain errors map to 4xx; anything unrecognized is a 500 with the raw
// message.
func writeServiceError(c *gin.Context, err error) {
	var offerErr *models.OfferTooLowError
	var capacityErr *models.CapacityExceededError
	var transitionErr *models.InvalidTransitionError

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse("not found"))
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrEmailTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrHallUnavailable):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	case errors.As(err, &offerErr), errors.As(err, &capacityErr):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(err.Error()))
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
	}
}

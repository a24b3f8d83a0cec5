package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

func CreateBookingHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req models.CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), &req, claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking request submitted"))
	}
}

// ListVenueRequestsHandler returns the pending requests for one of the
// caller's venues.
func ListVenueRequestsHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		bookings, err := bs.ListVenueRequests(c.Request.Context(), c.Param("venueId"), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func ListVenueApprovedHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		bookings, err := bs.ListVenueApproved(c.Request.Context(), c.Param("venueId"), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

// GetBookingDetailHandler serves both the owner's request detail view and the
// user's own booking detail view; the service scopes access.
func GetBookingDetailHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		detail, err := bs.GetBookingDetail(c.Request.Context(), c.Param("bookingId"), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(detail, ""))
	}
}

func ListMyBookingsHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		bookings, err := bs.ListUserBookings(c.Request.Context(), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

type updateRequestStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
	Reason string               `json:"reason"`
}

func UpdateRequestStatusHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req updateRequestStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.UpdateRequestStatus(c.Request.Context(), c.Param("bookingId"), claims.UserID(), req.Status, req.Reason)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking status updated"))
	}
}

func UpdateCompletionStatusHandler(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req services.CompletionUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.SetCompletionStatus(c.Request.Context(), &req, claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking status updated"))
	}
}

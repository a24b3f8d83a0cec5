package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

// Admin moderation endpoints. Route-level RequireRole keeps these admin-only.

func ListAllVenuesHandler(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := paginationParams(c)
		if !ok {
			return
		}

		venues, total, err := vs.ListAllVenues(c.Request.Context(), offset, limit)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(venues, page, limit, total))
	}
}

type setVenueStatusRequest struct {
	Status models.VenueStatus `json:"status" binding:"required"`
	Reason string             `json:"reason"`
}

func SetVenueStatusHandler(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setVenueStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		venue, err := vs.SetVenueStatus(c.Request.Context(), c.Param("id"), req.Status, req.Reason)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, "Venue status updated"))
	}
}

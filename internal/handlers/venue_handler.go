package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

func CreateVenueHandler(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}
		if !claims.IsVenueOwner() && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only venue owners can create venues"))
			return
		}

		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := vs.CreateVenue(c.Request.Context(), &venue, claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Venue created successfully"))
	}
}

func ListVenuesHandler(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := paginationParams(c)
		if !ok {
			return
		}

		venues, total, err := vs.ListVenues(c.Request.Context(), offset, limit)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(venues, page, limit, total))
	}
}

func GetVenueByIDHandler(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venue, err := vs.GetVenueByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func ListMyVenuesHandler(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		venues, err := vs.ListVenuesByOwner(c.Request.Context(), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venues, ""))
	}
}

func paginationParams(c *gin.Context) (offset, limit int, ok bool) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}
	return offset, limit, true
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

func CreateHallHandler(hs *services.HallService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var hall models.Hall
		if err := c.ShouldBindJSON(&hall); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := hs.CreateHall(c.Request.Context(), &hall, c.Param("venueId"), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Hall created successfully"))
	}
}

func ListHallsByVenueHandler(hs *services.HallService) gin.HandlerFunc {
	return func(c *gin.Context) {
		halls, err := hs.ListHallsByVenue(c.Request.Context(), c.Param("venueId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(halls, ""))
	}
}

func UpdateHallHandler(hs *services.HallService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req services.UpdateHallRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		hall, err := hs.UpdateHall(c.Request.Context(), c.Param("id"), claims.UserID(), &req)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(hall, "Hall updated successfully"))
	}
}

func DeleteHallHandler(hs *services.HallService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		if err := hs.DeleteHall(c.Request.Context(), c.Param("id"), claims.UserID()); err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Hall deleted successfully"))
	}
}

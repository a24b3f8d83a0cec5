package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

func CreateReviewHandler(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req services.CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		review, err := rs.CreateReview(c.Request.Context(), &req, claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(review, "Review submitted"))
	}
}

type getReviewsRequest struct {
	VenueID string `json:"venueId" binding:"required"`
}

// GetVenueReviewsHandler takes the venue id in the request body; the web
// client has always fetched reviews with a POST.
func GetVenueReviewsHandler(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req getReviewsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		reviews, err := rs.ListVenueReviews(c.Request.Context(), req.VenueID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(reviews, ""))
	}
}

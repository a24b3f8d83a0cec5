package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

type addFoodRequest struct {
	Venue    string  `json:"venue" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Category string  `json:"category" binding:"required"`
	MealType string  `json:"meal_type"`
}

func AddFoodHandler(fs *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req addFoodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		food := &models.Food{
			Name:     req.Name,
			Price:    req.Price,
			Category: req.Category,
			MealType: req.MealType,
		}

		created, err := fs.AddFood(c.Request.Context(), food, req.Venue, claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Food item added successfully"))
	}
}

func ListFoodsByVenueHandler(fs *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		foods, err := fs.ListFoodsByVenue(c.Request.Context(), c.Param("venueId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(foods, ""))
	}
}

func UpdateFoodHandler(fs *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req services.UpdateFoodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		food, err := fs.UpdateFood(c.Request.Context(), c.Param("id"), claims.UserID(), &req)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(food, "Food item updated successfully"))
	}
}

func DeleteFoodHandler(fs *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		if err := fs.DeleteFood(c.Request.Context(), c.Param("id"), claims.UserID()); err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Food item deleted successfully"))
	}
}

type createFoodCategoryRequest struct {
	Venue string `json:"venue" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

func CreateFoodCategoryHandler(fs *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req createFoodCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		category := &models.FoodCategory{Name: req.Name}
		created, err := fs.CreateFoodCategory(c.Request.Context(), category, req.Venue, claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Food category created successfully"))
	}
}

func ListFoodCategoriesHandler(fs *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := fs.ListFoodCategories(c.Request.Context(), c.Param("venueId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(categories, ""))
	}
}

func DeleteFoodCategoryHandler(fs *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		if err := fs.DeleteFoodCategory(c.Request.Context(), c.Param("id"), claims.UserID()); err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Food category deleted successfully"))
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

func CreateTemplateHandler(ts *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req models.CreateTemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		tpl, err := ts.CreateTemplate(c.Request.Context(), &req, claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(tpl, "Template created successfully"))
	}
}

func ListTemplatesHandler(ts *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		templates, err := ts.ListTemplates(c.Request.Context(), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(templates, ""))
	}
}

func UpdateTemplateHandler(ts *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		var req models.UpdateTemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		tpl, err := ts.UpdateTemplate(c.Request.Context(), c.Param("id"), claims.UserID(), &req)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(tpl, "Template updated successfully"))
	}
}

func SetDefaultTemplateHandler(ts *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		tpl, err := ts.SetDefaultTemplate(c.Request.Context(), c.Param("id"), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(tpl, "Default template updated"))
	}
}

func DeleteTemplateHandler(ts *services.TemplateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		if err := ts.DeleteTemplate(c.Request.Context(), c.Param("id"), claims.UserID()); err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Template deleted successfully"))
	}
}

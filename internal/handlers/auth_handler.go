package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/helpers"
	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

func SignupHandler(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		result, err := us.Signup(c.Request.Context(), &req)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		setAuthCookie(c, result.Token)
		c.JSON(http.StatusCreated, models.SuccessResponse(result, "Account created successfully"))
	}
}

func LoginHandler(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		result, err := us.Login(c.Request.Context(), &req)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		setAuthCookie(c, result.Token)
		c.JSON(http.StatusOK, models.SuccessResponse(result, "Logged in successfully"))
	}
}

func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("access_token", "", -1, "/", "", isProduction(), true)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}

func GetProfileHandler(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		profile, err := us.GetProfile(c.Request.Context(), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(profile, ""))
	}
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(
		"access_token",
		token,
		int(helpers.AccessTokenTTL.Seconds()),
		"/",
		"", // let Gin pick current domain
		isProduction(),
		true,
	)
}

func isProduction() bool {
	return os.Getenv("GIN_MODE") == "release"
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/models"
	"github.com/maint-tn/maint-gateway/stores"
)

const (
	msgInvalidInput   = "invalid input"
	msgLoginSuccess   = "Login successful"
	msgLogoutSuccess  = "Logout successful"
	msgAccountCreated = "Account created successfully."
)

// GetMe reports the current session. An absent session is a normal negative
// result: user null, isAuthenticated false, status 200.
func GetMe(ctx *gin.Context) {
	auth := stores.NewAuthStore(backendFor(ctx))
	user := auth.CurrentUser()
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"user":            user,
		"isAuthenticated": user != nil,
	})
}

func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	auth := stores.NewAuthStore(backendFor(ctx))
	user, err := auth.Login(loginData.Email, loginData.Password)
	if err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgLoginSuccess,
		"user":    user,
	})
}

// Register creates the account on the backend, then logs straight in with the
// same credentials so the session cookies ride back on this response.
func Register(ctx *gin.Context) {
	var registerData models.RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	auth := stores.NewAuthStore(backendFor(ctx))
	user, err := auth.Register(registerData)
	if err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": msgAccountCreated,
		"user":    user,
	})
}

// Logout always succeeds from the browser's point of view; the backend call's
// outcome only affects whether its cookie-clearing headers were relayed.
func Logout(ctx *gin.Context) {
	auth := stores.NewAuthStore(backendFor(ctx))
	auth.Logout()
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLogoutSuccess})
}

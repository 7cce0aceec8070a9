package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/stores"
)

// Deps are the process-wide services the page controllers share. They are
// constructed once in main and injected here; per-request state (the
// browser's cookies) is bound through backendFor.
type Deps struct {
	Backend  *api.Client
	Settings *stores.SettingsStore
	Cart     *stores.CartStore
}

var deps Deps

func Init(d Deps) {
	deps = d
}

func backendFor(ctx *gin.Context) *api.Caller {
	return deps.Backend.ForRequest(ctx)
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// statusFromError maps a backend failure onto the gateway's response status:
// the backend's own status when it answered, 502 when it never did.
func statusFromError(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status > 0 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

var serviceCache listCache[models.Service]

func AdminGetServices(ctx *gin.Context) {
	var services []models.Service
	if err := backendFor(ctx).Get("/service/", &services); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch services", err)
		return
	}
	serviceCache.replace(services)

	search := ctx.Query("search")
	visible := make([]models.Service, 0, len(services))
	for _, service := range services {
		if matchesSearch(search, service.Name, service.Slug) {
			visible = append(visible, service)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"services": visible})
}

func AdminGetService(ctx *gin.Context) {
	id := ctx.Param("id")

	var service models.Service
	if err := backendFor(ctx).Get("/service/"+id, &service); err != nil {
		if api.IsNotFound(err) {
			sendJSONResponse(ctx, http.StatusNotFound, gin.H{
				"message":  "Service not found",
				"redirect": "/admin/services",
			})
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve service", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, service)
}

func AdminCreateService(ctx *gin.Context) {
	var service models.Service
	if err := ctx.ShouldBindJSON(&service); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var created models.Service
	if err := backendFor(ctx).Post("/service/", service, &created); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func AdminUpdateService(ctx *gin.Context) {
	id := ctx.Param("id")

	var service models.Service
	if err := ctx.ShouldBindJSON(&service); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var updated models.Service
	if err := backendFor(ctx).Put("/service/"+id, service, &updated); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func AdminDeleteService(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid service ID")
		return
	}

	serviceCache.remove(func(service models.Service) bool { return service.ID == id })

	if err := backendFor(ctx).Delete("/service/"+strconv.Itoa(id), nil); err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Service removed from list.",
			"notice":  err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Service deleted successfully."})
}

// Service categories back the admin/services/categories screen.

func AdminGetServiceCategories(ctx *gin.Context) {
	var categories []models.ServiceCategory
	if err := backendFor(ctx).Get("/service/categories", &categories); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch service categories", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func AdminCreateServiceCategory(ctx *gin.Context) {
	var category models.ServiceCategory
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var created models.ServiceCategory
	if err := backendFor(ctx).Post("/service/categories", category, &created); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func AdminDeleteServiceCategory(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := backendFor(ctx).Delete("/service/categories/"+id, nil); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Service category deleted successfully."})
}

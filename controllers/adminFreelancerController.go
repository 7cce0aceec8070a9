package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

var freelancerCache listCache[models.Freelancer]

func AdminGetFreelancers(ctx *gin.Context) {
	var freelancers []models.Freelancer
	if err := backendFor(ctx).Get("/freelancers", &freelancers); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch freelancers", err)
		return
	}
	freelancerCache.replace(freelancers)

	search := ctx.Query("search")
	visible := make([]models.Freelancer, 0, len(freelancers))
	for _, freelancer := range freelancers {
		name := freelancer.FirstName + " " + freelancer.LastName
		if matchesSearch(search, name, freelancer.Email) {
			visible = append(visible, freelancer)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"freelancers": visible})
}

func AdminGetFreelancer(ctx *gin.Context) {
	id := ctx.Param("id")

	var freelancer models.Freelancer
	if err := backendFor(ctx).Get("/freelancers/"+id, &freelancer); err != nil {
		if api.IsNotFound(err) {
			sendJSONResponse(ctx, http.StatusNotFound, gin.H{
				"message":  "Freelancer not found",
				"redirect": "/admin/freelancers",
			})
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve freelancer", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, freelancer)
}

func AdminCreateFreelancer(ctx *gin.Context) {
	var freelancer models.Freelancer
	if err := ctx.ShouldBindJSON(&freelancer); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var created models.Freelancer
	if err := backendFor(ctx).Post("/freelancers", freelancer, &created); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func AdminUpdateFreelancer(ctx *gin.Context) {
	id := ctx.Param("id")

	var freelancer models.Freelancer
	if err := ctx.ShouldBindJSON(&freelancer); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var updated models.Freelancer
	if err := backendFor(ctx).Put("/freelancers/"+id, freelancer, &updated); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func AdminDeleteFreelancer(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid freelancer ID")
		return
	}

	freelancerCache.remove(func(freelancer models.Freelancer) bool { return freelancer.ID == id })

	if err := backendFor(ctx).Delete("/freelancers/"+strconv.Itoa(id), nil); err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Freelancer removed from list.",
			"notice":  err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Freelancer deleted successfully."})
}

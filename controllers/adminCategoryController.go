package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

var categoryCache listCache[models.Category]

func AdminGetCategories(ctx *gin.Context) {
	var categories []models.Category
	if err := backendFor(ctx).Get("/vetrine/categories", &categories); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch categories", err)
		return
	}
	categoryCache.replace(categories)

	search := ctx.Query("search")
	visible := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if matchesSearch(search, category.Name, category.Description) {
			visible = append(visible, category)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": visible})
}

// AdminGetCategory pre-populates the edit form. A missing record was
// addressed directly by id, so the failure is reported with a redirect hint
// back to the list.
func AdminGetCategory(ctx *gin.Context) {
	id := ctx.Param("id")

	var category models.Category
	if err := backendFor(ctx).Get("/vetrine/categories/"+id, &category); err != nil {
		if api.IsNotFound(err) {
			sendJSONResponse(ctx, http.StatusNotFound, gin.H{
				"message":  "Category not found",
				"redirect": "/admin/categories",
			})
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve category", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func AdminCreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var created models.Category
	if err := backendFor(ctx).Post("/vetrine/categories", category, &created); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func AdminUpdateCategory(ctx *gin.Context) {
	id := ctx.Param("id")

	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var updated models.Category
	if err := backendFor(ctx).Put("/vetrine/categories/"+id, category, &updated); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// AdminDeleteCategory removes the row from the cached list before the backend
// answers; a backend failure surfaces as a notice but the removal stands
// until the next refetch.
func AdminDeleteCategory(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	categoryCache.remove(func(category models.Category) bool { return category.ID == id })

	if err := backendFor(ctx).Delete("/vetrine/categories/"+strconv.Itoa(id), nil); err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Category removed from list.",
			"notice":  err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully."})
}

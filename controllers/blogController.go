package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

func GetBlogs(ctx *gin.Context) {
	var blogs []models.Blog
	if err := backendFor(ctx).Get("/blogs/", &blogs); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch articles", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"articles": blogs})
}

func GetBlogBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var blog models.Blog
	if err := backendFor(ctx).Get("/blogs/slug/"+url.PathEscape(slug), &blog); err != nil {
		if api.IsNotFound(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Article not found")
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve article", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, blog)
}

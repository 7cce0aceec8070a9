package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

var articleCache listCache[models.Blog]

func AdminGetArticles(ctx *gin.Context) {
	var articles []models.Blog
	if err := backendFor(ctx).Get("/blogs/", &articles); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch articles", err)
		return
	}
	articleCache.replace(articles)

	search := ctx.Query("search")
	visible := make([]models.Blog, 0, len(articles))
	for _, article := range articles {
		if matchesSearch(search, article.Title, article.Category) {
			visible = append(visible, article)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"articles": visible})
}

func AdminGetArticle(ctx *gin.Context) {
	id := ctx.Param("id")

	var article models.Blog
	if err := backendFor(ctx).Get("/blogs/"+id, &article); err != nil {
		if api.IsNotFound(err) {
			sendJSONResponse(ctx, http.StatusNotFound, gin.H{
				"message":  "Article not found",
				"redirect": "/admin/articles",
			})
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve article", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, article)
}

func AdminCreateArticle(ctx *gin.Context) {
	var article models.Blog
	if err := ctx.ShouldBindJSON(&article); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var created models.Blog
	if err := backendFor(ctx).Post("/blogs/", article, &created); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func AdminUpdateArticle(ctx *gin.Context) {
	id := ctx.Param("id")

	var article models.Blog
	if err := ctx.ShouldBindJSON(&article); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var updated models.Blog
	if err := backendFor(ctx).Put("/blogs/"+id, article, &updated); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func AdminDeleteArticle(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid article ID")
		return
	}

	articleCache.remove(func(article models.Blog) bool { return article.ID == id })

	if err := backendFor(ctx).Delete("/blogs/"+strconv.Itoa(id), nil); err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Article removed from list.",
			"notice":  err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Article deleted successfully."})
}

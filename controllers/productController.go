package controllers

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

// GetProducts renders the product listing: the product collection and the
// category list are fetched concurrently and joined before responding. An
// optional search query filters by name substring, an optional category query
// is passed through to the backend.
func GetProducts(ctx *gin.Context) {
	backend := backendFor(ctx)

	productsPath := "/vetrine/products"
	if category := ctx.Query("category"); category != "" {
		productsPath += "?category=" + url.QueryEscape(category)
	}

	var (
		products    []models.Product
		categories  []models.Category
		productsErr error
		wg          sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		productsErr = backend.Get(productsPath, &products)
	}()
	go func() {
		defer wg.Done()
		// A missing category list degrades the sidebar, not the page.
		if err := deps.Backend.Anonymous().Get("/vetrine/categories", &categories); err != nil {
			log.Println("Failed to fetch categories:", err)
		}
	}()
	wg.Wait()

	if productsErr != nil {
		respondWithError(ctx, statusFromError(productsErr), "Unable to fetch products", productsErr)
		return
	}

	if search := strings.ToLower(ctx.Query("search")); search != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, product := range products {
			if strings.Contains(strings.ToLower(product.Name), search) {
				filtered = append(filtered, product)
			}
		}
		products = filtered
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products":   products,
		"categories": categories,
	})
}

func GetProductBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var product models.Product
	if err := backendFor(ctx).Get("/vetrine/products/slug/"+url.PathEscape(slug), &product); err != nil {
		if api.IsNotFound(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve product", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// GetProductsByCategory chains two fetches: resolve the category by slug from
// the category list, then fetch its products by category name.
func GetProductsByCategory(ctx *gin.Context) {
	slug := ctx.Param("slug")
	backend := backendFor(ctx)

	var categories []models.Category
	if err := backend.Get("/vetrine/categories", &categories); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch categories", err)
		return
	}

	var category *models.Category
	for i := range categories {
		if categories[i].Slug == slug || slugify(categories[i].Name) == slug {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		return
	}

	var products []models.Product
	if err := backend.Get("/vetrine/products?category="+url.QueryEscape(category.Name), &products); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch products", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"category": category,
		"products": products,
	})
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

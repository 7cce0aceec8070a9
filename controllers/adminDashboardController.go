package controllers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/models"
)

// AdminGetDashboard aggregates the headline counts shown on the back-office
// landing page. A failed fetch leaves its count at zero rather than failing
// the whole page.
func AdminGetDashboard(ctx *gin.Context) {
	backend := backendFor(ctx)

	var (
		wg         sync.WaitGroup
		products   []models.Product
		orders     []models.Order
		quotations []models.QuotationRecord
		services   []models.Service
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		if err := backend.Get("/vetrine/products", &products); err != nil {
			log.Println("dashboard: unable to fetch products:", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := backend.Get("/vetrine/orders", &orders); err != nil {
			log.Println("dashboard: unable to fetch orders:", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := backend.Get("/quotations", &quotations); err != nil {
			log.Println("dashboard: unable to fetch quotations:", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := backend.Get("/service/", &services); err != nil {
			log.Println("dashboard: unable to fetch services:", err)
		}
	}()
	wg.Wait()

	pendingOrders := 0
	for _, order := range orders {
		if order.Status == models.OrderStatusPending {
			pendingOrders++
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products":      len(products),
		"orders":        len(orders),
		"pendingOrders": pendingOrders,
		"quotations":    len(quotations),
		"services":      len(services),
	})
}

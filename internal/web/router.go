// Package web serves the local dashboard. It is a read-only view over the
// ledger for a browser on the same machine; all writes go through the CLI.
package web

import (
	"net/http"

	"dzair/internal/ledger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all dashboard routes registered.
func NewRouter(store *ledger.Store, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	h := newHandler(store, logger)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	api.GET("/summary", h.handleSummary)
	api.GET("/sales", h.handleSales)
	api.GET("/clients", h.handleClients)
	api.GET("/products", h.handleProducts)
	api.GET("/fees", h.handleFees)
	api.GET("/chart/profit.png", h.handleProfitChart)

	return r
}

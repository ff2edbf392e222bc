package web

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dzair/internal/ledger"
	"dzair/internal/report"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handler holds dependencies for the dashboard endpoints.
type handler struct {
	store  *ledger.Store
	logger *zap.Logger
}

func newHandler(store *ledger.Store, logger *zap.Logger) *handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &handler{store: store, logger: logger}
}

// handleSummary returns the dashboard headline numbers.
func (h *handler) handleSummary(c *gin.Context) {
	summary, err := report.BuildSummary(h.store.DB())
	if err != nil {
		h.logger.Error("failed to build summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// salesMetadata summarizes the filtered listing alongside the rows.
type salesMetadata struct {
	Count            int     `json:"count"`
	TotalGrossProfit float64 `json:"total_gross_profit"`
	TotalNetProfit   float64 `json:"total_net_profit"`
}

// handleSales returns the sale listing, optionally filtered by the same
// search and date-range controls the CLI offers.
func (h *handler) handleSales(c *gin.Context) {
	filter := ledger.Filter{Search: c.Query("search")}

	if from := c.Query("from"); from != "" {
		d, err := ledger.ParseDay(from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from date must be YYYY-MM-DD"})
			return
		}
		filter.From = d
	}
	if to := c.Query("to"); to != "" {
		d, err := ledger.ParseDay(to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to date must be YYYY-MM-DD"})
			return
		}
		filter.To = d
	}

	rows, err := h.store.ListSales(filter)
	if err != nil {
		if errors.Is(err, ledger.ErrBadDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to list sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
		return
	}

	meta := salesMetadata{Count: len(rows)}
	for _, r := range rows {
		meta.TotalGrossProfit += r.GrossProfit
		meta.TotalNetProfit += r.NetProfit
	}

	c.JSON(http.StatusOK, gin.H{"results": rows, "metadata": meta})
}

func (h *handler) handleClients(c *gin.Context) {
	clients, err := h.store.ListClients()
	if err != nil {
		h.logger.Error("failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *handler) handleProducts(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handler) handleFees(c *gin.Context) {
	fees, err := h.store.ListFees()
	if err != nil {
		h.logger.Error("failed to list fees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list fees"})
		return
	}
	c.JSON(http.StatusOK, fees)
}

// handleProfitChart renders the trailing daily-profit chart as PNG. With no
// sales in the window it answers 204 and a message header so the page can
// show text in place of the chart.
func (h *handler) handleProfitChart(c *gin.Context) {
	days := 14
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}

	series, err := report.DailyProfits(h.store.DB(), time.Now(), days)
	if err != nil {
		h.logger.Error("failed to build daily series", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build chart data"})
		return
	}

	var buf bytes.Buffer
	if err := report.RenderProfitChart(&buf, series); err != nil {
		if errors.Is(err, report.ErrNoData) {
			c.Header("X-Chart-Message", "no sales in the selected window")
			c.Status(http.StatusNoContent)
			return
		}
		h.logger.Error("failed to render chart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render chart"})
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

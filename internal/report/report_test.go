package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"dzair/internal/database"
	"dzair/internal/ledger"
	"dzair/internal/models"
	"dzair/internal/profit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seededStore(t *testing.T) (*ledger.Store, *gorm.DB) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	store := ledger.NewStore(db, zap.NewNop(), profit.DefaultRates(), "DZAIR")

	client := &models.Client{Name: "Amine B.", Phone: "0550 11 22 33", Address: "12 Rue Didouche", City: "Alger"}
	require.NoError(t, store.CreateClient(client))

	product := &models.Product{
		Name:          "Espresso Machine",
		PurchasePrice: 4000,
		Weight:        2,
		SellingPrice:  9000,
		StockQty:      10,
	}
	require.NoError(t, store.CreateProduct(product))

	// Two sales on separate days. Per sale: delivery total 100, gross 4900, net 4400.
	for _, day := range []time.Time{
		time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	} {
		_, err := store.RecordSale(ledger.SaleInput{ClientID: client.ID, ProductID: product.ID, Date: day})
		require.NoError(t, err)
	}

	require.NoError(t, store.CreateFee(&models.SponsoredFee{
		CampaignName: "Back to school", Platform: "Instagram", AmountSpent: 1500,
		Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
	}))

	return store, db
}

func TestBuildSummary(t *testing.T) {
	_, db := seededStore(t)

	s, err := BuildSummary(db)
	require.NoError(t, err)

	assert.Equal(t, int64(2), s.SalesCount)
	assert.InDelta(t, 18000.0, s.TotalRevenue, 1e-9)
	assert.InDelta(t, 9800.0, s.TotalGrossProfit, 1e-9)
	assert.InDelta(t, 8800.0, s.TotalNetProfit, 1e-9)
	assert.InDelta(t, 200.0, s.TotalDelivery, 1e-9)
	assert.InDelta(t, 1500.0, s.TotalAdSpend, 1e-9)
	assert.InDelta(t, 9800.0-1500.0, s.NetAfterAdSpend, 1e-9)
}

func TestDailyProfits(t *testing.T) {
	_, db := seededStore(t)
	now := time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)

	series, err := DailyProfits(db, now, 14)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), series[0].Day)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), series[1].Day)
	assert.InDelta(t, 4900.0, series[0].GrossProfit, 1e-9)
	assert.Equal(t, 1, series[0].Sales)

	t.Run("Window excludes older sales", func(t *testing.T) {
		series, err := DailyProfits(db, now, 2)
		require.NoError(t, err)
		require.Len(t, series, 1)
		assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), series[0].Day)
	})
}

func TestRenderProfitChart(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G'}

	t.Run("Empty series degrades to ErrNoData", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderProfitChart(&buf, nil)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Single point renders", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderProfitChart(&buf, []DailyProfit{
			{Day: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), GrossProfit: 4900, Sales: 1},
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
	})

	t.Run("Multi-day series renders", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderProfitChart(&buf, []DailyProfit{
			{Day: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), GrossProfit: 4900, Sales: 1},
			{Day: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), GrossProfit: 3200, Sales: 2},
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
	})
}

func TestExportWorkbook(t *testing.T) {
	_, db := seededStore(t)
	path := filepath.Join(t.TempDir(), "export.xlsx")

	require.NoError(t, ExportWorkbook(db, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Clients", "Products", "Sales", "SponsoredFees"}, f.GetSheetList())

	name, err := f.GetCellValue("Clients", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Amine B.", name)

	invoice, err := f.GetCellValue("Sales", "B2")
	require.NoError(t, err)
	assert.Equal(t, "DZAIR-2026-001", invoice)
}

func TestExportFilteredSales(t *testing.T) {
	store, _ := seededStore(t)
	rows, err := store.ListSales(ledger.Filter{Search: "Espresso"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	path := filepath.Join(t.TempDir(), "filtered.xlsx")
	require.NoError(t, ExportFilteredSales(rows, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	product, err := f.GetCellValue("Sales", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Espresso Machine", product)
}

func TestWriteInvoicePDF(t *testing.T) {
	store, _ := seededStore(t)
	detail, err := store.GetSaleDetailByInvoice("DZAIR-2026-001")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteInvoicePDF(&buf, detail))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

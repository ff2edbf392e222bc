package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"dzair/internal/database"
	"dzair/internal/models"
	"dzair/internal/profit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := database.NewDatabase(dsn)
	require.NoError(t, err)
	return NewStore(db, zap.NewNop(), profit.DefaultRates(), "DZAIR")
}

func seedClientAndProduct(t *testing.T, s *Store) (*models.Client, *models.Product) {
	t.Helper()
	client := &models.Client{Name: "Amine B.", Phone: "0550 11 22 33", City: "Alger"}
	require.NoError(t, s.CreateClient(client))

	product := &models.Product{
		Name:                 "Espresso Machine",
		PurchasePrice:        4000,
		Weight:               2,
		DefaultDeliveryPrice: 600,
		SellingPrice:         9000,
		StockQty:             5,
	}
	require.NoError(t, s.CreateProduct(product))
	return client, product
}

func TestCreateClientRequiresName(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateClient(&models.Client{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)

	clients, err := s.ListClients()
	assert.NoError(t, err)
	assert.Empty(t, clients)
}

func TestCreateProductValidation(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.CreateProduct(&models.Product{Name: ""}), ErrNameRequired)
	assert.ErrorIs(t, s.CreateProduct(&models.Product{Name: "X", PurchasePrice: -1}), ErrNegativeAmount)
}

func TestRecordSale(t *testing.T) {
	s := newTestStore(t)
	client, product := seedClientAndProduct(t, s)

	date := time.Date(2026, 8, 29, 15, 4, 0, 0, time.UTC)
	sale, err := s.RecordSale(SaleInput{
		ClientID:  client.ID,
		ProductID: product.ID,
		Quantity:  2,
		Date:      date,
	})
	require.NoError(t, err)

	assert.Equal(t, "DZAIR-2026-001", sale.InvoiceNo)
	assert.NotEmpty(t, sale.Reference)
	assert.Equal(t, models.StatusPending, sale.Status)
	assert.Equal(t, models.PaymentCash, sale.PaymentMethod)
	assert.False(t, sale.Paid)
	assert.Equal(t, Day(date), sale.Date)

	// Snapshot of the product at sale time.
	assert.Equal(t, 4000.0, sale.PurchasePrice)
	assert.Equal(t, 9000.0, sale.SellingPrice)
	assert.Equal(t, 600.0, sale.DeliveryPrice) // product default

	// delivery total = 2kg*50 + 600 = 700; gross = 9000-700-4000; net = gross-500
	assert.InDelta(t, 700.0, sale.DeliveryTotal, 1e-9)
	assert.InDelta(t, 4300.0, sale.GrossProfit, 1e-9)
	assert.InDelta(t, 3800.0, sale.NetProfit, 1e-9)

	// Client totals and stock moved with the sale.
	updatedClient, err := s.GetClient(client.ID)
	require.NoError(t, err)
	assert.InDelta(t, 18000.0, updatedClient.TotalSpent, 1e-9)
	assert.Equal(t, 1, updatedClient.TotalOrders)

	updatedProduct, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, updatedProduct.StockQty)
}

func TestRecordSaleDefaultsAndOverrides(t *testing.T) {
	s := newTestStore(t)
	client, product := seedClientAndProduct(t, s)

	override := 1000.0
	sale, err := s.RecordSale(SaleInput{
		ClientID:      client.ID,
		ProductID:     product.ID,
		Quantity:      0, // blank quantity means one unit
		DeliveryPrice: &override,
		PaymentMethod: models.PaymentCCP,
		Status:        models.StatusDelivered,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, sale.Quantity)
	assert.Equal(t, 1000.0, sale.DeliveryPrice)
	assert.InDelta(t, 2*50+1000.0, sale.DeliveryTotal, 1e-9)
	assert.True(t, sale.Paid, "delivered sales are marked paid")
}

func TestRecordSaleValidation(t *testing.T) {
	s := newTestStore(t)
	client, product := seedClientAndProduct(t, s)

	testCases := []struct {
		name     string
		input    SaleInput
		expected error
	}{
		{
			name:     "Unknown client",
			input:    SaleInput{ClientID: 999, ProductID: product.ID},
			expected: ErrClientNotFound,
		},
		{
			name:     "Unknown product",
			input:    SaleInput{ClientID: client.ID, ProductID: 999},
			expected: ErrProductNotFound,
		},
		{
			name:     "Bad status",
			input:    SaleInput{ClientID: client.ID, ProductID: product.ID, Status: "Shipped"},
			expected: ErrBadStatus,
		},
		{
			name:     "Bad payment method",
			input:    SaleInput{ClientID: client.ID, ProductID: product.ID, PaymentMethod: "Cheque"},
			expected: ErrBadPayment,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.RecordSale(tc.input)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	// A failed sale must not touch totals or stock.
	c, err := s.GetClient(client.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, c.TotalOrders)
	p, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, p.StockQty)
}

func TestInvoiceSequence(t *testing.T) {
	s := newTestStore(t)
	client, product := seedClientAndProduct(t, s)

	d2026 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	d2027 := time.Date(2027, 1, 5, 0, 0, 0, 0, time.UTC)

	first, err := s.RecordSale(SaleInput{ClientID: client.ID, ProductID: product.ID, Date: d2026})
	require.NoError(t, err)
	second, err := s.RecordSale(SaleInput{ClientID: client.ID, ProductID: product.ID, Date: d2026})
	require.NoError(t, err)
	nextYear, err := s.RecordSale(SaleInput{ClientID: client.ID, ProductID: product.ID, Date: d2027})
	require.NoError(t, err)

	assert.Equal(t, "DZAIR-2026-001", first.InvoiceNo)
	assert.Equal(t, "DZAIR-2026-002", second.InvoiceNo)
	assert.Equal(t, "DZAIR-2027-001", nextYear.InvoiceNo, "sequence restarts each year")
}

func TestInvoiceSequenceRecoversFromMalformedNumber(t *testing.T) {
	s := newTestStore(t)
	client, product := seedClientAndProduct(t, s)

	// A hand-edited row with a non-numeric sequence must not wedge numbering.
	bad := models.Sale{InvoiceNo: "DZAIR-2031-ABC", ClientID: client.ID, ProductID: product.ID,
		Date: time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.DB().Create(&bad).Error)

	sale, err := s.RecordSale(SaleInput{
		ClientID:  client.ID,
		ProductID: product.ID,
		Date:      time.Date(2031, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "DZAIR-2031-001", sale.InvoiceNo)
}

func TestListSalesFilters(t *testing.T) {
	s := newTestStore(t)

	clientA := &models.Client{Name: "Amine B."}
	clientB := &models.Client{Name: "Yasmine K."}
	require.NoError(t, s.CreateClient(clientA))
	require.NoError(t, s.CreateClient(clientB))

	phone := &models.Product{Name: "Phone Case", PurchasePrice: 500, SellingPrice: 1500}
	watch := &models.Product{Name: "Smart Watch", PurchasePrice: 6000, SellingPrice: 12000}
	require.NoError(t, s.CreateProduct(phone))
	require.NoError(t, s.CreateProduct(watch))

	jan10 := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb20 := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	_, err := s.RecordSale(SaleInput{ClientID: clientA.ID, ProductID: phone.ID, Date: jan10})
	require.NoError(t, err)
	_, err = s.RecordSale(SaleInput{ClientID: clientB.ID, ProductID: watch.ID, Date: feb20, Status: models.StatusDelivered})
	require.NoError(t, err)

	t.Run("No filter returns all, newest first", func(t *testing.T) {
		rows, err := s.ListSales(Filter{})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Smart Watch", rows[0].ProductName)
		assert.Equal(t, "Phone Case", rows[1].ProductName)
	})

	t.Run("Search matches client name", func(t *testing.T) {
		rows, err := s.ListSales(Filter{Search: "Yasmine"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Yasmine K.", rows[0].ClientName)
	})

	t.Run("Search matches invoice number", func(t *testing.T) {
		rows, err := s.ListSales(Filter{Search: "DZAIR-2026-001"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Amine B.", rows[0].ClientName)
	})

	t.Run("Search matches status", func(t *testing.T) {
		rows, err := s.ListSales(Filter{Search: "Delivered"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, models.StatusDelivered, rows[0].Status)
	})

	t.Run("Date range bounds are inclusive", func(t *testing.T) {
		rows, err := s.ListSales(Filter{From: jan10, To: jan10})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Phone Case", rows[0].ProductName)
	})

	t.Run("From-only filter", func(t *testing.T) {
		rows, err := s.ListSales(Filter{From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Smart Watch", rows[0].ProductName)
	})

	t.Run("Inverted range is rejected", func(t *testing.T) {
		_, err := s.ListSales(Filter{From: feb20, To: jan10})
		assert.ErrorIs(t, err, ErrBadDateRange)
	})
}

func TestGetSaleDetail(t *testing.T) {
	s := newTestStore(t)
	client, product := seedClientAndProduct(t, s)

	sale, err := s.RecordSale(SaleInput{ClientID: client.ID, ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	detail, err := s.GetSaleDetail(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.InvoiceNo, detail.InvoiceNo)
	assert.Equal(t, "Amine B.", detail.ClientName)
	assert.Equal(t, "0550 11 22 33", detail.ClientPhone)
	assert.Equal(t, "Espresso Machine", detail.ProductName)
	assert.Equal(t, 3, detail.Quantity)

	byInvoice, err := s.GetSaleDetailByInvoice(sale.InvoiceNo)
	require.NoError(t, err)
	assert.Equal(t, detail.SaleID, byInvoice.SaleID)

	_, err = s.GetSaleDetail(12345)
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestFees(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.CreateFee(&models.SponsoredFee{CampaignName: " ", AmountSpent: 100}), ErrCampaignRequired)
	assert.ErrorIs(t, s.CreateFee(&models.SponsoredFee{CampaignName: "Promo", AmountSpent: 0}), ErrAmountRequired)

	fee := &models.SponsoredFee{CampaignName: "Ramadan Promo", Platform: "Facebook", AmountSpent: 2500}
	require.NoError(t, s.CreateFee(fee))
	assert.False(t, fee.Date.IsZero(), "date defaults to today")

	fees, err := s.ListFees()
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, "Ramadan Promo", fees[0].CampaignName)
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-08-29")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDay("29/08/2026")
	assert.Error(t, err)
}

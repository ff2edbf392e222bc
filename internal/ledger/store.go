// Package ledger is the persistence layer of the application. Every write
// the UI shell can trigger goes through a Store method.
package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dzair/internal/models"
	"dzair/internal/profit"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sentinel errors returned by Store operations.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrCampaignRequired = errors.New("campaign name is required")
	ErrAmountRequired   = errors.New("amount must be greater than zero")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrClientNotFound   = errors.New("client not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrBadStatus        = errors.New("invalid sale status")
	ErrBadPayment       = errors.New("invalid payment method")
	ErrBadDateRange     = errors.New("from date is after to date")
)

// Store provides all database operations for clients, products, sales and
// sponsored fees.
type Store struct {
	db            *gorm.DB
	logger        *zap.Logger
	rates         profit.Rates
	invoicePrefix string
}

// NewStore creates a new Store.
func NewStore(db *gorm.DB, logger *zap.Logger, rates profit.Rates, invoicePrefix string) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if invoicePrefix == "" {
		invoicePrefix = "DZAIR"
	}
	return &Store{
		db:            db,
		logger:        logger,
		rates:         rates,
		invoicePrefix: invoicePrefix,
	}
}

// DB exposes the underlying handle for read-only reporting queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Day truncates a time to its calendar day in UTC. All sale and fee dates
// are stored at day precision.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a day-precision time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return Day(t), nil
}

// ---- Clients ----

// CreateClient validates and inserts a new client.
func (s *Store) CreateClient(c *models.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrNameRequired
	}
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	s.logger.Info("client created", zap.Uint("client_id", c.ID), zap.String("name", c.Name))
	return nil
}

// ListClients returns all clients, newest first.
func (s *Store) ListClients() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("id desc").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// GetClient fetches one client by ID.
func (s *Store) GetClient(id uint) (*models.Client, error) {
	var c models.Client
	if err := s.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &c, nil
}

// ---- Products ----

// CreateProduct validates and inserts a new product.
func (s *Store) CreateProduct(p *models.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.PurchasePrice < 0 || p.SellingPrice < 0 || p.Weight < 0 || p.DefaultDeliveryPrice < 0 {
		return ErrNegativeAmount
	}
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	s.logger.Info("product created", zap.Uint("product_id", p.ID), zap.String("name", p.Name))
	return nil
}

// ListProducts returns all products, newest first.
func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct fetches one product by ID.
func (s *Store) GetProduct(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// ---- Sales ----

// SaleInput carries the operator-supplied fields of a new sale. Everything
// else is snapshotted from the product or derived.
type SaleInput struct {
	ClientID      uint
	ProductID     uint
	Quantity      int
	DeliveryPrice *float64 // nil means use the product's default
	PaymentMethod string
	Status        string
	Date          time.Time // zero means today
}

var validStatuses = map[string]bool{
	models.StatusPending:   true,
	models.StatusDelivered: true,
	models.StatusReturned:  true,
}

var validPayments = map[string]bool{
	models.PaymentCash:      true,
	models.PaymentBaridiMob: true,
	models.PaymentCCP:       true,
	models.PaymentBank:      true,
}

// RecordSale records a sale atomically: the sale row, the client's running
// totals and the product's stock move together or not at all.
func (s *Store) RecordSale(in SaleInput) (*models.Sale, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = models.PaymentCash
	}
	if in.Status == "" {
		in.Status = models.StatusPending
	}
	if !validStatuses[in.Status] {
		return nil, fmt.Errorf("%w: %q", ErrBadStatus, in.Status)
	}
	if !validPayments[in.PaymentMethod] {
		return nil, fmt.Errorf("%w: %q", ErrBadPayment, in.PaymentMethod)
	}
	if in.DeliveryPrice != nil && *in.DeliveryPrice < 0 {
		return nil, ErrNegativeAmount
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	in.Date = Day(in.Date)

	var sale models.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, in.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("failed to load client: %w", err)
		}

		var product models.Product
		if err := tx.First(&product, in.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("failed to load product: %w", err)
		}

		deliveryPrice := product.DefaultDeliveryPrice
		if in.DeliveryPrice != nil {
			deliveryPrice = *in.DeliveryPrice
		}

		breakdown := s.rates.Compute(product.SellingPrice, product.PurchasePrice, product.Weight, deliveryPrice)

		invoiceNo, err := s.nextInvoiceNo(tx, in.Date.Year())
		if err != nil {
			return err
		}

		sale = models.Sale{
			InvoiceNo:     invoiceNo,
			Reference:     uuid.NewString(),
			ClientID:      client.ID,
			ProductID:     product.ID,
			Quantity:      in.Quantity,
			PurchasePrice: product.PurchasePrice,
			SellingPrice:  product.SellingPrice,
			Weight:        product.Weight,
			DeliveryPrice: deliveryPrice,
			DeliveryTotal: breakdown.DeliveryTotal,
			GrossProfit:   breakdown.GrossProfit,
			NetProfit:     breakdown.NetProfit,
			PaymentMethod: in.PaymentMethod,
			Status:        in.Status,
			Paid:          in.Status == models.StatusDelivered,
			Date:          in.Date,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		spent := product.SellingPrice * float64(in.Quantity)
		err = tx.Model(&models.Client{}).Where("id = ?", client.ID).Updates(map[string]interface{}{
			"total_spent":  gorm.Expr("total_spent + ?", spent),
			"total_orders": gorm.Expr("total_orders + 1"),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update client totals: %w", err)
		}

		// Stock may go negative; the catalog is advisory, not authoritative.
		err = tx.Model(&models.Product{}).Where("id = ?", product.ID).
			Update("stock_qty", gorm.Expr("stock_qty - ?", in.Quantity)).Error
		if err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale recorded",
		zap.Uint("sale_id", sale.ID),
		zap.String("invoice_no", sale.InvoiceNo),
		zap.Float64("net_profit", sale.NetProfit),
	)
	return &sale, nil
}

// nextInvoiceNo allocates the next invoice number for the given year, in
// the form PREFIX-YYYY-NNN. The sequence restarts every calendar year and
// is seeded from the most recent invoice of that year.
func (s *Store) nextInvoiceNo(tx *gorm.DB, year int) (string, error) {
	pattern := fmt.Sprintf("%s-%d-%%", s.invoicePrefix, year)

	var last models.Sale
	err := tx.Where("invoice_no LIKE ?", pattern).Order("id desc").First(&last).Error
	seq := 1
	if err == nil {
		parts := strings.Split(last.InvoiceNo, "-")
		if n, perr := strconv.Atoi(parts[len(parts)-1]); perr == nil {
			seq = n + 1
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to find last invoice: %w", err)
	}

	return fmt.Sprintf("%s-%d-%03d", s.invoicePrefix, year, seq), nil
}

// Filter narrows a sale listing. Zero values mean "no constraint".
type Filter struct {
	Search string
	From   time.Time
	To     time.Time
}

// SaleRow is one line of the sale listing, joined with the client and
// product names for display.
type SaleRow struct {
	SaleID        uint      `json:"sale_id"`
	InvoiceNo     string    `json:"invoice_no"`
	Date          time.Time `json:"date"`
	ClientName    string    `json:"client_name"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	SellingPrice  float64   `json:"selling_price"`
	DeliveryTotal float64   `json:"delivery_total"`
	GrossProfit   float64   `json:"gross_profit"`
	NetProfit     float64   `json:"net_profit"`
	Status        string    `json:"status"`
}

// ListSales returns sales matching the filter, newest first. Search matches
// client name, product name, invoice number or status.
func (s *Store) ListSales(f Filter) ([]SaleRow, error) {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return nil, ErrBadDateRange
	}

	q := s.db.Table("sales").
		Select("sales.id as sale_id, sales.invoice_no, sales.date, clients.name as client_name, products.name as product_name, sales.quantity, sales.selling_price, sales.delivery_total, sales.gross_profit, sales.net_profit, sales.status").
		Joins("LEFT JOIN clients ON clients.id = sales.client_id").
		Joins("LEFT JOIN products ON products.id = sales.product_id").
		Where("sales.deleted_at IS NULL")

	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + search + "%"
		q = q.Where("clients.name LIKE ? OR products.name LIKE ? OR sales.invoice_no LIKE ? OR sales.status LIKE ?",
			like, like, like, like)
	}
	if !f.From.IsZero() {
		q = q.Where("sales.date >= ?", Day(f.From))
	}
	if !f.To.IsZero() {
		q = q.Where("sales.date < ?", Day(f.To).AddDate(0, 0, 1))
	}

	var rows []SaleRow
	if err := q.Order("sales.id desc").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return rows, nil
}

// SaleDetail carries everything the invoice document needs.
type SaleDetail struct {
	SaleID        uint
	InvoiceNo     string
	Reference     string
	Date          time.Time
	ClientName    string
	ClientPhone   string
	ClientAddress string
	ClientCity    string
	ProductName   string
	Quantity      int
	SellingPrice  float64
	DeliveryPrice float64
	DeliveryTotal float64
	GrossProfit   float64
	NetProfit     float64
	PaymentMethod string
	Status        string
	Paid          bool
}

// GetSaleDetail fetches one sale by ID with its client and product joined in.
func (s *Store) GetSaleDetail(id uint) (*SaleDetail, error) {
	var sale models.Sale
	if err := s.db.First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return s.detailFor(&sale)
}

// GetSaleDetailByInvoice fetches one sale by its invoice number.
func (s *Store) GetSaleDetailByInvoice(invoiceNo string) (*SaleDetail, error) {
	var sale models.Sale
	if err := s.db.Where("invoice_no = ?", invoiceNo).First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return s.detailFor(&sale)
}

func (s *Store) detailFor(sale *models.Sale) (*SaleDetail, error) {
	detail := &SaleDetail{
		SaleID:        sale.ID,
		InvoiceNo:     sale.InvoiceNo,
		Reference:     sale.Reference,
		Date:          sale.Date,
		Quantity:      sale.Quantity,
		SellingPrice:  sale.SellingPrice,
		DeliveryPrice: sale.DeliveryPrice,
		DeliveryTotal: sale.DeliveryTotal,
		GrossProfit:   sale.GrossProfit,
		NetProfit:     sale.NetProfit,
		PaymentMethod: sale.PaymentMethod,
		Status:        sale.Status,
		Paid:          sale.Paid,
	}

	// Client or product may have been deleted since; the invoice still renders.
	var client models.Client
	if err := s.db.First(&client, sale.ClientID).Error; err == nil {
		detail.ClientName = client.Name
		detail.ClientPhone = client.Phone
		detail.ClientAddress = client.Address
		detail.ClientCity = client.City
	}
	var product models.Product
	if err := s.db.First(&product, sale.ProductID).Error; err == nil {
		detail.ProductName = product.Name
	}

	return detail, nil
}

// ---- Sponsored fees ----

// CreateFee validates and inserts a new sponsored fee.
func (s *Store) CreateFee(fee *models.SponsoredFee) error {
	fee.CampaignName = strings.TrimSpace(fee.CampaignName)
	if fee.CampaignName == "" {
		return ErrCampaignRequired
	}
	if fee.AmountSpent <= 0 {
		return ErrAmountRequired
	}
	if fee.Date.IsZero() {
		fee.Date = time.Now()
	}
	fee.Date = Day(fee.Date)
	if err := s.db.Create(fee).Error; err != nil {
		return fmt.Errorf("failed to create fee: %w", err)
	}
	s.logger.Info("sponsored fee recorded",
		zap.Uint("fee_id", fee.ID),
		zap.String("campaign", fee.CampaignName),
		zap.Float64("amount", fee.AmountSpent),
	)
	return nil
}

// ListFees returns all sponsored fees, newest first.
func (s *Store) ListFees() ([]models.SponsoredFee, error) {
	var fees []models.SponsoredFee
	if err := s.db.Order("id desc").Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("failed to list fees: %w", err)
	}
	return fees, nil
}

package services

import (
	"context"
	"time"

	"rentmag/constants"
	"rentmag/dto"
	"rentmag/errors"
	"rentmag/models"
	"rentmag/services/logger"
	"rentmag/services/notification"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Rent rates are per 30-day month. Partial stays bill rate/30 per day, so
// amounts stay additive across adjacent sub-periods: a stay of 15 days at
// 3000 bills 1500 regardless of how the period is sliced.
const prorationDaysPerMonth = 30.0

const (
	invoiceListCacheKey = "invoices:all"
	invoiceListCacheTTL = 5 * time.Minute
)

type InvoiceService struct {
	db       *gorm.DB
	logger   logger.Logger
	ledger   *LedgerService
	notifier notification.Notifier
	feed     notification.Service
	redis    *redis.Client
}

type InvoiceServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Ledger   *LedgerService
	Notifier notification.Notifier
	Feed     notification.Service
	Redis    *redis.Client
}

func NewInvoiceService(opts InvoiceServiceOptions) *InvoiceService {
	return &InvoiceService{
		db:       opts.DB,
		logger:   opts.Logger,
		ledger:   opts.Ledger,
		notifier: opts.Notifier,
		feed:     opts.Feed,
		redis:    opts.Redis,
	}
}

// ComputeAmount prices the family's occupancy within [periodStart, periodEnd].
// Each history entry is clipped to the period and billed at
// entry.Amount / 30 per day of the clipped span. Returns the total and the
// per-stay line items for audit.
func (s *InvoiceService) ComputeAmount(db *gorm.DB, family *models.Family, periodStart, periodEnd time.Time) (float64, []dto.InvoiceLine, error) {
	entries, err := s.ledger.HistoryForFamily(db, family.ID, periodStart, periodEnd)
	if err != nil {
		return 0, nil, err
	}

	var total float64
	var lines []dto.InvoiceLine

	for _, entry := range entries {
		effectiveStart := entry.CreatedAt
		if effectiveStart.Before(periodStart) {
			effectiveStart = periodStart
		}

		effectiveEnd := periodEnd
		if entry.DeletedAt.Valid && entry.DeletedAt.Time.Before(periodEnd) {
			effectiveEnd = entry.DeletedAt.Time
		}

		if !effectiveEnd.After(effectiveStart) {
			continue
		}

		days := effectiveEnd.Sub(effectiveStart).Hours() / 24
		amount := entry.Amount / prorationDaysPerMonth * days

		total += amount
		lines = append(lines, dto.InvoiceLine{
			RoomID: entry.RoomID,
			From:   effectiveStart,
			To:     effectiveEnd,
			Amount: amount,
		})
	}

	return total, lines, nil
}

// generateInvoiceTx creates the invoice inside the caller's transaction. An
// invoice already covering the family and period is returned as-is, which
// makes generation idempotent per family per billing cycle.
func (s *InvoiceService) generateInvoiceTx(tx *gorm.DB, family *models.Family, periodStart, periodEnd time.Time) (*models.Invoice, bool, error) {
	var existing models.Invoice
	err := tx.Where("family_id = ? AND start_date < ? AND end_date > ?", family.ID, periodEnd, periodStart).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	total, _, err := s.ComputeAmount(tx, family, periodStart, periodEnd)
	if err != nil {
		return nil, false, err
	}

	invoice := models.Invoice{
		FamilyID:  family.ID,
		Amount:    total,
		StartDate: periodStart,
		EndDate:   periodEnd,
		Status:    constants.InvoiceStatusPending,
	}
	if err := tx.Create(&invoice).Error; err != nil {
		return nil, false, err
	}
	return &invoice, true, nil
}

// GenerateInvoice creates one invoice for the family and billing period.
func (s *InvoiceService) GenerateInvoice(family *models.Family, periodStart, periodEnd time.Time) (*models.Invoice, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	invoice, created, err := s.generateInvoiceTx(tx, family, periodStart, periodEnd)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if created {
		s.invalidateCache(context.Background())
	}
	return invoice, nil
}

// GenerateMonthlyInvoices bills every family for the current month in one
// transaction, then dispatches invoice mail and the feed message. Delivery
// happens strictly after commit and never affects it.
func (s *InvoiceService) GenerateMonthlyInvoices(now time.Time) error {
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	periodEnd := periodStart.AddDate(0, 1, 0)

	var families []models.Family
	if err := s.db.Preload("Members").Find(&families).Error; err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	type generated struct {
		family  models.Family
		invoice models.Invoice
	}
	var results []generated

	for i := range families {
		invoice, created, err := s.generateInvoiceTx(tx, &families[i], periodStart, periodEnd)
		if err != nil {
			tx.Rollback()
			return err
		}
		if created {
			results = append(results, generated{family: families[i], invoice: *invoice})
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.invalidateCache(context.Background())

	for _, r := range results {
		s.notifier.NotifyInvoice(r.family, r.invoice)
		if s.feed != nil {
			message := notification.NewInvoiceMessageBuilder(r.family.ID, r.invoice.Amount).Build()
			if err := s.feed.SendMessage(message); err != nil {
				s.logger.Error("failed to broadcast invoice message: %v", err)
			}
		}
	}

	s.logger.Info("generated %d invoices for period %s", len(results), periodStart.Format("2006-01"))
	return nil
}

// FetchInvoices lists invoices with their families, cache-aside.
func (s *InvoiceService) FetchInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice

	if s.redis != nil {
		if err := GetFromRedis(ctx, s.redis, invoiceListCacheKey, &invoices); err != nil {
			s.logger.Error("failed to read invoice cache: %v", err)
		} else if len(invoices) > 0 {
			return invoices, nil
		}
	}

	if err := s.db.Preload("Family").Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}

	if s.redis != nil && len(invoices) > 0 {
		if err := SetToRedis(ctx, s.redis, invoiceListCacheKey, invoices, invoiceListCacheTTL); err != nil {
			s.logger.Error("failed to write invoice cache: %v", err)
		}
	}
	return invoices, nil
}

// UpdateInvoiceStatus sets the invoice status. Both directions of the
// PENDING/PAID pair are allowed.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID uint, status string) (*models.Invoice, error) {
	if !constants.IsValidInvoiceStatus(status) {
		return nil, errors.ErrInvalidInvoiceStatus
	}

	var invoice models.Invoice
	err := s.db.First(&invoice, invoiceID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}

	invoice.Status = status
	if err := s.db.Save(&invoice).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return &invoice, nil
}

func (s *InvoiceService) invalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.redis, invoiceListCacheKey); err != nil {
		s.logger.Error("failed to invalidate invoice cache: %v", err)
	}
}

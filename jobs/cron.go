package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InvoiceGenerator runs one billing cycle for all families.
type InvoiceGenerator interface {
	GenerateMonthlyInvoices(now time.Time) error
}

var invoiceGenerator InvoiceGenerator

// SetInvoiceGenerator installs the implementation the cron job calls.
func SetInvoiceGenerator(generator InvoiceGenerator) {
	invoiceGenerator = generator
}

// InitCronJobs registers the monthly invoice job and starts the scheduler.
func InitCronJobs(c *cron.Cron) error {
	// First day of every month at midnight.
	_, err := c.AddFunc("0 0 1 * *", func() {
		now := time.Now()
		log.Printf("CRON: generating invoices at %v", now)
		if invoiceGenerator == nil {
			log.Printf("CRON: invoice generator not configured")
			return
		}
		if err := invoiceGenerator.GenerateMonthlyInvoices(now); err != nil {
			log.Printf("CRON: failed to generate invoices: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

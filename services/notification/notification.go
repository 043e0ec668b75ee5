package notification

import (
	"fmt"

	"rentmag/models"
	"rentmag/services/logger"

	"github.com/olahol/melody"
)

// Notifier accepts notification jobs for out-of-band delivery. Submission
// never blocks the caller on I/O and delivery failures are logged, never
// returned, so a committed transaction can not be affected by mail trouble.
type Notifier interface {
	NotifyWelcome(member models.Member)
	NotifyInvoice(family models.Family, invoice models.Invoice)
}

// Mailer sends one email per call.
type Mailer interface {
	SendWelcome(member models.Member) error
	SendInvoice(family models.Family, invoice models.Invoice) error
}

type job func() error

// Dispatcher queues notification jobs onto a worker goroutine.
type Dispatcher struct {
	mailer Mailer
	logger logger.Logger
	jobs   chan job
}

type DispatcherOptions struct {
	Mailer Mailer
	Logger logger.Logger
	Buffer int
}

func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	buffer := opts.Buffer
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		mailer: opts.Mailer,
		logger: opts.Logger,
		jobs:   make(chan job, buffer),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	for j := range d.jobs {
		if err := j(); err != nil {
			d.logger.Error("notification delivery failed: %v", err)
		}
	}
}

func (d *Dispatcher) submit(j job) {
	select {
	case d.jobs <- j:
	default:
		d.logger.Error("notification queue full, dropping job")
	}
}

func (d *Dispatcher) NotifyWelcome(member models.Member) {
	if member.Email == nil {
		return
	}
	d.submit(func() error {
		return d.mailer.SendWelcome(member)
	})
}

func (d *Dispatcher) NotifyInvoice(family models.Family, invoice models.Invoice) {
	d.submit(func() error {
		return d.mailer.SendInvoice(family, invoice)
	})
}

// Service broadcasts feed messages to connected clients.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// InvoiceMessageBuilder formats the feed message for a generated invoice.
type InvoiceMessageBuilder struct {
	familyID uint
	amount   float64
}

func NewInvoiceMessageBuilder(familyID uint, amount float64) *InvoiceMessageBuilder {
	return &InvoiceMessageBuilder{
		familyID: familyID,
		amount:   amount,
	}
}

func (b *InvoiceMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Invoice of %.2f generated for family %d.", b.amount, b.familyID)
}

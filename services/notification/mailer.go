package notification

import (
	"fmt"
	"net/smtp"
	"os"

	"rentmag/models"
)

// SMTPMailer sends HTML mail through a plain SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	from     string
	password string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		from:     os.Getenv("SMTP_FROM"),
		password: os.Getenv("SMTP_PASSWORD"),
	}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	message := []byte("To: " + to + "\n" +
		"Subject: " + subject + "\n" +
		"MIME-Version: 1.0\n" +
		"Content-Type: text/html; charset=UTF-8\n\n" +
		body)

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, message)
}

func (m *SMTPMailer) SendWelcome(member models.Member) error {
	if member.Email == nil {
		return nil
	}
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>Hello %s,</p>
			<p>Welcome to your new home. Your family has been registered and
			assigned a room.</p>
			<p>Thank you,<br>The rentmag team</p>
		</body>
		</html>`, member.Name)

	return m.send(*member.Email, "Welcome", body)
}

func (m *SMTPMailer) SendInvoice(family models.Family, invoice models.Invoice) error {
	sent := 0
	for _, member := range family.Members {
		if member.Email == nil {
			continue
		}
		body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>Hello %s,</p>
			<p>Your rent invoice for the period %s to %s has been generated.</p>
			<p>Amount due: <strong>%.2f</strong></p>
			<p>Thank you,<br>The rentmag team</p>
		</body>
		</html>`,
			member.Name,
			invoice.StartDate.Format("2006-01-02"),
			invoice.EndDate.Format("2006-01-02"),
			invoice.Amount)

		if err := m.send(*member.Email, "Rent invoice", body); err != nil {
			return err
		}
		sent++
	}
	if sent == 0 {
		return fmt.Errorf("family %d has no member with an email address", family.ID)
	}
	return nil
}

// Recorder is a Notifier that only remembers what was submitted. Used in
// tests to assert on dispatch without delivering anything.
type Recorder struct {
	Welcomes []models.Member
	Invoices []models.Invoice
}

func (r *Recorder) NotifyWelcome(member models.Member) {
	if member.Email == nil {
		return
	}
	r.Welcomes = append(r.Welcomes, member)
}

func (r *Recorder) NotifyInvoice(family models.Family, invoice models.Invoice) {
	r.Invoices = append(r.Invoices, invoice)
}

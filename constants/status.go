package constants

// Room status
const (
	RoomStatusEmpty    = "EMPTY"
	RoomStatusOccupied = "OCCUPIED"
)

// Family status
const (
	FamilyStatusActive = "ACTIVE"
	FamilyStatusLeft   = "LEFT"
)

// Invoice status
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"
)

// IsValidInvoiceStatus reports whether s is one of the invoice status values.
func IsValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

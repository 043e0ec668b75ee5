package dto

import "time"

// InvoiceLine is one clipped occupancy span priced within a billing period.
type InvoiceLine struct {
	RoomID uint      `json:"roomId"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Amount float64   `json:"amount"`
}

type GenerateInvoiceRequest struct {
	FamilyID  uint   `json:"familyId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

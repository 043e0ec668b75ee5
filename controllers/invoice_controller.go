package controllers

import (
	"time"

	"rentmag/dto"
	"rentmag/response"
	"rentmag/services"
	"rentmag/validator"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	invoiceService *services.InvoiceService
	familyService  *services.FamilyService
}

func NewInvoiceController(invoiceService *services.InvoiceService, familyService *services.FamilyService) *InvoiceController {
	return &InvoiceController{
		invoiceService: invoiceService,
		familyService:  familyService,
	}
}

// GetInvoices handles GET /invoices.
func (ctrl *InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ctrl.invoiceService.FetchInvoices(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, invoices)
}

// GenerateInvoice handles POST /invoices/generate, the manual counterpart of
// the monthly cron.
func (ctrl *InvoiceController) GenerateInvoice(c *gin.Context) {
	var req dto.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		response.ValidationError(c, "startDate must be YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		response.ValidationError(c, "endDate must be YYYY-MM-DD")
		return
	}
	if !endDate.After(startDate) {
		response.BadRequest(c, "endDate must be after startDate")
		return
	}

	family, err := ctrl.familyService.FetchFamily(req.FamilyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	invoice, err := ctrl.invoiceService.GenerateInvoice(family, startDate, endDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, invoice)
}

// UpdateInvoiceStatus handles PUT /invoices/:id/status.
func (ctrl *InvoiceController) UpdateInvoiceStatus(c *gin.Context) {
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := validator.ValidateInvoiceStatus(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	invoice, err := ctrl.invoiceService.UpdateInvoiceStatus(c.Request.Context(), invoiceID, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, invoice)
}

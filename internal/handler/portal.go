// internal/handler/portal.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parking-portal/internal/service"
	"parking-portal/internal/storage"
)

// PortalHandler serves the contractor-facing endpoints. The contractor
// identity always comes from the token, never from the request body.
type PortalHandler struct {
	payments *service.PaymentService
	settings storage.SettingsStorage
	baseURL  string
}

func NewPortalHandler(payments *service.PaymentService, settings storage.SettingsStorage, baseURL string) *PortalHandler {
	return &PortalHandler{payments: payments, settings: settings, baseURL: baseURL}
}

// Summary returns unpaid months, payment history and the owner's bank
// details for the transfer instructions block.
func (h *PortalHandler) Summary(c *gin.Context) {
	contractorID, ok := subjectID(c)
	if !ok {
		return
	}

	summary, err := h.payments.Summary(c.Request.Context(), contractorID)
	if err != nil {
		slog.Error("portal summary failed", "contractor_id", contractorID, "error", err)
		respondError(c, err)
		return
	}

	bankDetails, err := h.settings.GetOwnerSettings(c.Request.Context())
	if err != nil {
		slog.Error("owner settings fetch failed", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":      summary,
		"bank_details": bankDetails,
	})
}

type checkoutRequest struct {
	Months []string `json:"months" validate:"required,min=1,dive,yearmonth"`
}

// StartCheckout redirects the contractor to the hosted card checkout
// for the selected months.
func (h *PortalHandler) StartCheckout(c *gin.Context) {
	contractorID, ok := subjectID(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.payments.StartCheckout(c.Request.Context(), contractorID, req.Months,
		h.baseURL+"/portal?success=true", h.baseURL+"/portal?canceled=true")
	if err != nil {
		slog.Error("checkout start failed", "contractor_id", contractorID, "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

type transferReportRequest struct {
	Months       []string `json:"months" validate:"required,min=1,dive,yearmonth"`
	TransferName string   `json:"transfer_name" validate:"required,notblank"`
	TransferDate string   `json:"transfer_date" validate:"required,notblank"`
}

// ReportTransfer records a bank-transfer report as pending payments
// awaiting the owner's approval.
func (h *PortalHandler) ReportTransfer(c *gin.Context) {
	contractorID, ok := subjectID(c)
	if !ok {
		return
	}

	var req transferReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.payments.ReportBankTransfer(c.Request.Context(), contractorID, req.Months, req.TransferName, req.TransferDate)
	if err != nil {
		slog.Error("transfer report failed", "contractor_id", contractorID, "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Receipt returns a single settled payment belonging to the caller.
func (h *PortalHandler) Receipt(c *gin.Context) {
	contractorID, ok := subjectID(c)
	if !ok {
		return
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	payment, err := h.payments.Receipt(c.Request.Context(), contractorID, paymentID)
	if err != nil {
		respondError(c, err)
		return
	}

	bankDetails, err := h.settings.GetOwnerSettings(c.Request.Context())
	if err != nil {
		slog.Error("owner settings fetch failed", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment": payment,
		"issuer":  bankDetails,
	})
}

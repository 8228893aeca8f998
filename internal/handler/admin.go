// internal/handler/admin.go
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parking-portal/internal/domain"
	"parking-portal/internal/service"
	"parking-portal/internal/storage"
)

// AdminHandler serves the owner-facing endpoints: contractor
// management, transfer review and manual payment entry.
type AdminHandler struct {
	payments    *service.PaymentService
	contractors storage.ContractorStorage
	settings    storage.SettingsStorage
}

func NewAdminHandler(payments *service.PaymentService, contractors storage.ContractorStorage, settings storage.SettingsStorage) *AdminHandler {
	return &AdminHandler{payments: payments, contractors: contractors, settings: settings}
}

// Dashboard lists contractors with their settled-this-month flag.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	month, statuses, err := h.payments.Dashboard(c.Request.Context())
	if err != nil {
		slog.Error("admin dashboard failed", "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current_month": month, "contractors": statuses})
}

type contractorRequest struct {
	Name          string `json:"name" validate:"required,notblank"`
	PhoneNumber   string `json:"phone_number" validate:"required,notblank"`
	MonthlyFee    int64  `json:"monthly_fee" validate:"required,gt=0"`
	ContractStart string `json:"contract_start" validate:"required,yearmonth"`
	ContractEnd   string `json:"contract_end" validate:"omitempty,yearmonth"`
}

func (r contractorRequest) toDomain(id uuid.UUID) (domain.Contractor, error) {
	start := domain.Month(r.ContractStart)
	end := domain.Month(r.ContractEnd)
	if !end.IsZero() && end.Before(start) {
		return domain.Contractor{}, domain.ErrValidation
	}
	return domain.Contractor{
		ID:            id,
		Name:          r.Name,
		PhoneNumber:   r.PhoneNumber,
		MonthlyFee:    r.MonthlyFee,
		ContractStart: start,
		ContractEnd:   end,
		CreatedAt:     time.Now(),
	}, nil
}

func (h *AdminHandler) AddContractor(c *gin.Context) {
	var req contractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := req.toDomain(uuid.New())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contract start must not be after contract end"})
		return
	}

	if err := h.contractors.CreateContractor(c.Request.Context(), contractor); err != nil {
		slog.Error("add contractor failed", "name", req.Name, "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": contractor.ID})
}

func (h *AdminHandler) UpdateContractor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contractor id"})
		return
	}

	var req contractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := req.toDomain(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contract start must not be after contract end"})
		return
	}

	if err := h.contractors.UpdateContractor(c.Request.Context(), contractor); err != nil {
		slog.Error("update contractor failed", "contractor_id", id, "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteContractor refuses to remove a contractor with payment
// history; the storage constraint surfaces as a conflict.
func (h *AdminHandler) DeleteContractor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contractor id"})
		return
	}

	if err := h.contractors.DeleteContractor(c.Request.Context(), id); err != nil {
		slog.Error("delete contractor failed", "contractor_id", id, "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PendingTransfers returns the grouped bank-transfer reports awaiting
// review, one group per reported physical transfer.
func (h *AdminHandler) PendingTransfers(c *gin.Context) {
	groups, err := h.payments.PendingTransferGroups(c.Request.Context())
	if err != nil {
		slog.Error("pending transfers fetch failed", "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

type paymentIDsRequest struct {
	PaymentIDs []string `json:"payment_ids" validate:"required,min=1,dive,uuid"`
}

func (r paymentIDsRequest) parse() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(r.PaymentIDs))
	for i, raw := range r.PaymentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func (h *AdminHandler) ApproveTransfers(c *gin.Context) {
	h.transitionTransfers(c, h.payments.ApproveBankTransfers)
}

func (h *AdminHandler) RejectTransfers(c *gin.Context) {
	h.transitionTransfers(c, h.payments.RejectBankTransfers)
}

func (h *AdminHandler) transitionTransfers(c *gin.Context, transition func(ctx context.Context, ids []uuid.UUID) error) {
	var req paymentIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	if err := transition(c.Request.Context(), ids); err != nil {
		slog.Error("transfer transition failed", "payment_ids", ids, "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type manualPaymentRequest struct {
	ContractorID  string `json:"contractor_id" validate:"required,uuid"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	TargetMonth   string `json:"target_month" validate:"required,yearmonth"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash bank_transfer"`
}

// RecordManualPayment registers a payment the owner received outside
// the portal, e.g. cash in hand.
func (h *AdminHandler) RecordManualPayment(c *gin.Context) {
	var req manualPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractorID, err := uuid.Parse(req.ContractorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contractor id"})
		return
	}

	err = h.payments.RecordManualPayment(c.Request.Context(), contractorID, req.Amount,
		req.TargetMonth, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		slog.Error("manual payment failed", "contractor_id", contractorID, "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.GetOwnerSettings(c.Request.Context())
	if err != nil {
		slog.Error("settings fetch failed", "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

type ownerSettingsRequest struct {
	CompanyName   string `json:"company_name" validate:"required,notblank"`
	Address       string `json:"address" validate:"required,notblank"`
	InvoiceNumber string `json:"invoice_number"`
	BankName      string `json:"bank_name" validate:"required,notblank"`
	BranchName    string `json:"branch_name" validate:"required,notblank"`
	AccountType   string `json:"account_type" validate:"required,oneof=普通 当座"`
	AccountNumber string `json:"account_number" validate:"required,notblank"`
	AccountHolder string `json:"account_holder" validate:"required,notblank"`
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req ownerSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.settings.UpdateOwnerSettings(c.Request.Context(), domain.OwnerSettings{
		CompanyName:   req.CompanyName,
		Address:       req.Address,
		InvoiceNumber: req.InvoiceNumber,
		BankName:      req.BankName,
		BranchName:    req.BranchName,
		AccountType:   req.AccountType,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
	})
	if err != nil {
		slog.Error("settings update failed", "error", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

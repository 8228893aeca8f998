// internal/domain/models.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Currency is fixed for the whole system. Amounts are integer yen.
const Currency = "jpy"

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusSucceeded PaymentStatus = "succeeded"
	StatusRejected  PaymentStatus = "rejected"
)

type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// Contractor is a tenant owing a recurring monthly parking fee.
// Contract months are empty when not set; an empty end means the
// contract is indefinite.
type Contractor struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	PhoneNumber   string    `json:"phone_number"`
	MonthlyFee    int64     `json:"monthly_fee"`
	ContractStart Month     `json:"contract_start,omitempty"`
	ContractEnd   Month     `json:"contract_end,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Payment is one billed-period charge. TransferName/TransferDate are only
// set on bank-transfer reports; ExternalRef only on card payments.
type Payment struct {
	ID           uuid.UUID     `json:"id"`
	ContractorID uuid.UUID     `json:"contractor_id"`
	Amount       int64         `json:"amount"`
	Currency     string        `json:"currency"`
	TargetMonth  Month         `json:"target_month"`
	Status       PaymentStatus `json:"status"`
	Method       PaymentMethod `json:"payment_method"`
	ExternalRef  string        `json:"external_ref,omitempty"`
	TransferName string        `json:"transfer_name,omitempty"`
	TransferDate string        `json:"transfer_date,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// HasTransferMeta reports whether the record carries reported transfer
// details. Legacy records without them must never merge into a group.
func (p Payment) HasTransferMeta() bool {
	return p.TransferName != "" && p.TransferDate != ""
}

// OwnerSettings holds the company and bank-account details shown to
// contractors next to the bank-transfer instructions.
type OwnerSettings struct {
	CompanyName   string `json:"company_name"`
	Address       string `json:"address"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
	BankName      string `json:"bank_name"`
	BranchName    string `json:"branch_name"`
	AccountType   string `json:"account_type"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

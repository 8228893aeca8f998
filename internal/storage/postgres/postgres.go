// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"parking-portal/internal/domain"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

const (
	pgFKViolation     = "23503"
	pgUniqueViolation = "23505"
)

// wrapErr maps constraint violations to domain.ErrConflict and
// everything else to domain.ErrStorage, keeping the cause in the chain.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgFKViolation, pgUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, domain.ErrConflict, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

// === ContractorStorage ===

func (s *Storage) CreateContractor(ctx context.Context, c domain.Contractor) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO contractors (id, name, phone_number, monthly_fee, contract_start, contract_end)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
	`, c.ID, c.Name, c.PhoneNumber, c.MonthlyFee, string(c.ContractStart), string(c.ContractEnd))
	if err != nil {
		return wrapErr("create contractor", err)
	}
	return nil
}

func (s *Storage) UpdateContractor(ctx context.Context, c domain.Contractor) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE contractors
		SET name = $2, phone_number = $3, monthly_fee = $4,
		    contract_start = NULLIF($5, ''), contract_end = NULLIF($6, '')
		WHERE id = $1
	`, c.ID, c.Name, c.PhoneNumber, c.MonthlyFee, string(c.ContractStart), string(c.ContractEnd))
	if err != nil {
		return wrapErr("update contractor", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update contractor: %w", domain.ErrNotFound)
	}
	return nil
}

func (s *Storage) DeleteContractor(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM contractors WHERE id = $1", id)
	if err != nil {
		return wrapErr("delete contractor", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete contractor: %w", domain.ErrNotFound)
	}
	return nil
}

const contractorColumns = `id, name, phone_number, monthly_fee,
	COALESCE(contract_start, ''), COALESCE(contract_end, ''), created_at`

func scanContractor(row pgx.Row) (*domain.Contractor, error) {
	var c domain.Contractor
	var start, end string
	if err := row.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.MonthlyFee, &start, &end, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.ContractStart = domain.Month(start)
	c.ContractEnd = domain.Month(end)
	return &c, nil
}

func (s *Storage) GetContractor(ctx context.Context, id uuid.UUID) (*domain.Contractor, error) {
	row := s.db.QueryRow(ctx, "SELECT "+contractorColumns+" FROM contractors WHERE id = $1", id)
	c, err := scanContractor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get contractor: %w", domain.ErrNotFound)
		}
		return nil, wrapErr("get contractor", err)
	}
	return c, nil
}

func (s *Storage) FindContractorByLogin(ctx context.Context, name, phoneLast4 string) (*domain.Contractor, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+contractorColumns+`
		FROM contractors
		WHERE name = $1 AND RIGHT(phone_number, 4) = $2
	`, name, phoneLast4)
	c, err := scanContractor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("find contractor by login: %w", domain.ErrNotFound)
		}
		return nil, wrapErr("find contractor by login", err)
	}
	return c, nil
}

func (s *Storage) ListContractors(ctx context.Context) ([]domain.Contractor, error) {
	rows, err := s.db.Query(ctx, "SELECT "+contractorColumns+" FROM contractors ORDER BY name")
	if err != nil {
		return nil, wrapErr("list contractors", err)
	}
	defer rows.Close()

	var contractors []domain.Contractor
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, wrapErr("list contractors", err)
		}
		contractors = append(contractors, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list contractors", err)
	}
	return contractors, nil
}

// === PaymentStorage ===

func (s *Storage) InsertPayments(ctx context.Context, payments []domain.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return wrapErr("insert payments: begin tx", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range payments {
		_, err := tx.Exec(ctx, `
			INSERT INTO payments (id, contractor_id, amount, currency, target_month,
				status, payment_method, external_ref, transfer_name, transfer_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''))
		`, p.ID, p.ContractorID, p.Amount, p.Currency, string(p.TargetMonth),
			string(p.Status), string(p.Method), p.ExternalRef, p.TransferName, p.TransferDate)
		if err != nil {
			return wrapErr("insert payments", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapErr("insert payments: commit", err)
	}
	return nil
}

const paymentColumns = `id, contractor_id, amount, currency, target_month, status, payment_method,
	COALESCE(external_ref, ''), COALESCE(transfer_name, ''), COALESCE(transfer_date, ''), created_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	var month, status, method string
	if err := row.Scan(&p.ID, &p.ContractorID, &p.Amount, &p.Currency, &month, &status, &method,
		&p.ExternalRef, &p.TransferName, &p.TransferDate, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.TargetMonth = domain.Month(month)
	p.Status = domain.PaymentStatus(status)
	p.Method = domain.PaymentMethod(method)
	return &p, nil
}

func (s *Storage) GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	row := s.db.QueryRow(ctx, "SELECT "+paymentColumns+" FROM payments WHERE id = $1", id)
	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get payment: %w", domain.ErrNotFound)
		}
		return nil, wrapErr("get payment", err)
	}
	return p, nil
}

func (s *Storage) ListPaymentsByContractor(ctx context.Context, contractorID uuid.UUID) ([]domain.Payment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE contractor_id = $1
		ORDER BY created_at DESC
	`, contractorID)
	if err != nil {
		return nil, wrapErr("list payments by contractor", err)
	}
	defer rows.Close()
	return collectPayments(rows, "list payments by contractor")
}

func (s *Storage) ListSucceededContractorIDs(ctx context.Context, month domain.Month) ([]uuid.UUID, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT contractor_id FROM payments
		WHERE status = 'succeeded' AND target_month = $1
	`, string(month))
	if err != nil {
		return nil, wrapErr("list succeeded contractor ids", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, wrapErr("list succeeded contractor ids", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list succeeded contractor ids", err)
	}
	return ids, nil
}

func (s *Storage) ListPendingTransfers(ctx context.Context) ([]domain.Payment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE status = 'pending' AND payment_method = 'bank_transfer'
		ORDER BY created_at
	`)
	if err != nil {
		return nil, wrapErr("list pending transfers", err)
	}
	defer rows.Close()
	return collectPayments(rows, "list pending transfers")
}

func (s *Storage) UpdatePaymentStatus(ctx context.Context, ids []uuid.UUID, from, to domain.PaymentStatus) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return wrapErr("update payment status: begin tx", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE payments SET status = $3
		WHERE id = ANY($1) AND status = $2
	`, ids, string(from), string(to))
	if err != nil {
		return wrapErr("update payment status", err)
	}

	// All-or-nothing: a stale or unknown id rolls back the whole batch.
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("update payment status: %d of %d records matched: %w",
			tag.RowsAffected(), len(ids), domain.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapErr("update payment status: commit", err)
	}
	return nil
}

func (s *Storage) CountByExternalRef(ctx context.Context, ref string) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM payments WHERE external_ref = $1", ref).Scan(&count)
	if err != nil {
		return 0, wrapErr("count by external ref", err)
	}
	return count, nil
}

func collectPayments(rows pgx.Rows, op string) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return payments, nil
}

// === SettingsStorage ===

func (s *Storage) GetOwnerSettings(ctx context.Context) (*domain.OwnerSettings, error) {
	var os domain.OwnerSettings
	err := s.db.QueryRow(ctx, `
		SELECT company_name, address, invoice_number, bank_name, branch_name,
		       account_type, account_number, account_holder
		FROM owner_settings WHERE id = 1
	`).Scan(&os.CompanyName, &os.Address, &os.InvoiceNumber, &os.BankName, &os.BranchName,
		&os.AccountType, &os.AccountNumber, &os.AccountHolder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get owner settings: %w", domain.ErrNotFound)
		}
		return nil, wrapErr("get owner settings", err)
	}
	return &os, nil
}

func (s *Storage) UpdateOwnerSettings(ctx context.Context, os domain.OwnerSettings) error {
	_, err := s.db.Exec(ctx, `
		UPDATE owner_settings
		SET company_name = $1, address = $2, invoice_number = $3, bank_name = $4,
		    branch_name = $5, account_type = $6, account_number = $7, account_holder = $8
		WHERE id = 1
	`, os.CompanyName, os.Address, os.InvoiceNumber, os.BankName, os.BranchName,
		os.AccountType, os.AccountNumber, os.AccountHolder)
	if err != nil {
		return wrapErr("update owner settings", err)
	}
	return nil
}

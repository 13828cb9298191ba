package database

import (
	"database/sql"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"
)

// GetBankInfo returns the single bank reference row, or sql.ErrNoRows if it
// has never been configured.
func GetBankInfo(db *sql.DB) (*models.Bank, error) {
	query := `SELECT id, bank_name, account_number, ifsc_code, branch,
	            account_holder_name, upi_id, upi_qr_data, created_at, updated_at
	          FROM banks ORDER BY created_at LIMIT 1`

	b := &models.Bank{}
	err := db.QueryRow(query).Scan(
		&b.ID, &b.BankName, &b.AccountNumber, &b.IFSCCode, &b.Branch,
		&b.AccountHolderName, &b.UPIID, &b.UPIQRData, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UpsertBankInfo creates the bank row if absent, otherwise overwrites it.
func UpsertBankInfo(db *sql.DB, b *models.Bank) error {
	existing, err := GetBankInfo(db)
	if err == sql.ErrNoRows {
		query := `INSERT INTO banks (bank_name, account_number, ifsc_code, branch,
		            account_holder_name, upi_id, upi_qr_data)
		          VALUES ($1, $2, $3, $4, $5, $6, $7)
		          RETURNING id, created_at, updated_at`
		return db.QueryRow(query,
			b.BankName, b.AccountNumber, b.IFSCCode, b.Branch,
			b.AccountHolderName, b.UPIID, b.UPIQRData,
		).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	}
	if err != nil {
		return err
	}

	query := `UPDATE banks SET bank_name = $2, account_number = $3, ifsc_code = $4,
	            branch = $5, account_holder_name = $6, upi_id = $7, upi_qr_data = $8,
	            updated_at = NOW()
	          WHERE id = $1
	          RETURNING created_at, updated_at`
	b.ID = existing.ID
	return db.QueryRow(query,
		b.ID, b.BankName, b.AccountNumber, b.IFSCCode, b.Branch,
		b.AccountHolderName, b.UPIID, b.UPIQRData,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
}

// GetFeeStructure returns the single fee structure row, or sql.ErrNoRows.
func GetFeeStructure(db *sql.DB) (*models.FeeStructure, error) {
	query := `SELECT id, tuition_fee, exam_fee, other_fee, insurance_fee, total,
	            created_at, updated_at
	          FROM fee_structures ORDER BY created_at LIMIT 1`

	f := &models.FeeStructure{}
	err := db.QueryRow(query).Scan(
		&f.ID, &f.TuitionFee, &f.ExamFee, &f.OtherFee, &f.InsuranceFee, &f.Total,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// UpsertFeeStructure creates the fee structure row if absent, otherwise
// overwrites it.
func UpsertFeeStructure(db *sql.DB, f *models.FeeStructure) error {
	existing, err := GetFeeStructure(db)
	if err == sql.ErrNoRows {
		query := `INSERT INTO fee_structures (tuition_fee, exam_fee, other_fee, insurance_fee, total)
		          VALUES ($1, $2, $3, $4, $5)
		          RETURNING id, created_at, updated_at`
		return db.QueryRow(query,
			f.TuitionFee, f.ExamFee, f.OtherFee, f.InsuranceFee, f.Total,
		).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	}
	if err != nil {
		return err
	}

	query := `UPDATE fee_structures SET tuition_fee = $2, exam_fee = $3, other_fee = $4,
	            insurance_fee = $5, total = $6, updated_at = NOW()
	          WHERE id = $1
	          RETURNING created_at, updated_at`
	f.ID = existing.ID
	return db.QueryRow(query,
		f.ID, f.TuitionFee, f.ExamFee, f.OtherFee, f.InsuranceFee, f.Total,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
}

// GetLatestDeadline returns the most recently created deadline, or
// sql.ErrNoRows if none exists.
func GetLatestDeadline(db *sql.DB) (*models.Deadline, error) {
	query := `SELECT id, due_date, description, created_at
	          FROM deadlines ORDER BY created_at DESC LIMIT 1`

	d := &models.Deadline{}
	err := db.QueryRow(query).Scan(&d.ID, &d.DueDate, &d.Description, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// CreateDeadline records a new fee payment deadline.
func CreateDeadline(db *sql.DB, d *models.Deadline) error {
	query := `INSERT INTO deadlines (due_date, description)
	          VALUES ($1, COALESCE(NULLIF($2, ''), 'Fee payment deadline'))
	          RETURNING id, description, created_at`
	return db.QueryRow(query, d.DueDate, d.Description).
		Scan(&d.ID, &d.Description, &d.CreatedAt)
}

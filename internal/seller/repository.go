package seller

import (
	"context"
	"database/sql"
	"fmt"

	"emporia-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, userID int, in ApplicationInput) (*Application, error)
	FindLatestByUserID(ctx context.Context, userID int) (*Application, error)
	FindByID(ctx context.Context, id int) (*Application, error)
	ListAll(ctx context.Context) ([]*Application, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const applicationColumns = "id, user_id, first_name, last_name, email, phone_number, address, postal_code, business_name, description, status, created_at"

func scanApplication(row interface{ Scan(...any) error }) (*Application, error) {
	var a Application
	err := row.Scan(
		&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.Email, &a.PhoneNumber,
		&a.Address, &a.PostalCode, &a.BusinessName, &a.Description, &a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Create(ctx context.Context, userID int, in ApplicationInput) (*Application, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO sellers (user_id, first_name, last_name, email, phone_number, address, postal_code, business_name, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
		RETURNING `+applicationColumns,
		userID, in.FirstName, in.LastName, in.Email, in.PhoneNumber,
		in.Address, in.PostalCode, in.BusinessName, in.Description,
	)

	a, err := scanApplication(row)
	if err != nil {
		log.Error("db: failed to insert seller application",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	return a, nil
}

// FindLatestByUserID returns the newest application for the user. Reapplying
// after a decline appends a row, so the newest row decides the state.
func (r *repository) FindLatestByUserID(ctx context.Context, userID int) (*Application, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+applicationColumns+" FROM sellers WHERE user_id=$1 ORDER BY id DESC LIMIT 1",
		userID,
	)
	return scanApplication(row)
}

func (r *repository) FindByID(ctx context.Context, id int) (*Application, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+applicationColumns+" FROM sellers WHERE id=$1",
		id,
	)
	return scanApplication(row)
}

// ListAll returns every application unfiltered, resolved ones included.
func (r *repository) ListAll(ctx context.Context) ([]*Application, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+applicationColumns+" FROM sellers ORDER BY id",
	)
	if err != nil {
		log.Error("db: failed to list seller applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []*Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}

	return apps, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) error {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	res, err := tx.ExecContext(ctx, `UPDATE sellers SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		tx.Rollback()
		log.Error("db: failed to update application status",
			zap.Int("id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to update application status: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/tournoi-uno/webapp/models"
)

var (
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrParticipantConflict    = errors.New("participant conflict: user already registered for this edition")
	ErrParticipantUserInvalid = errors.New("participant user invalid")
)

type ParticipantRepository interface {
	Create(ctx context.Context, p *models.Participant) error
	FindByUserAndEdition(ctx context.Context, userID, edition int) (*models.Participant, error)
	CountPaidByEdition(ctx context.Context, edition int) (int, error)
	SumPaidFeesByEdition(ctx context.Context, edition int) (int, error)
	ListRecentByEdition(ctx context.Context, edition, limit int) ([]*models.RecentRegistration, error)
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

func (r *postgresParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO participants (user_id, edition, fee_paid, payment_status, transaction_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		p.UserID,
		p.Edition,
		p.FeePaid,
		p.PaymentStatus,
		p.TransactionID,
		p.PaidAt,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				if pqErr.Constraint == "participants_user_id_edition_key" {
					return ErrParticipantConflict
				}
			case "23503":
				if pqErr.Constraint == "participants_user_id_fkey" {
					return ErrParticipantUserInvalid
				}
			}
		}
		return fmt.Errorf("failed to create participant: %w", err)
	}
	return nil
}

func (r *postgresParticipantRepository) FindByUserAndEdition(ctx context.Context, userID, edition int) (*models.Participant, error) {
	query := `
		SELECT id, user_id, edition, fee_paid, payment_status, transaction_id, paid_at, created_at
		FROM participants
		WHERE user_id = $1 AND edition = $2`

	p := &models.Participant{}
	err := r.db.QueryRowContext(ctx, query, userID, edition).Scan(
		&p.ID,
		&p.UserID,
		&p.Edition,
		&p.FeePaid,
		&p.PaymentStatus,
		&p.TransactionID,
		&p.PaidAt,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	return p, nil
}

func (r *postgresParticipantRepository) CountPaidByEdition(ctx context.Context, edition int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participants WHERE edition = $1 AND payment_status = $2`,
		edition, models.PaymentPaid,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count paid participants: %w", err)
	}
	return count, nil
}

func (r *postgresParticipantRepository) SumPaidFeesByEdition(ctx context.Context, edition int) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(fee_paid), 0) FROM participants WHERE edition = $1 AND payment_status = $2`,
		edition, models.PaymentPaid,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum paid fees: %w", err)
	}
	return total, nil
}

func (r *postgresParticipantRepository) ListRecentByEdition(ctx context.Context, edition, limit int) ([]*models.RecentRegistration, error) {
	query := `
		SELECT u.display_name, u.telegram_username, p.created_at, p.payment_status
		FROM participants p
		JOIN users u ON p.user_id = u.id
		WHERE p.edition = $1
		ORDER BY p.created_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, edition, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent registrations: %w", err)
	}
	defer rows.Close()

	regs := make([]*models.RecentRegistration, 0)
	for rows.Next() {
		reg := &models.RecentRegistration{}
		if err := rows.Scan(&reg.DisplayName, &reg.TelegramUsername, &reg.RegisteredAt, &reg.PaymentStatus); err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		regs = append(regs, reg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}
	return regs, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tournoi-uno/webapp/models"
)

var ErrEditionNotFound = errors.New("edition not found")

type EditionRepository interface {
	// EnsureExists creates the numbered edition if it is missing. Safe to
	// call on every startup.
	EnsureExists(ctx context.Context, number int) error
	GetByNumber(ctx context.Context, number int) (*models.Edition, error)
}

type postgresEditionRepository struct {
	db *sql.DB
}

func NewPostgresEditionRepository(db *sql.DB) EditionRepository {
	return &postgresEditionRepository{db: db}
}

func (r *postgresEditionRepository) EnsureExists(ctx context.Context, number int) error {
	query := `
		INSERT INTO editions (number, status)
		VALUES ($1, $2)
		ON CONFLICT (number) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, number, models.EditionStatusActive); err != nil {
		return fmt.Errorf("failed to ensure edition %d: %w", number, err)
	}
	return nil
}

func (r *postgresEditionRepository) GetByNumber(ctx context.Context, number int) (*models.Edition, error) {
	query := `
		SELECT id, number, started_at, ended_at, status, winner_id, total_pot
		FROM editions
		WHERE number = $1`

	e := &models.Edition{}
	err := r.db.QueryRowContext(ctx, query, number).Scan(
		&e.ID,
		&e.Number,
		&e.StartedAt,
		&e.EndedAt,
		&e.Status,
		&e.WinnerID,
		&e.TotalPot,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEditionNotFound
		}
		return nil, fmt.Errorf("failed to scan edition: %w", err)
	}
	return e, nil
}

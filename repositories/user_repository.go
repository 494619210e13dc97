package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/tournoi-uno/webapp/models"
)

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserTelegramIDConflict  = errors.New("user telegram id conflict")
	ErrUserDisplayNameConflict = errors.New("user display name conflict")
)

type UserRepository interface {
	// Create inserts the user through q so it can participate in the same
	// transaction as the stats row.
	Create(ctx context.Context, q Querier, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramUserID int64) (*models.User, error)
	ExistsByDisplayName(ctx context.Context, displayName string) (bool, error)
	UpdateLoginInfo(ctx context.Context, telegramUserID int64, username, photoURL string, at time.Time) error
	UpdatePhotoURL(ctx context.Context, id int, photoURL string) error
	Count(ctx context.Context) (int, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, q Querier, user *models.User) error {
	if q == nil {
		q = r.db
	}
	query := `
		INSERT INTO users (telegram_user_id, telegram_username, display_name, first_name, photo_url,
		                   last_login_at, terms_accepted, privacy_accepted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := q.QueryRowContext(ctx, query,
		user.TelegramUserID,
		user.TelegramUsername,
		user.DisplayName,
		user.FirstName,
		user.PhotoURL,
		user.LastLoginAt,
		user.TermsAccepted,
		user.PrivacyAccepted,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			switch pqErr.Constraint {
			case "users_telegram_user_id_key":
				return ErrUserTelegramIDConflict
			case "users_display_name_key":
				return ErrUserDisplayNameConflict
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := selectUserSQL + ` WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *postgresUserRepository) GetByTelegramID(ctx context.Context, telegramUserID int64) (*models.User, error) {
	query := selectUserSQL + ` WHERE telegram_user_id = $1`
	return r.scanUser(ctx, query, telegramUserID)
}

func (r *postgresUserRepository) ExistsByDisplayName(ctx context.Context, displayName string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE display_name = $1)`, displayName,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check display name: %w", err)
	}
	return exists, nil
}

func (r *postgresUserRepository) UpdateLoginInfo(ctx context.Context, telegramUserID int64, username, photoURL string, at time.Time) error {
	query := `
		UPDATE users
		SET telegram_username = $1, photo_url = $2, last_login_at = $3
		WHERE telegram_user_id = $4`

	result, err := r.db.ExecContext(ctx, query, username, photoURL, at, telegramUserID)
	if err != nil {
		return fmt.Errorf("failed to update login info: %w", err)
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) UpdatePhotoURL(ctx context.Context, id int, photoURL string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET photo_url = $1 WHERE id = $2`, photoURL, id)
	if err != nil {
		return fmt.Errorf("failed to update photo url: %w", err)
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

const selectUserSQL = `
	SELECT id, telegram_user_id, telegram_username, display_name, first_name, photo_url,
	       created_at, last_login_at, terms_accepted, privacy_accepted, banned
	FROM users`

func (r *postgresUserRepository) scanUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.TelegramUserID,
		&user.TelegramUsername,
		&user.DisplayName,
		&user.FirstName,
		&user.PhotoURL,
		&user.CreatedAt,
		&user.LastLoginAt,
		&user.TermsAccepted,
		&user.PrivacyAccepted,
		&user.Banned,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

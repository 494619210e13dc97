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
	ErrStatsNotFound = errors.New("player stats not found")
	ErrStatsConflict = errors.New("player stats already exist for user")
)

type StatsRepository interface {
	// Create inserts a zeroed stats row for the user through q so it can
	// share the transaction that created the user.
	Create(ctx context.Context, q Querier, userID int) (*models.PlayerStats, error)
	GetByUserID(ctx context.Context, userID int) (*models.PlayerStats, error)
	// ListLeaderboard returns standings ordered by wins then win rate,
	// excluding players without a single match.
	ListLeaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

type postgresStatsRepository struct {
	db *sql.DB
}

func NewPostgresStatsRepository(db *sql.DB) StatsRepository {
	return &postgresStatsRepository{db: db}
}

func (r *postgresStatsRepository) Create(ctx context.Context, q Querier, userID int) (*models.PlayerStats, error) {
	if q == nil {
		q = r.db
	}
	stats := &models.PlayerStats{UserID: userID}
	query := `
		INSERT INTO player_stats (user_id)
		VALUES ($1)
		RETURNING id, wins, losses, draws, total_matches, win_rate, total_winnings,
		          correct_predictions, total_predictions, odds, rank_label`

	err := q.QueryRowContext(ctx, query, userID).Scan(
		&stats.ID,
		&stats.Wins,
		&stats.Losses,
		&stats.Draws,
		&stats.TotalMatches,
		&stats.WinRate,
		&stats.TotalWinnings,
		&stats.CorrectPredictions,
		&stats.TotalPredictions,
		&stats.Odds,
		&stats.RankLabel,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "player_stats_user_id_key" {
			return nil, ErrStatsConflict
		}
		return nil, fmt.Errorf("failed to create player stats: %w", err)
	}
	return stats, nil
}

func (r *postgresStatsRepository) GetByUserID(ctx context.Context, userID int) (*models.PlayerStats, error) {
	query := `
		SELECT id, user_id, wins, losses, draws, total_matches, win_rate, total_winnings,
		       correct_predictions, total_predictions, odds, rank_label
		FROM player_stats
		WHERE user_id = $1`

	stats := &models.PlayerStats{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.ID,
		&stats.UserID,
		&stats.Wins,
		&stats.Losses,
		&stats.Draws,
		&stats.TotalMatches,
		&stats.WinRate,
		&stats.TotalWinnings,
		&stats.CorrectPredictions,
		&stats.TotalPredictions,
		&stats.Odds,
		&stats.RankLabel,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("failed to scan player stats: %w", err)
	}
	return stats, nil
}

func (r *postgresStatsRepository) ListLeaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	query := `
		SELECT u.id, u.display_name, u.telegram_username, u.photo_url,
		       s.wins, s.losses, s.total_matches, s.win_rate, s.total_winnings, s.rank_label, s.odds
		FROM users u
		JOIN player_stats s ON u.id = s.user_id
		WHERE s.total_matches > 0
		ORDER BY s.wins DESC, s.win_rate DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.LeaderboardEntry, 0)
	for rows.Next() {
		e := &models.LeaderboardEntry{}
		if err := rows.Scan(
			&e.UserID,
			&e.DisplayName,
			&e.TelegramUsername,
			&e.PhotoURL,
			&e.Wins,
			&e.Losses,
			&e.TotalMatches,
			&e.WinRate,
			&e.TotalWinnings,
			&e.RankLabel,
			&e.Odds,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard rows: %w", err)
	}
	return entries, nil
}

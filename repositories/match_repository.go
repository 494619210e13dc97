package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tournoi-uno/webapp/models"
)

type MatchRepository interface {
	// ListByEdition returns the edition's matches with both players
	// resolved, ordered by start time ascending (unscheduled last).
	ListByEdition(ctx context.Context, edition int) ([]*models.MatchView, error)
	// ListPendingByUser returns the user's upcoming and in-progress
	// matches, earliest start first.
	ListPendingByUser(ctx context.Context, userID, limit int) ([]*models.UserMatch, error)
	// ListFinishedByUser returns the user's finished matches, most
	// recently ended first.
	ListFinishedByUser(ctx context.Context, userID, limit int) ([]*models.UserMatch, error)
	CountByEdition(ctx context.Context, edition int, status *models.MatchStatus) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) ListByEdition(ctx context.Context, edition int) ([]*models.MatchView, error) {
	query := `
		SELECT m.id, m.edition, m.match_number, m.player1_id, m.player2_id, m.winner_id,
		       m.score1, m.score2, m.status, m.started_at, m.ended_at, m.round,
		       u1.display_name, u1.photo_url, COALESCE(s1.wins, 0), COALESCE(s1.win_rate, 0),
		       u2.display_name, u2.photo_url, COALESCE(s2.wins, 0), COALESCE(s2.win_rate, 0)
		FROM matches m
		JOIN users u1 ON m.player1_id = u1.id
		JOIN users u2 ON m.player2_id = u2.id
		LEFT JOIN player_stats s1 ON u1.id = s1.user_id
		LEFT JOIN player_stats s2 ON u2.id = s2.user_id
		WHERE m.edition = $1
		ORDER BY m.started_at ASC NULLS LAST, m.id ASC`

	rows, err := r.db.QueryContext(ctx, query, edition)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by edition: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.MatchView, 0)
	for rows.Next() {
		m := &models.MatchView{}
		if err := rows.Scan(
			&m.ID, &m.Edition, &m.MatchNumber, &m.Player1ID, &m.Player2ID, &m.WinnerID,
			&m.Score1, &m.Score2, &m.Status, &m.StartedAt, &m.EndedAt, &m.Round,
			&m.Player1.DisplayName, &m.Player1.PhotoURL, &m.Player1.Wins, &m.Player1.WinRate,
			&m.Player2.DisplayName, &m.Player2.PhotoURL, &m.Player2.Wins, &m.Player2.WinRate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		m.Player1.ID = m.Player1ID
		m.Player2.ID = m.Player2ID
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match rows: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) ListPendingByUser(ctx context.Context, userID, limit int) ([]*models.UserMatch, error) {
	query := userMatchSQL + `
		WHERE (m.player1_id = $1 OR m.player2_id = $1)
		AND m.status IN ($2, $3)
		ORDER BY m.started_at ASC NULLS LAST, m.id ASC
		LIMIT $4`

	return r.listUserMatches(ctx, query,
		userID, models.MatchStatusUpcoming, models.MatchStatusInProgress, limit)
}

func (r *postgresMatchRepository) ListFinishedByUser(ctx context.Context, userID, limit int) ([]*models.UserMatch, error) {
	query := userMatchSQL + `
		WHERE (m.player1_id = $1 OR m.player2_id = $1)
		AND m.status = $2
		ORDER BY m.ended_at DESC
		LIMIT $3`

	return r.listUserMatches(ctx, query, userID, models.MatchStatusFinished, limit)
}

func (r *postgresMatchRepository) CountByEdition(ctx context.Context, edition int, status *models.MatchStatus) (int, error) {
	query := `SELECT COUNT(*) FROM matches WHERE edition = $1`
	args := []interface{}{edition}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

// userMatchSQL resolves the opponent of the queried user ($1) on each row.
const userMatchSQL = `
	SELECT m.id, m.edition, m.match_number, m.player1_id, m.player2_id, m.winner_id,
	       m.score1, m.score2, m.status, m.started_at, m.ended_at, m.round,
	       opp.display_name
	FROM matches m
	JOIN users opp ON (
		CASE WHEN m.player1_id = $1 THEN m.player2_id ELSE m.player1_id END = opp.id
	)`

func (r *postgresMatchRepository) listUserMatches(ctx context.Context, query string, args ...interface{}) ([]*models.UserMatch, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list user matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.UserMatch, 0)
	for rows.Next() {
		m := &models.UserMatch{}
		if err := rows.Scan(
			&m.ID, &m.Edition, &m.MatchNumber, &m.Player1ID, &m.Player2ID, &m.WinnerID,
			&m.Score1, &m.Score2, &m.Status, &m.StartedAt, &m.EndedAt, &m.Round,
			&m.Opponent,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user match row: %w", err)
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user match rows: %w", err)
	}
	return matches, nil
}

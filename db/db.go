package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

func Connect(dsn string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database within %v: %w (close: %v)", timeout, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	return db, nil
}

// InitSchema creates all tables if they do not exist yet. Statements are
// idempotent so startup can run this unconditionally.
func InitSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id               SERIAL PRIMARY KEY,
			telegram_user_id BIGINT NOT NULL,
			telegram_username TEXT NOT NULL DEFAULT '',
			display_name     TEXT NOT NULL,
			first_name       TEXT NOT NULL DEFAULT '',
			photo_url        TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			last_login_at    TIMESTAMPTZ,
			terms_accepted   BOOLEAN NOT NULL DEFAULT FALSE,
			privacy_accepted BOOLEAN NOT NULL DEFAULT FALSE,
			banned           BOOLEAN NOT NULL DEFAULT FALSE,
			CONSTRAINT users_telegram_user_id_key UNIQUE (telegram_user_id),
			CONSTRAINT users_display_name_key UNIQUE (display_name)
		)`,
		`CREATE TABLE IF NOT EXISTS player_stats (
			id                  SERIAL PRIMARY KEY,
			user_id             INTEGER NOT NULL REFERENCES users(id),
			wins                INTEGER NOT NULL DEFAULT 0,
			losses              INTEGER NOT NULL DEFAULT 0,
			draws               INTEGER NOT NULL DEFAULT 0,
			total_matches       INTEGER NOT NULL DEFAULT 0,
			win_rate            DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_winnings      INTEGER NOT NULL DEFAULT 0,
			correct_predictions INTEGER NOT NULL DEFAULT 0,
			total_predictions   INTEGER NOT NULL DEFAULT 0,
			odds                DOUBLE PRECISION NOT NULL DEFAULT 1.0,
			rank_label          TEXT NOT NULL DEFAULT 'Bronze',
			CONSTRAINT player_stats_user_id_key UNIQUE (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS participants (
			id             SERIAL PRIMARY KEY,
			user_id        INTEGER NOT NULL REFERENCES users(id),
			edition        INTEGER NOT NULL,
			fee_paid       INTEGER NOT NULL DEFAULT 0,
			payment_status TEXT NOT NULL DEFAULT 'pending',
			transaction_id TEXT,
			paid_at        TIMESTAMPTZ,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT participants_user_id_edition_key UNIQUE (user_id, edition)
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			id           SERIAL PRIMARY KEY,
			edition      INTEGER NOT NULL,
			match_number INTEGER NOT NULL,
			player1_id   INTEGER NOT NULL REFERENCES users(id),
			player2_id   INTEGER NOT NULL REFERENCES users(id),
			winner_id    INTEGER REFERENCES users(id),
			score1       INTEGER NOT NULL DEFAULT 0,
			score2       INTEGER NOT NULL DEFAULT 0,
			status       TEXT NOT NULL DEFAULT 'upcoming',
			started_at   TIMESTAMPTZ,
			ended_at     TIMESTAMPTZ,
			round        TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS editions (
			id         SERIAL PRIMARY KEY,
			number     INTEGER NOT NULL,
			started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			ended_at   TIMESTAMPTZ,
			status     TEXT NOT NULL DEFAULT 'active',
			winner_id  INTEGER REFERENCES users(id),
			total_pot  INTEGER NOT NULL DEFAULT 0,
			CONSTRAINT editions_number_key UNIQUE (number)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

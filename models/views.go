package models

import "time"

// View models returned by the page endpoints.

type HomeStats struct {
	PaidParticipants  int `json:"paid_participants"`
	Pot               int `json:"pot"`
	WinnerPrize       int `json:"winner_prize"`
	MatchesInProgress int `json:"matches_in_progress"`
}

type HomePage struct {
	Edition  int          `json:"edition"`
	Stats    HomeStats    `json:"stats"`
	Featured []*MatchView `json:"featured_matches"`
}

type LeaderboardEntry struct {
	Rank             int     `json:"rank"`
	UserID           int     `json:"user_id"`
	DisplayName      string  `json:"display_name"`
	TelegramUsername string  `json:"telegram_username,omitempty"`
	PhotoURL         string  `json:"photo_url,omitempty"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	TotalMatches     int     `json:"total_matches"`
	WinRate          float64 `json:"win_rate"`
	TotalWinnings    int     `json:"total_winnings"`
	RankLabel        string  `json:"rank_label"`
	Odds             float64 `json:"odds"`
}

type MatchResult string

const (
	ResultWin  MatchResult = "win"
	ResultDraw MatchResult = "draw"
	ResultLoss MatchResult = "loss"
)

// HistoryEntry is a finished match classified from the viewing user's side.
type HistoryEntry struct {
	UserMatch
	Result MatchResult `json:"result"`
}

type DashboardPage struct {
	Edition       int          `json:"edition"`
	User          *User        `json:"user"`
	Stats         *PlayerStats `json:"stats"`
	Participation *Participant `json:"participation,omitempty"`
	NextMatches   []*UserMatch `json:"next_matches"`
}

type ProfilePage struct {
	User    *User           `json:"user"`
	Stats   *PlayerStats    `json:"stats"`
	History []*HistoryEntry `json:"history"`
}

type AdminStats struct {
	TotalUsers       int `json:"total_users"`
	PaidParticipants int `json:"paid_participants"`
	Pot              int `json:"pot"`
	TotalMatches     int `json:"total_matches"`
}

type RecentRegistration struct {
	DisplayName      string        `json:"display_name"`
	TelegramUsername string        `json:"telegram_username,omitempty"`
	RegisteredAt     time.Time     `json:"registered_at"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
}

type AdminPage struct {
	Edition             int                   `json:"edition"`
	CurrentEdition      *Edition              `json:"current_edition,omitempty"`
	Stats               AdminStats            `json:"stats"`
	RecentRegistrations []*RecentRegistration `json:"recent_registrations"`
}

package models

import "time"

type MatchStatus string

const (
	MatchStatusUpcoming   MatchStatus = "upcoming"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusFinished   MatchStatus = "finished"
)

// Match belongs to an edition. Rows are created and resolved by the
// external bracket process; this service only reads them.
type Match struct {
	ID          int         `json:"id"`
	Edition     int         `json:"edition"`
	MatchNumber int         `json:"match_number"`
	Player1ID   int         `json:"player1_id"`
	Player2ID   int         `json:"player2_id"`
	WinnerID    *int        `json:"winner_id,omitempty"`
	Score1      int         `json:"score1"`
	Score2      int         `json:"score2"`
	Status      MatchStatus `json:"status"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	EndedAt     *time.Time  `json:"ended_at,omitempty"`
	Round       *string     `json:"round,omitempty"`
}

// PlayerSummary is the slice of user+stats data joined onto match listings.
type PlayerSummary struct {
	ID          int     `json:"id"`
	DisplayName string  `json:"display_name"`
	PhotoURL    string  `json:"photo_url,omitempty"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"win_rate"`
}

// MatchView is a match with both players resolved, as shown on the home
// page and the match list.
type MatchView struct {
	Match
	Player1 PlayerSummary `json:"player1"`
	Player2 PlayerSummary `json:"player2"`
}

// UserMatch is a match seen from one player's side, with only the opponent
// resolved. Used on the dashboard and the profile history.
type UserMatch struct {
	Match
	Opponent string `json:"opponent"`
}

package models

import "time"

type EditionStatus string

const (
	EditionStatusActive   EditionStatus = "active"
	EditionStatusFinished EditionStatus = "finished"
)

// Edition is one numbered cycle of the tournament.
type Edition struct {
	ID        int           `json:"id"`
	Number    int           `json:"number"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   *time.Time    `json:"ended_at,omitempty"`
	Status    EditionStatus `json:"status"`
	WinnerID  *int          `json:"winner_id,omitempty"`
	TotalPot  int           `json:"total_pot"`
}

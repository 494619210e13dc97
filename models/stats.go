package models

// PlayerStats is the one-to-one stats row created together with a User.
// Counters are only read here: match resolution and stat recomputation run
// outside this service.
type PlayerStats struct {
	ID                 int     `json:"id"`
	UserID             int     `json:"user_id"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	Draws              int     `json:"draws"`
	TotalMatches       int     `json:"total_matches"`
	WinRate            float64 `json:"win_rate"`
	TotalWinnings      int     `json:"total_winnings"`
	CorrectPredictions int     `json:"correct_predictions"`
	TotalPredictions   int     `json:"total_predictions"`
	Odds               float64 `json:"odds"`
	RankLabel          string  `json:"rank_label"`
}

const DefaultRankLabel = "Bronze"

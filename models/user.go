package models

import "time"

// User is an account created from a Telegram identity. TelegramUserID is
// the external identity, DisplayName is the public handle shown on match
// lists and the leaderboard.
type User struct {
	ID               int        `json:"id"`
	TelegramUserID   int64      `json:"telegram_user_id"`
	TelegramUsername string     `json:"telegram_username,omitempty"`
	DisplayName      string     `json:"display_name"`
	FirstName        string     `json:"first_name,omitempty"`
	PhotoURL         string     `json:"photo_url,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	TermsAccepted    bool       `json:"terms_accepted"`
	PrivacyAccepted  bool       `json:"privacy_accepted"`
	Banned           bool       `json:"banned"`
}

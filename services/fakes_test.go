package services

import (
	"context"
	"time"

	"github.com/tournoi-uno/webapp/models"
	"github.com/tournoi-uno/webapp/repositories"
)

// In-memory repository fakes used across the service tests.

type fakeTxRunner struct {
	beginCount int
}

func (r *fakeTxRunner) RunInTx(_ context.Context, fn func(q repositories.Querier) error) error {
	r.beginCount++
	return fn(nil)
}

type fakeUserRepo struct {
	users  []*models.User
	nextID int
}

func (r *fakeUserRepo) Create(_ context.Context, _ repositories.Querier, user *models.User) error {
	for _, u := range r.users {
		if u.TelegramUserID == user.TelegramUserID {
			return repositories.ErrUserTelegramIDConflict
		}
		if u.DisplayName == user.DisplayName {
			return repositories.ErrUserDisplayNameConflict
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetByTelegramID(_ context.Context, telegramUserID int64) (*models.User, error) {
	for _, u := range r.users {
		if u.TelegramUserID == telegramUserID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByDisplayName(_ context.Context, displayName string) (bool, error) {
	for _, u := range r.users {
		if u.DisplayName == displayName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateLoginInfo(_ context.Context, telegramUserID int64, username, photoURL string, at time.Time) error {
	for _, u := range r.users {
		if u.TelegramUserID == telegramUserID {
			u.TelegramUsername = username
			u.PhotoURL = photoURL
			loginAt := at
			u.LastLoginAt = &loginAt
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) UpdatePhotoURL(_ context.Context, id int, photoURL string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PhotoURL = photoURL
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

type fakeStatsRepo struct {
	stats       []*models.PlayerStats
	leaderboard []*models.LeaderboardEntry
	nextID      int
}

func (r *fakeStatsRepo) Create(_ context.Context, _ repositories.Querier, userID int) (*models.PlayerStats, error) {
	for _, s := range r.stats {
		if s.UserID == userID {
			return nil, repositories.ErrStatsConflict
		}
	}
	r.nextID++
	stats := &models.PlayerStats{
		ID:        r.nextID,
		UserID:    userID,
		Odds:      1.0,
		RankLabel: models.DefaultRankLabel,
	}
	r.stats = append(r.stats, stats)
	copied := *stats
	return &copied, nil
}

func (r *fakeStatsRepo) GetByUserID(_ context.Context, userID int) (*models.PlayerStats, error) {
	for _, s := range r.stats {
		if s.UserID == userID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repositories.ErrStatsNotFound
}

func (r *fakeStatsRepo) ListLeaderboard(_ context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	entries := r.leaderboard
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type fakeMatchRepo struct {
	matches  []*models.MatchView
	pending  []*models.UserMatch
	finished []*models.UserMatch
}

func (r *fakeMatchRepo) ListByEdition(_ context.Context, _ int) ([]*models.MatchView, error) {
	out := make([]*models.MatchView, len(r.matches))
	copy(out, r.matches)
	return out, nil
}

func (r *fakeMatchRepo) ListPendingByUser(_ context.Context, _, limit int) ([]*models.UserMatch, error) {
	if len(r.pending) > limit {
		return r.pending[:limit], nil
	}
	return r.pending, nil
}

func (r *fakeMatchRepo) ListFinishedByUser(_ context.Context, _, limit int) ([]*models.UserMatch, error) {
	if len(r.finished) > limit {
		return r.finished[:limit], nil
	}
	return r.finished, nil
}

func (r *fakeMatchRepo) CountByEdition(_ context.Context, _ int, status *models.MatchStatus) (int, error) {
	if status == nil {
		return len(r.matches), nil
	}
	count := 0
	for _, m := range r.matches {
		if m.Status == *status {
			count++
		}
	}
	return count, nil
}

type fakeParticipantRepo struct {
	participants []*models.Participant
	recent       []*models.RecentRegistration
	nextID       int
}

func (r *fakeParticipantRepo) Create(_ context.Context, p *models.Participant) error {
	for _, existing := range r.participants {
		if existing.UserID == p.UserID && existing.Edition == p.Edition {
			return repositories.ErrParticipantConflict
		}
	}
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	stored := *p
	r.participants = append(r.participants, &stored)
	return nil
}

func (r *fakeParticipantRepo) FindByUserAndEdition(_ context.Context, userID, edition int) (*models.Participant, error) {
	for _, p := range r.participants {
		if p.UserID == userID && p.Edition == edition {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repositories.ErrParticipantNotFound
}

func (r *fakeParticipantRepo) CountPaidByEdition(_ context.Context, edition int) (int, error) {
	count := 0
	for _, p := range r.participants {
		if p.Edition == edition && p.PaymentStatus == models.PaymentPaid {
			count++
		}
	}
	return count, nil
}

func (r *fakeParticipantRepo) SumPaidFeesByEdition(_ context.Context, edition int) (int, error) {
	total := 0
	for _, p := range r.participants {
		if p.Edition == edition && p.PaymentStatus == models.PaymentPaid {
			total += p.FeePaid
		}
	}
	return total, nil
}

func (r *fakeParticipantRepo) ListRecentByEdition(_ context.Context, _, limit int) ([]*models.RecentRegistration, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

type fakeEditionRepo struct {
	editions []*models.Edition
}

func (r *fakeEditionRepo) EnsureExists(_ context.Context, number int) error {
	for _, e := range r.editions {
		if e.Number == number {
			return nil
		}
	}
	r.editions = append(r.editions, &models.Edition{
		ID:     len(r.editions) + 1,
		Number: number,
		Status: models.EditionStatusActive,
	})
	return nil
}

func (r *fakeEditionRepo) GetByNumber(_ context.Context, number int) (*models.Edition, error) {
	for _, e := range r.editions {
		if e.Number == number {
			copied := *e
			return &copied, nil
		}
	}
	return nil, repositories.ErrEditionNotFound
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tournoi-uno/webapp/models"
	"github.com/tournoi-uno/webapp/repositories"
)

const (
	dashboardMatchLimit = 5
	historyLimit        = 20
)

type ProfileService interface {
	// Dashboard aggregates the user's account, stats, current-edition
	// participation and next matches.
	Dashboard(ctx context.Context, userID, edition int) (*models.DashboardPage, error)
	// Profile aggregates the account, stats and classified match history.
	Profile(ctx context.Context, userID int) (*models.ProfilePage, error)
}

type profileService struct {
	userRepo        repositories.UserRepository
	statsRepo       repositories.StatsRepository
	participantRepo repositories.ParticipantRepository
	matchRepo       repositories.MatchRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	statsRepo repositories.StatsRepository,
	participantRepo repositories.ParticipantRepository,
	matchRepo repositories.MatchRepository,
) ProfileService {
	return &profileService{
		userRepo:        userRepo,
		statsRepo:       statsRepo,
		participantRepo: participantRepo,
		matchRepo:       matchRepo,
	}
}

func (s *profileService) Dashboard(ctx context.Context, userID, edition int) (*models.DashboardPage, error) {
	user, stats, err := s.userWithStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	participation, err := s.participantRepo.FindByUserAndEdition(ctx, userID, edition)
	if err != nil && !errors.Is(err, repositories.ErrParticipantNotFound) {
		return nil, fmt.Errorf("failed to load participation: %w", err)
	}

	next, err := s.matchRepo.ListPendingByUser(ctx, userID, dashboardMatchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load next matches: %w", err)
	}

	return &models.DashboardPage{
		Edition:       edition,
		User:          user,
		Stats:         stats,
		Participation: participation,
		NextMatches:   next,
	}, nil
}

func (s *profileService) Profile(ctx context.Context, userID int) (*models.ProfilePage, error) {
	user, stats, err := s.userWithStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	finished, err := s.matchRepo.ListFinishedByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load match history: %w", err)
	}

	history := make([]*models.HistoryEntry, 0, len(finished))
	for _, m := range finished {
		history = append(history, &models.HistoryEntry{
			UserMatch: *m,
			Result:    ClassifyResult(m.WinnerID, userID),
		})
	}

	return &models.ProfilePage{
		User:    user,
		Stats:   stats,
		History: history,
	}, nil
}

func (s *profileService) userWithStats(ctx context.Context, userID int) (*models.User, *models.PlayerStats, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}

	stats, err := s.statsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrStatsNotFound) {
			return nil, nil, fmt.Errorf("failed to load stats: %w", err)
		}
		// A stats row is created with every account; tolerate its absence
		// with zeroed counters rather than failing the page.
		stats = &models.PlayerStats{UserID: userID, Odds: 1.0, RankLabel: models.DefaultRankLabel}
	}
	return user, stats, nil
}

// ClassifyResult reads a finished match from the given user's side: a null
// winner is a draw.
func ClassifyResult(winnerID *int, userID int) models.MatchResult {
	switch {
	case winnerID == nil:
		return models.ResultDraw
	case *winnerID == userID:
		return models.ResultWin
	default:
		return models.ResultLoss
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/tournoi-uno/webapp/models"
	"github.com/tournoi-uno/webapp/repositories"
)

const leaderboardLimit = 50

type LeaderboardService interface {
	// Top returns up to 50 ranked players, wins descending then win rate
	// descending. Players without a single match never appear.
	Top(ctx context.Context) ([]*models.LeaderboardEntry, error)
}

type leaderboardService struct {
	statsRepo repositories.StatsRepository
}

func NewLeaderboardService(statsRepo repositories.StatsRepository) LeaderboardService {
	return &leaderboardService{statsRepo: statsRepo}
}

func (s *leaderboardService) Top(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	entries, err := s.statsRepo.ListLeaderboard(ctx, leaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	// The repository query already excludes idle players; keep the
	// invariant here too so a storage change cannot leak them.
	ranked := make([]*models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.TotalMatches == 0 {
			continue
		}
		e.Rank = len(ranked) + 1
		ranked = append(ranked, e)
	}
	return ranked, nil
}

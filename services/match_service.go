package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/tournoi-uno/webapp/models"
	"github.com/tournoi-uno/webapp/repositories"
)

const featuredMatchLimit = 4

type MatchService interface {
	// ListByEdition returns the edition's matches ordered in_progress,
	// then upcoming, then the rest, ties broken by start time ascending.
	ListByEdition(ctx context.Context, edition int) ([]*models.MatchView, error)
	// Featured returns the top in-progress and upcoming matches for the
	// home page, in-progress first, earliest start first.
	Featured(ctx context.Context, edition int) ([]*models.MatchView, error)
}

type matchService struct {
	matchRepo repositories.MatchRepository
}

func NewMatchService(matchRepo repositories.MatchRepository) MatchService {
	return &matchService{matchRepo: matchRepo}
}

func (s *matchService) ListByEdition(ctx context.Context, edition int) ([]*models.MatchView, error) {
	matches, err := s.matchRepo.ListByEdition(ctx, edition)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for edition %d: %w", edition, err)
	}
	sortMatches(matches)
	return matches, nil
}

func (s *matchService) Featured(ctx context.Context, edition int) ([]*models.MatchView, error) {
	matches, err := s.ListByEdition(ctx, edition)
	if err != nil {
		return nil, err
	}

	featured := make([]*models.MatchView, 0, featuredMatchLimit)
	for _, m := range matches {
		if m.Status != models.MatchStatusInProgress && m.Status != models.MatchStatusUpcoming {
			continue
		}
		featured = append(featured, m)
		if len(featured) == featuredMatchLimit {
			break
		}
	}
	return featured, nil
}

// sortMatches orders by status rank, keeping the repository's start-time
// order within each rank.
func sortMatches(matches []*models.MatchView) {
	sort.SliceStable(matches, func(i, j int) bool {
		return statusRank(matches[i].Status) < statusRank(matches[j].Status)
	})
}

func statusRank(status models.MatchStatus) int {
	switch status {
	case models.MatchStatusInProgress:
		return 0
	case models.MatchStatusUpcoming:
		return 1
	default:
		return 2
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/tournoi-uno/webapp/models"
	"github.com/tournoi-uno/webapp/repositories"
)

type HomeService interface {
	Page(ctx context.Context, edition int) (*models.HomePage, error)
}

type homeService struct {
	participantRepo repositories.ParticipantRepository
	matchRepo       repositories.MatchRepository
	matchService    MatchService
	basePrize       int
	commission      int
}

func NewHomeService(
	participantRepo repositories.ParticipantRepository,
	matchRepo repositories.MatchRepository,
	matchService MatchService,
	basePrize, commission int,
) HomeService {
	return &homeService{
		participantRepo: participantRepo,
		matchRepo:       matchRepo,
		matchService:    matchService,
		basePrize:       basePrize,
		commission:      commission,
	}
}

func (s *homeService) Page(ctx context.Context, edition int) (*models.HomePage, error) {
	paid, err := s.participantRepo.CountPaidByEdition(ctx, edition)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	pot, err := s.participantRepo.SumPaidFeesByEdition(ctx, edition)
	if err != nil {
		return nil, fmt.Errorf("failed to compute pot: %w", err)
	}

	inProgress := models.MatchStatusInProgress
	running, err := s.matchRepo.CountByEdition(ctx, edition, &inProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches in progress: %w", err)
	}

	featured, err := s.matchService.Featured(ctx, edition)
	if err != nil {
		return nil, err
	}

	return &models.HomePage{
		Edition: edition,
		Stats: models.HomeStats{
			PaidParticipants:  paid,
			Pot:               pot,
			WinnerPrize:       pot + s.basePrize - s.commission,
			MatchesInProgress: running,
		},
		Featured: featured,
	}, nil
}

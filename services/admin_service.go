package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tournoi-uno/webapp/models"
	"github.com/tournoi-uno/webapp/repositories"
)

const recentRegistrationLimit = 10

type AdminService interface {
	// Overview aggregates the admin dashboard counters and the latest
	// registrations for the edition.
	Overview(ctx context.Context, edition int) (*models.AdminPage, error)
}

type adminService struct {
	userRepo        repositories.UserRepository
	participantRepo repositories.ParticipantRepository
	matchRepo       repositories.MatchRepository
	editionRepo     repositories.EditionRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	participantRepo repositories.ParticipantRepository,
	matchRepo repositories.MatchRepository,
	editionRepo repositories.EditionRepository,
) AdminService {
	return &adminService{
		userRepo:        userRepo,
		participantRepo: participantRepo,
		matchRepo:       matchRepo,
		editionRepo:     editionRepo,
	}
}

func (s *adminService) Overview(ctx context.Context, edition int) (*models.AdminPage, error) {
	page := &models.AdminPage{Edition: edition}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.userRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("counting users: %w", err)
		}
		page.Stats.TotalUsers = total
		return nil
	})
	g.Go(func() error {
		paid, err := s.participantRepo.CountPaidByEdition(gCtx, edition)
		if err != nil {
			return fmt.Errorf("counting paid participants: %w", err)
		}
		page.Stats.PaidParticipants = paid
		return nil
	})
	g.Go(func() error {
		pot, err := s.participantRepo.SumPaidFeesByEdition(gCtx, edition)
		if err != nil {
			return fmt.Errorf("summing pot: %w", err)
		}
		page.Stats.Pot = pot
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.CountByEdition(gCtx, edition, nil)
		if err != nil {
			return fmt.Errorf("counting matches: %w", err)
		}
		page.Stats.TotalMatches = matches
		return nil
	})
	g.Go(func() error {
		regs, err := s.participantRepo.ListRecentByEdition(gCtx, edition, recentRegistrationLimit)
		if err != nil {
			return fmt.Errorf("listing recent registrations: %w", err)
		}
		page.RecentRegistrations = regs
		return nil
	})
	g.Go(func() error {
		e, err := s.editionRepo.GetByNumber(gCtx, edition)
		if err != nil {
			// The row is bootstrapped at startup; a missing one only blanks
			// the edition block, the counters still render.
			if errors.Is(err, repositories.ErrEditionNotFound) {
				return nil
			}
			return fmt.Errorf("loading edition: %w", err)
		}
		page.CurrentEdition = e
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build admin overview: %w", err)
	}
	return page, nil
}

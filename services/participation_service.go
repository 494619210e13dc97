package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tournoi-uno/webapp/models"
	"github.com/tournoi-uno/webapp/repositories"
)

type ParticipationService interface {
	// Register signs the user up for the edition with a pending payment.
	// Settlement is driven by the external payment callback.
	Register(ctx context.Context, userID, edition int) (*models.Participant, error)
}

type participationService struct {
	participantRepo repositories.ParticipantRepository
	entryFee        int
}

func NewParticipationService(participantRepo repositories.ParticipantRepository, entryFee int) ParticipationService {
	return &participationService{
		participantRepo: participantRepo,
		entryFee:        entryFee,
	}
}

func (s *participationService) Register(ctx context.Context, userID, edition int) (*models.Participant, error) {
	txRef := uuid.NewString()
	p := &models.Participant{
		UserID:        userID,
		Edition:       edition,
		FeePaid:       s.entryFee,
		PaymentStatus: models.PaymentPending,
		TransactionID: &txRef,
	}

	if err := s.participantRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repositories.ErrParticipantConflict) {
			return nil, ErrAlreadyRegistered
		}
		if errors.Is(err, repositories.ErrParticipantUserInvalid) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to register participation: %w", err)
	}
	return p, nil
}

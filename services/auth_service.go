package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tournoi-uno/webapp/models"
	"github.com/tournoi-uno/webapp/repositories"
)

const minDisplayNameLength = 3

// TelegramAuthInput is the profile the login widget hands over.
type TelegramAuthInput struct {
	ID        int64
	Username  string
	FirstName string
	PhotoURL  string
}

// AuthResult is the outcome of an identity exchange. When NewUser is set
// the caller must complete registration; Profile echoes the widget data
// the registration form needs.
type AuthResult struct {
	User    *models.User
	NewUser bool
	Profile *TelegramAuthInput
}

type RegisterInput struct {
	TelegramUserID   int64
	TelegramUsername string
	DisplayName      string
	FirstName        string
	PhotoURL         string
	AcceptTerms      bool
	AcceptPrivacy    bool
}

type AuthService interface {
	// Authorize exchanges a telegram profile for a local account, updating
	// login metadata for known ids and signalling registration for unknown
	// ones.
	Authorize(ctx context.Context, input TelegramAuthInput) (*AuthResult, error)
	// Register creates the account and its paired stats row atomically.
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
}

type authService struct {
	txRunner  repositories.TxRunner
	userRepo  repositories.UserRepository
	statsRepo repositories.StatsRepository
	avatars   AvatarService // optional, nil disables mirroring
	logger    *slog.Logger
}

func NewAuthService(
	txRunner repositories.TxRunner,
	userRepo repositories.UserRepository,
	statsRepo repositories.StatsRepository,
	avatars AvatarService,
	logger *slog.Logger,
) AuthService {
	return &authService{
		txRunner:  txRunner,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		avatars:   avatars,
		logger:    logger,
	}
}

func (s *authService) Authorize(ctx context.Context, input TelegramAuthInput) (*AuthResult, error) {
	if input.ID == 0 {
		return nil, ErrInvalidTelegramData
	}

	user, err := s.userRepo.GetByTelegramID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			profile := input
			return &AuthResult{NewUser: true, Profile: &profile}, nil
		}
		return nil, fmt.Errorf("failed to look up telegram id: %w", err)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLoginInfo(ctx, input.ID, input.Username, input.PhotoURL, now); err != nil {
		return nil, fmt.Errorf("failed to update login info: %w", err)
	}
	user.TelegramUsername = input.Username
	user.PhotoURL = input.PhotoURL
	user.LastLoginAt = &now

	return &AuthResult{User: user}, nil
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	displayName := strings.TrimSpace(input.DisplayName)

	if input.TelegramUserID == 0 || displayName == "" {
		return nil, ErrMissingFields
	}
	if !input.AcceptTerms || !input.AcceptPrivacy {
		return nil, ErrConsentRequired
	}
	if len([]rune(displayName)) < minDisplayNameLength {
		return nil, ErrDisplayNameTooShort
	}

	// Friendly pre-check; the unique constraint still backs it up against
	// a concurrent registration.
	taken, err := s.userRepo.ExistsByDisplayName(ctx, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to check display name: %w", err)
	}
	if taken {
		return nil, ErrDisplayNameTaken
	}

	now := time.Now()
	user := &models.User{
		TelegramUserID:   input.TelegramUserID,
		TelegramUsername: input.TelegramUsername,
		DisplayName:      displayName,
		FirstName:        strings.TrimSpace(input.FirstName),
		PhotoURL:         input.PhotoURL,
		LastLoginAt:      &now,
		TermsAccepted:    true,
		PrivacyAccepted:  true,
	}

	// User and stats rows are created in one transaction so a failure
	// cannot leave an account without its stats pair.
	err = s.txRunner.RunInTx(ctx, func(q repositories.Querier) error {
		if err := s.userRepo.Create(ctx, q, user); err != nil {
			return err
		}
		_, err := s.statsRepo.Create(ctx, q, user.ID)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserDisplayNameConflict):
			return nil, ErrDisplayNameTaken
		case errors.Is(err, repositories.ErrUserTelegramIDConflict):
			return nil, ErrTelegramIDTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.mirrorAvatar(ctx, user)

	return user, nil
}

// mirrorAvatar re-hosts the telegram photo on our own storage. Best
// effort: the telegram URL stays in place when anything fails.
func (s *authService) mirrorAvatar(ctx context.Context, user *models.User) {
	if s.avatars == nil || user.PhotoURL == "" {
		return
	}

	mirrored, err := s.avatars.Mirror(ctx, user.ID, user.PhotoURL)
	if err != nil {
		s.logger.Warn("failed to mirror avatar",
			slog.Int("user_id", user.ID), slog.Any("error", err))
		return
	}
	if err := s.userRepo.UpdatePhotoURL(ctx, user.ID, mirrored); err != nil {
		s.logger.Warn("failed to store mirrored avatar url",
			slog.Int("user_id", user.ID), slog.Any("error", err))
		return
	}
	user.PhotoURL = mirrored
}

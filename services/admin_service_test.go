package services

import (
	"context"
	"testing"
	"time"

	"github.com/tournoi-uno/webapp/models"
)

func TestAdminOverview(t *testing.T) {
	userRepo := &fakeUserRepo{}
	statsRepo := &fakeStatsRepo{}
	authSvc := newTestAuthService(userRepo, statsRepo)

	first := validRegisterInput()
	second := validRegisterInput()
	second.TelegramUserID = 222
	second.DisplayName = "Margaux"
	for _, input := range []RegisterInput{first, second} {
		if _, err := authSvc.Register(context.Background(), input); err != nil {
			t.Fatalf("registration failed: %v", err)
		}
	}

	txRef := "tx-1"
	paidAt := time.Now()
	participantRepo := &fakeParticipantRepo{
		participants: []*models.Participant{
			{ID: 1, UserID: 1, Edition: 3, FeePaid: 500, PaymentStatus: models.PaymentPaid, TransactionID: &txRef, PaidAt: &paidAt},
			{ID: 2, UserID: 2, Edition: 3, FeePaid: 500, PaymentStatus: models.PaymentPending},
			{ID: 3, UserID: 2, Edition: 2, FeePaid: 500, PaymentStatus: models.PaymentPaid},
		},
		recent: []*models.RecentRegistration{
			{DisplayName: "Margaux", PaymentStatus: models.PaymentPending, RegisteredAt: time.Now()},
			{DisplayName: "Lucas", PaymentStatus: models.PaymentPaid, RegisteredAt: time.Now().Add(-time.Hour)},
		},
	}

	matchRepo := &fakeMatchRepo{matches: []*models.MatchView{
		{Match: models.Match{ID: 1, Edition: 3, Status: models.MatchStatusUpcoming}},
		{Match: models.Match{ID: 2, Edition: 3, Status: models.MatchStatusInProgress}},
	}}

	editionRepo := &fakeEditionRepo{editions: []*models.Edition{
		{ID: 1, Number: 3, Status: models.EditionStatusActive, TotalPot: 500},
	}}

	svc := NewAdminService(userRepo, participantRepo, matchRepo, editionRepo)
	page, err := svc.Overview(context.Background(), 3)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	if page.Stats.TotalUsers != 2 {
		t.Errorf("total users: got %d, want 2", page.Stats.TotalUsers)
	}
	if page.Stats.PaidParticipants != 1 {
		t.Errorf("paid participants: got %d, want 1 (pending and other editions excluded)", page.Stats.PaidParticipants)
	}
	if page.Stats.Pot != 500 {
		t.Errorf("pot: got %d, want 500", page.Stats.Pot)
	}
	if page.Stats.TotalMatches != 2 {
		t.Errorf("total matches: got %d, want 2", page.Stats.TotalMatches)
	}
	if len(page.RecentRegistrations) != 2 {
		t.Errorf("recent registrations: got %d, want 2", len(page.RecentRegistrations))
	}
	if page.CurrentEdition == nil || page.CurrentEdition.Status != models.EditionStatusActive {
		t.Errorf("expected active current edition, got %+v", page.CurrentEdition)
	}
}

func TestAdminOverviewWithoutEditionRow(t *testing.T) {
	svc := NewAdminService(&fakeUserRepo{}, &fakeParticipantRepo{}, &fakeMatchRepo{}, &fakeEditionRepo{})
	page, err := svc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if page.CurrentEdition != nil {
		t.Errorf("expected no edition block, got %+v", page.CurrentEdition)
	}
}

func TestHomePageStats(t *testing.T) {
	participantRepo := &fakeParticipantRepo{
		participants: []*models.Participant{
			{ID: 1, UserID: 1, Edition: 3, FeePaid: 500, PaymentStatus: models.PaymentPaid},
			{ID: 2, UserID: 2, Edition: 3, FeePaid: 500, PaymentStatus: models.PaymentPaid},
			{ID: 3, UserID: 3, Edition: 3, FeePaid: 500, PaymentStatus: models.PaymentPending},
		},
	}
	matchRepo := &fakeMatchRepo{matches: []*models.MatchView{
		{Match: models.Match{ID: 1, Edition: 3, Status: models.MatchStatusInProgress}},
		{Match: models.Match{ID: 2, Edition: 3, Status: models.MatchStatusUpcoming}},
	}}

	svc := NewHomeService(participantRepo, matchRepo, NewMatchService(matchRepo), 1000, 200)
	page, err := svc.Page(context.Background(), 3)
	if err != nil {
		t.Fatalf("home page failed: %v", err)
	}

	if page.Stats.PaidParticipants != 2 {
		t.Errorf("paid participants: got %d, want 2", page.Stats.PaidParticipants)
	}
	if page.Stats.Pot != 1000 {
		t.Errorf("pot: got %d, want 1000", page.Stats.Pot)
	}
	// winner prize = pot + base prize - commission
	if page.Stats.WinnerPrize != 1800 {
		t.Errorf("winner prize: got %d, want 1800", page.Stats.WinnerPrize)
	}
	if page.Stats.MatchesInProgress != 1 {
		t.Errorf("matches in progress: got %d, want 1", page.Stats.MatchesInProgress)
	}
	if len(page.Featured) != 2 || page.Featured[0].Status != models.MatchStatusInProgress {
		t.Errorf("unexpected featured selection: %+v", page.Featured)
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tournoi-uno/webapp/models"
)

func TestParticipationRegister(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipationService(repo, 500)

	p, err := svc.Register(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if p.PaymentStatus != models.PaymentPending {
		t.Errorf("expected pending payment, got %q", p.PaymentStatus)
	}
	if p.FeePaid != 500 {
		t.Errorf("expected configured fee 500, got %d", p.FeePaid)
	}
	if p.TransactionID == nil || *p.TransactionID == "" {
		t.Error("expected a transaction reference")
	}
}

func TestParticipationRegisterTwice(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipationService(repo, 500)

	if _, err := svc.Register(context.Background(), 1, 3); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), 1, 3); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
	if len(repo.participants) != 1 {
		t.Fatalf("expected one participant row, got %d", len(repo.participants))
	}

	// A different edition is a fresh registration.
	if _, err := svc.Register(context.Background(), 1, 4); err != nil {
		t.Fatalf("register for next edition failed: %v", err)
	}
}

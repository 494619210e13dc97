package services

import (
	"context"
	"testing"

	"github.com/tournoi-uno/webapp/models"
)

func TestLeaderboardRanksEntries(t *testing.T) {
	repo := &fakeStatsRepo{leaderboard: []*models.LeaderboardEntry{
		{UserID: 1, DisplayName: "Alice", Wins: 9, TotalMatches: 12, WinRate: 0.75},
		{UserID: 2, DisplayName: "Bob", Wins: 9, TotalMatches: 15, WinRate: 0.6},
		{UserID: 3, DisplayName: "Chloé", Wins: 4, TotalMatches: 8, WinRate: 0.5},
	}}
	svc := NewLeaderboardService(repo)

	entries, err := svc.Top(context.Background())
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entry %d: rank %d, want %d", i, e.Rank, i+1)
		}
	}
}

func TestLeaderboardExcludesIdlePlayers(t *testing.T) {
	repo := &fakeStatsRepo{leaderboard: []*models.LeaderboardEntry{
		{UserID: 1, DisplayName: "Alice", Wins: 9, TotalMatches: 12, WinRate: 0.75},
		{UserID: 2, DisplayName: "Idle", Wins: 0, TotalMatches: 0, WinRate: 0},
		{UserID: 3, DisplayName: "Chloé", Wins: 4, TotalMatches: 8, WinRate: 0.5},
	}}
	svc := NewLeaderboardService(repo)

	entries, err := svc.Top(context.Background())
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after filtering, got %d", len(entries))
	}
	for i, e := range entries {
		if e.TotalMatches == 0 {
			t.Errorf("player %q with zero matches must not appear", e.DisplayName)
		}
		if e.Rank != i+1 {
			t.Errorf("entry %d: rank %d, want %d (ranks must stay dense after filtering)", i, e.Rank, i+1)
		}
	}
	if entries[0].DisplayName != "Alice" || entries[1].DisplayName != "Chloé" {
		t.Errorf("unexpected standings order: %q, %q", entries[0].DisplayName, entries[1].DisplayName)
	}
}

package service

import (
	"context"
	"testing"

	"github.com/rafaelleal24/glowin/internal/core/domain"
)

func setupMembershipService(t *testing.T) *MembershipService {
	return NewMembershipService(DefaultMember(), domain.DefaultTierRates(domain.MustDiscountRate("0.15")))
}

func TestMembershipService_Profile(t *testing.T) {
	svc := setupMembershipService(t)

	profile := svc.Profile(context.Background())
	if profile.Member.Tier != domain.TierGold || profile.Member.Points != 2450 {
		t.Fatalf("unexpected member %+v", profile.Member)
	}
	if profile.Progress.Next != domain.TierDiamond || profile.Progress.PointsToGo != 550 {
		t.Fatalf("unexpected progress %+v", profile.Progress)
	}
	if profile.Progress.Percent != 82 {
		t.Fatalf("expected 82%% progress, got %d", profile.Progress.Percent)
	}
	if profile.Rate.Percent() != "15%" {
		t.Fatalf("expected 15%% rate, got %s", profile.Rate.Percent())
	}
}

func TestMembershipService_Rewards(t *testing.T) {
	svc := setupMembershipService(t)

	rewards := svc.Rewards(context.Background())
	if len(rewards) != 5 {
		t.Fatalf("expected 5 rewards, got %d", len(rewards))
	}
	for _, r := range rewards {
		if !r.Icon.IsValid() {
			t.Fatalf("reward %q has invalid icon", r.Title)
		}
		want := r.Title != "Free Shipping Month"
		if r.Available != want {
			t.Fatalf("reward %q: expected available=%v", r.Title, want)
		}
	}
}

func TestMembershipService_History(t *testing.T) {
	svc := setupMembershipService(t)

	history := svc.History(context.Background())
	history[0].Points = 0

	again := svc.History(context.Background())
	if again[0].Points != 150 {
		t.Fatal("expected history to be returned as a copy")
	}
	for _, tx := range again {
		if tx.Kind == domain.PointsRedeemed && tx.Points >= 0 {
			t.Fatalf("expected redeemed entry %q to be negative", tx.Description)
		}
	}
}

func TestMembershipService_DiscountRate(t *testing.T) {
	tests := []struct {
		tier domain.MembershipTier
		want string
	}{
		{domain.TierSilver, "5%"},
		{domain.TierGold, "10%"},
		{domain.TierDiamond, "20%"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			svc := NewMembershipService(domain.Member{Tier: tt.tier}, domain.DefaultTierRates(domain.MustDiscountRate("0.10")))
			if got := svc.DiscountRate().Percent(); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

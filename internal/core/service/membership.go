package service

import (
	"context"
	"time"

	"github.com/rafaelleal24/glowin/internal/core/domain"
)

type MembershipService struct {
	member  domain.Member
	rates   domain.TierRates
	rewards []domain.Reward
	history []domain.PointsTransaction
}

func NewMembershipService(member domain.Member, rates domain.TierRates) *MembershipService {
	return &MembershipService{
		member:  member,
		rates:   rates,
		rewards: defaultRewards(),
		history: defaultHistory(),
	}
}

func DefaultMember() domain.Member {
	return domain.Member{
		Name:        "Helsa Ramadhani",
		Tier:        domain.TierGold,
		Points:      2450,
		MemberSince: 2024,
	}
}

type MemberProfile struct {
	Member   domain.Member
	Progress domain.TierProgress
	Rate     domain.DiscountRate
}

func (s *MembershipService) Profile(ctx context.Context) *MemberProfile {
	return &MemberProfile{
		Member:   s.member,
		Progress: s.member.Progress(),
		Rate:     s.DiscountRate(),
	}
}

type RewardView struct {
	domain.Reward
	Available bool
}

func (s *MembershipService) Rewards(ctx context.Context) []RewardView {
	views := make([]RewardView, len(s.rewards))
	for i, r := range s.rewards {
		views[i] = RewardView{Reward: r, Available: r.AvailableFor(s.member.Points)}
	}
	return views
}

func (s *MembershipService) History(ctx context.Context) []domain.PointsTransaction {
	history := make([]domain.PointsTransaction, len(s.history))
	copy(history, s.history)
	return history
}

// DiscountRate is the member discount for the current tier, zero when the tier has no rate.
func (s *MembershipService) DiscountRate() domain.DiscountRate {
	return s.rates[s.member.Tier]
}

func defaultRewards() []domain.Reward {
	return []domain.Reward{
		{Title: "Free Lip Gloss", Points: 500, Description: "Get any lip gloss for free", Icon: domain.ResourceIcon("ic_gift"), Enabled: true},
		{Title: "20% Off Coupon", Points: 800, Description: "Discount for next purchase", Icon: domain.ResourceIcon("ic_discount"), Enabled: true},
		{Title: "Free Skincare Sample", Points: 300, Description: "Try new skincare products", Icon: domain.ResourceIcon("ic_spa"), Enabled: true},
		{Title: "VIP Consultation", Points: 1200, Description: "1-on-1 beauty consultation", Icon: domain.VectorIcon("Person"), Enabled: true},
		{Title: "Free Shipping Month", Points: 1000, Description: "Free shipping for 30 days", Icon: domain.ResourceIcon("ic_shipping"), Enabled: false},
	}
}

func defaultHistory() []domain.PointsTransaction {
	day := func(month time.Month, d int) time.Time {
		return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
	}
	return []domain.PointsTransaction{
		{Kind: domain.PointsEarned, Points: 150, Description: "Purchase: Rare Beauty Blush", Date: day(time.December, 20)},
		{Kind: domain.PointsRedeemed, Points: -500, Description: "Free Lip Gloss", Date: day(time.December, 18)},
		{Kind: domain.PointsEarned, Points: 200, Description: "Purchase: NARS Concealer", Date: day(time.December, 15)},
		{Kind: domain.PointsEarned, Points: 100, Description: "Monthly Gold Bonus", Date: day(time.December, 1)},
		{Kind: domain.PointsRedeemed, Points: -300, Description: "Free Skincare Sample", Date: day(time.November, 28)},
	}
}

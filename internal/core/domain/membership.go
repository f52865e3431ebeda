package domain

import "time"

type MembershipTier string

const (
	TierSilver  MembershipTier = "silver"
	TierGold    MembershipTier = "gold"
	TierDiamond MembershipTier = "diamond"
)

func (t MembershipTier) IsValid() bool {
	return t == TierSilver || t == TierGold || t == TierDiamond
}

// Threshold is the point balance at which a tier starts.
func (t MembershipTier) Threshold() int {
	switch t {
	case TierGold:
		return 1000
	case TierDiamond:
		return 3000
	default:
		return 0
	}
}

// Next returns the tier above t and false when t is the top tier.
func (t MembershipTier) Next() (MembershipTier, bool) {
	switch t {
	case TierSilver:
		return TierGold, true
	case TierGold:
		return TierDiamond, true
	default:
		return "", false
	}
}

// TierRates maps each tier to its member discount.
type TierRates map[MembershipTier]DiscountRate

func DefaultTierRates(gold DiscountRate) TierRates {
	return TierRates{
		TierSilver:  MustDiscountRate("0.05"),
		TierGold:    gold,
		TierDiamond: MustDiscountRate("0.20"),
	}
}

type Member struct {
	Name        string
	Tier        MembershipTier
	Points      int
	MemberSince int
}

type TierProgress struct {
	Current     MembershipTier
	Next        MembershipTier
	PointsToGo  int
	Percent     int
	IsTopTier   bool
	PointsTotal int
}

// Progress reports how far m is toward the next tier, as a rounded percentage of its threshold.
func (m Member) Progress() TierProgress {
	next, ok := m.Tier.Next()
	if !ok {
		return TierProgress{Current: m.Tier, Percent: 100, IsTopTier: true, PointsTotal: m.Points}
	}
	toGo := next.Threshold() - m.Points
	if toGo < 0 {
		toGo = 0
	}
	percent := (m.Points*100 + next.Threshold()/2) / next.Threshold()
	if percent > 100 {
		percent = 100
	}
	return TierProgress{
		Current:     m.Tier,
		Next:        next,
		PointsToGo:  toGo,
		Percent:     percent,
		PointsTotal: m.Points,
	}
}

type Reward struct {
	Title       string
	Points      int
	Description string
	Icon        Icon
	Enabled     bool
}

// AvailableFor reports whether balance covers the reward and the reward is offered.
func (r Reward) AvailableFor(balance int) bool {
	return r.Enabled && balance >= r.Points
}

type PointsTransactionKind string

const (
	PointsEarned   PointsTransactionKind = "earned"
	PointsRedeemed PointsTransactionKind = "redeemed"
)

type PointsTransaction struct {
	Kind        PointsTransactionKind
	Points      int
	Description string
	Date        time.Time
}

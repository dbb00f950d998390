package funds

import (
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/state"
)

// Spend is one labeled debit of money and/or hours
type Spend struct {
	Money         float64
	Hours         float64
	Label         string
	MoneyCategory string
	HoursCategory string
}

// Ledger moves money and hours in and out of the game state and records
// each movement as a labeled contribution in the day report
type Ledger struct{}

// NewLedger creates a funds ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Balances returns the remaining money and hours
func (l *Ledger) Balances(st *state.State) (money, hours float64) {
	return st.Money, st.TimeLeft
}

// Spend debits the pools. Balances never go below zero; callers check
// availability first.
func (l *Ledger) Spend(st *state.State, s Spend) {
	money := domain.NonNegative(s.Money)
	hours := domain.NonNegative(s.Hours)

	if money > 0 {
		st.Money = domain.NonNegative(st.Money - money)
		st.Daily.Spent += money
		st.AddContribution(state.Contribution{
			Category: categoryOr(s.MoneyCategory, domain.ContributionQualityCost),
			Label:    s.Label,
			Money:    money,
		})
	}
	if hours > 0 {
		st.TimeLeft = domain.NonNegative(st.TimeLeft - hours)
		st.Daily.HoursSpent += hours
		st.AddContribution(state.Contribution{
			Category: categoryOr(s.HoursCategory, domain.ContributionQualityTime),
			Label:    s.Label,
			Hours:    hours,
		})
	}
}

// Earn credits passive income
func (l *Ledger) Earn(st *state.State, amount float64, label string) {
	amount = domain.NonNegative(amount)
	if amount == 0 {
		return
	}
	st.Money += amount
	st.Daily.Earned += amount
	st.AddContribution(state.Contribution{
		Category: domain.ContributionPassive,
		Label:    label,
		Money:    amount,
	})
}

func categoryOr(category, fallback string) string {
	if category == "" {
		return fallback
	}
	return category
}

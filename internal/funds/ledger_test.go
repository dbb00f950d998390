package funds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/state"
)

func TestLedger_Spend(t *testing.T) {
	st := state.New(100, 10)
	l := NewLedger()

	l.Spend(st, Spend{Money: 30, Hours: 2.5, Label: "Write a post"})

	money, hours := l.Balances(st)
	assert.Equal(t, 70.0, money)
	assert.Equal(t, 7.5, hours)
	assert.Equal(t, 30.0, st.Daily.Spent)
	assert.Equal(t, 2.5, st.Daily.HoursSpent)
	require.Len(t, st.Daily.Contributions, 2)
	assert.Equal(t, domain.ContributionQualityCost, st.Daily.Contributions[0].Category)
	assert.Equal(t, domain.ContributionQualityTime, st.Daily.Contributions[1].Category)
}

func TestLedger_SpendIgnoresBadAmounts(t *testing.T) {
	st := state.New(10, 5)
	l := NewLedger()

	l.Spend(st, Spend{Money: -5, Hours: 0})
	assert.Equal(t, 10.0, st.Money)
	assert.Empty(t, st.Daily.Contributions)

	l.Spend(st, Spend{Money: 25, MoneyCategory: domain.ContributionUpgradeCost})
	assert.Equal(t, 0.0, st.Money)
	assert.Equal(t, domain.ContributionUpgradeCost, st.Daily.Contributions[0].Category)
}

func TestLedger_Earn(t *testing.T) {
	st := state.New(0, 0)
	l := NewLedger()

	l.Earn(st, 12, "Blog payout")
	l.Earn(st, 0, "nothing")

	assert.Equal(t, 12.0, st.Money)
	assert.Equal(t, 12.0, st.Daily.Earned)
	require.Len(t, st.Daily.Contributions, 1)
	assert.Equal(t, domain.ContributionPassive, st.Daily.Contributions[0].Category)
}

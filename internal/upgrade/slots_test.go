package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/incomeengine/internal/domain"
)

func monitorUpgrades() (*domain.UpgradeDefinition, *domain.UpgradeDefinition) {
	rig := &domain.UpgradeDefinition{ID: "dual_monitor_rig", Provides: map[string]int{"monitor": 2}}
	station := &domain.UpgradeDefinition{ID: "editing_workstation", Repeatable: true, Consumes: map[string]int{"monitor": 1}}
	return rig, station
}

func TestSlotLedger_MonitorCapacity(t *testing.T) {
	rig, station := monitorUpgrades()
	r, _, st := setup(t, rig, station)
	st.GrantUpgrade(rig)
	st.GrantUpgrade(station)

	slot, exceeds := r.WouldExceedCapacity(st, station)
	assert.False(t, exceeds)
	assert.Empty(t, slot)

	st.GrantUpgrade(station)
	ledger := r.BuildLedger(st)
	assert.Equal(t, 0, ledger.Available("monitor"))
	assert.Equal(t, []string{"monitor"}, ledger.Slots())

	slot, exceeds = r.WouldExceedCapacity(st, station)
	assert.True(t, exceeds)
	assert.Equal(t, "monitor", slot)
}

func TestSlotLedger_Exclude(t *testing.T) {
	rig, station := monitorUpgrades()
	r, _, st := setup(t, rig, station)
	st.GrantUpgrade(rig)
	st.GrantUpgrade(station)

	ledger := r.BuildLedger(st, "dual_monitor_rig")
	assert.Equal(t, -1, ledger.Available("monitor"))
}

func TestExclusiveConflict(t *testing.T) {
	base := &domain.UpgradeDefinition{ID: "basic_desk", ExclusivityGroup: "desk"}
	standing := &domain.UpgradeDefinition{ID: "standing_desk", ExclusivityGroup: "desk"}
	upgradeOf := &domain.UpgradeDefinition{ID: "motor_desk", ExclusivityGroup: "desk", Requires: []string{"standing_desk"}}
	ungrouped := &domain.UpgradeDefinition{ID: "lamp"}

	r, _, st := setup(t, base, standing, upgradeOf, ungrouped)

	_, conflict := r.ExclusiveConflict(st, standing)
	assert.False(t, conflict)

	st.GrantUpgrade(standing)
	other, conflict := r.ExclusiveConflict(st, base)
	require.True(t, conflict)
	assert.Equal(t, "standing_desk", other.ID)

	_, conflict = r.ExclusiveConflict(st, upgradeOf)
	assert.False(t, conflict, "prerequisites never conflict")

	_, conflict = r.ExclusiveConflict(st, standing)
	assert.False(t, conflict, "candidate never conflicts with itself")

	_, conflict = r.ExclusiveConflict(st, ungrouped)
	assert.False(t, conflict)
}

func TestCheckPurchase(t *testing.T) {
	rig, station := monitorUpgrades()
	course := &domain.UpgradeDefinition{ID: "course"}
	suite := &domain.UpgradeDefinition{ID: "suite", Requires: []string{"course"}}
	r, _, st := setup(t, rig, station, course, suite)

	assert.ErrorIs(t, r.CheckPurchase(st, station), domain.ErrSlotCapacity)
	assert.ErrorIs(t, r.CheckPurchase(st, suite), domain.ErrUpgradeLocked)
	assert.ErrorIs(t, r.CheckPurchase(st, nil), domain.ErrUpgradeNotFound)

	require.NoError(t, r.CheckPurchase(st, course))
	st.GrantUpgrade(course)
	assert.ErrorIs(t, r.CheckPurchase(st, course), domain.ErrUpgradeOwned)
	assert.NoError(t, r.CheckPurchase(st, suite))

	st.GrantUpgrade(rig)
	assert.NoError(t, r.CheckPurchase(st, station))
}

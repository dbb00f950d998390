package quality

import (
	"fmt"

	"github.com/osse101/incomeengine/internal/domain"
)

// Purchases reports upgrade ownership
type Purchases interface {
	IsPurchased(upgradeID string) bool
}

// UpgradeNames resolves upgrade ids to definitions for messages
type UpgradeNames interface {
	Upgrade(id string) (*domain.UpgradeDefinition, bool)
}

// Availability is the lock state of one action for one instance
type Availability struct {
	Unlocked       bool   `json:"unlocked"`
	Reason         string `json:"reason,omitempty"`
	MissingUpgrade string `json:"missing_upgrade,omitempty"`
}

// Gate decides whether actions are unlocked
type Gate struct {
	upgrades UpgradeNames
}

// NewGate creates an availability resolver
func NewGate(upgrades UpgradeNames) *Gate {
	return &Gate{upgrades: upgrades}
}

// Evaluate runs the action's custom predicate first, then checks that every
// required upgrade is purchased. The first missing upgrade is reported.
func (g *Gate) Evaluate(owned Purchases, ctx domain.ActionContext) Availability {
	action := ctx.Action
	if action == nil {
		return Availability{Unlocked: false}
	}

	if action.Lock != nil && !action.Lock.Allows(ctx) {
		return Availability{Reason: g.message(ctx, fmt.Sprintf(MsgLocked, action.Label))}
	}

	for _, id := range action.RequiresUpgrades {
		if owned.IsPurchased(id) {
			continue
		}
		ctx.MissingUpgrade = id
		ctx.MissingLabel = id
		if def, ok := g.upgrades.Upgrade(id); ok && def.Name != "" {
			ctx.MissingLabel = def.Name
		}
		return Availability{
			Reason:         g.message(ctx, fmt.Sprintf(MsgRequiresUpgrade, action.Label, ctx.MissingLabel)),
			MissingUpgrade: id,
		}
	}

	return Availability{Unlocked: true}
}

func (g *Gate) message(ctx domain.ActionContext, fallback string) string {
	if ctx.Action.LockMessage == nil {
		return fallback
	}
	if msg := ctx.Action.LockMessage.Resolve(ctx); msg != "" {
		return msg
	}
	return fallback
}

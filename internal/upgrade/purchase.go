package upgrade

import (
	"fmt"

	"github.com/osse101/incomeengine/internal/domain"
)

// CheckPurchase validates that one more unit of def may be bought. Money is
// checked by the caller.
func (r *Resolver) CheckPurchase(owned Ownership, def *domain.UpgradeDefinition) error {
	if def == nil {
		return domain.ErrUpgradeNotFound
	}
	if !def.Repeatable && owned.OwnedUnits(def) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrUpgradeOwned, def.ID)
	}
	for _, req := range def.Requires {
		reqDef, ok := r.registry.Upgrade(req)
		if !ok || owned.OwnedUnits(reqDef) == 0 {
			return fmt.Errorf("%w: %s needs %s", domain.ErrUpgradeLocked, def.ID, req)
		}
	}
	if other, conflict := r.ExclusiveConflict(owned, def); conflict {
		return fmt.Errorf("%w: %s and %s", domain.ErrUpgradeConflict, def.ID, other.ID)
	}
	if slot, exceeds := r.WouldExceedCapacity(owned, def); exceeds {
		return fmt.Errorf("%w: %s slot", domain.ErrSlotCapacity, slot)
	}
	return nil
}

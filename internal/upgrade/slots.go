package upgrade

import (
	"slices"
	"sort"

	"github.com/osse101/incomeengine/internal/domain"
)

// SlotLedger is the provides/consumes capacity accounting of owned upgrades
type SlotLedger struct {
	Provided map[string]int `json:"provided"`
	Consumed map[string]int `json:"consumed"`
}

// Available returns the spare capacity of a slot
func (l SlotLedger) Available(slot string) int {
	return l.Provided[slot] - l.Consumed[slot]
}

// Slots returns every slot name in the ledger, sorted
func (l SlotLedger) Slots() []string {
	seen := make(map[string]bool, len(l.Provided)+len(l.Consumed))
	for s := range l.Provided {
		seen[s] = true
	}
	for s := range l.Consumed {
		seen[s] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (l SlotLedger) add(def *domain.UpgradeDefinition, units int) {
	for slot, n := range def.Provides {
		l.Provided[slot] += n * units
	}
	for slot, n := range def.Consumes {
		l.Consumed[slot] += n * units
	}
}

// BuildLedger sums provides and consumes over every owned upgrade. Upgrades
// whose ids are listed in exclude are skipped.
func (r *Resolver) BuildLedger(owned Ownership, exclude ...string) SlotLedger {
	ledger := SlotLedger{
		Provided: make(map[string]int),
		Consumed: make(map[string]int),
	}
	for _, def := range r.registry.Upgrades() {
		if slices.Contains(exclude, def.ID) {
			continue
		}
		if units := owned.OwnedUnits(def); units > 0 {
			ledger.add(def, units)
		}
	}
	return ledger
}

// WouldExceedCapacity simulates owning one more unit of candidate and returns
// the first slot, by name, the candidate consumes beyond what is provided
func (r *Resolver) WouldExceedCapacity(owned Ownership, candidate *domain.UpgradeDefinition) (string, bool) {
	if candidate == nil || len(candidate.Consumes) == 0 {
		return "", false
	}
	ledger := r.BuildLedger(owned)
	ledger.add(candidate, 1)

	slots := make([]string, 0, len(candidate.Consumes))
	for slot := range candidate.Consumes {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	for _, slot := range slots {
		if ledger.Consumed[slot] > ledger.Provided[slot] {
			return slot, true
		}
	}
	return "", false
}

// ExclusiveConflict returns the first owned upgrade sharing candidate's
// exclusivity group. The candidate itself and its prerequisites never conflict.
func (r *Resolver) ExclusiveConflict(owned Ownership, candidate *domain.UpgradeDefinition) (*domain.UpgradeDefinition, bool) {
	if candidate == nil || candidate.ExclusivityGroup == "" {
		return nil, false
	}
	for _, def := range r.registry.Upgrades() {
		if def.ID == candidate.ID || def.ExclusivityGroup != candidate.ExclusivityGroup {
			continue
		}
		if slices.Contains(candidate.Requires, def.ID) {
			continue
		}
		if owned.OwnedUnits(def) > 0 {
			return def, true
		}
	}
	return nil, false
}

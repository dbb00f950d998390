package upgrade

import (
	"github.com/osse101/incomeengine/internal/domain"
)

// Registry is the authored upgrade catalog the resolver reads
type Registry interface {
	Upgrades() []*domain.UpgradeDefinition
	Upgrade(id string) (*domain.UpgradeDefinition, bool)
	EffectBounds(key domain.EffectKey) domain.Bounds
}

// Ownership reports how many units of an upgrade count toward effects
type Ownership interface {
	OwnedUnits(def *domain.UpgradeDefinition) int
}

// Attribution summarizes one source's contribution for breakdown displays
type Attribution struct {
	ID      string                `json:"id"`
	Label   string                `json:"label"`
	Kind    domain.DescriptorKind `json:"kind"`
	PerUnit float64               `json:"per_unit"`
	Count   int                   `json:"count"`
}

// Result is the outcome of one MultiplierFor call
type Result struct {
	Multiplier float64                   `json:"multiplier"`
	Unclamped  float64                   `json:"unclamped"`
	Clamped    bool                      `json:"clamped"`
	Applied    []domain.EffectDescriptor `json:"-"`
	Sources    []Attribution             `json:"sources"`
}

// Resolver computes clamped upgrade multipliers from owned upgrades
type Resolver struct {
	registry Registry
}

// NewResolver creates a resolver over an upgrade registry
func NewResolver(registry Registry) *Resolver {
	return &Resolver{registry: registry}
}

// MultiplierFor stacks every owned upgrade unit that matches the subject and
// action type for one effect key. Descriptors combine multiplicatively from
// 1.0 in authoring order and the product is clamped to the effect's bounds.
func (r *Resolver) MultiplierFor(owned Ownership, subject domain.Subject, key domain.EffectKey, actionType string) Result {
	descriptors := r.Descriptors(owned, subject, key, actionType)
	bounds := r.registry.EffectBounds(key)

	var res Result
	running := 1.0
	sourceIndex := make(map[string]int)

	for i := range descriptors {
		d := descriptors[i]
		before := running
		switch d.Kind {
		case domain.DescriptorFormula:
			running = ApplyModifier(d.Modifier, running)
		default:
			running *= d.Multiplier
		}

		// A descriptor counts as applied only if it moved the clamped value
		if bounds.Clamp(running) != bounds.Clamp(before) {
			res.Applied = append(res.Applied, d)
		}

		idx, seen := sourceIndex[d.SourceID]
		if !seen {
			perUnit := d.Multiplier
			if d.Kind == domain.DescriptorFormula && before != 0 {
				perUnit = running / before
			}
			sourceIndex[d.SourceID] = len(res.Sources)
			res.Sources = append(res.Sources, Attribution{
				ID:      d.SourceID,
				Label:   d.SourceLabel,
				Kind:    d.Kind,
				PerUnit: perUnit,
			})
			idx = len(res.Sources) - 1
		}
		res.Sources[idx].Count++
	}

	res.Unclamped = domain.Finite(running)
	res.Multiplier = bounds.Clamp(res.Unclamped)
	res.Clamped = res.Multiplier != res.Unclamped
	return res
}

// Descriptors expands matching owned upgrades into one descriptor per owned
// unit. Upgrades with authored modifiers for the key and subject use those
// formulas instead of their flat effect value.
func (r *Resolver) Descriptors(owned Ownership, subject domain.Subject, key domain.EffectKey, actionType string) []domain.EffectDescriptor {
	var out []domain.EffectDescriptor
	for _, def := range r.registry.Upgrades() {
		units := owned.OwnedUnits(def)
		if units <= 0 || !Matches(def.Affects, subject, actionType) {
			continue
		}

		formulas := matchingModifiers(def, subject, key, actionType)
		if len(formulas) > 0 {
			for u := 0; u < units; u++ {
				for i := range formulas {
					out = append(out, domain.EffectDescriptor{
						SourceID:    def.ID,
						SourceLabel: def.Name,
						Target:      key,
						Kind:        domain.DescriptorFormula,
						Modifier:    formulas[i],
					})
				}
			}
			continue
		}

		mult, ok := def.Effects[key]
		mult = domain.Finite(mult)
		if !ok || mult <= 0 {
			continue
		}
		for u := 0; u < units; u++ {
			out = append(out, domain.EffectDescriptor{
				SourceID:    def.ID,
				SourceLabel: def.Name,
				Target:      key,
				Kind:        domain.DescriptorFlat,
				Multiplier:  mult,
			})
		}
	}
	return out
}

func matchingModifiers(def *domain.UpgradeDefinition, subject domain.Subject, key domain.EffectKey, actionType string) []*domain.EffectModifier {
	var out []*domain.EffectModifier
	for i := range def.Modifiers {
		m := &def.Modifiers[i]
		if m.Property == key && Matches(m.Target, subject, actionType) {
			out = append(out, m)
		}
	}
	return out
}

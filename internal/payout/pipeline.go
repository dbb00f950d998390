package payout

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/logger"
	"github.com/osse101/incomeengine/internal/niche"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/upgrade"
	"github.com/osse101/incomeengine/internal/utils"
)

// Catalog resolves asset types
type Catalog interface {
	Asset(id string) (*domain.AssetDefinition, bool)
}

// Ranges resolves the income band of an instance's current quality level
type Ranges interface {
	IncomeRange(def *domain.AssetDefinition, inst *domain.AssetInstance) domain.IncomeRange
}

// Niches resolves niche popularity
type Niches interface {
	Popularity(st *state.State, id string) (niche.Popularity, bool)
}

// Events lists the active events affecting an instance
type Events interface {
	ActiveFor(inst *domain.AssetInstance) []*domain.Event
}

// Education computes course bonuses
type Education interface {
	Bonus(st *state.State, assetID string, baseAmount float64) domain.EducationResult
}

// Multipliers resolves upgrade effect multipliers
type Multipliers interface {
	MultiplierFor(owned upgrade.Ownership, subject domain.Subject, key domain.EffectKey, actionType string) upgrade.Result
}

// Result is one computed payout
type Result struct {
	Breakdown domain.IncomeBreakdown
	Upgrades  upgrade.Result
	Education domain.EducationResult
}

// Pipeline computes one instance's daily payout
type Pipeline struct {
	catalog     Catalog
	ranges      Ranges
	niches      Niches
	events      Events
	education   Education
	multipliers Multipliers
	rnd         func() float64
}

// NewPipeline creates a payout pipeline
func NewPipeline(
	catalog Catalog,
	ranges Ranges,
	niches Niches,
	events Events,
	education Education,
	multipliers Multipliers,
) *Pipeline {
	return &Pipeline{
		catalog:     catalog,
		ranges:      ranges,
		niches:      niches,
		events:      events,
		education:   education,
		multipliers: multipliers,
		rnd:         utils.RandomFloat,
	}
}

// SetRandom replaces the base roll source
func (p *Pipeline) SetRandom(rnd func() float64) {
	p.rnd = rnd
}

// entry is an unrounded breakdown line
type entry struct {
	domain.IncomeEntry
	raw float64
}

// run accumulates entries whose raw amounts always sum to amount
type run struct {
	amount  float64
	entries []entry
}

func (r *run) add(id, label string, typ domain.EntryType, amount, percent float64) {
	amount = domain.Finite(amount)
	r.entries = append(r.entries, entry{
		IncomeEntry: domain.IncomeEntry{ID: id, Label: label, Type: typ, Percent: percent},
		raw:         amount,
	})
	r.amount += amount
}

// floor keeps the running amount non-negative by trimming the last entry
func (r *run) floor() {
	if r.amount >= 0 || len(r.entries) == 0 {
		return
	}
	r.entries[len(r.entries)-1].raw -= r.amount
	r.amount = 0
}

type recorder struct {
	contributions []domain.IncomeContribution
}

func (r *recorder) Record(id, label string, amount float64) {
	r.contributions = append(r.contributions, domain.IncomeContribution{ID: id, Label: label, Amount: amount})
}

// Compute rolls and stores the payout of an active instance for the state's
// current day. Inactive instances and unknown asset types are skipped.
func (p *Pipeline) Compute(ctx context.Context, st *state.State, inst *domain.AssetInstance) (Result, bool) {
	if !inst.IsActive() {
		return Result{}, false
	}
	def, ok := p.catalog.Asset(inst.AssetID)
	if !ok {
		logger.FromContext(ctx).Debug("Payout skipped: unknown asset", "assetID", inst.AssetID, "instanceID", inst.ID)
		return Result{}, false
	}

	var r run
	p.base(&r, def, inst)
	p.customModifier(&r, def, inst, st.Day)
	p.niche(&r, st, inst)
	p.applyEvents(&r, inst)
	edu := p.applyEducation(&r, st, def)

	entries, subtotal := reconcile(r)
	mult := p.multipliers.MultiplierFor(st, def.Subject(), domain.EffectPayout, domain.ActionTypePayout)
	entries, total := applyUpgrades(entries, subtotal, mult)

	breakdown := domain.IncomeBreakdown{Day: st.Day, Total: total, Entries: entries}
	inst.LastIncome = total
	inst.LastIncomeBreakdown = &breakdown
	if len(edu.Applied) > 0 {
		inst.EducationTrace = edu.Applied
	} else {
		inst.EducationTrace = nil
	}

	return Result{Breakdown: breakdown, Upgrades: mult, Education: edu}, true
}

// Stage 1: uniform roll inside the current tier's band
func (p *Pipeline) base(r *run, def *domain.AssetDefinition, inst *domain.AssetInstance) {
	band := p.ranges.IncomeRange(def, inst)
	lo, hi := domain.Finite(band.Min), domain.Finite(band.Max)
	if hi < lo {
		lo, hi = hi, lo
	}
	amount := math.Round(math.Max(0, utils.RandomBetween(lo, hi, p.rnd)))
	r.add(EntryIDBase, LabelBase, domain.EntryTypeBase, amount, 0)
}

// Stage 2: the asset type's custom modifier
func (p *Pipeline) customModifier(r *run, def *domain.AssetDefinition, inst *domain.AssetInstance, day int) {
	if def.IncomeModifier == nil {
		return
	}
	base := r.amount
	rec := &recorder{}
	res := def.IncomeModifier.ModifyIncome(domain.IncomeModifierInput{
		Asset:    def,
		Instance: inst,
		Base:     base,
		Day:      day,
	}, rec)

	recorded := 0.0
	for _, c := range rec.contributions {
		r.add(modifierID(c.ID), labelOr(c.Label, LabelModifier), domain.EntryTypeModifier, c.Amount, 0)
		recorded += domain.Finite(c.Amount)
	}

	if res.Total != nil {
		residual := domain.NonNegative(*res.Total) - base - recorded
		if math.Abs(residual) > 1e-9 {
			id, label := EntryIDAdjustment, LabelAdjustment
			if len(rec.contributions) == 0 {
				id, label = EntryIDModifier, LabelModifier
			}
			r.add(id, label, domain.EntryTypeModifier, residual, 0)
		}
	} else {
		for _, c := range res.Entries {
			r.add(modifierID(c.ID), labelOr(c.Label, LabelModifier), domain.EntryTypeModifier, c.Amount, 0)
		}
	}
	r.floor()
}

// Stage 3: niche popularity
func (p *Pipeline) niche(r *run, st *state.State, inst *domain.AssetInstance) {
	if inst.NicheID == "" || p.niches == nil {
		return
	}
	pop, ok := p.niches.Popularity(st, inst.NicheID)
	if !ok {
		return
	}
	delta := r.amount * (pop.Multiplier - 1)
	if math.Abs(delta) <= NicheMateriality {
		return
	}
	r.add(EntryPrefixNiche+pop.ID, fmt.Sprintf("%s demand (%s)", pop.Name, pop.Summary), domain.EntryTypeNiche, delta, pop.Multiplier-1)
	r.floor()
}

// Stage 4: active timed events, compounding in store order
func (p *Pipeline) applyEvents(r *run, inst *domain.AssetInstance) {
	if p.events == nil {
		return
	}
	for _, evt := range p.events.ActiveFor(inst) {
		delta := r.amount * evt.CurrentPercent
		r.add(EntryPrefixEvent+evt.ID, evt.Label, domain.EntryTypeEvent, delta, evt.CurrentPercent)
		r.floor()
	}
}

// Stage 5: education bonuses
func (p *Pipeline) applyEducation(r *run, st *state.State, def *domain.AssetDefinition) domain.EducationResult {
	if p.education == nil {
		return domain.EducationResult{}
	}
	res := p.education.Bonus(st, def.ID, r.amount)
	for _, b := range res.Applied {
		r.add(EntryPrefixCourse+b.ID, b.Label, domain.EntryTypeEducation, b.Extra, 0)
		r.floor()
	}
	return res
}

// reconcile rounds every entry and pushes the rounding remainder into the last
// one so the entries sum to the rounded running amount (stage 6)
func reconcile(r run) ([]domain.IncomeEntry, int) {
	total := int(math.Round(math.Max(0, r.amount)))
	out := make([]domain.IncomeEntry, len(r.entries))
	sum := 0
	for i, e := range r.entries {
		out[i] = e.IncomeEntry
		out[i].Amount = int(math.Round(e.raw))
		sum += out[i].Amount
	}
	if diff := total - sum; diff != 0 && len(out) > 0 {
		out[len(out)-1].Amount += diff
	}
	return out, total
}

// applyUpgrades scales the rounded subtotal by the payout multiplier and
// attributes the change to each contributing upgrade (stage 7). The rounding
// remainder goes to the last upgrade entry, or to the last entry when no
// upgrade entry survives rounding.
func applyUpgrades(entries []domain.IncomeEntry, subtotal int, mult upgrade.Result) ([]domain.IncomeEntry, int) {
	total := int(math.Round(math.Max(0, float64(subtotal)*mult.Multiplier)))
	delta := total - subtotal
	if delta == 0 {
		return entries, subtotal
	}

	// Sequential raw deltas per source, scaled to the clamped total change.
	// Sources whose descriptors were all clamped away get no share.
	applied := make(map[string]bool, len(mult.Applied))
	for _, d := range mult.Applied {
		applied[d.SourceID] = true
	}
	raws := make([]float64, len(mult.Sources))
	rawSum := 0.0
	running := float64(subtotal)
	for i, src := range mult.Sources {
		factor := math.Pow(src.PerUnit, float64(src.Count))
		if applied[src.ID] {
			raws[i] = running * (factor - 1)
			rawSum += raws[i]
		}
		running *= factor
	}

	assigned := 0
	if rawSum != 0 {
		scale := float64(delta) / rawSum
		for i, src := range mult.Sources {
			amount := int(math.Round(raws[i] * scale))
			if amount == 0 {
				continue
			}
			entries = append(entries, domain.IncomeEntry{
				ID:      EntryPrefixUpgrade + src.ID,
				Label:   src.Label,
				Amount:  amount,
				Type:    domain.EntryTypeUpgrade,
				Percent: math.Pow(src.PerUnit, float64(src.Count)) - 1,
			})
			assigned += amount
		}
	}

	// The last entry is the last upgrade entry if any survived, otherwise
	// the last base or event entry
	if remainder := delta - assigned; remainder != 0 && len(entries) > 0 {
		entries[len(entries)-1].Amount += remainder
	}
	return entries, total
}

func modifierID(id string) string {
	if id == "" {
		return EntryIDModifier
	}
	return EntryIDModifier + ":" + id
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

package niche

import (
	"fmt"

	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/utils"
)

// Catalog lists authored niches
type Catalog interface {
	Niche(id string) (domain.NicheDefinition, bool)
	Niches() []domain.NicheDefinition
}

// Popularity is the current demand of one niche
type Popularity struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Multiplier float64 `json:"multiplier"`
	Summary    string  `json:"summary"`
}

// Oracle resolves niche popularity from the game state
type Oracle struct {
	catalog Catalog
	rnd     func() float64
}

// NewOracle creates a niche oracle
func NewOracle(catalog Catalog) *Oracle {
	return &Oracle{catalog: catalog, rnd: utils.RandomFloat}
}

// SetRandom replaces the drift roll source
func (o *Oracle) SetRandom(rnd func() float64) {
	o.rnd = rnd
}

// Multiplier converts a 0..100 popularity score into a payout multiplier
func Multiplier(score float64) float64 {
	return 0.5 + clampScore(score)/100
}

// Summary labels a popularity score
func Summary(score float64) string {
	score = clampScore(score)
	switch {
	case score >= BoomingScore:
		return SummaryBooming
	case score >= TrendingScore:
		return SummaryTrending
	case score >= SteadyScore:
		return SummarySteady
	case score >= CoolingScore:
		return SummaryCooling
	default:
		return SummaryDormant
	}
}

// Score returns the current score of a niche, seeded from its base score
func (o *Oracle) Score(st *state.State, id string) (float64, bool) {
	def, ok := o.catalog.Niche(id)
	if !ok {
		return 0, false
	}
	if score, ok := st.NichePopularity[id]; ok {
		return clampScore(score), true
	}
	return clampScore(def.BaseScore), true
}

// Popularity resolves a niche id to its current demand
func (o *Oracle) Popularity(st *state.State, id string) (Popularity, bool) {
	def, ok := o.catalog.Niche(id)
	if !ok {
		return Popularity{}, false
	}
	score, _ := o.Score(st, id)
	return Popularity{
		ID:         def.ID,
		Name:       def.Name,
		Score:      score,
		Multiplier: Multiplier(score),
		Summary:    Summary(score),
	}, true
}

// All returns the popularity of every niche in authoring order
func (o *Oracle) All(st *state.State) []Popularity {
	var out []Popularity
	for _, def := range o.catalog.Niches() {
		if p, ok := o.Popularity(st, def.ID); ok {
			out = append(out, p)
		}
	}
	return out
}

// Drift moves every niche score by a random step bounded by its volatility
func (o *Oracle) Drift(st *state.State) {
	for _, def := range o.catalog.Niches() {
		score, _ := o.Score(st, def.ID)
		step := (o.rnd()*2 - 1) * domain.NonNegative(def.Volatility)
		st.NichePopularity[def.ID] = clampScore(score + step)
	}
}

// Assign attaches an instance to a niche
func (o *Oracle) Assign(inst *domain.AssetInstance, id string) error {
	if _, ok := o.catalog.Niche(id); !ok {
		return fmt.Errorf("%w: %s", domain.ErrNicheNotFound, id)
	}
	inst.NicheID = id
	return nil
}

func clampScore(score float64) float64 {
	return utils.Clamp(domain.Finite(score), MinScore, MaxScore)
}

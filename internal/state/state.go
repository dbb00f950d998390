package state

import (
	"sort"

	"github.com/osse101/incomeengine/internal/domain"
)

// Contribution is one labeled money or time movement recorded for the day report
type Contribution struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Money    float64 `json:"money,omitempty"`
	Hours    float64 `json:"hours,omitempty"`
}

// DailyMetrics aggregates what happened during the current day
type DailyMetrics struct {
	Day           int            `json:"day"`
	Earned        float64        `json:"earned"`
	Spent         float64        `json:"spent"`
	HoursSpent    float64        `json:"hours_spent"`
	Contributions []Contribution `json:"contributions"`
}

// State is the single owned game-state record. Every engine component reads
// and mutates instances through the pointers stored here; there are no
// mirrored copies to keep in sync.
type State struct {
	Day              int                                `json:"day"`
	Money            float64                            `json:"money"`
	TimeLeft         float64                            `json:"time_left"`
	DailyHours       float64                            `json:"daily_hours"`
	Assets           map[string][]*domain.AssetInstance `json:"assets"`
	Upgrades         map[string]domain.UpgradeOwnership `json:"upgrades"`
	NichePopularity  map[string]float64                 `json:"niche_popularity"`
	CompletedCourses map[string]bool                    `json:"completed_courses"`
	SkillXP          map[string]float64                 `json:"skill_xp"`
	Daily            DailyMetrics                       `json:"daily"`
}

// New creates a state on day 1 with the given starting pools
func New(money, dailyHours float64) *State {
	return &State{
		Day:              1,
		Money:            domain.NonNegative(money),
		TimeLeft:         domain.NonNegative(dailyHours),
		DailyHours:       domain.NonNegative(dailyHours),
		Assets:           make(map[string][]*domain.AssetInstance),
		Upgrades:         make(map[string]domain.UpgradeOwnership),
		NichePopularity:  make(map[string]float64),
		CompletedCourses: make(map[string]bool),
		SkillXP:          make(map[string]float64),
		Daily:            DailyMetrics{Day: 1},
	}
}

// AddInstance stores a new instance under its asset type
func (s *State) AddInstance(inst *domain.AssetInstance) {
	s.Assets[inst.AssetID] = append(s.Assets[inst.AssetID], inst)
}

// Instance looks up an instance by asset type and instance id
func (s *State) Instance(assetID, instanceID string) (*domain.AssetInstance, bool) {
	for _, inst := range s.Assets[assetID] {
		if inst.ID == instanceID {
			return inst, true
		}
	}
	return nil, false
}

// FindInstance looks up an instance by id across all asset types
func (s *State) FindInstance(instanceID string) (*domain.AssetInstance, bool) {
	for _, inst := range s.Instances() {
		if inst.ID == instanceID {
			return inst, true
		}
	}
	return nil, false
}

// HasInstance reports whether the instance still exists
func (s *State) HasInstance(assetID, instanceID string) bool {
	_, ok := s.Instance(assetID, instanceID)
	return ok
}

// Instances returns every instance ordered by asset type id, then launch order
func (s *State) Instances() []*domain.AssetInstance {
	ids := make([]string, 0, len(s.Assets))
	for id := range s.Assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []*domain.AssetInstance
	for _, id := range ids {
		out = append(out, s.Assets[id]...)
	}
	return out
}

// Ownership returns the purchase record of an upgrade
func (s *State) Ownership(upgradeID string) domain.UpgradeOwnership {
	return s.Upgrades[upgradeID]
}

// IsPurchased reports whether at least one unit of an upgrade is owned
func (s *State) IsPurchased(upgradeID string) bool {
	o := s.Upgrades[upgradeID]
	return o.Purchased || o.Count > 0
}

// OwnedUnits returns how many units of an upgrade count toward effects.
// Non-repeatable upgrades count at most once.
func (s *State) OwnedUnits(def *domain.UpgradeDefinition) int {
	if def == nil {
		return 0
	}
	o := s.Upgrades[def.ID]
	if !def.Repeatable {
		if o.Purchased || o.Count > 0 {
			return 1
		}
		return 0
	}
	if o.Count == 0 && o.Purchased {
		return 1
	}
	if o.Count < 0 {
		return 0
	}
	return o.Count
}

// GrantUpgrade records one more owned unit of an upgrade
func (s *State) GrantUpgrade(def *domain.UpgradeDefinition) {
	o := s.Upgrades[def.ID]
	o.Purchased = true
	if def.Repeatable {
		o.Count++
	} else {
		o.Count = 1
	}
	s.Upgrades[def.ID] = o
}

// AddContribution appends a labeled money/time movement to the day report
func (s *State) AddContribution(c Contribution) {
	s.Daily.Contributions = append(s.Daily.Contributions, c)
}

// BeginDay advances the day counter, restores the hour pool and starts a new
// day report. Instance usage counters are reset by the caller.
func (s *State) BeginDay() {
	s.Day++
	s.TimeLeft = s.DailyHours
	s.Daily = DailyMetrics{Day: s.Day}
}

package state

import (
	"sort"

	"github.com/osse101/incomeengine/internal/domain"
)

// View is a read-only copy of the state for presentation layers
type View struct {
	Day              int                                `json:"day"`
	Money            float64                            `json:"money"`
	TimeLeft         float64                            `json:"time_left"`
	DailyHours       float64                            `json:"daily_hours"`
	Instances        []*domain.AssetInstance            `json:"instances"`
	Upgrades         map[string]domain.UpgradeOwnership `json:"upgrades"`
	NichePopularity  map[string]float64                 `json:"niche_popularity"`
	CompletedCourses []string                           `json:"completed_courses"`
	SkillXP          map[string]float64                 `json:"skill_xp"`
	Daily            DailyMetrics                       `json:"daily"`
}

// Snapshot derives a deep copy of the state. Mutating the view never touches
// the owned record.
func (s *State) Snapshot() View {
	v := View{
		Day:             s.Day,
		Money:           s.Money,
		TimeLeft:        s.TimeLeft,
		DailyHours:      s.DailyHours,
		Upgrades:        make(map[string]domain.UpgradeOwnership, len(s.Upgrades)),
		NichePopularity: make(map[string]float64, len(s.NichePopularity)),
		SkillXP:         make(map[string]float64, len(s.SkillXP)),
		Daily:           s.Daily,
	}
	v.Daily.Contributions = append([]Contribution(nil), s.Daily.Contributions...)

	for _, inst := range s.Instances() {
		v.Instances = append(v.Instances, inst.Clone())
	}
	for k, o := range s.Upgrades {
		v.Upgrades[k] = o
	}
	for k, p := range s.NichePopularity {
		v.NichePopularity[k] = p
	}
	for k, xp := range s.SkillXP {
		v.SkillXP[k] = xp
	}
	for id, done := range s.CompletedCourses {
		if done {
			v.CompletedCourses = append(v.CompletedCourses, id)
		}
	}
	sort.Strings(v.CompletedCourses)
	return v
}

package lifecycle

import (
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/utils"
)

// SpawnNicheEvents rolls chance for every niche that has no event yet and
// creates one from a random niche template. Spawned events take effect on
// the following day.
func (m *Manager) SpawnNicheEvents(st *state.State, chance float64) []*domain.Event {
	templates := m.catalog.Templates(domain.EventTargetNiche)
	if len(templates) == 0 || chance <= 0 {
		return nil
	}

	var spawned []*domain.Event
	for _, niche := range m.catalog.Niches() {
		target := domain.EventTarget{Kind: domain.EventTargetNiche, NicheID: niche.ID}
		if len(m.store.ByTarget(target)) > 0 {
			continue
		}
		if m.rnd() >= chance {
			continue
		}
		tmpl := templates[utils.RandomIntBetween(0, len(templates)-1, m.rnd)]
		if tmpl.Chance > 0 && m.rnd() >= tmpl.Chance {
			continue
		}
		spawned = append(spawned, m.Create(tmpl, target, st.Day+1))
	}
	return spawned
}

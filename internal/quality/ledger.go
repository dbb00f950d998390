package quality

import (
	"github.com/osse101/incomeengine/internal/domain"
)

// LevelSource provides sorted quality levels per asset type
type LevelSource interface {
	SortedLevels(def *domain.AssetDefinition) []domain.QualityLevelDefinition
	MaxLevel(def *domain.AssetDefinition) int
	LevelFor(def *domain.AssetDefinition, level int) (domain.QualityLevelDefinition, bool)
}

// LevelUp describes an instance moving to a higher quality level
type LevelUp struct {
	Asset    *domain.AssetDefinition
	Instance *domain.AssetInstance
	From     int
	To       int
	Level    domain.QualityLevelDefinition
}

// Ledger evaluates and advances quality levels
type Ledger struct {
	levels LevelSource
}

// NewLedger creates a ledger over a level source
func NewLedger(levels LevelSource) *Ledger {
	return &Ledger{levels: levels}
}

// EnsureQuality normalizes an instance's quality state in place. Safe to call
// repeatedly.
func EnsureQuality(inst *domain.AssetInstance) {
	if inst == nil {
		return
	}
	if inst.Quality.Level < 0 {
		inst.Quality.Level = 0
	}
	if inst.Quality.Progress == nil {
		inst.Quality.Progress = make(map[string]float64)
	}
	for track, v := range inst.Quality.Progress {
		inst.Quality.Progress[track] = domain.NonNegative(v)
	}
	if inst.DailyUsage == nil {
		inst.DailyUsage = make(map[string]int)
	}
}

// EligibleLevel walks levels in ascending order and returns the highest level
// whose requirements, and the requirements of every level below it, are met.
// A level with unmet requirements stops the walk even when a later level would
// be satisfied.
func EligibleLevel(levels []domain.QualityLevelDefinition, progress map[string]float64) int {
	eligible := 0
	for _, level := range levels {
		if !requirementsMet(level.Requirements, progress) {
			break
		}
		eligible = level.Level
	}
	return eligible
}

func requirementsMet(requirements, progress map[string]float64) bool {
	for track, threshold := range requirements {
		threshold = domain.Finite(threshold)
		if threshold <= 0 {
			continue
		}
		if domain.NonNegative(progress[track]) < threshold {
			return false
		}
	}
	return true
}

// EligibleLevel returns the eligible level of an instance of def
func (l *Ledger) EligibleLevel(def *domain.AssetDefinition, progress map[string]float64) int {
	return EligibleLevel(l.levels.SortedLevels(def), progress)
}

// Advance raises the instance's level to its eligible level, capped at the
// highest authored level. Levels are never lowered. Returns the level-up, if any.
func (l *Ledger) Advance(def *domain.AssetDefinition, inst *domain.AssetInstance) (LevelUp, bool) {
	EnsureQuality(inst)

	target := l.EligibleLevel(def, inst.Quality.Progress)
	if maxLevel := l.levels.MaxLevel(def); target > maxLevel {
		target = maxLevel
	}
	if target <= inst.Quality.Level {
		return LevelUp{}, false
	}

	up := LevelUp{Asset: def, Instance: inst, From: inst.Quality.Level, To: target}
	up.Level, _ = l.levels.LevelFor(def, target)
	inst.Quality.Level = target
	return up, true
}

// IncomeRange returns the payout band of the instance's current level,
// falling back to the asset type's base income
func (l *Ledger) IncomeRange(def *domain.AssetDefinition, inst *domain.AssetInstance) domain.IncomeRange {
	level := 0
	if inst != nil {
		level = inst.Quality.Level
	}
	if lvl, ok := l.levels.LevelFor(def, level); ok && (lvl.Income.Min != 0 || lvl.Income.Max != 0) {
		return lvl.Income
	}
	return def.BaseIncome
}

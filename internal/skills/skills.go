package skills

import (
	"math"

	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/state"
)

// Award is one skill-progress grant
type Award struct {
	Skills         []domain.SkillWeight
	TimeSpentHours float64
	MoneySpent     float64
	Label          string
}

// LevelUp describes a skill crossing a level threshold
type LevelUp struct {
	Skill    string
	OldLevel int
	NewLevel int
}

// Awarder converts spent time and money into skill XP
type Awarder struct{}

// NewAwarder creates a skill awarder
func NewAwarder() *Awarder {
	return &Awarder{}
}

// Award splits XP across the weighted skills and returns any level-ups
func (a *Awarder) Award(st *state.State, award Award) []LevelUp {
	total := XPFor(award.TimeSpentHours, award.MoneySpent)
	if total <= 0 || len(award.Skills) == 0 {
		return nil
	}

	weightSum := 0.0
	for _, s := range award.Skills {
		weightSum += domain.NonNegative(s.Weight)
	}
	if weightSum == 0 {
		return nil
	}

	var ups []LevelUp
	for _, s := range award.Skills {
		w := domain.NonNegative(s.Weight)
		if w == 0 {
			continue
		}
		before := st.SkillXP[s.ID]
		after := before + total*w/weightSum
		st.SkillXP[s.ID] = after

		oldLevel, newLevel := CalculateLevel(before), CalculateLevel(after)
		if newLevel > oldLevel {
			ups = append(ups, LevelUp{Skill: s.ID, OldLevel: oldLevel, NewLevel: newLevel})
		}
	}
	return ups
}

// XPFor returns the XP earned for time and money spent
func XPFor(hours, money float64) float64 {
	return domain.NonNegative(hours)*XPPerHour + domain.NonNegative(money)/MoneyPerXP
}

// CalculateLevel determines the level from total XP using the formula:
// XP for level N = BaseXP * (N ^ LevelExponent)
func CalculateLevel(totalXP float64) int {
	level, _ := calculateLevelAndNextXP(totalXP)
	return level
}

// GetXPForLevel returns the XP required to reach a specific level from level 0
func GetXPForLevel(level int) float64 {
	if level <= 0 {
		return 0
	}

	cumulative := 0.0
	for i := 1; i <= level; i++ {
		cumulative += BaseXP * math.Pow(float64(i), LevelExponent)
	}

	return cumulative
}

// GetXPProgress returns current level and XP needed for next level
func GetXPProgress(currentXP float64) (currentLevel int, xpToNext float64) {
	var xpForNext float64
	currentLevel, xpForNext = calculateLevelAndNextXP(currentXP)
	xpToNext = xpForNext - currentXP
	return
}

// calculateLevelAndNextXP computes the level and the cumulative XP required for the NEXT level
func calculateLevelAndNextXP(totalXP float64) (int, float64) {
	if totalXP <= 0 {
		return 0, BaseXP
	}

	level := 0
	cumulative := 0.0

	for level < MaxIterationLevel {
		nextLevel := level + 1
		xpForNextLevel := BaseXP * math.Pow(float64(nextLevel), LevelExponent)

		if cumulative+xpForNextLevel > totalXP {
			return level, cumulative + xpForNextLevel
		}
		cumulative += xpForNextLevel
		level = nextLevel
	}

	nextLevel := level + 1
	return level, cumulative + BaseXP*math.Pow(float64(nextLevel), LevelExponent)
}

package domain

// QualityLevelDefinition is one tier of an asset type's quality ladder
type QualityLevelDefinition struct {
	Level        int
	Name         string
	Description  string
	Requirements map[string]float64
	Income       IncomeRange
}

// QualityActionDefinition describes a player action that advances quality
type QualityActionDefinition struct {
	ID               string
	Label            string
	TimeHours        float64
	Cost             float64
	DailyLimit       int
	ProgressKey      string
	Progress         ProgressAmount
	RequiresUpgrades []string
	Lock             LockPredicate
	LockMessage      MessageResolver
	Skills           []SkillWeight
	EventTriggers    []EventTrigger
	OnComplete       CompletionHook
	LogMessage       MessageResolver
}

// EventTrigger spawns an instance-scoped event after an action with some chance
type EventTrigger struct {
	TemplateID string
	Chance     float64
}

// ActionContext is handed to every authored action strategy
type ActionContext struct {
	Asset          *AssetDefinition
	Instance       *AssetInstance
	Action         *QualityActionDefinition
	Day            int
	MissingUpgrade string
	MissingLabel   string
}

// LockPredicate is a custom availability rule attached to an action
type LockPredicate interface {
	Allows(ctx ActionContext) bool
}

// MessageResolver produces player-facing copy from the action context
type MessageResolver interface {
	Resolve(ctx ActionContext) string
}

// ProgressAmount computes how much track progress one action run grants
type ProgressAmount interface {
	Amount(ctx ActionContext) float64
}

// CompletionEffects is what a completion hook may touch
type CompletionEffects interface {
	AddProgress(track string, amount float64)
	Record(message, category string)
}

// CompletionHook runs after a successful action, before the completion log
type CompletionHook interface {
	Complete(ctx ActionContext, effects CompletionEffects)
}

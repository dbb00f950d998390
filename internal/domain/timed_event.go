package domain

// EventTargetKind says whether an event is attached to an instance or a niche
type EventTargetKind string

const (
	EventTargetAsset EventTargetKind = "asset"
	EventTargetNiche EventTargetKind = "niche"
)

// EventStat is the stat an event modifies
type EventStat string

const EventStatIncome EventStat = "income"

// EventModifierType is how an event modifies its stat
type EventModifierType string

const EventModifierPercent EventModifierType = "percent"

// EventTone is presentation metadata for an event
type EventTone string

const (
	EventTonePositive EventTone = "positive"
	EventToneNegative EventTone = "negative"
)

// EventTarget identifies what an event applies to
type EventTarget struct {
	Kind       EventTargetKind `json:"kind"`
	AssetID    string          `json:"asset_id,omitempty"`
	InstanceID string          `json:"instance_id,omitempty"`
	NicheID    string          `json:"niche_id,omitempty"`
}

// Event is a timed percentage modifier
type Event struct {
	ID                 string            `json:"id"`
	TemplateID         string            `json:"template_id"`
	Label              string            `json:"label"`
	Tone               EventTone         `json:"tone"`
	Target             EventTarget       `json:"target"`
	Stat               EventStat         `json:"stat"`
	ModifierType       EventModifierType `json:"modifier_type"`
	CurrentPercent     float64           `json:"current_percent"`
	DailyPercentChange float64           `json:"daily_percent_change"`
	TotalDays          int               `json:"total_days"`
	RemainingDays      int               `json:"remaining_days"`
	CreatedOnDay       int               `json:"created_on_day"`
	LastProcessedDay   int               `json:"last_processed_day"`
}

// EventTemplate is the authored blueprint events are rolled from
type EventTemplate struct {
	ID          string
	Label       string
	Tone        EventTone
	TargetKind  EventTargetKind
	PercentMin  float64
	PercentMax  float64
	DaysMin     int
	DaysMax     int
	DailyChange *float64
	Chance      float64
}

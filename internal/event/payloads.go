package event

import (
	"encoding/json"
	"fmt"
)

// Engine event types
const (
	AssetLaunched         Type = "asset.launched"
	QualityActionComplete Type = "quality.action_completed"
	QualityLevelUp        Type = "quality.level_up"
	SkillLevelUp          Type = "skill.level_up"
	IncomePaid            Type = "income.paid"
	TimedEventStarted     Type = "timed_event.started"
	TimedEventEnded       Type = "timed_event.ended"
	UpgradePurchased      Type = "upgrade.purchased"
	CourseCompleted       Type = "education.course_completed"
	DayEnded              Type = "day.ended"
)

// AssetLaunchedPayloadV1 is the typed payload for asset launch events
type AssetLaunchedPayloadV1 struct {
	InstanceID string  `json:"instance_id"`
	AssetID    string  `json:"asset_id"`
	NicheID    string  `json:"niche_id,omitempty"`
	SetupDays  int     `json:"setup_days"`
	Cost       float64 `json:"cost"`
	Day        int     `json:"day"`
}

// QualityActionPayloadV1 is the typed payload for completed quality actions
type QualityActionPayloadV1 struct {
	InstanceID string  `json:"instance_id"`
	AssetID    string  `json:"asset_id"`
	ActionID   string  `json:"action_id"`
	Progress   float64 `json:"progress"`
	UsesToday  int     `json:"uses_today"`
	Day        int     `json:"day"`
}

// QualityLevelUpPayloadV1 is the typed payload for quality level changes
type QualityLevelUpPayloadV1 struct {
	InstanceID string `json:"instance_id"`
	AssetID    string `json:"asset_id"`
	OldLevel   int    `json:"old_level"`
	NewLevel   int    `json:"new_level"`
	LevelName  string `json:"level_name,omitempty"`
}

// SkillLevelUpPayloadV1 is the typed payload for skill level changes
type SkillLevelUpPayloadV1 struct {
	Skill    string `json:"skill"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// IncomePaidPayloadV1 is the typed payload for one instance payout
type IncomePaidPayloadV1 struct {
	InstanceID string `json:"instance_id"`
	AssetID    string `json:"asset_id"`
	Amount     int    `json:"amount"`
	Entries    int    `json:"entries"`
	Day        int    `json:"day"`
}

// TimedEventPayloadV1 is the typed payload for timed event lifecycle changes
type TimedEventPayloadV1 struct {
	EventID    string  `json:"event_id"`
	TemplateID string  `json:"template_id"`
	Label      string  `json:"label"`
	TargetKind string  `json:"target_kind"`
	TargetID   string  `json:"target_id"`
	Percent    float64 `json:"percent"`
	Positive   bool    `json:"positive"`
}

// UpgradePurchasedPayloadV1 is the typed payload for upgrade purchases
type UpgradePurchasedPayloadV1 struct {
	UpgradeID string  `json:"upgrade_id"`
	Count     int     `json:"count"`
	Cost      float64 `json:"cost"`
	Day       int     `json:"day"`
}

// CourseCompletedPayloadV1 is the typed payload for completed courses
type CourseCompletedPayloadV1 struct {
	CourseID string `json:"course_id"`
	Day      int    `json:"day"`
}

// DayEndedPayloadV1 is the typed payload for day rollover events
type DayEndedPayloadV1 struct {
	Day       int     `json:"day"`
	Earned    float64 `json:"earned"`
	Spent     float64 `json:"spent"`
	Payouts   int     `json:"payouts"`
	Expired   int     `json:"expired"`
	Spawned   int     `json:"spawned"`
	Activated int     `json:"activated"`
}

// DecodePayload returns an event payload as T. In-process publishers pass the
// struct itself; anything else (maps from a JSON source) is converted by a
// JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("encode %T payload: %w", input, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode payload as %T: %w", result, err)
	}
	return result, nil
}

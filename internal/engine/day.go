package engine

import (
	"context"
	"fmt"

	"github.com/osse101/incomeengine/internal/activity"
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/event"
	"github.com/osse101/incomeengine/internal/logger"
	"github.com/osse101/incomeengine/internal/state"
)

// PayoutLine is one instance's payout in a day report
type PayoutLine struct {
	InstanceID string                 `json:"instance_id"`
	AssetID    string                 `json:"asset_id"`
	Name       string                 `json:"name"`
	Level      int                    `json:"level"`
	Breakdown  domain.IncomeBreakdown `json:"breakdown"`
}

// DayReport summarizes one closed day
type DayReport struct {
	Day       int                `json:"day"`
	Earned    float64            `json:"earned"`
	Spent     float64            `json:"spent"`
	Payouts   []PayoutLine       `json:"payouts"`
	Ended     []*domain.Event    `json:"ended_events,omitempty"`
	Spawned   []*domain.Event    `json:"spawned_events,omitempty"`
	Activated []string           `json:"activated,omitempty"`
	Metrics   state.DailyMetrics `json:"metrics"`
}

// EndDay closes the current day: pays every active instance, decays and
// expires events, drifts niche popularity, spawns niche events for tomorrow,
// advances setup, then rolls the state over to the next day.
func (s *service) EndDay(ctx context.Context) DayReport {
	log := logger.FromContext(ctx)
	day := s.st.Day
	report := DayReport{Day: day}

	earned := make(map[string]bool)
	for _, inst := range s.st.Instances() {
		res, ok := s.payouts.Compute(ctx, s.st, inst)
		if !ok {
			continue
		}
		earned[inst.ID] = true
		total := res.Breakdown.Total
		inst.TotalIncome += total

		name := inst.AssetID
		if def, ok := s.catalog.Asset(inst.AssetID); ok {
			name = def.DisplayName()
		}
		s.funds.Earn(s.st, float64(total), fmt.Sprintf(LabelPayoutFormat, name))
		s.log.Record(fmt.Sprintf(MsgPayout, name, activity.FormatMoney(float64(total))), domain.LogCategoryPassive)

		report.Payouts = append(report.Payouts, PayoutLine{
			InstanceID: inst.ID,
			AssetID:    inst.AssetID,
			Name:       name,
			Level:      inst.Quality.Level,
			Breakdown:  res.Breakdown,
		})
		s.publish(ctx, event.IncomePaid, event.IncomePaidPayloadV1{
			InstanceID: inst.ID,
			AssetID:    inst.AssetID,
			Amount:     total,
			Entries:    len(res.Breakdown.Entries),
			Day:        day,
		})
	}

	report.Ended = s.events.ProcessDay(ctx, s.st, day)
	s.oracle.Drift(s.st)
	report.Spawned = s.events.SpawnNicheEvents(s.st, s.opts.SpawnChance)

	for _, inst := range s.st.Instances() {
		switch inst.Status {
		case domain.AssetStatusActive:
			if earned[inst.ID] {
				inst.DaysActive++
			}
		case domain.AssetStatusSetup:
			if inst.SetupDaysRemaining > 0 {
				inst.SetupDaysRemaining--
			}
			if inst.SetupDaysRemaining == 0 {
				inst.Status = domain.AssetStatusActive
				report.Activated = append(report.Activated, inst.ID)
				if def, ok := s.catalog.Asset(inst.AssetID); ok {
					s.log.Record(fmt.Sprintf(MsgActivated, def.DisplayName()), domain.LogCategoryInfo)
				}
			}
		}
	}

	report.Earned = s.st.Daily.Earned
	report.Spent = s.st.Daily.Spent
	report.Metrics = s.st.Daily
	report.Metrics.Contributions = append([]state.Contribution(nil), s.st.Daily.Contributions...)
	s.log.Record(fmt.Sprintf(MsgDayEnded, day, activity.FormatMoney(report.Earned), activity.FormatMoney(report.Spent)), domain.LogCategoryInfo)

	s.st.BeginDay()
	for _, inst := range s.st.Instances() {
		inst.ResetDailyUsage(s.st.Day)
	}
	s.log.SetDay(s.st.Day)

	log.Info("Day ended",
		"day", day,
		"payouts", len(report.Payouts),
		"earned", report.Earned,
		"endedEvents", len(report.Ended),
		"spawnedEvents", len(report.Spawned))
	s.publish(ctx, event.DayEnded, event.DayEndedPayloadV1{
		Day:       day,
		Earned:    report.Earned,
		Spent:     report.Spent,
		Payouts:   len(report.Payouts),
		Expired:   len(report.Ended),
		Spawned:   len(report.Spawned),
		Activated: len(report.Activated),
	})
	return report
}

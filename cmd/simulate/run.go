package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/incomeengine/internal/activity"
	"github.com/osse101/incomeengine/internal/catalog"
	"github.com/osse101/incomeengine/internal/config"
	"github.com/osse101/incomeengine/internal/engine"
	"github.com/osse101/incomeengine/internal/event"
	"github.com/osse101/incomeengine/internal/logger"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/utils"
	"github.com/osse101/incomeengine/internal/worker"
)

type params struct {
	CatalogPath string
	Days        int
	Seed        int64
	Runs        int
	Parallel    int
	Money       float64
	Hours       float64
	SpawnChance float64
	Launch      []string
	Niche       string
	Work        bool
	JSON        bool
	Out         string
}

func (p params) validate() error {
	switch {
	case p.Days < 1:
		return fmt.Errorf("--days must be at least 1, got %d", p.Days)
	case p.Runs < 1:
		return fmt.Errorf("--runs must be at least 1, got %d", p.Runs)
	case p.Money < 0:
		return fmt.Errorf("--money must not be negative")
	case p.Hours < 0:
		return fmt.Errorf("--hours must not be negative")
	case p.SpawnChance < 0 || p.SpawnChance > 1:
		return fmt.Errorf("--spawn-chance must be between 0 and 1")
	}
	return nil
}

// Outcome is the result of one seeded run
type Outcome struct {
	Seed          int64        `json:"seed"`
	Days          []DayOutcome `json:"days"`
	FinalDay      int          `json:"final_day"`
	FinalMoney    float64      `json:"final_money"`
	TotalEarned   float64      `json:"total_earned"`
	LevelUps      int64        `json:"level_ups"`
	EventsStarted int64        `json:"events_started"`
	Actions       int          `json:"actions"`
}

// DayOutcome is one closed day of a run
type DayOutcome struct {
	Day     int                 `json:"day"`
	Earned  float64             `json:"earned"`
	Spent   float64             `json:"spent"`
	Money   float64             `json:"money"`
	Actions int                 `json:"actions"`
	Payouts []engine.PayoutLine `json:"payouts"`
}

// runAll executes p.Runs seeded runs on a worker pool and returns the
// outcomes in seed order
func runAll(ctx context.Context, p params) ([]Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cat, err := catalog.Load(p.CatalogPath)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, p.Runs)
	errs := make([]error, p.Runs)

	pool := worker.NewPool(ctx, p.Parallel, p.Runs)
	pool.Start()
	for i := 0; i < p.Runs; i++ {
		seed := p.Seed + int64(i)
		pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
			outcomes[i], errs[i] = simulate(ctx, cat, p, seed)
			return errs[i]
		}))
	}
	pool.Stop()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// simulate plays one run on its own engine instance
func simulate(ctx context.Context, cat *catalog.Catalog, p params, seed int64) (Outcome, error) {
	log := logger.FromContext(ctx).With("seed", seed)
	out := Outcome{Seed: seed}

	var levelUps, started int64
	bus := event.NewMemoryBus()
	bus.Subscribe(event.QualityLevelUp, func(context.Context, event.Event) error {
		levelUps++
		return nil
	})
	bus.Subscribe(event.TimedEventStarted, func(context.Context, event.Event) error {
		started++
		return nil
	})

	svc := engine.NewService(
		cat,
		state.New(p.Money, p.Hours),
		activity.NewLog(config.DefaultLogHistory),
		bus,
		engine.Options{
			SpawnChance: p.SpawnChance,
			Random:      utils.SeededRandom(seed),
			NewID:       utils.SeededIDs(seed),
		},
	)

	for _, assetID := range p.Launch {
		if _, err := svc.Launch(ctx, assetID, p.Niche); err != nil {
			return out, fmt.Errorf("seed %d: launch %s: %w", seed, assetID, err)
		}
	}

	for d := 0; d < p.Days; d++ {
		actions := 0
		if p.Work {
			actions = work(ctx, svc)
		}
		report := svc.EndDay(ctx)
		view := svc.Snapshot()
		out.Days = append(out.Days, DayOutcome{
			Day:     report.Day,
			Earned:  report.Earned,
			Spent:   report.Spent,
			Money:   view.Money,
			Actions: actions,
			Payouts: report.Payouts,
		})
		out.TotalEarned += report.Earned
		out.Actions += actions
	}

	view := svc.Snapshot()
	out.FinalDay = view.Day
	out.FinalMoney = view.Money
	out.LevelUps = levelUps
	out.EventsStarted = started
	log.Debug("Run finished", "final_day", out.FinalDay, "money", out.FinalMoney)
	return out, nil
}

// work performs every unlocked action of every active instance up to its
// daily limit, stopping an action at its first failure
func work(ctx context.Context, svc engine.Service) int {
	performed := 0
	for _, inst := range svc.Snapshot().Instances {
		if !inst.IsActive() {
			continue
		}
		statuses, err := svc.Actions(inst.ID)
		if err != nil {
			continue
		}
		for _, st := range statuses {
			if !st.Available.Unlocked {
				continue
			}
			for n := st.UsesToday; n < max(st.DailyLimit, 1); n++ {
				if res := svc.PerformQualityAction(ctx, inst.ID, st.ID); !res.OK {
					break
				}
				performed++
			}
		}
	}
	return performed
}

func saveOutcomes(path string, outcomes []Outcome) error {
	return utils.SaveJSON(path, outcomes)
}

package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/osse101/incomeengine/internal/activity"
	"github.com/osse101/incomeengine/internal/catalog"
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/education"
	"github.com/osse101/incomeengine/internal/event"
	"github.com/osse101/incomeengine/internal/funds"
	"github.com/osse101/incomeengine/internal/lifecycle"
	"github.com/osse101/incomeengine/internal/logger"
	"github.com/osse101/incomeengine/internal/niche"
	"github.com/osse101/incomeengine/internal/payout"
	"github.com/osse101/incomeengine/internal/quality"
	"github.com/osse101/incomeengine/internal/skills"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/upgrade"
	"github.com/osse101/incomeengine/internal/utils"
)

// Service is the engine facade. It is not safe for concurrent use; callers
// serialize access.
type Service interface {
	// Assets
	Launch(ctx context.Context, assetID, nicheID string) (*domain.AssetInstance, error)
	AssignNiche(ctx context.Context, instanceID, nicheID string) error
	PerformQualityAction(ctx context.Context, instanceID, actionID string) quality.Result
	Actions(instanceID string) ([]ActionStatus, error)
	Income(instanceID string) (*domain.IncomeBreakdown, error)
	Multipliers(instanceID string) (map[domain.EffectKey]upgrade.Result, error)

	// Day cycle
	EndDay(ctx context.Context) DayReport

	// Upgrades and education
	PurchaseUpgrade(ctx context.Context, upgradeID string) error
	CompleteCourse(ctx context.Context, courseID string) error
	Slots() upgrade.SlotLedger

	// Read models
	Snapshot() state.View
	Events() []*domain.Event
	Niches() []niche.Popularity
	Log(sinceSeq int) []activity.Entry
	Catalog() *catalog.Catalog
}

// Options tunes the engine
type Options struct {
	// SpawnChance is the per-niche daily chance of a new niche event
	SpawnChance float64
	// Random replaces every roll source; nil uses the global generator
	Random func() float64
	// NewID generates instance and event ids; nil uses random UUIDs
	NewID func() string
}

// ActionStatus is the availability of one quality action of an instance
type ActionStatus struct {
	ID         string               `json:"id"`
	Label      string               `json:"label"`
	TimeHours  float64              `json:"time_hours"`
	Cost       float64              `json:"cost"`
	DailyLimit int                  `json:"daily_limit"`
	UsesToday  int                  `json:"uses_today"`
	Available  quality.Availability `json:"availability"`
}

type service struct {
	catalog  *catalog.Catalog
	st       *state.State
	log      *activity.Log
	bus      event.Bus
	funds    *funds.Ledger
	resolver *upgrade.Resolver
	executor *quality.Executor
	events   *lifecycle.Manager
	oracle   *niche.Oracle
	edu      *education.Provider
	payouts  *payout.Pipeline
	notifier *busNotifier
	opts     Options
	newID    func() string
}

// NewService wires the engine components over one owned state record
func NewService(
	cat *catalog.Catalog,
	st *state.State,
	log *activity.Log,
	bus event.Bus,
	opts Options,
) Service {
	if opts.Random == nil {
		opts.Random = utils.RandomFloat
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	notifier := &busNotifier{bus: bus}
	ledger := funds.NewLedger()
	resolver := upgrade.NewResolver(cat)
	events := lifecycle.NewManager(lifecycle.NewMemoryStore(), cat, log, notifier)
	oracle := niche.NewOracle(cat)
	edu := education.NewProvider(cat)
	executor := quality.NewExecutor(cat, resolver, ledger, skills.NewAwarder(), log, events, notifier)
	pipeline := payout.NewPipeline(cat, executor.Ledger(), oracle, events, edu, resolver)

	events.SetRandom(opts.Random)
	events.SetIDSource(opts.NewID)
	oracle.SetRandom(opts.Random)
	executor.SetRandom(opts.Random)
	pipeline.SetRandom(opts.Random)
	log.SetDay(st.Day)

	return &service{
		catalog:  cat,
		st:       st,
		log:      log,
		bus:      bus,
		funds:    ledger,
		resolver: resolver,
		executor: executor,
		events:   events,
		oracle:   oracle,
		edu:      edu,
		payouts:  pipeline,
		notifier: notifier,
		opts:     opts,
		newID:    opts.NewID,
	}
}

// Launch starts a new instance of an asset type. Setup cost is paid up front
// and setup days are scaled by the setup-time multiplier.
func (s *service) Launch(ctx context.Context, assetID, nicheID string) (*domain.AssetInstance, error) {
	def, ok := s.catalog.Asset(assetID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, assetID)
	}
	if nicheID != "" {
		if _, ok := s.catalog.Niche(nicheID); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrNicheNotFound, nicheID)
		}
	}
	cost := domain.NonNegative(def.SetupCost)
	if cost > s.st.Money {
		return nil, fmt.Errorf("%w: launching %s costs %s", domain.ErrInsufficientFunds, def.DisplayName(), activity.FormatMoney(cost))
	}

	s.funds.Spend(s.st, funds.Spend{
		Money:         cost,
		Label:         fmt.Sprintf(LabelLaunchFormat, def.DisplayName()),
		MoneyCategory: domain.ContributionSetupCost,
	})

	mult := s.resolver.MultiplierFor(s.st, def.Subject(), domain.EffectSetupTime, domain.ActionTypeSetup)
	days := 0
	if def.SetupDays > 0 {
		days = int(math.Ceil(float64(def.SetupDays) * mult.Multiplier))
		if days < 1 {
			days = 1
		}
	}

	inst := &domain.AssetInstance{
		ID:                 s.newID(),
		AssetID:            def.ID,
		Status:             domain.AssetStatusSetup,
		NicheID:            nicheID,
		SetupDaysRemaining: days,
		LaunchedOnDay:      s.st.Day,
	}
	if days == 0 {
		inst.Status = domain.AssetStatusActive
	}
	quality.EnsureQuality(inst)
	inst.ResetDailyUsage(s.st.Day)
	s.st.AddInstance(inst)

	if days == 0 {
		s.log.Record(fmt.Sprintf(MsgLaunchedReady, def.DisplayName()), domain.LogCategoryInfo)
	} else {
		s.log.Record(fmt.Sprintf(MsgLaunched, def.DisplayName(), days), domain.LogCategoryInfo)
	}
	logger.FromContext(ctx).Info("Asset launched", "assetID", def.ID, "instanceID", inst.ID, "setupDays", days)
	s.publish(ctx, event.AssetLaunched, event.AssetLaunchedPayloadV1{
		InstanceID: inst.ID,
		AssetID:    def.ID,
		NicheID:    nicheID,
		SetupDays:  days,
		Cost:       cost,
		Day:        s.st.Day,
	})
	return inst, nil
}

// AssignNiche points an instance at a niche
func (s *service) AssignNiche(ctx context.Context, instanceID, nicheID string) error {
	inst, def, err := s.instance(instanceID)
	if err != nil {
		return err
	}
	if err := s.oracle.Assign(inst, nicheID); err != nil {
		return err
	}
	n, _ := s.catalog.Niche(nicheID)
	s.log.Record(fmt.Sprintf(MsgNicheAssigned, def.DisplayName(), n.Name), domain.LogCategoryNiche)
	logger.FromContext(ctx).Debug("Niche assigned", "instanceID", instanceID, "nicheID", nicheID)
	return nil
}

// PerformQualityAction runs one quality action. Failures come back as values.
func (s *service) PerformQualityAction(ctx context.Context, instanceID, actionID string) quality.Result {
	return s.executor.Perform(ctx, s.st, instanceID, actionID)
}

// Actions lists every quality action of an instance with its availability
func (s *service) Actions(instanceID string) ([]ActionStatus, error) {
	inst, def, err := s.instance(instanceID)
	if err != nil {
		return nil, err
	}
	out := make([]ActionStatus, 0, len(def.Actions))
	for i := range def.Actions {
		action := &def.Actions[i]
		avail, _ := s.executor.Availability(s.st, inst, action.ID)
		out = append(out, ActionStatus{
			ID:         action.ID,
			Label:      action.Label,
			TimeHours:  action.TimeHours,
			Cost:       action.Cost,
			DailyLimit: action.DailyLimit,
			UsesToday:  inst.UsesToday(action.ID, s.st.Day),
			Available:  avail,
		})
	}
	return out, nil
}

// Income returns the last stored payout breakdown of an instance
func (s *service) Income(instanceID string) (*domain.IncomeBreakdown, error) {
	inst, _, err := s.instance(instanceID)
	if err != nil {
		return nil, err
	}
	if inst.LastIncomeBreakdown == nil {
		return &domain.IncomeBreakdown{Day: s.st.Day}, nil
	}
	b := *inst.LastIncomeBreakdown
	b.Entries = append([]domain.IncomeEntry(nil), inst.LastIncomeBreakdown.Entries...)
	return &b, nil
}

// Multipliers resolves every effect multiplier for an instance's asset type
func (s *service) Multipliers(instanceID string) (map[domain.EffectKey]upgrade.Result, error) {
	_, def, err := s.instance(instanceID)
	if err != nil {
		return nil, err
	}
	subject := def.Subject()
	return map[domain.EffectKey]upgrade.Result{
		domain.EffectPayout:          s.resolver.MultiplierFor(s.st, subject, domain.EffectPayout, domain.ActionTypePayout),
		domain.EffectSetupTime:       s.resolver.MultiplierFor(s.st, subject, domain.EffectSetupTime, domain.ActionTypeSetup),
		domain.EffectMaintenanceTime: s.resolver.MultiplierFor(s.st, subject, domain.EffectMaintenanceTime, ""),
		domain.EffectQualityProgress: s.resolver.MultiplierFor(s.st, subject, domain.EffectQualityProgress, domain.ActionTypeQuality),
	}, nil
}

// PurchaseUpgrade buys one unit of an upgrade after prerequisite, conflict,
// capacity and money checks
func (s *service) PurchaseUpgrade(ctx context.Context, upgradeID string) error {
	def, ok := s.catalog.Upgrade(upgradeID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUpgradeNotFound, upgradeID)
	}
	if err := s.resolver.CheckPurchase(s.st, def); err != nil {
		return err
	}
	cost := domain.NonNegative(def.Cost)
	if cost > s.st.Money {
		return fmt.Errorf("%w: %s costs %s", domain.ErrInsufficientFunds, def.Name, activity.FormatMoney(cost))
	}

	s.funds.Spend(s.st, funds.Spend{
		Money:         cost,
		Label:         fmt.Sprintf(LabelUpgradeFormat, def.Name),
		MoneyCategory: domain.ContributionUpgradeCost,
	})
	s.st.GrantUpgrade(def)

	s.log.Record(fmt.Sprintf(MsgUpgradePurchased, def.Name, activity.FormatMoney(cost)), domain.LogCategoryFunds)
	logger.FromContext(ctx).Info("Upgrade purchased", "upgradeID", def.ID, "cost", cost)
	s.publish(ctx, event.UpgradePurchased, event.UpgradePurchasedPayloadV1{
		UpgradeID: def.ID,
		Count:     s.st.OwnedUnits(def),
		Cost:      cost,
		Day:       s.st.Day,
	})
	return nil
}

// CompleteCourse marks an education course as finished
func (s *service) CompleteCourse(ctx context.Context, courseID string) error {
	if err := s.edu.Complete(s.st, courseID); err != nil {
		return err
	}
	name := courseID
	for _, c := range s.catalog.Courses() {
		if c.ID == courseID {
			name = c.Name
		}
	}
	s.log.Record(fmt.Sprintf(MsgCourseCompleted, name), domain.LogCategoryInfo)
	s.publish(ctx, event.CourseCompleted, event.CourseCompletedPayloadV1{CourseID: courseID, Day: s.st.Day})
	return nil
}

// Slots returns the current slot capacity ledger
func (s *service) Slots() upgrade.SlotLedger {
	return s.resolver.BuildLedger(s.st)
}

// Snapshot returns a deep copy of the state
func (s *service) Snapshot() state.View {
	return s.st.Snapshot()
}

// Events returns every stored timed event
func (s *service) Events() []*domain.Event {
	return s.events.Events()
}

// Niches returns current niche popularity
func (s *service) Niches() []niche.Popularity {
	return s.oracle.All(s.st)
}

// Log returns player-facing log entries after sinceSeq
func (s *service) Log(sinceSeq int) []activity.Entry {
	return s.log.Since(sinceSeq)
}

// Catalog returns the authored catalog
func (s *service) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *service) instance(instanceID string) (*domain.AssetInstance, *domain.AssetDefinition, error) {
	inst, ok := s.st.FindInstance(instanceID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	}
	def, ok := s.catalog.Asset(inst.AssetID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, inst.AssetID)
	}
	return inst, def, nil
}

func (s *service) publish(ctx context.Context, eventType event.Type, payload interface{}) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.New(eventType, payload)); err != nil {
		logger.FromContext(ctx).Warn("Event handler failed", "type", eventType, "error", err)
	}
}

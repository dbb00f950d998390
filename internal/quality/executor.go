package quality

import (
	"context"
	"fmt"

	"github.com/osse101/incomeengine/internal/activity"
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/funds"
	"github.com/osse101/incomeengine/internal/logger"
	"github.com/osse101/incomeengine/internal/skills"
	"github.com/osse101/incomeengine/internal/state"
	"github.com/osse101/incomeengine/internal/upgrade"
	"github.com/osse101/incomeengine/internal/utils"
)

// Catalog is the authored data the executor reads
type Catalog interface {
	LevelSource
	UpgradeNames
	Asset(id string) (*domain.AssetDefinition, bool)
}

// Multipliers resolves upgrade effect multipliers
type Multipliers interface {
	MultiplierFor(owned upgrade.Ownership, subject domain.Subject, key domain.EffectKey, actionType string) upgrade.Result
}

// Funds debits money and hours
type Funds interface {
	Balances(st *state.State) (money, hours float64)
	Spend(st *state.State, s funds.Spend)
}

// SkillAwarder grants skill progress for spent time and money
type SkillAwarder interface {
	Award(st *state.State, award skills.Award) []skills.LevelUp
}

// LogSink records player-facing messages
type LogSink interface {
	Record(message, category string)
}

// EventSpawner creates instance-scoped events from triggers
type EventSpawner interface {
	SpawnForInstance(st *state.State, templateID string, def *domain.AssetDefinition, inst *domain.AssetInstance) (*domain.Event, error)
}

// Completion describes a successful action run
type Completion struct {
	Asset      *domain.AssetDefinition
	Instance   *domain.AssetInstance
	Action     *domain.QualityActionDefinition
	Day        int
	Progress   float64
	Multiplier float64
}

// Notifier is told about completed actions and level-ups
type Notifier interface {
	ActionCompleted(c Completion)
	LevelUp(up LevelUp)
	SkillLevelUp(up skills.LevelUp)
}

// Result is the outcome of one Perform call. Failures are values, never errors.
type Result struct {
	OK         bool                 `json:"ok"`
	Reason     domain.FailureReason `json:"reason,omitempty"`
	Message    string               `json:"message,omitempty"`
	Progress   float64              `json:"progress,omitempty"`
	Multiplier float64              `json:"multiplier,omitempty"`
	UsesToday  int                  `json:"uses_today,omitempty"`
	Level      int                  `json:"level"`
	LeveledUp  bool                 `json:"leveled_up,omitempty"`
	Events     []*domain.Event      `json:"events,omitempty"`
}

// Executor is the quality action write path
type Executor struct {
	catalog     Catalog
	ledger      *Ledger
	gate        *Gate
	multipliers Multipliers
	funds       Funds
	skills      SkillAwarder
	log         LogSink
	spawner     EventSpawner
	notifier    Notifier
	rnd         func() float64 // For event trigger rolls
}

// NewExecutor creates a quality action executor. spawner and notifier may be nil.
func NewExecutor(
	catalog Catalog,
	multipliers Multipliers,
	funds Funds,
	skills SkillAwarder,
	log LogSink,
	spawner EventSpawner,
	notifier Notifier,
) *Executor {
	return &Executor{
		catalog:     catalog,
		ledger:      NewLedger(catalog),
		gate:        NewGate(catalog),
		multipliers: multipliers,
		funds:       funds,
		skills:      skills,
		log:         log,
		spawner:     spawner,
		notifier:    notifier,
		rnd:         utils.RandomFloat,
	}
}

// SetRandom replaces the trigger roll source
func (e *Executor) SetRandom(rnd func() float64) {
	e.rnd = rnd
}

// Ledger returns the quality ledger used by the executor
func (e *Executor) Ledger() *Ledger {
	return e.ledger
}

// Availability evaluates one action of an instance without running it
func (e *Executor) Availability(st *state.State, inst *domain.AssetInstance, actionID string) (Availability, bool) {
	def, ok := e.catalog.Asset(inst.AssetID)
	if !ok {
		return Availability{}, false
	}
	action, ok := def.Action(actionID)
	if !ok {
		return Availability{}, false
	}
	return e.gate.Evaluate(st, e.actionContext(st, def, inst, action)), true
}

// Perform runs a quality action on an instance. Guards run in order: missing
// instance, asset type or action is a silent no-op; then the instance must be
// active, the action unlocked, uses left today, and enough time and money.
// A failed guard mutates nothing.
func (e *Executor) Perform(ctx context.Context, st *state.State, instanceID, actionID string) Result {
	log := logger.FromContext(ctx)

	inst, ok := st.FindInstance(instanceID)
	if !ok {
		log.Debug("Quality action ignored: unknown instance", "instanceID", instanceID, "actionID", actionID)
		return Result{Reason: domain.ReasonUnknownInstance}
	}
	def, ok := e.catalog.Asset(inst.AssetID)
	if !ok {
		log.Debug("Quality action ignored: unknown asset", "assetID", inst.AssetID, "instanceID", instanceID)
		return Result{Reason: domain.ReasonUnknownAsset, Level: inst.Quality.Level}
	}

	// (a) instance must be active
	if !inst.IsActive() {
		return e.fail(inst, domain.ReasonNotActive, fmt.Sprintf(MsgNotActive, def.DisplayName()))
	}

	// (b) action must exist
	action, ok := def.Action(actionID)
	if !ok {
		log.Debug("Quality action ignored: unknown action", "assetID", def.ID, "actionID", actionID)
		return Result{Reason: domain.ReasonUnknownAction, Level: inst.Quality.Level}
	}
	actx := e.actionContext(st, def, inst, action)

	// (c) availability
	if avail := e.gate.Evaluate(st, actx); !avail.Unlocked {
		return e.fail(inst, domain.ReasonLocked, avail.Reason)
	}

	// (d) daily usage
	uses := inst.UsesToday(action.ID, st.Day)
	if action.DailyLimit > 0 && uses >= action.DailyLimit {
		return e.fail(inst, domain.ReasonExhausted, fmt.Sprintf(MsgExhausted, action.Label, action.DailyLimit, def.DisplayName()))
	}

	// (e) time and money
	money, hours := e.funds.Balances(st)
	if action.TimeHours > hours {
		return e.fail(inst, domain.ReasonInsufficientTime, fmt.Sprintf(MsgInsufficientTime,
			action.Label, activity.FormatHours(action.TimeHours), activity.FormatHours(hours)))
	}
	if action.Cost > money {
		return e.fail(inst, domain.ReasonInsufficientMoney, fmt.Sprintf(MsgInsufficientMoney,
			action.Label, activity.FormatMoney(action.Cost), activity.FormatMoney(money)))
	}

	return e.complete(ctx, st, actx, uses)
}

func (e *Executor) complete(ctx context.Context, st *state.State, actx domain.ActionContext, uses int) Result {
	def, inst, action := actx.Asset, actx.Instance, actx.Action
	EnsureQuality(inst)

	e.funds.Spend(st, funds.Spend{
		Money: action.Cost,
		Hours: action.TimeHours,
		Label: fmt.Sprintf("%s: %s", def.DisplayName(), action.Label),
	})

	res := Result{OK: true}

	mult := e.multipliers.MultiplierFor(st, def.Subject(), domain.EffectQualityProgress, domain.ActionTypeQuality)
	res.Multiplier = mult.Multiplier
	if action.ProgressKey != "" && action.Progress != nil {
		res.Progress = domain.NonNegative(action.Progress.Amount(actx)) * mult.Multiplier
		inst.Quality.Progress[action.ProgressKey] += domain.NonNegative(res.Progress)
	}

	skillsUsed := action.Skills
	if len(skillsUsed) == 0 {
		skillsUsed = def.Skills
	}
	for _, up := range e.skills.Award(st, skills.Award{
		Skills:         skillsUsed,
		TimeSpentHours: action.TimeHours,
		MoneySpent:     action.Cost,
		Label:          action.Label,
	}) {
		logger.FromContext(ctx).Info("Skill level up", "skill", up.Skill, "level", up.NewLevel)
		if e.notifier != nil {
			e.notifier.SkillLevelUp(up)
		}
	}

	if inst.UsageDay != st.Day {
		inst.ResetDailyUsage(st.Day)
	}
	uses++
	if action.DailyLimit > 0 && uses > action.DailyLimit {
		uses = action.DailyLimit
	}
	inst.DailyUsage[action.ID] = uses
	res.UsesToday = uses

	res.Events = e.fireTriggers(ctx, st, actx)

	if action.OnComplete != nil {
		action.OnComplete.Complete(actx, &completionEffects{inst: inst, log: e.log})
	}

	msg := ""
	if action.LogMessage != nil {
		msg = action.LogMessage.Resolve(actx)
	}
	if msg == "" {
		msg = fmt.Sprintf(MsgCompleted, action.Label, def.DisplayName())
	}
	e.log.Record(msg, domain.LogCategoryQuality)
	res.Message = msg

	if e.notifier != nil {
		e.notifier.ActionCompleted(Completion{
			Asset:      def,
			Instance:   inst,
			Action:     action,
			Day:        st.Day,
			Progress:   res.Progress,
			Multiplier: res.Multiplier,
		})
	}

	if up, ok := e.ledger.Advance(def, inst); ok {
		res.LeveledUp = true
		e.log.Record(fmt.Sprintf(MsgLevelUp, def.DisplayName(), up.To, up.Level.Name), domain.LogCategoryQuality)
		if e.notifier != nil {
			e.notifier.LevelUp(up)
		}
	}
	res.Level = inst.Quality.Level
	return res
}

func (e *Executor) fireTriggers(ctx context.Context, st *state.State, actx domain.ActionContext) []*domain.Event {
	if e.spawner == nil {
		return nil
	}
	var spawned []*domain.Event
	for _, trig := range actx.Action.EventTriggers {
		if trig.Chance <= 0 || e.rnd() >= trig.Chance {
			continue
		}
		evt, err := e.spawner.SpawnForInstance(st, trig.TemplateID, actx.Asset, actx.Instance)
		if err != nil {
			logger.FromContext(ctx).Warn("Event trigger failed", "template", trig.TemplateID, "error", err)
			continue
		}
		spawned = append(spawned, evt)
	}
	return spawned
}

func (e *Executor) fail(inst *domain.AssetInstance, reason domain.FailureReason, msg string) Result {
	e.log.Record(msg, domain.LogCategoryWarning)
	return Result{Reason: reason, Message: msg, Level: inst.Quality.Level}
}

func (e *Executor) actionContext(st *state.State, def *domain.AssetDefinition, inst *domain.AssetInstance, action *domain.QualityActionDefinition) domain.ActionContext {
	return domain.ActionContext{
		Asset:    def,
		Instance: inst,
		Action:   action,
		Day:      st.Day,
	}
}

// completionEffects lets completion hooks touch the instance being completed
type completionEffects struct {
	inst *domain.AssetInstance
	log  LogSink
}

func (c *completionEffects) AddProgress(track string, amount float64) {
	if track == "" {
		return
	}
	c.inst.Quality.Progress[track] += domain.NonNegative(amount)
}

func (c *completionEffects) Record(message, category string) {
	c.log.Record(message, category)
}

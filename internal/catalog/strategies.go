package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/incomeengine/internal/domain"
)

// minLevelLock unlocks once the instance reaches a quality level
type minLevelLock struct {
	level int
}

func (l minLevelLock) Allows(ctx domain.ActionContext) bool {
	return ctx.Instance != nil && ctx.Instance.Quality.Level >= l.level
}

// minDaysActiveLock unlocks after the instance has earned for some days
type minDaysActiveLock struct {
	days int
}

func (l minDaysActiveLock) Allows(ctx domain.ActionContext) bool {
	return ctx.Instance != nil && ctx.Instance.DaysActive >= l.days
}

// requiresNicheLock unlocks once the instance has a niche assigned
type requiresNicheLock struct{}

func (requiresNicheLock) Allows(ctx domain.ActionContext) bool {
	return ctx.Instance != nil && ctx.Instance.NicheID != ""
}

func buildLock(spec *StrategySpec) (domain.LockPredicate, error) {
	if spec == nil {
		return nil, nil
	}
	switch spec.Type {
	case LockMinLevel:
		return minLevelLock{level: spec.Level}, nil
	case LockMinDaysActive:
		return minDaysActiveLock{days: spec.Days}, nil
	case LockRequiresNiche:
		return requiresNicheLock{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown lock type %q", domain.ErrInvalidCatalog, spec.Type)
	}
}

// TemplateMessage substitutes context placeholders into authored copy
type TemplateMessage struct {
	Text string
}

// Resolve implements domain.MessageResolver
func (m TemplateMessage) Resolve(ctx domain.ActionContext) string {
	var asset, action, level string
	if ctx.Asset != nil {
		asset = ctx.Asset.DisplayName()
	}
	if ctx.Action != nil {
		action = ctx.Action.Label
	}
	if ctx.Instance != nil {
		level = strconv.Itoa(ctx.Instance.Quality.Level)
	}
	upgrade := ctx.MissingLabel
	if upgrade == "" {
		upgrade = ctx.MissingUpgrade
	}
	return strings.NewReplacer(
		PlaceholderAsset, asset,
		PlaceholderAction, action,
		PlaceholderUpgrade, upgrade,
		PlaceholderLevel, level,
	).Replace(m.Text)
}

func buildMessage(text string) domain.MessageResolver {
	if text == "" {
		return nil
	}
	return TemplateMessage{Text: text}
}

// constantProgress grants the same amount every run
type constantProgress struct {
	amount float64
}

func (p constantProgress) Amount(domain.ActionContext) float64 {
	return p.amount
}

// perLevelProgress grows with the instance's quality level
type perLevelProgress struct {
	base     float64
	perLevel float64
}

func (p perLevelProgress) Amount(ctx domain.ActionContext) float64 {
	level := 0
	if ctx.Instance != nil {
		level = ctx.Instance.Quality.Level
	}
	return p.base + p.perLevel*float64(level)
}

func buildProgress(spec *StrategySpec) (domain.ProgressAmount, error) {
	if spec == nil {
		return constantProgress{amount: 1}, nil
	}
	switch spec.Type {
	case ProgressConstant:
		return constantProgress{amount: domain.Finite(spec.Amount)}, nil
	case ProgressPerLevel:
		return perLevelProgress{base: domain.Finite(spec.Amount), perLevel: domain.Finite(spec.PerLevel)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown progress type %q", domain.ErrInvalidCatalog, spec.Type)
	}
}

// bonusProgressHook adds progress to a secondary track on completion
type bonusProgressHook struct {
	track  string
	amount float64
	label  string
}

func (h bonusProgressHook) Complete(ctx domain.ActionContext, effects domain.CompletionEffects) {
	effects.AddProgress(h.track, h.amount)
	if h.label != "" {
		effects.Record(TemplateMessage{Text: h.label}.Resolve(ctx), domain.LogCategoryQuality)
	}
}

func buildCompletion(spec *StrategySpec) (domain.CompletionHook, error) {
	if spec == nil {
		return nil, nil
	}
	switch spec.Type {
	case CompletionBonusProgress:
		if spec.Track == "" {
			return nil, fmt.Errorf("%w: %s requires a track", domain.ErrInvalidCatalog, spec.Type)
		}
		return bonusProgressHook{track: spec.Track, amount: domain.Finite(spec.Amount), label: spec.Label}, nil
	default:
		return nil, fmt.Errorf("%w: unknown completion type %q", domain.ErrInvalidCatalog, spec.Type)
	}
}

// levelBonusModifier adds a flat amount per quality level and returns the
// replacement total
type levelBonusModifier struct {
	perLevel float64
	label    string
}

func (m levelBonusModifier) ModifyIncome(in domain.IncomeModifierInput, rec domain.IncomeRecorder) domain.IncomeModifierResult {
	level := 0
	if in.Instance != nil {
		level = in.Instance.Quality.Level
	}
	bonus := m.perLevel * float64(level)
	if bonus != 0 {
		rec.Record(IncomeLevelBonus, m.label, bonus)
	}
	total := in.Base + bonus
	return domain.IncomeModifierResult{Total: &total}
}

// trackBonusModifier adds a percent of base per unit of a progress track,
// capped, and reports it as a structured breakdown
type trackBonusModifier struct {
	track   string
	percent float64
	cap     float64
	label   string
}

func (m trackBonusModifier) ModifyIncome(in domain.IncomeModifierInput, _ domain.IncomeRecorder) domain.IncomeModifierResult {
	units := 0.0
	if in.Instance != nil {
		units = domain.NonNegative(in.Instance.Quality.Progress[m.track])
	}
	pct := units * m.percent
	if m.cap > 0 && pct > m.cap {
		pct = m.cap
	}
	if pct == 0 {
		return domain.IncomeModifierResult{}
	}
	return domain.IncomeModifierResult{
		Entries: []domain.IncomeContribution{
			{ID: IncomeTrackBonus + ":" + m.track, Label: m.label, Amount: in.Base * pct},
		},
	}
}

func buildIncomeModifier(spec *StrategySpec) (domain.IncomeModifier, error) {
	if spec == nil {
		return nil, nil
	}
	switch spec.Type {
	case IncomeLevelBonus:
		return levelBonusModifier{perLevel: domain.Finite(spec.PerLevel), label: spec.Label}, nil
	case IncomeTrackBonus:
		if spec.Track == "" {
			return nil, fmt.Errorf("%w: %s requires a track", domain.ErrInvalidCatalog, spec.Type)
		}
		return trackBonusModifier{
			track:   spec.Track,
			percent: domain.Finite(spec.Percent),
			cap:     domain.NonNegative(spec.Cap),
			label:   spec.Label,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown income modifier type %q", domain.ErrInvalidCatalog, spec.Type)
	}
}

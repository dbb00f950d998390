package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/incomeengine/internal/domain"
)

var validate = validator.New()

// Load reads, validates and builds a catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse validates and builds a catalog from YAML bytes
func Parse(data []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if err := Validate(&file); err != nil {
		return nil, err
	}
	return Build(&file)
}

// Validate checks struct tags and cross references of a parsed catalog file
func Validate(file *File) error {
	if file == nil {
		return fmt.Errorf("%w: catalog is nil", domain.ErrInvalidCatalog)
	}
	if err := validate.Struct(file); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, formatValidationError(err))
	}

	templates := make(map[string]bool, len(file.EventTemplates))
	for _, t := range file.EventTemplates {
		if templates[t.ID] {
			return fmt.Errorf("%w: duplicate event template %q", domain.ErrInvalidCatalog, t.ID)
		}
		templates[t.ID] = true
	}

	upgrades := make(map[string]bool, len(file.Upgrades))
	for _, u := range file.Upgrades {
		if upgrades[u.ID] {
			return fmt.Errorf("%w: duplicate upgrade %q", domain.ErrInvalidCatalog, u.ID)
		}
		upgrades[u.ID] = true
	}
	for _, u := range file.Upgrades {
		for _, req := range u.Requires {
			if !upgrades[req] {
				return fmt.Errorf("%w: upgrade %q requires unknown upgrade %q", domain.ErrInvalidCatalog, u.ID, req)
			}
		}
		for key := range u.Effects {
			if !knownEffect(key) {
				return fmt.Errorf("%w: upgrade %q has unknown effect %q", domain.ErrInvalidCatalog, u.ID, key)
			}
		}
		for _, m := range u.Modifiers {
			if !knownEffect(m.Property) {
				return fmt.Errorf("%w: upgrade %q modifies unknown effect %q", domain.ErrInvalidCatalog, u.ID, m.Property)
			}
		}
	}
	for key := range file.EffectBounds {
		if !knownEffect(key) {
			return fmt.Errorf("%w: bounds for unknown effect %q", domain.ErrInvalidCatalog, key)
		}
	}

	assets := make(map[string]bool, len(file.Assets))
	for _, a := range file.Assets {
		if assets[a.ID] {
			return fmt.Errorf("%w: duplicate asset %q", domain.ErrInvalidCatalog, a.ID)
		}
		assets[a.ID] = true

		levels := make(map[int]bool, len(a.Levels))
		for _, l := range a.Levels {
			if levels[l.Level] {
				return fmt.Errorf("%w: asset %q repeats level %d", domain.ErrInvalidCatalog, a.ID, l.Level)
			}
			levels[l.Level] = true
		}

		actions := make(map[string]bool, len(a.Actions))
		for _, act := range a.Actions {
			if actions[act.ID] {
				return fmt.Errorf("%w: asset %q repeats action %q", domain.ErrInvalidCatalog, a.ID, act.ID)
			}
			actions[act.ID] = true
			for _, req := range act.RequiresUpgrades {
				if !upgrades[req] {
					return fmt.Errorf("%w: action %s.%s requires unknown upgrade %q", domain.ErrInvalidCatalog, a.ID, act.ID, req)
				}
			}
			for _, trig := range act.EventTriggers {
				if !templates[trig.Template] {
					return fmt.Errorf("%w: action %s.%s triggers unknown template %q", domain.ErrInvalidCatalog, a.ID, act.ID, trig.Template)
				}
			}
		}
	}

	for _, c := range file.Education {
		for _, b := range c.Bonuses {
			if !assets[b.Asset] {
				return fmt.Errorf("%w: course %q grants a bonus to unknown asset %q", domain.ErrInvalidCatalog, c.ID, b.Asset)
			}
		}
	}
	return nil
}

// Build converts a validated file into a catalog
func Build(file *File) (*Catalog, error) {
	cat := New()
	cat.Version = file.Version

	for key, b := range file.EffectBounds {
		cat.SetEffectBounds(domain.EffectKey(key), domain.Bounds{Min: b.Min, Max: b.Max})
	}

	for i := range file.Assets {
		def, err := buildAsset(&file.Assets[i])
		if err != nil {
			return nil, err
		}
		cat.PutAsset(def)
	}

	for i := range file.Upgrades {
		cat.PutUpgrade(buildUpgrade(&file.Upgrades[i]))
	}

	for _, n := range file.Niches {
		cat.PutNiche(domain.NicheDefinition{
			ID:         n.ID,
			Name:       n.Name,
			BaseScore:  n.BaseScore,
			Volatility: n.Volatility,
		})
	}

	for _, t := range file.EventTemplates {
		tmpl := &domain.EventTemplate{
			ID:         t.ID,
			Label:      t.Label,
			Tone:       domain.EventTone(t.Tone),
			TargetKind: domain.EventTargetKind(t.Target),
			PercentMin: domain.Finite(t.Percent.Min),
			PercentMax: domain.Finite(t.Percent.Max),
			DaysMin:    t.Days.Min,
			DaysMax:    t.Days.Max,
			Chance:     t.Chance,
		}
		if t.DailyChange != nil {
			change := domain.Finite(*t.DailyChange)
			tmpl.DailyChange = &change
		}
		cat.PutTemplate(tmpl)
	}

	for _, c := range file.Education {
		course := domain.CourseDefinition{ID: c.ID, Name: c.Name}
		for _, b := range c.Bonuses {
			course.Bonuses = append(course.Bonuses, domain.CourseBonus{
				AssetID: b.Asset,
				Percent: domain.Finite(b.Percent),
				Flat:    domain.Finite(b.Flat),
				Type:    b.Type,
			})
		}
		cat.PutCourse(course)
	}

	return cat, nil
}

func buildAsset(spec *AssetSpec) (*domain.AssetDefinition, error) {
	def := &domain.AssetDefinition{
		ID:         spec.ID,
		Name:       spec.Name,
		Singular:   spec.Singular,
		Tags:       spec.Tags,
		Family:     spec.Family,
		Category:   spec.Category,
		SetupDays:  spec.SetupDays,
		SetupCost:  spec.SetupCost,
		BaseIncome: domain.IncomeRange{Min: domain.Finite(spec.BaseIncome.Min), Max: domain.Finite(spec.BaseIncome.Max)},
		Skills:     buildSkills(spec.Skills),
	}

	modifier, err := buildIncomeModifier(spec.IncomeModifier)
	if err != nil {
		return nil, fmt.Errorf("asset %q: %w", spec.ID, err)
	}
	def.IncomeModifier = modifier

	for _, l := range spec.Levels {
		reqs := make(map[string]float64, len(l.Requirements))
		for k, v := range l.Requirements {
			reqs[k] = domain.Finite(v)
		}
		def.Levels = append(def.Levels, domain.QualityLevelDefinition{
			Level:        l.Level,
			Name:         l.Name,
			Description:  l.Description,
			Requirements: reqs,
			Income:       domain.IncomeRange{Min: domain.Finite(l.Income.Min), Max: domain.Finite(l.Income.Max)},
		})
	}

	for i := range spec.Actions {
		action, err := buildAction(&spec.Actions[i])
		if err != nil {
			return nil, fmt.Errorf("asset %q action %q: %w", spec.ID, spec.Actions[i].ID, err)
		}
		def.Actions = append(def.Actions, action)
	}
	return def, nil
}

func buildAction(spec *ActionSpec) (domain.QualityActionDefinition, error) {
	action := domain.QualityActionDefinition{
		ID:               spec.ID,
		Label:            spec.Label,
		TimeHours:        domain.NonNegative(spec.TimeHours),
		Cost:             domain.NonNegative(spec.Cost),
		DailyLimit:       spec.DailyLimit,
		ProgressKey:      spec.ProgressKey,
		RequiresUpgrades: spec.RequiresUpgrades,
		LockMessage:      buildMessage(spec.LockMessage),
		LogMessage:       buildMessage(spec.LogMessage),
		Skills:           buildSkills(spec.Skills),
	}

	var err error
	if action.Progress, err = buildProgress(spec.Progress); err != nil {
		return action, err
	}
	if action.Lock, err = buildLock(spec.Lock); err != nil {
		return action, err
	}
	if action.OnComplete, err = buildCompletion(spec.OnComplete); err != nil {
		return action, err
	}
	for _, t := range spec.EventTriggers {
		action.EventTriggers = append(action.EventTriggers, domain.EventTrigger{TemplateID: t.Template, Chance: t.Chance})
	}
	return action, nil
}

func buildUpgrade(spec *UpgradeSpec) *domain.UpgradeDefinition {
	def := &domain.UpgradeDefinition{
		ID:               spec.ID,
		Name:             spec.Name,
		Category:         spec.Category,
		Family:           spec.Family,
		Tags:             spec.Tags,
		Cost:             spec.Cost,
		Repeatable:       spec.Repeatable,
		Effects:          make(map[domain.EffectKey]float64, len(spec.Effects)),
		Affects:          buildScope(spec.Affects),
		Provides:         spec.Provides,
		Consumes:         spec.Consumes,
		ExclusivityGroup: spec.ExclusivityGroup,
		Requires:         spec.Requires,
	}
	for k, v := range spec.Effects {
		def.Effects[domain.EffectKey(k)] = domain.Finite(v)
	}
	for _, m := range spec.Modifiers {
		def.Modifiers = append(def.Modifiers, domain.EffectModifier{
			Property: domain.EffectKey(m.Property),
			Type:     domain.ModifierType(m.Type),
			Amount:   domain.Finite(m.Amount),
			Target:   buildScope(m.Target),
			Min:      m.Min,
			Max:      m.Max,
		})
	}
	return def
}

func buildScope(spec ScopeSpec) domain.Scope {
	return domain.Scope{
		Kind:        domain.SubjectKind(spec.Kind),
		IDs:         spec.IDs,
		Tags:        spec.Tags,
		Families:    spec.Families,
		Categories:  spec.Categories,
		ActionTypes: spec.ActionTypes,
	}
}

func buildSkills(specs []SkillSpec) []domain.SkillWeight {
	var out []domain.SkillWeight
	for _, s := range specs {
		out = append(out, domain.SkillWeight{ID: s.ID, Weight: s.Weight})
	}
	return out
}

func knownEffect(key string) bool {
	switch domain.EffectKey(key) {
	case domain.EffectPayout, domain.EffectSetupTime, domain.EffectMaintenanceTime, domain.EffectQualityProgress:
		return true
	}
	return false
}

// formatValidationError flattens validator errors into one readable line
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", e.Namespace(), e.Tag(), e.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

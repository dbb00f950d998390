package education

import (
	"fmt"

	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/state"
)

// Courses lists authored education courses
type Courses interface {
	Courses() []domain.CourseDefinition
}

// Provider computes payout bonuses granted by completed courses
type Provider struct {
	courses Courses
}

// NewProvider creates an education-bonus provider
func NewProvider(courses Courses) *Provider {
	return &Provider{courses: courses}
}

// Bonus returns the extra income completed courses grant an asset type on top
// of baseAmount, one applied entry per qualifying bonus
func (p *Provider) Bonus(st *state.State, assetID string, baseAmount float64) domain.EducationResult {
	var res domain.EducationResult
	base := domain.NonNegative(baseAmount)

	for _, course := range p.courses.Courses() {
		if !st.CompletedCourses[course.ID] {
			continue
		}
		for _, b := range course.Bonuses {
			if b.AssetID != assetID {
				continue
			}
			var extra float64
			switch b.Type {
			case domain.EducationBonusPercent:
				extra = base * domain.Finite(b.Percent)
			case domain.EducationBonusFlat:
				extra = domain.Finite(b.Flat)
			}
			if extra == 0 {
				continue
			}
			res.Amount += extra
			res.Applied = append(res.Applied, domain.EducationBonus{
				ID:    course.ID,
				Label: course.Name,
				Extra: extra,
				Type:  b.Type,
			})
		}
	}
	return res
}

// Complete marks a course as completed
func (p *Provider) Complete(st *state.State, courseID string) error {
	for _, course := range p.courses.Courses() {
		if course.ID == courseID {
			st.CompletedCourses[courseID] = true
			return nil
		}
	}
	return fmt.Errorf("%w: unknown course %s", domain.ErrInvalidInput, courseID)
}

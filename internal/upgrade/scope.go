package upgrade

import (
	"slices"

	"github.com/osse101/incomeengine/internal/domain"
)

// MatchesSubject reports whether a scope covers the subject. A scope without
// ids, tags, families or categories matches every subject of its kind.
func MatchesSubject(scope domain.Scope, subject domain.Subject) bool {
	if scope.Kind != "" && scope.Kind != subject.Kind {
		return false
	}
	if len(scope.IDs) == 0 && len(scope.Tags) == 0 && len(scope.Families) == 0 && len(scope.Categories) == 0 {
		return true
	}
	if slices.Contains(scope.IDs, subject.ID) {
		return true
	}
	for _, tag := range subject.Tags {
		if slices.Contains(scope.Tags, tag) {
			return true
		}
	}
	if subject.Family != "" && slices.Contains(scope.Families, subject.Family) {
		return true
	}
	return subject.Category != "" && slices.Contains(scope.Categories, subject.Category)
}

// MatchesAction reports whether a scope's action-type filter admits actionType.
// An empty filter admits any action.
func MatchesAction(scope domain.Scope, actionType string) bool {
	return len(scope.ActionTypes) == 0 || slices.Contains(scope.ActionTypes, actionType)
}

// Matches combines the subject and action-type checks
func Matches(scope domain.Scope, subject domain.Subject, actionType string) bool {
	return MatchesSubject(scope, subject) && MatchesAction(scope, actionType)
}

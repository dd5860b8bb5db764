package screening

import (
	"strings"

	"cv-platform-backend/internal/domain"
)

// Filter evaluates a conjunction of optional criteria over a profile list.
// Each active criterion narrows the previous result set, so criteria compose
// as a logical AND. Textual matching is case-insensitive. The result is a
// stable subset of the input: no element is added or reordered.
func Filter(profiles []domain.CandidateProfile, criteria domain.FilterCriteria) []domain.CandidateProfile {
	result := profiles

	if criteria.GPAMin != nil {
		result = keep(result, func(p domain.CandidateProfile) bool {
			return p.GPA != nil && *p.GPA >= *criteria.GPAMin
		})
	}

	if criteria.GPAMax != nil {
		result = keep(result, func(p domain.CandidateProfile) bool {
			return p.GPA != nil && *p.GPA <= *criteria.GPAMax
		})
	}

	if criteria.Major != "" {
		major := strings.ToLower(criteria.Major)
		result = keep(result, func(p domain.CandidateProfile) bool {
			return strings.Contains(strings.ToLower(p.Major), major)
		})
	}

	if wanted := splitSkills(criteria.Skills); len(wanted) > 0 {
		result = keep(result, func(p domain.CandidateProfile) bool {
			return hasAnySkill(p.Skills, wanted)
		})
	}

	if criteria.Search != "" {
		search := strings.ToLower(criteria.Search)
		result = keep(result, func(p domain.CandidateProfile) bool {
			return strings.Contains(strings.ToLower(p.FullName), search) ||
				strings.Contains(strings.ToLower(p.Email), search) ||
				strings.Contains(strings.ToLower(p.Summary), search)
		})
	}

	return result
}

func keep(profiles []domain.CandidateProfile, pred func(domain.CandidateProfile) bool) []domain.CandidateProfile {
	kept := make([]domain.CandidateProfile, 0, len(profiles))
	for _, p := range profiles {
		if pred(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// splitSkills tokenizes a comma-separated skills filter: trimmed, lowered,
// empties dropped.
func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if token := strings.ToLower(strings.TrimSpace(part)); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// hasAnySkill reports whether any wanted token equals any of the profile's
// skills, compared case-insensitively.
func hasAnySkill(skills []string, wanted []string) bool {
	for _, skill := range skills {
		lowered := strings.ToLower(skill)
		for _, token := range wanted {
			if lowered == token {
				return true
			}
		}
	}
	return false
}

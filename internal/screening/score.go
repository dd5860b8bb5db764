package screening

import (
	"sort"

	"cv-platform-backend/internal/domain"
)

// Weights parameterizes the composite candidate score. The weights sum to
// 100; each count sub-score saturates at its cap before weighting. The
// defaults are inherited business heuristics, kept configurable rather than
// re-derived.
type Weights struct {
	GPA            float64
	Skills         float64
	Experience     float64
	Certifications float64

	SkillsCap         int
	ExperienceCap     int
	CertificationsCap int
}

// DefaultWeights returns the standard scoring rule: GPA 40%, skills 30%
// (capped at 20), experience 20% (capped at 10), certifications 10%
// (capped at 5).
func DefaultWeights() Weights {
	return Weights{
		GPA:               40,
		Skills:            30,
		Experience:        20,
		Certifications:    10,
		SkillsCap:         20,
		ExperienceCap:     10,
		CertificationsCap: 5,
	}
}

// Score computes the composite score for a single profile. A missing GPA
// contributes zero. The result lies in [0, sum of weights].
func Score(p domain.CandidateProfile, w Weights) float64 {
	gpa := 0.0
	if p.GPA != nil {
		gpa = *p.GPA
	}

	return (gpa/4.0)*w.GPA +
		capped(len(p.Skills), w.SkillsCap)*w.Skills +
		capped(len(p.Experience), w.ExperienceCap)*w.Experience +
		capped(len(p.Certifications), w.CertificationsCap)*w.Certifications
}

func capped(count, cap int) float64 {
	if cap < 1 || count >= cap {
		if count > 0 {
			return 1
		}
		return 0
	}
	return float64(count) / float64(cap)
}

// Compare scores each candidate and produces a total ordering, strongest
// first. The sort is stable, so candidates with equal scores keep their
// input order and the first maximal element wins. Exactly one entry of a
// non-empty result is flagged strongest. This is a transparent linear rule
// on purpose: every ranking must be explainable from the inputs.
func Compare(profiles []domain.RankedProfile, w Weights) []domain.ComparisonEntry {
	entries := make([]domain.ComparisonEntry, len(profiles))
	for i, p := range profiles {
		gpa := 0.0
		if p.GPA != nil {
			gpa = *p.GPA
		}
		entries[i] = domain.ComparisonEntry{
			Profile:             p,
			GPA:                 gpa,
			SkillsCount:         len(p.Skills),
			ExperienceCount:     len(p.Experience),
			EducationCount:      len(p.Education),
			CertificationsCount: len(p.Certifications),
			Score:               Score(p.CandidateProfile, w),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > 0 {
		entries[0].IsStrongest = true
	}

	return entries
}

package screening_test

import (
	"math"
	"testing"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/internal/screening"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manySkills(n int) []string {
	skills := make([]string, n)
	for i := range skills {
		skills[i] = "skill"
	}
	return skills
}

func TestScoreComposite(t *testing.T) {
	w := screening.DefaultWeights()

	t.Run("mid-range profile", func(t *testing.T) {
		// gpa 2.0/4 * 40 = 20, 10/20 skills * 30 = 15, 5/10 exp * 20 = 10, 2.5/5... certs 2/5 * 10 = 4
		p := domain.CandidateProfile{
			GPA:            gpa(2.0),
			Skills:         manySkills(10),
			Experience:     manySkills(5),
			Certifications: manySkills(2),
		}
		assert.InDelta(t, 20+15+10+4, screening.Score(p, w), 1e-9)
	})

	t.Run("empty profile scores zero", func(t *testing.T) {
		assert.Zero(t, screening.Score(domain.CandidateProfile{}, w))
	})

	t.Run("maximal profile scores 100", func(t *testing.T) {
		p := domain.CandidateProfile{
			GPA:            gpa(4.0),
			Skills:         manySkills(20),
			Experience:     manySkills(10),
			Certifications: manySkills(5),
		}
		assert.InDelta(t, 100, screening.Score(p, w), 1e-9)
	})

	t.Run("counts saturate at their caps", func(t *testing.T) {
		p := domain.CandidateProfile{
			Skills:         manySkills(200),
			Experience:     manySkills(50),
			Certifications: manySkills(30),
		}
		// 30 + 20 + 10, no credit past the caps
		assert.InDelta(t, 60, screening.Score(p, w), 1e-9)
	})

	t.Run("missing gpa contributes zero", func(t *testing.T) {
		p := domain.CandidateProfile{Skills: manySkills(20)}
		assert.InDelta(t, 30, screening.Score(p, w), 1e-9)
	})

	t.Run("non-positive cap saturates instead of dividing", func(t *testing.T) {
		broken := w
		broken.SkillsCap = 0
		p := domain.CandidateProfile{Skills: manySkills(3)}

		got := screening.Score(p, broken)

		assert.False(t, math.IsNaN(got))
		assert.False(t, math.IsInf(got, 0))
		assert.InDelta(t, 30, got, 1e-9)
	})

	t.Run("perfect gpa with two skills", func(t *testing.T) {
		p := domain.CandidateProfile{
			GPA:    gpa(4.0),
			Skills: []string{"Python", "SQL"},
		}
		// 40 gpa + 2/20 * 30 = 3 skills
		assert.InDelta(t, 43, screening.Score(p, w), 1e-9)
	})
}

func ranked(id int64, p domain.CandidateProfile) domain.RankedProfile {
	p.OwnerID = id
	return domain.RankedProfile{CandidateProfile: p}
}

func TestCompareRanking(t *testing.T) {
	w := screening.DefaultWeights()

	strong := ranked(1, domain.CandidateProfile{
		GPA:            gpa(3.8),
		Skills:         manySkills(18),
		Experience:     manySkills(9),
		Certifications: manySkills(4),
	})
	weak := ranked(2, domain.CandidateProfile{
		GPA:    gpa(2.0),
		Skills: manySkills(2),
	})
	middle := ranked(3, domain.CandidateProfile{
		GPA:        gpa(3.0),
		Skills:     manySkills(8),
		Experience: manySkills(3),
	})

	entries := screening.Compare([]domain.RankedProfile{weak, strong, middle}, w)
	require.Len(t, entries, 3)

	assert.Equal(t, int64(1), entries[0].Profile.OwnerID)
	assert.Equal(t, int64(3), entries[1].Profile.OwnerID)
	assert.Equal(t, int64(2), entries[2].Profile.OwnerID)

	// descending scores
	assert.GreaterOrEqual(t, entries[0].Score, entries[1].Score)
	assert.GreaterOrEqual(t, entries[1].Score, entries[2].Score)
}

func TestCompareExactScores(t *testing.T) {
	w := screening.DefaultWeights()

	entries := screening.Compare([]domain.RankedProfile{
		ranked(1, domain.CandidateProfile{GPA: gpa(2.0)}),
		ranked(2, domain.CandidateProfile{
			GPA:            gpa(3.5),
			Skills:         manySkills(20),
			Experience:     manySkills(10),
			Certifications: manySkills(5),
		}),
	}, w)

	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].Profile.OwnerID)
	assert.InDelta(t, 95, entries[0].Score, 1e-9)
	assert.InDelta(t, 20, entries[1].Score, 1e-9)
	assert.True(t, entries[0].IsStrongest)
	assert.False(t, entries[1].IsStrongest)
}

func TestCompareStrongestFlagIsUnique(t *testing.T) {
	w := screening.DefaultWeights()

	entries := screening.Compare([]domain.RankedProfile{
		ranked(1, domain.CandidateProfile{GPA: gpa(3.0)}),
		ranked(2, domain.CandidateProfile{GPA: gpa(3.5)}),
		ranked(3, domain.CandidateProfile{GPA: gpa(2.0)}),
	}, w)

	flagged := 0
	for _, e := range entries {
		if e.IsStrongest {
			flagged++
		}
	}
	assert.Equal(t, 1, flagged)
	assert.True(t, entries[0].IsStrongest)
	assert.Equal(t, int64(2), entries[0].Profile.OwnerID)
}

func TestCompareTiesKeepInputOrder(t *testing.T) {
	w := screening.DefaultWeights()

	same := domain.CandidateProfile{GPA: gpa(3.0), Skills: manySkills(5)}
	entries := screening.Compare([]domain.RankedProfile{
		ranked(7, same),
		ranked(8, same),
		ranked(9, same),
	}, w)

	require.Len(t, entries, 3)
	assert.Equal(t, int64(7), entries[0].Profile.OwnerID)
	assert.Equal(t, int64(8), entries[1].Profile.OwnerID)
	assert.Equal(t, int64(9), entries[2].Profile.OwnerID)
	assert.True(t, entries[0].IsStrongest)
	assert.False(t, entries[1].IsStrongest)
}

func TestCompareDerivedCounts(t *testing.T) {
	w := screening.DefaultWeights()

	entries := screening.Compare([]domain.RankedProfile{
		ranked(1, domain.CandidateProfile{
			GPA:            gpa(3.2),
			Skills:         manySkills(4),
			Education:      manySkills(2),
			Experience:     manySkills(3),
			Certifications: manySkills(1),
		}),
	}, w)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, 3.2, e.GPA)
	assert.Equal(t, 4, e.SkillsCount)
	assert.Equal(t, 2, e.EducationCount)
	assert.Equal(t, 3, e.ExperienceCount)
	assert.Equal(t, 1, e.CertificationsCount)
}

func TestCompareEmptyInput(t *testing.T) {
	entries := screening.Compare(nil, screening.DefaultWeights())
	assert.Empty(t, entries)
}

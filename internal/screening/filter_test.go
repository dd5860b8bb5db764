package screening_test

import (
	"testing"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/internal/screening"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gpa(v float64) *float64 { return &v }

func sampleProfiles() []domain.CandidateProfile {
	return []domain.CandidateProfile{
		{OwnerID: 1, FullName: "Alice Chen", Major: "Computer Science", GPA: gpa(3.6), Skills: []string{"Go", "SQL"}},
		{OwnerID: 2, FullName: "Bob Marsh", Major: "Electrical Engineering", GPA: gpa(2.9), Skills: []string{"C", "VHDL"}},
		{OwnerID: 3, FullName: "Carol Diaz", Major: "Computer Engineering", GPA: nil, Skills: []string{"Python"}},
		{OwnerID: 4, FullName: "Dan Okafor", Major: "Mathematics", GPA: gpa(3.9), Skills: []string{"python", "R"}, Summary: "Statistics and machine learning"},
	}
}

func ownerIDs(profiles []domain.CandidateProfile) []int64 {
	ids := make([]int64, len(profiles))
	for i, p := range profiles {
		ids[i] = p.OwnerID
	}
	return ids
}

func TestFilterNoCriteriaIsIdentity(t *testing.T) {
	profiles := sampleProfiles()
	result := screening.Filter(profiles, domain.FilterCriteria{})
	assert.Equal(t, ownerIDs(profiles), ownerIDs(result))
}

func TestFilterGPARange(t *testing.T) {
	profiles := sampleProfiles()

	t.Run("minimum excludes below and missing", func(t *testing.T) {
		result := screening.Filter(profiles, domain.FilterCriteria{GPAMin: gpa(3.0)})
		assert.Equal(t, []int64{1, 4}, ownerIDs(result))
	})

	t.Run("maximum excludes above and missing", func(t *testing.T) {
		result := screening.Filter(profiles, domain.FilterCriteria{GPAMax: gpa(3.0)})
		assert.Equal(t, []int64{2}, ownerIDs(result))
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		result := screening.Filter(profiles, domain.FilterCriteria{GPAMin: gpa(3.9)})
		assert.Equal(t, []int64{4}, ownerIDs(result))
	})
}

func TestFilterMajorSubstring(t *testing.T) {
	profiles := sampleProfiles()

	result := screening.Filter(profiles, domain.FilterCriteria{Major: "engineering"})
	assert.Equal(t, []int64{2, 3}, ownerIDs(result))
}

func TestFilterSkillsTokens(t *testing.T) {
	profiles := sampleProfiles()

	t.Run("any listed skill matches", func(t *testing.T) {
		result := screening.Filter(profiles, domain.FilterCriteria{Skills: "go, rust"})
		assert.Equal(t, []int64{1}, ownerIDs(result))
	})

	t.Run("case insensitive exact match", func(t *testing.T) {
		result := screening.Filter(profiles, domain.FilterCriteria{Skills: "PYTHON"})
		assert.Equal(t, []int64{3, 4}, ownerIDs(result))
	})

	t.Run("substring of a skill does not match", func(t *testing.T) {
		result := screening.Filter(profiles, domain.FilterCriteria{Skills: "py"})
		assert.Empty(t, result)
	})

	t.Run("whitespace-only tokens ignored", func(t *testing.T) {
		result := screening.Filter(profiles, domain.FilterCriteria{Skills: " , ,"})
		assert.Equal(t, ownerIDs(profiles), ownerIDs(result))
	})
}

func TestFilterSearch(t *testing.T) {
	profiles := sampleProfiles()

	result := screening.Filter(profiles, domain.FilterCriteria{Search: "machine learning"})
	assert.Equal(t, []int64{4}, ownerIDs(result))
}

func TestFilterConjunction(t *testing.T) {
	profiles := sampleProfiles()

	criteria := domain.FilterCriteria{
		GPAMin: gpa(3.0),
		Skills: "python",
	}
	result := screening.Filter(profiles, criteria)
	require.Len(t, result, 1)
	assert.Equal(t, int64(4), result[0].OwnerID)

	// combined criteria never admit a profile a single criterion rejects
	minOnly := screening.Filter(profiles, domain.FilterCriteria{GPAMin: gpa(3.0)})
	assert.LessOrEqual(t, len(result), len(minOnly))
}

func TestFilterPreservesOrder(t *testing.T) {
	profiles := sampleProfiles()
	result := screening.Filter(profiles, domain.FilterCriteria{GPAMin: gpa(0)})
	assert.Equal(t, []int64{1, 2, 4}, ownerIDs(result))
}

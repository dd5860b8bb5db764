package extraction_test

import (
	"testing"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/internal/extraction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileFullPayload(t *testing.T) {
	payload := domain.RawExtractionPayload{
		"full_name":      "Ada Lovelace",
		"email":          "ada@example.com",
		"phone":          "+44 555 0100",
		"summary":        "Analyst and programmer",
		"major":          "Mathematics",
		"gpa":            3.8,
		"skills":         []string{"Go", "SQL"},
		"education":      []string{"BSc Mathematics, Cambridge (1840)"},
		"experience":     []string{"Analyst. Analytical Engines Ltd"},
		"certifications": []string{},
		"languages":      []string{"English", "French"},
	}

	profile, err := extraction.ValidateProfile(payload)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", profile.FullName)
	assert.Equal(t, "Mathematics", profile.Major)
	require.NotNil(t, profile.GPA)
	assert.Equal(t, 3.8, *profile.GPA)
	assert.Equal(t, []string{"Go", "SQL"}, profile.Skills)
	assert.Equal(t, []string{"English", "French"}, profile.Languages)
}

func TestValidateProfileDefaults(t *testing.T) {
	profile, err := extraction.ValidateProfile(domain.RawExtractionPayload{})
	require.NoError(t, err)

	assert.Empty(t, profile.FullName)
	assert.Nil(t, profile.GPA)
	// list fields are present and empty, never nil
	assert.NotNil(t, profile.Skills)
	assert.Empty(t, profile.Skills)
	assert.NotNil(t, profile.Languages)
	assert.Empty(t, profile.Languages)
}

func TestValidateProfileGPACoercion(t *testing.T) {
	t.Run("numeric string", func(t *testing.T) {
		profile, err := extraction.ValidateProfile(domain.RawExtractionPayload{"gpa": "3.5"})
		require.NoError(t, err)
		require.NotNil(t, profile.GPA)
		assert.Equal(t, 3.5, *profile.GPA)
	})

	t.Run("null is absent", func(t *testing.T) {
		profile, err := extraction.ValidateProfile(domain.RawExtractionPayload{"gpa": nil})
		require.NoError(t, err)
		assert.Nil(t, profile.GPA)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := extraction.ValidateProfile(domain.RawExtractionPayload{"gpa": 4.5})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 0.0 and 4.0")
	})

	t.Run("non-numeric string", func(t *testing.T) {
		_, err := extraction.ValidateProfile(domain.RawExtractionPayload{"gpa": "excellent"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gpa must be a number")
	})
}

func TestValidateProfileRejectsBadShapes(t *testing.T) {
	t.Run("non-string scalar", func(t *testing.T) {
		_, err := extraction.ValidateProfile(domain.RawExtractionPayload{"full_name": 42.0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "full_name")
	})

	t.Run("non-string list entry", func(t *testing.T) {
		_, err := extraction.ValidateProfile(domain.RawExtractionPayload{
			"skills": []any{"Go", map[string]any{"name": "SQL"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-string entry")
	})

	t.Run("list field holding a scalar", func(t *testing.T) {
		_, err := extraction.ValidateProfile(domain.RawExtractionPayload{"skills": "Go, SQL"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list of strings")
	})
}

func TestNormalizeThenValidateRoundTrip(t *testing.T) {
	payload := domain.RawExtractionPayload{
		"full_name": "Grace Hopper",
		"gpa":       "4.0",
		"education": []any{
			map[string]any{"title": "PhD Mathematics", "institution": "Yale", "year": float64(1934)},
		},
		"experience": []any{
			map[string]any{"position": "Rear Admiral", "company": "US Navy"},
		},
		"skills": []any{"COBOL", map[string]any{"name": "Compilers"}},
	}

	profile, err := extraction.ValidateProfile(extraction.Normalize(payload))
	require.NoError(t, err)

	assert.Equal(t, []string{"PhD Mathematics, Yale (1934)"}, profile.Education)
	assert.Equal(t, []string{"Rear Admiral. US Navy"}, profile.Experience)
	assert.Equal(t, []string{"COBOL", "Compilers"}, profile.Skills)
	require.NotNil(t, profile.GPA)
	assert.Equal(t, 4.0, *profile.GPA)
}

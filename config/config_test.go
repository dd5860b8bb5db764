package config_test

import (
	"testing"

	"cv-platform-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigScoreCaps(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 20, cfg.ScoreCapSkills)
		assert.Equal(t, 10, cfg.ScoreCapExperience)
		assert.Equal(t, 5, cfg.ScoreCapCertifications)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SCORE_CAP_SKILLS", "15")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 15, cfg.ScoreCapSkills)
	})

	t.Run("non-positive caps fall back", func(t *testing.T) {
		// caps are divisors; zero or negative would corrupt every score
		t.Setenv("SCORE_CAP_SKILLS", "0")
		t.Setenv("SCORE_CAP_EXPERIENCE", "-3")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 20, cfg.ScoreCapSkills)
		assert.Equal(t, 10, cfg.ScoreCapExperience)
	})
}

package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtractionResponse(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		payload, err := parseExtractionResponse(`{"full_name": "Ada Lovelace", "gpa": 3.8}`)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", payload["full_name"])
		assert.Equal(t, 3.8, payload["gpa"])
	})

	t.Run("markdown code fences stripped", func(t *testing.T) {
		payload, err := parseExtractionResponse("```json\n{\"full_name\": \"Ada\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Ada", payload["full_name"])
	})

	t.Run("JSON embedded in prose", func(t *testing.T) {
		payload, err := parseExtractionResponse(`Here is the extracted data: {"skills": ["Go"]} I hope this helps!`)
		require.NoError(t, err)
		skills, ok := payload["skills"].([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"Go"}, skills)
	})

	t.Run("unparseable reply rejected", func(t *testing.T) {
		_, err := parseExtractionResponse("I could not read this document.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Could not parse extraction response")
	})
}

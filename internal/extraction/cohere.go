package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/pkg/apperror"
	"cv-platform-backend/pkg/logger"
	"cv-platform-backend/pkg/textract"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const extractionPreamble = `You are an expert at extracting structured information from CVs and resumes.
Extract the following information and return ONLY valid JSON matching this exact schema:
{
  "full_name": "string or null",
  "email": "string or null",
  "phone": "string or null",
  "summary": "string or null",
  "skills": ["array of strings - each skill as a simple string"],
  "education": ["array of strings - each education entry as a single string like 'Degree - Institution - Year'"],
  "experience": ["array of strings - each experience as a single string like 'Position - Company - Description'"],
  "certifications": ["array of strings - each certification as a single string"],
  "languages": ["array of strings - each language as a simple string"],
  "gpa": "float or null",
  "major": "string or null"
}

IMPORTANT: All array fields (skills, education, experience, certifications, languages) must contain ONLY strings, NOT objects or dictionaries.
Each array item should be a single string value.

Return ONLY the JSON object, no additional text, no markdown, no code blocks, no explanation.`

// minCVTextLength is the minimum extracted-text length for a document to be
// worth sending to the extraction API.
const minCVTextLength = 50

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// CohereExtractor implements domain.CVExtractor against the Cohere chat API.
type CohereExtractor struct {
	client *resty.Client
	apiURL string
	models []string
}

// Options configures the Cohere extraction client.
type Options struct {
	APIKey  string
	APIURL  string
	Models  []string
	Timeout time.Duration
}

func NewCohereExtractor(opts Options) *CohereExtractor {
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("Authorization", "Bearer "+opts.APIKey).
		SetHeader("Content-Type", "application/json")

	return &CohereExtractor{
		client: client,
		apiURL: opts.APIURL,
		models: opts.Models,
	}
}

// ProcessFile runs the complete extraction pipeline: document text
// extraction, length sanity check, then structured extraction via the chat
// API. The returned payload is raw; the caller runs it through Normalize and
// ValidateProfile.
func (e *CohereExtractor) ProcessFile(ctx context.Context, content []byte, filename string) (domain.RawExtractionPayload, error) {
	text, err := textract.Extract(content, filename)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if len(strings.TrimSpace(text)) < minCVTextLength {
		return nil, apperror.BadRequest("CV text is too short or empty")
	}

	return e.extractPayload(ctx, text)
}

// extractPayload calls the chat API, trying each configured model in order.
// A model that has been retired returns a 404; anything else fails the call.
func (e *CohereExtractor) extractPayload(ctx context.Context, cvText string) (domain.RawExtractionPayload, error) {
	message := fmt.Sprintf("Extract information from this CV/resume text:\n\n%s\n\nReturn ONLY the JSON object matching the schema above.", cvText)

	var lastErr error
	for _, model := range e.models {
		resp, err := e.client.R().
			SetContext(ctx).
			SetBody(map[string]any{
				"model":       model,
				"message":     message,
				"preamble":    extractionPreamble,
				"temperature": 0.1,
				"max_tokens":  2000,
			}).
			Post(e.apiURL)
		if err != nil {
			return nil, apperror.Unavailable("CV extraction service is unreachable", err)
		}

		if resp.StatusCode() == 404 {
			// Model retired, try the next one in the fallback list.
			lastErr = fmt.Errorf("model %s not found", model)
			logger.Log.Warn("Extraction model unavailable, trying fallback", "model", model)
			continue
		}
		if resp.IsError() {
			return nil, apperror.Unavailable(
				"CV extraction service returned an error",
				fmt.Errorf("cohere: status %d: %s", resp.StatusCode(), resp.String()),
			)
		}

		responseText := gjson.Get(resp.String(), "text").String()
		if responseText == "" {
			return nil, apperror.Unavailable("CV extraction service returned an empty response", nil)
		}

		return parseExtractionResponse(responseText)
	}

	return nil, apperror.Unavailable("All extraction models failed", lastErr)
}

// parseExtractionResponse parses the model's reply into a payload, stripping
// markdown code fences and, failing that, pulling out the outermost JSON
// object. Models occasionally wrap the JSON despite being told not to.
func parseExtractionResponse(responseText string) (domain.RawExtractionPayload, error) {
	text := strings.TrimSpace(responseText)

	if strings.HasPrefix(text, "```") {
		var kept []string
		for _, line := range strings.Split(text, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				continue
			}
			kept = append(kept, line)
		}
		text = strings.Join(kept, "\n")
	}

	var payload domain.RawExtractionPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		match := jsonObjectRe.FindString(text)
		if match == "" {
			return nil, apperror.Unavailable("Could not parse extraction response", err)
		}
		if err := json.Unmarshal([]byte(match), &payload); err != nil {
			return nil, apperror.Unavailable("Could not parse extraction response", err)
		}
	}

	return payload, nil
}

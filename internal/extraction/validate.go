package extraction

import (
	"fmt"
	"strconv"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/pkg/apperror"
)

var scalarFields = []string{"full_name", "email", "phone", "summary", "major"}

// ValidateProfile enforces the canonical record shape on a normalized
// payload: optional string scalars, a gpa coercible to a float in [0, 4],
// and all-string list fields. List fields default to empty, scalars to
// absent. A non-string list element past this point means the normalizer
// failed, so it is still rejected rather than silently stringified.
func ValidateProfile(payload domain.RawExtractionPayload) (*domain.CandidateProfile, error) {
	profile := &domain.CandidateProfile{
		Skills:         []string{},
		Education:      []string{},
		Experience:     []string{},
		Certifications: []string{},
		Languages:      []string{},
	}

	scalars := map[string]*string{
		"full_name": &profile.FullName,
		"email":     &profile.Email,
		"phone":     &profile.Phone,
		"summary":   &profile.Summary,
		"major":     &profile.Major,
	}
	for _, field := range scalarFields {
		value, ok := payload[field]
		if !ok || value == nil {
			continue
		}
		s, ok := value.(string)
		if !ok {
			return nil, apperror.BadRequest(fmt.Sprintf("field %q must be a string", field))
		}
		*scalars[field] = s
	}

	gpa, err := coerceGPA(payload["gpa"])
	if err != nil {
		return nil, err
	}
	profile.GPA = gpa

	lists := map[string]*[]string{
		"skills":         &profile.Skills,
		"education":      &profile.Education,
		"experience":     &profile.Experience,
		"certifications": &profile.Certifications,
		"languages":      &profile.Languages,
	}
	for _, field := range ListFields {
		value, ok := payload[field]
		if !ok || value == nil {
			continue
		}
		entries, err := coerceStringList(field, value)
		if err != nil {
			return nil, err
		}
		*lists[field] = entries
	}

	return profile, nil
}

// coerceGPA accepts nil, a JSON number, or a numeric string, and requires
// the result to lie in [0, 4].
func coerceGPA(value any) (*float64, error) {
	if value == nil {
		return nil, nil
	}

	var gpa float64
	switch v := value.(type) {
	case float64:
		gpa = v
	case int:
		gpa = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, apperror.BadRequest("gpa must be a number")
		}
		gpa = parsed
	default:
		return nil, apperror.BadRequest("gpa must be a number")
	}

	if gpa < 0 || gpa > 4 {
		return nil, apperror.BadRequest("gpa must be between 0.0 and 4.0")
	}
	return &gpa, nil
}

func coerceStringList(field string, value any) ([]string, error) {
	switch items := value.(type) {
	case []string:
		return items, nil
	case []any:
		out := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, apperror.BadRequest(fmt.Sprintf("field %q contains a non-string entry", field))
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, apperror.BadRequest(fmt.Sprintf("field %q must be a list of strings", field))
	}
}

package extraction

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cv-platform-backend/internal/domain"
)

// ListFields are the payload fields that must contain only strings after
// normalization.
var ListFields = []string{"skills", "education", "experience", "certifications", "languages"}

// Normalize rewrites every list-field entry of an extraction payload into a
// flat string. The upstream extractor is asked for plain strings but often
// returns nested objects anyway; this layer reconciles the shapes with an
// ordered, first-match-wins classifier. It is total: it never fails, and it
// preserves list length and order. Non-list fields pass through untouched.
func Normalize(payload domain.RawExtractionPayload) domain.RawExtractionPayload {
	normalized := make(domain.RawExtractionPayload, len(payload))
	for k, v := range payload {
		normalized[k] = v
	}

	for _, field := range ListFields {
		switch items := normalized[field].(type) {
		case []any:
			flat := make([]string, len(items))
			for i, item := range items {
				flat[i] = renderEntry(item)
			}
			normalized[field] = flat
		case []string:
			// already flat
		}
	}

	return normalized
}

// renderEntry converts a single list-field entry to a string.
func renderEntry(item any) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]any:
		return renderObject(v)
	default:
		return stringify(item)
	}
}

// renderObject classifies a structured entry by its keys, first match wins.
// The precedence order is the contract: experience shape, then education/
// certification shape, then simple name, then generic text, then a lossless
// JSON fallback.
func renderObject(obj map[string]any) string {
	if _, hasPos := obj["position"]; hasPos {
		if _, hasComp := obj["company"]; hasComp {
			// Experience format: "Position. Company. Description"
			parts := []string{stringify(obj["position"]), stringify(obj["company"])}
			if desc := stringify(obj["description"]); desc != "" {
				parts = append(parts, desc)
			}
			return joinNonEmpty(parts, ". ")
		}
	}

	if _, hasTitle := obj["title"]; hasTitle {
		// Education/Certification format: "Title, Institution (Date)"
		parts := []string{stringify(obj["title"])}
		if inst := firstNonEmpty(obj, "institution", "organization"); inst != "" {
			parts = append(parts, inst)
		}
		out := joinNonEmpty(parts, ", ")
		if date := firstNonEmpty(obj, "date", "year"); date != "" {
			out = joinNonEmpty([]string{out, "(" + date + ")"}, " ")
		}
		return out
	}

	if name, ok := obj["name"]; ok {
		return stringify(name)
	}

	if text := firstNonEmpty(obj, "text", "description"); text != "" {
		return text
	}
	if _, hasText := obj["text"]; hasText {
		return ""
	}
	if _, hasDesc := obj["description"]; hasDesc {
		return ""
	}

	// Fallback: serialize the entire entry. Unreadable but lossless.
	if encoded, err := json.Marshal(obj); err == nil {
		return string(encoded)
	}
	return fmt.Sprintf("%v", obj)
}

// firstNonEmpty returns the first key whose stringified value is non-empty.
func firstNonEmpty(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringify(obj[key]); s != "" {
			return s
		}
	}
	return ""
}

func joinNonEmpty(parts []string, sep string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}

// stringify renders a scalar the way it appeared in the source document:
// integral floats without an exponent or trailing zeros.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

package domain

import "context"

// CVExtractor is the boundary to the extraction service: document bytes in,
// semi-structured payload out. Implementations fail with a validation error
// for unsupported or empty documents and an unavailability error when the
// upstream API cannot be reached.
type CVExtractor interface {
	ProcessFile(ctx context.Context, content []byte, filename string) (RawExtractionPayload, error)
}

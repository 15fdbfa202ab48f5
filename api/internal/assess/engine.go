package assess

import "context"

// Engine assesses one food image, given as a data:image/...;base64 URI.
// Implementations return anticipated failures as *Failure so callers can
// normalize them with Normalize; anything else is an unexpected fault.
// Implementations must be safe for concurrent use.
type Engine interface {
	Name() string
	Assess(ctx context.Context, imageDataURI string) (Result, error)
}

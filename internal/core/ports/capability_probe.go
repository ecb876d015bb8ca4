package ports

import (
	"context"

	"fnbpos/internal/core/domain/model/fnb"
)

// CapabilityProbe reports what the backend currently offers. The result is
// a value handed to the caller; implementations must not remember it.
type CapabilityProbe interface {
	Probe(ctx context.Context) (fnb.Capabilities, error)
}

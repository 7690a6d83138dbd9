package devtools

import "context"

// Admin exposes debug/maintenance operations. It is injected where needed
// instead of living on a process-wide registry, so callers opt in explicitly.
type Admin interface {
	ResetDaily(ctx context.Context) error
	SeedHistory(ctx context.Context, days int) error
}

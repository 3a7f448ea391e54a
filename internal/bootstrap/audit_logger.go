package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger receives process-level events, server start and shutdown,
// outside the per-request audit trail.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

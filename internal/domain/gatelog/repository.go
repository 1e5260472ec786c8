package gatelog

import "context"

// GateLogRepository - interface for the gate_logs table. Append enforces the
// retention cap on every call; listings are newest first.
type GateLogRepository interface {
	Append(ctx context.Context, log GateLog) (GateLog, error)
	List(ctx context.Context) ([]GateLog, error)
	// Search matches the query case-insensitively against name, employee code
	// and details. An empty query matches everything; a nil typeFilter skips
	// type filtering.
	Search(ctx context.Context, query string, typeFilter *RecordType) ([]GateLog, error)
	Count(ctx context.Context) (int64, error)
}

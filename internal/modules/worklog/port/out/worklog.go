package out

import "context"

// StatusStore holds the single-line "current session" marker.
type StatusStore interface {
	ReadFirstLine(ctx context.Context) (string, error)
	// Overwrite replaces the whole file with line.
	Overwrite(ctx context.Context, line string) error
}

// HistoryStore is the append-only log of completed sessions.
type HistoryStore interface {
	AppendLine(ctx context.Context, line string) error
	ReadLines(ctx context.Context) ([]string, error)
}

// Initializer creates a backing file with initial content when it is missing.
type Initializer interface {
	Ensure(ctx context.Context, initial string) (bool, error)
}

package domain

import (
	"fmt"

	apperrors "rodomopo/internal/platform/errors"
)

type CorruptionKind string

const (
	KindUnknownStatus CorruptionKind = "unknown status"
	KindBadTimestamp  CorruptionKind = "bad timestamp"
	KindBadRecord     CorruptionKind = "bad record"
	KindBadDate       CorruptionKind = "bad date"
	KindBadDuration   CorruptionKind = "bad duration"
)

// CorruptionError reports a stored line that cannot be decoded. It matches
// apperrors.ErrCorrupt under errors.Is.
type CorruptionError struct {
	Kind  CorruptionKind
	Input string
	Err   error
}

func (e *CorruptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s in %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("%s in %q", e.Kind, e.Input)
}

func (e *CorruptionError) Unwrap() []error {
	if e.Err != nil {
		return []error{apperrors.ErrCorrupt, e.Err}
	}
	return []error{apperrors.ErrCorrupt}
}

func corrupt(kind CorruptionKind, input string, err error) error {
	return &CorruptionError{Kind: kind, Input: input, Err: err}
}

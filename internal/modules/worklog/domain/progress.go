package domain

import (
	"fmt"
	"math"
	"strings"

	apperrors "rodomopo/internal/platform/errors"
)

const (
	barFill   = "="
	barCursor = ">"
	barTrack  = "-"
)

// CompletedCells is round(worked*width/goal) clamped to [0, width].
func CompletedCells(worked, goal float64, width int) int {
	completed := math.Round(worked * float64(width) / goal)
	if math.IsNaN(completed) || completed < 0 {
		return 0
	}
	if completed > float64(width) {
		return width
	}
	return int(completed)
}

// RenderProgress draws "[====>-----]". The cursor is always present; with
// nothing completed it sits at position 0 ahead of the full track.
func RenderProgress(worked, goal float64, width int) (string, error) {
	if goal <= 0 {
		return "", fmt.Errorf("%w: goal must be positive, got %v", apperrors.ErrInvalidConfig, goal)
	}
	if width < 1 {
		return "", fmt.Errorf("%w: bar width must be at least 1, got %d", apperrors.ErrInvalidConfig, width)
	}
	completed := CompletedCells(worked, goal, width)
	fill := 0
	if completed > 0 {
		fill = completed - 1
	}

	var b strings.Builder
	b.Grow(width + 3)
	b.WriteString("[")
	b.WriteString(strings.Repeat(barFill, fill))
	b.WriteString(barCursor)
	b.WriteString(strings.Repeat(barTrack, width-completed))
	b.WriteString("]")
	return b.String(), nil
}

package contextx

import (
	"context"
	"fmt"
)

// CycleID маркирует один проход poll-and-decide цикла в логах.
type CycleID string

type contextKeyCycleID struct{}

func (c CycleID) String() string {
	return string(c)
}

func WithCycleID(ctx context.Context, cycleID CycleID) context.Context {
	return context.WithValue(ctx, contextKeyCycleID{}, cycleID)
}

func CycleIDFromContext(ctx context.Context) (CycleID, error) {
	cycleID, ok := ctx.Value(contextKeyCycleID{}).(CycleID)
	if !ok {
		return "", fmt.Errorf("cycle id: %w", ErrNoValue)
	}

	return cycleID, nil
}

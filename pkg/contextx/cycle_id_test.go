package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"salewatch/pkg/contextx"
)

func TestCycleID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var testCycleIDEmpty contextx.CycleID

	testCycleIDNotEmpty := contextx.CycleID("test-cycle-id")

	cycleID, err := contextx.CycleIDFromContext(ctx)
	rq.Equal(testCycleIDEmpty, cycleID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "cycle id: no value in context")

	ctx = contextx.WithCycleID(ctx, testCycleIDNotEmpty)

	cycleID, err = contextx.CycleIDFromContext(ctx)
	rq.Equal(testCycleIDNotEmpty, cycleID)
	rq.NoError(err)
}

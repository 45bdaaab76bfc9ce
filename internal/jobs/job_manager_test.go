package jobs_test

import (
	"testing"

	"foodorders/internal/adapters/out/memory"
	"foodorders/internal/jobs"
	"foodorders/internal/platform/observability"

	"github.com/stretchr/testify/require"
)

func TestJobManager_StartAndStop(t *testing.T) {
	manager := jobs.NewJobManager(newHandler(memory.NewStore()), jobs.DefaultOrderStatusSchedule,
		observability.DiscardLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartAll_InvalidSchedule(t *testing.T) {
	manager := jobs.NewJobManager(newHandler(memory.NewStore()), "61 * * * *", observability.DiscardLogger())

	err := manager.StartAll()

	require.ErrorContains(t, err, "failed to start order status job")
}

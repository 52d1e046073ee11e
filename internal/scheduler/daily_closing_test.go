package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/acai-control-api/infrastructure/repository/memory"
	"github.com/vfg2006/acai-control-api/internal/config"
	"github.com/vfg2006/acai-control-api/internal/usecases/reporting"
)

func newTestService(enabled bool) *DailyClosingService {
	store := memory.NewStore()
	reportingService := reporting.NewService(memory.NewSaleRepository(store))

	cfg := &config.Config{
		DailyClosing: config.DailyClosing{
			CronSchedule: "0 22 * * *",
			Enabled:      enabled,
		},
	}

	return NewDailyClosingService(reportingService, cfg)
}

func TestDailyClosingService_GetStatus(t *testing.T) {
	service := newTestService(true)

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 22 * * *", status["cron"])
	assert.Equal(t, time.Time{}, status["last_started_at"])
	assert.Equal(t, time.Time{}, status["last_completed_at"])
}

func TestDailyClosingService_RunDailyClosing(t *testing.T) {
	service := newTestService(true)

	service.runDailyClosing()

	status := service.GetStatus()
	assert.NotEqual(t, time.Time{}, status["last_started_at"])
	assert.NotEqual(t, time.Time{}, status["last_completed_at"])
	assert.False(t, service.running)
}

func TestDailyClosingService_StartDisabled(t *testing.T) {
	service := newTestService(false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Desabilitado não agenda nada e não retorna erro
	assert.NoError(t, service.Start(ctx))
	assert.Equal(t, time.Time{}, service.lastStartedAt)
}

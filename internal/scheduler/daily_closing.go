package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/acai-control-api/internal/config"
	"github.com/vfg2006/acai-control-api/internal/usecases/reporting"
)

// DailyClosingConfig representa a configuração do agendador de fechamento diário
type DailyClosingConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyClosingService agenda o fechamento do dia: ao final do expediente gera
// as estatísticas do dia e registra o resumo no log, servindo de conferência
// do caixa.
type DailyClosingService struct {
	scheduler        *gocron.Scheduler
	config           DailyClosingConfig
	reportingService reporting.ReportingService
	running          bool
	syncMutex        sync.Mutex
	lastStartedAt    time.Time
	lastCompletedAt  time.Time
}

// NewDailyClosingService cria uma nova instância do serviço de fechamento diário
func NewDailyClosingService(
	reportingService reporting.ReportingService,
	appConfig *config.Config,
) *DailyClosingService {
	closingConfig := DailyClosingConfig{
		CronSchedule: appConfig.DailyClosing.CronSchedule,
		Enabled:      appConfig.DailyClosing.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": closingConfig.CronSchedule,
		"enabled":       closingConfig.Enabled,
	}).Info("Configuração do agendador de fechamento diário carregada")

	return &DailyClosingService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           closingConfig,
		reportingService: reportingService,
	}
}

// Start inicia o agendador
func (s *DailyClosingService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Fechamento diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fechamento diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailyClosing()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento diário")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailyClosing calcula e registra o resumo do dia corrente
func (s *DailyClosingService) runDailyClosing() {
	s.syncMutex.Lock()
	if s.running {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento diário já em andamento, ignorando")
		return
	}
	s.running = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.running = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando fechamento diário")

	today := time.Now()
	stats, err := s.reportingService.DailyStats(&today)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular estatísticas do fechamento diário")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":              today.Format(time.DateOnly),
		"total_sales":       stats.TotalSales,
		"total_revenue":     stats.TotalRevenue,
		"total_commissions": stats.TotalCommissions,
		"top_vendor":        stats.TopVendor,
		"top_product":       stats.TopProduct,
		"duration":          time.Since(startTime).String(),
	}).Info("Fechamento diário concluído")

	s.lastCompletedAt = time.Now()
}

// TriggerManualRun inicia manualmente um fechamento diário
func (s *DailyClosingService) TriggerManualRun() {
	s.syncMutex.Lock()
	if s.running {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento diário já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento diário manual")
	go s.runDailyClosing()
}

// GetStatus retorna o status atual do agendador
func (s *DailyClosingService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
	}
}

// Package scheduler contém o serviço de agendamento da recomputação do feed
// de insights. A recomputação é idempotente e sem efeitos colaterais, então
// o job pode rodar a qualquer momento sem coordenação com os uploads.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/biznexus-api/infrastructure/repository"
	"github.com/vfg2006/biznexus-api/internal/config"
	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/internal/usecases/analyzing"
)

type InsightsRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// InsightsRefreshService recomputa o feed de insights em um cron diário e
// guarda o último feed calculado para consulta de status
type InsightsRefreshService struct {
	scheduler            *gocron.Scheduler
	datasetRepo          repository.DatasetRepository
	analyzer             analyzing.Analyzer
	config               InsightsRefreshConfig
	refreshMutex         sync.Mutex
	refreshRunning       bool
	lastRunStartedAt     time.Time
	lastRunCompletedAt   time.Time
	latestFeed           *domain.InsightFeed
	latestFeedComputedAt time.Time
}

func NewInsightsRefreshService(
	datasetRepo repository.DatasetRepository,
	analyzer analyzing.Analyzer,
	cfg *config.Config,
) *InsightsRefreshService {
	refreshConfig := InsightsRefreshConfig{
		CronSchedule: cfg.InsightsRefresh.CronSchedule, // Default: 6h da manhã todos os dias
		Enabled:      cfg.InsightsRefresh.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de recomputação de insights carregada")

	return &InsightsRefreshService{
		scheduler:   scheduler,
		datasetRepo: datasetRepo,
		analyzer:    analyzer,
		config:      refreshConfig,
	}
}

func (s *InsightsRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recomputação de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recomputação de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshInsights(); err != nil {
			logrus.WithError(err).Error("Erro na recomputação agendada de insights")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recomputação de insights: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recomputação de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshInsights reexecuta os agentes sobre o snapshot corrente e atualiza
// o cache do último feed. Também é o alvo do disparo manual via API.
func (s *InsightsRefreshService) RefreshInsights() error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		logrus.Warn("Recomputação de insights já está em execução")
		return nil
	}

	s.refreshRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.refreshRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando recomputação do feed de insights")

	snapshot := s.datasetRepo.Snapshot()
	feed := s.analyzer.AnalyzeAll(snapshot, time.Now())

	s.latestFeed = &feed
	s.latestFeedComputedAt = time.Now()

	critical := 0
	for _, insight := range feed.Insights {
		if insight.Type == domain.InsightCritical {
			critical++
		}
	}

	logrus.WithFields(logrus.Fields{
		"insights": len(feed.Insights),
		"critical": critical,
	}).Info("Recomputação do feed de insights concluída")

	return nil
}

// TriggerManualSync dispara a recomputação fora do agendamento (endpoint
// de cron). Roda em goroutine para não prender a resposta HTTP.
func (s *InsightsRefreshService) TriggerManualSync() {
	go func() {
		if err := s.RefreshInsights(); err != nil {
			logrus.WithError(err).Error("Erro na recomputação manual de insights")
		}
	}()
}

// LatestFeed devolve o último feed calculado pelo cron, se houver
func (s *InsightsRefreshService) LatestFeed() (*domain.InsightFeed, time.Time) {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()
	return s.latestFeed, s.latestFeedComputedAt
}

// Status devolve o estado corrente do job para o endpoint de cron
func (s *InsightsRefreshService) Status() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.refreshRunning,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt
	}
	if !s.lastRunCompletedAt.IsZero() {
		status["last_run_completed_at"] = s.lastRunCompletedAt
	}
	if !s.latestFeedComputedAt.IsZero() {
		status["latest_feed_computed_at"] = s.latestFeedComputedAt
	}

	return status
}

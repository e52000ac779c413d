package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/biznexus-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/biznexus-api/infrastructure/repository"
	"github.com/vfg2006/biznexus-api/internal/api/handler"
	"github.com/vfg2006/biznexus-api/internal/api/handler/router"
	"github.com/vfg2006/biznexus-api/internal/config"
	"github.com/vfg2006/biznexus-api/internal/scheduler"
	"github.com/vfg2006/biznexus-api/internal/usecases/analyzing"
	"github.com/vfg2006/biznexus-api/internal/usecases/chatting"
	"github.com/vfg2006/biznexus-api/internal/usecases/normalizing"
	"github.com/vfg2006/biznexus-api/internal/usecases/projecting"
	"github.com/vfg2006/biznexus-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	normalizer normalizing.Normalizer,
	datasetRepo repository.DatasetRepository,
	analyzer analyzing.Analyzer,
	chatService chatting.Chatter,
	projector projecting.Projector,
	integrator gemini.Integrator,
	insightsRefreshService *scheduler.InsightsRefreshService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		InsightsRefreshService: insightsRefreshService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Datasets(normalizer, datasetRepo)...),
		router.WithRoutes(handler.Insights(analyzer, datasetRepo)...),
		router.WithRoutes(handler.Chatting(chatService)...),
		router.WithRoutes(handler.Scenarios(projector, integrator)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

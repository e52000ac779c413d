package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/biznexus-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/biznexus-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/biznexus-api/infrastructure/repository"
	"github.com/vfg2006/biznexus-api/internal/api"
	"github.com/vfg2006/biznexus-api/internal/config"
	"github.com/vfg2006/biznexus-api/internal/scheduler"
	"github.com/vfg2006/biznexus-api/internal/usecases/analyzing"
	"github.com/vfg2006/biznexus-api/internal/usecases/chatting"
	"github.com/vfg2006/biznexus-api/internal/usecases/normalizing"
	"github.com/vfg2006/biznexus-api/internal/usecases/parsing"
	"github.com/vfg2006/biznexus-api/internal/usecases/projecting"
	"github.com/vfg2006/biznexus-api/internal/usecases/retrieving"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetRepo := repository.NewDatasetRepository()

	normalizer := normalizing.NewService()
	analyzer := analyzing.NewService()
	retriever := retrieving.NewService(cfg)
	projector := projecting.NewService()
	parser := parsing.NewService()

	// Cliente do Gemini só é criado com chave configurada; sem chave o
	// integrador opera em modo offline
	var client geminiclient.Client
	if cfg.Gemini.APIKey != "" {
		client, err = geminiclient.NewClient(ctx, cfg)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao criar cliente do Gemini")
		}
	}
	geminiIntegrator := gemini.New(cfg, client)

	chatService := chatting.NewService(datasetRepo, retriever, geminiIntegrator, parser)

	// Inicializa o agendador de recomputação do feed de insights
	insightsRefreshService := scheduler.NewInsightsRefreshService(datasetRepo, analyzer, cfg)

	if err := insightsRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recomputação de insights")
	} else {
		logrus.Info("Agendador de recomputação de insights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		normalizer,
		datasetRepo,
		analyzer,
		chatService,
		projector,
		geminiIntegrator,
		insightsRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

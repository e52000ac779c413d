package handler

import (
	"net/http"

	"github.com/vfg2006/biznexus-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/biznexus-api/infrastructure/repository"
	"github.com/vfg2006/biznexus-api/internal/api/handler/router"
	"github.com/vfg2006/biznexus-api/internal/usecases/analyzing"
	"github.com/vfg2006/biznexus-api/internal/usecases/chatting"
	"github.com/vfg2006/biznexus-api/internal/usecases/normalizing"
	"github.com/vfg2006/biznexus-api/internal/usecases/projecting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Datasets(normalizer normalizing.Normalizer, datasetRepo repository.DatasetRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/:kind",
			Method:  http.MethodPost,
			Handler: UploadDataset(normalizer, datasetRepo),
		},
		{
			Path:    "/v1/datasets/summary",
			Method:  http.MethodGet,
			Handler: GetDatasetSummary(datasetRepo),
		},
	}
}

func Insights(analyzer analyzing.Analyzer, datasetRepo repository.DatasetRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(analyzer, datasetRepo),
		},
	}
}

func Chatting(service chatting.Chatter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/chat",
			Method:  http.MethodPost,
			Handler: Chat(service),
		},
	}
}

func Scenarios(projector projecting.Projector, integrator gemini.Integrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scenarios/project",
			Method:  http.MethodPost,
			Handler: ProjectScenario(projector),
		},
		{
			Path:    "/v1/scenarios/explain",
			Method:  http.MethodPost,
			Handler: ExplainScenario(projector, integrator),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

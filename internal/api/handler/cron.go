package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/biznexus-api/internal/scheduler"
	"github.com/vfg2006/biznexus-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que pode ser executada manualmente
const (
	CronJobTypeInsights = "insights"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron disponíveis para disparo manual
type CronJobServices struct {
	InsightsRefreshService *scheduler.InsightsRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeInsights, CronJobTypeAll:
			if services.InsightsRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recomputação de insights não disponível", nil)
				return
			}
			services.InsightsRefreshService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido: "+cronType, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "triggered",
			"type":   cronType,
		})
	}
}

// GetCronStatus devolve o estado corrente das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.InsightsRefreshService != nil {
			status["insights"] = services.InsightsRefreshService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("cron: falha ao codificar status")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

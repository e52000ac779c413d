package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/biznexus-api/infrastructure/repository"
	"github.com/vfg2006/biznexus-api/internal/usecases/analyzing"
	"github.com/vfg2006/biznexus-api/pkg/log"
)

// GetInsights reexecuta os três agentes sobre o snapshot corrente e devolve
// o feed combinado. Os agentes são puros, então recomputar a cada requisição
// é seguro e dispensa invalidação de cache.
func GetInsights(analyzer analyzing.Analyzer, datasetRepo repository.DatasetRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := datasetRepo.Snapshot()
		feed := analyzer.AnalyzeAll(snapshot, time.Now())

		logger.WithFields(log.Fields{
			"insights": len(feed.Insights),
			"agents":   len(feed.Agents),
		}).Info("insights: feed recomputado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(feed); err != nil {
			logger.WithError(err).Error("insights: falha ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

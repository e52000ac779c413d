package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/biznexus-api/infrastructure/repository"
	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/internal/usecases/normalizing"
	"github.com/vfg2006/biznexus-api/pkg/apiErrors"
	"github.com/vfg2006/biznexus-api/pkg/log"
)

// UploadDataset recebe o CSV bruto de um tipo de dataset, normaliza e
// substitui o dataset daquele tipo (semântica de substituição de sessão).
// Linhas inválidas são descartadas pelo normalizador, nunca erro.
func UploadDataset(normalizer normalizing.Normalizer, datasetRepo repository.DatasetRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.DatasetKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
		logger.WithField("kind", string(kind)).Info("datasets: recebendo upload de CSV")

		rows, err := normalizer.ParseCSV(r.Body)
		if err != nil {
			logger.WithError(err).Warn("datasets: CSV ilegível")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "CSV inválido: "+err.Error(), nil)
			return
		}

		var kept int
		switch kind {
		case domain.DatasetSales:
			records := normalizer.NormalizeSales(rows)
			datasetRepo.ReplaceSales(records)
			kept = len(records)
		case domain.DatasetInventory:
			records := normalizer.NormalizeInventory(rows)
			datasetRepo.ReplaceInventory(records)
			kept = len(records)
		case domain.DatasetExpenses:
			records := normalizer.NormalizeExpenses(rows)
			datasetRepo.ReplaceExpenses(records)
			kept = len(records)
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownDatasetKind,
				"Tipo de dataset desconhecido: "+string(kind), nil)
			return
		}

		logger.WithFields(log.Fields{
			"kind":     string(kind),
			"raw_rows": len(rows),
			"kept":     kept,
		}).Info("datasets: dataset substituído")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"kind":     kind,
			"raw_rows": len(rows),
			"kept":     kept,
		}); err != nil {
			logger.WithError(err).Error("datasets: falha ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetDatasetSummary devolve a contagem de linhas por tipo de dataset
func GetDatasetSummary(datasetRepo repository.DatasetRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := datasetRepo.Snapshot()
		summary := map[string]any{
			"counts":     datasetRepo.Counts(),
			"updated_at": snapshot.UpdatedAt,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("datasets: falha ao codificar resumo")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

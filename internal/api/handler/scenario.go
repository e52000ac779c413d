package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/biznexus-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/internal/usecases/projecting"
	"github.com/vfg2006/biznexus-api/pkg/apiErrors"
	"github.com/vfg2006/biznexus-api/pkg/log"
)

// ScenarioRequest é o corpo dos endpoints de simulação what-if
type ScenarioRequest struct {
	Baseline []domain.ScenarioPoint `json:"baseline"`
	Deltas   domain.ScenarioDeltas  `json:"deltas"`
}

// ScenarioExplainResponse devolve a projeção mais a narrativa do modelo
type ScenarioExplainResponse struct {
	Projection domain.ScenarioProjection `json:"projection"`
	Analysis   string                    `json:"analysis"`
}

// ProjectScenario recalcula a série projetada para os deltas informados.
// Computação fechada e determinística — sem estado entre chamadas.
func ProjectScenario(projector projecting.Projector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request, ok := decodeScenarioRequest(w, r, logger)
		if !ok {
			return
		}

		projection := projector.Project(request.Baseline, request.Deltas)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(projection); err != nil {
			logger.WithError(err).Error("scenario: falha ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ExplainScenario projeta e pede ao modelo uma narrativa do cenário
func ExplainScenario(projector projecting.Projector, integrator gemini.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request, ok := decodeScenarioRequest(w, r, logger)
		if !ok {
			return
		}

		projection := projector.Project(request.Baseline, request.Deltas)

		analysis, err := integrator.ExplainScenario(r.Context(), projection)
		if err != nil {
			logger.WithError(err).Error("scenario: falha na análise do modelo")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao consultar o modelo", nil)
			return
		}

		response := ScenarioExplainResponse{
			Projection: projection,
			Analysis:   analysis,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("scenario: falha ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func decodeScenarioRequest(w http.ResponseWriter, r *http.Request, logger log.Logger) (*ScenarioRequest, bool) {
	var request ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.WithError(err).Warn("scenario: corpo de requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo de requisição inválido", nil)
		return nil, false
	}

	if len(request.Baseline) == 0 {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Série baseline é obrigatória", nil)
		return nil, false
	}

	return &request, true
}

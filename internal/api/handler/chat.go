package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/internal/usecases/chatting"
	"github.com/vfg2006/biznexus-api/pkg/apiErrors"
	"github.com/vfg2006/biznexus-api/pkg/log"
)

// ChatRequest é o corpo do endpoint de chat
type ChatRequest struct {
	Query   string            `json:"query"`
	History []domain.ChatTurn `json:"history"`
}

// Chat responde uma pergunta livre do usuário. Uma chamada ao modelo por
// requisição; falha do modelo é terminal e volta como erro de serviço
// externo — o caller decide reenviar.
func Chat(service chatting.Chatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("chat: corpo de requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo de requisição inválido", nil)
			return
		}

		if strings.TrimSpace(request.Query) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo query é obrigatório", nil)
			return
		}

		reply, err := service.Answer(r.Context(), request.Query, request.History)
		if err != nil {
			logger.WithError(err).Error("chat: falha ao responder pergunta")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao consultar o modelo", nil)
			return
		}

		logger.WithFields(log.Fields{
			"agent":        reply.Agent,
			"has_chart":    reply.Chart != nil,
			"has_schedule": reply.HasSchedule,
		}).Info("chat: resposta gerada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reply); err != nil {
			logger.WithError(err).Error("chat: falha ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

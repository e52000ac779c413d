// Package chatting orquestra o fluxo de uma pergunta do usuário: recuperação
// de contexto → chamada única ao LLM → extração de diretivas. Uma requisição
// em voo por mensagem; sobreposição de envios é responsabilidade do caller.
package chatting

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/biznexus-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/biznexus-api/infrastructure/repository"
	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/internal/usecases/parsing"
	"github.com/vfg2006/biznexus-api/internal/usecases/retrieving"
	"github.com/vfg2006/biznexus-api/pkg/log"
)

// Rótulos de agente exibidos junto à resposta
const (
	agentInventory = "Inventory Agent"
	agentSales     = "Sales Agent"
	agentMarketing = "Marketing Agent"
	agentGeneral   = "General Agent"
)

// Palavras-chave do roteador de agentes (pontuação por contagem de matches)
var (
	inventoryRouteKeywords = []string{
		"stock", "inventory", "reorder", "low", "out of stock",
		"warehouse", "supply", "supplier", "lead time",
	}
	salesRouteKeywords = []string{
		"sales", "revenue", "selling", "sold", "purchase",
		"transaction", "bought", "performance", "trend",
	}
	marketingRouteKeywords = []string{
		"marketing", "promote", "campaign", "bundle",
		"discount", "strategy", "promotion", "advertise",
	}
	generalRouteKeywords = []string{
		"hi", "hello", "hey", "help", "who are you", "what can you do", "greetings",
	}
)

// Chatter responde perguntas livres sobre os dados do negócio
type Chatter interface {
	Answer(ctx context.Context, query string, history []domain.ChatTurn) (*domain.ChatReply, error)
}

type Service struct {
	datasetRepo repository.DatasetRepository
	retriever   retrieving.Retriever
	integrator  gemini.Integrator
	parser      parsing.Parser
}

func NewService(
	datasetRepo repository.DatasetRepository,
	retriever retrieving.Retriever,
	integrator gemini.Integrator,
	parser parsing.Parser,
) Chatter {
	return &Service{
		datasetRepo: datasetRepo,
		retriever:   retriever,
		integrator:  integrator,
		parser:      parser,
	}
}

// Answer executa o pipeline completo para uma mensagem. A falha do LLM é
// terminal: sem retry, sem resposta parcial — o erro sobe para o handler.
func (s *Service) Answer(ctx context.Context, query string, history []domain.ChatTurn) (*domain.ChatReply, error) {
	snapshot := s.datasetRepo.Snapshot()
	payload := s.retriever.Build(query, snapshot)

	agent := routeAgent(query)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"agent":       agent,
		"sales_rows":  payload.RelevantSalesSummary.Count,
		"has_history": len(history) > 0,
	})
	logger.Info("chatting: contexto montado, chamando o modelo")

	replyText, err := s.integrator.Ask(ctx, query, payload, history)
	if err != nil {
		logger.WithError(err).Error("chatting: falha na chamada ao modelo")
		return nil, errors.Wrap(err, "erro ao consultar o modelo")
	}

	parsed := s.parser.Parse(replyText)

	return &domain.ChatReply{
		ParsedReply: parsed,
		Agent:       agent,
	}, nil
}

// routeAgent escolhe o rótulo do agente que responde, pela pontuação de
// palavras-chave. Saudações vencem só com maioria estrita; marketing ganha
// empates com estoque/vendas; vendas precisa superar estoque.
func routeAgent(query string) string {
	queryLower := strings.ToLower(query)

	inventoryScore := scoreKeywords(queryLower, inventoryRouteKeywords)
	salesScore := scoreKeywords(queryLower, salesRouteKeywords)
	marketingScore := scoreKeywords(queryLower, marketingRouteKeywords)
	generalScore := scoreKeywords(queryLower, generalRouteKeywords)

	switch {
	case generalScore > 0 && generalScore > max(inventoryScore, salesScore, marketingScore):
		return agentGeneral
	case marketingScore > 0 && marketingScore >= max(inventoryScore, salesScore):
		return agentMarketing
	case salesScore > inventoryScore:
		return agentSales
	case inventoryScore > 0:
		return agentInventory
	default:
		return agentGeneral
	}
}

func scoreKeywords(query string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(query, keyword) {
			score++
		}
	}
	return score
}

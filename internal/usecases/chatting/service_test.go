package chatting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/biznexus-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/biznexus-api/infrastructure/repository"
	"github.com/vfg2006/biznexus-api/internal/config"
	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/internal/usecases/parsing"
	"github.com/vfg2006/biznexus-api/internal/usecases/retrieving"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Chatter, *mocks.MockIntegrator) {
	ctrl := gomock.NewController(t)

	datasetRepo := repository.NewDatasetRepository()
	retriever := retrieving.NewService(&config.Config{
		Retrieval: config.Retrieval{
			MaxSalesRows:      50,
			MaxSalesSamples:   5,
			MaxRecentExpenses: 10,
		},
	})
	integrator := mocks.NewMockIntegrator(ctrl)

	return NewService(datasetRepo, retriever, integrator, parsing.NewService()), integrator
}

func TestService_Answer(t *testing.T) {
	t.Run("Pipeline completo: contexto, modelo e extração de diretivas", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			Ask(gomock.Any(), "how is my stock", gomock.Any(), gomock.Nil()).
			Return("All good. ```json suggestions\n[\"Reorder candles\"]\n```", nil)

		reply, err := service.Answer(context.Background(), "how is my stock", nil)
		require.NoError(t, err)

		assert.Equal(t, "Inventory Agent", reply.Agent)
		assert.Equal(t, "All good.", reply.DisplayText)
		assert.Equal(t, []string{"Reorder candles"}, reply.Suggestions)
	})

	t.Run("Histórico é repassado intacto ao integrador", func(t *testing.T) {
		service, integrator := newTestService(t)

		history := []domain.ChatTurn{
			{Sender: "user", Text: "hi"},
			{Sender: "ai", Text: "Hello! How can I help?"},
		}

		integrator.EXPECT().
			Ask(gomock.Any(), "and my sales trend?", gomock.Any(), history).
			Return("Trending up.", nil)

		reply, err := service.Answer(context.Background(), "and my sales trend?", history)
		require.NoError(t, err)
		assert.Equal(t, "Sales Agent", reply.Agent)
	})

	t.Run("Falha do modelo é terminal e o erro sobe embrulhado", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			Ask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("quota exceeded"))

		reply, err := service.Answer(context.Background(), "how much profit", nil)
		require.Error(t, err)
		assert.Nil(t, reply)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestRouteAgent(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"Pergunta de estoque vai para o agente de inventário", "how much stock is low", "Inventory Agent"},
		{"Pergunta de vendas vai para o agente de vendas", "sales trend", "Sales Agent"},
		{"Pergunta de marketing vai para o agente de marketing", "best marketing campaign", "Marketing Agent"},
		{"Saudação simples vai para o agente geral", "hello there", "General Agent"},
		{"Sem palavra-chave nenhuma cai no agente geral", "what about the weather", "General Agent"},
		{"Marketing ganha o empate contra vendas", "discount on sales", "Marketing Agent"},
		{"Vendas precisa superar estoque para vencer", "sold out of stock", "Inventory Agent"},
		{"Saudação só vence com maioria estrita", "hi, how is my stock", "Inventory Agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routeAgent(tt.query))
		})
	}
}

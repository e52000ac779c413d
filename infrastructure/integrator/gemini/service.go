// Package gemini integra o copiloto com o modelo da Google. O integrador
// monta o prompt RAG (guardrails + contexto JSON + pergunta) e trata o
// modelo como caixa-preta: texto entra, texto sai.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/biznexus-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/biznexus-api/internal/config"
	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/pkg/log"
	"github.com/vfg2006/biznexus-api/pkg/utils"
)

// OfflineReply é devolvida quando não há chave de API configurada —
// modo offline não é erro
const OfflineReply = "I am currently in Offline Mode. Please add a Gemini API Key in settings to enable advanced AI reasoning."

// Integrator é a fronteira com o LLM vista pelos usecases
type Integrator interface {
	// Ask responde a pergunta do usuário ancorada no contexto recuperado
	Ask(ctx context.Context, query string, payload domain.ContextPayload, history []domain.ChatTurn) (string, error)

	// ExplainScenario pede ao modelo uma narrativa do cenário simulado
	ExplainScenario(ctx context.Context, projection domain.ScenarioProjection) (string, error)

	// Online indica se há cliente configurado (chave de API presente)
	Online() bool
}

type GeminiIntegrator struct {
	client geminiclient.Client
}

// New cria o integrador; client nil ativa o modo offline
func New(cfg *config.Config, client geminiclient.Client) Integrator {
	if cfg.Gemini.APIKey == "" {
		log.L.Warn("gemini: chave de API ausente, operando em modo offline")
		return &GeminiIntegrator{client: nil}
	}

	return &GeminiIntegrator{client: client}
}

func (g *GeminiIntegrator) Online() bool {
	return g.client != nil
}

func (g *GeminiIntegrator) Ask(ctx context.Context, query string, payload domain.ContextPayload, history []domain.ChatTurn) (string, error) {
	if g.client == nil {
		return OfflineReply, nil
	}

	prompt := buildPrompt(query, payload, history)
	return g.client.GenerateText(ctx, prompt)
}

func (g *GeminiIntegrator) ExplainScenario(ctx context.Context, projection domain.ScenarioProjection) (string, error) {
	if g.client == nil {
		return OfflineReply, nil
	}

	prompt := fmt.Sprintf(`
You are an expert Business Co-Pilot for an MSME owner.
The owner is simulating a what-if scenario with these percentage changes:
marketing spend %+.0f%%, operating cost %+.0f%%, unit price %+.0f%%.

PROJECTED RESULT:
%s

GUIDELINES:
- Explain in plain language what drives the change in revenue and profit.
- Be concise and professional.
- Do not invent data.
`,
		projection.Deltas.MarketingPct,
		projection.Deltas.OpexPct,
		projection.Deltas.PricePct,
		utils.PrettyJson(projection),
	)

	return g.client.GenerateText(ctx, prompt)
}

// buildPrompt serializa o contexto recuperado dentro de um único prompt de
// texto, com os guardrails do copiloto
func buildPrompt(query string, payload domain.ContextPayload, history []domain.ChatTurn) string {
	var sb strings.Builder

	sb.WriteString(`
You are an expert Business Co-Pilot for an MSME owner.
Answer the user's question based strictly on the provided REAL-TIME DATA Context below.

CONTEXT DATA:
`)
	sb.WriteString(utils.PrettyJson(payload))

	if len(history) > 0 {
		sb.WriteString("\n\nCONVERSATION SO FAR:\n")
		for _, turn := range history {
			sb.WriteString(fmt.Sprintf("%s: %s\n", turn.Sender, turn.Text))
		}
	}

	sb.WriteString(fmt.Sprintf(`
USER QUESTION:
%q

GUIDELINES:
- Be concise and professional.
- Use specific numbers from the context.
- If the data doesn't answer the question, say "I don't have that information in my current records."
- Do not invent data.
`, query))

	return sb.String()
}

package analyzing

import (
	"time"

	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/pkg/log"
)

// Service executa os três agentes em fan-out sobre o mesmo snapshot e
// concatena os feeds. A ordem dos agentes é fixa para que o feed combinado
// seja determinístico.
type Service struct {
	agents []Agent
}

func NewService() Analyzer {
	return &Service{
		agents: []Agent{
			NewInventoryAgent(),
			NewFinanceAgent(),
			NewMarketingAgent(),
		},
	}
}

// AnalyzeAll reexecuta todos os agentes. A recomputação é idempotente e sem
// efeitos colaterais, então pode rodar a cada mutação de dataset sem travas.
func (s *Service) AnalyzeAll(snapshot domain.Snapshot, now time.Time) domain.InsightFeed {
	feed := domain.InsightFeed{
		Insights: make([]domain.Insight, 0),
		Agents:   make([]string, 0, len(s.agents)),
	}

	for _, agent := range s.agents {
		result := agent.Analyze(snapshot, now)

		feed.Insights = append(feed.Insights, result.Insights...)
		feed.Agents = append(feed.Agents, result.Agent)
		if result.Summary != nil {
			feed.Summary = result.Summary
		}

		log.L.WithFields(log.Fields{
			"agent":    result.Agent,
			"insights": len(result.Insights),
		}).Debug("analyzing: agente executado")
	}

	return feed
}

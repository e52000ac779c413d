// Package analyzing contém os agentes de análise baseados em regras. Cada
// agente é uma função pura e síncrona sobre o snapshot imutável: sem estado
// compartilhado, reexecutável a cada mudança de dados sem travas.
package analyzing

import (
	"time"

	"github.com/vfg2006/biznexus-api/internal/domain"
)

// Janela móvel usada por todos os agentes
const trailingWindowDays = 30

// Agent deriva insights tipados a partir do snapshot. O parâmetro now
// ancora a janela móvel e torna a análise determinística em testes.
type Agent interface {
	Name() string
	Analyze(snapshot domain.Snapshot, now time.Time) domain.AgentResult
}

// Analyzer executa os três agentes e combina o feed
type Analyzer interface {
	AnalyzeAll(snapshot domain.Snapshot, now time.Time) domain.InsightFeed
}

// unitsSoldBySKU agrega unidades vendidas por SKU na janela móvel.
// Cada agente recomputa a própria agregação: os agentes são independentes
// e não compartilham estado entre si.
func unitsSoldBySKU(sales []domain.SalesRecord, now time.Time) map[string]int {
	cutoff := now.AddDate(0, 0, -trailingWindowDays)

	totals := make(map[string]int)
	for _, sale := range sales {
		if !sale.Date.Before(cutoff) {
			totals[sale.SKUID] += sale.Quantity
		}
	}

	return totals
}

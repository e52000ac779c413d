package analyzing

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/biznexus-api/internal/domain"
)

// FinanceAgent monitora o fluxo de caixa da janela móvel de 30 dias
type FinanceAgent struct{}

func NewFinanceAgent() *FinanceAgent {
	return &FinanceAgent{}
}

func (a *FinanceAgent) Name() string {
	return "Finance Agent"
}

// Analyze soma receita e despesas da janela e emite exatamente um insight
// de fluxo de caixa (crítico se net < 0, sucesso caso contrário), sempre em
// primeiro, mais um aviso de margem apertada apenas quando 0 < margem < 10.
func (a *FinanceAgent) Analyze(snapshot domain.Snapshot, now time.Time) domain.AgentResult {
	cutoff := now.AddDate(0, 0, -trailingWindowDays)

	var revenue30d, expenses30d float64

	for _, sale := range snapshot.Sales {
		if !sale.Date.Before(cutoff) {
			revenue30d += sale.Revenue()
		}
	}

	for _, expense := range snapshot.Expenses {
		if !expense.Date.Before(cutoff) {
			expenses30d += expense.Amount
		}
	}

	net := revenue30d - expenses30d

	// Margem com guarda de divisão por zero
	margin := 0.0
	if revenue30d > 0 {
		margin = net / revenue30d * 100
	}

	insights := make([]domain.Insight, 0, 2)

	if net < 0 {
		insights = append(insights, domain.Insight{
			Type:           domain.InsightCritical,
			Category:       "Cash Flow Alert",
			Title:          "Negative Cash Flow (Last 30 Days)",
			Message:        fmt.Sprintf("You spent %.2f more than you earned.", math.Abs(net)),
			Recommendation: "Review non-essential expenses immediately or delay upcoming inventory purchases.",
			Confidence:     1.0,
		})
	} else {
		insights = append(insights, domain.Insight{
			Type:           domain.InsightSuccess,
			Category:       "Health Check",
			Title:          "Positive Cash Flow",
			Message:        fmt.Sprintf("Net positive by %.2f this month.", net),
			Recommendation: "Good time to reinvest in fast-moving inventory.",
			Confidence:     1.0,
		})
	}

	if margin < 10 && margin > 0 {
		insights = append(insights, domain.Insight{
			Type:           domain.InsightWarning,
			Category:       "Low Margin",
			Title:          "Tight Profit Margins",
			Message:        fmt.Sprintf("Operating at only %.1f%% margin.", margin),
			Recommendation: "Analyze pricing strategy or reduce variable costs.",
			Confidence:     0.95,
		})
	}

	return domain.AgentResult{
		Agent:    a.Name(),
		Insights: insights,
		Summary: &domain.FinanceSummary{
			Revenue30d:  revenue30d,
			Expenses30d: expenses30d,
			Net:         net,
		},
	}
}

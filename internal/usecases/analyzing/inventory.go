package analyzing

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/biznexus-api/internal/domain"
)

// Constantes de política de reposição para a cadeia de suprimentos de MPEs
const (
	leadTimeDays    = 7.0
	safetyStockDays = 14.0

	// Sentinela "efetivamente infinito" para SKUs sem velocidade de venda.
	// Evita divisão por zero e posiciona esses SKUs por último; não deve ser
	// usado como contagem real de dias em outras aritméticas.
	stockoutSentinelDays = 999.0
)

// InventoryAgent prevê rupturas de estoque e recomenda reposições
type InventoryAgent struct{}

func NewInventoryAgent() *InventoryAgent {
	return &InventoryAgent{}
}

func (a *InventoryAgent) Name() string {
	return "Inventory Agent"
}

type skuStats struct {
	totalSold int
	name      string
}

// Analyze classifica cada SKU pela distância até a ruptura. A escada de
// classificação é avaliada em ordem, primeira regra vencedora por SKU:
// crítico (< leadTime), aviso (< safetyStock), excesso (> 90 dias de
// cobertura com venda ativa), ou nenhum insight.
func (a *InventoryAgent) Analyze(snapshot domain.Snapshot, now time.Time) domain.AgentResult {
	cutoff := now.AddDate(0, 0, -trailingWindowDays)

	stats := make(map[string]skuStats)
	for _, sale := range snapshot.Sales {
		if sale.Date.Before(cutoff) {
			continue
		}
		stat := stats[sale.SKUID]
		stat.totalSold += sale.Quantity
		stat.name = sale.ProductName
		stats[sale.SKUID] = stat
	}

	insights := make([]domain.Insight, 0)

	for _, item := range snapshot.Inventory {
		stat, ok := stats[item.SKUID]
		if !ok {
			stat = skuStats{name: item.ProductName}
			if stat.name == "" {
				stat.name = "Unknown Product"
			}
		}

		dailyVelocity := float64(stat.totalSold) / trailingWindowDays
		currentStock := float64(item.Quantity)

		daysUntilStockout := stockoutSentinelDays
		if dailyVelocity > 0 {
			daysUntilStockout = currentStock / dailyVelocity
		}

		switch {
		case daysUntilStockout < leadTimeDays:
			reorderNeeded := int(math.Ceil(safetyStockDays*dailyVelocity - currentStock))

			insights = append(insights, domain.Insight{
				Type:     domain.InsightCritical,
				Category: "Stockout Risk",
				Title:    fmt.Sprintf("Low Stock Alert: %s", stat.name),
				Message:  fmt.Sprintf("Only %d days of stock remaining based on recent sales.", int(math.Floor(daysUntilStockout))),
				Recommendation: fmt.Sprintf(
					"Reorder %d units immediately to maintain safety stock.", reorderNeeded),
				Data: map[string]any{
					"sku":               item.SKUID,
					"currentStock":      item.Quantity,
					"dailyVelocity":     dailyVelocity,
					"daysUntilStockout": daysUntilStockout,
				},
				Confidence: 0.95,
			})

		case daysUntilStockout < safetyStockDays:
			insights = append(insights, domain.Insight{
				Type:           domain.InsightWarning,
				Category:       "Reorder Soon",
				Title:          fmt.Sprintf("Plan Reorder: %s", stat.name),
				Message:        fmt.Sprintf("Stock will likely be depleted in %d days.", int(math.Floor(daysUntilStockout))),
				Recommendation: "Check supplier availability.",
				Data: map[string]any{
					"sku":           item.SKUID,
					"currentStock":  item.Quantity,
					"dailyVelocity": dailyVelocity,
				},
				Confidence: 0.85,
			})

		case currentStock > dailyVelocity*90 && dailyVelocity > 0:
			insights = append(insights, domain.Insight{
				Type:           domain.InsightInfo,
				Category:       "Overstock Risk",
				Title:          fmt.Sprintf("Excess Inventory: %s", stat.name),
				Message:        "You have >3 months of supply. Money is tied up here.",
				Recommendation: "Consider running a promotion to clear space.",
				Data: map[string]any{
					"sku":           item.SKUID,
					"currentStock":  item.Quantity,
					"dailyVelocity": dailyVelocity,
				},
				Confidence: 0.90,
			})
		}
	}

	// Ordenação parcial estável: críticos antes de todos os demais; pares
	// sem crítico comparam iguais e preservam a ordem de inserção
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Type == domain.InsightCritical && insights[j].Type != domain.InsightCritical
	})

	return domain.AgentResult{
		Agent:    a.Name(),
		Insights: insights,
	}
}

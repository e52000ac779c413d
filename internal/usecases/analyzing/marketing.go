package analyzing

import (
	"fmt"
	"time"

	"github.com/vfg2006/biznexus-api/internal/domain"
)

// Limiares de oportunidade de marketing
const (
	deadStockMinUnits    = 5
	bestsellerMinSold30d = 20
)

// MarketingAgent identifica oportunidades e gera conteúdo promocional
type MarketingAgent struct{}

func NewMarketingAgent() *MarketingAgent {
	return &MarketingAgent{}
}

func (a *MarketingAgent) Name() string {
	return "Marketing Agent"
}

// Analyze aplica duas regras independentes por item de estoque: estoque
// parado (zero vendas em 30d com estoque > 5) e hype de mais vendido
// (> 20 unidades em 30d). As regras não são mutuamente exclusivas — ambas
// podem disparar para o mesmo SKU.
func (a *MarketingAgent) Analyze(snapshot domain.Snapshot, now time.Time) domain.AgentResult {
	sold := unitsSoldBySKU(snapshot.Sales, now)

	insights := make([]domain.Insight, 0)

	for _, item := range snapshot.Inventory {
		sold30d := sold[item.SKUID]
		currentStock := item.Quantity

		if sold30d == 0 && currentStock > deadStockMinUnits {
			insights = append(insights, domain.Insight{
				Type:           domain.InsightOpportunity,
				Category:       "Dead Stock Clearance",
				Title:          fmt.Sprintf("Clearance: %s", item.ProductName),
				Message:        fmt.Sprintf("0 units sold in 30 days. %d units sitting idle.", currentStock),
				Recommendation: `Run a "Flash Sale" to recover cash.`,
				Content: &domain.InsightContent{
					Platform: "WhatsApp/Instagram",
					Text: fmt.Sprintf(
						"🔥 FLASH SALE! We need to make room for new stock. Get our %s at a special price for the next 24 hours only! DM to order. #Clearance #Deal",
						item.ProductName),
				},
				Confidence: 0.9,
			})
		}

		if sold30d > bestsellerMinSold30d {
			insights = append(insights, domain.Insight{
				Type:           domain.InsightOpportunity,
				Category:       "Bestseller Hype",
				Title:          fmt.Sprintf("Trending: %s", item.ProductName),
				Message:        fmt.Sprintf("Selling fast (%d sold recently). Leverage this momentum.", sold30d),
				Recommendation: `Post a "Low Stock" or "Customer Favorite" update.`,
				Content: &domain.InsightContent{
					Platform: "Instagram Story",
					Text: fmt.Sprintf(
						"Our %s is flying off the shelves! 🚀 Only %d left. Grab yours before they're gone!",
						item.ProductName, currentStock),
				},
				Confidence: 0.85,
			})
		}
	}

	return domain.AgentResult{
		Agent:    a.Name(),
		Insights: insights,
	}
}

package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/biznexus-api/internal/domain"
)

func TestMarketingAgent_Analyze(t *testing.T) {
	agent := NewMarketingAgent()

	tests := []struct {
		name     string
		snapshot domain.Snapshot
		validate func(t *testing.T, result domain.AgentResult)
	}{
		{
			name: "Estoque parado com mais de 5 unidades gera oportunidade de liquidação",
			snapshot: domain.Snapshot{
				Inventory: []domain.InventoryRecord{{SKUID: "Z9", ProductName: "Dusty Vase", Quantity: 12}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				require.Len(t, result.Insights, 1)
				insight := result.Insights[0]

				assert.Equal(t, domain.InsightOpportunity, insight.Type)
				assert.Equal(t, "Dead Stock Clearance", insight.Category)
				assert.Equal(t, 0.9, insight.Confidence)

				require.NotNil(t, insight.Content)
				assert.Equal(t, "WhatsApp/Instagram", insight.Content.Platform)
				assert.Contains(t, insight.Content.Text, "FLASH SALE")
				assert.Contains(t, insight.Content.Text, "Dusty Vase")
			},
		},
		{
			name: "Estoque parado com 5 unidades ou menos não dispara",
			snapshot: domain.Snapshot{
				Inventory: []domain.InventoryRecord{{SKUID: "Z9", ProductName: "Dusty Vase", Quantity: 5}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				assert.Empty(t, result.Insights)
			},
		},
		{
			name: "Mais vendido acima de 20 unidades gera conteúdo de hype",
			snapshot: domain.Snapshot{
				Sales:     salesFor("A1", "Candle", 21),
				Inventory: []domain.InventoryRecord{{SKUID: "A1", ProductName: "Candle", Quantity: 8}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				require.Len(t, result.Insights, 1)
				insight := result.Insights[0]

				assert.Equal(t, "Bestseller Hype", insight.Category)
				assert.Equal(t, 0.85, insight.Confidence)

				require.NotNil(t, insight.Content)
				assert.Equal(t, "Instagram Story", insight.Content.Platform)
				assert.Contains(t, insight.Content.Text, "Only 8 left")
			},
		},
		{
			name: "Exatamente 20 unidades vendidas não é mais vendido",
			snapshot: domain.Snapshot{
				Sales:     salesFor("A1", "Candle", 20),
				Inventory: []domain.InventoryRecord{{SKUID: "A1", ProductName: "Candle", Quantity: 8}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				assert.Empty(t, result.Insights)
			},
		},
		{
			name: "Vendas antigas não impedem a regra de estoque parado",
			snapshot: domain.Snapshot{
				Sales: []domain.SalesRecord{{
					Date:     testNow.AddDate(0, 0, -45),
					SKUID:    "Z9",
					Quantity: 3,
				}},
				Inventory: []domain.InventoryRecord{{SKUID: "Z9", ProductName: "Dusty Vase", Quantity: 10}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				require.Len(t, result.Insights, 1)
				assert.Equal(t, "Dead Stock Clearance", result.Insights[0].Category)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := agent.Analyze(tt.snapshot, testNow)
			assert.Equal(t, "Marketing Agent", result.Agent)
			assert.Nil(t, result.Summary)
			tt.validate(t, result)
		})
	}
}

// As regras não são mutuamente exclusivas entre SKUs distintos do snapshot
func TestMarketingAgent_BothRulesAcrossSnapshot(t *testing.T) {
	agent := NewMarketingAgent()

	snapshot := domain.Snapshot{
		Sales: salesFor("HOT", "Hot Sauce", 25),
		Inventory: []domain.InventoryRecord{
			{SKUID: "HOT", ProductName: "Hot Sauce", Quantity: 4},
			{SKUID: "COLD", ProductName: "Cold Brew Kit", Quantity: 30},
		},
	}

	result := agent.Analyze(snapshot, testNow)
	require.Len(t, result.Insights, 2)

	categories := []string{result.Insights[0].Category, result.Insights[1].Category}
	assert.Contains(t, categories, "Bestseller Hype")
	assert.Contains(t, categories, "Dead Stock Clearance")
}

package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/biznexus-api/internal/domain"
)

// Data de referência fixa para ancorar a janela móvel nos testes
var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// salesFor gera vendas uniformes de um SKU dentro da janela de 30 dias
func salesFor(sku, name string, totalUnits int) []domain.SalesRecord {
	sales := make([]domain.SalesRecord, 0, totalUnits)
	for i := 0; i < totalUnits; i++ {
		sales = append(sales, domain.SalesRecord{
			Date:        testNow.AddDate(0, 0, -(i % 25)),
			OrderID:     "ORD",
			SKUID:       sku,
			ProductName: name,
			Quantity:    1,
			Price:       10,
			Channel:     "Direct",
		})
	}
	return sales
}

func TestInventoryAgent_Analyze(t *testing.T) {
	agent := NewInventoryAgent()

	tests := []struct {
		name     string
		snapshot domain.Snapshot
		validate func(t *testing.T, result domain.AgentResult)
	}{
		{
			name: "Estoque abaixo do lead time gera alerta crítico com quantidade de reposição",
			snapshot: domain.Snapshot{
				// 30 unidades em 30 dias: velocidade 1/dia; 5 em estoque -> 5 dias
				Sales:     salesFor("A1", "Candle", 30),
				Inventory: []domain.InventoryRecord{{SKUID: "A1", ProductName: "Candle", Quantity: 5}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				require.Len(t, result.Insights, 1)
				insight := result.Insights[0]

				assert.Equal(t, domain.InsightCritical, insight.Type)
				assert.Equal(t, "Stockout Risk", insight.Category)
				assert.Equal(t, 0.95, insight.Confidence)
				// ceil(14 * 1.0 - 5) = 9 unidades
				assert.Contains(t, insight.Recommendation, "Reorder 9 units")
			},
		},
		{
			name: "Cenário de 7.5 dias fica em aviso, não crítico",
			snapshot: domain.Snapshot{
				// 40 unidades em 30 dias: velocidade 1.33/dia; 10 em estoque -> 7.5 dias
				Sales:     salesFor("A1", "Candle", 40),
				Inventory: []domain.InventoryRecord{{SKUID: "A1", ProductName: "Candle", Quantity: 10}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				require.Len(t, result.Insights, 1)
				insight := result.Insights[0]

				assert.Equal(t, domain.InsightWarning, insight.Type)
				assert.Equal(t, "Reorder Soon", insight.Category)
				assert.Equal(t, 0.85, insight.Confidence)
				assert.Equal(t, "Check supplier availability.", insight.Recommendation)
			},
		},
		{
			name: "Mais de 90 dias de cobertura com venda ativa gera insight de excesso",
			snapshot: domain.Snapshot{
				// velocidade 1/dia; 100 em estoque -> 100 dias de cobertura
				Sales:     salesFor("A1", "Candle", 30),
				Inventory: []domain.InventoryRecord{{SKUID: "A1", ProductName: "Candle", Quantity: 100}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				require.Len(t, result.Insights, 1)
				insight := result.Insights[0]

				assert.Equal(t, domain.InsightInfo, insight.Type)
				assert.Equal(t, "Overstock Risk", insight.Category)
				assert.Equal(t, 0.90, insight.Confidence)
			},
		},
		{
			name: "Cobertura confortável não gera insight",
			snapshot: domain.Snapshot{
				// velocidade 1/dia; 50 em estoque -> 50 dias (entre 14 e 90)
				Sales:     salesFor("A1", "Candle", 30),
				Inventory: []domain.InventoryRecord{{SKUID: "A1", ProductName: "Candle", Quantity: 50}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				assert.Empty(t, result.Insights)
			},
		},
		{
			name: "SKU sem velocidade recebe sentinela e não gera insight de estoque",
			snapshot: domain.Snapshot{
				Sales:     nil,
				Inventory: []domain.InventoryRecord{{SKUID: "Z9", ProductName: "Dusty", Quantity: 10}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				assert.Empty(t, result.Insights)
			},
		},
		{
			name: "Vendas fora da janela de 30 dias não contam",
			snapshot: domain.Snapshot{
				Sales: []domain.SalesRecord{{
					Date:     testNow.AddDate(0, 0, -31),
					SKUID:    "A1",
					Quantity: 100,
				}},
				Inventory: []domain.InventoryRecord{{SKUID: "A1", ProductName: "Candle", Quantity: 10}},
			},
			validate: func(t *testing.T, result domain.AgentResult) {
				assert.Empty(t, result.Insights)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := agent.Analyze(tt.snapshot, testNow)
			assert.Equal(t, "Inventory Agent", result.Agent)
			tt.validate(t, result)
		})
	}
}

func TestInventoryAgent_CriticalFirstOrdering(t *testing.T) {
	agent := NewInventoryAgent()

	snapshot := domain.Snapshot{
		Sales: append(append(
			salesFor("WARN", "Warning Item", 40), // 10 em estoque -> 7.5 dias
			salesFor("CRIT", "Critical Item", 30)...), // 5 em estoque -> 5 dias
			salesFor("OVER", "Overstock Item", 30)...), // 100 em estoque -> 100 dias
		Inventory: []domain.InventoryRecord{
			{SKUID: "WARN", ProductName: "Warning Item", Quantity: 10},
			{SKUID: "OVER", ProductName: "Overstock Item", Quantity: 100},
			{SKUID: "CRIT", ProductName: "Critical Item", Quantity: 5},
		},
	}

	result := agent.Analyze(snapshot, testNow)
	require.Len(t, result.Insights, 3)

	// Críticos vêm antes de todos os demais; o restante preserva a ordem
	// de inserção (ordenação parcial estável)
	assert.Equal(t, domain.InsightCritical, result.Insights[0].Type)
	assert.Equal(t, domain.InsightWarning, result.Insights[1].Type)
	assert.Equal(t, domain.InsightInfo, result.Insights[2].Type)
}

func TestInventoryAgent_ClassificationIsOrderIndependent(t *testing.T) {
	agent := NewInventoryAgent()

	sales := append(salesFor("A1", "Candle", 30), salesFor("B2", "Soap", 40)...)
	inventory := []domain.InventoryRecord{
		{SKUID: "A1", ProductName: "Candle", Quantity: 5},
		{SKUID: "B2", ProductName: "Soap", Quantity: 10},
	}
	reversed := []domain.InventoryRecord{inventory[1], inventory[0]}

	classify := func(result domain.AgentResult) map[string]domain.InsightType {
		byType := make(map[string]domain.InsightType)
		for _, insight := range result.Insights {
			byType[insight.Data["sku"].(string)] = insight.Type
		}
		return byType
	}

	first := classify(agent.Analyze(domain.Snapshot{Sales: sales, Inventory: inventory}, testNow))
	second := classify(agent.Analyze(domain.Snapshot{Sales: sales, Inventory: reversed}, testNow))

	// Reordenar a lista de SKUs nunca muda a classificação individual
	assert.Equal(t, first, second)
}

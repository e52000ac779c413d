// Package retrieving seleciona a fatia de dados relevante para a pergunta
// do usuário antes da chamada ao LLM. É um pré-filtro por palavras-chave
// para limitar o tamanho do prompt, não uma busca vetorial — recall não é
// garantido por contrato.
package retrieving

import (
	"strings"

	"github.com/vfg2006/biznexus-api/internal/config"
	"github.com/vfg2006/biznexus-api/internal/domain"
)

// Marcadores textuais que informam ao modelo o modo da consulta
const (
	noInventoryMatched  = "No specific inventory matched"
	financeNotRequested = "Not requested"
	generalQueryNote    = "If no specific keyword matched, this is a general query."
)

// Palavras-chave que anexam o bloco de contexto financeiro
var financeKeywords = []string{"cash", "money", "profit", "expense", "finance"}

// Palavras-chave que forçam a inclusão do estoque completo
var inventoryKeywords = []string{"stock", "inventory"}

// Retriever monta o payload de contexto limitado para o LLM
type Retriever interface {
	Build(query string, snapshot domain.Snapshot) domain.ContextPayload
}

type Service struct {
	maxSalesRows      int
	maxSalesSamples   int
	maxRecentExpenses int
}

func NewService(cfg *config.Config) Retriever {
	return &Service{
		maxSalesRows:      cfg.Retrieval.MaxSalesRows,
		maxSalesSamples:   cfg.Retrieval.MaxSalesSamples,
		maxRecentExpenses: cfg.Retrieval.MaxRecentExpenses,
	}
}

// Build filtra vendas por nome de produto/canal, estoque por nome de produto
// ou gatilho literal de palavra-chave, e anexa o bloco financeiro apenas
// quando a pergunta menciona finanças.
func (s *Service) Build(query string, snapshot domain.Snapshot) domain.ContextPayload {
	queryLower := strings.ToLower(query)

	// 1. Filtrar vendas (mais recentes primeiro, limitado — é um teto de
	// tamanho de prompt, não um ranking real)
	relevantSales := make([]domain.SalesRecord, 0)
	for i := len(snapshot.Sales) - 1; i >= 0 && len(relevantSales) < s.maxSalesRows; i-- {
		sale := snapshot.Sales[i]
		if strings.Contains(strings.ToLower(sale.ProductName), queryLower) ||
			strings.Contains(strings.ToLower(sale.Channel), queryLower) {
			relevantSales = append(relevantSales, sale)
		}
	}

	// 2. Filtrar estoque
	includeAllInventory := containsAny(queryLower, inventoryKeywords)

	relevantInventory := make([]domain.InventoryRecord, 0)
	for _, item := range snapshot.Inventory {
		if includeAllInventory || strings.Contains(strings.ToLower(item.ProductName), queryLower) {
			relevantInventory = append(relevantInventory, item)
		}
	}

	// 3. Bloco financeiro apenas sob gatilho de palavra-chave
	var financeContext any = financeNotRequested
	if containsAny(queryLower, financeKeywords) {
		recentExpenses := snapshot.Expenses
		if len(recentExpenses) > s.maxRecentExpenses {
			recentExpenses = recentExpenses[:s.maxRecentExpenses]
		}

		totalRevenue := 0.0
		for _, sale := range relevantSales {
			totalRevenue += sale.Revenue()
		}

		financeContext = domain.FinanceContext{
			RecentExpenses:        recentExpenses,
			TotalRevenueEstimates: totalRevenue,
		}
	}

	// 4. Montar o payload
	samples := relevantSales
	if len(samples) > s.maxSalesSamples {
		samples = samples[:s.maxSalesSamples]
	}

	var inventory any = relevantInventory
	if len(relevantInventory) == 0 {
		inventory = noInventoryMatched
	}

	return domain.ContextPayload{
		Topic:             "Business Query",
		RelevantInventory: inventory,
		RelevantSalesSummary: domain.SalesContextSummary{
			Count:   len(relevantSales),
			Samples: samples,
		},
		FinanceContext:       financeContext,
		FullContextAvailable: generalQueryNote,
	}
}

func containsAny(query string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}

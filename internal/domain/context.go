package domain

// SalesContextSummary resume a fatia de vendas relevante enviada ao modelo.
// Mantemos a contagem total mas apenas algumas amostras para limitar o prompt.
type SalesContextSummary struct {
	Count   int           `json:"count"`
	Samples []SalesRecord `json:"samples"`
}

// FinanceContext é anexado apenas quando a pergunta menciona finanças
type FinanceContext struct {
	RecentExpenses        []ExpenseRecord `json:"recentExpenses"`
	TotalRevenueEstimates float64         `json:"totalRevenueEstimates"`
}

// ContextPayload é a fatia de dados selecionada por palavras-chave para o LLM.
// É um pré-filtro heurístico para limitar o tamanho do prompt, não uma busca
// semântica — os marcadores textuais sinalizam ao modelo se a pergunta casou
// com algo específico ("narrow") ou se é uma consulta geral.
type ContextPayload struct {
	Topic                string              `json:"topic"`
	RelevantInventory    any                 `json:"relevantInventory"`
	RelevantSalesSummary SalesContextSummary `json:"relevantSalesSummary"`
	FinanceContext       any                 `json:"financeContext"`
	FullContextAvailable string              `json:"fullContextAvailable"`
}

// ChatTurn é uma mensagem anterior da conversa repassada ao modelo
type ChatTurn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

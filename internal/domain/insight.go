package domain

// InsightType classifica a severidade/natureza de um insight
type InsightType string

const (
	InsightCritical    InsightType = "critical"
	InsightWarning     InsightType = "warning"
	InsightInfo        InsightType = "info"
	InsightSuccess     InsightType = "success"
	InsightOpportunity InsightType = "opportunity"
)

// InsightContent carrega o texto promocional gerado para um canal específico
type InsightContent struct {
	Platform string `json:"platform"`
	Text     string `json:"text"`
}

// Insight é o registro tipado e priorizado emitido pelos agentes de análise.
// Insights são transientes: recalculados a cada mudança de dataset, sem
// identidade persistente entre recomputações.
type Insight struct {
	Type           InsightType     `json:"type"`
	Category       string          `json:"category"`
	Title          string          `json:"title"`
	Message        string          `json:"message"`
	Recommendation string          `json:"recommendation"`
	Data           map[string]any  `json:"data,omitempty"`
	Content        *InsightContent `json:"content,omitempty"`
	Confidence     float64         `json:"confidence"`
}

// FinanceSummary resume o fluxo de caixa da janela móvel de 30 dias
type FinanceSummary struct {
	Revenue30d  float64 `json:"revenue_30d"`
	Expenses30d float64 `json:"expenses_30d"`
	Net         float64 `json:"net"`
}

// AgentResult é a saída de um único agente de análise
type AgentResult struct {
	Agent    string          `json:"agent"`
	Insights []Insight       `json:"insights"`
	Summary  *FinanceSummary `json:"summary,omitempty"`
}

// InsightFeed combina a saída dos três agentes para o feed da UI
type InsightFeed struct {
	Insights []Insight       `json:"insights"`
	Summary  *FinanceSummary `json:"summary,omitempty"`
	Agents   []string        `json:"agents"`
}

package domain

// ScenarioPoint é uma linha por período da série de cenário. Os campos
// Projected* são preenchidos apenas pelo projetor e nunca persistidos
// separados da baseline que os originou.
type ScenarioPoint struct {
	Period           string  `json:"period"`
	BaselineRevenue  float64 `json:"baseline_revenue"`
	BaselineProfit   float64 `json:"baseline_profit"`
	ProjectedRevenue float64 `json:"projected_revenue,omitempty"`
	ProjectedProfit  float64 `json:"projected_profit,omitempty"`
}

// ScenarioDeltas são os três controles percentuais do simulador
type ScenarioDeltas struct {
	MarketingPct float64 `json:"marketing_pct"`
	OpexPct      float64 `json:"opex_pct"`
	PricePct     float64 `json:"price_pct"`
}

// ScenarioStats agrega a série projetada (somas por período)
type ScenarioStats struct {
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Margin  float64 `json:"margin"`
}

// ScenarioProjection é a resposta completa do simulador
type ScenarioProjection struct {
	Series    []ScenarioPoint `json:"series"`
	Projected ScenarioStats   `json:"projected"`
	Baseline  ScenarioStats   `json:"baseline"`
	Deltas    ScenarioDeltas  `json:"deltas"`
}

// Package projecting implementa a simulação what-if de elasticidade:
// projeção determinística e sem estado da série baseline sob choques
// percentuais compostos de marketing, custo operacional e preço.
package projecting

import (
	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/pkg/utils"
)

// Premissas de elasticidade do modelo fechado:
// marketing +10% de gasto -> +8% de volume (retorno decrescente);
// preço +10% -> -5% de volume (elasticidade -0.5);
// decomposição de custo como frações fixas da receita baseline.
const (
	marketingElasticity = 0.8
	priceElasticity     = -0.5

	cogsRatio      = 0.60 // escala com volume
	marketingRatio = 0.15 // escala com o choque de marketing
	opexRatio      = 0.10 // escala com o choque de opex, senão fixo
)

// Projector projeta a série de cenário a partir da baseline e dos deltas
type Projector interface {
	Project(baseline []domain.ScenarioPoint, deltas domain.ScenarioDeltas) domain.ScenarioProjection
}

type Service struct{}

func NewService() Projector {
	return &Service{}
}

// Project recalcula a série inteira a cada mudança de slider. Com deltas
// zero a identidade vale: projetado == baseline em todos os períodos.
func (s *Service) Project(baseline []domain.ScenarioPoint, deltas domain.ScenarioDeltas) domain.ScenarioProjection {
	volumeEffect := deltas.MarketingPct/100*marketingElasticity + deltas.PricePct/100*priceElasticity
	priceMultiplier := 1 + deltas.PricePct/100

	series := make([]domain.ScenarioPoint, 0, len(baseline))

	var baseRevenue, baseProfit, projRevenue, projProfit float64

	for _, point := range baseline {
		newVolume := point.BaselineRevenue * (1 + volumeEffect)
		newRevenue := newVolume * priceMultiplier

		// O custo baseline é ancorado no lucro baseline para que o choque
		// zero seja identidade; os choques movem cada fatia de custo pela
		// sua razão fixa sobre a receita baseline.
		baselineCost := point.BaselineRevenue - point.BaselineProfit
		cogsDelta := point.BaselineRevenue * cogsRatio * volumeEffect
		marketingDelta := point.BaselineRevenue * marketingRatio * (deltas.MarketingPct / 100)
		opexDelta := point.BaselineRevenue * opexRatio * (deltas.OpexPct / 100)

		newProfit := newRevenue - (baselineCost + cogsDelta + marketingDelta + opexDelta)

		projected := point
		projected.ProjectedRevenue = newRevenue
		projected.ProjectedProfit = newProfit
		series = append(series, projected)

		baseRevenue += point.BaselineRevenue
		baseProfit += point.BaselineProfit
		projRevenue += newRevenue
		projProfit += newProfit
	}

	return domain.ScenarioProjection{
		Series:    series,
		Baseline:  stats(baseRevenue, baseProfit),
		Projected: stats(projRevenue, projProfit),
		Deltas:    deltas,
	}
}

// stats agrega totais com margem protegida contra receita zero
func stats(revenue, profit float64) domain.ScenarioStats {
	margin := 0.0
	if revenue != 0 {
		margin = profit / revenue * 100
	}

	return domain.ScenarioStats{
		Revenue: utils.RoundWithTwoDecimalPlace(revenue),
		Profit:  utils.RoundWithTwoDecimalPlace(profit),
		Margin:  utils.RoundWithTwoDecimalPlace(margin),
	}
}

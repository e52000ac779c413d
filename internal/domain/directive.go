package domain

// ChartDirective é o payload de gráfico embutido pelo modelo na resposta
type ChartDirective struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Data  []any  `json:"data"`
}

// ActionDirective é uma ação executável sugerida pelo modelo
type ActionDirective struct {
	Label string `json:"label"`
	Type  string `json:"type"`
}

// ParsedReply é o resultado da extração de diretivas de uma resposta do LLM:
// o texto de exibição sem os blocos consumidos mais os payloads estruturados.
// O conteúdo do bloco de agendamento não é interpretado aqui — a presença
// (HasSchedule) sinaliza ao colaborador de agenda que fará a escrita real.
type ParsedReply struct {
	DisplayText string            `json:"display_text"`
	Chart       *ChartDirective   `json:"chart,omitempty"`
	Actions     []ActionDirective `json:"actions,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
	HasSchedule bool              `json:"has_schedule"`
}

// ChatReply é a resposta completa do endpoint de chat
type ChatReply struct {
	ParsedReply
	Agent string `json:"agent"`
}

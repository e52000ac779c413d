// Package parsing extrai as diretivas estruturadas embutidas na resposta
// livre do LLM: blocos JSON cercados (```json <tag> ... ```) de agenda,
// sugestões, ações e gráfico.
//
// Invariante documentado: a ordem de extração agenda → sugestões → ações →
// gráfico genérico é obrigatória. O padrão genérico de gráfico não exige
// tag e consumiria qualquer bloco anterior se avaliado antes — a ordem é
// comportamento de contrato, não acidente de layout do código.
package parsing

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/pkg/log"
)

// Parser extrai diretivas de uma resposta do modelo
type Parser interface {
	Parse(replyText string) domain.ParsedReply
}

var (
	scheduleRegex   = regexp.MustCompile("(?s)```json schedule\\s*(.*?)\\s*```")
	suggestionRegex = regexp.MustCompile("(?s)```json suggestions\\s*(.*?)\\s*```")
	actionRegex     = regexp.MustCompile("(?s)```json actions\\s*(.*?)\\s*```")
	chartRegex      = regexp.MustCompile("(?s)```json(?: chart)?\\s*(.*?)\\s*```")
)

type Service struct{}

func NewService() Parser {
	return &Service{}
}

// Parse varre o texto contra a lista ordenada de (tag, validador). Cada
// categoria reconhece apenas a primeira ocorrência; validação que falha é
// engolida (log-and-continue) e o bloco permanece no texto de exibição.
// Sem nenhum bloco reconhecido, o texto bruto volta intacto.
func (s *Service) Parse(replyText string) domain.ParsedReply {
	reply := domain.ParsedReply{}
	cleanText := replyText

	// 1. Agenda — verificada primeiro para não ser consumida pelo padrão
	// genérico de gráfico. O payload não é interpretado aqui: a reserva real
	// é feita pelo colaborador de agenda, só sinalizamos a presença.
	if match := scheduleRegex.FindString(cleanText); match != "" {
		reply.HasSchedule = true
		cleanText = strings.TrimSpace(strings.Replace(cleanText, match, "", 1))
	}

	// 2. Sugestões — array de strings ou objeto {"suggestions": [...]}
	if match := suggestionRegex.FindStringSubmatch(cleanText); match != nil {
		if suggestions, ok := parseSuggestions(match[1]); ok {
			reply.Suggestions = suggestions
			cleanText = strings.TrimSpace(strings.Replace(cleanText, match[0], "", 1))
		}
	}

	// 3. Ações — exige array JSON de {label, type}
	if match := actionRegex.FindStringSubmatch(cleanText); match != nil {
		var actions []domain.ActionDirective
		if err := json.Unmarshal([]byte(match[1]), &actions); err != nil {
			log.L.WithError(err).Debug("parsing: bloco de ações malformado, mantido no texto")
		} else {
			reply.Actions = actions
			cleanText = strings.TrimSpace(strings.Replace(cleanText, match[0], "", 1))
		}
	}

	// 4. Gráfico — catch-all genérico, obrigatoriamente por último; exige
	// os campos type e data para ser aceito
	if match := chartRegex.FindStringSubmatch(cleanText); match != nil {
		var chart domain.ChartDirective
		if err := json.Unmarshal([]byte(match[1]), &chart); err != nil {
			log.L.WithError(err).Debug("parsing: bloco de gráfico malformado, mantido no texto")
		} else if chart.Type != "" && chart.Data != nil {
			reply.Chart = &chart
			cleanText = strings.TrimSpace(strings.Replace(cleanText, match[0], "", 1))
		}
	}

	reply.DisplayText = cleanText
	return reply
}

// parseSuggestions aceita as duas formas válidas do payload de sugestões
func parseSuggestions(payload string) ([]string, bool) {
	var bare []string
	if err := json.Unmarshal([]byte(payload), &bare); err == nil {
		return bare, true
	}

	var wrapped struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(payload), &wrapped); err == nil && wrapped.Suggestions != nil {
		return wrapped.Suggestions, true
	}

	log.L.Debug("parsing: bloco de sugestões malformado, mantido no texto")
	return nil, false
}

package utils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos nas exportações de CSV. Os formatos com barra cobrem
// planilhas exportadas em locale brasileiro e americano.
var csvDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
}

// ParseCSVDate tenta interpretar a data de uma linha de CSV em qualquer um
// dos layouts conhecidos. Linhas com data não interpretável são descartadas
// pelo normalizador, nunca erro fatal.
func ParseCSVDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range csvDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("data não reconhecida: %q", raw)
}

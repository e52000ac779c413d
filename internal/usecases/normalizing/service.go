// Package normalizing converte exportações de CSV heterogêneas para o
// esquema canônico de cada tipo de dataset. A resolução de colunas é por
// tabela fixa de aliases (case-sensitive); a ingestão é best-effort —
// linhas inválidas são descartadas ou preenchidas com defaults, nunca erro.
package normalizing

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/biznexus-api/internal/domain"
	"github.com/vfg2006/biznexus-api/pkg/log"
	"github.com/vfg2006/biznexus-api/pkg/utils"
)

// Normalizer converte linhas tabulares brutas em registros canônicos
type Normalizer interface {
	ParseCSV(r io.Reader) ([]map[string]string, error)
	NormalizeSales(rows []map[string]string) []domain.SalesRecord
	NormalizeInventory(rows []map[string]string) []domain.InventoryRecord
	NormalizeExpenses(rows []map[string]string) []domain.ExpenseRecord
}

type Service struct{}

func NewService() Normalizer {
	return &Service{}
}

// Defaults documentados para campos ausentes
const (
	defaultSKU     = "UNKNOWN"
	defaultProduct = "Unknown Product"
	defaultChannel = "Direct"
	defaultExpense = "Expense"
)

// ParseCSV lê um CSV com linha de cabeçalho e devolve as linhas como mapas
// coluna→valor. Linhas vazias são puladas; linhas com contagem de campos
// divergente são toleradas (campos faltantes ficam ausentes do mapa).
func (s *Service) ParseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho do CSV")
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]map[string]string, 0)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Linha malformada não é fatal: política de ingestão best-effort
			log.L.WithError(err).Debug("normalizing: linha de CSV descartada")
			continue
		}

		row := make(map[string]string, len(header))
		empty := true
		for i, value := range record {
			if i >= len(header) {
				break
			}
			value = strings.TrimSpace(value)
			if value != "" {
				empty = false
			}
			row[header[i]] = value
		}

		if !empty {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// pick devolve o primeiro alias com valor definido, ou o default
func pick(row map[string]string, defaultValue string, aliases ...string) string {
	for _, alias := range aliases {
		if value, ok := row[alias]; ok && value != "" {
			return value
		}
	}
	return defaultValue
}

// pickNumber converte o primeiro alias definido para número; ausente ou
// inválido vira 0
func pickNumber(row map[string]string, aliases ...string) float64 {
	raw := pick(row, "", aliases...)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0
	}
	return value
}

// NormalizeSales mapeia linhas brutas para o esquema canônico de vendas.
// Linhas com data não interpretável ou quantidade <= 0 são descartadas em
// silêncio — filtro de qualidade de dados, não condição fatal.
func (s *Service) NormalizeSales(rows []map[string]string) []domain.SalesRecord {
	records := make([]domain.SalesRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		date, err := utils.ParseCSVDate(pick(row, "", "date", "Date"))
		if err != nil {
			dropped++
			continue
		}

		quantity := int(pickNumber(row, "quantity", "Quantity"))
		if quantity <= 0 {
			dropped++
			continue
		}

		orderID := pick(row, "", "order_id", "Order ID")
		if orderID == "" {
			orderID = utils.GenerateOrderID()
		}

		records = append(records, domain.SalesRecord{
			Date:        date,
			OrderID:     orderID,
			SKUID:       pick(row, defaultSKU, "sku_id", "SKU"),
			ProductName: pick(row, defaultProduct, "product_name", "Product Name"),
			Quantity:    quantity,
			Price:       pickNumber(row, "price", "Price"),
			Channel:     pick(row, defaultChannel, "channel", "Channel"),
		})
	}

	if dropped > 0 {
		log.L.WithFields(log.Fields{
			"dropped": dropped,
			"kept":    len(records),
		}).Info("normalizing: linhas de vendas inválidas descartadas")
	}

	return records
}

// NormalizeInventory mapeia linhas brutas para o esquema canônico de estoque.
// Não há deduplicação por SKU: a normalização é um mapa estrutural, não um
// merge (SKUs duplicados na origem ficam duplicados na saída).
func (s *Service) NormalizeInventory(rows []map[string]string) []domain.InventoryRecord {
	records := make([]domain.InventoryRecord, 0, len(rows))

	for _, row := range rows {
		records = append(records, domain.InventoryRecord{
			SKUID:       pick(row, defaultSKU, "sku_id", "SKU"),
			ProductName: pick(row, defaultProduct, "product_name", "Product Name"),
			Quantity:    int(pickNumber(row, "quantity", "Quantity")),
			CostPrice:   pickNumber(row, "cost_price", "Cost Price"),
		})
	}

	return records
}

// NormalizeExpenses mapeia linhas brutas para o esquema canônico de despesas
func (s *Service) NormalizeExpenses(rows []map[string]string) []domain.ExpenseRecord {
	records := make([]domain.ExpenseRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		date, err := utils.ParseCSVDate(pick(row, "", "date", "Date"))
		if err != nil {
			dropped++
			continue
		}

		records = append(records, domain.ExpenseRecord{
			Date:        date,
			Type:        pick(row, defaultExpense, "type", "Type"),
			Amount:      pickNumber(row, "amount", "Amount"),
			Description: pick(row, "", "description", "Description"),
		})
	}

	if dropped > 0 {
		log.L.WithFields(log.Fields{
			"dropped": dropped,
			"kept":    len(records),
		}).Info("normalizing: linhas de despesas inválidas descartadas")
	}

	return records
}

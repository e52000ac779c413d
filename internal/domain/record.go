package domain

import "time"

// DatasetKind identifica o tipo de dataset normalizado
type DatasetKind string

const (
	DatasetSales     DatasetKind = "sales"
	DatasetInventory DatasetKind = "inventory"
	DatasetExpenses  DatasetKind = "expenses"
)

// SalesRecord representa uma venda normalizada para o esquema canônico
type SalesRecord struct {
	Date        time.Time `json:"date"`
	OrderID     string    `json:"order_id"`
	SKUID       string    `json:"sku_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Channel     string    `json:"channel"`
}

// Revenue retorna a receita da venda (preço x quantidade)
func (s SalesRecord) Revenue() float64 {
	return s.Price * float64(s.Quantity)
}

// InventoryRecord representa a posição de estoque de um SKU
type InventoryRecord struct {
	SKUID       string  `json:"sku_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	CostPrice   float64 `json:"cost_price"`
}

// ExpenseRecord representa uma despesa normalizada
type ExpenseRecord struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

// Snapshot é a foto imutável dos datasets carregados. Cada etapa do pipeline
// recebe o snapshot por valor e nunca escreve nele — os agentes são funções
// puras reexecutadas a cada alteração de dados.
type Snapshot struct {
	Sales     []SalesRecord     `json:"sales"`
	Inventory []InventoryRecord `json:"inventory"`
	Expenses  []ExpenseRecord   `json:"expenses"`
	UpdatedAt time.Time         `json:"updated_at"`
}

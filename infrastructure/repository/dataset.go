package repository

import (
	"sync"
	"time"

	"github.com/vfg2006/biznexus-api/internal/domain"
)

// DatasetRepository guarda os datasets normalizados da sessão corrente.
// Armazenamento durável é responsabilidade externa — aqui só existe a foto
// em memória que alimenta o pipeline de análise.
type DatasetRepository interface {
	// ReplaceSales substitui o dataset de vendas (semântica de substituição
	// de sessão: cada upload troca o dataset inteiro daquele tipo)
	ReplaceSales(records []domain.SalesRecord)
	ReplaceInventory(records []domain.InventoryRecord)
	ReplaceExpenses(records []domain.ExpenseRecord)

	// Snapshot devolve uma cópia imutável dos datasets para os agentes
	Snapshot() domain.Snapshot

	// Counts devolve a contagem de linhas por tipo de dataset
	Counts() map[domain.DatasetKind]int
}

type datasetRepository struct {
	mu        sync.RWMutex
	sales     []domain.SalesRecord
	inventory []domain.InventoryRecord
	expenses  []domain.ExpenseRecord
	updatedAt time.Time
}

func NewDatasetRepository() DatasetRepository {
	return &datasetRepository{}
}

func (r *datasetRepository) ReplaceSales(records []domain.SalesRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = records
	r.updatedAt = time.Now()
}

func (r *datasetRepository) ReplaceInventory(records []domain.InventoryRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inventory = records
	r.updatedAt = time.Now()
}

func (r *datasetRepository) ReplaceExpenses(records []domain.ExpenseRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses = records
	r.updatedAt = time.Now()
}

// Snapshot copia as fatias: quem consome nunca enxerga escrita concorrente
// e os agentes permanecem funções puras sobre entrada imutável
func (r *datasetRepository) Snapshot() domain.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := domain.Snapshot{
		Sales:     make([]domain.SalesRecord, len(r.sales)),
		Inventory: make([]domain.InventoryRecord, len(r.inventory)),
		Expenses:  make([]domain.ExpenseRecord, len(r.expenses)),
		UpdatedAt: r.updatedAt,
	}

	copy(snapshot.Sales, r.sales)
	copy(snapshot.Inventory, r.inventory)
	copy(snapshot.Expenses, r.expenses)

	return snapshot
}

func (r *datasetRepository) Counts() map[domain.DatasetKind]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return map[domain.DatasetKind]int{
		domain.DatasetSales:     len(r.sales),
		domain.DatasetInventory: len(r.inventory),
		domain.DatasetExpenses:  len(r.expenses),
	}
}

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/biznexus-api/internal/domain"
)

func TestDatasetRepository_ReplaceSemantics(t *testing.T) {
	repo := NewDatasetRepository()

	repo.ReplaceSales([]domain.SalesRecord{
		{SKUID: "A1", Quantity: 1},
		{SKUID: "B2", Quantity: 2},
	})

	// Cada upload troca o dataset inteiro daquele tipo, nunca acumula
	repo.ReplaceSales([]domain.SalesRecord{{SKUID: "C3", Quantity: 5}})

	snapshot := repo.Snapshot()
	require.Len(t, snapshot.Sales, 1)
	assert.Equal(t, "C3", snapshot.Sales[0].SKUID)
}

func TestDatasetRepository_SnapshotIsACopy(t *testing.T) {
	repo := NewDatasetRepository()

	repo.ReplaceInventory([]domain.InventoryRecord{{SKUID: "A1", Quantity: 10}})

	snapshot := repo.Snapshot()
	snapshot.Inventory[0].Quantity = 999

	// Mutação no snapshot não vaza para o repositório
	assert.Equal(t, 10, repo.Snapshot().Inventory[0].Quantity)
}

func TestDatasetRepository_ReplacingOneKindKeepsTheOthers(t *testing.T) {
	repo := NewDatasetRepository()

	repo.ReplaceSales([]domain.SalesRecord{{SKUID: "A1", Quantity: 1}})
	repo.ReplaceExpenses([]domain.ExpenseRecord{{Type: "Rent", Amount: 500}})

	repo.ReplaceInventory([]domain.InventoryRecord{{SKUID: "A1", Quantity: 3}})

	snapshot := repo.Snapshot()
	assert.Len(t, snapshot.Sales, 1)
	assert.Len(t, snapshot.Expenses, 1)
	assert.Len(t, snapshot.Inventory, 1)
}

func TestDatasetRepository_Counts(t *testing.T) {
	repo := NewDatasetRepository()

	assert.Equal(t, map[domain.DatasetKind]int{
		domain.DatasetSales:     0,
		domain.DatasetInventory: 0,
		domain.DatasetExpenses:  0,
	}, repo.Counts())

	repo.ReplaceSales([]domain.SalesRecord{{SKUID: "A1"}, {SKUID: "B2"}})
	repo.ReplaceExpenses([]domain.ExpenseRecord{{Amount: 10}})

	counts := repo.Counts()
	assert.Equal(t, 2, counts[domain.DatasetSales])
	assert.Equal(t, 0, counts[domain.DatasetInventory])
	assert.Equal(t, 1, counts[domain.DatasetExpenses])
}

func TestDatasetRepository_UpdatedAtAdvances(t *testing.T) {
	repo := NewDatasetRepository()

	before := repo.Snapshot().UpdatedAt
	assert.True(t, before.IsZero())

	repo.ReplaceSales([]domain.SalesRecord{{SKUID: "A1"}})

	after := repo.Snapshot().UpdatedAt
	assert.False(t, after.IsZero())
	assert.True(t, after.Before(time.Now().Add(time.Second)))
}

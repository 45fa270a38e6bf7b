package sqlite

import (
	"path/filepath"
	"testing"

	"storefront/internal/domain"
	dbsqlite "storefront/internal/infra/sqlite"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := dbsqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	return db
}

func TestProductRepo_ExplicitZeroStockPersists(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	p := &domain.Product{Name: "Out of stock item", Price: 9.99, Stock: 0}
	assert.NoError(t, repo.Save(p))

	got, err := repo.FindByID(p.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, 0, got.Stock)
}

func TestProductRepo_DecrementStockIfAvailable(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	p := &domain.Product{Name: "Bluetooth Headphones", Price: 10.0, Stock: 5}
	assert.NoError(t, repo.Save(p))

	ok, err := repo.DecrementStockIfAvailable(p.ID, 2)
	assert.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.FindByID(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	// short stock: no update, no error
	ok, err = repo.DecrementStockIfAvailable(p.ID, 10)
	assert.NoError(t, err)
	assert.False(t, ok)

	got, err = repo.FindByID(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, got.Stock)
}

func TestProductRepo_DecrementStockHasNoFloor(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	p := &domain.Product{Name: "Smart Watch", Price: 119.99, Stock: 1}
	assert.NoError(t, repo.Save(p))

	assert.NoError(t, repo.DecrementStock(p.ID, 3))

	got, err := repo.FindByID(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, -2, got.Stock)
}

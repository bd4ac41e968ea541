package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-tracker/internal/models"
)

// MockCatalogAPI реализует интерфейс CatalogAPI
type MockCatalogAPI struct {
	mock.Mock
}

func (m *MockCatalogAPI) UpdateProduct(ctx context.Context, id string, upd models.UpdateProduct) (*models.Product, error) {
	args := m.Called(ctx, id, upd)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogAPI) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p-1", Barcode: "111", Name: "Chips", Category: "Snacks"},
		{ID: "p-2", Barcode: "222", Name: "Cola", Category: "Drinks"},
		{ID: "p-3", Barcode: "333", Name: "Soap", Category: ""},
	}
}

func TestColumns(t *testing.T) {
	board := NewBoard(new(MockCatalogAPI))
	board.Load(testProducts(), []string{"Uncategorized", "Drinks", "Snacks"})

	columns := board.Columns()

	require.Len(t, columns, 3)
	assert.Equal(t, "Uncategorized", columns[0].Name)
	assert.Equal(t, "Drinks", columns[1].Name)
	assert.Equal(t, "Snacks", columns[2].Name)

	// товар без категории попадает в колонку по умолчанию
	require.Len(t, columns[0].Products, 1)
	assert.Equal(t, "Soap", columns[0].Products[0].Name)
}

func TestColumnsUnknownCategory(t *testing.T) {
	board := NewBoard(new(MockCatalogAPI))
	board.Load([]models.Product{
		{ID: "p-9", Name: "Mystery", Category: "Imported"},
	}, []string{"Uncategorized"})

	columns := board.Columns()

	require.Len(t, columns, 2)
	assert.Equal(t, "Imported", columns[1].Name)
}

func TestCategoryColor(t *testing.T) {
	// цвет стабилен между вызовами и принадлежит палитре
	first := CategoryColor("Snacks")
	assert.Equal(t, first, CategoryColor("Snacks"))
	assert.Contains(t, colorPalette, first)
	assert.NotEmpty(t, CategoryColor(""))
}

func TestMoveProduct(t *testing.T) {
	t.Run("подтверждённое перемещение фиксируется", func(t *testing.T) {
		api := new(MockCatalogAPI)
		api.On("UpdateProduct", mock.Anything, "p-1",
			mock.MatchedBy(func(upd models.UpdateProduct) bool {
				return upd.Category != nil && *upd.Category == "Drinks"
			})).Return(&models.Product{ID: "p-1", Name: "Chips", Category: "Drinks"}, nil)

		board := NewBoard(api)
		board.Load(testProducts(), []string{"Uncategorized", "Drinks", "Snacks"})

		move := board.MoveProduct(context.Background(), "p-1", "Drinks")

		assert.Equal(t, StateCommitted, move.State)
		assert.Equal(t, "Snacks", move.From)
		assert.Equal(t, "Drinks", move.To)

		for _, p := range board.Products() {
			if p.ID == "p-1" {
				assert.Equal(t, "Drinks", p.Category)
			}
		}
	})

	t.Run("отказ сервера откатывает локальное состояние", func(t *testing.T) {
		api := new(MockCatalogAPI)
		api.On("UpdateProduct", mock.Anything, "p-1", mock.Anything).
			Return(nil, errors.New("network error"))

		board := NewBoard(api)
		board.Load(testProducts(), []string{"Uncategorized", "Drinks", "Snacks"})

		move := board.MoveProduct(context.Background(), "p-1", "Drinks")

		assert.Equal(t, StateRolledBack, move.State)
		assert.Error(t, move.Err)

		for _, p := range board.Products() {
			if p.ID == "p-1" {
				assert.Equal(t, "Snacks", p.Category)
			}
		}
	})

	t.Run("неизвестный товар не отправляется на сервер", func(t *testing.T) {
		api := new(MockCatalogAPI)
		board := NewBoard(api)
		board.Load(testProducts(), nil)

		move := board.MoveProduct(context.Background(), "p-ghost", "Drinks")

		assert.Equal(t, StateRolledBack, move.State)
		api.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveProduct(t *testing.T) {
	t.Run("подтверждённое удаление", func(t *testing.T) {
		api := new(MockCatalogAPI)
		api.On("DeleteProduct", mock.Anything, "p-2").Return(nil)

		board := NewBoard(api)
		board.Load(testProducts(), nil)

		move := board.RemoveProduct(context.Background(), "p-2")

		assert.Equal(t, StateCommitted, move.State)
		assert.Len(t, board.Products(), 2)
	})

	t.Run("отказ сервера возвращает товар на доску", func(t *testing.T) {
		api := new(MockCatalogAPI)
		api.On("DeleteProduct", mock.Anything, "p-2").Return(errors.New("network error"))

		board := NewBoard(api)
		board.Load(testProducts(), nil)

		move := board.RemoveProduct(context.Background(), "p-2")

		assert.Equal(t, StateRolledBack, move.State)
		assert.Len(t, board.Products(), 3)
	})
}

func TestBatchOperations(t *testing.T) {
	t.Run("частичный отказ не откатывает успешные позиции", func(t *testing.T) {
		api := new(MockCatalogAPI)
		api.On("DeleteProduct", mock.Anything, "p-1").Return(nil)
		api.On("DeleteProduct", mock.Anything, "p-2").Return(errors.New("network error"))
		api.On("DeleteProduct", mock.Anything, "p-3").Return(nil)

		board := NewBoard(api)
		board.Load(testProducts(), nil)

		result := board.RemoveMany(context.Background(), []string{"p-1", "p-2", "p-3"})

		assert.Equal(t, 2, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, "2 succeeded, 1 failed", result.String())
		assert.Len(t, board.Products(), 1)
	})

	t.Run("групповое перемещение считает успехи и отказы", func(t *testing.T) {
		api := new(MockCatalogAPI)
		api.On("UpdateProduct", mock.Anything, "p-1", mock.Anything).
			Return(&models.Product{ID: "p-1", Category: "Drinks"}, nil)
		api.On("UpdateProduct", mock.Anything, "p-3", mock.Anything).
			Return(nil, errors.New("network error"))

		board := NewBoard(api)
		board.Load(testProducts(), nil)

		result := board.MoveMany(context.Background(), []string{"p-1", "p-3"}, "Drinks")

		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
	})
}

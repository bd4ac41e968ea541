package client

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"

	"github.com/magabrotheeeer/inventory-tracker/internal/models"
)

// MoveState — состояние оптимистичного изменения на доске.
type MoveState int

const (
	// StatePending — локальное состояние изменено, ответ сервера ещё не получен.
	StatePending MoveState = iota
	// StateCommitted — сервер подтвердил изменение.
	StateCommitted
	// StateRolledBack — сервер отклонил изменение, локальное состояние возвращено.
	StateRolledBack
)

func (s MoveState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled back"
	default:
		return "unknown"
	}
}

// Move описывает одно оптимистичное перемещение или удаление товара.
type Move struct {
	ProductID string
	From      string
	To        string
	State     MoveState
	Err       error
}

// Column — колонка доски: категория и её товары.
type Column struct {
	Name     string
	Color    string
	Products []models.Product
}

// BatchResult — итог групповой операции: каждая позиция обрабатывается
// независимо, частичный отказ не откатывает успешные.
type BatchResult struct {
	Succeeded int
	Failed    int
}

func (r BatchResult) String() string {
	return fmt.Sprintf("%d succeeded, %d failed", r.Succeeded, r.Failed)
}

// CatalogAPI — операции сервера, используемые доской при сверке.
type CatalogAPI interface {
	UpdateProduct(ctx context.Context, id string, upd models.UpdateProduct) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// colorPalette — фиксированный набор цветов колонок; цвет категории
// выбирается хешем имени и потому стабилен между перезапусками.
var colorPalette = []string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2",
	"#59A14F", "#EDC948", "#B07AA1", "#FF9DA7",
}

// Board хранит локальную копию каталога и применяет оптимистичные
// изменения: состояние меняется сразу, затем сверяется с ответом сервера,
// при отказе — откатывается. Источник истины всегда сервер.
type Board struct {
	api CatalogAPI

	mu         sync.Mutex
	products   []models.Product
	categories []string
}

// NewBoard создает доску поверх API каталога.
func NewBoard(api CatalogAPI) *Board {
	return &Board{api: api}
}

// Load заменяет локальную копию каталога свежими данными сервера.
func (b *Board) Load(products []models.Product, categories []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.products = append([]models.Product(nil), products...)
	b.categories = append([]string(nil), categories...)
}

// CategoryColor возвращает стабильный цвет колонки для имени категории.
func CategoryColor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// Columns группирует товары по категориям. Колонки следуют порядку
// известных категорий (категория по умолчанию первая); категории,
// встречающиеся только в товарах, добавляются в конец по алфавиту.
func (b *Board) Columns() []Column {
	b.mu.Lock()
	defer b.mu.Unlock()

	grouped := make(map[string][]models.Product)
	for _, p := range b.products {
		name := p.Category
		if name == "" {
			name = models.DefaultCategory
		}
		grouped[name] = append(grouped[name], p)
	}

	seen := make(map[string]bool, len(b.categories))
	columns := make([]Column, 0, len(b.categories))
	for _, name := range b.categories {
		seen[name] = true
		columns = append(columns, Column{
			Name:     name,
			Color:    CategoryColor(name),
			Products: grouped[name],
		})
	}

	var extra []string
	for name := range grouped {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		columns = append(columns, Column{
			Name:     name,
			Color:    CategoryColor(name),
			Products: grouped[name],
		})
	}
	return columns
}

// MoveProduct переносит товар в другую колонку в два этапа: сначала
// локально, затем запросом к серверу. Отказ сервера возвращает товар
// в исходную колонку.
func (b *Board) MoveProduct(ctx context.Context, id, targetCategory string) *Move {
	targetCategory = strings.TrimSpace(targetCategory)

	b.mu.Lock()
	idx := b.indexOf(id)
	if idx < 0 {
		b.mu.Unlock()
		return &Move{ProductID: id, State: StateRolledBack, Err: fmt.Errorf("product %s is not on the board", id)}
	}
	move := &Move{ProductID: id, From: b.products[idx].Category, To: targetCategory, State: StatePending}
	b.products[idx].Category = targetCategory
	b.mu.Unlock()

	updated, err := b.api.UpdateProduct(ctx, id, models.UpdateProduct{Category: &targetCategory})
	b.mu.Lock()
	defer b.mu.Unlock()
	idx = b.indexOf(id)
	if err != nil {
		if idx >= 0 {
			b.products[idx].Category = move.From
		}
		move.State = StateRolledBack
		move.Err = err
		return move
	}
	if idx >= 0 {
		b.products[idx] = *updated
	}
	move.State = StateCommitted
	return move
}

// RemoveProduct удаляет товар с доски оптимистично; при отказе сервера
// товар возвращается на прежнее место.
func (b *Board) RemoveProduct(ctx context.Context, id string) *Move {
	b.mu.Lock()
	idx := b.indexOf(id)
	if idx < 0 {
		b.mu.Unlock()
		return &Move{ProductID: id, State: StateRolledBack, Err: fmt.Errorf("product %s is not on the board", id)}
	}
	removed := b.products[idx]
	move := &Move{ProductID: id, From: removed.Category, State: StatePending}
	b.products = append(b.products[:idx], b.products[idx+1:]...)
	b.mu.Unlock()

	err := b.api.DeleteProduct(ctx, id)
	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.products = append(b.products, removed)
		move.State = StateRolledBack
		move.Err = err
		return move
	}
	move.State = StateCommitted
	return move
}

// MoveMany переносит выбранные товары по одному; частичный отказ
// отражается в счетчиках результата, успешные переносы не откатываются.
func (b *Board) MoveMany(ctx context.Context, ids []string, targetCategory string) BatchResult {
	var result BatchResult
	for _, id := range ids {
		if move := b.MoveProduct(ctx, id, targetCategory); move.State == StateCommitted {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}
	return result
}

// RemoveMany удаляет выбранные товары по одному.
func (b *Board) RemoveMany(ctx context.Context, ids []string) BatchResult {
	var result BatchResult
	for _, id := range ids {
		if move := b.RemoveProduct(ctx, id); move.State == StateCommitted {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}
	return result
}

// Products возвращает копию локального состояния доски.
func (b *Board) Products() []models.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Product(nil), b.products...)
}

// indexOf вызывается только под мьютексом.
func (b *Board) indexOf(id string) int {
	for i := range b.products {
		if b.products[i].ID == id {
			return i
		}
	}
	return -1
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/inventory-tracker/internal/models"
)

const productColumns = `id, user_uid, barcode, name, price, description, category, created_at, updated_at`

// likeEscaper экранирует метасимволы LIKE, чтобы поиск по "100%" или "a_c"
// находил буквальные вхождения, а не произвольные совпадения.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CreateProduct вставляет новый товар и возвращает созданную запись.
// Дубликат пары (user, barcode) транслируется в ErrUniqueViolation.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO products (user_uid, barcode, name, price, description, category)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + productColumns
	row := s.DB.QueryRowContext(ctx, query,
		product.UserUID, product.Barcode, product.Name, product.Price,
		product.Description, product.Category)

	result, err := scanProduct(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetProductByID возвращает товар пользователя по идентификатору.
func (s *Storage) GetProductByID(ctx context.Context, userUID, id string) (*models.Product, error) {
	const op = "storage.GetProductByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + productColumns + `
			  FROM products
			  WHERE user_uid = $1 AND id = $2`
	result, err := scanProduct(s.DB.QueryRowContext(ctx, query, userUID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetProductByBarcode возвращает товар пользователя по штрихкоду.
func (s *Storage) GetProductByBarcode(ctx context.Context, userUID, barcode string) (*models.Product, error) {
	const op = "storage.GetProductByBarcode"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + productColumns + `
			  FROM products
			  WHERE user_uid = $1 AND barcode = $2`
	result, err := scanProduct(s.DB.QueryRowContext(ctx, query, userUID, barcode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListProducts возвращает товары пользователя, отсортированные от новых к старым.
// Пустая категория означает отсутствие фильтра, поиск — регистронезависимое
// вхождение подстроки в name, barcode, description или category.
func (s *Storage) ListProducts(ctx context.Context, userUID string, filter models.ProductFilter) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + productColumns + `
			  FROM products
			  WHERE user_uid = $1
			    AND ($2 = '' OR category = $2)
			    AND ($3 = ''
			         OR name ILIKE '%' || $3 || '%'
			         OR barcode ILIKE '%' || $3 || '%'
			         OR description ILIKE '%' || $3 || '%'
			         OR category ILIKE '%' || $3 || '%')
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID, filter.Category,
		likeEscaper.Replace(filter.Search))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Barcode, &item.Name, &item.Price,
			&item.Description, &item.Category, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateProduct частично обновляет товар: nil-поля сохраняют прежние значения.
// Возвращает обновлённую запись или ErrNotFound.
func (s *Storage) UpdateProduct(ctx context.Context, userUID, id string, upd models.UpdateProduct) (*models.Product, error) {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE products
			  SET name = COALESCE($3, name),
			      price = COALESCE($4, price),
			      description = COALESCE($5, description),
			      category = COALESCE($6, category),
			      updated_at = NOW()
			  WHERE user_uid = $1 AND id = $2
			  RETURNING ` + productColumns
	row := s.DB.QueryRowContext(ctx, query, userUID, id,
		upd.Name, upd.Price, upd.Description, upd.Category)

	result, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteProduct удаляет товар пользователя и возвращает количество удалённых строк.
func (s *Storage) DeleteProduct(ctx context.Context, userUID, id string) (int, error) {
	const op = "storage.DeleteProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM products WHERE user_uid = $1 AND id = $2`
	result, err := s.DB.ExecContext(ctx, query, userUID, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// CountByCategory возвращает количество товаров пользователя по категориям.
// Пустая категория учитывается как категория по умолчанию.
func (s *Storage) CountByCategory(ctx context.Context, userUID string) (map[string]int, error) {
	const op = "storage.CountByCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(NULLIF(category, ''), $2) AS category, COUNT(*)
			  FROM products
			  WHERE user_uid = $1
			  GROUP BY 1`
	rows, err := s.DB.QueryContext(ctx, query, userUID, models.DefaultCategory)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListRecentProducts возвращает последние limit товаров пользователя по дате создания.
func (s *Storage) ListRecentProducts(ctx context.Context, userUID string, limit int) ([]models.RecentProduct, error) {
	const op = "storage.ListRecentProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, barcode, name, COALESCE(NULLIF(category, ''), $3), created_at
			  FROM products
			  WHERE user_uid = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit, models.DefaultCategory)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.RecentProduct
	for rows.Next() {
		var item models.RecentProduct
		if err := rows.Scan(&item.ID, &item.Barcode, &item.Name, &item.Category, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func scanProduct(row *sql.Row) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.UserUID, &p.Barcode, &p.Name, &p.Price,
		&p.Description, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

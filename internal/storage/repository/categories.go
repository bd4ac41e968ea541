package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/inventory-tracker/internal/models"
)

// CreateCategory вставляет новую категорию и возвращает созданную запись.
// Дубликат пары (user, name) транслируется в ErrUniqueViolation.
func (s *Storage) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	const op = "storage.CreateCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO categories (user_uid, name)
			  VALUES ($1, $2)
			  RETURNING id, user_uid, name, created_at`
	var result models.Category
	err := s.DB.QueryRowContext(ctx, query, category.UserUID, category.Name).
		Scan(&result.ID, &result.UserUID, &result.Name, &result.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetCategoryByName возвращает категорию пользователя по точному имени.
func (s *Storage) GetCategoryByName(ctx context.Context, userUID, name string) (*models.Category, error) {
	const op = "storage.GetCategoryByName"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, name, created_at
			  FROM categories
			  WHERE user_uid = $1 AND name = $2`
	var result models.Category
	err := s.DB.QueryRowContext(ctx, query, userUID, name).
		Scan(&result.ID, &result.UserUID, &result.Name, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListCategoryNames возвращает имена категорий пользователя,
// отсортированные лексикографически.
func (s *Storage) ListCategoryNames(ctx context.Context, userUID string) ([]string, error) {
	const op = "storage.ListCategoryNames"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT name
			  FROM categories
			  WHERE user_uid = $1
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteCategoryWithReassign удаляет категорию пользователя и в той же
// транзакции переносит все её товары в категорию по умолчанию.
// Возвращает идентификаторы перенесённых товаров или ErrNotFound,
// если категории не существует. Частичный результат невозможен:
// при любой ошибке транзакция откатывается.
func (s *Storage) DeleteCategoryWithReassign(ctx context.Context, userUID, name string) ([]string, error) {
	const op = "storage.DeleteCategoryWithReassign"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM categories WHERE user_uid = $1 AND name = $2`, userUID, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if deleted == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	rows, err := tx.QueryContext(ctx,
		`UPDATE products SET category = $3, updated_at = NOW()
		 WHERE user_uid = $1 AND category = $2
		 RETURNING id`,
		userUID, name, models.DefaultCategory)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var reassigned []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		reassigned = append(reassigned, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reassigned, nil
}

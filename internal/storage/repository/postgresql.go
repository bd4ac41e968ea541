// Package repository реализует хранилище данных на основе PostgreSQL
// для каталога товаров. Предоставляет методы создания, чтения, обновления,
// удаления и агрегирования записей, а также работу с пользователями.
//
// Все запросы фильтруются по владельцу: один пользователь не может увидеть
// или изменить чужие записи, чужой идентификатор ведёт себя как несуществующий.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound возвращается, когда запись не существует или принадлежит другому пользователю.
var ErrNotFound = errors.New("record not found")

// ErrUniqueViolation возвращается вместо "сырых" кодов ошибок БД
// при нарушении уникального индекса (дубликат username, barcode или категории).
var ErrUniqueViolation = errors.New("unique constraint violation")

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями, товарами и категориями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'products'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table products missing or query error: %w", err)
	}
	return nil
}

// isUniqueViolation распознаёт нарушение уникального индекса postgres (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

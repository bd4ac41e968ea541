// Package services содержит бизнес-логику каталога: правила связи товаров
// и категорий, виртуальную категорию по умолчанию и кеширование.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/inventory-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-tracker/internal/models"
	"github.com/magabrotheeeer/inventory-tracker/internal/storage/repository"
)

const (
	productCacheTTL = time.Hour
	statsCacheTTL   = 5 * time.Minute
	recentLimit     = 5
)

var (
	// ErrEmptyName возвращается, когда имя пустое после обрезки пробелов.
	ErrEmptyName = errors.New("name is required")
	// ErrEmptyBarcode возвращается, когда штрихкод пуст после обрезки пробелов.
	ErrEmptyBarcode = errors.New("barcode is required")
	// ErrCategoryExists возвращается вместе с уже существующей категорией.
	ErrCategoryExists = errors.New("category already exists")
	// ErrCategoryNotFound — категории с таким именем у пользователя нет.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrReservedCategory — попытка создать или удалить категорию по умолчанию.
	ErrReservedCategory = errors.New("the default category name is reserved")
	// ErrDuplicateBarcode возвращается вместе с уже существующим товаром.
	ErrDuplicateBarcode = errors.New("product with this barcode already exists")
	// ErrProductNotFound — товара с таким идентификатором у пользователя нет.
	ErrProductNotFound = errors.New("product not found")
)

// CatalogRepository определяет методы для работы с каталогом в хранилище.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	GetCategoryByName(ctx context.Context, userUID, name string) (*models.Category, error)
	ListCategoryNames(ctx context.Context, userUID string) ([]string, error)
	DeleteCategoryWithReassign(ctx context.Context, userUID, name string) ([]string, error)

	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	GetProductByID(ctx context.Context, userUID, id string) (*models.Product, error)
	GetProductByBarcode(ctx context.Context, userUID, barcode string) (*models.Product, error)
	ListProducts(ctx context.Context, userUID string, filter models.ProductFilter) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, userUID, id string, upd models.UpdateProduct) (*models.Product, error)
	DeleteProduct(ctx context.Context, userUID, id string) (int, error)
	CountByCategory(ctx context.Context, userUID string) (map[string]int, error)
	ListRecentProducts(ctx context.Context, userUID string, limit int) ([]models.RecentProduct, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// CatalogService реализует бизнес-логику каталога поверх хранилища и кеша.
type CatalogService struct {
	repo  CatalogRepository
	cache Cache
	log   *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(repo CatalogRepository, cache Cache, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// WithDefault возвращает список категорий с гарантированно присутствующей
// категорией по умолчанию. Чистая функция: хранимое состояние не меняется,
// зарезервированное имя сравнивается без учёта регистра и никогда не дублируется.
func WithDefault(names []string) []string {
	for _, name := range names {
		if strings.EqualFold(name, models.DefaultCategory) {
			return names
		}
	}
	result := make([]string, 0, len(names)+1)
	result = append(result, models.DefaultCategory)
	return append(result, names...)
}

// IsReservedCategory сообщает, является ли имя зарезервированной категорией
// по умолчанию (без учёта регистра).
func IsReservedCategory(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), models.DefaultCategory)
}

// CreateCategory создает категорию пользователя. Имя обрезается; пустое или
// зарезервированное имя отклоняется. При дубликате возвращается
// ErrCategoryExists вместе с уже существующей категорией.
func (s *CatalogService) CreateCategory(ctx context.Context, userUID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if IsReservedCategory(name) {
		return nil, ErrReservedCategory
	}

	created, err := s.repo.CreateCategory(ctx, models.Category{UserUID: userUID, Name: name})
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			existing, getErr := s.repo.GetCategoryByName(ctx, userUID, name)
			if getErr != nil {
				return nil, ErrCategoryExists
			}
			return existing, ErrCategoryExists
		}
		return nil, err
	}

	s.log.Info("created new category", slog.String("name", created.Name))
	return created, nil
}

// ListCategories возвращает имена категорий пользователя, отсортированные
// лексикографически, с категорией по умолчанию в начале списка.
func (s *CatalogService) ListCategories(ctx context.Context, userUID string) ([]string, error) {
	names, err := s.repo.ListCategoryNames(ctx, userUID)
	if err != nil {
		return nil, err
	}
	return WithDefault(names), nil
}

// DeleteCategory удаляет категорию и переносит её товары в категорию
// по умолчанию одной логической операцией. Удаление зарезервированной
// категории всегда отклоняется. Кеш каждого перенесённого товара
// сбрасывается, чтобы не отдавать удалённую категорию из кеша.
func (s *CatalogService) DeleteCategory(ctx context.Context, userUID, name string) (int, error) {
	name = strings.TrimSpace(name)
	if IsReservedCategory(name) {
		return 0, ErrReservedCategory
	}

	reassigned, err := s.repo.DeleteCategoryWithReassign(ctx, userUID, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrCategoryNotFound
		}
		return 0, err
	}

	s.log.Info("deleted category",
		slog.String("name", name), slog.Int("reassigned_products", len(reassigned)))
	for _, id := range reassigned {
		if err := s.cache.Invalidate(ctx, productCacheKey(userUID, id)); err != nil {
			s.log.Warn("failed to remove product from cache", sl.Err(err))
		}
	}
	s.invalidateStats(ctx, userUID)
	return len(reassigned), nil
}

// CreateProduct создает товар: штрихкод и имя обязательны и обрезаются,
// цена по умолчанию 0, категория по умолчанию — "Uncategorized".
// При дубликате штрихкода возвращается ErrDuplicateBarcode вместе
// с уже существующим товаром.
func (s *CatalogService) CreateProduct(ctx context.Context, userUID string, req models.DummyProduct) (*models.Product, error) {
	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		return nil, ErrEmptyBarcode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	product := models.Product{
		UserUID:  userUID,
		Barcode:  barcode,
		Name:     name,
		Category: models.DefaultCategory,
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		product.Category = strings.TrimSpace(*req.Category)
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			existing, getErr := s.repo.GetProductByBarcode(ctx, userUID, barcode)
			if getErr != nil {
				return nil, ErrDuplicateBarcode
			}
			return existing, ErrDuplicateBarcode
		}
		return nil, err
	}

	s.log.Info("created new product", slog.String("id", created.ID))
	s.cacheProduct(ctx, created)
	s.invalidateStats(ctx, userUID)
	return created, nil
}

// ListProducts возвращает товары пользователя от новых к старым.
// Категория "all" или пустая означает отсутствие фильтра; поиск —
// регистронезависимое вхождение подстроки по всем текстовым полям.
func (s *CatalogService) ListProducts(ctx context.Context, userUID string, filter models.ProductFilter) ([]*models.Product, error) {
	if filter.Category == "all" {
		filter.Category = ""
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.ListProducts(ctx, userUID, filter)
}

// GetProductByID возвращает товар пользователя, используя кеш или хранилище.
// Чужой идентификатор неотличим от несуществующего.
func (s *CatalogService) GetProductByID(ctx context.Context, userUID, id string) (*models.Product, error) {
	var cached models.Product
	found, err := s.cache.Get(ctx, productCacheKey(userUID, id), &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, userUID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	s.cacheProduct(ctx, product)
	return product, nil
}

// GetProductByBarcode возвращает товар пользователя по штрихкоду.
func (s *CatalogService) GetProductByBarcode(ctx context.Context, userUID, barcode string) (*models.Product, error) {
	product, err := s.repo.GetProductByBarcode(ctx, userUID, strings.TrimSpace(barcode))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// UpdateProduct частично обновляет товар: меняются только поля, явно
// присутствующие в запросе, строковые значения обрезаются при записи.
func (s *CatalogService) UpdateProduct(ctx context.Context, userUID, id string, upd models.UpdateProduct) (*models.Product, error) {
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			return nil, ErrEmptyName
		}
		upd.Name = &trimmed
	}
	if upd.Description != nil {
		trimmed := strings.TrimSpace(*upd.Description)
		upd.Description = &trimmed
	}
	if upd.Category != nil {
		trimmed := strings.TrimSpace(*upd.Category)
		if trimmed == "" {
			trimmed = models.DefaultCategory
		}
		upd.Category = &trimmed
	}

	updated, err := s.repo.UpdateProduct(ctx, userUID, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.cacheProduct(ctx, updated)
	s.invalidateStats(ctx, userUID)
	return updated, nil
}

// DeleteProduct удаляет товар пользователя и инвалидирует кеш.
func (s *CatalogService) DeleteProduct(ctx context.Context, userUID, id string) error {
	count, err := s.repo.DeleteProduct(ctx, userUID, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrProductNotFound
	}

	if err := s.cache.Invalidate(ctx, productCacheKey(userUID, id)); err != nil {
		s.log.Warn("failed to remove product from cache", sl.Err(err))
	}
	s.invalidateStats(ctx, userUID)
	return nil
}

// GetStats возвращает статистику каталога пользователя: общее количество
// товаров, распределение по категориям и последние пять добавленных.
// Товары без категории учитываются в категории по умолчанию.
func (s *CatalogService) GetStats(ctx context.Context, userUID string) (*models.Stats, error) {
	var cached models.Stats
	found, err := s.cache.Get(ctx, statsCacheKey(userUID), &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	counts, err := s.repo.CountByCategory(ctx, userUID)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.ListRecentProducts(ctx, userUID, recentLimit)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range counts {
		total += count
	}
	stats := &models.Stats{
		TotalProducts:  total,
		CategoryCounts: counts,
		RecentProducts: recent,
	}

	if err := s.cache.Set(ctx, statsCacheKey(userUID), stats, statsCacheTTL); err != nil {
		s.log.Warn("failed to cache stats", sl.Err(err))
	}
	return stats, nil
}

func (s *CatalogService) cacheProduct(ctx context.Context, product *models.Product) {
	key := productCacheKey(product.UserUID, product.ID)
	if err := s.cache.Set(ctx, key, product, productCacheTTL); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", key), sl.Err(err))
	}
}

func (s *CatalogService) invalidateStats(ctx context.Context, userUID string) {
	if err := s.cache.Invalidate(ctx, statsCacheKey(userUID)); err != nil {
		s.log.Warn("failed to invalidate stats cache", sl.Err(err))
	}
}

func productCacheKey(userUID, id string) string {
	return fmt.Sprintf("product:%s:%s", userUID, id)
}

func statsCacheKey(userUID string) string {
	return fmt.Sprintf("stats:%s", userUID)
}

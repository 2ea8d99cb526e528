package service

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"time"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/repo"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/pkg/utils"
)

type CatalogRepo interface {
	ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
	ProductByID(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context, f repo.ListFilter) ([]entities.Product, int, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// ListRequest is the storefront filter state for one listing page.
type ListRequest struct {
	Search     string
	CategoryID string
	MinPrice   int
	MaxPrice   int
	SortBy     string
	Page       int
	PageSize   int
}

// ListResult is one bounded, sorted listing page.
type ListResult struct {
	Items       []entities.Product
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

const (
	defaultPageSize = 12
	maxPageSize     = 60
)

type catalogService struct {
	logger *slog.Logger
	repo   CatalogRepo
	cache  Cache
}

func NewCatalogService(logger *slog.Logger, catalogRepo CatalogRepo, cache Cache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   catalogRepo,
		cache:  cache,
	}
}

// ProductsByIDs resolves the given product ids to live active products,
// de-duplicating the input first. An empty input is valid and yields an
// empty result.
func (s *catalogService) ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return s.repo.ProductsByIDs(ctx, unique)
}

func productCacheKey(id string) string { return "product:" + id }

// ProductByID reads a single product through the cache.
func (s *catalogService) ProductByID(ctx context.Context, id string) (entities.Product, error) {
	if data, ok := s.cache.Get(productCacheKey(id)); ok {
		var product entities.Product
		if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&product); err == nil {
			return product, nil
		}
		s.cache.Delete(productCacheKey(id))
	}

	var product entities.Product
	fn := func() error {
		var err error
		product, err = s.repo.ProductByID(ctx, id)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrProductNotFound); err != nil {
		return entities.Product{}, err
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(product); err != nil {
		s.logger.Error("failed to encode product for cache", slog.Any("error", err))
	} else {
		s.cache.Set(productCacheKey(id), buf.Bytes())
	}
	return product, nil
}

// List builds one listing page. A page past the last one returns an empty
// item list with the correct totals, not an error.
func (s *catalogService) List(ctx context.Context, req ListRequest) (ListResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}

	items, total, err := s.repo.ListProducts(ctx, repo.ListFilter{
		Search:     req.Search,
		CategoryID: req.CategoryID,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		SortBy:     req.SortBy,
		Limit:      uint64(req.PageSize),
		Offset:     uint64(req.Page-1) * uint64(req.PageSize),
	})
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list products: %w", err)
	}

	totalPages := (total + req.PageSize - 1) / req.PageSize

	return ListResult{
		Items:       items,
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: req.Page,
	}, nil
}

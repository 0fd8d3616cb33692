package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/doohosteel/ptop/internal/ptop/engine"
	"github.com/doohosteel/ptop/internal/ptop/entity"
	"github.com/doohosteel/ptop/internal/ptop/repository"
)

const catalogCacheKey = "ptop:catalog:snapshot"

// CatalogService 다섯 테이블(모델/BOM/주자재/부자재/단가)을 읽어 엔진용
// 불변 스냅샷을 만든다. 스냅샷은 redis 에 JSON 으로 캐시되며 BOM/자재
// 쓰기 경로에서 Invalidate 된다.
type CatalogService struct {
	repos    *repository.Repositories
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewCatalogService(repos *repository.Repositories, rdb *redis.Client, cacheTTL time.Duration) *CatalogService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &CatalogService{repos: repos, rdb: rdb, cacheTTL: cacheTTL}
}

// Snapshot 카탈로그 스냅샷 조회. 캐시 히트 시 DB 를 건드리지 않는다.
func (s *CatalogService) Snapshot(ctx context.Context) (*engine.Catalog, error) {
	if s.rdb != nil {
		if data, err := s.rdb.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var cat engine.Catalog
			if err := json.Unmarshal(data, &cat); err == nil {
				return &cat, nil
			}
			// 캐시가 깨졌으면 버리고 새로 적재
			s.rdb.Del(ctx, catalogCacheKey)
		}
	}

	cat, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(cat); err == nil {
			s.rdb.Set(ctx, catalogCacheKey, data, s.cacheTTL)
		}
	}
	return cat, nil
}

// Invalidate 캐시 무효화 (BOM/자재/단가 변경 후 호출)
func (s *CatalogService) Invalidate(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, catalogCacheKey)
	}
}

func (s *CatalogService) load(ctx context.Context) (*engine.Catalog, error) {
	models, err := s.repos.Model.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	bomLines, err := s.repos.BOM.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	mains, err := s.repos.MainMaterial.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.repos.SubMaterial.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	pricing, err := s.repos.Pricing.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byModel := make(map[string][]entity.BOMLine, len(models))
	for _, line := range bomLines {
		byModel[line.ModelID] = append(byModel[line.ModelID], line)
	}

	return &engine.Catalog{
		Models:        models,
		BOMByModel:    byModel,
		MainMaterials: mains,
		SubMaterials:  subs,
		Pricing:       pricing,
	}, nil
}

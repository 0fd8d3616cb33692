package service

import (
	"context"
	"strings"

	"github.com/doohosteel/ptop/internal/ptop/entity"
	"github.com/doohosteel/ptop/internal/ptop/repository"
)

// ModelService 모델 검색/조회
type ModelService struct {
	modelRepo *repository.ModelRepository
	bomRepo   *repository.BOMRepository
}

func NewModelService(modelRepo *repository.ModelRepository, bomRepo *repository.BOMRepository) *ModelService {
	return &ModelService{modelRepo: modelRepo, bomRepo: bomRepo}
}

// Search 통합 검색. 빈 질의면 분류 필터만 적용한 목록을 준다.
func (s *ModelService) Search(ctx context.Context, query, category string) ([]entity.Model, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.modelRepo.List(ctx, category, "")
	}
	return s.modelRepo.Search(ctx, query)
}

// Get 모델명으로 단건 조회
func (s *ModelService) Get(ctx context.Context, modelName string) (*entity.Model, error) {
	return s.modelRepo.FindByName(ctx, strings.TrimSpace(modelName))
}

// Categories 분류 목록
func (s *ModelService) Categories(ctx context.Context) ([]string, error) {
	return s.modelRepo.Categories(ctx)
}

package service

import (
	"context"
	"strings"

	"github.com/doohosteel/ptop/internal/ptop/entity"
	"github.com/doohosteel/ptop/internal/ptop/repository"
)

// MaterialService 자재표(주자재/부자재)와 재고 조회
type MaterialService struct {
	mainRepo      *repository.MainMaterialRepository
	subRepo       *repository.SubMaterialRepository
	inventoryRepo *repository.InventoryRepository
}

func NewMaterialService(mainRepo *repository.MainMaterialRepository, subRepo *repository.SubMaterialRepository, inventoryRepo *repository.InventoryRepository) *MaterialService {
	return &MaterialService{mainRepo: mainRepo, subRepo: subRepo, inventoryRepo: inventoryRepo}
}

// SearchMain 주자재 검색 (품명/규격 부분 일치)
func (s *MaterialService) SearchMain(ctx context.Context, keyword string) ([]entity.MainMaterial, error) {
	return s.mainRepo.List(ctx, strings.TrimSpace(keyword))
}

// SearchSub 부자재 검색 (품명/규격 부분 일치 + 공급업체 필터)
func (s *MaterialService) SearchSub(ctx context.Context, keyword, supplier string) ([]entity.SubMaterial, error) {
	return s.subRepo.List(ctx, strings.TrimSpace(keyword), strings.TrimSpace(supplier))
}

// ListInventory 재고 목록
func (s *MaterialService) ListInventory(ctx context.Context, keyword string) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.List(ctx, strings.TrimSpace(keyword))
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create 재고 항목 생성
func (r *InventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID ID 로 재고 항목 조회
func (r *InventoryRepository) FindByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &item, nil
}

// List 재고 목록. 재질/규격 키워드 필터 지원.
func (r *InventoryRepository) List(ctx context.Context, keyword string) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	query := r.db.WithContext(ctx)
	if keyword != "" {
		query = query.Where("product_name ILIKE ? OR standard ILIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	err := query.Order("product_name, standard").Find(&items).Error
	return items, err
}

// Update 재고 항목 수정
func (r *InventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// AdjustQuantity 잔여재고 증감 (입고 양수 / 출고 음수)
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, id string, delta float64) error {
	return r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Where("id = ?", id).
		Update("current_quantity", gorm.Expr("current_quantity + ?", delta)).Error
}

// Delete 재고 항목 삭제
func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

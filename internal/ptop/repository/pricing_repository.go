package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

type PricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

// Create 단가 행 생성
func (r *PricingRepository) Create(ctx context.Context, record *entity.PricingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByModelName 모델명으로 단가 행 조회
func (r *PricingRepository) FindByModelName(ctx context.Context, modelName string) (*entity.PricingRecord, error) {
	var record entity.PricingRecord
	err := r.db.WithContext(ctx).First(&record, "model_name = ?", modelName).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &record, nil
}

// ListAll 전체 단가표 (카탈로그 스냅샷 적재용)
func (r *PricingRepository) ListAll(ctx context.Context) ([]entity.PricingRecord, error) {
	var records []entity.PricingRecord
	err := r.db.WithContext(ctx).Order("model_name").Find(&records).Error
	return records, err
}

// Update 단가 행 수정
func (r *PricingRepository) Update(ctx context.Context, record *entity.PricingRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete 단가 행 삭제
func (r *PricingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.PricingRecord{}, "id = ?", id).Error
}

// BulkReplace 단가표 전체 교체 (단가표 업로드용)
func (r *PricingRepository) BulkReplace(ctx context.Context, records []entity.PricingRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.PricingRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, 200).Error
	})
}

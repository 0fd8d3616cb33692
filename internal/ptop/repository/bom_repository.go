package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

type BOMRepository struct {
	db *gorm.DB
}

func NewBOMRepository(db *gorm.DB) *BOMRepository {
	return &BOMRepository{db: db}
}

func (r *BOMRepository) DB() *gorm.DB {
	return r.db
}

// Create BOM 행 생성
func (r *BOMRepository) Create(ctx context.Context, line *entity.BOMLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

// FindByKey 업서트 키 (모델, 품목, 규격) 로 행 조회
func (r *BOMRepository) FindByKey(ctx context.Context, modelID, materialName, standard string) (*entity.BOMLine, error) {
	var line entity.BOMLine
	err := r.db.WithContext(ctx).
		First(&line, "model_id = ? AND material_name = ? AND standard = ?", modelID, materialName, standard).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &line, nil
}

// ListByModel 모델의 BOM 행 목록
func (r *BOMRepository) ListByModel(ctx context.Context, modelID string) ([]entity.BOMLine, error) {
	var lines []entity.BOMLine
	err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("material_name, standard").
		Find(&lines).Error
	return lines, err
}

// ListAll 전체 BOM 행 (카탈로그 스냅샷 적재용)
func (r *BOMRepository) ListAll(ctx context.Context) ([]entity.BOMLine, error) {
	var lines []entity.BOMLine
	err := r.db.WithContext(ctx).Order("model_id, material_name").Find(&lines).Error
	return lines, err
}

// Update BOM 행 수정
func (r *BOMRepository) Update(ctx context.Context, line *entity.BOMLine) error {
	return r.db.WithContext(ctx).Save(line).Error
}

// Delete BOM 행 삭제
func (r *BOMRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.BOMLine{}, "id = ?", id).Error
}

// DeleteByKey 업서트 키로 행 삭제. 지워진 행 수를 돌려준다.
func (r *BOMRepository) DeleteByKey(ctx context.Context, modelID, materialName, standard string) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&entity.BOMLine{}, "model_id = ? AND material_name = ? AND standard = ?", modelID, materialName, standard)
	return result.RowsAffected, result.Error
}

// ReplaceForModel 모델의 BOM 을 통째로 교체 (일괄 업로드용)
func (r *BOMRepository) ReplaceForModel(ctx context.Context, modelID string, lines []entity.BOMLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.BOMLine{}, "model_id = ?", modelID).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.CreateInBatches(lines, 200).Error
	})
}

// CountByModel 모델의 BOM 행 수
func (r *BOMRepository) CountByModel(ctx context.Context, modelID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.BOMLine{}).Where("model_id = ?", modelID).Count(&count).Error
	return count, err
}

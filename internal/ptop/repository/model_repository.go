package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

type ModelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

// Create 모델 생성
func (r *ModelRepository) Create(ctx context.Context, model *entity.Model) error {
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID ID 로 모델 조회
func (r *ModelRepository) FindByID(ctx context.Context, id string) (*entity.Model, error) {
	var model entity.Model
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &model, nil
}

// FindByName 모델명으로 조회
func (r *ModelRepository) FindByName(ctx context.Context, name string) (*entity.Model, error) {
	var model entity.Model
	err := r.db.WithContext(ctx).First(&model, "model_name = ?", name).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &model, nil
}

// List 모델 목록. 분류 필터와 키워드(모델명 부분 일치)를 지원한다.
func (r *ModelRepository) List(ctx context.Context, category, keyword string) ([]entity.Model, error) {
	var models []entity.Model
	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if keyword != "" {
		query = query.Where("model_name ILIKE ?", "%"+keyword+"%")
	}
	err := query.Order("model_name").Find(&models).Error
	return models, err
}

// Search 모델명/분류/규격/식별번호 부분 일치 통합 검색
func (r *ModelRepository) Search(ctx context.Context, query string) ([]entity.Model, error) {
	var models []entity.Model
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("model_name ILIKE ? OR category ILIKE ? OR model_standard ILIKE ? OR identifier_number LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("model_name").
		Limit(50).
		Find(&models).Error
	return models, err
}

// ListAll 전체 모델 (카탈로그 스냅샷 적재용)
func (r *ModelRepository) ListAll(ctx context.Context) ([]entity.Model, error) {
	var models []entity.Model
	err := r.db.WithContext(ctx).Order("model_name").Find(&models).Error
	return models, err
}

// Update 모델 수정
func (r *ModelRepository) Update(ctx context.Context, model *entity.Model) error {
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete 모델 삭제 (BOM 행도 함께 정리)
func (r *ModelRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.BOMLine{}, "model_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Model{}, "id = ?", id).Error
	})
}

// Categories 사용 중인 분류 목록
func (r *ModelRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&entity.Model{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

type MainMaterialRepository struct {
	db *gorm.DB
}

func NewMainMaterialRepository(db *gorm.DB) *MainMaterialRepository {
	return &MainMaterialRepository{db: db}
}

// Create 주자재 생성
func (r *MainMaterialRepository) Create(ctx context.Context, material *entity.MainMaterial) error {
	return r.db.WithContext(ctx).Create(material).Error
}

// FindByID ID 로 주자재 조회
func (r *MainMaterialRepository) FindByID(ctx context.Context, id string) (*entity.MainMaterial, error) {
	var material entity.MainMaterial
	err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &material, nil
}

// List 주자재 목록. 품명/규격 키워드 필터 지원.
func (r *MainMaterialRepository) List(ctx context.Context, keyword string) ([]entity.MainMaterial, error) {
	var materials []entity.MainMaterial
	query := r.db.WithContext(ctx)
	if keyword != "" {
		query = query.Where("product_name ILIKE ? OR standard ILIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	err := query.Order("product_name, standard").Find(&materials).Error
	return materials, err
}

// ListAll 전체 주자재 (카탈로그 스냅샷 적재용)
func (r *MainMaterialRepository) ListAll(ctx context.Context) ([]entity.MainMaterial, error) {
	var materials []entity.MainMaterial
	err := r.db.WithContext(ctx).Order("product_name, standard").Find(&materials).Error
	return materials, err
}

// Update 주자재 수정
func (r *MainMaterialRepository) Update(ctx context.Context, material *entity.MainMaterial) error {
	return r.db.WithContext(ctx).Save(material).Error
}

// Delete 주자재 삭제
func (r *MainMaterialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.MainMaterial{}, "id = ?", id).Error
}

// BulkReplace 주자재 단가표 전체 교체 (단가표 업로드용)
func (r *MainMaterialRepository) BulkReplace(ctx context.Context, materials []entity.MainMaterial) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.MainMaterial{}).Error; err != nil {
			return err
		}
		if len(materials) == 0 {
			return nil
		}
		return tx.CreateInBatches(materials, 200).Error
	})
}

type SubMaterialRepository struct {
	db *gorm.DB
}

func NewSubMaterialRepository(db *gorm.DB) *SubMaterialRepository {
	return &SubMaterialRepository{db: db}
}

// Create 부자재 생성
func (r *SubMaterialRepository) Create(ctx context.Context, material *entity.SubMaterial) error {
	return r.db.WithContext(ctx).Create(material).Error
}

// FindByID ID 로 부자재 조회
func (r *SubMaterialRepository) FindByID(ctx context.Context, id string) (*entity.SubMaterial, error) {
	var material entity.SubMaterial
	err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &material, nil
}

// List 부자재 목록. 품명/규격 키워드와 공급업체 필터 지원.
func (r *SubMaterialRepository) List(ctx context.Context, keyword, supplier string) ([]entity.SubMaterial, error) {
	var materials []entity.SubMaterial
	query := r.db.WithContext(ctx)
	if keyword != "" {
		query = query.Where("product_name ILIKE ? OR standard ILIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	if supplier != "" {
		query = query.Where("supplier = ?", supplier)
	}
	err := query.Order("product_name, standard").Find(&materials).Error
	return materials, err
}

// ListAll 전체 부자재 (카탈로그 스냅샷 적재용)
func (r *SubMaterialRepository) ListAll(ctx context.Context) ([]entity.SubMaterial, error) {
	var materials []entity.SubMaterial
	err := r.db.WithContext(ctx).Order("product_name, standard").Find(&materials).Error
	return materials, err
}

// Update 부자재 수정
func (r *SubMaterialRepository) Update(ctx context.Context, material *entity.SubMaterial) error {
	return r.db.WithContext(ctx).Save(material).Error
}

// Delete 부자재 삭제
func (r *SubMaterialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.SubMaterial{}, "id = ?", id).Error
}

// BulkReplace 부자재 단가표 전체 교체
func (r *SubMaterialRepository) BulkReplace(ctx context.Context, materials []entity.SubMaterial) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.SubMaterial{}).Error; err != nil {
			return err
		}
		if len(materials) == 0 {
			return nil
		}
		return tx.CreateInBatches(materials, 200).Error
	})
}

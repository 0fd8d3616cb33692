package repository

import (
	"errors"

	"gorm.io/gorm"
)

// 에러 정의
var (
	ErrNotFound = errors.New("record not found")
)

// Repositories 저장소 집합
type Repositories struct {
	Model        *ModelRepository
	Pricing      *PricingRepository
	BOM          *BOMRepository
	MainMaterial *MainMaterialRepository
	SubMaterial  *SubMaterialRepository
	Inventory    *InventoryRepository
}

// NewRepositories 저장소 집합 생성
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Model:        NewModelRepository(db),
		Pricing:      NewPricingRepository(db),
		BOM:          NewBOMRepository(db),
		MainMaterial: NewMainMaterialRepository(db),
		SubMaterial:  NewSubMaterialRepository(db),
		Inventory:    NewInventoryRepository(db),
	}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

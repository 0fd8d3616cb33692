package entity

import (
	"time"
)

// BOM 행 분류의 특수값. MANUAL 행은 단가/규격을 외부 자재표에서 찾지 않고
// 행 자체에 내장된 값을 쓰며, 사용자 편집/삭제가 허용되는 유일한 분류다.
const BOMCategoryManual = "MANUAL"

// BOMLine 모델별 BOM 한 행. 수량은 세트(경간)당 기준이다.
// (model_id, material_name, standard) 조합이 업서트 키이며 중복 공존 불가.
type BOMLine struct {
	ID           string    `json:"id" gorm:"primaryKey;size:32"`
	ModelID      string    `json:"model_id" gorm:"size:32;not null;uniqueIndex:idx_bom_model_material_standard"`
	MaterialName string    `json:"material_name" gorm:"size:128;not null;uniqueIndex:idx_bom_model_material_standard"`
	Standard     string    `json:"standard" gorm:"size:128;uniqueIndex:idx_bom_model_material_standard"`
	Unit         string    `json:"unit" gorm:"size:16"`
	Quantity     float64   `json:"quantity" gorm:"type:decimal(15,4)"` // 세트당 수량
	Category     string    `json:"category" gorm:"size:64"`            // 단가 결정/환산 분기 (예: HGI PIPE, MANUAL)
	UnitPrice    float64   `json:"unit_price" gorm:"type:decimal(15,2)"` // MANUAL 전용 내장 단가
	Notes        string    `json:"notes" gorm:"size:256"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (BOMLine) TableName() string {
	return "bom"
}

package entity

import (
	"time"
)

// MainMaterial 주자재 단가표 (파이프, 각관 등 구조재).
// 단가는 표준길이 1본 기준이며, 파이프 분류는 m당 단가로 환산되어 쓰인다.
type MainMaterial struct {
	ID           string    `json:"id" gorm:"primaryKey;size:32"`
	ProductName  string    `json:"product_name" gorm:"size:128;not null;index"` // BOM 분류와 정확 일치로 매칭
	Standard     string    `json:"standard" gorm:"size:128"`
	UnitPrice    float64   `json:"unit_price" gorm:"type:decimal(15,2)"` // 1본(표준길이) 단가
	UnitLengthM  float64   `json:"unit_length_m" gorm:"type:decimal(8,2);default:6.0"`
	MaterialType string    `json:"material_type" gorm:"size:32"` // 재질 (아연도, STS 등)
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MainMaterial) TableName() string {
	return "main_materials"
}

// SubMaterial 부자재 단가표 (볼트, 실리콘 등 소모성 자재)
type SubMaterial struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	ProductName string    `json:"product_name" gorm:"size:128;not null;index"`
	Standard    string    `json:"standard" gorm:"size:128"`
	Unit        string    `json:"unit" gorm:"size:16"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:decimal(15,2)"`
	Notes       string    `json:"notes" gorm:"size:256"`
	Supplier    string    `json:"supplier" gorm:"size:128"` // 업체명
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SubMaterial) TableName() string {
	return "sub_materials"
}

// InventoryItem 자재 재고 현황
type InventoryItem struct {
	ID              string    `json:"id" gorm:"primaryKey;size:32"`
	ItemID          string    `json:"item_id" gorm:"size:64;index"`
	ProductName     string    `json:"product_name" gorm:"size:128"` // 재질
	Standard        string    `json:"standard" gorm:"size:128"`
	Thickness       string    `json:"thickness" gorm:"size:32"`
	UnitLengthM     float64   `json:"unit_length_m" gorm:"type:decimal(8,2);default:6.0"`
	UnitPrice       float64   `json:"unit_price" gorm:"type:decimal(15,2)"`
	CurrentQuantity float64   `json:"current_quantity" gorm:"type:decimal(15,4)"` // 잔여재고
	Unit            string    `json:"unit" gorm:"size:16"`
	Supplier        string    `json:"supplier" gorm:"size:128"`
	Notes           string    `json:"notes" gorm:"size:256"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

package entity

import (
	"time"
)

// Model 판매 가능한 파라메트릭 제품 모델 (디자인형 울타리, 차양, 볼라드 등)
type Model struct {
	ID               string    `json:"id" gorm:"primaryKey;size:32"`
	ModelName        string    `json:"model_name" gorm:"size:128;not null;uniqueIndex"`
	Category         string    `json:"category" gorm:"size:64"`          // 자유 분류 (예: 디자인형, 차양)
	ModelStandard    string    `json:"model_standard" gorm:"size:128"`   // 규격 문자열, 세트폭 추출원 (예: W2000)
	IdentifierNumber string    `json:"identifier_number" gorm:"size:64"` // 조달청 식별번호
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Model) TableName() string {
	return "models"
}

// PricingRecord 모델 단가표 (견적서 단가 조회용)
type PricingRecord struct {
	ID               string    `json:"id" gorm:"primaryKey;size:32"`
	ModelName        string    `json:"model_name" gorm:"size:128;not null;index"`
	Standard         string    `json:"standard" gorm:"size:128"`
	Unit             string    `json:"unit" gorm:"size:16"`
	UnitPrice        float64   `json:"unit_price" gorm:"type:decimal(15,2)"`
	IdentifierNumber string    `json:"identifier_number" gorm:"size:64"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (PricingRecord) TableName() string {
	return "pricing"
}

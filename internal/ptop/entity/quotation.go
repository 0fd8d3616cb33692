package entity

import (
	"time"
)

// 판매 항목의 출처. SourceManual 은 카탈로그 모델 없이 직접 입력된 행이다.
const SourceManual = "MANUAL"

// SitePlanEntry 한 모델의 현장 배치 계획.
// 경간수 = ceil(총길이 / 세트폭), 총길이 0 이면 0.
type SitePlanEntry struct {
	WidthM       float64 `json:"width_m"`        // 규격 문자열에서 추정한 세트폭(m)
	TotalLengthM float64 `json:"total_length_m"` // 거래처가 준 총 길이(m)
	SpanCount    int     `json:"span_count"`
}

// SitePlan 모델명 → 배치 계획
type SitePlan map[string]SitePlanEntry

// TotalLengthM 계획 전체의 총 길이(m) 합계
func (p SitePlan) TotalLengthM() float64 {
	var total float64
	for _, entry := range p {
		total += entry.TotalLengthM
	}
	return total
}

// SiteInfo 현장 정보 (문서 헤더로 전달됨)
type SiteInfo struct {
	SiteName     string    `json:"site_name"`
	Foundation   string    `json:"foundation"` // 기초형 / 앙카형
	DeliveryDate time.Time `json:"delivery_date"`
	Plan         SitePlan  `json:"plan"`
}

// SoldItem 견적 대상 판매 항목. 모델 기반이거나 수동 입력(MANUAL)이다.
type SoldItem struct {
	ModelName    string  `json:"model_name"`
	MaterialName string  `json:"material_name"` // MANUAL 행의 품목명
	Standard     string  `json:"standard"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"` // MANUAL 전용
	Notes        string  `json:"notes"`
	Source       string  `json:"source"`
}

// QuotationItem 견적서 한 행
type QuotationItem struct {
	ModelName        string  `json:"model_name"`
	MaterialName     string  `json:"material_name,omitempty"`
	Specification    string  `json:"specification"`
	Unit             string  `json:"unit"`
	Quantity         float64 `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	SupplyAmount     float64 `json:"supply_amount"`
	Notes            string  `json:"notes"`
	IdentifierNumber string  `json:"identifier_number"`
	Source           string  `json:"source,omitempty"`
}

// Quotation 견적서. 카탈로그 스냅샷과 입력만의 순수 함수 결과이며 상태를 갖지 않는다.
type Quotation struct {
	SiteInfo         SiteInfo        `json:"site_info"`
	ContractType     string          `json:"contract_type"` // 관급 / 사급
	Items            []QuotationItem `json:"items"`
	TotalSupplyPrice float64         `json:"total_supply_price"`
	VATAmount        float64         `json:"vat_amount"`
	TotalAmount      float64         `json:"total_amount"`
	CreatedAt        time.Time       `json:"created_at"`
}

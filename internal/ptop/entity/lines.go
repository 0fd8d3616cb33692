package entity

// 전개 결과에서 모델 구분 헤더 행이 갖는 분류값
const CategoryModelHeader = "MODEL_HEADER"

// ResolvedMaterialLine BOM 전개 엔진의 출력 단위. 매 전개마다 새로 만들어지는
// 일회성 값이며 문서 생성 스냅샷 외에는 저장되지 않는다.
type ResolvedMaterialLine struct {
	MaterialName string  `json:"material_name"`
	Standard     string  `json:"standard"` // 해석된 규격 (파이프는 길이 접미 포함 가능)
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	ModelName    string  `json:"model_name"`
	Category     string  `json:"category"`
	Notes        string  `json:"notes"`
	IsHeader     bool    `json:"is_header,omitempty"` // 모델 구분 헤더 행 (수량 0)
}

// Amount 행 금액 (수량 × 단가)
func (l ResolvedMaterialLine) Amount() float64 {
	return l.Quantity * l.UnitPrice
}

// PurchaseItem 발주 항목. 파이프 분류는 소요 길이가 본 수(EA)로 환산된 상태다.
type PurchaseItem struct {
	MaterialName   string  `json:"material_name"`
	Standard       string  `json:"standard"`
	Unit           string  `json:"unit"`
	Quantity       float64 `json:"quantity"`
	Category       string  `json:"category"`
	ModelReference string  `json:"model_reference"` // 최초 귀속 모델 (병합 후 대표값)
}

// PurchaseGroup 재질별 발주 묶음. 공급업체 한 곳으로 나가는 발주서 단위다.
type PurchaseGroup struct {
	MaterialType string         `json:"material_type"` // 아연도 / STS
	Items        []PurchaseItem `json:"items"`
}

package engine

import (
	"fmt"
	"strings"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

// Engine 수량/단가 해석 파이프라인. 키워드 규칙만 상태로 갖는 순수 계산기다.
type Engine struct {
	kw Keywords
}

// New 엔진 생성. 키워드의 빈 항목은 레거시 기본값으로 채운다.
func New(kw Keywords) *Engine {
	return &Engine{kw: kw.normalized()}
}

// Keywords 현재 적용 중인 키워드 규칙
func (e *Engine) Keywords() Keywords {
	return e.kw
}

// ResolvedMaterial 자재 해석 결과. Found=false 는 "미해결" 상태이며
// 호출자는 진단을 남기고 다음 행을 계속 처리해야 한다 (치명 오류 아님).
type ResolvedMaterial struct {
	FullStandard string  // 표시용 완전 규격 (파이프는 ×길이m 접미 포함)
	Standard     string  // 매칭된 원본 규격
	ProductName  string  // 매칭된 품목명
	UnitPrice    float64 // 파이프 분류는 m당 단가로 환산된 값
	StockLengthM float64 // 표준길이 (주자재 매칭 시)
	FromMain     bool    // 주자재표에서 찾았는지
	Found        bool
}

// ResolveLine BOM 행의 단가/규격 해석. MANUAL 분류는 외부 조회 없이
// 행에 내장된 값을 그대로 쓴다.
func (e *Engine) ResolveLine(cat *Catalog, line entity.BOMLine, diag *Diagnostics) ResolvedMaterial {
	if strings.TrimSpace(line.Category) == entity.BOMCategoryManual {
		std := strings.TrimSpace(line.Standard)
		return ResolvedMaterial{
			FullStandard: std,
			Standard:     std,
			ProductName:  line.MaterialName,
			UnitPrice:    line.UnitPrice,
			StockLengthM: DefaultStockLengthM,
			Found:        true,
		}
	}
	return e.ResolveMaterial(cat, line.Category, line.Standard, line.MaterialName, diag)
}

// ResolveMaterial 분류/규격/품목명으로 자재표를 검색한다. 우선순위:
//  1. 주자재표에서 품목명 == 분류(trim 정확 일치) 행 중 규격 동치인 첫 행.
//     파이프 분류면 본 단가를 표준길이로 나눠 m당 단가로, 규격에는 ×길이m 접미.
//  2. 부자재표에서 품목명 부분 일치(대소문자 무시) 첫 행, 없으면 규격 부분 일치 첫 행.
//  3. 모두 실패 → 빈 결과 + 진단. 호출자는 계속 진행한다.
func (e *Engine) ResolveMaterial(cat *Catalog, category, standard, materialName string, diag *Diagnostics) ResolvedMaterial {
	wantCategory := strings.TrimSpace(category)
	wantStandard := strings.TrimSpace(TrimLengthSuffix(standard))

	categoryFound := false
	for i := range cat.MainMaterials {
		m := &cat.MainMaterials[i]
		if strings.TrimSpace(m.ProductName) != wantCategory {
			continue
		}
		categoryFound = true
		mainStandard := strings.TrimSpace(TrimLengthSuffix(m.Standard))
		if EquivalentSpec(wantStandard, mainStandard) {
			return e.resultFromMain(m, wantCategory)
		}
	}
	if categoryFound {
		diag.Warnf("자재 매칭 주의: 카테고리 %q 는 찾았지만 규격 %q 와 일치하는 항목이 주자재에 없어 부자재에서 검색합니다", category, standard)
	}

	if name := strings.TrimSpace(materialName); name != "" {
		for i := range cat.SubMaterials {
			if containsFold(cat.SubMaterials[i].ProductName, name) {
				return resultFromSub(&cat.SubMaterials[i])
			}
		}
	}
	if wantStandard != "" {
		for i := range cat.SubMaterials {
			if containsFold(cat.SubMaterials[i].Standard, wantStandard) {
				return resultFromSub(&cat.SubMaterials[i])
			}
		}
	}

	diag.UnresolvedCount++
	diag.Warnf("자재 찾기 실패: 카테고리 %q / 규격 %q / 품목 %q", category, standard, materialName)
	return ResolvedMaterial{}
}

func (e *Engine) resultFromMain(m *entity.MainMaterial, category string) ResolvedMaterial {
	stockLength := m.UnitLengthM
	if stockLength <= 0 {
		stockLength = DefaultStockLengthM
	}
	price := m.UnitPrice
	standard := strings.TrimSpace(m.Standard)
	full := standard
	if e.kw.IsPipeCategory(category) {
		// BOM 수량이 m 단위이므로 본 단가를 m당 단가로 환산
		price = price / stockLength
		full = fmt.Sprintf("%s×%sm", standard, formatStockLength(stockLength))
	}
	return ResolvedMaterial{
		FullStandard: full,
		Standard:     standard,
		ProductName:  m.ProductName,
		UnitPrice:    price,
		StockLengthM: stockLength,
		FromMain:     true,
		Found:        true,
	}
}

func resultFromSub(s *entity.SubMaterial) ResolvedMaterial {
	standard := strings.TrimSpace(s.Standard)
	return ResolvedMaterial{
		FullStandard: standard,
		Standard:     standard,
		ProductName:  s.ProductName,
		UnitPrice:    s.UnitPrice,
		Found:        true,
	}
}

// StockLengthFor 규격 부분 일치로 주자재표에서 표준길이를 찾는다. 없으면 기본 6.0m.
func (e *Engine) StockLengthFor(cat *Catalog, standard string) float64 {
	want := strings.TrimSpace(TrimLengthSuffix(standard))
	if want == "" {
		return DefaultStockLengthM
	}
	for i := range cat.MainMaterials {
		if containsFold(cat.MainMaterials[i].Standard, want) {
			if l := cat.MainMaterials[i].UnitLengthM; l > 0 {
				return l
			}
			return DefaultStockLengthM
		}
	}
	return DefaultStockLengthM
}

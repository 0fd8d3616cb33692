package engine

import (
	"sort"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

// 재질 타입 버킷. 분류 실패 시 아연도가 기본값인 것은 "발주를 막지 않는다"는
// 의도된 정책이다. 조용히 버리는 대신 Diagnostics.UnclassifiedCount 로 드러낸다.
const (
	MaterialTypeGalvanized = "아연도"
	MaterialTypeStainless  = "STS"
)

// MergeDuplicates (품목, 규격) 이 같은 행을 수량 합산으로 병합한다.
// 헤더 행은 버린다. 첫 행의 나머지 속성이 유지되며 모델 참조는 대표값이 된다
// (발주서는 물리 품목당 총량만 필요하므로 귀속 모델 정보 손실은 허용).
func MergeDuplicates(lines []entity.ResolvedMaterialLine) []entity.ResolvedMaterialLine {
	out := make([]entity.ResolvedMaterialLine, 0, len(lines))
	index := make(map[[2]string]int, len(lines))
	for _, line := range lines {
		if line.IsHeader {
			continue
		}
		key := [2]string{line.MaterialName, line.Standard}
		if i, ok := index[key]; ok {
			out[i].Quantity += line.Quantity
			continue
		}
		index[key] = len(out)
		out = append(out, line)
	}
	return out
}

// GroupByMaterialType 발주 항목을 재질 타입별로 묶는다. 판정 순서:
//  1. 분류에 아연도 키워드(HGI, 아연도) 포함 → 아연도
//  2. 분류에 STS 포함 → STS
//  3. 주자재표에서 품목명/규격 부분 일치 행의 재질 필드 참조
//  4. 그래도 모르면 아연도 (진단 카운트 증가)
func (e *Engine) GroupByMaterialType(cat *Catalog, items []entity.PurchaseItem, diag *Diagnostics) map[string][]entity.PurchaseItem {
	groups := make(map[string][]entity.PurchaseItem)
	for _, item := range items {
		materialType := e.classifyMaterialType(cat, item, diag)
		groups[materialType] = append(groups[materialType], item)
	}
	return groups
}

// SortedGroups 재질 타입명 순으로 정렬된 발주 묶음 목록 (문서 생성 순서 고정용)
func (e *Engine) SortedGroups(cat *Catalog, items []entity.PurchaseItem, diag *Diagnostics) []entity.PurchaseGroup {
	byType := e.GroupByMaterialType(cat, items, diag)
	names := make([]string, 0, len(byType))
	for name := range byType {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]entity.PurchaseGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, entity.PurchaseGroup{MaterialType: name, Items: byType[name]})
	}
	return groups
}

func (e *Engine) classifyMaterialType(cat *Catalog, item entity.PurchaseItem, diag *Diagnostics) string {
	if containsAny(item.Category, e.kw.Galvanized) {
		return MaterialTypeGalvanized
	}
	if containsAny(item.Category, e.kw.Stainless) {
		return MaterialTypeStainless
	}

	for i := range cat.MainMaterials {
		m := &cat.MainMaterials[i]
		nameHit := item.MaterialName != "" && containsFold(m.ProductName, item.MaterialName)
		specHit := item.Standard != "" && containsFold(m.Standard, item.Standard)
		if !nameHit && !specHit {
			continue
		}
		if containsAny(m.MaterialType, e.kw.Stainless) {
			return MaterialTypeStainless
		}
		if containsAny(m.MaterialType, e.kw.Galvanized) {
			return MaterialTypeGalvanized
		}
		break // 첫 일치 행의 재질만 본다 (레거시 규칙)
	}

	diag.UnclassifiedCount++
	diag.Warnf("재질 분류 실패: 품목 %q / 규격 %q → 기본값 %s 로 발주", item.MaterialName, item.Standard, MaterialTypeGalvanized)
	return MaterialTypeGalvanized
}

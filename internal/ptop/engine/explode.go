package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

// BuildSitePlan 모델별 총 길이(m) 입력으로 배치 계획을 만든다.
// 세트폭은 모델 규격 문자열에서 추정, 경간수 = ceil(총길이/세트폭).
func (e *Engine) BuildSitePlan(cat *Catalog, lengths map[string]float64) entity.SitePlan {
	plan := make(entity.SitePlan, len(lengths))
	for name, totalLength := range lengths {
		width := DefaultSpanWidthM
		if model, ok := cat.ModelByName(name); ok {
			width = SetWidthFromStandard(model.ModelStandard, DefaultSpanWidthM)
		}
		spanCount := 0
		if totalLength > 0 && width > 0 {
			spanCount = int(math.Ceil(totalLength / width))
		}
		plan[name] = entity.SitePlanEntry{
			WidthM:       width,
			TotalLengthM: totalLength,
			SpanCount:    spanCount,
		}
	}
	return plan
}

// SpanMultiplier 모델에 적용할 경간 배수. 계획에 모델이 있으면 그 경간수,
// 없으면 defaultCount. 차양 계열 모델은 세트가 아니라 통짜 단가이므로 무조건 1.
func (e *Engine) SpanMultiplier(plan entity.SitePlan, modelName, modelCategory string, defaultCount int) int {
	multiplier := defaultCount
	if entry, ok := plan[modelName]; ok {
		multiplier = entry.SpanCount
	}
	if e.kw.IsCanopyCategory(modelCategory) {
		multiplier = 1
	}
	if multiplier < 0 {
		multiplier = 0
	}
	return multiplier
}

// Explode 한 모델의 BOM 을 경간 배수로 전개한다.
// 파이프 분류 행은 수량을 소요 길이(m)로 유지하고 본 수 환산을 비고에 남긴다.
func (e *Engine) Explode(cat *Catalog, model entity.Model, lines []entity.BOMLine, multiplier int, diag *Diagnostics) []entity.ResolvedMaterialLine {
	out := make([]entity.ResolvedMaterialLine, 0, len(lines))
	for _, line := range lines {
		perSpan := line.Quantity
		if perSpan < 0 {
			perSpan = 0
		}
		totalQty := perSpan * float64(multiplier)
		unit := NormalizeUnit(line.Unit)
		notes := strings.TrimSpace(line.Notes)

		resolved := e.ResolveLine(cat, line, diag)

		if e.kw.IsPipeCategory(line.Category) {
			// totalQty 는 소요 파이프 길이(m). 본 수는 비고로만 안내한다.
			stockLength := resolved.StockLengthM
			if stockLength <= 0 {
				stockLength = DefaultStockLengthM
			}
			pieces := StockPieceCount(totalQty, stockLength)
			notes = joinNotes(notes, fmt.Sprintf("파이프 소모량: %.0fm×%d본", stockLength, pieces))
			unit = "M"
		}

		out = append(out, entity.ResolvedMaterialLine{
			MaterialName: line.MaterialName,
			Standard:     resolved.FullStandard,
			Unit:         unit,
			Quantity:     totalQty,
			UnitPrice:    resolved.UnitPrice,
			ModelName:    model.ModelName,
			Category:     line.Category,
			Notes:        notes,
		})
	}
	return out
}

// ExplodeAll 여러 모델을 전개해 모델 구분 헤더가 끼워진 평탄 목록을 만든다.
// 카탈로그에 없는 모델은 진단을 남기고 건너뛴다.
func (e *Engine) ExplodeAll(cat *Catalog, plan entity.SitePlan, modelNames []string, defaultSpanCount int, diag *Diagnostics) []entity.ResolvedMaterialLine {
	var out []entity.ResolvedMaterialLine
	for _, name := range modelNames {
		model, ok := cat.ModelByName(name)
		if !ok {
			diag.Skip(name, "모델을 카탈로그에서 찾을 수 없어 건너뜁니다")
			continue
		}
		multiplier := e.SpanMultiplier(plan, name, model.Category, defaultSpanCount)

		out = append(out, entity.ResolvedMaterialLine{
			MaterialName: fmt.Sprintf("=== 모델: %s ===", model.ModelName),
			ModelName:    model.ModelName,
			Category:     entity.CategoryModelHeader,
			IsHeader:     true,
		})
		out = append(out, e.Explode(cat, model, cat.BOMFor(model), multiplier, diag)...)
	}
	return out
}

// BuildPurchaseItems 발주용 항목 생성. 전개와 같은 배수 규칙을 쓰되
// 파이프 분류는 소요 길이를 본 수(EA)로 환산하고,
// (품목, 규격) 이 같은 행은 수량을 합산해 하나로 병합한다.
func (e *Engine) BuildPurchaseItems(cat *Catalog, plan entity.SitePlan, modelNames []string, defaultSpanCount int, diag *Diagnostics) []entity.PurchaseItem {
	var items []entity.PurchaseItem
	for _, name := range modelNames {
		model, ok := cat.ModelByName(name)
		if !ok {
			diag.Skip(name, "모델을 카탈로그에서 찾을 수 없어 발주 항목에서 제외합니다")
			continue
		}
		multiplier := e.SpanMultiplier(plan, name, model.Category, defaultSpanCount)

		for _, line := range cat.BOMFor(model) {
			perSpan := line.Quantity
			if perSpan < 0 {
				perSpan = 0
			}
			qty := perSpan * float64(multiplier)
			unit := NormalizeUnit(line.Unit)
			standard := strings.TrimSpace(line.Standard)

			if e.kw.IsPipeCategory(line.Category) {
				qty = float64(StockPieceCount(qty, e.StockLengthFor(cat, standard)))
				unit = "EA"
			}

			merged := false
			for i := range items {
				if items[i].MaterialName == line.MaterialName && items[i].Standard == standard {
					items[i].Quantity += qty
					merged = true
					break
				}
			}
			if !merged {
				items = append(items, entity.PurchaseItem{
					MaterialName:   line.MaterialName,
					Standard:       standard,
					Unit:           unit,
					Quantity:       qty,
					Category:       line.Category,
					ModelReference: model.ModelName,
				})
			}
		}
	}
	return items
}

// PurchaseSpec 발주서 표시용 규격. 파이프 분류 항목은 표준길이 접미를 붙인다.
func (e *Engine) PurchaseSpec(cat *Catalog, item entity.PurchaseItem) string {
	if !e.kw.IsPipeCategory(item.Category) {
		return item.Standard
	}
	stockLength := e.StockLengthFor(cat, item.Standard)
	return fmt.Sprintf("%s×%sm", item.Standard, formatStockLength(stockLength))
}

func joinNotes(existing, added string) string {
	if existing == "" {
		return added
	}
	if added == "" {
		return existing
	}
	return existing + " | " + added
}

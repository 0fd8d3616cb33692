package engine

import (
	"strings"
	"time"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

// BuildQuotation 판매 항목 목록으로 견적서를 조립한다.
//   - MANUAL 항목: 내장 단가 × 수량, 필드 그대로 통과
//   - 모델 항목: 단가표에서 모델명 정확 일치(trim) 조회, 없으면 경고 남기고 건너뜀
//
// 합계는 행 금액의 단순 합 (이 경로엔 부가세 가산 없음, 세금 분리는 호출자 몫).
func (e *Engine) BuildQuotation(cat *Catalog, site entity.SiteInfo, items []entity.SoldItem, contractType string, diag *Diagnostics) entity.Quotation {
	quotation := entity.Quotation{
		SiteInfo:     site,
		ContractType: contractType,
		CreatedAt:    time.Now(),
	}

	for _, item := range items {
		if item.Source == entity.SourceManual {
			amount := item.Quantity * item.UnitPrice
			unit := item.Unit
			if unit == "" {
				unit = "EA"
			}
			quotation.Items = append(quotation.Items, entity.QuotationItem{
				ModelName:     item.ModelName,
				MaterialName:  item.MaterialName,
				Specification: item.Standard,
				Unit:          unit,
				Quantity:      item.Quantity,
				UnitPrice:     item.UnitPrice,
				SupplyAmount:  amount,
				Notes:         item.Notes,
				Source:        entity.SourceManual,
			})
			quotation.TotalSupplyPrice += amount
			continue
		}

		price, ok := cat.PriceForModel(item.ModelName)
		if !ok {
			diag.Skip(item.ModelName, "모델의 단가를 찾을 수 없습니다")
			continue
		}

		amount := item.Quantity * price.UnitPrice
		quotation.Items = append(quotation.Items, entity.QuotationItem{
			ModelName:        strings.TrimSpace(item.ModelName),
			Specification:    price.Standard,
			Unit:             price.Unit,
			Quantity:         item.Quantity,
			UnitPrice:        price.UnitPrice,
			SupplyAmount:     amount,
			Notes:            item.Notes,
			IdentifierNumber: price.IdentifierNumber,
		})
		quotation.TotalSupplyPrice += amount
	}

	quotation.TotalAmount = quotation.TotalSupplyPrice
	return quotation
}

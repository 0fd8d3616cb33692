package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/doohosteel/ptop/internal/ptop/engine"
	"github.com/doohosteel/ptop/internal/ptop/entity"
)

// 계약 구분
const (
	ContractTypeGovernment = "관급"
	ContractTypePrivate    = "사급"
)

// QuotationService 견적서 조립과 xlsx 생성
type QuotationService struct {
	engine    *engine.Engine
	catalog   *CatalogService
	artifacts *ArtifactStore
}

func NewQuotationService(eng *engine.Engine, catalog *CatalogService, artifacts *ArtifactStore) *QuotationService {
	return &QuotationService{engine: eng, catalog: catalog, artifacts: artifacts}
}

// BuildQuotationRequest 견적 생성 요청
type BuildQuotationRequest struct {
	SiteName     string             `json:"site_name" binding:"required"`
	Foundation   string             `json:"foundation"`
	DeliveryDate time.Time          `json:"delivery_date"`
	ContractType string             `json:"contract_type"` // 관급 / 사급 (기본 관급)
	Recipient    string             `json:"recipient"`
	Lengths      map[string]float64 `json:"lengths"` // 모델명 → 현장 총길이(m)
	Items        []entity.SoldItem  `json:"items" binding:"required"`
}

// BuildQuotationResponse 견적 + 진단 + 보관 문서
type BuildQuotationResponse struct {
	Quotation   entity.Quotation    `json:"quotation"`
	Diagnostics *engine.Diagnostics `json:"diagnostics,omitempty"`
	Artifact    *Artifact           `json:"artifact,omitempty"`
}

// Build 견적서 조립. 배치 계획을 세우고 단가표를 조회해 견적을 만든다.
func (s *QuotationService) Build(ctx context.Context, req *BuildQuotationRequest) (*BuildQuotationResponse, error) {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	contractType := req.ContractType
	if contractType == "" {
		contractType = ContractTypeGovernment
	}

	var diag engine.Diagnostics
	site := entity.SiteInfo{
		SiteName:     req.SiteName,
		Foundation:   req.Foundation,
		DeliveryDate: req.DeliveryDate,
		Plan:         s.engine.BuildSitePlan(cat, req.Lengths),
	}
	quotation := s.engine.BuildQuotation(cat, site, req.Items, contractType, &diag)

	resp := &BuildQuotationResponse{Quotation: quotation}
	if diag.HasWarnings() {
		resp.Diagnostics = &diag
	}
	return resp, nil
}

// BuildWithExcel 견적서를 만들고 xlsx 로 렌더링해 보관한다.
func (s *QuotationService) BuildWithExcel(ctx context.Context, req *BuildQuotationRequest) (*BuildQuotationResponse, *excelize.File, string, error) {
	resp, err := s.Build(ctx, req)
	if err != nil {
		return nil, nil, "", err
	}

	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, nil, "", fmt.Errorf("load catalog: %w", err)
	}

	f, err := s.renderExcel(cat, &resp.Quotation, req.Recipient)
	if err != nil {
		return nil, nil, "", err
	}
	fileName := fmt.Sprintf("견적서_%s_%s.xlsx", req.SiteName, time.Now().Format("20060102_1504"))

	// 보관 실패는 견적 자체를 무효화하지 않는다
	if artifact, err := s.artifacts.Put(ctx, fileName, f); err == nil {
		resp.Artifact = artifact
	}
	return resp, f, fileName, nil
}

var (
	governmentQuotationHeaders = []string{"번호", "분류", "모델명", "규격", "단위", "수량", "단가", "금액", "식별번호"}
	privateQuotationHeaders    = []string{"번호", "분류", "규격", "단위", "수량", "단가", "공급가", "부가세"}
)

// renderExcel 견적서 xlsx. 관급은 식별번호를 싣고, 사급은 부가세 포함 단가를
// 공급가/부가세로 분리해 싣는다.
func (s *QuotationService) renderExcel(cat *engine.Catalog, quotation *entity.Quotation, recipient string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := quotation.ContractType + "견적서"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheet, "A1", "견 적 서")
	f.SetCellValue(sheet, "A3", "현장명")
	f.SetCellValue(sheet, "B3", quotation.SiteInfo.SiteName)
	f.SetCellValue(sheet, "D3", "견적일자")
	f.SetCellValue(sheet, "E3", time.Now().Format("2006-01-02"))
	f.SetCellValue(sheet, "A4", "수신")
	f.SetCellValue(sheet, "B4", recipient)

	headers := governmentQuotationHeaders
	if quotation.ContractType == ContractTypePrivate {
		headers = privateQuotationHeaders
	}
	headerRow := 6
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	var totalSupply, totalVAT float64
	for idx, item := range quotation.Items {
		row := headerRow + 1 + idx
		category := cat.CategoryOf(item.ModelName)

		if quotation.ContractType == ContractTypePrivate {
			// 사급 단가는 부가세 포함가. 공급가와 부가세로 나눠 싣는다.
			supply := math.Round(item.SupplyAmount / 1.1)
			vat := item.SupplyAmount - supply
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), idx+1)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), category)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Specification)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Unit)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.Quantity)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), int(item.UnitPrice))
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), int(supply))
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), int(vat))
			totalSupply += supply
			totalVAT += vat
			continue
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), idx+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), category)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.ModelName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Specification)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), int(item.UnitPrice))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), int(item.SupplyAmount))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), item.IdentifierNumber)
	}

	summaryRow := headerRow + 1 + len(quotation.Items)
	summaryStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "합계")
	if quotation.ContractType == ContractTypePrivate {
		f.SetCellValue(sheet, fmt.Sprintf("G%d", summaryRow), int(totalSupply))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", summaryRow), int(totalVAT))
	} else {
		f.SetCellValue(sheet, fmt.Sprintf("H%d", summaryRow), int(quotation.TotalAmount))
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("%s%d", lastCol, summaryRow), summaryStyle)

	colWidths := []float64{6, 12, 18, 18, 6, 8, 12, 14, 14}
	for i, w := range colWidths[:len(headers)] {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
	return f, nil
}

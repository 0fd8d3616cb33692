package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/doohosteel/ptop/internal/ptop/engine"
	"github.com/doohosteel/ptop/internal/ptop/entity"
)

// ReportService 자재 및 실행내역서 생성.
// 선택 모델들의 BOM 을 경간 배수로 전개해 모델 구분 헤더가 섞인 평탄 목록을 만든다.
type ReportService struct {
	engine  *engine.Engine
	catalog *CatalogService
}

func NewReportService(eng *engine.Engine, catalog *CatalogService) *ReportService {
	return &ReportService{engine: eng, catalog: catalog}
}

// StatementRequest 자재 및 실행내역서 생성 요청
type StatementRequest struct {
	SiteName     string             `json:"site_name" binding:"required"`
	DeliveryDate time.Time          `json:"delivery_date"`
	ModelNames   []string           `json:"model_names" binding:"required"`
	Lengths      map[string]float64 `json:"lengths"` // 모델명 → 현장 총길이(m)
}

// StatementResponse 전개 결과 + 진단
type StatementResponse struct {
	Plan        entity.SitePlan               `json:"plan"`
	Lines       []entity.ResolvedMaterialLine `json:"lines"`
	TotalAmount float64                       `json:"total_amount"`
	Diagnostics *engine.Diagnostics           `json:"diagnostics,omitempty"`
}

// Generate 자재 목록 전개. 파이프 행은 m 수량에 본 수 환산 비고가 붙는다.
func (s *ReportService) Generate(ctx context.Context, req *StatementRequest) (*StatementResponse, error) {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var diag engine.Diagnostics
	plan := s.engine.BuildSitePlan(cat, req.Lengths)
	lines := s.engine.ExplodeAll(cat, plan, req.ModelNames, 1, &diag)

	var total float64
	for _, line := range lines {
		if !line.IsHeader {
			total += line.Amount()
		}
	}

	resp := &StatementResponse{Plan: plan, Lines: lines, TotalAmount: total}
	if diag.HasWarnings() {
		resp.Diagnostics = &diag
	}
	return resp, nil
}

// GenerateExcel 전개 후 내역서 xlsx 렌더링
func (s *ReportService) GenerateExcel(ctx context.Context, req *StatementRequest) (*StatementResponse, *excelize.File, string, error) {
	resp, err := s.Generate(ctx, req)
	if err != nil {
		return nil, nil, "", err
	}
	f := s.renderExcel(req, resp)
	fileName := fmt.Sprintf("자재 및 실행내역서_%s_%s.xlsx", req.SiteName, time.Now().Format("20060102_1504"))
	return resp, f, fileName, nil
}

var statementHeaders = []string{"번호", "품명", "규격", "단위", "수량", "단가", "금액", "비고", "납품장소", "일자", "공급업체"}

func (s *ReportService) renderExcel(req *StatementRequest, resp *StatementResponse) *excelize.File {
	f := excelize.NewFile()
	sheet := "자재내역서"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	headerRowStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#F2F2F2"}},
	})

	f.SetCellValue(sheet, "A1", "자재 및 실행내역서")
	f.SetCellValue(sheet, "A3", "현장명")
	f.SetCellValue(sheet, "B3", req.SiteName)
	f.SetCellValue(sheet, "E3", "총 길이(m)")
	f.SetCellValue(sheet, "F3", resp.Plan.TotalLengthM())
	f.SetCellValue(sheet, "A5", "납품일")
	deliveryDate := req.DeliveryDate
	if deliveryDate.IsZero() {
		deliveryDate = time.Now().AddDate(0, 0, 7)
	}
	f.SetCellValue(sheet, "B5", deliveryDate.Format("2006년 01월 02일"))

	headerRow := 8
	for i, h := range statementHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	today := time.Now().Format("2006-01-02")
	for idx, line := range resp.Lines {
		row := headerRow + 1 + idx
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), idx+1)

		if line.IsHeader {
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.MaterialName)
			lastCol, _ := excelize.ColumnNumberToName(len(statementHeaders))
			f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), headerRowStyle)
			continue
		}

		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.MaterialName)
		// 표시용 규격은 길이 접미를 떼고 치수만 싣는다
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), engine.TrimLengthSuffix(line.Standard))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), line.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), line.UnitPrice)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), line.Amount())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), line.Notes)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), "공장")
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), today)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), "공급업체명")
	}

	summaryRow := headerRow + 1 + len(resp.Lines)
	summaryStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "합계")
	f.SetCellValue(sheet, fmt.Sprintf("G%d", summaryRow), resp.TotalAmount)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("K%d", summaryRow), summaryStyle)

	colWidths := []float64{6, 22, 18, 6, 10, 10, 12, 24, 10, 12, 14}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
	return f
}

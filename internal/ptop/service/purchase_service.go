package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/doohosteel/ptop/internal/ptop/engine"
	"github.com/doohosteel/ptop/internal/ptop/entity"
)

// PurchaseService 재질별 발주서 생성.
// 전개 결과를 발주 항목으로 환산(파이프 m → 본)하고 재질 타입별로 나눠
// 발주서 xlsx 를 한 장씩 만든다.
type PurchaseService struct {
	engine    *engine.Engine
	catalog   *CatalogService
	artifacts *ArtifactStore
}

func NewPurchaseService(eng *engine.Engine, catalog *CatalogService, artifacts *ArtifactStore) *PurchaseService {
	return &PurchaseService{engine: eng, catalog: catalog, artifacts: artifacts}
}

// PurchaseOrdersRequest 발주서 생성 요청
type PurchaseOrdersRequest struct {
	SiteName         string             `json:"site_name" binding:"required"`
	DeliveryLocation string             `json:"delivery_location"`
	ModelNames       []string           `json:"model_names" binding:"required"`
	Lengths          map[string]float64 `json:"lengths"`
	Supplier         string             `json:"supplier"` // 비우면 재질 타입명을 공급업체명으로 쓴다
}

// PurchaseOrder 재질 하나의 발주서
type PurchaseOrder struct {
	MaterialType string                `json:"material_type"`
	Supplier     string                `json:"supplier"`
	FileName     string                `json:"file_name"`
	Items        []entity.PurchaseItem `json:"items"`
	Artifact     *Artifact             `json:"artifact,omitempty"`
}

// PurchaseOrdersResponse 발주서 묶음 + 진단
type PurchaseOrdersResponse struct {
	Orders      []PurchaseOrder     `json:"orders"`
	Diagnostics *engine.Diagnostics `json:"diagnostics,omitempty"`
}

// Generate 재질별 발주서 생성. 각 발주서는 xlsx 로 렌더링되어 보관된다.
func (s *PurchaseService) Generate(ctx context.Context, req *PurchaseOrdersRequest) (*PurchaseOrdersResponse, error) {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var diag engine.Diagnostics
	plan := s.engine.BuildSitePlan(cat, req.Lengths)
	items := s.engine.BuildPurchaseItems(cat, plan, req.ModelNames, 1, &diag)
	groups := s.engine.SortedGroups(cat, items, &diag)

	stamp := time.Now().Format("20060102_1504")
	resp := &PurchaseOrdersResponse{}
	for _, group := range groups {
		supplier := req.Supplier
		if supplier == "" {
			supplier = group.MaterialType
		}
		order := PurchaseOrder{
			MaterialType: group.MaterialType,
			Supplier:     supplier,
			FileName:     fmt.Sprintf("발주서_%s_%s_%s.xlsx", group.MaterialType, req.SiteName, stamp),
			Items:        group.Items,
		}

		f := s.renderExcel(cat, req, supplier, group)
		if artifact, err := s.artifacts.Put(ctx, order.FileName, f); err == nil {
			order.Artifact = artifact
		}
		f.Close()

		resp.Orders = append(resp.Orders, order)
	}

	if diag.HasWarnings() {
		resp.Diagnostics = &diag
	}
	return resp, nil
}

var purchaseOrderHeaders = []string{"번호", "품명", "규격", "단위", "수량", "납품장소", "현장명", "비고"}

func (s *PurchaseService) renderExcel(cat *engine.Catalog, req *PurchaseOrdersRequest, supplier string, group entity.PurchaseGroup) *excelize.File {
	f := excelize.NewFile()
	sheet := "발주서"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheet, "A1", "발 주 서")
	f.SetCellValue(sheet, "E4", "발주일")
	f.SetCellValue(sheet, "F4", time.Now().Format("2006년 01월 02일"))
	f.SetCellValue(sheet, "A6", "공급업체")
	f.SetCellValue(sheet, "B6", supplier)

	headerRow := 10
	for i, h := range purchaseOrderHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for idx, item := range group.Items {
		row := headerRow + 1 + idx
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), idx+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.MaterialName)
		// 파이프 규격은 표준길이 접미를 포함해 발주한다
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.engine.PurchaseSpec(cat, item))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), req.DeliveryLocation)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), req.SiteName)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), fmt.Sprintf("모델: %s", item.ModelReference))
	}

	colWidths := []float64{6, 22, 20, 6, 10, 14, 16, 20}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
	return f
}

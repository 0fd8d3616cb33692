package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/doohosteel/ptop/internal/ptop/entity"
	"github.com/doohosteel/ptop/internal/ptop/repository"
	"github.com/doohosteel/ptop/internal/ptop/testutil"
)

func setupBOMServiceTest(t *testing.T) (*gorm.DB, *BOMService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	catalog := NewCatalogService(repos, nil, 0)
	return db, NewBOMService(repos.Model, repos.BOM, catalog)
}

func seedModelWithBOM(t *testing.T, db *gorm.DB) *entity.Model {
	t.Helper()
	now := time.Now()
	model := &entity.Model{
		ID: "mdl-test-001", ModelName: "DAL-2000", Category: "디자인형",
		ModelStandard: "W2000", CreatedAt: now, UpdatedAt: now,
	}
	db.Create(model)

	db.Create(&entity.BOMLine{
		ID: "bom-test-001", ModelID: model.ID, MaterialName: "원형파이프",
		Standard: "40*40*1.5", Unit: "M", Quantity: 2.0, Category: "HGI PIPE",
		CreatedAt: now, UpdatedAt: now,
	})
	db.Create(&entity.BOMLine{
		ID: "bom-test-002", ModelID: model.ID, MaterialName: "특주부속",
		Standard: "SET", Unit: "EA", Quantity: 1.0, Category: entity.BOMCategoryManual,
		UnitPrice: 50000, CreatedAt: now, UpdatedAt: now,
	})
	return model
}

func TestApplyEditsCreatesManualRow(t *testing.T) {
	db, svc := setupBOMServiceTest(t)
	seedModelWithBOM(t, db)

	result, err := svc.ApplyEdits(context.Background(), &ApplyEditsRequest{
		ModelName: "DAL-2000",
		Lines: []BOMEditLine{
			{MaterialName: "특주부속", Standard: "SET", Unit: "EA", Quantity: 1.0, Category: entity.BOMCategoryManual, UnitPrice: 55000},
			{MaterialName: "현장시공비", Standard: "1식", Unit: "EA", Quantity: 1.0, Category: entity.BOMCategoryManual, UnitPrice: 300000},
		},
	})
	if err != nil {
		t.Fatalf("ApplyEdits failed: %v", err)
	}
	if result.Created != 1 || result.Updated != 1 {
		t.Errorf("result = %+v, want 1 created / 1 updated", result)
	}
	if len(result.Refused) != 0 {
		t.Errorf("unexpected refusals: %v", result.Refused)
	}

	var line entity.BOMLine
	if err := db.First(&line, "model_id = ? AND material_name = ?", "mdl-test-001", "특주부속").Error; err != nil {
		t.Fatalf("updated row missing: %v", err)
	}
	if line.UnitPrice != 55000 {
		t.Errorf("unit price = %v, want updated 55000", line.UnitPrice)
	}
}

func TestApplyEditsRefusesCatalogRow(t *testing.T) {
	db, svc := setupBOMServiceTest(t)
	seedModelWithBOM(t, db)

	result, err := svc.ApplyEdits(context.Background(), &ApplyEditsRequest{
		ModelName: "DAL-2000",
		Lines: []BOMEditLine{
			// 카탈로그 유래 행 수정 시도
			{MaterialName: "원형파이프", Standard: "40*40*1.5", Unit: "M", Quantity: 99.0, Category: "HGI PIPE"},
			// MANUAL 기존 행 유지
			{MaterialName: "특주부속", Standard: "SET", Unit: "EA", Quantity: 1.0, Category: entity.BOMCategoryManual, UnitPrice: 50000},
		},
	})
	if err != nil {
		t.Fatalf("ApplyEdits failed: %v", err)
	}
	if len(result.Refused) != 1 {
		t.Fatalf("refused = %v, want 1 refusal", result.Refused)
	}
	if result.Refused[0].MaterialName != "원형파이프" {
		t.Errorf("refused row = %+v, want 원형파이프", result.Refused[0])
	}

	// 거부된 행은 원래 값 그대로여야 한다 (부분 실패 의미론)
	var line entity.BOMLine
	db.First(&line, "id = ?", "bom-test-001")
	if line.Quantity != 2.0 {
		t.Errorf("catalog row quantity = %v, want untouched 2.0", line.Quantity)
	}
}

func TestApplyEditsDeletesMissingManualRows(t *testing.T) {
	db, svc := setupBOMServiceTest(t)
	seedModelWithBOM(t, db)

	// 편집 묶음에 기존 MANUAL 행(특주부속)이 빠져 있으면 삭제된다
	result, err := svc.ApplyEdits(context.Background(), &ApplyEditsRequest{
		ModelName: "DAL-2000",
		Lines:     []BOMEditLine{},
	})
	if err != nil {
		t.Fatalf("ApplyEdits failed: %v", err)
	}
	if result.Deleted != 1 {
		t.Errorf("deleted = %d, want 1", result.Deleted)
	}

	var count int64
	db.Model(&entity.BOMLine{}).Where("model_id = ?", "mdl-test-001").Count(&count)
	// 카탈로그 유래 행은 남아야 한다
	if count != 1 {
		t.Errorf("remaining rows = %d, want 1 (catalog row preserved)", count)
	}
}

func TestApplyEditsUnknownModel(t *testing.T) {
	_, svc := setupBOMServiceTest(t)

	_, err := svc.ApplyEdits(context.Background(), &ApplyEditsRequest{ModelName: "유령모델"})
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestDeleteLineRefusesCatalogRow(t *testing.T) {
	db, svc := setupBOMServiceTest(t)
	seedModelWithBOM(t, db)

	if err := svc.DeleteLine(context.Background(), "DAL-2000", "원형파이프", "40*40*1.5"); err == nil {
		t.Fatal("expected refusal for catalog-sourced row")
	}
	if err := svc.DeleteLine(context.Background(), "DAL-2000", "특주부속", "SET"); err != nil {
		t.Fatalf("manual row delete failed: %v", err)
	}
}

func TestBulkImportFromExcel(t *testing.T) {
	db, svc := setupBOMServiceTest(t)
	seedModelWithBOM(t, db)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"품명", "규격", "단위", "수량", "분류", "단가", "비고"},
		{"각관", "60*40*2.0", "M", "3.5", "HGI PIPE", "", ""},
		{"볼트", "M12", "EA", "8", "부자재", "", ""},
		{"수량오류", "X", "EA", "abc", "부자재", "", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		f.SetSheetRow(sheet, cell, &row)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("build xlsx: %v", err)
	}

	result, err := svc.BulkImport(context.Background(), "DAL-2000", "bom.xlsx", bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("BulkImport failed: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %v, want 1 row error", result.Errors)
	}
	if result.Errors[0].Row != 4 {
		t.Errorf("error row = %d, want 4", result.Errors[0].Row)
	}

	// 기존 BOM 은 통째로 교체된다
	var count int64
	db.Model(&entity.BOMLine{}).Where("model_id = ?", "mdl-test-001").Count(&count)
	if count != 2 {
		t.Errorf("row count after replace = %d, want 2", count)
	}
}

func TestBulkImportFromCSV(t *testing.T) {
	db, svc := setupBOMServiceTest(t)
	seedModelWithBOM(t, db)

	csvData := strings.Join([]string{
		"품명,규격,단위,수량,분류,단가,비고",
		"평철,50*5,M,1.2,HGI,,",
		"실리콘,300ml,EA,2,부자재,,",
	}, "\n")

	result, err := svc.BulkImport(context.Background(), "DAL-2000", "bom.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("BulkImport failed: %v", err)
	}
	if result.Imported != 2 || len(result.Errors) != 0 {
		t.Errorf("result = %+v, want 2 imported / no errors", result)
	}

	var line entity.BOMLine
	if err := db.First(&line, "model_id = ? AND material_name = ?", "mdl-test-001", "평철").Error; err != nil {
		t.Fatalf("imported row missing: %v", err)
	}
	if line.Quantity != 1.2 || line.Unit != "M" {
		t.Errorf("imported line = %+v, want 1.2 M", line)
	}
}

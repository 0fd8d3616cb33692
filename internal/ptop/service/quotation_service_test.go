package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/doohosteel/ptop/internal/ptop/engine"
	"github.com/doohosteel/ptop/internal/ptop/entity"
	"github.com/doohosteel/ptop/internal/ptop/repository"
	"github.com/doohosteel/ptop/internal/ptop/testutil"
)

func setupQuotationTest(t *testing.T) (*gorm.DB, *QuotationService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	catalog := NewCatalogService(repos, nil, 0)
	artifacts := NewArtifactStore(nil, "")
	return db, NewQuotationService(engine.New(engine.DefaultKeywords()), catalog, artifacts)
}

func seedQuotationCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Now()
	db.Create(&entity.Model{
		ID: "mdl-q-001", ModelName: "DAL-2000", Category: "디자인형",
		ModelStandard: "W2000", CreatedAt: now, UpdatedAt: now,
	})
	db.Create(&entity.PricingRecord{
		ID: "prc-q-001", ModelName: "DAL-2000", Standard: "W2000", Unit: "m",
		UnitPrice: 85000, IdentifierNumber: "24614649", CreatedAt: now, UpdatedAt: now,
	})
}

func TestQuotationBuildFlow(t *testing.T) {
	db, svc := setupQuotationTest(t)
	seedQuotationCatalog(t, db)

	resp, err := svc.Build(context.Background(), &BuildQuotationRequest{
		SiteName:     "동대문구 관내",
		ContractType: ContractTypeGovernment,
		Lengths:      map[string]float64{"DAL-2000": 24.0},
		Items: []entity.SoldItem{
			{ModelName: "DAL-2000", Quantity: 24.0},
		},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	q := resp.Quotation
	if len(q.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(q.Items))
	}
	if q.Items[0].UnitPrice != 85000 {
		t.Errorf("unit price = %v, want 85000 from pricing table", q.Items[0].UnitPrice)
	}
	if q.TotalAmount != 24.0*85000 {
		t.Errorf("total = %v, want %v", q.TotalAmount, 24.0*85000)
	}

	// 배치 계획: 24m / 세트폭 2m → 경간 12
	entry := q.SiteInfo.Plan["DAL-2000"]
	if entry.SpanCount != 12 || entry.WidthM != 2.0 {
		t.Errorf("plan entry = %+v, want width 2.0 / span 12", entry)
	}
	if resp.Diagnostics != nil {
		t.Errorf("unexpected diagnostics: %+v", resp.Diagnostics)
	}
}

func TestQuotationBuildReportsMissingPrice(t *testing.T) {
	db, svc := setupQuotationTest(t)
	seedQuotationCatalog(t, db)
	now := time.Now()
	db.Create(&entity.Model{
		ID: "mdl-q-002", ModelName: "BLD-100", Category: "볼라드",
		ModelStandard: "500", CreatedAt: now, UpdatedAt: now,
	})

	resp, err := svc.Build(context.Background(), &BuildQuotationRequest{
		SiteName: "테스트 현장",
		Items: []entity.SoldItem{
			{ModelName: "BLD-100", Quantity: 3.0}, // 단가표에 없음
			{ModelName: "DAL-2000", Quantity: 1.0},
		},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(resp.Quotation.Items) != 1 {
		t.Errorf("items = %d, want 1 (unpriced model skipped)", len(resp.Quotation.Items))
	}
	if resp.Diagnostics == nil || len(resp.Diagnostics.SkippedItems) != 1 {
		t.Errorf("diagnostics = %+v, want BLD-100 skip recorded", resp.Diagnostics)
	}
}

func TestQuotationBuildWithExcel(t *testing.T) {
	db, svc := setupQuotationTest(t)
	seedQuotationCatalog(t, db)

	_, f, fileName, err := svc.BuildWithExcel(context.Background(), &BuildQuotationRequest{
		SiteName:     "동대문구 관내",
		ContractType: ContractTypeGovernment,
		Recipient:    "동대문구청",
		Items: []entity.SoldItem{
			{ModelName: "DAL-2000", Quantity: 24.0},
		},
	})
	if err != nil {
		t.Fatalf("BuildWithExcel failed: %v", err)
	}
	defer f.Close()

	if fileName == "" {
		t.Error("expected a file name")
	}
	got, err := f.GetCellValue("관급견적서", "C7")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "DAL-2000" {
		t.Errorf("first row model = %q, want DAL-2000", got)
	}
}

package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

func TestBuildSitePlan(t *testing.T) {
	e := testEngine()
	cat := testCatalog()

	plan := e.BuildSitePlan(cat, map[string]float64{
		"DAL-2000": 24.0,
		"BLD-100":  0,
		"미등록모델":    7.0,
	})

	if got := plan["DAL-2000"]; got.WidthM != 2.0 || got.SpanCount != 12 {
		t.Errorf("DAL-2000 plan = %+v, want width 2.0 / span 12", got)
	}
	if got := plan["BLD-100"]; got.SpanCount != 0 {
		t.Errorf("zero length must give zero spans, got %+v", got)
	}
	// 모델이 카탈로그에 없으면 기본 세트폭 2.0m 적용
	if got := plan["미등록모델"]; got.WidthM != DefaultSpanWidthM || got.SpanCount != 4 {
		t.Errorf("unknown model plan = %+v, want width 2.0 / span 4", got)
	}
}

func TestSpanMultiplierCanopyOverride(t *testing.T) {
	e := testEngine()
	plan := entity.SitePlan{"CNP-300": {WidthM: 3.0, TotalLengthM: 15.0, SpanCount: 5}}

	if got := e.SpanMultiplier(plan, "CNP-300", "차양", 1); got != 1 {
		t.Errorf("canopy multiplier = %d, want forced 1", got)
	}
	if got := e.SpanMultiplier(plan, "CNP-300", "디자인형", 1); got != 5 {
		t.Errorf("non-canopy multiplier = %d, want 5", got)
	}
	// 분류를 모르면 차양 판정은 false (일반 배수 적용)
	if got := e.SpanMultiplier(plan, "CNP-300", "", 1); got != 5 {
		t.Errorf("missing category multiplier = %d, want 5", got)
	}
}

func TestExplodePipeLine(t *testing.T) {
	e := testEngine()
	cat := testCatalog()
	var diag Diagnostics

	model := entity.Model{ID: "mdl-x", ModelName: "테스트모델", Category: "디자인형"}
	lines := []entity.BOMLine{
		{MaterialName: "원형파이프", Standard: "40*40*1.5", Unit: "M", Quantity: 3.0, Category: "HGI PIPE"},
	}

	got := e.Explode(cat, model, lines, 4, &diag)
	if len(got) != 1 {
		t.Fatalf("expected 1 line, got %d", len(got))
	}
	line := got[0]
	if line.Quantity != 12.0 {
		t.Errorf("quantity = %v, want 12.0 (3.0 × 4)", line.Quantity)
	}
	if line.Unit != "M" {
		t.Errorf("unit = %q, want M", line.Unit)
	}
	if !strings.Contains(line.Notes, "6m×2본") {
		t.Errorf("notes = %q, want pipe consumption 6m×2본", line.Notes)
	}
}

func TestExplodeCanopyForcesSingleSpan(t *testing.T) {
	e := testEngine()
	cat := testCatalog()
	var diag Diagnostics

	plan := entity.SitePlan{"CNP-300": {WidthM: 3.0, TotalLengthM: 15.0, SpanCount: 5}}
	lines := e.ExplodeAll(cat, plan, []string{"CNP-300"}, 1, &diag)

	// 헤더 + BOM 1행
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 line, got %d", len(lines))
	}
	if !lines[0].IsHeader || lines[0].Category != entity.CategoryModelHeader {
		t.Fatalf("first line must be a model header, got %+v", lines[0])
	}
	if lines[1].Quantity != 2.0 {
		t.Errorf("canopy quantity = %v, want 2.0 (배수 강제 1)", lines[1].Quantity)
	}
}

func TestExplodeManualLineUsesEmbeddedPrice(t *testing.T) {
	e := testEngine()
	cat := testCatalog()
	var diag Diagnostics

	model := entity.Model{ID: "mdl-x", ModelName: "테스트모델"}
	lines := []entity.BOMLine{
		{MaterialName: "특주부속", Standard: "SET", Unit: "EA", Quantity: 1.0, Category: entity.BOMCategoryManual, UnitPrice: 99000},
	}

	got := e.Explode(cat, model, lines, 3, &diag)
	if got[0].UnitPrice != 99000 {
		t.Errorf("unit price = %v, want embedded 99000", got[0].UnitPrice)
	}
	if got[0].Quantity != 3.0 {
		t.Errorf("quantity = %v, want 3.0", got[0].Quantity)
	}
}

func TestExplodeToleratesNegativeQuantity(t *testing.T) {
	e := testEngine()
	cat := testCatalog()
	var diag Diagnostics

	model := entity.Model{ID: "mdl-x", ModelName: "테스트모델"}
	lines := []entity.BOMLine{
		{MaterialName: "볼트", Standard: "M12", Unit: "EA", Quantity: -3.0, Category: "부자재"},
	}

	got := e.Explode(cat, model, lines, 4, &diag)
	if got[0].Quantity != 0 {
		t.Errorf("negative per-span quantity must clamp to 0, got %v", got[0].Quantity)
	}
}

func TestExplodeAllSkipsUnknownModel(t *testing.T) {
	e := testEngine()
	cat := testCatalog()
	var diag Diagnostics

	lines := e.ExplodeAll(cat, entity.SitePlan{}, []string{"유령모델"}, 1, &diag)
	if len(lines) != 0 {
		t.Fatalf("unknown model must be skipped, got %d lines", len(lines))
	}
	if len(diag.SkippedItems) != 1 {
		t.Errorf("expected 1 skipped item, got %v", diag.SkippedItems)
	}
}

// 사양 끝단 시나리오: DAL-2000, 총길이 24m, 세트폭 2m → 경간 12,
// 파이프 세트당 2m → 24m, m당 단가 3000, 규격 접미, 본 수 4.
func TestExplodeEndToEndScenario(t *testing.T) {
	e := testEngine()
	cat := testCatalog()
	var diag Diagnostics

	plan := e.BuildSitePlan(cat, map[string]float64{"DAL-2000": 24.0})
	if plan["DAL-2000"].SpanCount != 12 {
		t.Fatalf("span count = %d, want 12", plan["DAL-2000"].SpanCount)
	}

	lines := e.ExplodeAll(cat, plan, []string{"DAL-2000"}, 1, &diag)
	// 헤더 + 파이프 + 볼트
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	pipe := lines[1]
	if pipe.Quantity != 24.0 {
		t.Errorf("pipe quantity = %v, want 24.0", pipe.Quantity)
	}
	if math.Abs(pipe.UnitPrice-3000) > 1e-9 {
		t.Errorf("pipe unit price = %v, want 3000/m", pipe.UnitPrice)
	}
	if pipe.Standard != "40*40*1.5×6.0m" {
		t.Errorf("pipe standard = %q, want 40*40*1.5×6.0m", pipe.Standard)
	}
	if !strings.Contains(pipe.Notes, "6m×4본") {
		t.Errorf("pipe notes = %q, want 6m×4본", pipe.Notes)
	}
	if pipe.Unit != "M" {
		t.Errorf("pipe unit = %q, want M", pipe.Unit)
	}
}

func TestBuildPurchaseItemsConvertsPipeToPieces(t *testing.T) {
	e := testEngine()
	cat := testCatalog()
	var diag Diagnostics

	plan := e.BuildSitePlan(cat, map[string]float64{"DAL-2000": 24.0})
	items := e.BuildPurchaseItems(cat, plan, []string{"DAL-2000"}, 1, &diag)

	if len(items) != 2 {
		t.Fatalf("expected 2 purchase items, got %d", len(items))
	}
	pipe := items[0]
	if pipe.Unit != "EA" || pipe.Quantity != 4 {
		t.Errorf("pipe purchase item = %+v, want 4 EA (ceil(24/6))", pipe)
	}
	bolts := items[1]
	if bolts.Quantity != 48 {
		t.Errorf("bolt quantity = %v, want 48 (4 × 12경간)", bolts.Quantity)
	}
}

func TestBuildPurchaseItemsMergesAcrossModels(t *testing.T) {
	e := testEngine()
	cat := testCatalog()
	var diag Diagnostics

	// 두 모델이 같은 (품목, 규격) 을 쓰도록 구성
	cat.BOMByModel["mdl-003"] = []entity.BOMLine{
		{ModelID: "mdl-003", MaterialName: "볼트", Standard: "M12", Unit: "EA", Quantity: 2.0, Category: "부자재"},
	}
	plan := entity.SitePlan{
		"DAL-2000": {WidthM: 2.0, TotalLengthM: 4.0, SpanCount: 2},
		"BLD-100":  {WidthM: 0.5, TotalLengthM: 1.5, SpanCount: 3},
	}
	items := e.BuildPurchaseItems(cat, plan, []string{"DAL-2000", "BLD-100"}, 1, &diag)

	var bolt *entity.PurchaseItem
	for i := range items {
		if items[i].MaterialName == "볼트" {
			bolt = &items[i]
		}
	}
	if bolt == nil {
		t.Fatal("bolt item missing")
	}
	// DAL-2000: 4×2경간 = 8, BLD-100: 2×3경간 = 6 → 14 로 병합
	if bolt.Quantity != 14 {
		t.Errorf("merged bolt quantity = %v, want 14", bolt.Quantity)
	}
	if bolt.ModelReference != "DAL-2000" {
		t.Errorf("model reference = %q, want first-seen DAL-2000", bolt.ModelReference)
	}
}

func TestPurchaseSpec(t *testing.T) {
	e := testEngine()
	cat := testCatalog()

	pipe := entity.PurchaseItem{MaterialName: "원형파이프", Standard: "40*40*1.5", Category: "HGI PIPE"}
	if got := e.PurchaseSpec(cat, pipe); got != "40*40*1.5×6.0m" {
		t.Errorf("pipe purchase spec = %q, want length suffix", got)
	}
	bolt := entity.PurchaseItem{MaterialName: "볼트", Standard: "M12", Category: "부자재"}
	if got := e.PurchaseSpec(cat, bolt); got != "M12" {
		t.Errorf("non-pipe purchase spec = %q, want plain", got)
	}
}

package handler

import (
	"net/http"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/doohosteel/ptop/internal/ptop/entity"
	"github.com/doohosteel/ptop/internal/ptop/repository"
	"github.com/doohosteel/ptop/internal/ptop/service"
	"github.com/doohosteel/ptop/internal/ptop/testutil"
)

func setupBOMHandlerTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	catalog := service.NewCatalogService(repos, nil, 0)
	h := NewBOMHandler(service.NewBOMService(repos.Model, repos.BOM, catalog))

	api := router.Group("/api/v1")
	api.GET("/models/:name/bom", h.List)
	api.POST("/bom/edits", h.ApplyEdits)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func seedHandlerModel(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Now()
	db.Create(&entity.Model{
		ID: "mdl-h-001", ModelName: "DAL-2000", Category: "디자인형",
		ModelStandard: "W2000", CreatedAt: now, UpdatedAt: now,
	})
	db.Create(&entity.BOMLine{
		ID: "bom-h-001", ModelID: "mdl-h-001", MaterialName: "원형파이프",
		Standard: "40*40*1.5", Unit: "M", Quantity: 2.0, Category: "HGI PIPE",
		CreatedAt: now, UpdatedAt: now,
	})
}

func TestBOMListEndpoint(t *testing.T) {
	env := setupBOMHandlerTest(t)
	seedHandlerModel(t, env.DB)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/models/DAL-2000/bom", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	lines := data["lines"].([]interface{})
	if len(lines) != 1 {
		t.Errorf("lines = %d, want 1", len(lines))
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/models/유령모델/bom", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown model, got %d", w.Code)
	}
}

func TestBOMApplyEditsEndpoint(t *testing.T) {
	env := setupBOMHandlerTest(t)
	seedHandlerModel(t, env.DB)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/bom/edits", map[string]interface{}{
		"model_name": "DAL-2000",
		"lines": []map[string]interface{}{
			{
				"material_name": "특주부속",
				"standard":      "SET",
				"unit":          "EA",
				"quantity":      1.0,
				"category":      "MANUAL",
				"unit_price":    99000,
			},
			{
				// 카탈로그 유래 행 수정 시도는 거부된다
				"material_name": "원형파이프",
				"standard":      "40*40*1.5",
				"unit":          "M",
				"quantity":      50.0,
				"category":      "HGI PIPE",
			},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["created"].(float64) != 1 {
		t.Errorf("created = %v, want 1", data["created"])
	}
	refused := data["refused"].([]interface{})
	if len(refused) != 1 {
		t.Errorf("refused = %v, want 1", refused)
	}

	var count int64
	env.DB.Model(&entity.BOMLine{}).Where("model_id = ?", "mdl-h-001").Count(&count)
	if count != 2 {
		t.Errorf("row count = %d, want 2", count)
	}
}

package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/doohosteel/ptop/internal/ptop/engine"
	"github.com/doohosteel/ptop/internal/ptop/entity"
	"github.com/doohosteel/ptop/internal/ptop/repository"
)

// BOMService 모델 BOM 조회/편집/일괄 업로드
type BOMService struct {
	modelRepo *repository.ModelRepository
	bomRepo   *repository.BOMRepository
	catalog   *CatalogService
}

func NewBOMService(modelRepo *repository.ModelRepository, bomRepo *repository.BOMRepository, catalog *CatalogService) *BOMService {
	return &BOMService{modelRepo: modelRepo, bomRepo: bomRepo, catalog: catalog}
}

// ListByModel 모델명으로 BOM 행 목록 조회
func (s *BOMService) ListByModel(ctx context.Context, modelName string) (*entity.Model, []entity.BOMLine, error) {
	model, err := s.modelRepo.FindByName(ctx, strings.TrimSpace(modelName))
	if err != nil {
		return nil, nil, fmt.Errorf("model %q: %w", modelName, err)
	}
	lines, err := s.bomRepo.ListByModel(ctx, model.ID)
	if err != nil {
		return nil, nil, err
	}
	return model, lines, nil
}

// BOMEditLine 편집 요청의 한 행. (품목, 규격) 이 업서트 키다.
type BOMEditLine struct {
	MaterialName string  `json:"material_name" binding:"required"`
	Standard     string  `json:"standard"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unit_price"`
	Notes        string  `json:"notes"`
}

// ApplyEditsRequest 한 모델에 대한 편집 묶음. Lines 는 편집 후 남아야 할
// MANUAL 행의 전체 집합이며, 목록에서 빠진 기존 MANUAL 행은 삭제된다.
type ApplyEditsRequest struct {
	ModelName string        `json:"model_name" binding:"required"`
	Lines     []BOMEditLine `json:"lines"`
}

// RefusedEdit 정책 위반으로 거부된 행과 사유
type RefusedEdit struct {
	MaterialName string `json:"material_name"`
	Standard     string `json:"standard"`
	Reason       string `json:"reason"`
}

// ApplyResult 부분 실패 의미론의 편집 결과. 거부 행이 있어도 나머지는 적용된다.
type ApplyResult struct {
	Created int           `json:"created"`
	Updated int           `json:"updated"`
	Deleted int           `json:"deleted"`
	Refused []RefusedEdit `json:"refused,omitempty"`
}

// ApplyEdits 편집 묶음 적용. MANUAL 분류 행만 생성/수정/삭제할 수 있고,
// 카탈로그 유래 행(비 MANUAL)에 대한 시도는 행 단위로 거부만 하고 계속한다.
func (s *BOMService) ApplyEdits(ctx context.Context, req *ApplyEditsRequest) (*ApplyResult, error) {
	model, err := s.modelRepo.FindByName(ctx, strings.TrimSpace(req.ModelName))
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", req.ModelName, err)
	}

	existing, err := s.bomRepo.ListByModel(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	existingByKey := make(map[[2]string]*entity.BOMLine, len(existing))
	for i := range existing {
		key := [2]string{strings.TrimSpace(existing[i].MaterialName), strings.TrimSpace(existing[i].Standard)}
		existingByKey[key] = &existing[i]
	}

	result := &ApplyResult{}
	seen := make(map[[2]string]bool, len(req.Lines))

	for _, edit := range req.Lines {
		name := strings.TrimSpace(edit.MaterialName)
		standard := strings.TrimSpace(edit.Standard)
		key := [2]string{name, standard}
		if name == "" {
			result.Refused = append(result.Refused, RefusedEdit{Standard: standard, Reason: "품명이 비어 있습니다"})
			continue
		}
		if seen[key] {
			result.Refused = append(result.Refused, RefusedEdit{MaterialName: name, Standard: standard, Reason: "같은 (품명, 규격) 이 편집 묶음에 중복되었습니다"})
			continue
		}
		seen[key] = true

		if line, ok := existingByKey[key]; ok {
			if line.Category != entity.BOMCategoryManual {
				result.Refused = append(result.Refused, RefusedEdit{MaterialName: name, Standard: standard, Reason: "카탈로그 유래 행은 편집할 수 없습니다"})
				continue
			}
			line.Unit = edit.Unit
			line.Quantity = edit.Quantity
			line.UnitPrice = edit.UnitPrice
			line.Notes = edit.Notes
			line.UpdatedAt = time.Now()
			if err := s.bomRepo.Update(ctx, line); err != nil {
				result.Refused = append(result.Refused, RefusedEdit{MaterialName: name, Standard: standard, Reason: err.Error()})
				continue
			}
			result.Updated++
			continue
		}

		if strings.TrimSpace(edit.Category) != entity.BOMCategoryManual {
			result.Refused = append(result.Refused, RefusedEdit{MaterialName: name, Standard: standard, Reason: "MANUAL 분류 행만 새로 추가할 수 있습니다"})
			continue
		}
		line := &entity.BOMLine{
			ID:           uuid.New().String()[:32],
			ModelID:      model.ID,
			MaterialName: name,
			Standard:     standard,
			Unit:         edit.Unit,
			Quantity:     edit.Quantity,
			Category:     entity.BOMCategoryManual,
			UnitPrice:    edit.UnitPrice,
			Notes:        edit.Notes,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := s.bomRepo.Create(ctx, line); err != nil {
			result.Refused = append(result.Refused, RefusedEdit{MaterialName: name, Standard: standard, Reason: err.Error()})
			continue
		}
		result.Created++
	}

	// 편집 묶음에서 빠진 기존 MANUAL 행은 삭제 대상이다.
	// 비 MANUAL 행은 목록에 없어도 건드리지 않는다 (카탈로그 보호).
	for key, line := range existingByKey {
		if seen[key] || line.Category != entity.BOMCategoryManual {
			continue
		}
		deleted, err := s.bomRepo.DeleteByKey(ctx, model.ID, line.MaterialName, line.Standard)
		if err != nil {
			result.Refused = append(result.Refused, RefusedEdit{MaterialName: line.MaterialName, Standard: line.Standard, Reason: err.Error()})
			continue
		}
		result.Deleted += int(deleted)
	}

	s.catalog.Invalidate(ctx)
	return result, nil
}

// DeleteLine BOM 행 단건 삭제. MANUAL 행만 허용한다.
func (s *BOMService) DeleteLine(ctx context.Context, modelName, materialName, standard string) error {
	model, err := s.modelRepo.FindByName(ctx, strings.TrimSpace(modelName))
	if err != nil {
		return fmt.Errorf("model %q: %w", modelName, err)
	}
	line, err := s.bomRepo.FindByKey(ctx, model.ID, strings.TrimSpace(materialName), strings.TrimSpace(standard))
	if err != nil {
		return err
	}
	if line.Category != entity.BOMCategoryManual {
		return errors.New("카탈로그 유래 행은 삭제할 수 없습니다")
	}
	if err := s.bomRepo.Delete(ctx, line.ID); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

// ImportRowError 업로드 파일의 행 단위 오류
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult 일괄 업로드 결과. 오류 행은 건너뛰고 정상 행만 반영된다.
type ImportResult struct {
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

// 업로드 파일 공통 열 순서: 품명, 규격, 단위, 수량, 분류, 단가, 비고
const bulkImportColumns = 7

// BulkImport 모델 BOM 일괄 업로드. xlsx 또는 CSV(EUC-KR/UTF-8)를 받아
// 모델의 BOM 을 통째로 교체한다.
func (s *BOMService) BulkImport(ctx context.Context, modelName, fileName string, r io.Reader) (*ImportResult, error) {
	model, err := s.modelRepo.FindByName(ctx, strings.TrimSpace(modelName))
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", modelName, err)
	}

	var rows [][]string
	if strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		rows, err = readCSVRows(r)
	} else {
		rows, err = readExcelRows(r)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	now := time.Now()
	var lines []entity.BOMLine
	seen := make(map[[2]string]bool)

	for i, row := range rows {
		if i == 0 && looksLikeHeader(row) {
			continue
		}
		rowNum := i + 1

		get := func(col int) string {
			if col < len(row) {
				return strings.TrimSpace(row[col])
			}
			return ""
		}
		name := get(0)
		if name == "" {
			continue // 빈 행 허용
		}
		standard := get(1)
		key := [2]string{name, standard}
		if seen[key] {
			result.Errors = append(result.Errors, ImportRowError{Row: rowNum, Reason: "중복된 (품명, 규격) 행"})
			continue
		}

		quantity := 0.0
		if raw := get(3); raw != "" {
			quantity, err = strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
			if err != nil {
				result.Errors = append(result.Errors, ImportRowError{Row: rowNum, Reason: "수량을 숫자로 읽을 수 없습니다: " + raw})
				continue
			}
		}
		if quantity < 0 {
			result.Errors = append(result.Errors, ImportRowError{Row: rowNum, Reason: "수량은 0 이상이어야 합니다"})
			continue
		}

		unitPrice := 0.0
		if raw := get(5); raw != "" {
			unitPrice, err = strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
			if err != nil {
				result.Errors = append(result.Errors, ImportRowError{Row: rowNum, Reason: "단가를 숫자로 읽을 수 없습니다: " + raw})
				continue
			}
		}

		seen[key] = true
		lines = append(lines, entity.BOMLine{
			ID:           uuid.New().String()[:32],
			ModelID:      model.ID,
			MaterialName: name,
			Standard:     standard,
			Unit:         engine.NormalizeUnit(get(2)),
			Quantity:     quantity,
			Category:     get(4),
			UnitPrice:    unitPrice,
			Notes:        get(6),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if err := s.bomRepo.ReplaceForModel(ctx, model.ID, lines); err != nil {
		return nil, fmt.Errorf("replace bom: %w", err)
	}
	result.Imported = len(lines)

	s.catalog.Invalidate(ctx)
	return result, nil
}

// readCSVRows CSV 행 읽기. EUC-KR 로 저장된 레거시 파일을 감지해 변환한다.
func readCSVRows(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("decode euc-kr: %w", err)
		}
		data = decoded
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1 // 열 수 불일치 행 허용
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

func readExcelRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open excel: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read excel rows: %w", err)
	}
	return rows, nil
}

func looksLikeHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.TrimSpace(row[0])
	return first == "품명" || first == "품목" || strings.EqualFold(first, "material")
}

package engine

import (
	"strings"

	"github.com/doohosteel/ptop/internal/ptop/entity"
)

// Catalog 외부 저장소에서 읽어온 불변 스냅샷. 엔진은 이 스냅샷만 읽고
// 절대 수정하지 않으며, 같은 스냅샷과 입력에 대해 항상 같은 결과를 낸다.
type Catalog struct {
	Models        []entity.Model             `json:"models"`
	BOMByModel    map[string][]entity.BOMLine `json:"bom_by_model"` // model ID → 세트당 BOM 행
	MainMaterials []entity.MainMaterial      `json:"main_materials"`
	SubMaterials  []entity.SubMaterial       `json:"sub_materials"`
	Pricing       []entity.PricingRecord     `json:"pricing"`
}

// ModelByName 모델명(trim 후 정확 일치)으로 모델 조회
func (c *Catalog) ModelByName(name string) (entity.Model, bool) {
	want := strings.TrimSpace(name)
	for _, m := range c.Models {
		if strings.TrimSpace(m.ModelName) == want {
			return m, true
		}
	}
	return entity.Model{}, false
}

// CategoryOf 모델명으로 분류 조회. 없으면 빈 문자열 (차양 판정은 false 로 동작).
func (c *Catalog) CategoryOf(modelName string) string {
	if m, ok := c.ModelByName(modelName); ok {
		return m.Category
	}
	return ""
}

// PriceForModel 단가표에서 모델명 정확 일치(trim) 행 조회
func (c *Catalog) PriceForModel(modelName string) (entity.PricingRecord, bool) {
	want := strings.TrimSpace(modelName)
	for _, p := range c.Pricing {
		if strings.TrimSpace(p.ModelName) == want {
			return p, true
		}
	}
	return entity.PricingRecord{}, false
}

// BOMFor 모델의 BOM 행 목록
func (c *Catalog) BOMFor(model entity.Model) []entity.BOMLine {
	if c.BOMByModel == nil {
		return nil
	}
	return c.BOMByModel[model.ID]
}

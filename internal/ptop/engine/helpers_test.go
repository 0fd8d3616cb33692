package engine

import (
	"github.com/doohosteel/ptop/internal/ptop/entity"
)

// testCatalog 전 테스트 공용 카탈로그 스냅샷
func testCatalog() *Catalog {
	return &Catalog{
		Models: []entity.Model{
			{ID: "mdl-001", ModelName: "DAL-2000", Category: "디자인형", ModelStandard: "W2000"},
			{ID: "mdl-002", ModelName: "CNP-300", Category: "차양", ModelStandard: "W3000"},
			{ID: "mdl-003", ModelName: "BLD-100", Category: "볼라드", ModelStandard: "500"},
		},
		BOMByModel: map[string][]entity.BOMLine{
			"mdl-001": {
				{ModelID: "mdl-001", MaterialName: "원형파이프", Standard: "40*40*1.5", Unit: "M", Quantity: 2.0, Category: "HGI PIPE"},
				{ModelID: "mdl-001", MaterialName: "볼트", Standard: "M12", Unit: "EA", Quantity: 4.0, Category: "부자재"},
			},
			"mdl-002": {
				{ModelID: "mdl-002", MaterialName: "각관", Standard: "60*40*2.0", Unit: "M", Quantity: 2.0, Category: "HGI PIPE"},
			},
		},
		MainMaterials: []entity.MainMaterial{
			{ProductName: "HGI PIPE", Standard: "40*40*1.5", UnitPrice: 18000, UnitLengthM: 6.0, MaterialType: "아연도"},
			{ProductName: "HGI PIPE", Standard: "60*40*2.0", UnitPrice: 30000, UnitLengthM: 6.0, MaterialType: "아연도"},
			{ProductName: "STS PIPE", Standard: "Ø60*1.5", UnitPrice: 54000, UnitLengthM: 6.0, MaterialType: "STS"},
			{ProductName: "평철", Standard: "50*5", UnitPrice: 9000, UnitLengthM: 6.0, MaterialType: "아연도"},
		},
		SubMaterials: []entity.SubMaterial{
			{ProductName: "육각볼트", Standard: "M12", Unit: "EA", UnitPrice: 350, Supplier: "한양볼트"},
			{ProductName: "실리콘", Standard: "300ml", Unit: "EA", UnitPrice: 4500, Supplier: "대진상사"},
		},
		Pricing: []entity.PricingRecord{
			{ModelName: "DAL-2000", Standard: "W2000", Unit: "m", UnitPrice: 85000, IdentifierNumber: "24614649"},
			{ModelName: "CNP-300", Standard: "W3000", Unit: "EA", UnitPrice: 2400000, IdentifierNumber: "24614650"},
		},
	}
}

func testEngine() *Engine {
	return New(DefaultKeywords())
}
